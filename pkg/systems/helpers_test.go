package systems

import (
	"math/rand"
	"testing"

	"github.com/decker502/invaders/pkg/components"
	"github.com/decker502/invaders/pkg/config"
	"github.com/decker502/invaders/pkg/ecs"
	"github.com/decker502/invaders/pkg/game"
	"github.com/stretchr/testify/require"
)

const testStep = 1.0 / 60.0

type testWorld struct {
	em         *ecs.EntityManager
	cfg        *config.SimulationConfig
	bounds     game.WorldBounds
	clock      *game.Clock
	population *game.PopulationState
	player     *game.PlayerState
	events     *game.EventQueue
}

func newTestWorld(t *testing.T) *testWorld {
	t.Helper()
	cfg := config.DefaultSimulationConfig()
	bounds, err := game.NewWorldBounds(cfg.World.Width, cfg.World.Height)
	require.NoError(t, err)
	return &testWorld{
		em:         ecs.NewEntityManager(),
		cfg:        cfg,
		bounds:     bounds,
		clock:      game.NewClock(cfg.TimeStep(), cfg.Timing.MaxTicksPerUpdate),
		population: game.NewPopulationState(cfg.Enemy.MaxActive),
		player:     game.NewPlayerState(cfg.Timing.PlayerRespawnDelay),
		events:     game.NewEventQueue(),
	}
}

func newTestGenerator(cfg *config.SimulationConfig, seed int64) *FormationGenerator {
	return NewFormationGenerator(cfg.Formation, rand.New(rand.NewSource(seed)))
}

func mustPosition(t *testing.T, em *ecs.EntityManager, id ecs.EntityID) *components.PositionComponent {
	t.Helper()
	pos, ok := ecs.GetComponent[*components.PositionComponent](em, id)
	require.True(t, ok, "entity %d has no position", id)
	return pos
}
