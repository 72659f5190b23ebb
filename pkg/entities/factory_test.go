package entities

import (
	"testing"

	"github.com/decker502/invaders/pkg/components"
	"github.com/decker502/invaders/pkg/config"
	"github.com/decker502/invaders/pkg/ecs"
	"github.com/decker502/invaders/pkg/game"
	"github.com/decker502/invaders/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBounds(t *testing.T, cfg *config.SimulationConfig) game.WorldBounds {
	t.Helper()
	bounds, err := game.NewWorldBounds(cfg.World.Width, cfg.World.Height)
	require.NoError(t, err)
	return bounds
}

func TestNewPlayer(t *testing.T) {
	cfg := config.DefaultSimulationConfig()
	em := ecs.NewEntityManager()
	id := NewPlayer(em, cfg, newTestBounds(t, cfg))

	assert.False(t, em.Exists(id), "player should be deferred until Flush")
	em.Flush()

	pos, ok := ecs.GetComponent[*components.PositionComponent](em, id)
	require.True(t, ok)
	assert.Equal(t, 0.0, pos.X)
	assert.InDelta(t, -338+38.75, pos.Y, 1e-9)
	assert.Equal(t, 10.0, pos.Z)

	actor, ok := ecs.GetComponent[*components.ActorComponent](em, id)
	require.True(t, ok)
	assert.Equal(t, types.ActorPlayer, actor.Kind)

	fire, ok := ecs.GetComponent[*components.PlayerFireComponent](em, id)
	require.True(t, ok)
	assert.True(t, fire.Ready, "new player should be ready to fire")
}

func TestNewEnemyOwnsFormationCopy(t *testing.T) {
	cfg := config.DefaultSimulationConfig()
	em := ecs.NewEntityManager()
	formation := components.FormationComponent{StartX: 399, StartY: 10, RadiusX: 100, RadiusY: 100, GroupID: 3}

	a := NewEnemy(em, cfg, formation)
	b := NewEnemy(em, cfg, formation)
	em.Flush()

	fa, ok := ecs.GetComponent[*components.FormationComponent](em, a)
	require.True(t, ok)
	fb, ok := ecs.GetComponent[*components.FormationComponent](em, b)
	require.True(t, ok)

	fa.Angle = 1.5
	assert.Equal(t, 0.0, fb.Angle, "enemies must not share formation instances")

	pos, _ := ecs.GetComponent[*components.PositionComponent](em, a)
	assert.Equal(t, 399.0, pos.X)
	assert.Equal(t, 10.0, pos.Y)
}

func TestNewLaser(t *testing.T) {
	cfg := config.DefaultSimulationConfig()
	em := ecs.NewEntityManager()

	playerLaser, err := NewLaser(em, cfg, types.OwnerPlayer, 5, 6)
	require.NoError(t, err)
	enemyLaser, err := NewLaser(em, cfg, types.OwnerEnemy, 7, 8)
	require.NoError(t, err)
	_, err = NewLaser(em, cfg, types.OwnerNone, 0, 0)
	assert.Error(t, err)

	em.Flush()

	col, _ := ecs.GetComponent[*components.CollisionComponent](em, playerLaser)
	assert.Equal(t, 9.0, col.Width)
	assert.Equal(t, 54.0, col.Height)

	scale, _ := ecs.GetComponent[*components.ScaleComponent](em, enemyLaser)
	assert.Equal(t, 0.8, scale.ScaleX)
	assert.Equal(t, -0.8, scale.ScaleY, "enemy laser is flipped vertically")

	laser, _ := ecs.GetComponent[*components.LaserComponent](em, enemyLaser)
	assert.Equal(t, types.OwnerEnemy, laser.Owner)
}
