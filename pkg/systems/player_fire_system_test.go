package systems

import (
	"testing"

	"github.com/decker502/invaders/pkg/components"
	"github.com/decker502/invaders/pkg/ecs"
	"github.com/decker502/invaders/pkg/entities"
	"github.com/decker502/invaders/pkg/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestPlayerFire_Toggle(t *testing.T) {
	w := newTestWorld(t)
	sys := NewPlayerFireSystem(w.em, w.cfg, zap.NewNop())

	// 玩家不存在时跳过
	sys.Update(game.InputIntent{FireHeld: true})
	assert.Zero(t, w.em.PendingCommands())

	entities.NewPlayer(w.em, w.cfg, w.bounds)
	w.em.Flush()
	px, py := entities.PlayerSpawnPosition(w.cfg, w.bounds)

	sys.Update(game.InputIntent{FireHeld: true})
	created := w.em.Flush().Created
	require.Len(t, created, 2, "one press fires a pair of lasers")

	var xs []float64
	for _, id := range created {
		pos := mustPosition(t, w.em, id)
		xs = append(xs, pos.X)
		assert.InDelta(t, py+w.cfg.Player.FireOffsetY, pos.Y, 1e-9)
	}
	assert.ElementsMatch(t, []float64{px - w.cfg.Player.FireOffsetX, px + w.cfg.Player.FireOffsetX}, xs)

	// 按住不放不会连发
	for i := 0; i < 10; i++ {
		sys.Update(game.InputIntent{FireHeld: true})
	}
	assert.Empty(t, w.em.Flush().Created)

	sys.Update(game.InputIntent{FireJustReleased: true})
	sys.Update(game.InputIntent{FireHeld: true})
	assert.Len(t, w.em.Flush().Created, 2, "release re-arms the trigger")

	id, _ := findPlayer(w.em)
	fire, _ := ecs.GetComponent[*components.PlayerFireComponent](w.em, id)
	assert.False(t, fire.Ready)
}
