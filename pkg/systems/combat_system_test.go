package systems

import (
	"testing"

	"github.com/decker502/invaders/pkg/components"
	"github.com/decker502/invaders/pkg/ecs"
	"github.com/decker502/invaders/pkg/entities"
	"github.com/decker502/invaders/pkg/game"
	"github.com/decker502/invaders/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// TestCheckAABBCollision 测试中心对齐的AABB碰撞检测
func TestCheckAABBCollision(t *testing.T) {
	tests := []struct {
		name  string
		a, b  hitbox
		want  bool
		descr string
	}{
		{
			name:  "完全重叠",
			a:     hitbox{x: 100, y: 100, width: 50, height: 50},
			b:     hitbox{x: 100, y: 100, width: 50, height: 50},
			want:  true,
			descr: "两个碰撞盒完全重叠应该检测到碰撞",
		},
		{
			name:  "部分重叠 - 右边",
			a:     hitbox{x: 100, y: 100, width: 50, height: 50},
			b:     hitbox{x: 120, y: 100, width: 50, height: 50},
			want:  true,
			descr: "碰撞盒部分重叠（右边）应该检测到碰撞",
		},
		{
			name:  "部分重叠 - 上边",
			a:     hitbox{x: 100, y: 100, width: 50, height: 50},
			b:     hitbox{x: 100, y: 130, width: 50, height: 50},
			want:  true,
			descr: "碰撞盒部分重叠（上边）应该检测到碰撞",
		},
		{
			name:  "边界刚好接触",
			a:     hitbox{x: 100, y: 100, width: 50, height: 50},
			b:     hitbox{x: 150, y: 100, width: 50, height: 50},
			want:  true,
			descr: "边界刚好接触应该检测到碰撞",
		},
		{
			name:  "水平分离",
			a:     hitbox{x: 100, y: 100, width: 50, height: 50},
			b:     hitbox{x: 151, y: 100, width: 50, height: 50},
			want:  false,
			descr: "水平方向分离不应检测到碰撞",
		},
		{
			name:  "垂直分离",
			a:     hitbox{x: 100, y: 100, width: 50, height: 50},
			b:     hitbox{x: 100, y: 10, width: 50, height: 50},
			want:  false,
			descr: "垂直方向分离不应检测到碰撞",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := checkAABBCollision(tt.a, tt.b)
			if got != tt.want {
				t.Errorf("%s: checkAABBCollision() = %v, want %v", tt.descr, got, tt.want)
			}
		})
	}
}

func newTestCombat(w *testWorld) *CombatSystem {
	return NewCombatSystem(w.em, w.population, w.player, w.clock, w.events, zap.NewNop())
}

func spawnEnemyAt(w *testWorld, x, y float64) ecs.EntityID {
	id := entities.NewEnemy(w.em, w.cfg, components.FormationComponent{StartX: x, StartY: y, RadiusX: 100, RadiusY: 100})
	w.population.EnemySpawned()
	return id
}

func TestCombat_PlayerLaserHitsEnemy(t *testing.T) {
	w := newTestWorld(t)
	combat := newTestCombat(w)

	enemy := spawnEnemyAt(w, 10, 200)
	laser, err := entities.NewLaser(w.em, w.cfg, types.OwnerPlayer, 10, 200)
	require.NoError(t, err)
	w.em.Flush()
	require.Equal(t, 1, w.population.Active())

	combat.Update(testStep)
	assert.Equal(t, 0, w.population.Active(), "enemy count decrements in the same tick")

	result := w.em.Flush()
	assert.ElementsMatch(t, []ecs.EntityID{enemy, laser}, result.Destroyed)
	assert.Equal(t, []game.ExplosionRequest{{X: 10, Y: 200}}, w.events.DrainExplosions())
}

func TestCombat_HitDeduplication(t *testing.T) {
	w := newTestWorld(t)
	combat := newTestCombat(w)

	enemy := spawnEnemyAt(w, 0, 100)
	var lasers []ecs.EntityID
	for i := 0; i < 5; i++ {
		id, err := entities.NewLaser(w.em, w.cfg, types.OwnerPlayer, float64(i*4-8), 100)
		require.NoError(t, err)
		lasers = append(lasers, id)
	}
	w.em.Flush()

	combat.Update(testStep)
	result := w.em.Flush()

	assert.Len(t, w.events.DrainExplosions(), 1, "one explosion per actor")
	assert.Len(t, result.Destroyed, 2, "the enemy and exactly one laser")
	assert.Contains(t, result.Destroyed, enemy)
	assert.Equal(t, 0, w.population.Active(), "count never decrements twice")

	remaining := 0
	for _, id := range lasers {
		if w.em.Exists(id) {
			remaining++
		}
	}
	assert.Equal(t, 4, remaining, "surplus lasers survive")
}

func TestCombat_OneTargetPerLaser(t *testing.T) {
	w := newTestWorld(t)
	combat := newTestCombat(w)

	spawnEnemyAt(w, 0, 100)
	spawnEnemyAt(w, 5, 100)
	_, err := entities.NewLaser(w.em, w.cfg, types.OwnerPlayer, 2, 100)
	require.NoError(t, err)
	w.em.Flush()

	combat.Update(testStep)
	w.em.Flush()

	assert.Equal(t, 1, countActors(w.em, types.ActorEnemy))
	assert.Equal(t, 1, w.population.Active())
	assert.Len(t, w.events.DrainExplosions(), 1)
}

func TestCombat_NoFriendlyFire(t *testing.T) {
	w := newTestWorld(t)
	combat := newTestCombat(w)

	spawnEnemyAt(w, 0, 100)
	_, err := entities.NewLaser(w.em, w.cfg, types.OwnerEnemy, 0, 100)
	require.NoError(t, err)
	player := entities.NewPlayer(w.em, w.cfg, w.bounds)
	w.player.Spawned()
	px, py := entities.PlayerSpawnPosition(w.cfg, w.bounds)
	_, err = entities.NewLaser(w.em, w.cfg, types.OwnerPlayer, px, py)
	require.NoError(t, err)
	w.em.Flush()

	combat.Update(testStep)
	result := w.em.Flush()

	assert.Empty(t, result.Destroyed)
	assert.True(t, w.em.Exists(player))
	assert.Zero(t, w.events.Pending())
}

func TestCombat_EnemyLaserKillsPlayer(t *testing.T) {
	w := newTestWorld(t)
	combat := newTestCombat(w)

	player := entities.NewPlayer(w.em, w.cfg, w.bounds)
	w.player.Spawned()
	x, y := entities.PlayerSpawnPosition(w.cfg, w.bounds)
	_, err := entities.NewLaser(w.em, w.cfg, types.OwnerEnemy, x+20, y+40)
	require.NoError(t, err)
	w.em.Flush()

	for i := 0; i < 90; i++ {
		w.clock.Advance()
	}
	combat.Update(testStep)
	w.em.Flush()

	assert.False(t, w.em.Exists(player))
	assert.False(t, w.player.IsAlive())
	death, died := w.player.LastDeath()
	assert.True(t, died)
	assert.InDelta(t, 1.5, death, 1e-9)
	assert.Equal(t, []game.ExplosionRequest{{X: x, Y: y}}, w.events.DrainExplosions())
}
