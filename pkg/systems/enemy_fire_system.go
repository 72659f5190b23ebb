package systems

import (
	"github.com/decker502/invaders/pkg/components"
	"github.com/decker502/invaders/pkg/config"
	"github.com/decker502/invaders/pkg/ecs"
	"github.com/decker502/invaders/pkg/entities"
	"github.com/decker502/invaders/pkg/game"
	"github.com/decker502/invaders/pkg/types"
	"go.uber.org/zap"
)

// EnemyFireSystem 按固定周期让所有在场敌机各发射一束激光
type EnemyFireSystem struct {
	em       *ecs.EntityManager
	cfg      *config.SimulationConfig
	schedule *game.FixedTimestep
	logger   *zap.Logger
}

// NewEnemyFireSystem 创建敌机开火系统
func NewEnemyFireSystem(em *ecs.EntityManager, cfg *config.SimulationConfig, logger *zap.Logger) *EnemyFireSystem {
	return &EnemyFireSystem{
		em:       em,
		cfg:      cfg,
		schedule: game.NewFixedTimestep(cfg.Timing.EnemyFireInterval, cfg.TimeStep()),
		logger:   logger.Named("EnemyFireSystem"),
	}
}

// Update 推进开火周期
func (s *EnemyFireSystem) Update(deltaTime float64) {
	if !s.schedule.Tick() {
		return
	}
	s.FireAll()
}

// FireAll 所有在场敌机立即开火，返回发射的激光数量
func (s *EnemyFireSystem) FireAll() int {
	fired := 0
	ids := ecs.GetEntitiesWith2[*components.ActorComponent, *components.PositionComponent](s.em)
	for _, id := range ids {
		actor, _ := ecs.GetComponent[*components.ActorComponent](s.em, id)
		if actor.Kind != types.ActorEnemy {
			continue
		}
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.em, id)
		if _, err := entities.NewLaser(s.em, s.cfg, types.OwnerEnemy, pos.X, pos.Y); err != nil {
			s.logger.Error("failed to spawn enemy laser", zap.Error(err))
			continue
		}
		fired++
	}
	if fired > 0 {
		s.logger.Debug("enemies fired", zap.Int("lasers", fired))
	}
	return fired
}
