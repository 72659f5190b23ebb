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

// PlayerFireSystem 玩家开火
// 按住开火键发射一对激光，之后必须松开按键才能再次开火
type PlayerFireSystem struct {
	em     *ecs.EntityManager
	cfg    *config.SimulationConfig
	logger *zap.Logger
}

// NewPlayerFireSystem 创建玩家开火系统
func NewPlayerFireSystem(em *ecs.EntityManager, cfg *config.SimulationConfig, logger *zap.Logger) *PlayerFireSystem {
	return &PlayerFireSystem{
		em:     em,
		cfg:    cfg,
		logger: logger.Named("PlayerFireSystem"),
	}
}

// Update 处理开火意图，玩家不存在时跳过
func (s *PlayerFireSystem) Update(intent game.InputIntent) {
	id, ok := findPlayer(s.em)
	if !ok {
		return
	}
	fire, ok := ecs.GetComponent[*components.PlayerFireComponent](s.em, id)
	if !ok {
		return
	}
	pos, _ := ecs.GetComponent[*components.PositionComponent](s.em, id)

	if fire.Ready && intent.FireHeld {
		y := pos.Y + s.cfg.Player.FireOffsetY
		for _, x := range []float64{pos.X - s.cfg.Player.FireOffsetX, pos.X + s.cfg.Player.FireOffsetX} {
			if _, err := entities.NewLaser(s.em, s.cfg, types.OwnerPlayer, x, y); err != nil {
				s.logger.Error("failed to spawn player laser", zap.Error(err))
			}
		}
		fire.Ready = false
		s.logger.Debug("player fired", zap.Float64("x", pos.X), zap.Float64("y", y))
	}

	if intent.FireJustReleased {
		fire.Ready = true
	}
}
