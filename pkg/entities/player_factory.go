// Package entities 提供各类实体的工厂函数
//
// 工厂函数只把创建请求写入命令缓冲区，实体在本 tick 的 Flush 之后才存在。
package entities

import (
	"github.com/decker502/invaders/pkg/components"
	"github.com/decker502/invaders/pkg/config"
	"github.com/decker502/invaders/pkg/ecs"
	"github.com/decker502/invaders/pkg/game"
	"github.com/decker502/invaders/pkg/types"
)

// PlayerSpawnPosition 计算玩家出生点（场地底部中央）
func PlayerSpawnPosition(cfg *config.SimulationConfig, bounds game.WorldBounds) (x, y float64) {
	return 0, bounds.Bottom() + cfg.Player.BottomOffset
}

// NewPlayer 创建玩家实体
//
// 参数:
//   - em: 实体管理器
//   - cfg: 模拟配置（尺寸、缩放、速度）
//   - bounds: 场地范围（用于计算底部出生点）
//
// 返回:
//   - ecs.EntityID: 预留的玩家实体ID
func NewPlayer(em *ecs.EntityManager, cfg *config.SimulationConfig, bounds game.WorldBounds) ecs.EntityID {
	x, y := PlayerSpawnPosition(cfg, bounds)
	return em.Spawn(
		&components.PositionComponent{X: x, Y: y, Z: cfg.Player.Z},
		&components.ScaleComponent{ScaleX: cfg.Player.Scale, ScaleY: cfg.Player.Scale},
		&components.SpeedComponent{Value: cfg.Player.Speed},
		&components.ActorComponent{Kind: types.ActorPlayer},
		&components.CollisionComponent{Width: cfg.Player.Width, Height: cfg.Player.Height},
		&components.PlayerFireComponent{Ready: true},
	)
}
