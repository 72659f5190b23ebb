package entities

import (
	"github.com/decker502/invaders/pkg/components"
	"github.com/decker502/invaders/pkg/config"
	"github.com/decker502/invaders/pkg/ecs"
	"github.com/decker502/invaders/pkg/types"
)

// NewEnemy 创建敌机实体
// 敌机出生在编队的起点，并独占一份编队副本
//
// 参数:
//   - em: 实体管理器
//   - cfg: 模拟配置
//   - formation: 编队生成器给出的编队（按值传入，敌机拿到的是独立副本）
//
// 返回:
//   - ecs.EntityID: 预留的敌机实体ID
func NewEnemy(em *ecs.EntityManager, cfg *config.SimulationConfig, formation components.FormationComponent) ecs.EntityID {
	owned := formation
	return em.Spawn(
		&components.PositionComponent{X: formation.StartX, Y: formation.StartY, Z: cfg.Enemy.Z},
		&components.ScaleComponent{ScaleX: cfg.Enemy.Scale, ScaleY: cfg.Enemy.Scale},
		&components.SpeedComponent{Value: cfg.Enemy.Speed},
		&components.ActorComponent{Kind: types.ActorEnemy},
		&components.CollisionComponent{Width: cfg.Enemy.Width, Height: cfg.Enemy.Height},
		&owned,
	)
}
