package entities

import (
	"fmt"

	"github.com/decker502/invaders/pkg/components"
	"github.com/decker502/invaders/pkg/config"
	"github.com/decker502/invaders/pkg/ecs"
	"github.com/decker502/invaders/pkg/types"
)

// NewLaser 创建激光实体
// 激光以恒定速度沿 Y 轴飞行，方向由归属方决定
//
// 参数:
//   - em: 实体管理器
//   - cfg: 模拟配置
//   - owner: 归属方（玩家激光向上，敌机激光向下且图像上下翻转）
//   - x, y: 起始位置
//
// 返回:
//   - ecs.EntityID: 预留的激光实体ID
//   - error: 归属方非法时返回错误
func NewLaser(em *ecs.EntityManager, cfg *config.SimulationConfig, owner types.Owner, x, y float64) (ecs.EntityID, error) {
	var width, height, scaleX, scaleY float64
	switch owner {
	case types.OwnerPlayer:
		width, height = cfg.Laser.PlayerWidth, cfg.Laser.PlayerHeight
		scaleX, scaleY = cfg.Laser.PlayerScale, cfg.Laser.PlayerScale
	case types.OwnerEnemy:
		width, height = cfg.Laser.EnemyWidth, cfg.Laser.EnemyHeight
		scaleX, scaleY = cfg.Laser.EnemyScale, -cfg.Laser.EnemyScale
	default:
		return 0, fmt.Errorf("laser owner must be player or enemy, got %v", owner)
	}

	id := em.Spawn(
		&components.PositionComponent{X: x, Y: y, Z: cfg.Laser.Z},
		&components.ScaleComponent{ScaleX: scaleX, ScaleY: scaleY},
		&components.SpeedComponent{Value: cfg.Laser.Speed},
		&components.LaserComponent{Owner: owner},
		&components.CollisionComponent{Width: width, Height: height},
	)
	return id, nil
}
