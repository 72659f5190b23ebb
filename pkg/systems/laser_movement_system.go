package systems

import (
	"github.com/decker502/invaders/pkg/components"
	"github.com/decker502/invaders/pkg/ecs"
	"github.com/decker502/invaders/pkg/game"
	"go.uber.org/zap"
)

// LaserMovementSystem 激光直线运动与越界清理
type LaserMovementSystem struct {
	em     *ecs.EntityManager
	bounds game.WorldBounds
	margin float64
	logger *zap.Logger
}

// NewLaserMovementSystem 创建激光运动系统
//
// 参数:
//   - em: 实体管理器
//   - bounds: 场地范围
//   - margin: 越过上下边界多少距离后销毁激光
//   - logger: 日志记录器
//
// 返回:
//   - *LaserMovementSystem: 激光运动系统实例
func NewLaserMovementSystem(em *ecs.EntityManager, bounds game.WorldBounds, margin float64, logger *zap.Logger) *LaserMovementSystem {
	return &LaserMovementSystem{
		em:     em,
		bounds: bounds,
		margin: margin,
		logger: logger.Named("LaserMovementSystem"),
	}
}

// Update 移动所有激光，越界的激光进入销毁队列
func (s *LaserMovementSystem) Update(deltaTime float64) {
	ids := ecs.GetEntitiesWith3[*components.LaserComponent, *components.PositionComponent, *components.SpeedComponent](s.em)
	top := s.bounds.Top() + s.margin
	bottom := s.bounds.Bottom() - s.margin

	for _, id := range ids {
		laser, _ := ecs.GetComponent[*components.LaserComponent](s.em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.em, id)
		speed, _ := ecs.GetComponent[*components.SpeedComponent](s.em, id)

		pos.Y += laser.Owner.Direction() * speed.Value * deltaTime

		if pos.Y > top || pos.Y < bottom {
			s.logger.Debug("laser left playfield",
				zap.Uint64("id", uint64(id)),
				zap.Stringer("owner", laser.Owner),
				zap.Float64("y", pos.Y))
			s.em.DestroyEntity(id)
		}
	}
}
