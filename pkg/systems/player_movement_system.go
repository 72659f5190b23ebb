package systems

import (
	"math"

	"github.com/decker502/invaders/pkg/components"
	"github.com/decker502/invaders/pkg/ecs"
	"github.com/decker502/invaders/pkg/game"
	"github.com/decker502/invaders/pkg/types"
	"go.uber.org/zap"
)

// PlayerMovementSystem 根据移动意图水平移动玩家
type PlayerMovementSystem struct {
	em     *ecs.EntityManager
	bounds game.WorldBounds
	logger *zap.Logger
}

// NewPlayerMovementSystem 创建玩家运动系统
func NewPlayerMovementSystem(em *ecs.EntityManager, bounds game.WorldBounds, logger *zap.Logger) *PlayerMovementSystem {
	return &PlayerMovementSystem{
		em:     em,
		bounds: bounds,
		logger: logger.Named("PlayerMovementSystem"),
	}
}

// Update 移动玩家，玩家不存在时跳过
// 玩家中心被限制在场地内（考虑缩放后的半宽）
func (s *PlayerMovementSystem) Update(deltaTime float64, intent game.InputIntent) {
	id, ok := findPlayer(s.em)
	if !ok {
		return
	}
	dir := intent.Direction()
	if dir == 0 {
		return
	}

	pos, _ := ecs.GetComponent[*components.PositionComponent](s.em, id)
	speed, _ := ecs.GetComponent[*components.SpeedComponent](s.em, id)
	pos.X += dir * speed.Value * deltaTime

	halfWidth := 0.0
	if col, ok := ecs.GetComponent[*components.CollisionComponent](s.em, id); ok {
		halfWidth = col.Width * math.Abs(scaleX(s.em, id)) / 2
	}
	minX := s.bounds.Left() + halfWidth
	maxX := s.bounds.Right() - halfWidth
	pos.X = math.Max(minX, math.Min(maxX, pos.X))
}

// findPlayer 查找唯一的玩家实体
func findPlayer(em *ecs.EntityManager) (ecs.EntityID, bool) {
	ids := ecs.GetEntitiesWith2[*components.ActorComponent, *components.PositionComponent](em)
	for _, id := range ids {
		actor, _ := ecs.GetComponent[*components.ActorComponent](em, id)
		if actor.Kind == types.ActorPlayer {
			return id, true
		}
	}
	return 0, false
}

// scaleX / scaleY 读取实体缩放，缺省为 1
func scaleX(em *ecs.EntityManager, id ecs.EntityID) float64 {
	if scale, ok := ecs.GetComponent[*components.ScaleComponent](em, id); ok {
		return scale.ScaleX
	}
	return 1
}

func scaleY(em *ecs.EntityManager, id ecs.EntityID) float64 {
	if scale, ok := ecs.GetComponent[*components.ScaleComponent](em, id); ok {
		return scale.ScaleY
	}
	return 1
}
