package systems

import (
	"math"

	"github.com/decker502/invaders/pkg/components"
	"github.com/decker502/invaders/pkg/ecs"
	"go.uber.org/zap"
)

// EnemyMovementSystem 沿编队椭圆轨迹移动敌机
type EnemyMovementSystem struct {
	em              *ecs.EntityManager
	arrivalFraction float64
	logger          *zap.Logger
}

// NewEnemyMovementSystem 创建敌机运动系统
//
// 参数:
//   - em: 实体管理器
//   - arrivalFraction: 到达判定系数，剩余距离 ≤ 系数 × 单步最大距离 时提交新的相位角
//   - logger: 日志记录器
//
// 返回:
//   - *EnemyMovementSystem: 敌机运动系统实例
func NewEnemyMovementSystem(em *ecs.EntityManager, arrivalFraction float64, logger *zap.Logger) *EnemyMovementSystem {
	return &EnemyMovementSystem{
		em:              em,
		arrivalFraction: arrivalFraction,
		logger:          logger.Named("EnemyMovementSystem"),
	}
}

// Update 推进所有敌机一个固定步长
func (s *EnemyMovementSystem) Update(deltaTime float64) {
	ids := ecs.GetEntitiesWith3[*components.FormationComponent, *components.PositionComponent, *components.SpeedComponent](s.em)
	for _, id := range ids {
		formation, _ := ecs.GetComponent[*components.FormationComponent](s.em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.em, id)
		speed, _ := ecs.GetComponent[*components.SpeedComponent](s.em, id)
		s.step(formation, pos, speed.Value, deltaTime)
	}
}

// step 对单个敌机执行一次椭圆运动步进
func (s *EnemyMovementSystem) step(f *components.FormationComponent, pos *components.PositionComponent, speed, deltaTime float64) {
	maxStep := deltaTime * speed

	dir := -1.0
	if f.StartX > 0 {
		dir = 1.0
	}
	radius := math.Min(f.RadiusX, f.RadiusY)
	angle := f.Angle + dir*speed*deltaTime/(radius*math.Pi/2)

	dstX := f.OffsetX + f.RadiusX*math.Cos(angle)
	dstY := f.OffsetY + f.RadiusY*math.Sin(angle)

	dx := dstX - pos.X
	dy := dstY - pos.Y
	distance := math.Hypot(dx, dy)
	ratio := 0.0
	if distance != 0 {
		ratio = maxStep / distance
	}

	pos.X += clampStep(dx*ratio, dx)
	pos.Y += clampStep(dy*ratio, dy)

	remaining := math.Hypot(dstX-pos.X, dstY-pos.Y)
	if remaining <= s.arrivalFraction*maxStep {
		f.Angle = angle
	}
}

// clampStep 限制单轴步长，使其不会越过目标
func clampStep(step, toTarget float64) float64 {
	if toTarget > 0 {
		return math.Min(step, toTarget)
	}
	return math.Max(step, toTarget)
}
