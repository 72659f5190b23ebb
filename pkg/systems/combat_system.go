package systems

import (
	"math"

	"github.com/decker502/invaders/pkg/components"
	"github.com/decker502/invaders/pkg/ecs"
	"github.com/decker502/invaders/pkg/game"
	"github.com/decker502/invaders/pkg/types"
	"go.uber.org/zap"
)

// CombatSystem 激光与角色的碰撞结算
//
// 每个 tick 用一个去重集合记录已结算的实体ID（目标和激光），
// 多束激光同时命中同一目标时只产生一次销毁和一次爆炸。
type CombatSystem struct {
	em         *ecs.EntityManager
	population *game.PopulationState
	player     *game.PlayerState
	clock      *game.Clock
	events     *game.EventQueue
	logger     *zap.Logger
}

// NewCombatSystem 创建战斗系统
//
// 参数:
//   - em: 实体管理器
//   - population: 敌机数量状态，击毁敌机时立即递减
//   - player: 玩家生命周期状态，玩家被击中时记录死亡时间
//   - clock: 模拟时钟
//   - events: 爆炸请求队列
//   - logger: 日志记录器
//
// 返回:
//   - *CombatSystem: 战斗系统实例
func NewCombatSystem(em *ecs.EntityManager, population *game.PopulationState, player *game.PlayerState,
	clock *game.Clock, events *game.EventQueue, logger *zap.Logger) *CombatSystem {
	return &CombatSystem{
		em:         em,
		population: population,
		player:     player,
		clock:      clock,
		events:     events,
		logger:     logger.Named("CombatSystem"),
	}
}

// hitbox 缩放后的碰撞盒（中心对齐）
type hitbox struct {
	x, y          float64
	width, height float64
}

// checkAABBCollision 检查两个中心对齐的碰撞盒是否重叠
// 边界恰好接触也视为碰撞
func checkAABBCollision(a, b hitbox) bool {
	left1 := a.x - a.width/2
	right1 := a.x + a.width/2
	bottom1 := a.y - a.height/2
	top1 := a.y + a.height/2

	left2 := b.x - b.width/2
	right2 := b.x + b.width/2
	bottom2 := b.y - b.height/2
	top2 := b.y + b.height/2

	return right1 >= left2 &&
		left1 <= right2 &&
		top1 >= bottom2 &&
		bottom1 <= top2
}

// hitboxOf 读取实体的缩放碰撞盒
func (s *CombatSystem) hitboxOf(id ecs.EntityID) (hitbox, bool) {
	pos, ok := ecs.GetComponent[*components.PositionComponent](s.em, id)
	if !ok {
		return hitbox{}, false
	}
	col, ok := ecs.GetComponent[*components.CollisionComponent](s.em, id)
	if !ok {
		return hitbox{}, false
	}
	return hitbox{
		x:      pos.X,
		y:      pos.Y,
		width:  col.Width * math.Abs(scaleX(s.em, id)),
		height: col.Height * math.Abs(scaleY(s.em, id)),
	}, true
}

// Update 检测并结算本 tick 的所有命中
func (s *CombatSystem) Update(deltaTime float64) {
	resolved := make(map[ecs.EntityID]struct{})

	lasers := ecs.GetEntitiesWith3[*components.LaserComponent, *components.PositionComponent, *components.CollisionComponent](s.em)
	actors := ecs.GetEntitiesWith3[*components.ActorComponent, *components.PositionComponent, *components.CollisionComponent](s.em)
	if len(lasers) == 0 || len(actors) == 0 {
		return
	}

	for _, laserID := range lasers {
		if _, done := resolved[laserID]; done {
			continue
		}
		laser, _ := ecs.GetComponent[*components.LaserComponent](s.em, laserID)
		laserBox, ok := s.hitboxOf(laserID)
		if !ok {
			continue
		}

		for _, targetID := range actors {
			if _, done := resolved[targetID]; done {
				continue
			}
			actor, _ := ecs.GetComponent[*components.ActorComponent](s.em, targetID)
			if !laser.Owner.CanHit(actor.Kind) {
				continue
			}
			targetBox, ok := s.hitboxOf(targetID)
			if !ok || !checkAABBCollision(laserBox, targetBox) {
				continue
			}

			resolved[laserID] = struct{}{}
			resolved[targetID] = struct{}{}
			s.resolveHit(laserID, targetID, actor.Kind, targetBox)
			// 一束激光至多命中一个目标
			break
		}
	}
}

// resolveHit 销毁激光和目标，产生爆炸请求并通知状态持有者
func (s *CombatSystem) resolveHit(laserID, targetID ecs.EntityID, kind types.ActorKind, target hitbox) {
	s.em.DestroyEntity(laserID)
	s.em.DestroyEntity(targetID)
	s.events.QueueExplosion(target.x, target.y)

	switch kind {
	case types.ActorEnemy:
		s.population.EnemyDestroyed()
		s.logger.Debug("enemy destroyed",
			zap.Uint64("id", uint64(targetID)),
			zap.Int("active", s.population.Active()))
	case types.ActorPlayer:
		now := s.clock.Now()
		s.player.Shot(now)
		s.logger.Info("player destroyed",
			zap.Uint64("id", uint64(targetID)),
			zap.Float64("now", now))
	}
}
