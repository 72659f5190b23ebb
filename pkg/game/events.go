package game

import (
	"github.com/decker502/invaders/pkg/ecs"
	"github.com/decker502/invaders/pkg/types"
)

// ExplosionRequest 爆炸请求
// 由战斗系统在命中时产生，交给表现层播放动画后丢弃，不属于持久模拟状态
type ExplosionRequest struct {
	X, Y float64
}

// SpawnEvent 实体创建事件，供表现层创建对应的可绘制对象
type SpawnEvent struct {
	ID      ecs.EntityID
	Actor   types.ActorKind // 角色种类（激光为 ActorUnknown）
	Laser   bool            // 是否为激光
	Owner   types.Owner     // 激光归属方（角色为 OwnerNone）
	X, Y, Z float64
	ScaleX  float64
	ScaleY  float64
	Width   float64 // 逻辑宽度
	Height  float64 // 逻辑高度
}

// PresentationSink 表现层事件接收者
// 模拟核心只向表现层推送事件，从不反向查询
type PresentationSink interface {
	OnEntitySpawned(event SpawnEvent)
	OnEntityDespawned(id ecs.EntityID)
	OnExplosion(request ExplosionRequest)
}

// NopSink 丢弃所有事件
type NopSink struct{}

func (NopSink) OnEntitySpawned(SpawnEvent) {}

func (NopSink) OnEntityDespawned(ecs.EntityID) {}

func (NopSink) OnExplosion(ExplosionRequest) {}

// RecordingSink 记录所有事件（用于测试和离线验证工具）
type RecordingSink struct {
	Spawned    []SpawnEvent
	Despawned  []ecs.EntityID
	Explosions []ExplosionRequest
}

// OnEntitySpawned 记录实体创建事件
func (s *RecordingSink) OnEntitySpawned(event SpawnEvent) {
	s.Spawned = append(s.Spawned, event)
}

// OnEntityDespawned 记录实体销毁事件
func (s *RecordingSink) OnEntityDespawned(id ecs.EntityID) {
	s.Despawned = append(s.Despawned, id)
}

// OnExplosion 记录爆炸请求
func (s *RecordingSink) OnExplosion(request ExplosionRequest) {
	s.Explosions = append(s.Explosions, request)
}

// EventQueue 缓存一个 tick 内产生的爆炸请求
// 与实体命令一起在 tick 末尾统一交给表现层
type EventQueue struct {
	explosions []ExplosionRequest
}

// NewEventQueue 创建空事件队列
func NewEventQueue() *EventQueue {
	return &EventQueue{}
}

// QueueExplosion 追加一个爆炸请求
func (q *EventQueue) QueueExplosion(x, y float64) {
	q.explosions = append(q.explosions, ExplosionRequest{X: x, Y: y})
}

// Pending 返回尚未取出的爆炸请求数量
func (q *EventQueue) Pending() int {
	return len(q.explosions)
}

// DrainExplosions 取出全部爆炸请求并清空队列
func (q *EventQueue) DrainExplosions() []ExplosionRequest {
	out := q.explosions
	q.explosions = nil
	return out
}
