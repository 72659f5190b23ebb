// Package scenes 组装模拟系统并按固定顺序驱动每个 tick
package scenes

import (
	"fmt"
	"math/rand"
	"sort"
	"time"

	"github.com/decker502/invaders/pkg/components"
	"github.com/decker502/invaders/pkg/config"
	"github.com/decker502/invaders/pkg/ecs"
	"github.com/decker502/invaders/pkg/game"
	"github.com/decker502/invaders/pkg/systems"
	"github.com/decker502/invaders/pkg/types"
	"go.uber.org/zap"
)

// GameScene 模拟场景
//
// 拥有实体管理器、时钟和所有共享状态；每个 tick 的系统执行顺序固定：
// 周期调度 → 玩家意图 → 运动 → 战斗 → Flush 及表现层事件。
type GameScene struct {
	cfg    *config.SimulationConfig
	bounds game.WorldBounds
	em     *ecs.EntityManager
	clock  *game.Clock
	logger *zap.Logger

	population *game.PopulationState
	player     *game.PlayerState
	events     *game.EventQueue

	sink    game.PresentationSink
	intents game.IntentProvider

	enemySpawnSystem     *systems.EnemySpawnSystem
	playerSpawnSystem    *systems.PlayerSpawnSystem
	enemyFireSystem      *systems.EnemyFireSystem
	playerMovementSystem *systems.PlayerMovementSystem
	playerFireSystem     *systems.PlayerFireSystem
	enemyMovementSystem  *systems.EnemyMovementSystem
	laserMovementSystem  *systems.LaserMovementSystem
	combatSystem         *systems.CombatSystem

	// 存活实体的种类，用于统计销毁结果（Flush 之后组件已不可读）
	kinds          map[ecs.EntityID]entityKind
	stats          Stats
	pendingRelease bool
}

type entityKind struct {
	actor types.ActorKind
	laser types.Owner
}

// Stats 运行统计
type Stats struct {
	EnemiesSpawned   int
	EnemiesDestroyed int
	PlayerSpawns     int
	PlayerDeaths     int
	PlayerLasers     int
	EnemyLasers      int
	Explosions       int
}

// Snapshot 场景当前状态快照
type Snapshot struct {
	Tick        uint64
	Now         float64
	Entities    int
	Enemies     int
	Lasers      int
	ActiveCount int
	PlayerAlive bool
	Stats       Stats
}

// NewGameScene 创建模拟场景并生成初始玩家
//
// 参数:
//   - cfg: 模拟配置（创建前会再次校验）
//   - logger: 日志记录器，nil 时不输出日志
//   - sink: 表现层事件接收者，nil 时丢弃事件
//   - intents: 输入意图来源，nil 时视为无输入
//
// 返回:
//   - *GameScene: 场景实例
//   - error: 配置非法时返回错误
func NewGameScene(cfg *config.SimulationConfig, logger *zap.Logger, sink game.PresentationSink, intents game.IntentProvider) (*GameScene, error) {
	if cfg == nil {
		return nil, fmt.Errorf("simulation config is nil")
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("failed to create game scene: %w", err)
	}
	bounds, err := game.NewWorldBounds(cfg.World.Width, cfg.World.Height)
	if err != nil {
		return nil, fmt.Errorf("failed to create game scene: %w", err)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if sink == nil {
		sink = game.NopSink{}
	}
	if intents == nil {
		intents = game.IntentFunc(func() game.InputIntent { return game.InputIntent{} })
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	s := &GameScene{
		cfg:        cfg,
		bounds:     bounds,
		em:         ecs.NewEntityManager(),
		clock:      game.NewClock(cfg.TimeStep(), cfg.Timing.MaxTicksPerUpdate),
		logger:     logger.Named("GameScene"),
		population: game.NewPopulationState(cfg.Enemy.MaxActive),
		player:     game.NewPlayerState(cfg.Timing.PlayerRespawnDelay),
		events:     game.NewEventQueue(),
		sink:       sink,
		intents:    intents,
		kinds:      make(map[ecs.EntityID]entityKind),
	}

	generator := systems.NewFormationGenerator(cfg.Formation, rng)
	s.enemySpawnSystem = systems.NewEnemySpawnSystem(s.em, cfg, bounds, generator, s.population, logger)
	s.playerSpawnSystem = systems.NewPlayerSpawnSystem(s.em, cfg, bounds, s.player, s.clock, logger)
	s.enemyFireSystem = systems.NewEnemyFireSystem(s.em, cfg, logger)
	s.playerMovementSystem = systems.NewPlayerMovementSystem(s.em, bounds, logger)
	s.playerFireSystem = systems.NewPlayerFireSystem(s.em, cfg, logger)
	s.enemyMovementSystem = systems.NewEnemyMovementSystem(s.em, cfg.Formation.ArrivalFraction, logger)
	s.laserMovementSystem = systems.NewLaserMovementSystem(s.em, bounds, cfg.Laser.DespawnMargin, logger)
	s.combatSystem = systems.NewCombatSystem(s.em, s.population, s.player, s.clock, s.events, logger)

	// 初始玩家立即生效，第一个 tick 即可移动和开火
	s.playerSpawnSystem.TrySpawn()
	s.applyCommands()

	s.logger.Info("scene created",
		zap.Float64("width", bounds.Width()),
		zap.Float64("height", bounds.Height()),
		zap.Float64("tickRate", cfg.Timing.TickRate),
		zap.Int64("seed", seed))
	return s, nil
}

// Update 推进模拟
// 实际帧间隔经累加器换算为若干个固定步长 tick，单帧最多执行 MaxTicksPerUpdate 个
//
// 参数:
//   - deltaTime: 自上一帧以来经过的时间（秒）
//
// 返回:
//   - int: 本帧执行的 tick 数
func (s *GameScene) Update(deltaTime float64) int {
	n := s.clock.Accumulate(deltaTime)
	intent := s.intents.Poll()
	if intent.FireJustReleased {
		s.pendingRelease = true
	}
	if n == 0 {
		return 0
	}

	for i := 0; i < n; i++ {
		tickIntent := intent
		// 松开事件只作用于本帧的第一个 tick
		tickIntent.FireJustReleased = i == 0 && s.pendingRelease
		s.tick(tickIntent)
	}
	s.pendingRelease = false
	return n
}

// Step 直接执行一个 tick（不经过累加器），用于无头运行和测试
func (s *GameScene) Step(intent game.InputIntent) {
	s.tick(intent)
}

func (s *GameScene) tick(intent game.InputIntent) {
	dt := s.clock.TimeStep()
	s.clock.Advance()

	// 1. 周期调度
	s.enemySpawnSystem.Update(dt)
	s.playerSpawnSystem.Update(dt)
	s.enemyFireSystem.Update(dt)

	// 2. 玩家意图
	s.playerMovementSystem.Update(dt, intent)
	s.playerFireSystem.Update(intent)

	// 3. 运动
	s.enemyMovementSystem.Update(dt)
	s.laserMovementSystem.Update(dt)

	// 4. 战斗结算
	s.combatSystem.Update(dt)

	// 5. 应用命令缓冲区并通知表现层
	s.applyCommands()
}

// applyCommands Flush 命令缓冲区，把创建、销毁和爆炸依次推送给表现层
func (s *GameScene) applyCommands() {
	result := s.em.Flush()

	for _, id := range result.Created {
		event, ok := s.spawnEvent(id)
		if !ok {
			continue
		}
		s.kinds[id] = entityKind{actor: event.Actor, laser: event.Owner}
		s.countSpawn(event)
		s.sink.OnEntitySpawned(event)
	}

	for _, id := range result.Destroyed {
		s.countDespawn(s.kinds[id])
		delete(s.kinds, id)
		s.sink.OnEntityDespawned(id)
	}

	for _, explosion := range s.events.DrainExplosions() {
		s.stats.Explosions++
		s.sink.OnExplosion(explosion)
	}
}

// spawnEvent 从实体组件构造创建事件
func (s *GameScene) spawnEvent(id ecs.EntityID) (game.SpawnEvent, bool) {
	pos, ok := ecs.GetComponent[*components.PositionComponent](s.em, id)
	if !ok {
		return game.SpawnEvent{}, false
	}
	event := game.SpawnEvent{ID: id, X: pos.X, Y: pos.Y, Z: pos.Z, ScaleX: 1, ScaleY: 1}

	if scale, ok := ecs.GetComponent[*components.ScaleComponent](s.em, id); ok {
		event.ScaleX, event.ScaleY = scale.ScaleX, scale.ScaleY
	}
	if col, ok := ecs.GetComponent[*components.CollisionComponent](s.em, id); ok {
		event.Width, event.Height = col.Width, col.Height
	}
	if actor, ok := ecs.GetComponent[*components.ActorComponent](s.em, id); ok {
		event.Actor = actor.Kind
	}
	if laser, ok := ecs.GetComponent[*components.LaserComponent](s.em, id); ok {
		event.Laser = true
		event.Owner = laser.Owner
	}
	return event, true
}

func (s *GameScene) countSpawn(event game.SpawnEvent) {
	switch {
	case event.Actor == types.ActorEnemy:
		s.stats.EnemiesSpawned++
	case event.Actor == types.ActorPlayer:
		s.stats.PlayerSpawns++
	case event.Owner == types.OwnerPlayer:
		s.stats.PlayerLasers++
	case event.Owner == types.OwnerEnemy:
		s.stats.EnemyLasers++
	}
}

func (s *GameScene) countDespawn(kind entityKind) {
	switch kind.actor {
	case types.ActorEnemy:
		s.stats.EnemiesDestroyed++
	case types.ActorPlayer:
		s.stats.PlayerDeaths++
	}
}

// Snapshot 返回当前状态快照
func (s *GameScene) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:        s.clock.Ticks(),
		Now:         s.clock.Now(),
		Entities:    s.em.Count(),
		ActiveCount: s.population.Active(),
		PlayerAlive: s.player.IsAlive(),
		Stats:       s.stats,
	}
	for _, kind := range s.kinds {
		if kind.actor == types.ActorEnemy {
			snap.Enemies++
		}
		if kind.laser != types.OwnerNone {
			snap.Lasers++
		}
	}
	return snap
}

// Renderables 返回所有实体当前的可绘制状态，按 Z 升序、ID 升序排列
// 只读访问，供表现层每帧绘制使用
func (s *GameScene) Renderables() []game.SpawnEvent {
	ids := ecs.GetEntitiesWith1[*components.PositionComponent](s.em)
	out := make([]game.SpawnEvent, 0, len(ids))
	for _, id := range ids {
		if event, ok := s.spawnEvent(id); ok {
			out = append(out, event)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Z < out[j].Z })
	return out
}

// playerID 返回当前玩家实体
func (s *GameScene) playerID() (ecs.EntityID, bool) {
	for id, kind := range s.kinds {
		if kind.actor == types.ActorPlayer {
			return id, true
		}
	}
	return 0, false
}

// Bounds 返回场地范围
func (s *GameScene) Bounds() game.WorldBounds {
	return s.bounds
}
