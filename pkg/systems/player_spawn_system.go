package systems

import (
	"github.com/decker502/invaders/pkg/config"
	"github.com/decker502/invaders/pkg/ecs"
	"github.com/decker502/invaders/pkg/entities"
	"github.com/decker502/invaders/pkg/game"
	"go.uber.org/zap"
)

// PlayerSpawnSystem 玩家复活检查
// 按固定周期检查，玩家阵亡且冷却结束后在底部中央生成新玩家
type PlayerSpawnSystem struct {
	em       *ecs.EntityManager
	cfg      *config.SimulationConfig
	bounds   game.WorldBounds
	state    *game.PlayerState
	clock    *game.Clock
	schedule *game.FixedTimestep
	logger   *zap.Logger
}

// NewPlayerSpawnSystem 创建玩家生成系统
//
// 参数:
//   - em: 实体管理器
//   - cfg: 模拟配置
//   - bounds: 场地范围
//   - state: 玩家生命周期状态（与战斗系统共享）
//   - clock: 模拟时钟，提供当前模拟时间
//   - logger: 日志记录器
//
// 返回:
//   - *PlayerSpawnSystem: 玩家生成系统实例
func NewPlayerSpawnSystem(em *ecs.EntityManager, cfg *config.SimulationConfig, bounds game.WorldBounds,
	state *game.PlayerState, clock *game.Clock, logger *zap.Logger) *PlayerSpawnSystem {
	return &PlayerSpawnSystem{
		em:       em,
		cfg:      cfg,
		bounds:   bounds,
		state:    state,
		clock:    clock,
		schedule: game.NewFixedTimestep(cfg.Timing.PlayerRespawnCheckInterval, cfg.TimeStep()),
		logger:   logger.Named("PlayerSpawnSystem"),
	}
}

// Update 推进复活检查周期
func (s *PlayerSpawnSystem) Update(deltaTime float64) {
	if !s.schedule.Tick() {
		return
	}
	s.TrySpawn()
}

// TrySpawn 满足复活条件时生成玩家
func (s *PlayerSpawnSystem) TrySpawn() (ecs.EntityID, bool) {
	now := s.clock.Now()
	if !s.state.CanRespawn(now) {
		return 0, false
	}

	id := entities.NewPlayer(s.em, s.cfg, s.bounds)
	s.state.Spawned()
	s.logger.Info("player spawned", zap.Uint64("id", uint64(id)), zap.Float64("now", now))
	return id, true
}
