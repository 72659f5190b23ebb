package systems

import (
	"github.com/decker502/invaders/pkg/config"
	"github.com/decker502/invaders/pkg/ecs"
	"github.com/decker502/invaders/pkg/entities"
	"github.com/decker502/invaders/pkg/game"
	"go.uber.org/zap"
)

// EnemySpawnSystem 按固定周期补充敌机，直到达到同时在场上限
type EnemySpawnSystem struct {
	em         *ecs.EntityManager
	cfg        *config.SimulationConfig
	bounds     game.WorldBounds
	generator  *FormationGenerator
	population *game.PopulationState
	schedule   *game.FixedTimestep
	logger     *zap.Logger
}

// NewEnemySpawnSystem 创建敌机生成系统
//
// 参数:
//   - em: 实体管理器
//   - cfg: 模拟配置
//   - bounds: 场地范围
//   - generator: 编队生成器
//   - population: 敌机数量状态（与战斗系统共享）
//   - logger: 日志记录器
//
// 返回:
//   - *EnemySpawnSystem: 敌机生成系统实例
func NewEnemySpawnSystem(em *ecs.EntityManager, cfg *config.SimulationConfig, bounds game.WorldBounds,
	generator *FormationGenerator, population *game.PopulationState, logger *zap.Logger) *EnemySpawnSystem {
	s := &EnemySpawnSystem{
		em:         em,
		cfg:        cfg,
		bounds:     bounds,
		generator:  generator,
		population: population,
		schedule:   game.NewFixedTimestep(cfg.Timing.EnemySpawnInterval, cfg.TimeStep()),
		logger:     logger.Named("EnemySpawnSystem"),
	}
	s.logger.Info("initialized",
		zap.Float64("interval", cfg.Timing.EnemySpawnInterval),
		zap.Int("cap", population.Cap()))
	return s
}

// Update 推进生成周期，周期到达时尝试生成一个敌机
func (s *EnemySpawnSystem) Update(deltaTime float64) {
	if !s.schedule.Tick() {
		return
	}
	s.TrySpawn()
}

// TrySpawn 在未达上限时生成一个敌机
//
// 返回:
//   - ecs.EntityID: 新敌机ID（本 tick Flush 后生效）
//   - bool: 达到上限时返回 false
func (s *EnemySpawnSystem) TrySpawn() (ecs.EntityID, bool) {
	if !s.population.CanSpawn() {
		s.logger.Debug("population cap reached", zap.Int("active", s.population.Active()))
		return 0, false
	}

	formation := s.generator.Next(s.bounds)
	id := entities.NewEnemy(s.em, s.cfg, formation)
	s.population.EnemySpawned()

	s.logger.Debug("enemy spawned",
		zap.Uint64("id", uint64(id)),
		zap.Uint64("group", formation.GroupID),
		zap.Float64("x", formation.StartX),
		zap.Float64("y", formation.StartY),
		zap.Int("active", s.population.Active()))
	return id, true
}
