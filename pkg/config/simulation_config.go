package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig 表示配置值不合法（启动期致命错误）
var ErrInvalidConfig = errors.New("invalid simulation config")

// SimulationConfig 模拟核心的静态配置
//
// 所有值在启动时加载一次，运行期间不可修改。
// 注意：所有时间单位都是秒，距离单位都是像素。
//
// 配置文件位置: data/simulation.yaml（也支持 .toml）
type SimulationConfig struct {
	World     WorldConfig     `yaml:"world" toml:"world"`
	Timing    TimingConfig    `yaml:"timing" toml:"timing"`
	Enemy     EnemyConfig     `yaml:"enemy" toml:"enemy"`
	Formation FormationConfig `yaml:"formation" toml:"formation"`
	Player    PlayerConfig    `yaml:"player" toml:"player"`
	Laser     LaserConfig     `yaml:"laser" toml:"laser"`
	Logging   LoggingConfig   `yaml:"logging" toml:"logging"`

	// Seed 随机数种子，0 表示使用当前时间
	Seed int64 `yaml:"seed" toml:"seed"`
}

// WorldConfig 场地尺寸
type WorldConfig struct {
	Width  float64 `yaml:"width" toml:"width"`
	Height float64 `yaml:"height" toml:"height"`
}

// TimingConfig 时间步长与周期调度配置
type TimingConfig struct {
	// TickRate 基础模拟频率（Hz）
	TickRate float64 `yaml:"tickRate" toml:"tickRate"`
	// MaxTicksPerUpdate 单次 Update 最多推进的 tick 数，超出的累积时间被丢弃
	MaxTicksPerUpdate int `yaml:"maxTicksPerUpdate" toml:"maxTicksPerUpdate"`
	// EnemySpawnInterval 敌机生成检查间隔
	EnemySpawnInterval float64 `yaml:"enemySpawnInterval" toml:"enemySpawnInterval"`
	// EnemyFireInterval 敌机开火间隔
	EnemyFireInterval float64 `yaml:"enemyFireInterval" toml:"enemyFireInterval"`
	// PlayerRespawnCheckInterval 玩家复活检查间隔
	PlayerRespawnCheckInterval float64 `yaml:"playerRespawnCheckInterval" toml:"playerRespawnCheckInterval"`
	// PlayerRespawnDelay 玩家死亡后到复活的最短时间
	PlayerRespawnDelay float64 `yaml:"playerRespawnDelay" toml:"playerRespawnDelay"`
}

// EnemyConfig 敌机配置
type EnemyConfig struct {
	// MaxActive 同时存活的敌机上限
	MaxActive int     `yaml:"maxActive" toml:"maxActive"`
	Speed     float64 `yaml:"speed" toml:"speed"`
	Scale     float64 `yaml:"scale" toml:"scale"`
	Width     float64 `yaml:"width" toml:"width"`
	Height    float64 `yaml:"height" toml:"height"`
	Z         float64 `yaml:"z" toml:"z"`
}

// FormationConfig 编队生成配置
type FormationConfig struct {
	// GroupSize 每个编队的成员数（默认 1，每个敌机独立成队）
	GroupSize int `yaml:"groupSize" toml:"groupSize"`
	// EdgeMargin 出生点在场地左右边缘之外的距离，同时决定安全垂直范围 ±(h/2 - EdgeMargin)
	EdgeMargin float64 `yaml:"edgeMargin" toml:"edgeMargin"`
	// OffsetMarginY 椭圆中心Y范围 [0, h/2 - OffsetMarginY)
	OffsetMarginY float64 `yaml:"offsetMarginY" toml:"offsetMarginY"`
	RadiusXMin    float64 `yaml:"radiusXMin" toml:"radiusXMin"`
	RadiusXMax    float64 `yaml:"radiusXMax" toml:"radiusXMax"`
	RadiusY       float64 `yaml:"radiusY" toml:"radiusY"`
	// ArrivalFraction 剩余距离 ≤ ArrivalFraction × 单步最大距离 时提交新相位角
	ArrivalFraction float64 `yaml:"arrivalFraction" toml:"arrivalFraction"`
}

// PlayerConfig 玩家配置
type PlayerConfig struct {
	Speed  float64 `yaml:"speed" toml:"speed"`
	Scale  float64 `yaml:"scale" toml:"scale"`
	Width  float64 `yaml:"width" toml:"width"`
	Height float64 `yaml:"height" toml:"height"`
	Z      float64 `yaml:"z" toml:"z"`
	// BottomOffset 玩家出生点距场地底边的距离
	BottomOffset float64 `yaml:"bottomOffset" toml:"bottomOffset"`
	// FireOffsetX 两束激光相对玩家中心的水平偏移
	FireOffsetX float64 `yaml:"fireOffsetX" toml:"fireOffsetX"`
	// FireOffsetY 激光相对玩家中心的垂直偏移
	FireOffsetY float64 `yaml:"fireOffsetY" toml:"fireOffsetY"`
}

// LaserConfig 激光配置
type LaserConfig struct {
	Speed        float64 `yaml:"speed" toml:"speed"`
	PlayerWidth  float64 `yaml:"playerWidth" toml:"playerWidth"`
	PlayerHeight float64 `yaml:"playerHeight" toml:"playerHeight"`
	PlayerScale  float64 `yaml:"playerScale" toml:"playerScale"`
	EnemyWidth   float64 `yaml:"enemyWidth" toml:"enemyWidth"`
	EnemyHeight  float64 `yaml:"enemyHeight" toml:"enemyHeight"`
	EnemyScale   float64 `yaml:"enemyScale" toml:"enemyScale"`
	Z            float64 `yaml:"z" toml:"z"`
	// DespawnMargin 激光飞出场地边界多远后被销毁
	DespawnMargin float64 `yaml:"despawnMargin" toml:"despawnMargin"`
}

// LoggingConfig 日志配置
type LoggingConfig struct {
	Level  string `yaml:"level" toml:"level"`
	Format string `yaml:"format" toml:"format"` // "json" 或 "console"
}

// DefaultSimulationConfig 返回默认配置
func DefaultSimulationConfig() *SimulationConfig {
	return &SimulationConfig{
		World: WorldConfig{
			Width:  598,
			Height: 676,
		},
		Timing: TimingConfig{
			TickRate:                   60,
			MaxTicksPerUpdate:          5,
			EnemySpawnInterval:         1.0,
			EnemyFireInterval:          0.9,
			PlayerRespawnCheckInterval: 0.5,
			PlayerRespawnDelay:         2.0,
		},
		Enemy: EnemyConfig{
			MaxActive: 2,
			Speed:     500,
			Scale:     0.8,
			Width:     84,
			Height:    93,
			Z:         10,
		},
		Formation: FormationConfig{
			GroupSize:       1,
			EdgeMargin:      100,
			OffsetMarginY:   50,
			RadiusXMin:      80,
			RadiusXMax:      150,
			RadiusY:         100,
			ArrivalFraction: 0.5,
		},
		Player: PlayerConfig{
			Speed:        500,
			Scale:        0.5,
			Width:        144,
			Height:       75,
			Z:            10,
			BottomOffset: 75.0/4 + 20,
			FireOffsetX:  144.0/4 + 5,
			FireOffsetY:  10,
		},
		Laser: LaserConfig{
			Speed:         500,
			PlayerWidth:   9,
			PlayerHeight:  54,
			PlayerScale:   1.0,
			EnemyWidth:    17,
			EnemyHeight:   55,
			EnemyScale:    0.8,
			Z:             0,
			DespawnMargin: 50,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// LoadSimulationConfig 加载模拟配置
//
// 先填充默认值，再用配置文件覆盖，最后验证。
// 根据扩展名选择格式：.yaml/.yml 使用 YAML，.toml 使用 TOML。
//
// 参数:
//   - path: 配置文件路径（如 "data/simulation.yaml"）
//
// 返回:
//   - *SimulationConfig: 加载成功后的配置结构
//   - error: 读取、解析或验证失败时返回错误
func LoadSimulationConfig(path string) (*SimulationConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read simulation config: %w", err)
	}

	cfg := DefaultSimulationConfig()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse simulation config: %w", err)
		}
	case ".toml":
		if _, err := toml.NewDecoder(bytes.NewReader(data)).Decode(cfg); err != nil {
			return nil, fmt.Errorf("failed to parse simulation config: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported config format %q", filepath.Ext(path))
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate 验证配置有效性
//
// 返回:
//   - error: 验证失败时返回包装了 ErrInvalidConfig 的错误，成功返回 nil
func (c *SimulationConfig) Validate() error {
	checks := []struct {
		ok  bool
		msg string
	}{
		{c.World.Width > 0 && c.World.Height > 0, fmt.Sprintf("world size must be positive, got %.1fx%.1f", c.World.Width, c.World.Height)},
		{c.Timing.TickRate > 0, fmt.Sprintf("tickRate must be positive, got %.2f", c.Timing.TickRate)},
		{c.Timing.MaxTicksPerUpdate > 0, fmt.Sprintf("maxTicksPerUpdate must be positive, got %d", c.Timing.MaxTicksPerUpdate)},
		{c.Timing.EnemySpawnInterval > 0, "enemySpawnInterval must be positive"},
		{c.Timing.EnemyFireInterval > 0, "enemyFireInterval must be positive"},
		{c.Timing.PlayerRespawnCheckInterval > 0, "playerRespawnCheckInterval must be positive"},
		{c.Timing.PlayerRespawnDelay >= 0, "playerRespawnDelay must not be negative"},
		{c.Enemy.MaxActive >= 0, fmt.Sprintf("enemy maxActive must not be negative, got %d", c.Enemy.MaxActive)},
		{c.Enemy.Speed > 0, "enemy speed must be positive"},
		{c.Enemy.Width > 0 && c.Enemy.Height > 0, "enemy size must be positive"},
		{c.Formation.GroupSize > 0, fmt.Sprintf("formation groupSize must be positive, got %d", c.Formation.GroupSize)},
		{c.Formation.RadiusXMin > 0 && c.Formation.RadiusXMin < c.Formation.RadiusXMax,
			fmt.Sprintf("formation radiusX range invalid: min(%.1f) max(%.1f)", c.Formation.RadiusXMin, c.Formation.RadiusXMax)},
		{c.Formation.RadiusY > 0, "formation radiusY must be positive"},
		{c.Formation.ArrivalFraction > 0, "formation arrivalFraction must be positive"},
		{c.Formation.EdgeMargin < c.World.Height/2, "formation edgeMargin leaves no vertical span"},
		{c.Formation.OffsetMarginY < c.World.Height/2, "formation offsetMarginY leaves no vertical span"},
		{c.Player.Speed > 0, "player speed must be positive"},
		{c.Player.Width > 0 && c.Player.Height > 0, "player size must be positive"},
		{c.Laser.Speed > 0, "laser speed must be positive"},
		{c.Laser.PlayerWidth > 0 && c.Laser.PlayerHeight > 0, "player laser size must be positive"},
		{c.Laser.EnemyWidth > 0 && c.Laser.EnemyHeight > 0, "enemy laser size must be positive"},
		{c.Laser.DespawnMargin >= 0, "laser despawnMargin must not be negative"},
	}

	for _, check := range checks {
		if !check.ok {
			return fmt.Errorf("%w: %s", ErrInvalidConfig, check.msg)
		}
	}
	return nil
}

// TimeStep 返回基础时间步长（秒）
func (c *SimulationConfig) TimeStep() float64 {
	return 1.0 / c.Timing.TickRate
}
