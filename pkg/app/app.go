// Package app 提供桌面端的表现层外壳
//
// 该包把键盘输入翻译为逻辑意图交给模拟场景，并按场景推送的事件绘制实体和爆炸效果。
// 模拟核心不依赖本包。
package app

import (
	"fmt"
	"image/color"

	"github.com/decker502/invaders/pkg/config"
	"github.com/decker502/invaders/pkg/ecs"
	"github.com/decker502/invaders/pkg/game"
	"github.com/decker502/invaders/pkg/scenes"
	"github.com/decker502/invaders/pkg/types"
	"github.com/decker502/invaders/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"go.uber.org/zap"
)

var (
	backgroundColor  = color.RGBA{R: 12, G: 12, B: 28, A: 255}
	playerColor      = color.RGBA{R: 80, G: 200, B: 255, A: 255}
	enemyColor       = color.RGBA{R: 255, G: 90, B: 90, A: 255}
	playerLaserColor = color.RGBA{R: 120, G: 255, B: 120, A: 255}
	enemyLaserColor  = color.RGBA{R: 255, G: 200, B: 60, A: 255}
)

// Config 定义应用启动配置
type Config struct {
	// Simulation 模拟配置（已校验）
	Simulation *config.SimulationConfig
	// Logger 日志记录器
	Logger *zap.Logger
	// Mute 关闭爆炸音效
	Mute bool
}

// App 实现 ebiten.Game 接口，同时作为场景的输入来源和表现层事件接收者
type App struct {
	scene      *scenes.GameScene
	width      float64
	height     float64
	explosions *explosionTracker
	sounds     *soundPlayer
	logger     *zap.Logger
}

// NewApp 创建并初始化应用
//
// 参数:
//   - cfg: 启动配置
//
// 返回:
//   - *App: 应用实例
//   - error: 场景创建失败时返回错误
func NewApp(cfg Config) (*App, error) {
	if cfg.Simulation == nil {
		return nil, fmt.Errorf("simulation config is required")
	}
	logger := utils.OrNop(cfg.Logger).Named("App")

	a := &App{
		width:      cfg.Simulation.World.Width,
		height:     cfg.Simulation.World.Height,
		explosions: newExplosionTracker(explosionDuration),
		logger:     logger,
	}
	if !cfg.Mute {
		a.sounds = newSoundPlayer(audio.NewContext(sampleRate))
	}
	scene, err := scenes.NewGameScene(cfg.Simulation, cfg.Logger, a, a)
	if err != nil {
		return nil, fmt.Errorf("failed to create game scene: %w", err)
	}
	a.scene = scene
	return a, nil
}

// Poll 读取键盘状态并转换为逻辑意图
func (a *App) Poll() game.InputIntent {
	return game.InputIntent{
		MoveLeft:         ebiten.IsKeyPressed(ebiten.KeyLeft) || ebiten.IsKeyPressed(ebiten.KeyA),
		MoveRight:        ebiten.IsKeyPressed(ebiten.KeyRight) || ebiten.IsKeyPressed(ebiten.KeyD),
		FireHeld:         ebiten.IsKeyPressed(ebiten.KeySpace),
		FireJustReleased: inpututil.IsKeyJustReleased(ebiten.KeySpace),
	}
}

// OnEntitySpawned 实现 game.PresentationSink
func (a *App) OnEntitySpawned(event game.SpawnEvent) {
	a.logger.Debug("entity spawned",
		zap.Uint64("id", uint64(event.ID)),
		zap.Stringer("actor", event.Actor),
		zap.Stringer("owner", event.Owner))
}

// OnEntityDespawned 实现 game.PresentationSink
func (a *App) OnEntityDespawned(id ecs.EntityID) {
	a.logger.Debug("entity despawned", zap.Uint64("id", uint64(id)))
}

// OnExplosion 实现 game.PresentationSink
func (a *App) OnExplosion(request game.ExplosionRequest) {
	a.explosions.Add(request)
	a.sounds.PlayExplosion()
}

// Update 更新游戏逻辑
// 每个 ebiten tick 调用一次
func (a *App) Update() error {
	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		snap := a.scene.Snapshot()
		a.logger.Info("quit requested",
			zap.Float64("now", snap.Now),
			zap.Int("enemiesDestroyed", snap.Stats.EnemiesDestroyed),
			zap.Int("playerDeaths", snap.Stats.PlayerDeaths))
		return ebiten.Termination
	}

	deltaTime := 1.0 / float64(ebiten.TPS())
	a.scene.Update(deltaTime)
	a.explosions.Update(deltaTime)
	return nil
}

// Draw 绘制游戏画面
func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	for _, item := range a.scene.Renderables() {
		w, h := utils.ScaledSize(item.Width, item.Height, item.ScaleX, item.ScaleY)
		x, y, rw, rh := utils.ScreenRect(item.X, item.Y, w, h, a.width, a.height)
		vector.DrawFilledRect(screen, float32(x), float32(y), float32(rw), float32(rh), colorOf(item), false)
	}

	for _, e := range a.explosions.Active() {
		cx, cy := utils.WorldToScreen(e.X, e.Y, a.width, a.height)
		progress := e.Progress()
		radius := float32(utils.Lerp(10, 50, utils.EaseOutCubic(progress)))
		alpha := uint8(255 * (1 - utils.EaseInQuad(progress)))
		vector.DrawFilledCircle(screen, float32(cx), float32(cy), radius, color.RGBA{R: 255, G: 160, B: 40, A: alpha}, true)
	}
}

// Layout 返回游戏的逻辑屏幕尺寸（即场地尺寸）
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(a.width), int(a.height)
}

// Scene 返回模拟场景
func (a *App) Scene() *scenes.GameScene {
	return a.scene
}

func colorOf(item game.SpawnEvent) color.Color {
	if item.Laser {
		if item.Owner == types.OwnerPlayer {
			return playerLaserColor
		}
		return enemyLaserColor
	}
	if item.Actor == types.ActorPlayer {
		return playerColor
	}
	return enemyColor
}
