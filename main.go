package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/decker502/invaders/pkg/app"
	"github.com/decker502/invaders/pkg/config"
	"github.com/decker502/invaders/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata/v2"
	"go.uber.org/zap"
)

var (
	configPath = flag.String("config", "data/simulation.yaml", "模拟配置文件路径（.yaml/.yml/.toml）")
	verbose    = flag.Bool("verbose", false, "输出调试日志")
	seed       = flag.Int64("seed", 0, "随机种子（0 表示使用当前时间）")
	saveConfig = flag.Bool("save-config", false, "把当前配置保存为本地覆盖后退出")
	mute       = flag.Bool("mute", false, "关闭音效")
)

func main() {
	flag.Parse()
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadSimulationConfig(*configPath)
	if err != nil {
		return err
	}
	if *verbose {
		cfg.Logging.Level = "debug"
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}

	logger, err := utils.NewLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	// gdata 打开失败时以降级模式运行（不读取本地覆盖）
	manager, err := gdata.Open(gdata.Config{AppName: "invaders"})
	if err != nil {
		logger.Warn("user data storage unavailable", zap.Error(err))
		manager = nil
	}

	if *saveConfig {
		if manager == nil {
			return fmt.Errorf("cannot save config overrides: user data storage unavailable")
		}
		if err := config.StoreOverrides(manager, cfg); err != nil {
			return err
		}
		logger.Info("config overrides saved")
		return nil
	}

	applied, err := config.LoadStoredOverrides(manager, cfg)
	if err != nil {
		return err
	}
	if applied {
		logger.Info("stored config overrides applied")
	}

	a, err := app.NewApp(app.Config{Simulation: cfg, Logger: logger, Mute: *mute})
	if err != nil {
		return err
	}

	ebiten.SetWindowSize(int(cfg.World.Width), int(cfg.World.Height))
	ebiten.SetWindowTitle("Invaders")
	ebiten.SetTPS(int(cfg.Timing.TickRate))

	logger.Info("starting game loop", zap.String("config", *configPath))
	if err := ebiten.RunGame(a); err != nil {
		return fmt.Errorf("game loop exited with error: %w", err)
	}
	return nil
}
