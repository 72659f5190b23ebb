// verify_simulation 无头运行模拟若干秒并打印统计，用于快速验证生成、开火和复活节奏
//
// 用法:
//
//	go run ./cmd/verify_simulation --seconds 30 --fire
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/decker502/invaders/pkg/config"
	"github.com/decker502/invaders/pkg/game"
	"github.com/decker502/invaders/pkg/scenes"
	"github.com/decker502/invaders/pkg/utils"
	"go.uber.org/zap"
)

var (
	configPath = flag.String("config", "data/simulation.yaml", "模拟配置文件路径")
	seconds    = flag.Float64("seconds", 10, "模拟时长（秒）")
	fire       = flag.Bool("fire", false, "玩家持续开火（每 tick 交替按下和松开）")
	sweep      = flag.Bool("sweep", false, "玩家左右往返移动")
	seed       = flag.Int64("seed", 1, "随机种子")
	verbose    = flag.Bool("verbose", false, "输出调试日志")
)

func main() {
	flag.Parse()

	cfg, err := config.LoadSimulationConfig(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	cfg.Seed = *seed
	if *verbose {
		cfg.Logging.Level = "debug"
	}

	logger, err := utils.NewLogger(cfg.Logging)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	sink := &game.RecordingSink{}
	scene, err := scenes.NewGameScene(cfg, logger, sink, nil)
	if err != nil {
		logger.Fatal("failed to create scene", zap.Error(err))
	}

	ticks := int(*seconds * cfg.Timing.TickRate)
	sweepTicks := int(cfg.Timing.TickRate)
	for i := 0; i < ticks; i++ {
		intent := game.InputIntent{}
		if *fire {
			intent.FireHeld = i%2 == 0
			intent.FireJustReleased = i%2 == 1
		}
		if *sweep {
			intent.MoveRight = (i/sweepTicks)%2 == 0
			intent.MoveLeft = !intent.MoveRight
		}
		scene.Step(intent)
	}

	snap := scene.Snapshot()
	fmt.Printf("simulated %.2fs (%d ticks)\n", snap.Now, snap.Tick)
	fmt.Printf("  entities alive:    %d (enemies %d, lasers %d)\n", snap.Entities, snap.Enemies, snap.Lasers)
	fmt.Printf("  enemies spawned:   %d, destroyed: %d\n", snap.Stats.EnemiesSpawned, snap.Stats.EnemiesDestroyed)
	fmt.Printf("  player spawns:     %d, deaths: %d, alive: %v\n", snap.Stats.PlayerSpawns, snap.Stats.PlayerDeaths, snap.PlayerAlive)
	fmt.Printf("  lasers fired:      player %d, enemy %d\n", snap.Stats.PlayerLasers, snap.Stats.EnemyLasers)
	fmt.Printf("  explosions:        %d\n", snap.Stats.Explosions)
	fmt.Printf("  sink events:       %d spawned, %d despawned\n", len(sink.Spawned), len(sink.Despawned))
}
