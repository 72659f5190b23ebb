package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeTempConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write temp config: %v", err)
	}
	return path
}

func TestDefaultSimulationConfigIsValid(t *testing.T) {
	cfg := DefaultSimulationConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should be valid: %v", err)
	}
	if cfg.World.Width != 598 || cfg.World.Height != 676 {
		t.Errorf("expected default world 598x676, got %.0fx%.0f", cfg.World.Width, cfg.World.Height)
	}
	if got := cfg.TimeStep(); got != 1.0/60.0 {
		t.Errorf("expected time step 1/60, got %f", got)
	}
}

func TestLoadSimulationConfig(t *testing.T) {
	tests := []struct {
		name        string
		fileName    string
		content     string
		wantErr     bool
		wantInvalid bool
		validate    func(*testing.T, *SimulationConfig)
	}{
		{
			name:     "yaml 部分覆盖保留默认值",
			fileName: "sim.yaml",
			content: `
enemy:
  maxActive: 1
timing:
  enemySpawnInterval: 2.5
seed: 42
`,
			validate: func(t *testing.T, cfg *SimulationConfig) {
				if cfg.Enemy.MaxActive != 1 {
					t.Errorf("expected maxActive = 1, got %d", cfg.Enemy.MaxActive)
				}
				if cfg.Timing.EnemySpawnInterval != 2.5 {
					t.Errorf("expected enemySpawnInterval = 2.5, got %f", cfg.Timing.EnemySpawnInterval)
				}
				if cfg.Seed != 42 {
					t.Errorf("expected seed = 42, got %d", cfg.Seed)
				}
				// 未覆盖的字段保持默认
				if cfg.Enemy.Width != 84 {
					t.Errorf("expected default enemy width = 84, got %f", cfg.Enemy.Width)
				}
				if cfg.Formation.GroupSize != 1 {
					t.Errorf("expected default groupSize = 1, got %d", cfg.Formation.GroupSize)
				}
			},
		},
		{
			name:     "toml 配置",
			fileName: "sim.toml",
			content: `
seed = 7

[world]
width = 800.0
height = 600.0

[formation]
groupSize = 3
`,
			validate: func(t *testing.T, cfg *SimulationConfig) {
				if cfg.World.Width != 800 || cfg.World.Height != 600 {
					t.Errorf("expected world 800x600, got %.0fx%.0f", cfg.World.Width, cfg.World.Height)
				}
				if cfg.Formation.GroupSize != 3 {
					t.Errorf("expected groupSize = 3, got %d", cfg.Formation.GroupSize)
				}
				if cfg.Seed != 7 {
					t.Errorf("expected seed = 7, got %d", cfg.Seed)
				}
			},
		},
		{
			name:        "非法场地尺寸",
			fileName:    "bad.yaml",
			content:     "world:\n  width: 0\n",
			wantErr:     true,
			wantInvalid: true,
		},
		{
			name:        "非法半径范围",
			fileName:    "bad_radius.yaml",
			content:     "formation:\n  radiusXMin: 200\n  radiusXMax: 100\n",
			wantErr:     true,
			wantInvalid: true,
		},
		{
			name:     "YAML 语法错误",
			fileName: "broken.yaml",
			content:  "world: [unclosed",
			wantErr:  true,
		},
		{
			name:     "不支持的扩展名",
			fileName: "sim.json",
			content:  "{}",
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeTempConfig(t, tt.fileName, tt.content)
			cfg, err := LoadSimulationConfig(path)

			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error but got nil")
				}
				if tt.wantInvalid && !errors.Is(err, ErrInvalidConfig) {
					t.Errorf("expected ErrInvalidConfig, got %v", err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.validate != nil {
				tt.validate(t, cfg)
			}
		})
	}
}

func TestLoadSimulationConfig_MissingFile(t *testing.T) {
	_, err := LoadSimulationConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestShippedSimulationConfig(t *testing.T) {
	cfg, err := LoadSimulationConfig("../../data/simulation.yaml")
	if err != nil {
		t.Fatalf("shipped config should load: %v", err)
	}
	if cfg.Enemy.MaxActive != 2 {
		t.Errorf("expected shipped maxActive = 2, got %d", cfg.Enemy.MaxActive)
	}
}
