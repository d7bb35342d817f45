package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Graphics.Width != 1280 || cfg.Graphics.Height != 720 {
		t.Errorf("expected 1280x720, got %dx%d", cfg.Graphics.Width, cfg.Graphics.Height)
	}
	if cfg.Graphics.FOV != 45 {
		t.Errorf("expected fov 45, got %f", cfg.Graphics.FOV)
	}
	if cfg.Terrain.Width != 50 || cfg.Terrain.Depth != 50 {
		t.Errorf("expected 50x50 terrain, got %dx%d", cfg.Terrain.Width, cfg.Terrain.Depth)
	}
	if cfg.Terrain.HeightScale != 5 {
		t.Errorf("expected height scale 5, got %f", cfg.Terrain.HeightScale)
	}
	if cfg.Shadow.Resolution != 2046 {
		t.Errorf("expected shadow resolution 2046, got %d", cfg.Shadow.Resolution)
	}
	if cfg.Shadow.TerrainBiasMax >= cfg.Shadow.BuildingBiasMax {
		t.Error("expected terrain bias band to be tighter than the building band")
	}
	if cfg.GodRays.Samples != 100 {
		t.Errorf("expected 100 god ray samples, got %d", cfg.GodRays.Samples)
	}
	if cfg.Orbit.FastSpeed != 5 || cfg.Orbit.DefaultSpeed != 0.5 {
		t.Errorf("unexpected orbit speeds %f/%f", cfg.Orbit.DefaultSpeed, cfg.Orbit.FastSpeed)
	}
	if cfg.Assets.NightSkybox[0] != "Skyboxes/Night/posx.bmp" {
		t.Errorf("unexpected first night face %q", cfg.Assets.NightSkybox[0])
	}
	if cfg.Assets.Terrain2.AO != "TerrainCompressed/mudFloor2AO.bmp" {
		t.Errorf("unexpected terrain2 ao %q", cfg.Assets.Terrain2.AO)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
graphics:
  width: 1920
  height: 1080
  fullscreen: true
  vsync: false

terrain:
  seed: 42
  height_scale: 8

godrays:
  samples: 64
  decay: 0.9

camera:
  start_position: [1, 2, 3]

audio:
  enabled: false

logging:
  level: "debug"
  log_file: "godrays.log"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Graphics.Width != 1920 || cfg.Graphics.Height != 1080 {
		t.Errorf("expected 1920x1080, got %dx%d", cfg.Graphics.Width, cfg.Graphics.Height)
	}
	if !cfg.Graphics.Fullscreen {
		t.Error("expected fullscreen to be true")
	}
	if cfg.Terrain.Seed != 42 {
		t.Errorf("expected seed 42, got %d", cfg.Terrain.Seed)
	}
	if cfg.Terrain.HeightScale != 8 {
		t.Errorf("expected height scale 8, got %f", cfg.Terrain.HeightScale)
	}
	// Untouched keys keep their defaults.
	if cfg.Terrain.Octaves != 5 {
		t.Errorf("expected octaves to stay 5, got %d", cfg.Terrain.Octaves)
	}
	if cfg.GodRays.Samples != 64 {
		t.Errorf("expected 64 samples, got %d", cfg.GodRays.Samples)
	}
	if cfg.Camera.StartPosition != [3]float32{1, 2, 3} {
		t.Errorf("unexpected start position %v", cfg.Camera.StartPosition)
	}
	if cfg.Audio.Enabled {
		t.Error("expected audio to be disabled")
	}
	if cfg.Logging.LogFile != "godrays.log" {
		t.Errorf("expected log file 'godrays.log', got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"syntax", "graphics:\n  width: not a number\n  invalid syntax here\n"},
		{"unknown key", "shadow:\n  resolutoin: 1024\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			configPath := filepath.Join(t.TempDir(), "invalid.yaml")
			if err := os.WriteFile(configPath, []byte(tt.yaml), 0644); err != nil {
				t.Fatalf("failed to write test config: %v", err)
			}
			if err := loadFromFile(Default(), configPath); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestLoadFromFileEmpty(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "empty.yaml")
	if err := os.WriteFile(configPath, nil, 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}
	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("empty file should load: %v", err)
	}
	if cfg.Graphics.Width != 1280 {
		t.Errorf("expected defaults to survive, got width %d", cfg.Graphics.Width)
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	err := loadFromFile(cfg, "/nonexistent/path/config.yaml")
	if err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestValidateAllowsTightSpacingWithoutCrystals(t *testing.T) {
	cfg := Default()
	cfg.Scene.Crystals = 0
	cfg.Scene.CrystalSpacing = 0
	if err := cfg.Validate(); err != nil {
		t.Errorf("expected no error, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"zero width", func(c *Config) { c.Graphics.Width = 0 }, "window size"},
		{"inverted clip", func(c *Config) { c.Graphics.Far = 0.05 }, "clip planes"},
		{"tiny terrain", func(c *Config) { c.Terrain.Depth = 1 }, "terrain"},
		{"no shadow map", func(c *Config) { c.Shadow.Resolution = -1 }, "resolution"},
		{"shadow planes", func(c *Config) { c.Shadow.Far = 10 }, "far plane"},
		{"building bias", func(c *Config) { c.Shadow.BuildingBiasMin = 0.5 }, "building bias"},
		{"terrain bias", func(c *Config) { c.Shadow.TerrainBiasMax = 0 }, "terrain bias"},
		{"no samples", func(c *Config) { c.GodRays.Samples = 0 }, "samples"},
		{"zero soft m", func(c *Config) { c.Shadow.SoftM = 0 }, "soft_m"},
		{"no acceleration", func(c *Config) { c.Orbit.Acceleration = 0 }, "acceleration"},
		{"tiny crystal spacing", func(c *Config) { c.Scene.CrystalSpacing = 0.01 }, "crystal_spacing"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()

	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}
	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
}

func TestFindConfigFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	tmpDir := t.TempDir()
	t.Chdir(tmpDir)

	if path := findConfigFile(); path != "" {
		t.Errorf("expected empty path when no config exists, got %s", path)
	}

	configPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte("graphics:\n  width: 800\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}

	if path := findConfigFile(); path == "" {
		t.Error("expected to find config.yaml in current directory")
	}
}

func TestSaveToRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := Default()
	cfg.Terrain.Seed = 7
	cfg.GodRays.Density = 1.1
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("reloading saved config: %v", err)
	}
	if loaded.Terrain.Seed != 7 || loaded.GodRays.Density != 1.1 {
		t.Errorf("saved values lost: seed=%d density=%f", loaded.Terrain.Seed, loaded.GodRays.Density)
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name     string
		setup    func()
		verify   func(*testing.T, *Config)
		teardown func()
	}{
		{
			name:  "debug flag",
			setup: func() { *flagDebug = true },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
			},
			teardown: func() { *flagDebug = false },
		},
		{
			name:  "windowed flag",
			setup: func() { *flagWindowed = true },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Graphics.Fullscreen {
					t.Error("expected fullscreen to be false with windowed flag")
				}
			},
			teardown: func() { *flagWindowed = false },
		},
		{
			name:  "fullscreen flag",
			setup: func() { *flagFullscreen = true },
			verify: func(t *testing.T, cfg *Config) {
				if !cfg.Graphics.Fullscreen {
					t.Error("expected fullscreen to be true with fullscreen flag")
				}
			},
			teardown: func() { *flagFullscreen = false },
		},
		{
			name: "width and height flags",
			setup: func() {
				*flagWidth = 2560
				*flagHeight = 1440
			},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Graphics.Width != 2560 || cfg.Graphics.Height != 1440 {
					t.Errorf("expected 2560x1440, got %dx%d", cfg.Graphics.Width, cfg.Graphics.Height)
				}
			},
			teardown: func() {
				*flagWidth = 0
				*flagHeight = 0
			},
		},
		{
			name:  "seed flag",
			setup: func() { *flagSeed = 1234 },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Terrain.Seed != 1234 {
					t.Errorf("expected seed 1234, got %d", cfg.Terrain.Seed)
				}
			},
			teardown: func() { *flagSeed = -1 },
		},
		{
			name:  "assets and mute flags",
			setup: func() { *flagAssets = "/srv/assets"; *flagMute = true },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Assets.Root != "/srv/assets" {
					t.Errorf("expected asset root /srv/assets, got %s", cfg.Assets.Root)
				}
				if cfg.Audio.Enabled {
					t.Error("expected audio disabled by mute flag")
				}
			},
			teardown: func() { *flagAssets = ""; *flagMute = false },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			defer tt.teardown()

			cfg := Default()
			applyFlags(cfg)
			tt.verify(t, cfg)
		})
	}
}

func TestLoadPriority(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
graphics:
  width: 1600
  height: 900
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	*flagWidth = 1920
	defer func() {
		*flagConfig = ""
		*flagWidth = 0
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	// Width comes from the flag, height from the file.
	if cfg.Graphics.Width != 1920 {
		t.Errorf("expected width 1920 from flag, got %d", cfg.Graphics.Width)
	}
	if cfg.Graphics.Height != 900 {
		t.Errorf("expected height 900 from file, got %d", cfg.Graphics.Height)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(configPath, []byte("godrays:\n  samples: 0\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	defer func() { *flagConfig = "" }()

	if _, err := Load(); err == nil {
		t.Error("expected Load to reject zero samples")
	}
}
