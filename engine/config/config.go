package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/gpietz/go-gl-forge/engine/core"
)

// Config carries everything the sandbox reads at startup. Values come from
// a TOML file, missing fields keep the defaults from Default().
type Config struct {
	Window WindowConfig `toml:"window"`
	Log    LogConfig    `toml:"log"`
	Assets AssetsConfig `toml:"assets"`
	Scene  SceneConfig  `toml:"scene"`
}

type WindowConfig struct {
	// The window title used in windowing.
	Title string `toml:"title"`
	// Window starting position x axis, if applicable.
	StartPosX int `toml:"start_pos_x"`
	// Window starting position y axis, if applicable.
	StartPosY int `toml:"start_pos_y"`
	// Window starting width.
	Width int `toml:"width"`
	// Window starting height.
	Height int `toml:"height"`
	VSync  bool `toml:"vsync"`
}

type LogConfig struct {
	Level string `toml:"level"`
}

type AssetsConfig struct {
	// Root directory the loaders and the hot-reload watcher resolve
	// relative paths against.
	Root string `toml:"root"`
	// Re-compile shaders when their source file changes on disk.
	HotReload bool `toml:"hot_reload"`
}

type SceneConfig struct {
	// Name of the scene activated at startup.
	Startup string `toml:"startup"`
	// Background clear color as RGBA in [0, 1].
	ClearColor [4]float32 `toml:"clear_color"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title:  "GL Forge",
			Width:  800,
			Height: 600,
			VSync:  true,
		},
		Log: LogConfig{
			Level: string(core.InfoLevel),
		},
		Assets: AssetsConfig{
			Root:      "assets",
			HotReload: true,
		},
		Scene: SceneConfig{
			Startup:    "first_triangle",
			ClearColor: [4]float32{0.10, 0.10, 0.12, 1.0},
		},
	}
}

// Load reads a TOML file on top of the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes TOML bytes on top of the defaults.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects values the platform layer cannot work with.
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("config: window size %dx%d is not positive", c.Window.Width, c.Window.Height)
	}
	if c.Window.Title == "" {
		return fmt.Errorf("config: window title must not be empty")
	}
	switch core.LogLevel(c.Log.Level) {
	case core.DebugLevel, core.InfoLevel, core.WarnLevel, core.ErrorLevel:
	default:
		return fmt.Errorf("config: unknown log level %q", c.Log.Level)
	}
	for i, ch := range c.Scene.ClearColor {
		if ch < 0 || ch > 1 {
			return fmt.Errorf("config: clear_color[%d] = %v outside [0, 1]", i, ch)
		}
	}
	return nil
}

// LogLevel returns the configured level as the core type.
func (c *Config) LogLevel() core.LogLevel {
	return core.LogLevel(c.Log.Level)
}
