package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultsAreValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 800, cfg.Window.Width)
	assert.Equal(t, 600, cfg.Window.Height)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestParseOverridesDefaults(t *testing.T) {
	cfg, err := Parse([]byte(`
[window]
title = "Forge Sandbox"
width = 1280
height = 720
vsync = false

[log]
level = "debug"

[scene]
startup = "texture_triangle"
clear_color = [0.0, 0.0, 0.0, 1.0]
`))
	require.NoError(t, err)
	assert.Equal(t, "Forge Sandbox", cfg.Window.Title)
	assert.Equal(t, 1280, cfg.Window.Width)
	assert.False(t, cfg.Window.VSync)
	assert.Equal(t, "texture_triangle", cfg.Scene.Startup)
	// Untouched sections keep their defaults.
	assert.Equal(t, "assets", cfg.Assets.Root)
	assert.True(t, cfg.Assets.HotReload)
}

func TestParseRejectsBadValues(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"zero width", "[window]\nwidth = 0"},
		{"negative height", "[window]\nheight = -1"},
		{"empty title", "[window]\ntitle = \"\""},
		{"unknown log level", "[log]\nlevel = \"verbose\""},
		{"clear color out of range", "[scene]\nclear_color = [2.0, 0.0, 0.0, 1.0]"},
		{"not toml at all", "{ json: true }"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.body))
			assert.Error(t, err)
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "forge.toml")
	require.NoError(t, os.WriteFile(path, []byte("[window]\ntitle = \"From Disk\"\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "From Disk", cfg.Window.Title)

	_, err = Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}
