package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"netbreach/pkg/game/wordlist"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := writeFile(t, "renderer: gui\nwordlist: hard\nseed: 42\nfont_size: 20\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, RendererGUI, cfg.Renderer)
	assert.Equal(t, wordlist.Hard, cfg.Difficulty())
	assert.Equal(t, int64(42), cfg.Seed)
	assert.Equal(t, 20.0, cfg.FontSize)
	assert.Equal(t, 1024, cfg.WindowWidth, "unset keys keep their default")
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeFile(t, "renderer: gui\nseed: 42\n")
	t.Setenv("NETBREACH_RENDERER", "tui")
	t.Setenv("NETBREACH_LOG_LEVEL", "debug")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, RendererTUI, cfg.Renderer)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, int64(42), cfg.Seed)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("bad yaml", func(t *testing.T) {
		_, err := Load(writeFile(t, "renderer: [unterminated\n"))
		assert.ErrorContains(t, err, "failed to parse config")
	})
	t.Run("bad env", func(t *testing.T) {
		t.Setenv("NETBREACH_SEED", "not-a-number")
		_, err := Load(filepath.Join(t.TempDir(), "none.yaml"))
		assert.ErrorContains(t, err, "parse env")
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"renderer", func(c *Config) { c.Renderer = "web" }},
		{"wordlist", func(c *Config) { c.Wordlist = "nightmare" }},
		{"window", func(c *Config) { c.WindowHeight = 0 }},
		{"font", func(c *Config) { c.FontSize = 2 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestSetFontSize_Clamps(t *testing.T) {
	cfg := Default()
	cfg.SetFontSize(1)
	assert.Equal(t, MinFontSize, cfg.FontSize)
	cfg.SetFontSize(100)
	assert.Equal(t, MaxFontSize, cfg.FontSize)
	cfg.SetFontSize(18)
	assert.Equal(t, 18.0, cfg.FontSize)
}

func TestSave_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "config.yaml")
	cfg := Default()
	cfg.Renderer = RendererGUI
	cfg.SetFontSize(22)

	require.NoError(t, cfg.Save(path))
	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestSaveFontSize_OnlyTouchesFontSize(t *testing.T) {
	path := writeFile(t, "wordlist: hard\nfont_size: 18\n")
	t.Setenv("NETBREACH_SEED", "42")
	t.Setenv("NETBREACH_LOG_FILE", "/tmp/once.log")

	require.NoError(t, SaveFontSize(path, 100))

	saved, err := LoadFile(path)
	require.NoError(t, err)
	want := Default()
	want.Wordlist = "hard"
	want.FontSize = MaxFontSize
	assert.Equal(t, want, saved)
}

func TestLoadFile_IgnoresEnv(t *testing.T) {
	path := writeFile(t, "seed: 3\n")
	t.Setenv("NETBREACH_SEED", "9")

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, int64(3), cfg.Seed)
}
