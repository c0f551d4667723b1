// Package config holds player preferences.
//
// Values are layered: built-in defaults, then the YAML file, then
// NETBREACH_* environment variables. Command-line flags are applied last by
// the caller.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"netbreach/pkg/game/wordlist"
)

// Renderer names
const (
	RendererTUI = "tui"
	RendererGUI = "gui"
)

// EnvPrefix is prepended to every environment variable name
const EnvPrefix = "NETBREACH_"

// Font size bounds for the GUI
const (
	MinFontSize     = 8.0
	MaxFontSize     = 48.0
	DefaultFontSize = 16.0
)

// Config is the full set of preferences
type Config struct {
	Renderer     string  `yaml:"renderer" env:"RENDERER"`
	Wordlist     string  `yaml:"wordlist" env:"WORDLIST"`
	Seed         int64   `yaml:"seed" env:"SEED"` // 0 picks a time-based seed
	Language     string  `yaml:"language" env:"LANGUAGE"`
	LogFile      string  `yaml:"log_file" env:"LOG_FILE"`
	LogLevel     string  `yaml:"log_level" env:"LOG_LEVEL"`
	WindowWidth  int     `yaml:"window_width" env:"WINDOW_WIDTH"`
	WindowHeight int     `yaml:"window_height" env:"WINDOW_HEIGHT"`
	FontSize     float64 `yaml:"font_size" env:"FONT_SIZE"`
}

// Default returns the built-in preferences
func Default() *Config {
	return &Config{
		Renderer:     RendererTUI,
		Wordlist:     wordlist.Easy.String(),
		Language:     "en",
		LogLevel:     "info",
		WindowWidth:  1024,
		WindowHeight: 768,
		FontSize:     DefaultFontSize,
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/netbreach/config.yaml or the
// platform equivalent
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = "."
	}
	return filepath.Join(dir, "netbreach", "config.yaml")
}

// Load reads path over the defaults and applies environment overrides.
// A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg, err := LoadFile(path)
	if err != nil {
		return nil, err
	}
	if err := ParseEnv(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFile reads path over the defaults without environment overrides.
// It is the layer Save writes back.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("failed to read config: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}
	return cfg, nil
}

// ParseEnv overlays NETBREACH_* variables onto target
func ParseEnv(target any) error {
	if err := env.ParseWithOptions(target, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Validate rejects values no component can use
func (c *Config) Validate() error {
	var errs []error
	if c.Renderer != RendererTUI && c.Renderer != RendererGUI {
		errs = append(errs, fmt.Errorf("unknown renderer %q (want %s or %s)", c.Renderer, RendererTUI, RendererGUI))
	}
	if _, err := wordlist.ParseDifficulty(c.Wordlist); err != nil {
		errs = append(errs, err)
	}
	if c.WindowWidth <= 0 || c.WindowHeight <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", c.WindowWidth, c.WindowHeight))
	}
	if c.FontSize < MinFontSize || c.FontSize > MaxFontSize {
		errs = append(errs, fmt.Errorf("font size %.1f outside [%.0f, %.0f]", c.FontSize, MinFontSize, MaxFontSize))
	}
	return errors.Join(errs...)
}

// Difficulty returns the configured word list. Call Validate first.
func (c *Config) Difficulty() wordlist.Difficulty {
	d, _ := wordlist.ParseDifficulty(c.Wordlist)
	return d
}

// SetFontSize clamps size into the allowed range and stores it
func (c *Config) SetFontSize(size float64) {
	switch {
	case size < MinFontSize:
		size = MinFontSize
	case size > MaxFontSize:
		size = MaxFontSize
	}
	c.FontSize = size
}

// SaveFontSize stores size in the file at path and leaves every other
// value as the file had it, so env and flag overrides of this run are
// not persisted.
func SaveFontSize(path string, size float64) error {
	cfg, err := LoadFile(path)
	if err != nil {
		return err
	}
	cfg.SetFontSize(size)
	return cfg.Save(path)
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}
