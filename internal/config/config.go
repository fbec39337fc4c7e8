package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix marks environment variables that override file settings.
const EnvPrefix = "CURTAINS_"

type Config struct {
	TransitionMS int  `koanf:"transition_ms"` // curtain slide duration
	TabWidth     int  `koanf:"tab_width"`
	Wrap         bool `koanf:"wrap"`         // false truncates long lines
	StartActive  bool `koanf:"start_active"` // show curtains on the first document
	Debug        bool `koanf:"debug"`        // log to debug.log

	Theme ThemeConfig `koanf:"theme"`
}

// ThemeConfig overrides curtain colors. Empty values keep the defaults.
type ThemeConfig struct {
	Curtain     string `koanf:"curtain"`      // outer edge, e.g. "#000000"
	CurtainEdge string `koanf:"curtain_edge"` // inner edge
	Grip        string `koanf:"grip"`
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	return &Config{
		TransitionMS: 1000,
		TabWidth:     4,
		Wrap:         true,
	}
}

// Load reads the config files in priority order, then extra (if not
// empty), then CURTAINS_* environment variables. Missing files are
// skipped; an explicit extra file must exist.
func Load(extra string) (*Config, error) {
	k := koanf.New(".")

	// Try config files in order of priority (last wins)
	for _, path := range getConfigPaths() {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, fmt.Errorf("reading config %s: %w", path, err)
			}
		}
	}

	if extra != "" {
		extra = expandPath(extra)
		if err := k.Load(file.Provider(extra), toml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", extra, err)
		}
	}

	// CURTAINS_TAB_WIDTH -> tab_width, CURTAINS_THEME_GRIP -> theme.grip
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	cfg := Default()
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}
	cfg.normalize()

	return cfg, nil
}

func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	if rest, ok := strings.CutPrefix(key, "theme_"); ok {
		return "theme." + rest
	}
	return key
}

func (c *Config) normalize() {
	if c.TransitionMS < 0 {
		c.TransitionMS = 0
	}
	if c.TabWidth <= 0 || c.TabWidth > 16 {
		c.TabWidth = 4
	}
}

// Transition returns the curtain slide duration.
func (c *Config) Transition() time.Duration {
	return time.Duration(c.TransitionMS) * time.Millisecond
}

func getConfigPaths() []string {
	paths := []string{}

	// 1. ~/.config/curtains/config.toml
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "curtains", "config.toml"))
	}

	// 2. ./config.toml (pwd, highest priority)
	paths = append(paths, "config.toml")

	return paths
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}
