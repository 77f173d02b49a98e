// Package config loads chronicle's configuration from a TOML file with
// environment variable overrides, and can watch the file for changes.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/pelletier/go-toml/v2"
)

// EnvPrefix is the prefix for environment variable overrides.
const EnvPrefix = "CHRONICLE_"

// Errors returned by configuration loading.
var (
	// ErrInvalidCapacity indicates a non-positive history capacity.
	ErrInvalidCapacity = errors.New("history capacity must be positive")

	// ErrInvalidTabWidth indicates a tab width outside [1, 16].
	ErrInvalidTabWidth = errors.New("tab width out of range")
)

// Config holds all chronicle settings.
type Config struct {
	History HistoryConfig `toml:"history"`
	Editor  EditorConfig  `toml:"editor"`
	UI      UIConfig      `toml:"ui"`
}

// HistoryConfig controls the undo/redo journal.
type HistoryConfig struct {
	// Capacity is the maximum number of retained undo entries. Ignored
	// when Unbounded is set.
	Capacity int `toml:"capacity"`

	// Unbounded disables eviction entirely.
	Unbounded bool `toml:"unbounded"`
}

// EditorConfig controls the edit buffer.
type EditorConfig struct {
	TabWidth int `toml:"tab_width"`
}

// UIConfig controls the terminal UI.
type UIConfig struct {
	StatusLine bool   `toml:"status_line"`
	KeymapPath string `toml:"keymap_path"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		History: HistoryConfig{Capacity: 1000},
		Editor:  EditorConfig{TabWidth: 4},
		UI:      UIConfig{StatusLine: true},
	}
}

// Load reads configuration from the given TOML file, applies CHRONICLE_*
// environment overrides, and validates the result. A missing file is not
// an error; defaults are used.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			// File doesn't exist, not an error
		case err != nil:
			return cfg, fmt.Errorf("reading config file %s: %w", path, err)
		default:
			if err := toml.Unmarshal(data, &cfg); err != nil {
				return cfg, fmt.Errorf("parsing config file %s: %w", path, err)
			}
		}
	}

	applyEnv(&cfg)

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// applyEnv overlays CHRONICLE_* environment variables onto cfg. Unparsable
// values are ignored in favor of the file/default value.
func applyEnv(cfg *Config) {
	if v, ok := lookupInt(EnvPrefix + "HISTORY_CAPACITY"); ok {
		cfg.History.Capacity = v
	}
	if v, ok := lookupBool(EnvPrefix + "HISTORY_UNBOUNDED"); ok {
		cfg.History.Unbounded = v
	}
	if v, ok := lookupInt(EnvPrefix + "TAB_WIDTH"); ok {
		cfg.Editor.TabWidth = v
	}
	if v, ok := lookupBool(EnvPrefix + "STATUS_LINE"); ok {
		cfg.UI.StatusLine = v
	}
	if v, ok := os.LookupEnv(EnvPrefix + "KEYMAP"); ok {
		cfg.UI.KeymapPath = v
	}
}

func lookupInt(name string) (int, bool) {
	s, ok := os.LookupEnv(name)
	if !ok {
		return 0, false
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return v, true
}

func lookupBool(name string) (bool, bool) {
	s, ok := os.LookupEnv(name)
	if !ok {
		return false, false
	}
	v, err := strconv.ParseBool(s)
	if err != nil {
		return false, false
	}
	return v, true
}

// Validate checks the configuration for contract violations.
func (c Config) Validate() error {
	if !c.History.Unbounded && c.History.Capacity <= 0 {
		return ErrInvalidCapacity
	}
	if c.Editor.TabWidth < 1 || c.Editor.TabWidth > 16 {
		return ErrInvalidTabWidth
	}
	return nil
}
