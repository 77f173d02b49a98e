package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "chronicle.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.History.Capacity != 1000 {
		t.Errorf("capacity = %d, want 1000", cfg.History.Capacity)
	}
	if cfg.Editor.TabWidth != 4 {
		t.Errorf("tab width = %d, want 4", cfg.Editor.TabWidth)
	}
	if !cfg.UI.StatusLine {
		t.Error("status line should default to on")
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.History.Capacity != 1000 {
		t.Errorf("capacity = %d, want 1000", cfg.History.Capacity)
	}
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `
[history]
capacity = 50

[editor]
tab_width = 8

[ui]
status_line = false
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.History.Capacity != 50 {
		t.Errorf("capacity = %d, want 50", cfg.History.Capacity)
	}
	if cfg.Editor.TabWidth != 8 {
		t.Errorf("tab width = %d, want 8", cfg.Editor.TabWidth)
	}
	if cfg.UI.StatusLine {
		t.Error("status line should be off")
	}
}

func TestLoadInvalidTOML(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "[history\ncapacity = ???")

	if _, err := Load(path); err == nil {
		t.Error("expected parse error")
	}
}

func TestEnvOverrides(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `
[history]
capacity = 50
`)
	t.Setenv("CHRONICLE_HISTORY_CAPACITY", "7")
	t.Setenv("CHRONICLE_STATUS_LINE", "false")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.History.Capacity != 7 {
		t.Errorf("capacity = %d, want 7 (env override)", cfg.History.Capacity)
	}
	if cfg.UI.StatusLine {
		t.Error("status line should be off via env")
	}
}

func TestEnvIgnoresUnparsable(t *testing.T) {
	t.Setenv("CHRONICLE_HISTORY_CAPACITY", "lots")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.History.Capacity != 1000 {
		t.Errorf("capacity = %d, want default 1000", cfg.History.Capacity)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		mod  func(*Config)
		want error
	}{
		{"zero capacity", func(c *Config) { c.History.Capacity = 0 }, ErrInvalidCapacity},
		{"negative capacity", func(c *Config) { c.History.Capacity = -5 }, ErrInvalidCapacity},
		{"unbounded ignores capacity", func(c *Config) {
			c.History.Capacity = 0
			c.History.Unbounded = true
		}, nil},
		{"tab width too small", func(c *Config) { c.Editor.TabWidth = 0 }, ErrInvalidTabWidth},
		{"tab width too large", func(c *Config) { c.Editor.TabWidth = 32 }, ErrInvalidTabWidth},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mod(&cfg)
			if err := cfg.Validate(); !errors.Is(err, tt.want) {
				t.Errorf("got %v, want %v", err, tt.want)
			}
		})
	}
}

func TestWatcherDeliversReload(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, `
[history]
capacity = 10
`)

	w, err := NewWatcher(path, WithDebounce(50*time.Millisecond))
	if err != nil {
		t.Fatalf("NewWatcher failed: %v", err)
	}
	defer w.Close()

	writeConfig(t, dir, `
[history]
capacity = 20
`)

	select {
	case cfg := <-w.Updates():
		if cfg.History.Capacity != 20 {
			t.Errorf("capacity = %d, want 20", cfg.History.Capacity)
		}
	case err := <-w.Errors():
		t.Fatalf("watcher error: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for reload")
	}
}
