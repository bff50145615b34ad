package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := parse(defaultConfigYAML)
	if err != nil {
		t.Fatalf("embedded defaults do not parse: %v", err)
	}

	def := DefaultConfig()
	if cfg.Board != def.Board || cfg.SSH != def.SSH || cfg.HTTP != def.HTTP || cfg.Log != def.Log {
		t.Errorf("embedded config %+v differs from DefaultConfig %+v", cfg, def)
	}
	if len(cfg.Layouts) != len(def.Layouts) {
		t.Fatalf("embedded layouts = %d, hardcoded = %d", len(cfg.Layouts), len(def.Layouts))
	}
	for i := range cfg.Layouts {
		if cfg.Layouts[i] != def.Layouts[i] {
			t.Errorf("layout %d: embedded %+v, hardcoded %+v", i, cfg.Layouts[i], def.Layouts[i])
		}
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := "board:\n  rows: 3\n  cols: 7\nlog:\n  level: debug\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Board.Rows != 3 || cfg.Board.Cols != 7 {
		t.Errorf("board = %+v, want 3x7", cfg.Board)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("log level = %q, want debug", cfg.Log.Level)
	}
	// Keys not in the file keep their defaults.
	if cfg.SSH.Address != ":23234" {
		t.Errorf("ssh address = %q, want default", cfg.SSH.Address)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Load should fail for a missing custom path")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("board: [not, a, map"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); err == nil {
		t.Error("Load should fail for invalid YAML")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("board:\n  rows: 0\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(invalid); err == nil || !strings.Contains(err.Error(), "at least 1x1") {
		t.Errorf("Load should reject a 0-row board, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{"defaults", func(*Config) {}, true},
		{"zero cols", func(c *Config) { c.Board.Cols = 0 }, false},
		{"unnamed layout", func(c *Config) { c.Layouts = append(c.Layouts, Layout{Rows: 2, Cols: 2}) }, false},
		{"duplicate layout", func(c *Config) { c.Layouts = append(c.Layouts, Layout{Name: "Classic", Rows: 2, Cols: 2}) }, false},
		{"empty layout", func(c *Config) { c.Layouts = append(c.Layouts, Layout{Name: "flat", Rows: 0, Cols: 2}) }, false},
		{"bad log level", func(c *Config) { c.Log.Level = "loud" }, false},
		{"negative idle timeout", func(c *Config) { c.SSH.IdleTimeoutMinutes = -1 }, false},
		{"negative request timeout", func(c *Config) { c.HTTP.RequestTimeoutSeconds = -1 }, false},
		{"zero http max rows", func(c *Config) { c.HTTP.MaxRows = 0 }, false},
		{"zero http max sessions", func(c *Config) { c.HTTP.MaxSessions = 0 }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.ok && err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
			if !tt.ok && err == nil {
				t.Error("Validate() = nil, want error")
			}
		})
	}
}

func TestLayoutLookup(t *testing.T) {
	cfg := DefaultConfig()

	l, err := cfg.Layout("WIDE")
	if err != nil {
		t.Fatalf("Layout: %v", err)
	}
	if l.Rows != 4 || l.Cols != 6 {
		t.Errorf("wide = %+v", l)
	}
	if l.String() != "wide (4x6)" {
		t.Errorf("String() = %q", l.String())
	}

	if _, err := cfg.Layout("nope"); !errors.Is(err, ErrUnknownLayout) {
		t.Errorf("Layout(nope) err = %v, want ErrUnknownLayout", err)
	}
}

func TestDurations(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.SSH.IdleTimeout() != 30*time.Minute {
		t.Errorf("IdleTimeout = %v", cfg.SSH.IdleTimeout())
	}
	if cfg.HTTP.RequestTimeout() != 10*time.Second {
		t.Errorf("RequestTimeout = %v", cfg.HTTP.RequestTimeout())
	}
}

func TestExpandHome(t *testing.T) {
	got, err := ExpandHome("/abs/path")
	if err != nil || got != "/abs/path" {
		t.Errorf("ExpandHome(abs) = %q, %v", got, err)
	}

	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	got, err = ExpandHome("~/key")
	if err != nil || got != filepath.Join(home, "key") {
		t.Errorf("ExpandHome(~/key) = %q, %v", got, err)
	}
}
