// Package config provides YAML-based configuration loading for tui2048:
// board size, named board layouts and the settings of the SSH and HTTP hosts.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

// Config is the complete application configuration.
type Config struct {
	Board   BoardConfig `yaml:"board"`
	Layouts []Layout    `yaml:"layouts"`
	SSH     SSHConfig   `yaml:"ssh"`
	HTTP    HTTPConfig  `yaml:"http"`
	Log     LogConfig   `yaml:"log"`
}

// BoardConfig is the board size used when no layout is named.
type BoardConfig struct {
	Rows int `yaml:"rows"`
	Cols int `yaml:"cols"`
}

// Layout is a named board size offered in menus and on the command line.
type Layout struct {
	Name string `yaml:"name"`
	Rows int    `yaml:"rows"`
	Cols int    `yaml:"cols"`
}

// String returns a label like "classic (4x4)".
func (l Layout) String() string {
	return fmt.Sprintf("%s (%dx%d)", l.Name, l.Rows, l.Cols)
}

// SSHConfig configures the Wish SSH server.
type SSHConfig struct {
	Address            string `yaml:"address"`
	HostKey            string `yaml:"host_key"` // empty = ~/.tui2048/host_key
	IdleTimeoutMinutes int    `yaml:"idle_timeout_minutes"`
}

// IdleTimeout returns the idle timeout as a duration.
func (c SSHConfig) IdleTimeout() time.Duration {
	return time.Duration(c.IdleTimeoutMinutes) * time.Minute
}

// HTTPConfig configures the JSON API server.
type HTTPConfig struct {
	Address               string `yaml:"address"`
	RequestTimeoutSeconds int    `yaml:"request_timeout_seconds"`
	MaxRows               int    `yaml:"max_rows"`     // largest board the API accepts
	MaxCols               int    `yaml:"max_cols"`
	MaxSessions           int    `yaml:"max_sessions"` // live sessions kept in memory
}

// RequestTimeout returns the per-request timeout as a duration.
func (c HTTPConfig) RequestTimeout() time.Duration {
	return time.Duration(c.RequestTimeoutSeconds) * time.Second
}

// LogConfig configures logging.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn or error
}

// ErrUnknownLayout is returned by Layout for names that are not configured.
var ErrUnknownLayout = errors.New("config: unknown layout")

// Layout returns the layout with the given name.
func (c Config) Layout(name string) (Layout, error) {
	for _, l := range c.Layouts {
		if strings.EqualFold(l.Name, name) {
			return l, nil
		}
	}
	return Layout{}, fmt.Errorf("%w %q", ErrUnknownLayout, name)
}

// Validate checks the configuration for values the hosts cannot use.
func (c Config) Validate() error {
	if c.Board.Rows < 1 || c.Board.Cols < 1 {
		return fmt.Errorf("config: board must be at least 1x1, got %dx%d", c.Board.Rows, c.Board.Cols)
	}

	seen := make(map[string]bool, len(c.Layouts))
	for i, l := range c.Layouts {
		if l.Name == "" {
			return fmt.Errorf("config: layout %d has no name", i)
		}
		key := strings.ToLower(l.Name)
		if seen[key] {
			return fmt.Errorf("config: duplicate layout %q", l.Name)
		}
		seen[key] = true
		if l.Rows < 1 || l.Cols < 1 {
			return fmt.Errorf("config: layout %q must be at least 1x1, got %dx%d", l.Name, l.Rows, l.Cols)
		}
	}

	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if c.SSH.IdleTimeoutMinutes < 0 {
		return fmt.Errorf("config: ssh idle timeout must not be negative")
	}
	if c.HTTP.RequestTimeoutSeconds < 0 {
		return fmt.Errorf("config: http request timeout must not be negative")
	}
	if c.HTTP.MaxRows < 1 || c.HTTP.MaxCols < 1 {
		return fmt.Errorf("config: http max board must be at least 1x1, got %dx%d", c.HTTP.MaxRows, c.HTTP.MaxCols)
	}
	if c.HTTP.MaxSessions < 1 {
		return fmt.Errorf("config: http max sessions must be at least 1, got %d", c.HTTP.MaxSessions)
	}
	return nil
}
