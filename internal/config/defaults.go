package config

import (
	_ "embed"
)

//go:embed defaults/config.yaml
var defaultConfigYAML []byte

// DefaultConfig returns the built-in configuration. The embedded YAML is
// normally used instead; this is the fallback if it fails to parse.
func DefaultConfig() Config {
	return Config{
		Board: BoardConfig{Rows: 4, Cols: 4},
		Layouts: []Layout{
			{Name: "classic", Rows: 4, Cols: 4},
			{Name: "tiny", Rows: 3, Cols: 3},
			{Name: "big", Rows: 5, Cols: 5},
			{Name: "huge", Rows: 6, Cols: 6},
			{Name: "wide", Rows: 4, Cols: 6},
		},
		SSH: SSHConfig{
			Address:            ":23234",
			IdleTimeoutMinutes: 30,
		},
		HTTP: HTTPConfig{
			Address:               ":8080",
			RequestTimeoutSeconds: 10,
			MaxRows:               16,
			MaxCols:               16,
			MaxSessions:           1024,
		},
		Log: LogConfig{Level: "info"},
	}
}
