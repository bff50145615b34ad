package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/platform/httpapi"
)

var flagHTTPAddr string

var apiCmd = &cobra.Command{
	Use:   "api",
	Short: "Start the HTTP JSON API",
	Long: `Start an HTTP server exposing the 2048 engine as JSON.

Endpoints:
  GET    /health
  POST   /sessions               {"rows":4,"cols":4}
  GET    /sessions/{id}
  POST   /sessions/{id}/moves    {"direction":"left"}
  DELETE /sessions/{id}
  POST   /boards/move            {"board":[[1,1,0,0]],"direction":"left"}
  POST   /boards/spawn           {"board":[[1,0,0,0]]}

Boards are arrays of rows holding tile exponents: 0 is empty, 1 is a 2,
2 is a 4 and so on.

Examples:
  tui2048 api
  tui2048 api --http :9090`,
	RunE: runAPI,
}

func init() {
	apiCmd.Flags().StringVar(&flagHTTPAddr, "http", "", "HTTP listen address (host:port, default from config)")
}

func runAPI(cmd *cobra.Command, _ []string) error {
	appCfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger, closeLog, err := newLogger(appCfg, os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg := httpapi.Config{
		Address:        appCfg.HTTP.Address,
		Rows:           appCfg.Board.Rows,
		Cols:           appCfg.Board.Cols,
		RequestTimeout: appCfg.HTTP.RequestTimeout(),
		Seed:           flagSeed,
		MaxRows:        appCfg.HTTP.MaxRows,
		MaxCols:        appCfg.HTTP.MaxCols,
		MaxSessions:    appCfg.HTTP.MaxSessions,
	}
	if cmd.Flags().Changed("http") {
		cfg.Address = flagHTTPAddr
	}

	if err := httpapi.New(cfg, logger).ListenAndServe(); err != nil {
		return fmt.Errorf("server: %w", err)
	}
	return nil
}
