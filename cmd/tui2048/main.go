// tui2048 plays 2048 in the terminal, over SSH or through a JSON API.
//
// Usage:
//
//	tui2048 play [layout]     - Play a game (menu when no layout is given)
//	tui2048 layouts           - List configured board layouts
//	tui2048 serve             - Start SSH server for remote play
//	tui2048 api               - Start the HTTP JSON API
//	tui2048 move <direction>  - Apply one move to a JSON board
//
// Global flags:
//
//	--seed <value>      - Set RNG seed for reproducible boards
//	--config <path>     - Path to config YAML
//	--log-level <level> - debug, info, warn or error
//	--log-file <path>   - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/config"
)

var (
	// Global flags
	flagSeed     int64
	flagConfig   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tui2048",
	Short: "2048 in your terminal",
	Long: `tui2048 is the sliding tile game 2048 for the terminal.

Available commands:
  play     - Play a game locally
  layouts  - Show configured board layouts
  serve    - Start SSH server for remote play
  api      - Start the HTTP JSON API
  move     - Apply one move to a board read as JSON

Examples:
  tui2048 play
  tui2048 play wide
  tui2048 play --rows 5 --cols 7
  tui2048 serve --ssh :2222
  echo '[[1,1,0,0]]' | tui2048 move left`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(layoutsCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(apiCmd)
	rootCmd.AddCommand(moveCmd)
}

// loadConfig loads the configuration named by --config or the default search
// path.
func loadConfig() (config.Config, error) {
	return config.Load(flagConfig)
}

// newLogger builds the root logger. Logs go to --log-file when it is set and
// to fallback otherwise. The returned close function releases the file.
func newLogger(cfg config.Config, fallback io.Writer) (*log.Logger, func(), error) {
	levelName := cfg.Log.Level
	if flagLogLevel != "" {
		levelName = flagLogLevel
	}
	level, err := log.ParseLevel(levelName)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level %q: %w", levelName, err)
	}

	w, closeFn := fallback, func() {}
	if flagLogFile != "" {
		path, err := config.ExpandHome(flagLogFile)
		if err != nil {
			return nil, nil, err
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w, closeFn = f, func() { _ = f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "tui2048",
		Level:           level,
	})
	return logger, closeFn, nil
}
