package main

import (
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/platform/tui"
)

var (
	flagRows int
	flagCols int
)

var playCmd = &cobra.Command{
	Use:   "play [layout]",
	Short: "Play a game",
	Long: `Start playing 2048.

Without arguments a menu of the configured layouts is shown. With a layout
name, or with --rows/--cols, the game starts right away.

Controls:
  Arrows/WASD/HJKL - Slide tiles
  R                - New board
  Ctrl+S           - Save a screenshot to ~/.tui2048/screenshots
  Esc/B            - Back to menu
  Q/Ctrl+C         - Quit

Examples:
  tui2048 play
  tui2048 play classic
  tui2048 play --rows 3 --cols 8
  tui2048 play tiny --seed 42`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagRows, "rows", 0, "Board rows (overrides layout)")
	playCmd.Flags().IntVar(&flagCols, "cols", 0, "Board columns (overrides layout)")
}

func runPlay(cmd *cobra.Command, args []string) error {
	appCfg, err := loadConfig()
	if err != nil {
		return err
	}

	// Logging to the terminal would corrupt the alt screen.
	logger, closeLog, err := newLogger(appCfg, io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW: width,
		ScreenH: height,
		Rows:    appCfg.Board.Rows,
		Cols:    appCfg.Board.Cols,
		Seed:    flagSeed,
	}
	sessionID := uuid.New().String()

	rowsSet, colsSet := cmd.Flags().Changed("rows"), cmd.Flags().Changed("cols")
	if len(args) == 0 && !rowsSet && !colsSet {
		if err := tui.RunSession(cfg, appCfg.Layouts, logger, sessionID); err != nil {
			return fmt.Errorf("running session: %w", err)
		}
		return nil
	}

	if len(args) == 1 {
		layout, err := appCfg.Layout(args[0])
		if err != nil {
			return fmt.Errorf("%w (run 'tui2048 layouts' to see them)", err)
		}
		cfg.Rows, cfg.Cols = layout.Rows, layout.Cols
	}
	if rowsSet {
		cfg.Rows = flagRows
	}
	if colsSet {
		cfg.Cols = flagCols
	}

	if err := tui.Run(cfg, logger, sessionID); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
