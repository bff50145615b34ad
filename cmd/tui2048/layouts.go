package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var layoutsCmd = &cobra.Command{
	Use:   "layouts",
	Short: "List configured board layouts",
	Long:  `Shows the named board layouts that 'play' and the SSH menu offer.`,
	RunE:  runLayouts,
}

func runLayouts(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if len(cfg.Layouts) == 0 {
		fmt.Println("No layouts configured.")
		return nil
	}

	fmt.Println("Available layouts:")
	fmt.Println()

	// Calculate column widths
	maxNameLen := 4 // "Name" header
	for _, l := range cfg.Layouts {
		maxNameLen = max(maxNameLen, len(l.Name))
	}

	// Print header
	fmt.Printf("  %-*s  %s\n", maxNameLen, "Name", "Size")
	fmt.Printf("  %-*s  %s\n", maxNameLen, "----", "----")

	for _, l := range cfg.Layouts {
		fmt.Printf("  %-*s  %dx%d\n", maxNameLen, l.Name, l.Rows, l.Cols)
	}

	fmt.Println()
	fmt.Printf("Default board: %dx%d\n", cfg.Board.Rows, cfg.Board.Cols)
	fmt.Println("Run 'tui2048 play <layout>' to start playing.")
	return nil
}
