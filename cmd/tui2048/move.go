package main

import (
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/games/t2048"
)

var (
	flagBoard string
	flagSpawn bool
)

var moveCmd = &cobra.Command{
	Use:   "move <direction>",
	Short: "Apply one move to a JSON board",
	Long: `Read a board as a JSON array of rows of exponents, apply one move and
print the resulting board and whether it changed.

The board is read from --board or, if that is empty, from stdin.
Directions: left, right, up, down (or h/l/k/j, a/d/w/s).

With --spawn a tile is added after a move that changed the board, exactly
as in a game.

Examples:
  echo '[[1,1,0,0],[0,0,0,0]]' | tui2048 move left
  tui2048 move up --board '[[0,1],[1,0]]'
  tui2048 move right --board '[[1,0,0]]' --spawn --seed 3`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		in := io.Reader(os.Stdin)
		if flagBoard != "" {
			in = strings.NewReader(flagBoard)
		}
		seed := flagSeed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		return runMove(in, cmd.OutOrStdout(), args[0], flagSpawn, rand.New(rand.NewSource(seed)))
	},
}

func init() {
	moveCmd.Flags().StringVar(&flagBoard, "board", "", "Board as JSON (default: read stdin)")
	moveCmd.Flags().BoolVar(&flagSpawn, "spawn", false, "Spawn a tile when the board changed")
}

type moveOutput struct {
	Board   t2048.Board `json:"board"`
	Changed bool        `json:"changed"`
}

// runMove decodes a board from in, applies dir and writes the result to out.
func runMove(in io.Reader, out io.Writer, dirName string, spawn bool, rng t2048.Source) error {
	dir, err := t2048.ParseDirection(dirName)
	if err != nil {
		return err
	}

	var board t2048.Board
	if err := json.NewDecoder(in).Decode(&board); err != nil {
		return fmt.Errorf("reading board: %w", err)
	}

	var res moveOutput
	if spawn {
		ctrl, err := t2048.NewControllerFromBoard(board, rng)
		if err != nil {
			return err
		}
		res.Changed = ctrl.HandleDirection(dir)
		res.Board = ctrl.Board()
	} else {
		if err := t2048.Validate(board); err != nil {
			return err
		}
		res.Board = t2048.ApplyMove(dir, board)
		res.Changed = !t2048.Equal(board, res.Board)
	}

	return json.NewEncoder(out).Encode(res)
}
