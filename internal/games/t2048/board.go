// Package t2048 implements the 2048 board engine: fusion of a single row,
// the four directional moves derived from it, and random tile spawning.
//
// Boards hold exponents rather than face values. A cell value of 0 is empty
// and k > 0 is displayed as 2^k. All board functions are pure: they return
// new boards and never modify their arguments.
package t2048

import (
	"errors"
	"fmt"
	"math/bits"
	"slices"
)

// Cell is a tile exponent. 0 means the cell is empty.
type Cell = int

// Row is an ordered sequence of cells, one per column.
type Row []Cell

// Board is an ordered sequence of rows of equal length.
type Board []Row

// MaxCell is the largest exponent whose face value fits in an int.
const MaxCell Cell = bits.UintSize - 2

// Position identifies a single cell on a board.
type Position struct {
	Row int
	Col int
}

// Errors returned when a board or its dimensions cannot be used.
var (
	ErrMalformedBoard    = errors.New("t2048: malformed board")
	ErrInvalidDimensions = errors.New("t2048: invalid board dimensions")
)

// Dims returns the number of rows and columns of the board.
// Columns are taken from the first row.
func (b Board) Dims() (rows, cols int) {
	if len(b) == 0 {
		return 0, 0
	}
	return len(b), len(b[0])
}

// Clone returns a deep copy of the board.
func (b Board) Clone() Board {
	if b == nil {
		return nil
	}
	out := make(Board, len(b))
	for i, row := range b {
		out[i] = slices.Clone(row)
	}
	return out
}

// With returns a copy of the board with the cell at p set to v.
func (b Board) With(p Position, v Cell) Board {
	out := b.Clone()
	out[p.Row][p.Col] = v
	return out
}

// MaxExponent returns the highest exponent on the board.
func (b Board) MaxExponent() Cell {
	best := 0
	for _, row := range b {
		for _, c := range row {
			best = max(best, c)
		}
	}
	return best
}

// Equal reports whether two boards have the same dimensions and cells.
func Equal(a, b Board) bool {
	return slices.EqualFunc(a, b, func(x, y Row) bool {
		return slices.Equal(x, y)
	})
}

// Value returns the face value shown for a cell: 2^c, or 0 for an empty cell.
// Exponents above MaxCell report the value of MaxCell.
func Value(c Cell) int {
	if c <= 0 {
		return 0
	}
	return 1 << min(c, MaxCell)
}

// ValidateDims checks that a board of rows x cols can be created.
func ValidateDims(rows, cols int) error {
	if rows < 1 || cols < 1 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, rows, cols)
	}
	return nil
}

// rectangular reports whether every row has the length of the first.
func rectangular(b Board) bool {
	for _, row := range b {
		if len(row) != len(b[0]) {
			return false
		}
	}
	return true
}

// Validate checks that the board is non-empty and rectangular and that every
// cell is an exponent in [0, MaxCell].
func Validate(b Board) error {
	if len(b) == 0 {
		return fmt.Errorf("%w: no rows", ErrMalformedBoard)
	}
	cols := len(b[0])
	if cols == 0 {
		return fmt.Errorf("%w: no columns", ErrMalformedBoard)
	}
	for i, row := range b {
		if len(row) != cols {
			return fmt.Errorf("%w: row %d has %d cells, want %d", ErrMalformedBoard, i, len(row), cols)
		}
		for j, c := range row {
			if c < 0 || c > MaxCell {
				return fmt.Errorf("%w: cell %d out of range at (%d, %d)", ErrMalformedBoard, c, i, j)
			}
		}
	}
	return nil
}
