package t2048

import (
	"fmt"
	"strings"
)

// Direction represents a move direction.
type Direction int

const (
	DirLeft Direction = iota
	DirRight
	DirUp
	DirDown
)

// Directions lists every move direction in a stable order.
var Directions = []Direction{DirLeft, DirRight, DirUp, DirDown}

// String returns the lowercase name of the direction.
func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// ParseDirection converts a name like "left" or a single vi/WASD key
// ("h", "a", ...) into a Direction.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left", "h", "a":
		return DirLeft, nil
	case "right", "l", "d":
		return DirRight, nil
	case "up", "k", "w":
		return DirUp, nil
	case "down", "j", "s":
		return DirDown, nil
	}
	return 0, fmt.Errorf("t2048: unknown direction %q", s)
}

// MoveLeft fuses every row toward the left edge.
func MoveLeft(b Board) Board {
	return Map(FuseLeft, b)
}

// MoveRight mirrors the board, fuses left and mirrors back.
func MoveRight(b Board) Board {
	return moveRight(b)
}

// MoveUp transposes the board so columns become rows, fuses left and
// transposes back.
func MoveUp(b Board) Board {
	return moveUp(b)
}

// MoveDown transposes and mirrors the board, fuses left, then undoes both.
func MoveDown(b Board) Board {
	return moveDown(b)
}

var (
	moveRight = compose(ReverseRows, MoveLeft, ReverseRows)
	moveUp    = compose(Transpose, MoveLeft, Transpose)
	moveDown  = compose(Transpose, ReverseRows, MoveLeft, ReverseRows, Transpose)
)

// MoveFunc returns the move function for a direction.
func MoveFunc(dir Direction) (func(Board) Board, bool) {
	switch dir {
	case DirLeft:
		return MoveLeft, true
	case DirRight:
		return MoveRight, true
	case DirUp:
		return MoveUp, true
	case DirDown:
		return MoveDown, true
	default:
		return nil, false
	}
}

// ApplyMove returns the board after fusing in the given direction.
// No tile is spawned. Unknown directions and boards rejected by Validate
// return an unchanged copy.
func ApplyMove(dir Direction, b Board) Board {
	move, ok := MoveFunc(dir)
	if !ok || Validate(b) != nil {
		return b.Clone()
	}
	return move(b)
}
