package t2048

import (
	"errors"
	"math/rand"
	"testing"
)

func TestNewController(t *testing.T) {
	c, err := NewController(4, 4, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("NewController: %v", err)
	}
	if got := len(EmptyCells(c.Board())); got != 14 {
		t.Errorf("new game should have 14 empty cells, got %d", got)
	}
	if c.Moves() != 0 {
		t.Errorf("Moves() = %d, want 0", c.Moves())
	}
}

func TestNewControllerInvalidDims(t *testing.T) {
	for _, dims := range [][2]int{{0, 4}, {4, 0}, {-1, 3}} {
		_, err := NewController(dims[0], dims[1], rand.New(rand.NewSource(1)))
		if !errors.Is(err, ErrInvalidDimensions) {
			t.Errorf("NewController(%d, %d) err = %v, want ErrInvalidDimensions", dims[0], dims[1], err)
		}
	}
}

func TestNewControllerFromBoardRejectsMalformed(t *testing.T) {
	tests := []struct {
		name  string
		board Board
	}{
		{"no rows", Board{}},
		{"no columns", Board{{}}},
		{"ragged", Board{{1, 0}, {1}}},
		{"negative cell", Board{{1, -1}}},
		{"exponent too large", Board{{MaxCell + 1, 0}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewControllerFromBoard(tt.board, rand.New(rand.NewSource(1)))
			if !errors.Is(err, ErrMalformedBoard) {
				t.Errorf("err = %v, want ErrMalformedBoard", err)
			}
		})
	}
}

func TestControllerNoSpawnWithoutChange(t *testing.T) {
	src := &scriptedSource{}
	c, err := NewControllerFromBoard(Board{{1, 2, 0, 0}}, src)
	if err != nil {
		t.Fatal(err)
	}

	if c.HandleDirection(DirLeft) {
		t.Error("HandleDirection(left) on a left-packed row should report no change")
	}
	if !Equal(c.Board(), Board{{1, 2, 0, 0}}) {
		t.Errorf("board changed to %v", c.Board())
	}
	if len(src.calls) != 0 {
		t.Errorf("no tile should be drawn for a no-op move, calls = %v", src.calls)
	}
	if c.Moves() != 0 {
		t.Errorf("Moves() = %d after a no-op move", c.Moves())
	}
}

func TestControllerSpawnsAfterChange(t *testing.T) {
	// Empty cell index 0 after the move, then a draw giving exponent 1.
	src := &scriptedSource{values: []int{0, 0}}
	c, err := NewControllerFromBoard(Board{{0, 1, 1, 0}}, src)
	if err != nil {
		t.Fatal(err)
	}

	if !c.HandleDirection(DirRight) {
		t.Fatal("HandleDirection(right) should change the board")
	}
	if want := (Board{{1, 0, 0, 2}}); !Equal(c.Board(), want) {
		t.Errorf("board = %v, want %v", c.Board(), want)
	}
	if c.Moves() != 1 {
		t.Errorf("Moves() = %d, want 1", c.Moves())
	}
}

func TestControllerBoardIsCopy(t *testing.T) {
	c, err := NewControllerFromBoard(Board{{1, 0}}, &scriptedSource{})
	if err != nil {
		t.Fatal(err)
	}
	b := c.Board()
	b[0][0] = 7
	if c.Board()[0][0] != 1 {
		t.Error("mutating Board() result changed the controller state")
	}
}

func TestControllerReset(t *testing.T) {
	c, err := NewController(3, 5, rand.New(rand.NewSource(9)))
	if err != nil {
		t.Fatal(err)
	}
	for _, dir := range Directions {
		c.HandleDirection(dir)
	}

	c.Reset()
	rows, cols := c.Board().Dims()
	if rows != 3 || cols != 5 {
		t.Errorf("Reset changed dims to %dx%d", rows, cols)
	}
	if got := len(EmptyCells(c.Board())); got != 13 {
		t.Errorf("Reset board should have 13 empty cells, got %d", got)
	}
	if c.Moves() != 0 {
		t.Errorf("Moves() = %d after Reset", c.Moves())
	}
}

func TestControllerFullBoardKeepsDims(t *testing.T) {
	c, err := NewController(2, 2, rand.New(rand.NewSource(5)))
	if err != nil {
		t.Fatal(err)
	}
	for i := range 500 {
		c.HandleDirection(Directions[i%len(Directions)])
		if rows, cols := c.Board().Dims(); rows != 2 || cols != 2 {
			t.Fatalf("move %d changed board dims to %dx%d", i, rows, cols)
		}
	}
}
