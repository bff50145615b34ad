package t2048

// Controller owns the current board of one game and applies moves to it.
// A Controller is not safe for concurrent use; hosts serialize calls.
type Controller struct {
	rng   Source
	rows  int
	cols  int
	board Board
	moves int
}

// NewController starts a game on a rows x cols board with two random tiles.
func NewController(rows, cols int, rng Source) (*Controller, error) {
	if err := ValidateDims(rows, cols); err != nil {
		return nil, err
	}
	c := &Controller{rng: rng, rows: rows, cols: cols}
	c.Reset()
	return c, nil
}

// NewControllerFromBoard continues a game from an existing board.
func NewControllerFromBoard(b Board, rng Source) (*Controller, error) {
	if err := Validate(b); err != nil {
		return nil, err
	}
	rows, cols := b.Dims()
	return &Controller{rng: rng, rows: rows, cols: cols, board: b.Clone()}, nil
}

// Reset discards the current board and deals a fresh initial board of the
// same dimensions.
func (c *Controller) Reset() {
	c.board = InitialBoard(c.rows, c.cols, c.rng)
	c.moves = 0
}

// HandleDirection applies a move. If the board changed, a new tile is spawned
// and the result becomes the current board. A move that changes nothing is
// discarded and no tile appears. It reports whether the board changed.
func (c *Controller) HandleDirection(dir Direction) bool {
	next := ApplyMove(dir, c.board)
	if Equal(c.board, next) {
		return false
	}
	c.board = SpawnTile(next, c.rng)
	c.moves++
	return true
}

// Board returns a copy of the current board.
func (c *Controller) Board() Board {
	return c.board.Clone()
}

// Dims returns the board dimensions.
func (c *Controller) Dims() (rows, cols int) {
	return c.rows, c.cols
}

// Moves returns how many moves changed the board since the last reset.
func (c *Controller) Moves() int {
	return c.moves
}
