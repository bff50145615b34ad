package t2048

// Snapshot captures the state of a game for tests and logging.
type Snapshot struct {
	Rows        int
	Cols        int
	Board       Board
	Moves       int
	MaxValue    int // face value of the highest tile
	LastDir     string
	LastChanged bool
	TooSmall    bool
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	rows, cols := g.ctrl.Dims()
	b := g.ctrl.Board()

	s := Snapshot{
		Rows:     rows,
		Cols:     cols,
		Board:    b,
		Moves:    g.ctrl.Moves(),
		MaxValue: Value(b.MaxExponent()),
		TooSmall: g.tooSmall,
	}
	if g.hasLast {
		s.LastDir = g.last.String()
		s.LastChanged = g.lastChanged
	}
	return s
}
