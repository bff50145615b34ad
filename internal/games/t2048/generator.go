package t2048

// Source is the randomness a board generator needs.
// *math/rand.Rand satisfies it.
type Source interface {
	// Intn returns a uniform value in [0, n). n is always > 0.
	Intn(n int) int
}

// Spawn draw bounds. A draw in [tileDrawMin, tileDrawMax] divided by
// tileDrawMin yields exponent 1 for nine draws out of ten and exponent 2 for
// the last one.
const (
	tileDrawMin = 9
	tileDrawMax = 18
)

// EmptyBoard returns a rows x cols board with every cell empty.
func EmptyBoard(rows, cols int) Board {
	b := make(Board, rows)
	for i := range b {
		b[i] = make(Row, cols)
	}
	return b
}

// EmptyCells returns the positions of all empty cells in row-major order.
func EmptyCells(b Board) []Position {
	var cells []Position
	for i, row := range b {
		for j, c := range row {
			if c == 0 {
				cells = append(cells, Position{Row: i, Col: j})
			}
		}
	}
	return cells
}

// RandomEmptyCell picks one empty cell uniformly at random.
// It returns false when the board is full.
func RandomEmptyCell(b Board, rng Source) (Position, bool) {
	cells := EmptyCells(b)
	if len(cells) == 0 {
		return Position{}, false
	}
	return cells[rng.Intn(len(cells))], true
}

// RandomTileValue returns the exponent of a newly spawned tile: 1 (a "2")
// nine times in ten and 2 (a "4") otherwise.
//
// The 9:1 ratio comes from integer-dividing a draw in [9, 18] by 9. It is
// most likely an accident of that bucketing, but existing games depend on it.
func RandomTileValue(rng Source) Cell {
	draw := tileDrawMin + rng.Intn(tileDrawMax-tileDrawMin+1)
	return draw / tileDrawMin
}

// SpawnTile places a random tile on a random empty cell.
// A full board is returned unchanged.
func SpawnTile(b Board, rng Source) Board {
	pos, ok := RandomEmptyCell(b, rng)
	if !ok {
		return b
	}
	return b.With(pos, RandomTileValue(rng))
}

// InitialBoard returns an empty rows x cols board seeded with two tiles.
func InitialBoard(rows, cols int, rng Source) Board {
	return SpawnTile(SpawnTile(EmptyBoard(rows, cols), rng), rng)
}
