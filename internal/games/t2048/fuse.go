package t2048

// FuseLeft slides and merges the tiles of a row toward its left edge.
//
// Gaps are removed and each pair of adjacent equal tiles merges into one tile
// with the exponent incremented. Pairs are taken strictly left to right and a
// merged tile never merges again in the same pass, so [1 1 1 0] becomes
// [2 1 0 0] and [1 1 1 1] becomes [2 2 0 0]. The result always has the same
// length as row; rows shorter than two cells are returned as a copy.
func FuseLeft(row Row) Row {
	out := make(Row, 0, len(row))

	// held is the leftmost tile not yet written. Writing it is deferred
	// until the next tile shows whether the two merge.
	var held Cell
	for _, c := range row {
		switch {
		case c == 0:
			// Gap: the freed slot moves to the end of the row.
		case held == 0:
			held = c
		case held == c:
			out = append(out, held+1)
			held = 0
		default:
			out = append(out, held)
			held = c
		}
	}
	if held != 0 {
		out = append(out, held)
	}

	for len(out) < len(row) {
		out = append(out, 0)
	}
	return out
}
