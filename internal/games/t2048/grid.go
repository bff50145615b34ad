package t2048

import "slices"

// Transpose returns a board where result[i][j] == b[j][i].
// A board with no rows, with empty rows or with rows of different lengths
// transposes to an empty board.
func Transpose(b Board) Board {
	rows, cols := b.Dims()
	if rows == 0 || cols == 0 || !rectangular(b) {
		return Board{}
	}

	out := make(Board, cols)
	for j := range cols {
		col := make(Row, rows)
		for i := range rows {
			col[i] = b[i][j]
		}
		out[j] = col
	}
	return out
}

// ReverseRows returns a board with the cells of every row in reverse order.
func ReverseRows(b Board) Board {
	return Map(reverseRow, b)
}

// Map applies f to every row of b and collects the results.
func Map(f func(Row) Row, b Board) Board {
	out := make(Board, len(b))
	for i, row := range b {
		out[i] = f(row)
	}
	return out
}

// reverseRow returns a reversed copy of row.
func reverseRow(row Row) Row {
	out := slices.Clone(row)
	slices.Reverse(out)
	return out
}

// compose chains board transforms right to left: compose(f, g)(b) == f(g(b)).
func compose(fs ...func(Board) Board) func(Board) Board {
	return func(b Board) Board {
		for i := len(fs) - 1; i >= 0; i-- {
			b = fs[i](b)
		}
		return b
	}
}
