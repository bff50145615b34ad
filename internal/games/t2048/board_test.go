package t2048

import (
	"errors"
	"testing"
)

func TestValue(t *testing.T) {
	tests := []struct {
		cell Cell
		want int
	}{
		{-3, 0},
		{0, 0},
		{1, 2},
		{2, 4},
		{11, 2048},
		{17, 131072},
		{MaxCell, 1 << MaxCell},
		{MaxCell + 1, 1 << MaxCell},
		{MaxCell + 40, 1 << MaxCell},
	}
	for _, tt := range tests {
		got := Value(tt.cell)
		if got != tt.want {
			t.Errorf("Value(%d) = %d, want %d", tt.cell, got, tt.want)
		}
		if got < 0 {
			t.Errorf("Value(%d) overflowed to %d", tt.cell, got)
		}
	}
}

func TestValidateCellRange(t *testing.T) {
	if err := Validate(Board{{0, MaxCell}}); err != nil {
		t.Errorf("Validate(MaxCell) = %v, want nil", err)
	}
	if err := Validate(Board{{0, MaxCell + 1}}); !errors.Is(err, ErrMalformedBoard) {
		t.Errorf("Validate(MaxCell+1) = %v, want ErrMalformedBoard", err)
	}
}
