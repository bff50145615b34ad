package core

import "testing"

func TestActionIsMove(t *testing.T) {
	tests := []struct {
		action Action
		want   bool
	}{
		{ActionNone, false},
		{ActionUp, true},
		{ActionDown, true},
		{ActionLeft, true},
		{ActionRight, true},
		{ActionConfirm, false},
		{ActionBack, false},
		{ActionRestart, false},
		{ActionQuit, false},
	}
	for _, tt := range tests {
		if got := tt.action.IsMove(); got != tt.want {
			t.Errorf("%v.IsMove() = %v, want %v", tt.action, got, tt.want)
		}
	}
}

func TestActionString(t *testing.T) {
	if got := ActionRestart.String(); got != "Restart" {
		t.Errorf("ActionRestart.String() = %q", got)
	}
	if got := Action(99).String(); got != "Unknown" {
		t.Errorf("Action(99).String() = %q", got)
	}
}
