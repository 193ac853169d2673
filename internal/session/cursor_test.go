package session

import "testing"

// TestCursorZeroValue tests that a fresh cursor is NotStarted at 0
func TestCursorZeroValue(t *testing.T) {
	var c Cursor
	if c.State() != StateNotStarted || c.Index() != 0 {
		t.Errorf("zero Cursor = %v@%d, want not_started@0", c.State(), c.Index())
	}
}

// TestCursorStartEmpty tests that Start refuses an empty dataset
func TestCursorStartEmpty(t *testing.T) {
	var c Cursor
	if c.Start(0) {
		t.Error("Start(0) should refuse")
	}
	if c.Active() {
		t.Error("cursor should stay NotStarted")
	}
}

// TestCursorTransitions tests the transition table
func TestCursorTransitions(t *testing.T) {
	tests := []struct {
		name  string
		n     int
		steps func(c *Cursor)
		want  int
	}{
		{"Start lands on 0", 3, func(c *Cursor) { c.Start(3) }, 0},
		{"Next moves forward", 3, func(c *Cursor) { c.Start(3); c.Next(3) }, 1},
		{"Next clamps at last", 2, func(c *Cursor) { c.Start(2); c.Next(2); c.Next(2); c.Next(2) }, 1},
		{"Prev clamps at first", 3, func(c *Cursor) { c.Start(3); c.Prev() }, 0},
		{"Restart returns to 0", 3, func(c *Cursor) { c.Start(3); c.Next(3); c.Start(3) }, 0},
		{"Single row", 1, func(c *Cursor) { c.Start(1); c.Next(1); c.Prev() }, 0},
		{"Reset", 3, func(c *Cursor) { c.Start(3); c.Next(3); c.Reset() }, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c Cursor
			tt.steps(&c)
			if c.Index() != tt.want {
				t.Errorf("Index() = %d, want %d", c.Index(), tt.want)
			}
		})
	}
}

// TestStateString tests state names
func TestStateString(t *testing.T) {
	if StateActive.String() != "active" || StateNotStarted.String() != "not_started" {
		t.Errorf("unexpected state names %q %q", StateActive, StateNotStarted)
	}
}
