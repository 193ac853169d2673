package session

// State is the cursor's coarse state.
type State int

const (
	StateNotStarted State = iota
	StateActive
)

// String returns the state name
func (s State) String() string {
	if s == StateActive {
		return "active"
	}
	return "not_started"
}

// Cursor tracks the current row of a send session.
//
// Invariant: while active, 0 <= index < n for the n passed to the last
// transition. The zero value is NotStarted at index 0.
type Cursor struct {
	started bool
	index   int
}

// State returns NotStarted or Active.
func (c Cursor) State() State {
	if c.started {
		return StateActive
	}
	return StateNotStarted
}

// Active reports whether the cursor is Active.
func (c Cursor) Active() bool {
	return c.started
}

// Index returns the current row index.
func (c Cursor) Index() int {
	return c.index
}

// Start moves to Active(0). It refuses (returns false) when n is zero.
func (c *Cursor) Start(n int) bool {
	if n <= 0 {
		return false
	}
	c.started = true
	c.index = 0
	return true
}

// Next advances one row, stopping at the last. It reports whether the
// cursor is Active; the index may be unchanged at the boundary.
func (c *Cursor) Next(n int) bool {
	if !c.started {
		return false
	}
	c.index = min(c.index+1, n-1)
	return true
}

// Prev retreats one row, stopping at the first. Same reporting as Next.
func (c *Cursor) Prev() bool {
	if !c.started {
		return false
	}
	c.index = max(c.index-1, 0)
	return true
}

// Jump moves to index i clamped to [0, n-1].
func (c *Cursor) Jump(i, n int) bool {
	if !c.started {
		return false
	}
	c.index = max(0, min(i, n-1))
	return true
}

// Reset returns to NotStarted at index 0.
func (c *Cursor) Reset() {
	c.started = false
	c.index = 0
}
