package engine

// History is a stack of board snapshots used for undo. The first snapshot is
// the baseline taken right after dealing and is never popped.
type History struct {
	snapshots []Board
}

// NewHistory starts a history whose baseline is b.
func NewHistory(b Board) History {
	return History{snapshots: []Board{b}}
}

// Reset discards every snapshot and installs b as the new baseline.
func (h *History) Reset(b Board) {
	h.snapshots = append(h.snapshots[:0:0], b)
}

// Snapshot pushes b.
func (h *History) Snapshot(b Board) {
	h.snapshots = append(h.snapshots, b)
}

// Restore pops the latest snapshot. It reports false, and leaves the stack
// unchanged, when only the baseline remains.
func (h *History) Restore() (Board, bool) {
	if len(h.snapshots) <= 1 {
		return Board{}, false
	}
	last := len(h.snapshots) - 1
	b := h.snapshots[last]
	h.snapshots[last] = Board{}
	h.snapshots = h.snapshots[:last]
	return b, true
}

// Len returns the number of snapshots including the baseline.
func (h History) Len() int {
	return len(h.snapshots)
}

// CanRestore reports whether a snapshot other than the baseline exists.
func (h History) CanRestore() bool {
	return len(h.snapshots) > 1
}
