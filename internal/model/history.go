package model

// History is a linear undo/redo stack of configuration snapshots with a
// cursor. Committing a new snapshot discards any redo tail beyond the
// cursor before appending (truncate-on-branch). Snapshots are deep
// copied on the way in and out, so callers can never alias state that
// sits in history.
type History struct {
	snapshots []GlobalConfig
	cursor    int
}

// NewHistory creates a history seeded with the initial configuration.
func NewHistory(initial GlobalConfig) *History {
	return &History{
		snapshots: []GlobalConfig{initial.Clone()},
		cursor:    0,
	}
}

// Current returns a copy of the snapshot at the cursor.
func (h *History) Current() GlobalConfig {
	return h.snapshots[h.cursor].Clone()
}

// Push commits a new snapshot, truncating any redo tail first.
func (h *History) Push(cfg GlobalConfig) {
	h.snapshots = append(h.snapshots[:h.cursor+1], cfg.Clone())
	h.cursor = len(h.snapshots) - 1
}

// CanUndo reports whether a previous snapshot exists.
func (h *History) CanUndo() bool { return h.cursor > 0 }

// CanRedo reports whether a later snapshot exists.
func (h *History) CanRedo() bool { return h.cursor < len(h.snapshots)-1 }

// Undo moves the cursor back one step. It reports whether it moved.
func (h *History) Undo() bool {
	if !h.CanUndo() {
		return false
	}
	h.cursor--
	return true
}

// Redo moves the cursor forward one step. It reports whether it moved.
func (h *History) Redo() bool {
	if !h.CanRedo() {
		return false
	}
	h.cursor++
	return true
}

// Len returns the number of stored snapshots.
func (h *History) Len() int { return len(h.snapshots) }

// Reset discards all history and starts over from cfg.
func (h *History) Reset(cfg GlobalConfig) {
	h.snapshots = []GlobalConfig{cfg.Clone()}
	h.cursor = 0
}
