package easel

// history holds one layer's undo and redo stacks. Entries are opaque
// encoded snapshots (PNG) of the layer buffer, most recent on top. Both
// stacks are strict LIFO: undo moves the top of the undo stack onto the
// redo stack, redo moves it back. The entry on top of the undo stack
// always encodes the layer's current committed state.
//
// history only moves entries; encoding and decoding belong to the
// engine, so a failed decode can leave both stacks untouched.
type history struct {
	undo [][]byte
	redo [][]byte
	max  int
}

// newHistory creates an empty history. max <= 0 means unbounded.
func newHistory(max int) *history {
	return &history{max: max}
}

// record pushes a committed snapshot and clears the redo stack: a new
// committing gesture forks the timeline, so previously undone states
// are unreachable from it. When the undo stack outgrows max, the oldest
// entry is dropped.
func (h *history) record(snapshot []byte) {
	h.undo = append(h.undo, snapshot)
	h.redo = h.redo[:0]
	if h.max > 0 && len(h.undo) > h.max {
		h.undo = append(h.undo[:0], h.undo[1:]...)
	}
}

// undoTarget returns the snapshot that undoing would restore: the entry
// below the top of the undo stack, or nil when undoing empties the
// stack (restore to an empty buffer). ok is false when there is nothing
// to undo.
func (h *history) undoTarget() (snapshot []byte, ok bool) {
	if len(h.undo) == 0 {
		return nil, false
	}
	if len(h.undo) == 1 {
		return nil, true
	}
	return h.undo[len(h.undo)-2], true
}

// applyUndo moves the top undo entry onto the redo stack. Callers
// decode the undo target first so the stacks stay consistent when a
// restore is dropped.
func (h *history) applyUndo() {
	top := h.undo[len(h.undo)-1]
	h.undo = h.undo[:len(h.undo)-1]
	h.redo = append(h.redo, top)
}

// redoTarget returns the snapshot that redoing would restore. ok is
// false when there is nothing to redo.
func (h *history) redoTarget() (snapshot []byte, ok bool) {
	if len(h.redo) == 0 {
		return nil, false
	}
	return h.redo[len(h.redo)-1], true
}

// applyRedo moves the top redo entry back onto the undo stack.
func (h *history) applyRedo() {
	top := h.redo[len(h.redo)-1]
	h.redo = h.redo[:len(h.redo)-1]
	h.undo = append(h.undo, top)
}

// depth returns the undo and redo stack sizes.
func (h *history) depth() (undo, redo int) {
	return len(h.undo), len(h.redo)
}
