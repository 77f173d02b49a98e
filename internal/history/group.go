package history

import (
	"github.com/google/uuid"

	"github.com/dshills/chronicle/internal/text"
)

// GroupScope provides a convenient way to group commands using defer.
// Usage:
//
//	func doComplexEdit(h *History, buf *text.Buffer) {
//	    defer h.GroupScope("Complex Edit").End()
//	    // ... multiple edits ...
//	}
type GroupScope struct {
	history *History
	active  bool
}

// GroupScope starts a new group scope.
// Call End() or use with defer to properly close the group.
func (h *History) GroupScope(name string) *GroupScope {
	h.BeginGroup(name)
	return &GroupScope{
		history: h,
		active:  true,
	}
}

// End ends the group scope.
// Safe to call multiple times; only the first call has effect.
func (g *GroupScope) End() {
	if g.active {
		g.history.EndGroup()
		g.active = false
	}
}

// Cancel cancels the group scope without creating a compound command.
// Note: Commands already executed still affect the buffer.
func (g *GroupScope) Cancel() {
	if g.active {
		g.history.CancelGroup()
		g.active = false
	}
}

// Transaction executes a function within a grouped undo context.
// If the function returns an error, the group is cancelled.
// Otherwise, the group is ended normally.
func (h *History) Transaction(name string, fn func() error) error {
	h.BeginGroup(name)

	err := fn()
	if err != nil {
		h.CancelGroup()
		return err
	}

	h.EndGroup()
	return nil
}

// ExecuteGrouped executes multiple commands as a single undo unit.
func (h *History) ExecuteGrouped(name string, buf *text.Buffer, cmds ...Command) error {
	if len(cmds) == 0 {
		return nil
	}

	if len(cmds) == 1 {
		// Single command doesn't need grouping
		return h.Execute(cmds[0], buf)
	}

	h.BeginGroup(name)
	for _, cmd := range cmds {
		if err := h.Execute(cmd, buf); err != nil {
			h.CancelGroup()
			return err
		}
	}
	h.EndGroup()
	return nil
}

// Checkpoint represents a point in history that can be returned to.
type Checkpoint struct {
	id        string
	undoDepth int
}

// ID returns the checkpoint's unique identifier.
func (c Checkpoint) ID() string { return c.id }

// CreateCheckpoint creates a checkpoint at the current history position.
// In a bounded history, eviction can make an old checkpoint unreachable;
// UndoToCheckpoint then stops at the oldest retained entry.
func (h *History) CreateCheckpoint() Checkpoint {
	h.mu.Lock()
	defer h.mu.Unlock()
	return Checkpoint{
		id:        uuid.New().String(),
		undoDepth: h.entries.UndoCount(),
	}
}

// UndoToCheckpoint undoes all operations since the checkpoint.
func (h *History) UndoToCheckpoint(cp Checkpoint, buf *text.Buffer) error {
	for h.UndoCount() > cp.undoDepth {
		if err := h.Undo(buf); err != nil {
			return err
		}
	}
	return nil
}

// RedoToCheckpoint redoes operations up to the checkpoint depth.
// Note: This only works if the redo partition still has the operations.
func (h *History) RedoToCheckpoint(cp Checkpoint, buf *text.Buffer) error {
	for h.UndoCount() < cp.undoDepth && h.CanRedo() {
		if err := h.Redo(buf); err != nil {
			return err
		}
	}
	return nil
}
