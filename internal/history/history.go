package history

import (
	"sync"
	"time"

	"github.com/dshills/chronicle/internal/journal"
	"github.com/dshills/chronicle/internal/text"
)

// Common errors for history operations. These are the journal's sentinels,
// re-exported so callers need not import both packages.
var (
	ErrNothingToUndo = journal.ErrNothingToUndo
	ErrNothingToRedo = journal.ErrNothingToRedo
)

// DefaultCapacity is used when NewHistory receives a non-positive capacity.
const DefaultCapacity = 1000

// entry wraps a command with metadata.
type entry struct {
	command   Command
	timestamp time.Time
}

// History manages undo/redo state for a buffer. Entries live in a journal:
// pushing discards pending redo entries, and a bounded history evicts its
// oldest entry when full instead of refusing new ones.
type History struct {
	mu sync.Mutex

	entries journal.Journal[*entry]

	// Grouping state
	grouping  bool
	groupName string
	groupCmds []Command
}

// NewHistory creates a bounded history manager. At most capacity entries
// are retained; older entries are evicted as new commands arrive.
func NewHistory(capacity int) *History {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	ring, _ := journal.NewRing[*entry](capacity)
	return &History{entries: ring}
}

// NewUnboundedHistory creates a history manager that never evicts.
func NewUnboundedHistory() *History {
	return &History{entries: journal.NewList[*entry]()}
}

// Execute runs a command and adds it to the undo stack.
func (h *History) Execute(cmd Command, buf *text.Buffer) error {
	if err := cmd.Execute(buf); err != nil {
		return err
	}

	h.Push(cmd)
	return nil
}

// Push adds a command to the undo stack and clears pending redo entries.
func (h *History) Push(cmd Command) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.grouping {
		h.groupCmds = append(h.groupCmds, cmd)
		return
	}

	h.pushLocked(cmd)
}

// pushLocked adds a command without acquiring the lock.
func (h *History) pushLocked(cmd Command) {
	h.entries.Push(&entry{
		command:   cmd,
		timestamp: time.Now(),
	})
}

// Undo undoes the last command.
// The lock is released during command execution to avoid holding it during
// potentially long-running buffer operations.
func (h *History) Undo(buf *text.Buffer) error {
	h.mu.Lock()
	e, err := h.entries.PopUndo()
	h.mu.Unlock()
	if err != nil {
		return err
	}

	// Execute undo without holding the lock
	if err := e.command.Undo(buf); err != nil {
		// The entry sits in the redo partition; pop it back to undo
		h.mu.Lock()
		h.entries.PopRedo()
		h.mu.Unlock()
		return err
	}

	return nil
}

// Redo redoes the last undone command.
// The lock is released during command execution to avoid holding it during
// potentially long-running buffer operations.
func (h *History) Redo(buf *text.Buffer) error {
	h.mu.Lock()
	e, err := h.entries.PopRedo()
	h.mu.Unlock()
	if err != nil {
		return err
	}

	// Execute redo without holding the lock
	if err := e.command.Execute(buf); err != nil {
		// Restore the entry to the redo partition on failure
		h.mu.Lock()
		h.entries.PopUndo()
		h.mu.Unlock()
		return err
	}

	return nil
}

// CanUndo returns true if undo is available.
func (h *History) CanUndo() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.entries.UndoCount() > 0
}

// CanRedo returns true if redo is available.
func (h *History) CanRedo() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.entries.RedoCount() > 0
}

// UndoCount returns the number of undo operations available.
func (h *History) UndoCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.entries.UndoCount()
}

// RedoCount returns the number of redo operations available.
func (h *History) RedoCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.entries.RedoCount()
}

// Clear removes all undo/redo history.
func (h *History) Clear() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.entries.Clear()
	h.grouping = false
	h.groupCmds = nil
}

// UndoInfo returns info about available undo operations, most recent first.
func (h *History) UndoInfo() []OperationInfo {
	h.mu.Lock()
	defer h.mu.Unlock()

	return infoFor(h.entries.UndoItems())
}

// RedoInfo returns info about available redo operations, next to redo first.
func (h *History) RedoInfo() []OperationInfo {
	h.mu.Lock()
	defer h.mu.Unlock()

	return infoFor(h.entries.RedoItems())
}

func infoFor(entries []*entry) []OperationInfo {
	result := make([]OperationInfo, len(entries))
	for i, e := range entries {
		result[i] = OperationInfo{
			Description: e.command.Description(),
			Timestamp:   e.timestamp,
		}
	}
	return result
}

// PeekUndo returns info about the next undo operation without removing it.
func (h *History) PeekUndo() (OperationInfo, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	e, err := h.entries.PeekUndo()
	if err != nil {
		return OperationInfo{}, false
	}
	return OperationInfo{
		Description: e.command.Description(),
		Timestamp:   e.timestamp,
	}, true
}

// PeekRedo returns info about the next redo operation without removing it.
func (h *History) PeekRedo() (OperationInfo, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	e, err := h.entries.PeekRedo()
	if err != nil {
		return OperationInfo{}, false
	}
	return OperationInfo{
		Description: e.command.Description(),
		Timestamp:   e.timestamp,
	}, true
}

// BeginGroup starts a command group.
// Commands pushed while grouping will be combined into a single undo unit.
func (h *History) BeginGroup(name string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.grouping {
		// Already grouping, ignore nested calls
		return
	}

	h.grouping = true
	h.groupName = name
	h.groupCmds = nil
}

// EndGroup finishes a command group.
// All commands since BeginGroup are combined into a CompoundCommand.
func (h *History) EndGroup() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if !h.grouping {
		return
	}

	h.grouping = false

	if len(h.groupCmds) == 0 {
		h.groupCmds = nil
		return
	}

	compound := &CompoundCommand{
		Name:     h.groupName,
		Commands: h.groupCmds,
	}

	h.pushLocked(compound)
	h.groupCmds = nil
}

// CancelGroup cancels a command group without adding to history.
// Note: Commands already executed still affect the buffer!
func (h *History) CancelGroup() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.grouping = false
	h.groupCmds = nil
}

// IsGrouping returns true if currently in a command group.
func (h *History) IsGrouping() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.grouping
}
