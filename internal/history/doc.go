// Package history provides command-pattern undo/redo management on top of
// the journal package.
//
// # Commands
//
// Commands implement the Command interface with Execute and Undo methods
// against a text.Buffer. Built-in commands include:
//   - InsertCommand: Insert text at an offset
//   - DeleteCommand: Delete a byte range
//   - ReplaceCommand: Replace text in a range
//   - CompoundCommand: Group multiple commands as one undo unit
//
// # History
//
// The History type stores executed commands in a journal.Ring (bounded,
// oldest entries evicted when full) or journal.List (unbounded):
//
//	history := history.NewHistory(1000)
//
//	// Execute commands
//	history.Execute(cmd, buffer)
//
//	// Undo/redo
//	history.Undo(buffer)
//	history.Redo(buffer)
//
// Undoing moves an entry to the journal's redo partition; executing a new
// command discards pending redo entries. The journal handles both, so the
// manager carries no stack bookkeeping of its own.
//
// # Command Grouping
//
// Multiple commands can be grouped as a single undo unit:
//
//	history.BeginGroup("Find and Replace")
//	// ... multiple edits ...
//	history.EndGroup()
//
// Now all edits undo together with one keypress.
//
// # Checkpoints
//
// CreateCheckpoint marks a position in history; UndoToCheckpoint rolls the
// buffer back to it. Checkpoints carry unique IDs for callers that track
// several at once.
package history
