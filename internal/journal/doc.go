// Package journal provides in-memory undo/redo journals: partitioned
// buffers that track a sequence of opaque items split into an undo
// partition (oldest to newest) and a redo partition (items undone,
// poppable back onto undo).
//
// # Ring
//
// Ring is the core type: a fixed-capacity journal backed by a circular
// buffer. All partition operations run through modular index arithmetic
// over one fixed array:
//
//	ring, _ := journal.NewRing[string](100)
//	ring.Push("insert a")
//	ring.Push("insert b")
//	item, _ := ring.PopUndo() // "insert b" moves to the redo partition
//	item, _ = ring.PopRedo()  // and back
//
// Pushing while redo items are pending discards them; pushing into a full
// ring evicts the oldest undo item. RemoveUndoN and RemoveRedoN trim the
// oldest end of a partition to discard history permanently.
//
// # Views
//
// Ring exposes its partitions through lightweight views that translate
// partition-relative indices to ring positions without copying:
//
//	undos := ring.Undos() // live: always reflects the current partition
//	view, _ := ring.PopUndoN(3) // snapshot: exactly the three popped items
//
// Live views never go stale. Snapshot views are bound to the journal
// version at the bulk pop and every access after a later mutation fails
// with ErrStaleView, turning use-after-mutation bugs into explicit errors.
// Iterators from either view kind pin the version at creation and report
// ErrStaleView via Err if the journal mutates mid-iteration.
//
// # List
//
// List is the growable degenerate case: a plain slice with a split point,
// no wraparound and no eviction. Ring and List both satisfy the Journal
// interface.
//
// Journals are not safe for concurrent use; owners that need sharing must
// serialize access around the whole journal.
package journal
