package history

import "time"

// Range is a half-open byte range [Start, End) in the buffer.
type Range struct {
	Start int
	End   int
}

// IsEmpty returns true if the range covers no bytes.
func (r Range) IsEmpty() bool { return r.End <= r.Start }

// Operation represents a single undoable edit.
// It captures all information needed to undo or redo the edit.
type Operation struct {
	Range   Range  // Range that was modified (in original document)
	OldText string // Text that was replaced (for undo)
	NewText string // Text that was inserted (for redo)

	Timestamp time.Time // When the operation occurred
}

// NewOperation creates a new operation.
func NewOperation(r Range, oldText, newText string) *Operation {
	return &Operation{
		Range:     r,
		OldText:   oldText,
		NewText:   newText,
		Timestamp: time.Now(),
	}
}

// NewInsertOperation creates an operation for an insertion.
func NewInsertOperation(offset int, s string) *Operation {
	return NewOperation(Range{Start: offset, End: offset}, "", s)
}

// NewDeleteOperation creates an operation for a deletion.
func NewDeleteOperation(r Range, deletedText string) *Operation {
	return NewOperation(r, deletedText, "")
}

// IsInsert returns true if this operation is a pure insertion.
func (op *Operation) IsInsert() bool {
	return op.Range.IsEmpty() && len(op.NewText) > 0
}

// IsDelete returns true if this operation is a pure deletion.
func (op *Operation) IsDelete() bool {
	return !op.Range.IsEmpty() && len(op.NewText) == 0
}

// IsReplace returns true if this operation replaces text.
func (op *Operation) IsReplace() bool {
	return !op.Range.IsEmpty() && len(op.NewText) > 0
}

// BytesDelta returns the change in document length.
func (op *Operation) BytesDelta() int {
	return len(op.NewText) - (op.Range.End - op.Range.Start)
}

// NewRange returns the range of the text after the operation.
func (op *Operation) NewRange() Range {
	return Range{Start: op.Range.Start, End: op.Range.Start + len(op.NewText)}
}

// Invert returns an operation that undoes this one.
func (op *Operation) Invert() *Operation {
	return &Operation{
		Range:     op.NewRange(),
		OldText:   op.NewText,
		NewText:   op.OldText,
		Timestamp: time.Now(),
	}
}

// OperationInfo provides read-only info about an operation.
// Used for displaying undo/redo history to users.
type OperationInfo struct {
	Description string    // Human-readable description
	Timestamp   time.Time // When the operation occurred
}
