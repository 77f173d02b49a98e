package journal

// Journal is the operation set shared by the fixed-capacity Ring and the
// growable List.
type Journal[T any] interface {
	Count() int
	UndoCount() int
	RedoCount() int

	Push(item T)
	PushAll(items []T)
	PopUndo() (T, error)
	PopRedo() (T, error)
	PeekUndo() (T, error)
	PeekRedo() (T, error)

	Clear()
	ClearUndo()
	ClearRedo()

	// Items returns the whole logical sequence, undo partition first,
	// oldest to newest. UndoItems is newest first; RedoItems is in redo
	// order.
	Items() []T
	UndoItems() []T
	RedoItems() []T
}

var (
	_ Journal[int] = (*Ring[int])(nil)
	_ Journal[int] = (*List[int])(nil)
)

// List is the growable counterpart to Ring: a plain slice holding the undo
// partition as a prefix and the redo partition as a suffix, with no
// wraparound and no eviction. Like Ring it is not safe for concurrent use.
type List[T any] struct {
	items []T
	split int // first redo index; undo occupies items[:split]
}

// NewList creates an empty growable journal.
func NewList[T any]() *List[T] {
	return &List[T]{}
}

// Count returns the total number of items across both partitions.
func (l *List[T]) Count() int { return len(l.items) }

// UndoCount returns the number of items available to undo.
func (l *List[T]) UndoCount() int { return l.split }

// RedoCount returns the number of items available to redo.
func (l *List[T]) RedoCount() int { return len(l.items) - l.split }

// Push appends an item to the undo partition, discarding any pending redo
// items.
func (l *List[T]) Push(item T) {
	l.truncateRedo()
	l.items = append(l.items, item)
	l.split++
}

// PushAll appends items in order, equivalent to calling Push once per item.
func (l *List[T]) PushAll(items []T) {
	if len(items) == 0 {
		return
	}
	l.truncateRedo()
	l.items = append(l.items, items...)
	l.split = len(l.items)
}

// truncateRedo drops the redo suffix, zeroing the vacated slots so no
// references linger in the slice's spare capacity.
func (l *List[T]) truncateRedo() {
	if l.split == len(l.items) {
		return
	}
	tail := l.items[l.split:]
	l.items = l.items[:l.split]
	clear(tail)
}

// PopUndo moves the most recent undo item to the redo partition and
// returns it.
func (l *List[T]) PopUndo() (T, error) {
	var zero T
	if l.split == 0 {
		return zero, ErrNothingToUndo
	}
	l.split--
	return l.items[l.split], nil
}

// PopRedo moves the next redo item back to the undo partition and
// returns it.
func (l *List[T]) PopRedo() (T, error) {
	var zero T
	if l.split == len(l.items) {
		return zero, ErrNothingToRedo
	}
	item := l.items[l.split]
	l.split++
	return item, nil
}

// PeekUndo returns the most recent undo item without moving it.
func (l *List[T]) PeekUndo() (T, error) {
	var zero T
	if l.split == 0 {
		return zero, ErrNothingToUndo
	}
	return l.items[l.split-1], nil
}

// PeekRedo returns the next redo item without moving it.
func (l *List[T]) PeekRedo() (T, error) {
	var zero T
	if l.split == len(l.items) {
		return zero, ErrNothingToRedo
	}
	return l.items[l.split], nil
}

// Clear empties both partitions.
func (l *List[T]) Clear() {
	clear(l.items)
	l.items = l.items[:0]
	l.split = 0
}

// ClearUndo empties the undo partition, keeping redo items poppable.
func (l *List[T]) ClearUndo() {
	if l.split == 0 {
		return
	}
	n := copy(l.items, l.items[l.split:])
	clear(l.items[n:])
	l.items = l.items[:n]
	l.split = 0
}

// ClearRedo empties the redo partition.
func (l *List[T]) ClearRedo() {
	l.truncateRedo()
}

// Items returns the whole logical sequence as a new slice.
func (l *List[T]) Items() []T {
	out := make([]T, len(l.items))
	copy(out, l.items)
	return out
}

// UndoItems returns the undo partition newest first.
func (l *List[T]) UndoItems() []T {
	out := make([]T, l.split)
	for i := range out {
		out[i] = l.items[l.split-1-i]
	}
	return out
}

// RedoItems returns the redo partition in redo order.
func (l *List[T]) RedoItems() []T {
	out := make([]T, len(l.items)-l.split)
	copy(out, l.items[l.split:])
	return out
}
