package journal

// Ring is a fixed-capacity undo/redo journal backed by a circular buffer.
//
// The backing array is split into an undo partition (oldest to newest,
// ending just before head) and a redo partition (starting at head). Pushing
// writes at head and discards any pending redo items; popping moves items
// across the head boundary in either direction. When the buffer is full,
// pushing evicts the oldest undo item.
//
// A Ring is not safe for concurrent use. Owners that share one across
// goroutines must serialize access themselves.
type Ring[T any] struct {
	items []T
	head  int
	undo  int
	redo  int

	// version counts mutations so views can detect staleness.
	version uint64

	// Lazily-created live views, one per direction.
	undos *View[T]
	redos *View[T]
}

// NewRing creates an empty journal with the given fixed capacity.
func NewRing[T any](capacity int) (*Ring[T], error) {
	if capacity <= 0 {
		return nil, ErrInvalidCapacity
	}
	return &Ring[T]{items: make([]T, capacity)}, nil
}

// NewRingFrom creates a journal seeded with items in the undo partition,
// oldest first.
func NewRingFrom[T any](capacity int, items []T) (*Ring[T], error) {
	return NewRingSeeded(capacity, items, 0)
}

// NewRingSeeded creates a journal seeded with items, the trailing redoCount
// of which form the redo partition.
func NewRingSeeded[T any](capacity int, items []T, redoCount int) (*Ring[T], error) {
	if capacity <= 0 {
		return nil, ErrInvalidCapacity
	}
	if items == nil {
		return nil, ErrNilItems
	}
	if len(items) > capacity {
		return nil, ErrTooManyItems
	}
	if redoCount < 0 || redoCount > len(items) {
		return nil, ErrInvalidRedoCount
	}

	r := &Ring[T]{items: make([]T, capacity)}
	copy(r.items, items)
	r.undo = len(items) - redoCount
	r.redo = redoCount
	r.head = r.undo
	return r, nil
}

// Capacity returns the fixed capacity of the journal.
func (r *Ring[T]) Capacity() int { return len(r.items) }

// Count returns the total number of items across both partitions.
func (r *Ring[T]) Count() int { return r.undo + r.redo }

// UndoCount returns the number of items available to undo.
func (r *Ring[T]) UndoCount() int { return r.undo }

// RedoCount returns the number of items available to redo.
func (r *Ring[T]) RedoCount() int { return r.redo }

// index resolves a head-relative logical offset to a physical index,
// wrapping correctly for negative offsets. All positional access goes
// through here.
func (r *Ring[T]) index(offset int) int {
	i := (r.head + offset) % len(r.items)
	if i < 0 {
		i += len(r.items)
	}
	return i
}

// ranges resolves n slots starting at the logical offset from into at most
// two contiguous physical ranges. The second range is empty unless the
// window straddles the end of the backing array.
func (r *Ring[T]) ranges(from, n int) (a, b [2]int) {
	start := r.index(from)
	if start+n <= len(r.items) {
		return [2]int{start, start + n}, [2]int{0, 0}
	}
	return [2]int{start, len(r.items)}, [2]int{0, n - (len(r.items) - start)}
}

// zero clears n slots starting at the logical offset from, so the journal
// retains no references to items outside the live window.
func (r *Ring[T]) zero(from, n int) {
	if n <= 0 {
		return
	}
	a, b := r.ranges(from, n)
	clear(r.items[a[0]:a[1]])
	clear(r.items[b[0]:b[1]])
}

// Push appends an item to the undo partition, discarding any pending redo
// items. When the journal is full the oldest undo item is evicted.
func (r *Ring[T]) Push(item T) {
	r.items[r.head] = item
	r.head = r.index(1)
	if r.undo < len(r.items) {
		r.undo++
	}
	if r.redo > 0 {
		// The push overwrote the first redo slot; clear the rest.
		r.zero(0, r.redo-1)
		r.redo = 0
	}
	r.version++
}

// PushAll appends items in order, equivalent to calling Push once per item.
// A nil or empty slice is a no-op.
func (r *Ring[T]) PushAll(items []T) {
	if len(items) == 0 {
		return
	}
	surviving := r.redo - len(items)
	for _, item := range items {
		r.items[r.head] = item
		r.head = r.index(1)
		if r.undo < len(r.items) {
			r.undo++
		}
	}
	if r.redo > 0 {
		// Redo slots not overwritten by the pushes sit just past head.
		r.zero(0, surviving)
		r.redo = 0
	}
	r.version++
}

// PopUndo moves the most recent undo item to the redo partition and
// returns it.
func (r *Ring[T]) PopUndo() (T, error) {
	var zero T
	if r.undo == 0 {
		return zero, ErrNothingToUndo
	}
	r.head = r.index(-1)
	r.undo--
	r.redo++
	r.version++
	return r.items[r.head], nil
}

// PopRedo moves the next redo item back to the undo partition and
// returns it.
func (r *Ring[T]) PopRedo() (T, error) {
	var zero T
	if r.redo == 0 {
		return zero, ErrNothingToRedo
	}
	item := r.items[r.head]
	r.head = r.index(1)
	r.undo++
	r.redo--
	r.version++
	return item, nil
}

// PopUndoN moves the n most recent undo items to the redo partition in one
// step and returns a snapshot view of them in pop order (most recent
// first). The view is invalidated by any later mutation.
func (r *Ring[T]) PopUndoN(n int) (*View[T], error) {
	if n <= 0 || n > r.undo {
		return nil, ErrInvalidCount
	}
	r.head = r.index(-n)
	r.undo -= n
	r.redo += n
	r.version++
	return &View[T]{ring: r, dir: undoDir, snapshot: true, count: n, version: r.version}, nil
}

// PopRedoN moves the next n redo items back to the undo partition in one
// step and returns a snapshot view of them in pop order. The view is
// invalidated by any later mutation.
func (r *Ring[T]) PopRedoN(n int) (*View[T], error) {
	if n <= 0 || n > r.redo {
		return nil, ErrInvalidCount
	}
	r.head = r.index(n)
	r.undo += n
	r.redo -= n
	r.version++
	return &View[T]{ring: r, dir: redoDir, snapshot: true, count: n, version: r.version}, nil
}

// RemoveUndo permanently discards the oldest undo item.
func (r *Ring[T]) RemoveUndo() error {
	if r.undo == 0 {
		return ErrNothingToUndo
	}
	return r.RemoveUndoN(1)
}

// RemoveUndoN permanently discards the n oldest undo items. The head does
// not move; the undo partition shrinks from its oldest end.
func (r *Ring[T]) RemoveUndoN(n int) error {
	if n <= 0 || n > r.undo {
		return ErrInvalidCount
	}
	r.zero(-r.undo, n)
	r.undo -= n
	r.version++
	return nil
}

// RemoveRedo permanently discards the oldest redo item.
func (r *Ring[T]) RemoveRedo() error {
	if r.redo == 0 {
		return ErrNothingToRedo
	}
	return r.RemoveRedoN(1)
}

// RemoveRedoN permanently discards the n oldest redo items: the entries
// that entered the redo partition first and would be redone last.
func (r *Ring[T]) RemoveRedoN(n int) error {
	if n <= 0 || n > r.redo {
		return ErrInvalidCount
	}
	r.zero(r.redo-n, n)
	r.redo -= n
	r.version++
	return nil
}

// Clear empties both partitions and resets the head.
func (r *Ring[T]) Clear() {
	r.zero(-r.undo, r.undo+r.redo)
	r.head = 0
	r.undo = 0
	r.redo = 0
	r.version++
}

// ClearUndo empties the undo partition.
func (r *Ring[T]) ClearUndo() {
	r.zero(-r.undo, r.undo)
	r.undo = 0
	r.version++
}

// ClearRedo empties the redo partition.
func (r *Ring[T]) ClearRedo() {
	r.zero(0, r.redo)
	r.redo = 0
	r.version++
}

// PeekUndo returns the most recent undo item without moving it.
func (r *Ring[T]) PeekUndo() (T, error) {
	var zero T
	if r.undo == 0 {
		return zero, ErrNothingToUndo
	}
	return r.items[r.index(-1)], nil
}

// PeekRedo returns the next redo item without moving it.
func (r *Ring[T]) PeekRedo() (T, error) {
	var zero T
	if r.redo == 0 {
		return zero, ErrNothingToRedo
	}
	return r.items[r.head], nil
}

// ContainsFunc reports whether any live item satisfies match.
func (r *Ring[T]) ContainsFunc(match func(T) bool) bool {
	a, b := r.ranges(-r.undo, r.undo+r.redo)
	for _, item := range r.items[a[0]:a[1]] {
		if match(item) {
			return true
		}
	}
	for _, item := range r.items[b[0]:b[1]] {
		if match(item) {
			return true
		}
	}
	return false
}

// Contains reports whether the journal holds an item equal to want.
func Contains[T comparable](r *Ring[T], want T) bool {
	return r.ContainsFunc(func(item T) bool { return item == want })
}

// CopyTo copies the whole logical sequence into dst starting at the given
// offset: the undo partition oldest to newest, then the redo partition in
// redo order. The destination is validated before anything is copied.
func (r *Ring[T]) CopyTo(dst []T, at int) error {
	if dst == nil {
		return ErrNilDestination
	}
	if at < 0 {
		return ErrInvalidOffset
	}
	if len(dst)-at < r.Count() {
		return ErrDestinationTooSmall
	}
	a, b := r.ranges(-r.undo, r.undo+r.redo)
	n := copy(dst[at:], r.items[a[0]:a[1]])
	copy(dst[at+n:], r.items[b[0]:b[1]])
	return nil
}

// Items returns the whole logical sequence as a new slice, undo partition
// first, oldest to newest.
func (r *Ring[T]) Items() []T {
	out := make([]T, r.Count())
	_ = r.CopyTo(out, 0)
	return out
}

// UndoItems returns the undo partition newest first, matching the undo
// view's order.
func (r *Ring[T]) UndoItems() []T {
	items, _ := r.Undos().Items()
	return items
}

// RedoItems returns the redo partition in redo order, matching the redo
// view's order.
func (r *Ring[T]) RedoItems() []T {
	items, _ := r.Redos().Items()
	return items
}

// Iter returns an iterator over the whole logical sequence, undo partition
// oldest to newest, then redo partition in redo order. Like view iterators
// it pins the journal version at creation; Next fails with ErrStaleView via
// Err if the journal mutates mid-iteration.
func (r *Ring[T]) Iter() *RingIter[T] {
	return &RingIter[T]{ring: r, version: r.version}
}

// RingIter walks a Ring's whole logical sequence.
type RingIter[T any] struct {
	ring    *Ring[T]
	version uint64
	pos     int
	err     error
}

// Next returns the next item, or false when the sequence is exhausted or
// the journal mutated.
func (it *RingIter[T]) Next() (T, bool) {
	var zero T
	if it.err != nil {
		return zero, false
	}
	if it.ring.version != it.version {
		it.err = ErrStaleView
		return zero, false
	}
	if it.pos >= it.ring.Count() {
		return zero, false
	}
	item := it.ring.items[it.ring.index(-it.ring.undo+it.pos)]
	it.pos++
	return item, true
}

// Err returns the error that stopped iteration, if any.
func (it *RingIter[T]) Err() error { return it.err }

// Undos returns the live undo view. The view is created on first use and
// always reflects the journal's current state.
func (r *Ring[T]) Undos() *View[T] {
	if r.undos == nil {
		r.undos = &View[T]{ring: r, dir: undoDir}
	}
	return r.undos
}

// Redos returns the live redo view. The view is created on first use and
// always reflects the journal's current state.
func (r *Ring[T]) Redos() *View[T] {
	if r.redos == nil {
		r.redos = &View[T]{ring: r, dir: redoDir}
	}
	return r.redos
}
