package journal

// direction selects which partition a view reads.
type direction int

const (
	undoDir direction = iota
	redoDir
)

// View is a read-only window over one partition of a Ring. It holds an
// index-translation formula and a back-reference, never a copy of the
// items.
//
// A live view (returned by Ring.Undos and Ring.Redos) always reflects the
// journal's current partition. A snapshot view (returned by PopUndoN and
// PopRedoN) covers exactly the items moved by that call and is bound to the
// journal version at that moment: every access after a later mutation fails
// with ErrStaleView.
type View[T any] struct {
	ring     *Ring[T]
	dir      direction
	snapshot bool
	count    int    // fixed length, snapshot views only
	version  uint64 // bound version, snapshot views only
}

// check validates a snapshot view against the journal's current version.
func (v *View[T]) check() error {
	if v.snapshot && v.version != v.ring.version {
		return ErrStaleView
	}
	return nil
}

// Count returns the number of items visible through the view.
func (v *View[T]) Count() (int, error) {
	if err := v.check(); err != nil {
		return 0, err
	}
	if v.snapshot {
		return v.count, nil
	}
	if v.dir == undoDir {
		return v.ring.undo, nil
	}
	return v.ring.redo, nil
}

// At returns the item at the view-relative index i.
//
// A live undo view indexes newest first: At(0) is the most recently pushed
// item not yet undone. A live redo view indexes from the next item to redo
// forward. Snapshot views index in pop order.
func (v *View[T]) At(i int) (T, error) {
	var zero T
	n, err := v.Count()
	if err != nil {
		return zero, err
	}
	if i < 0 || i >= n {
		return zero, ErrInvalidOffset
	}
	return v.ring.items[v.offset(i)], nil
}

// offset translates a view-relative index to a physical index. Callers
// validate staleness and bounds first.
func (v *View[T]) offset(i int) int {
	if v.snapshot {
		// Snapshot items sit adjacent to head on the side they were
		// popped to, ordered as the equivalent single pops would have
		// returned them.
		if v.dir == undoDir {
			return v.ring.index(v.count - 1 - i)
		}
		return v.ring.index(-v.count + i)
	}
	if v.dir == undoDir {
		return v.ring.index(-1 - i)
	}
	return v.ring.index(i)
}

// Items materializes the view into a new slice in view order.
func (v *View[T]) Items() ([]T, error) {
	n, err := v.Count()
	if err != nil {
		return nil, err
	}
	out := make([]T, n)
	for i := range out {
		out[i] = v.ring.items[v.offset(i)]
	}
	return out, nil
}

// Iter returns a fresh iterator over the view. Iterators are single-use;
// derive a new one to restart.
func (v *View[T]) Iter() *Iter[T] {
	return &Iter[T]{view: v, version: v.ring.version}
}

// Iter walks a View in view order. It pins the journal version at creation
// time: if the journal mutates between advances, Next returns false and Err
// reports ErrStaleView instead of silently reading moved slots.
type Iter[T any] struct {
	view    *View[T]
	version uint64
	pos     int
	err     error
}

// Next returns the next item, or false when the view is exhausted or an
// error occurred.
func (it *Iter[T]) Next() (T, bool) {
	var zero T
	if it.err != nil {
		return zero, false
	}
	if it.view.ring.version != it.version {
		it.err = ErrStaleView
		return zero, false
	}
	n, err := it.view.Count()
	if err != nil {
		it.err = err
		return zero, false
	}
	if it.pos >= n {
		return zero, false
	}
	item := it.view.ring.items[it.view.offset(it.pos)]
	it.pos++
	return item, true
}

// Err returns the error that stopped iteration, if any.
func (it *Iter[T]) Err() error { return it.err }
