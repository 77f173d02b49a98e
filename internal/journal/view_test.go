package journal

import (
	"errors"
	"fmt"
	"testing"
)

// Live View Tests

func TestLiveViewsAreMemoized(t *testing.T) {
	r, _ := NewRing[int](5)

	if r.Undos() != r.Undos() {
		t.Error("Undos() should return the same live view each time")
	}
	if r.Redos() != r.Redos() {
		t.Error("Redos() should return the same live view each time")
	}
	if r.Undos() == r.Redos() {
		t.Error("undo and redo views must be distinct")
	}
}

func TestLiveUndoViewOrder(t *testing.T) {
	r, _ := NewRing[int](5)
	pushN(r, 3)

	undos := r.Undos()
	n, err := undos.Count()
	if err != nil || n != 3 {
		t.Fatalf("Count() = %d, %v, want 3", n, err)
	}

	// Newest first: At(0) is the most recently pushed item.
	for i, want := range []int{3, 2, 1} {
		item, err := undos.At(i)
		if err != nil {
			t.Fatalf("At(%d) failed: %v", i, err)
		}
		if item != want {
			t.Errorf("At(%d) = %d, want %d", i, item, want)
		}
	}
}

func TestLiveRedoViewOrder(t *testing.T) {
	r, _ := NewRing[int](5)
	pushN(r, 3)
	r.PopUndo()
	r.PopUndo()

	redos := r.Redos()
	n, err := redos.Count()
	if err != nil || n != 2 {
		t.Fatalf("Count() = %d, %v, want 2", n, err)
	}

	// Next to redo first.
	for i, want := range []int{2, 3} {
		item, err := redos.At(i)
		if err != nil {
			t.Fatalf("At(%d) failed: %v", i, err)
		}
		if item != want {
			t.Errorf("At(%d) = %d, want %d", i, item, want)
		}
	}
}

func TestLiveViewTracksMutation(t *testing.T) {
	r, _ := NewRing[int](5)
	undos := r.Undos()

	if n, _ := undos.Count(); n != 0 {
		t.Errorf("Count() = %d, want 0", n)
	}

	pushN(r, 4)
	if n, err := undos.Count(); err != nil || n != 4 {
		t.Errorf("Count() = %d, %v, want 4", n, err)
	}

	r.PopUndo()
	if n, err := undos.Count(); err != nil || n != 3 {
		t.Errorf("Count() after pop = %d, %v, want 3", n, err)
	}
	if item, err := undos.At(0); err != nil || item != 3 {
		t.Errorf("At(0) after pop = %d, %v, want 3", item, err)
	}
}

func TestLiveViewWrapped(t *testing.T) {
	r, _ := NewRing[int](4)
	pushN(r, 7) // window spans the physical seam

	items, err := r.Undos().Items()
	if err != nil {
		t.Fatalf("Items failed: %v", err)
	}
	if fmt.Sprint(items) != fmt.Sprint([]int{7, 6, 5, 4}) {
		t.Errorf("Items() = %v, want [7 6 5 4]", items)
	}
}

func TestViewAtOutOfRange(t *testing.T) {
	r, _ := NewRing[int](5)
	pushN(r, 2)

	for _, i := range []int{-1, 2, 10} {
		if _, err := r.Undos().At(i); !errors.Is(err, ErrInvalidOffset) {
			t.Errorf("At(%d): got %v, want ErrInvalidOffset", i, err)
		}
	}
}

// Snapshot View Tests

func TestSnapshotViewPopOrder(t *testing.T) {
	r, _ := NewRing[int](6)
	pushN(r, 5)

	view, err := r.PopUndoN(3)
	if err != nil {
		t.Fatalf("PopUndoN failed: %v", err)
	}

	n, err := view.Count()
	if err != nil || n != 3 {
		t.Fatalf("Count() = %d, %v, want 3", n, err)
	}
	items, err := view.Items()
	if err != nil {
		t.Fatalf("Items failed: %v", err)
	}
	if fmt.Sprint(items) != fmt.Sprint([]int{5, 4, 3}) {
		t.Errorf("Items() = %v, want [5 4 3]", items)
	}
}

func TestSnapshotViewStaleAfterMutation(t *testing.T) {
	mutations := []struct {
		name   string
		mutate func(r *Ring[int])
	}{
		{"push", func(r *Ring[int]) { r.Push(99) }},
		{"pop undo", func(r *Ring[int]) { r.PopUndo() }},
		{"pop redo", func(r *Ring[int]) { r.PopRedo() }},
		{"clear", func(r *Ring[int]) { r.Clear() }},
		{"clear redo", func(r *Ring[int]) { r.ClearRedo() }},
		{"remove undo", func(r *Ring[int]) { r.RemoveUndo() }},
	}

	for _, tt := range mutations {
		t.Run(tt.name, func(t *testing.T) {
			r, _ := NewRing[int](6)
			pushN(r, 5)
			view, err := r.PopUndoN(2)
			if err != nil {
				t.Fatalf("PopUndoN failed: %v", err)
			}

			tt.mutate(r)

			if _, err := view.Count(); !errors.Is(err, ErrStaleView) {
				t.Errorf("Count: got %v, want ErrStaleView", err)
			}
			if _, err := view.At(0); !errors.Is(err, ErrStaleView) {
				t.Errorf("At: got %v, want ErrStaleView", err)
			}
			if _, err := view.Items(); !errors.Is(err, ErrStaleView) {
				t.Errorf("Items: got %v, want ErrStaleView", err)
			}
		})
	}
}

func TestSnapshotViewValidUntilMutation(t *testing.T) {
	r, _ := NewRing[int](6)
	pushN(r, 4)

	view, _ := r.PopUndoN(2)

	// Reads through the ring do not invalidate the snapshot.
	r.Items()
	r.PeekRedo()
	r.Undos().Count()

	items, err := view.Items()
	if err != nil {
		t.Fatalf("Items failed after reads: %v", err)
	}
	if fmt.Sprint(items) != fmt.Sprint([]int{4, 3}) {
		t.Errorf("Items() = %v, want [4 3]", items)
	}
}

func TestSnapshotRedoView(t *testing.T) {
	r, _ := NewRing[int](6)
	pushN(r, 5)
	if _, err := r.PopUndoN(4); err != nil {
		t.Fatalf("PopUndoN failed: %v", err)
	}

	view, err := r.PopRedoN(3)
	if err != nil {
		t.Fatalf("PopRedoN failed: %v", err)
	}
	items, err := view.Items()
	if err != nil {
		t.Fatalf("Items failed: %v", err)
	}
	// Redo pops return the next-to-redo item first.
	if fmt.Sprint(items) != fmt.Sprint([]int{2, 3, 4}) {
		t.Errorf("Items() = %v, want [2 3 4]", items)
	}
}

// Iterator Tests

func TestIterWalksView(t *testing.T) {
	r, _ := NewRing[int](5)
	pushN(r, 3)

	it := r.Undos().Iter()
	var got []int
	for {
		item, ok := it.Next()
		if !ok {
			break
		}
		got = append(got, item)
	}
	if err := it.Err(); err != nil {
		t.Fatalf("Err() = %v", err)
	}
	if fmt.Sprint(got) != fmt.Sprint([]int{3, 2, 1}) {
		t.Errorf("iterated %v, want [3 2 1]", got)
	}
}

func TestIterStaleMidIteration(t *testing.T) {
	r, _ := NewRing[int](5)
	pushN(r, 3)

	it := r.Undos().Iter()
	if _, ok := it.Next(); !ok {
		t.Fatal("first Next should succeed")
	}

	r.Push(99)

	if _, ok := it.Next(); ok {
		t.Error("Next after mutation should fail")
	}
	if !errors.Is(it.Err(), ErrStaleView) {
		t.Errorf("Err() = %v, want ErrStaleView", it.Err())
	}

	// A fresh iterator from the same live view works again.
	it2 := r.Undos().Iter()
	item, ok := it2.Next()
	if !ok || item != 99 {
		t.Errorf("fresh iterator Next() = %d, %v, want 99", item, ok)
	}
}

func TestSnapshotIterStale(t *testing.T) {
	r, _ := NewRing[int](5)
	pushN(r, 4)
	view, _ := r.PopUndoN(2)

	it := view.Iter()
	if item, ok := it.Next(); !ok || item != 4 {
		t.Fatalf("Next() = %d, %v, want 4", item, ok)
	}

	r.Push(99)

	if _, ok := it.Next(); ok {
		t.Error("Next after mutation should fail")
	}
	if !errors.Is(it.Err(), ErrStaleView) {
		t.Errorf("Err() = %v, want ErrStaleView", it.Err())
	}
}
