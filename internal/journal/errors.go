package journal

import "errors"

// Errors returned by journal operations.
var (
	// ErrInvalidCapacity indicates a non-positive capacity was requested.
	ErrInvalidCapacity = errors.New("capacity must be positive")

	// ErrNilItems indicates a required seed sequence was nil.
	ErrNilItems = errors.New("seed items must not be nil")

	// ErrTooManyItems indicates a seed sequence exceeds the capacity.
	ErrTooManyItems = errors.New("seed items exceed capacity")

	// ErrInvalidRedoCount indicates a seed redo count outside [0, len(items)].
	ErrInvalidRedoCount = errors.New("redo count out of range")

	// ErrNothingToUndo indicates the undo partition is empty.
	ErrNothingToUndo = errors.New("nothing to undo")

	// ErrNothingToRedo indicates the redo partition is empty.
	ErrNothingToRedo = errors.New("nothing to redo")

	// ErrInvalidCount indicates a non-positive count or one exceeding the
	// partition's available items.
	ErrInvalidCount = errors.New("count out of range")

	// ErrStaleView indicates a snapshot view was read after the journal
	// mutated.
	ErrStaleView = errors.New("view invalidated by journal mutation")

	// ErrNilDestination indicates a nil copy destination.
	ErrNilDestination = errors.New("destination must not be nil")

	// ErrDestinationTooSmall indicates the copy destination cannot hold the
	// journal's items at the requested offset.
	ErrDestinationTooSmall = errors.New("destination too small")

	// ErrInvalidOffset indicates a negative destination offset.
	ErrInvalidOffset = errors.New("offset out of range")
)
