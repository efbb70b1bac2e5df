package book

import "errors"

// Operational errors are returned to callers as-is; they are never logged
// at the core. Invariant violations (EmptyLevel, BookCrossedAfterMatch) are
// not part of this taxonomy because they are fatal: the matching loop
// panics instead of returning them (see panics.go).
var (
	// ErrUnknownBook is returned when a request references a symbol with
	// no book and the operation is not book-creating.
	ErrUnknownBook = errors.New("order book: unknown book")
	// ErrUnknownOrder is returned when an OrderID does not address a live
	// slot.
	ErrUnknownOrder = errors.New("order book: unknown order")
	// ErrCapacityExceeded is returned by a bounded backing allocator that
	// cannot satisfy an acquire. The default heap-backed pool never
	// returns it.
	ErrCapacityExceeded = errors.New("order book: capacity exceeded")
)
