// Package engine adapts the order-book core into the single-producer/
// single-consumer hand-off the surrounding system is expected to use: an
// ingestion side publishes Requests onto a bounded power-of-two ring, and
// one matching goroutine drains it to completion, request by request,
// against a book.MarketDataManager.
package engine

import "sync/atomic"

const (
	defaultRingCapacity = 1024
	cacheLineSize       = 64
)

// sequence is a cache-line-padded counter, avoiding false sharing between
// the producer's cursor and the consumer's gating sequence.
type sequence struct {
	value atomic.Int64
	_     [cacheLineSize - 8]byte
}

// ring is the bounded SPSC ring buffer described in the spec: capacity is
// rounded up to a power of two, index wrap is (i+1)&(cap-1), the producer
// releases on its cursor store and the consumer acquires on its gating
// load. TryPublish never blocks; it reports false on a full ring.
//
// It is generic so the same primitive carries both the engine's inbound
// Requests and its outbound events (SPEC_FULL.md §4.7 and §5: one SPSC
// ring in, one out) without duplicating the cursor/gating bookkeeping.
type ring[T any] struct {
	buf  []T
	mask int64
	size int64

	cursor sequence // producer's next-write frontier
	gating sequence // consumer's last-processed position
}

func newRing[T any](capacityHint int64) *ring[T] {
	if capacityHint < 1 {
		capacityHint = defaultRingCapacity
	}
	size := roundUpToPowerOf2(capacityHint)
	return &ring[T]{
		buf:  make([]T, size),
		mask: size - 1,
		size: size,
	}
}

// TryPublish appends item to the ring. It returns false if the ring is
// full; the caller (producer side) decides whether to drop or retry.
func (r *ring[T]) TryPublish(item T) bool {
	current := r.cursor.value.Load()
	next := current + 1
	if next-r.size > r.gating.value.Load() {
		return false
	}
	r.buf[next&r.mask] = item
	r.cursor.value.Store(next)
	return true
}

// drain processes every item published since the last drain, in arrival
// order, and returns how many it handled.
func (r *ring[T]) drain(handle func(T)) int {
	start := r.gating.value.Load()
	end := r.cursor.value.Load()
	for i := start + 1; i <= end; i++ {
		handle(r.buf[i&r.mask])
	}
	if end > start {
		r.gating.value.Store(end)
	}
	return int(end - start)
}

func roundUpToPowerOf2(v int64) int64 {
	v--
	v |= v >> 1
	v |= v >> 2
	v |= v >> 4
	v |= v >> 8
	v |= v >> 16
	v |= v >> 32
	v++
	return v
}
