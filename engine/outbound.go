package engine

import "github.com/quasar-chunawala/order-book-matching/book"

// outboundEvent is one unit of the engine's output side: the trades (if
// any) and the request-processed notification produced by a single
// drained Request. It travels across the outbound ring so the matching
// goroutine never calls into the EventHandler directly.
type outboundEvent struct {
	kind   RequestKind
	trades []book.Trade
	result Result
}
