package engine

import "github.com/quasar-chunawala/order-book-matching/book"

// EventHandler receives the output side of the engine: trades as they are
// produced, and a notification whenever a request's book mutation has
// been applied. Calls arrive on the engine's dedicated publisher
// goroutine, never on the matching goroutine (Engine hands each event off
// across its outbound ring first) — so a slow or blocking handler never
// holds up matching. If the handler falls so far behind that the outbound
// ring fills, further events are dropped (and logged), not delivered late.
type EventHandler interface {
	OnTrades(trades []book.Trade)
	OnRequestProcessed(kind RequestKind, result Result)
}

// NoopEventHandler discards everything; useful in tests that only care
// about the synchronous Result returned by the Engine's request methods.
type NoopEventHandler struct{}

func (NoopEventHandler) OnTrades([]book.Trade)                  {}
func (NoopEventHandler) OnRequestProcessed(RequestKind, Result) {}
