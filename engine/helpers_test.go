package engine

import (
	"sync"

	"github.com/quasar-chunawala/order-book-matching/book"
)

// recordingHandler is a minimal EventHandler used by tests that need to
// observe what the matching goroutine emits asynchronously.
type recordingHandler struct {
	mu     sync.Mutex
	trades []book.Trade
}

func (h *recordingHandler) OnTrades(trades []book.Trade) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.trades = append(h.trades, trades...)
}

func (h *recordingHandler) OnRequestProcessed(RequestKind, Result) {}
