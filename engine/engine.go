package engine

import (
	"errors"
	"runtime"
	"sync/atomic"

	"github.com/quasar-chunawala/order-book-matching/book"
	"go.uber.org/zap"
)

// ErrRingFull is returned by the request methods (AddOrder, ModifyOrder,
// CancelOrder, GetOrder) when the ingestion ring has no room left; the
// caller decides whether to drop or retry.
var ErrRingFull = errors.New("engine: ring buffer is full")

// Engine is the single-threaded cooperative matching thread the spec
// describes: one goroutine owns one book.MarketDataManager and drains one
// ingestion ring to completion, request by request. It never suspends
// mid-match, and it never calls into the EventHandler itself — every
// Trade batch and request-processed notification is handed off across a
// second, outbound ring to a dedicated publisher goroutine, so a slow or
// blocking handler stalls only that goroutine, never matching.
type Engine struct {
	ring    *ring[*Request]
	outRing *ring[*outboundEvent]
	manager *book.MarketDataManager
	handler EventHandler
	logger  *zap.Logger

	running atomic.Bool
	done    chan struct{}

	publishing  atomic.Bool
	publishDone chan struct{}
}

// NewEngine wires a fresh MarketDataManager behind an inbound
// ringCapacity-sized ring buffer and an outbound ring of the same
// capacity. poolCapacityHint is forwarded to every book the manager
// lazily creates. A nil logger falls back to zap.NewNop().
func NewEngine(handler EventHandler, logger *zap.Logger, ringCapacity, poolCapacityHint int) *Engine {
	if handler == nil {
		handler = NoopEventHandler{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{
		ring:    newRing[*Request](int64(ringCapacity)),
		outRing: newRing[*outboundEvent](int64(ringCapacity)),
		manager: book.NewMarketDataManager(poolCapacityHint),
		handler: handler,
		logger:  logger,
	}
}

// Start launches the matching goroutine and the publisher goroutine that
// drains its outbound ring. Calling Start on an already running engine is
// a no-op.
func (e *Engine) Start() {
	if !e.running.CompareAndSwap(false, true) {
		return
	}
	e.done = make(chan struct{})
	go e.run()

	e.publishing.Store(true)
	e.publishDone = make(chan struct{})
	go e.publish()
}

// Stop signals the matching goroutine to exit after finishing whatever
// request it is currently draining, waits for it to do so, then signals
// the publisher goroutine to exit after flushing whatever outbound events
// matching already produced.
func (e *Engine) Stop() {
	if !e.running.CompareAndSwap(true, false) {
		return
	}
	<-e.done

	e.publishing.Store(false)
	<-e.publishDone
}

func (e *Engine) run() {
	defer close(e.done)
	for e.running.Load() {
		n := e.ring.drain(e.handle)
		if n == 0 {
			runtime.Gosched()
		}
	}
}

// publish drains the outbound ring and delivers each event to the
// EventHandler, off the matching goroutine. It keeps draining once after
// the stop signal to flush anything matching produced just before it
// exited.
func (e *Engine) publish() {
	defer close(e.publishDone)
	for e.publishing.Load() {
		n := e.outRing.drain(e.deliver)
		if n == 0 {
			runtime.Gosched()
		}
	}
	e.outRing.drain(e.deliver)
}

func (e *Engine) deliver(ev *outboundEvent) {
	if len(ev.trades) > 0 {
		e.handler.OnTrades(ev.trades)
	}
	e.handler.OnRequestProcessed(ev.kind, ev.result)
}

func (e *Engine) handle(req *Request) {
	var result Result

	func() {
		defer func() {
			if r := recover(); r != nil {
				// An invariant violation inside the core is fatal: log it
				// and let the panic continue unwinding so the process
				// aborts rather than keep matching against corrupted
				// book state.
				e.logger.Error("order book invariant violated", zap.Any("panic", r), zap.Int("request_kind", int(req.Kind)))
				panic(r)
			}
		}()

		switch req.Kind {
		case KindAddOrder:
			p := req.AddOrder
			result.OrderID, result.Trades, result.Err = e.manager.AddOrder(
				p.OrderType, p.UserID, p.Side, p.SymbolName, p.Price, p.Quantity)
		case KindModifyOrder:
			p := req.ModifyOrder
			result.OrderID, result.Trades, result.Err = e.manager.ModifyOrder(p.OrderID, p.NewPrice, p.NewQuantity)
		case KindCancelOrder:
			result.Err = e.manager.CancelOrder(req.CancelOrder.OrderID)
		case KindGetOrder:
			result.Order, result.Err = e.manager.GetOrder(req.GetOrder.OrderID)
		}
	}()

	if !e.outRing.TryPublish(&outboundEvent{kind: req.Kind, trades: result.Trades, result: result}) {
		// The outbound ring only ever has to absorb at most one event per
		// inbound request, and the publisher goroutine drains continuously,
		// so this is not expected in practice; a slow handler backs up the
		// publisher, not the matching goroutine, so dropping rather than
		// blocking here is the right trade-off.
		e.logger.Warn("outbound event ring full, dropping event", zap.Int("request_kind", int(req.Kind)))
	}

	req.resultCh <- result
}

// submit publishes req and blocks for its result. This is a convenience
// round trip for callers that want a synchronous facade over the async
// ring; it never holds the matching goroutine up, since the result is
// produced by the single act of draining req itself.
func (e *Engine) submit(req *Request) (Result, error) {
	if !e.ring.TryPublish(req) {
		return Result{}, ErrRingFull
	}
	return <-req.resultCh, nil
}

// AddOrder submits an AddOrder command and waits for its outcome.
func (e *Engine) AddOrder(orderType book.OrderType, userID string, side book.Side, symbolName string, price book.Price, quantity book.Quantity) (book.OrderID, []book.Trade, error) {
	req := newRequest(KindAddOrder)
	req.AddOrder = AddOrderParams{orderType, userID, side, symbolName, price, quantity}
	res, err := e.submit(req)
	if err != nil {
		return book.OrderID{}, nil, err
	}
	return res.OrderID, res.Trades, res.Err
}

// ModifyOrder submits a ModifyOrder command and waits for its outcome.
func (e *Engine) ModifyOrder(id book.OrderID, newPrice book.Price, newQuantity book.Quantity) (book.OrderID, []book.Trade, error) {
	req := newRequest(KindModifyOrder)
	req.ModifyOrder = ModifyOrderParams{id, newPrice, newQuantity}
	res, err := e.submit(req)
	if err != nil {
		return book.OrderID{}, nil, err
	}
	return res.OrderID, res.Trades, res.Err
}

// CancelOrder submits a CancelOrder command and waits for its outcome.
func (e *Engine) CancelOrder(id book.OrderID) error {
	req := newRequest(KindCancelOrder)
	req.CancelOrder = CancelOrderParams{id}
	res, err := e.submit(req)
	if err != nil {
		return err
	}
	return res.Err
}

// GetOrder submits a GetOrder command and waits for its outcome.
func (e *Engine) GetOrder(id book.OrderID) (book.Order, error) {
	req := newRequest(KindGetOrder)
	req.GetOrder = GetOrderParams{id}
	res, err := e.submit(req)
	if err != nil {
		return book.Order{}, err
	}
	return res.Order, res.Err
}
