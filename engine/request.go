package engine

import "github.com/quasar-chunawala/order-book-matching/book"

// RequestKind selects which of the four core commands a Request carries.
type RequestKind int

const (
	KindAddOrder RequestKind = iota
	KindModifyOrder
	KindCancelOrder
	KindGetOrder
)

// AddOrderParams mirrors the spec's AddOrder command.
type AddOrderParams struct {
	OrderType  book.OrderType
	UserID     string
	Side       book.Side
	SymbolName string
	Price      book.Price
	Quantity   book.Quantity
}

// ModifyOrderParams mirrors the spec's ModifyOrder command.
type ModifyOrderParams struct {
	OrderID     book.OrderID
	NewPrice    book.Price
	NewQuantity book.Quantity
}

// CancelOrderParams mirrors the spec's CancelOrder command.
type CancelOrderParams struct {
	OrderID book.OrderID
}

// GetOrderParams mirrors the spec's GetOrder command.
type GetOrderParams struct {
	OrderID book.OrderID
}

// Result is what the matching goroutine hands back once a Request has run
// to completion.
type Result struct {
	OrderID book.OrderID
	Trades  []book.Trade
	Order   book.Order
	Err     error
}

// Request is one command traveling across the ring. resultCh is buffered
// by 1 so the matching goroutine never blocks handing its result back.
type Request struct {
	Kind RequestKind

	AddOrder    AddOrderParams
	ModifyOrder ModifyOrderParams
	CancelOrder CancelOrderParams
	GetOrder    GetOrderParams

	resultCh chan Result
}

func newRequest(kind RequestKind) *Request {
	return &Request{Kind: kind, resultCh: make(chan Result, 1)}
}
