package book

// MarketDataManager dispatches requests by symbol to the corresponding
// OrderBook, creating books lazily. It is an instance, not process-global
// state; a process may run several independent managers (e.g. one per
// matching thread) without interference.
type MarketDataManager struct {
	books            map[SymbolTag]*OrderBook
	poolCapacityHint int
}

// NewMarketDataManager creates an empty manager. poolCapacityHint is
// forwarded to every book it lazily creates; pass 0 for the default.
func NewMarketDataManager(poolCapacityHint int) *MarketDataManager {
	return &MarketDataManager{
		books:            make(map[SymbolTag]*OrderBook),
		poolCapacityHint: poolCapacityHint,
	}
}

// Book returns the existing book for symbol, if any.
func (m *MarketDataManager) Book(symbol SymbolTag) (*OrderBook, bool) {
	b, ok := m.books[symbol]
	return b, ok
}

func (m *MarketDataManager) bookOrCreate(symbol SymbolTag) *OrderBook {
	b, ok := m.books[symbol]
	if !ok {
		b = NewOrderBook(symbol, m.poolCapacityHint)
		m.books[symbol] = b
	}
	return b
}

// AddOrder creates the book for symbolName on first use, then forwards.
func (m *MarketDataManager) AddOrder(orderType OrderType, userID string, side Side, symbolName string, price Price, quantity Quantity) (OrderID, []Trade, error) {
	b := m.bookOrCreate(NewSymbolTag(symbolName))
	return b.AddOrder(orderType, userID, side, price, quantity)
}

// ModifyOrder derives the book from id.Symbol; ErrUnknownBook if it does
// not exist.
func (m *MarketDataManager) ModifyOrder(id OrderID, newPrice Price, newQuantity Quantity) (OrderID, []Trade, error) {
	b, ok := m.books[id.Symbol]
	if !ok {
		return OrderID{}, nil, ErrUnknownBook
	}
	return b.ModifyOrder(id, newPrice, newQuantity)
}

// CancelOrder derives the book from id.Symbol; ErrUnknownBook if it does
// not exist.
func (m *MarketDataManager) CancelOrder(id OrderID) error {
	b, ok := m.books[id.Symbol]
	if !ok {
		return ErrUnknownBook
	}
	return b.CancelOrder(id)
}

// GetOrder derives the book from id.Symbol; ErrUnknownBook if it does not
// exist.
func (m *MarketDataManager) GetOrder(id OrderID) (Order, error) {
	b, ok := m.books[id.Symbol]
	if !ok {
		return Order{}, ErrUnknownBook
	}
	return b.GetOrder(id)
}
