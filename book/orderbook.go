package book

import "sort"

// orderLocation records which side/price a live order currently rests at,
// so CancelOrder/ModifyOrder can find its PriceLevel in O(log levels)
// without a back-pointer from the pool node.
type orderLocation struct {
	side  Side
	price Price
}

// OrderBook is the per-symbol aggregate: both sides of price levels, the
// order pool, and the matching engine. bids are kept ascending by price
// (back = best = highest); asks descending (back = best = lowest), giving
// O(1) best-quote access at the cost of O(#levels) insert/remove — fine
// at realistic book depth and friendlier to the cache than a tree.
type OrderBook struct {
	symbol SymbolTag
	pool   *orderPool

	bids []*PriceLevel
	asks []*PriceLevel

	locations map[Sequence]orderLocation
}

// NewOrderBook creates an empty book for symbol. poolCapacityHint
// pre-sizes the backing order arena; pass 0 for the default.
func NewOrderBook(symbol SymbolTag, poolCapacityHint int) *OrderBook {
	return &OrderBook{
		symbol:    symbol,
		pool:      newOrderPool(poolCapacityHint),
		locations: make(map[Sequence]orderLocation),
	}
}

func (b *OrderBook) Symbol() SymbolTag { return b.symbol }

func (b *OrderBook) levelsSlice(side Side) *[]*PriceLevel {
	if side == Buy {
		return &b.bids
	}
	return &b.asks
}

func sideToLevelType(side Side) LevelType {
	if side == Buy {
		return Bid
	}
	return Ask
}

// findPriceLevel binary-searches the side's levels for price. bids are
// ascending so the search predicate is >=; asks are descending so it is
// <=. The returned index is the insertion point when found is false.
func (b *OrderBook) findPriceLevel(side Side, price Price) (idx int, found bool) {
	levels := *b.levelsSlice(side)
	n := len(levels)
	if side == Buy {
		idx = sort.Search(n, func(i int) bool { return levels[i].Price >= price })
	} else {
		idx = sort.Search(n, func(i int) bool { return levels[i].Price <= price })
	}
	return idx, idx < n && levels[idx].Price == price
}

func insertLevelAt(levels []*PriceLevel, idx int, lvl *PriceLevel) []*PriceLevel {
	levels = append(levels, nil)
	copy(levels[idx+1:], levels[idx:])
	levels[idx] = lvl
	return levels
}

func (b *OrderBook) removeLevelAt(side Side, idx int) {
	levelsPtr := b.levelsSlice(side)
	*levelsPtr = append((*levelsPtr)[:idx], (*levelsPtr)[idx+1:]...)
}

func (b *OrderBook) getOrCreatePriceLevel(side Side, price Price) *PriceLevel {
	idx, found := b.findPriceLevel(side, price)
	levelsPtr := b.levelsSlice(side)
	if found {
		return (*levelsPtr)[idx]
	}
	lvl := newPriceLevel(sideToLevelType(side), price)
	*levelsPtr = insertLevelAt(*levelsPtr, idx, lvl)
	return lvl
}

// GetOrder returns a snapshot of the live order at id, or ErrUnknownOrder.
func (b *OrderBook) GetOrder(id OrderID) (Order, error) {
	order, err := b.pool.get(id.Seq)
	if err != nil {
		return Order{}, err
	}
	return *order, nil
}

// BestBid returns the highest resting bid level, if any.
func (b *OrderBook) BestBid() (*PriceLevel, bool) {
	if len(b.bids) == 0 {
		return nil, false
	}
	return b.bids[len(b.bids)-1], true
}

// BestAsk returns the lowest resting ask level, if any.
func (b *OrderBook) BestAsk() (*PriceLevel, bool) {
	if len(b.asks) == 0 {
		return nil, false
	}
	return b.asks[len(b.asks)-1], true
}

func (b *OrderBook) BidDepth() int { return len(b.bids) }
func (b *OrderBook) AskDepth() int { return len(b.asks) }

// BidLevels and AskLevels return read-only snapshots of each side's
// levels in best-at-back order, for callers that want to inspect book
// shape (metrics, tests).
func (b *OrderBook) BidLevels() []*PriceLevel { return append([]*PriceLevel(nil), b.bids...) }
func (b *OrderBook) AskLevels() []*PriceLevel { return append([]*PriceLevel(nil), b.asks...) }

// LevelVolume sums the remaining quantity of every order resting on l.
func (b *OrderBook) LevelVolume(l *PriceLevel) Quantity {
	return levelVolume(b.pool, l)
}

// LevelOrders returns the orders resting on l in FIFO (arrival) order.
func (b *OrderBook) LevelOrders(l *PriceLevel) []Order {
	var out []Order
	seq := l.firstSeq
	for seq != 0 {
		node, err := b.pool.node(seq)
		if err != nil {
			break
		}
		out = append(out, *node.order)
		seq = node.next
	}
	return out
}

func levelVolume(pool *orderPool, l *PriceLevel) Quantity {
	var total Quantity
	seq := l.firstSeq
	for seq != 0 {
		node, err := pool.node(seq)
		if err != nil {
			break
		}
		total += node.order.RemainingQuantity
		seq = node.next
	}
	return total
}

// isMatchPossible is the single-level gate from the spec: the opposite
// side must be non-empty, its best level must cross price, and that best
// level must actually hold an order.
func (b *OrderBook) isMatchPossible(side Side, price Price) bool {
	if side == Buy {
		best, ok := b.BestAsk()
		if !ok || price < best.Price || best.IsEmpty() {
			return false
		}
	} else {
		best, ok := b.BestBid()
		if !ok || price > best.Price || best.IsEmpty() {
			return false
		}
	}
	return true
}

// aggregateOppositeLiquidity sums remaining quantity across every
// opposite-side level that qualifies to cross price, stopping once it has
// accumulated at least limit (the caller only needs a yes/no comparison
// against limit, not the exact total beyond that point).
func (b *OrderBook) aggregateOppositeLiquidity(side Side, price Price, limit Quantity) Quantity {
	var levels []*PriceLevel
	if side == Buy {
		levels = b.asks
	} else {
		levels = b.bids
	}
	var total Quantity
	for i := len(levels) - 1; i >= 0; i-- {
		lvl := levels[i]
		if side == Buy && lvl.Price > price {
			break
		}
		if side == Sell && lvl.Price < price {
			break
		}
		total += levelVolume(b.pool, lvl)
		if total >= limit {
			return total
		}
	}
	return total
}

// AddOrder is the single entry point for resting or crossing a new
// instruction. It returns the OrderID assigned to the order (zero value
// if the order was discarded or gated without ever being placed) and any
// Trades produced while matching it.
func (b *OrderBook) AddOrder(orderType OrderType, userID string, side Side, price Price, quantity Quantity) (OrderID, []Trade, error) {
	// Market translation: rewrite to a LIMIT at the price extreme so the
	// order is guaranteed to sweep the opposite book, or discard silently
	// if there is nothing to sweep.
	if orderType == Market {
		if side == Buy {
			if len(b.asks) == 0 {
				return OrderID{}, nil, nil
			}
			orderType, price = Limit, MaxPrice
		} else {
			if len(b.bids) == 0 {
				return OrderID{}, nil, nil
			}
			orderType, price = Limit, MinPrice
		}
	}

	if orderType == FillAndKill {
		if !b.isMatchPossible(side, price) {
			return OrderID{}, nil, nil
		}
	}
	if orderType == FillOrKill {
		if !b.isMatchPossible(side, price) {
			return OrderID{}, nil, nil
		}
		if b.aggregateOppositeLiquidity(side, price, quantity) < quantity {
			return OrderID{}, nil, nil
		}
	}

	seq := b.pool.acquire()
	id := OrderID{Symbol: b.symbol, Seq: seq}
	order := &Order{
		Type:              orderType,
		ID:                id,
		UserID:            userID,
		Side:              side,
		Price:             price,
		InitialQuantity:   quantity,
		RemainingQuantity: quantity,
	}
	b.pool.occupy(seq, order)

	level := b.getOrCreatePriceLevel(side, price)
	level.pushBack(b.pool, seq)
	b.locations[seq] = orderLocation{side: side, price: price}

	trades := b.match()

	switch orderType {
	case FillAndKill:
		if order.RemainingQuantity > 0 {
			_ = b.CancelOrder(id)
		}
	case FillOrKill:
		if order.RemainingQuantity > 0 {
			// Unreachable under the aggregate-liquidity gate above; kept
			// as the spec's documented safety net.
			_ = b.CancelOrder(id)
			return id, nil, nil
		}
	}

	return id, trades, nil
}

// match runs the price-time matching loop to fixed point: it crosses the
// best bid against the best ask while they cross, emitting a Trade per
// crossing, until one side empties or the book uncrosses.
func (b *OrderBook) match() []Trade {
	var trades []Trade

	for {
		if len(b.bids) == 0 || len(b.asks) == 0 {
			break
		}

		bestBid := b.bids[len(b.bids)-1]
		bestAsk := b.asks[len(b.asks)-1]

		if bestBid.Price < bestAsk.Price {
			break
		}

		for !bestBid.IsEmpty() && !bestAsk.IsEmpty() {
			bidHead := bestBid.front(b.pool)
			askHead := bestAsk.front(b.pool)

			q := bidHead.RemainingQuantity
			if askHead.RemainingQuantity < q {
				q = askHead.RemainingQuantity
			}

			var executing, reducing *Order
			var executingLevel, reducingLevel *PriceLevel
			if bidHead.RemainingQuantity <= askHead.RemainingQuantity {
				executing, reducing = bidHead, askHead
				executingLevel, reducingLevel = bestBid, bestAsk
			} else {
				executing, reducing = askHead, bidHead
				executingLevel, reducingLevel = bestAsk, bestBid
			}

			reducingInitial := reducing.InitialQuantity

			executing.RemainingQuantity -= q
			reducing.RemainingQuantity -= q

			reducingFill := Partial
			if q == reducingInitial {
				reducingFill = Full
			}

			trades = append(trades, Trade{
				Executing: TradeInfo{
					FillType: Full,
					UserID:   executing.UserID,
					OrderID:  executing.ID,
					Price:    executing.Price,
					Quantity: q,
				},
				Reducing: TradeInfo{
					FillType: reducingFill,
					UserID:   reducing.UserID,
					OrderID:  reducing.ID,
					Price:    reducing.Price,
					Quantity: q,
				},
			})

			if executing.RemainingQuantity == 0 {
				executingLevel.popFront(b.pool)
				delete(b.locations, executing.ID.Seq)
			}
			if reducing.RemainingQuantity == 0 {
				reducingLevel.popFront(b.pool)
				delete(b.locations, reducing.ID.Seq)
			}
		}

		if bestBid.IsEmpty() {
			b.bids = b.bids[:len(b.bids)-1]
		}
		if bestAsk.IsEmpty() {
			b.asks = b.asks[:len(b.asks)-1]
		}
	}

	if len(b.bids) > 0 && len(b.asks) > 0 && b.bids[len(b.bids)-1].Price >= b.asks[len(b.asks)-1].Price {
		panicBookCrossedAfterMatch()
	}

	return trades
}

// CancelOrder unlinks and releases id's slot. If its price level becomes
// empty, the level itself is removed from the side's sequence.
func (b *OrderBook) CancelOrder(id OrderID) error {
	loc, ok := b.locations[id.Seq]
	if !ok {
		return ErrUnknownOrder
	}

	idx, found := b.findPriceLevel(loc.side, loc.price)
	if !found {
		panicEmptyLevel()
	}

	levelsPtr := b.levelsSlice(loc.side)
	level := (*levelsPtr)[idx]

	if err := level.unlink(b.pool, id.Seq); err != nil {
		return err
	}
	delete(b.locations, id.Seq)

	if level.IsEmpty() {
		b.removeLevelAt(loc.side, idx)
	}
	return nil
}

// ModifyOrder updates an existing order. A same-price modification is
// applied in place with queue position preserved. A price change cancels
// the order and re-queues it at the new price, which loses its time
// priority; the re-queue may itself cross the book and emit Trades.
func (b *OrderBook) ModifyOrder(id OrderID, newPrice Price, newQuantity Quantity) (OrderID, []Trade, error) {
	loc, ok := b.locations[id.Seq]
	if !ok {
		return OrderID{}, nil, ErrUnknownOrder
	}

	order, err := b.pool.get(id.Seq)
	if err != nil {
		return OrderID{}, nil, err
	}

	if newPrice == loc.price {
		order.InitialQuantity = newQuantity
		order.RemainingQuantity = newQuantity
		return id, nil, nil
	}

	old := *order
	if err := b.CancelOrder(id); err != nil {
		return OrderID{}, nil, err
	}

	newID, trades, err := b.AddOrder(old.Type, old.UserID, old.Side, newPrice, newQuantity)
	return newID, trades, err
}
