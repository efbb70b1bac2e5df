package book

// LevelType distinguishes the two sides a PriceLevel can belong to.
type LevelType int

const (
	Bid LevelType = iota
	Ask
)

// PriceLevel is the FIFO of resting orders at one price on one side. It
// carries only head/tail indices into the owning OrderBook's pool plus its
// type and price — no back-pointer to the book or the pool, breaking the
// cyclic reference the original design had. All pool access is routed
// through the methods below, which take the owning pool explicitly.
type PriceLevel struct {
	Type  LevelType
	Price Price

	firstSeq, lastSeq Sequence
}

func newPriceLevel(t LevelType, price Price) *PriceLevel {
	return &PriceLevel{Type: t, Price: price}
}

// IsEmpty reports whether the level holds no resting orders.
func (l *PriceLevel) IsEmpty() bool {
	return l.firstSeq == 0 && l.lastSeq == 0
}

// pushBack links seq onto the tail of the level's chain.
func (l *PriceLevel) pushBack(pool *orderPool, seq Sequence) {
	node, err := pool.node(seq)
	if err != nil {
		panicEmptyLevel()
	}
	if l.IsEmpty() {
		l.firstSeq = seq
		l.lastSeq = seq
		node.prev = 0
		node.next = 0
		return
	}
	tail, err := pool.node(l.lastSeq)
	if err != nil {
		panicEmptyLevel()
	}
	tail.next = seq
	node.prev = l.lastSeq
	node.next = 0
	l.lastSeq = seq
}

// popFront unlinks and releases the head of the chain.
func (l *PriceLevel) popFront(pool *orderPool) {
	if l.IsEmpty() {
		panicEmptyLevel()
	}
	head, err := pool.node(l.firstSeq)
	if err != nil {
		panicEmptyLevel()
	}
	old := l.firstSeq
	l.firstSeq = head.next
	if l.firstSeq == 0 {
		l.lastSeq = 0
	} else {
		next, err := pool.node(l.firstSeq)
		if err == nil {
			next.prev = 0
		}
	}
	pool.release(old)
}

// front returns the order at the head of the chain.
func (l *PriceLevel) front(pool *orderPool) *Order {
	if l.IsEmpty() {
		panicEmptyLevel()
	}
	order, err := pool.get(l.firstSeq)
	if err != nil {
		panicEmptyLevel()
	}
	return order
}

// back returns the order at the tail of the chain.
func (l *PriceLevel) back(pool *orderPool) *Order {
	if l.IsEmpty() {
		panicEmptyLevel()
	}
	order, err := pool.get(l.lastSeq)
	if err != nil {
		panicEmptyLevel()
	}
	return order
}

// fillAgainst matches the resting head of the level against incoming and
// decrements both remaining quantities by the crossed amount. If the
// resting order is fully consumed, it is popped and released. No Trade is
// reported here — the caller (OrderBook.match) owns trade emission.
func (l *PriceLevel) fillAgainst(pool *orderPool, incoming *Order) Quantity {
	resting := l.front(pool)
	q := resting.RemainingQuantity
	if incoming.RemainingQuantity < q {
		q = incoming.RemainingQuantity
	}
	resting.RemainingQuantity -= q
	incoming.RemainingQuantity -= q
	if resting.RemainingQuantity == 0 {
		l.popFront(pool)
	}
	return q
}

// unlink removes a specific seq from the middle (or either end) of the
// chain without touching incoming-order semantics. Used by cancel.
func (l *PriceLevel) unlink(pool *orderPool, seq Sequence) error {
	node, err := pool.node(seq)
	if err != nil {
		return err
	}
	prev, next := node.prev, node.next

	if prev != 0 {
		prevNode, err := pool.node(prev)
		if err != nil {
			panicEmptyLevel()
		}
		prevNode.next = next
	} else {
		l.firstSeq = next
	}

	if next != 0 {
		nextNode, err := pool.node(next)
		if err != nil {
			panicEmptyLevel()
		}
		nextNode.prev = prev
	} else {
		l.lastSeq = prev
	}

	pool.release(seq)
	return nil
}
