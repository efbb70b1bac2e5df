// Package book implements the core of a limit-order-book matching engine:
// price-indexed FIFO queues, a pooled order arena, and price-time-priority
// matching. The package has no file or wire formats; it is a pure,
// single-threaded procedural API (see the Engine wrapper in the engine
// package for concurrent hand-off).
package book

import (
	"math"
	"strconv"
)

// Price and Quantity are tick/lot integers. The core never uses floating
// point.
type (
	Price    = uint64
	Quantity = uint64
	Sequence = uint32
)

// MaxPrice and MinPrice are the numeric extremes used to rewrite a MARKET
// order into a LIMIT order that is guaranteed to cross the opposite book.
const (
	MaxPrice Price = math.MaxUint64
	MinPrice Price = 0
)

// Side is which side of the book an order rests on.
type Side int

const (
	Buy Side = iota
	Sell
)

func (s Side) String() string {
	if s == Buy {
		return "BUY"
	}
	return "SELL"
}

// OrderType distinguishes the handful of order-type variants the core
// supports. GoodForDay behaves exactly like Limit; end-of-day purge is a
// harness concern, not a core one.
type OrderType int

const (
	Market OrderType = iota
	Limit
	FillAndKill
	FillOrKill
	GoodForDay
)

func (t OrderType) String() string {
	switch t {
	case Market:
		return "MARKET"
	case Limit:
		return "LIMIT"
	case FillAndKill:
		return "FILL_AND_KILL"
	case FillOrKill:
		return "FILL_OR_KILL"
	case GoodForDay:
		return "GOOD_FOR_DAY"
	default:
		return "UNKNOWN"
	}
}

// SymbolTag is the fixed-width symbol identifier embedded in every OrderID.
// Names longer than 4 bytes are truncated; shorter ones are left
// zero-padded.
type SymbolTag [4]byte

// NewSymbolTag packs a symbol name into its fixed-width tag.
func NewSymbolTag(name string) SymbolTag {
	var tag SymbolTag
	copy(tag[:], name)
	return tag
}

func (t SymbolTag) String() string {
	n := len(t)
	for n > 0 && t[n-1] == 0 {
		n--
	}
	return string(t[:n])
}

// OrderID globally addresses one Order within one book: a symbol tag plus
// the order's dense sequence number in that book's OrderPool.
type OrderID struct {
	Symbol SymbolTag
	Seq    Sequence
}

// Less gives OrderID a lexicographic order on (Symbol, Seq), as required
// by the data model.
func (id OrderID) Less(other OrderID) bool {
	if id.Symbol != other.Symbol {
		return string(id.Symbol[:]) < string(other.Symbol[:])
	}
	return id.Seq < other.Seq
}

func (id OrderID) String() string {
	return id.Symbol.String() + "#" + strconv.FormatUint(uint64(id.Seq), 10)
}

// Order is one outstanding instruction. Seq 0 is reserved for the
// OrderPool sentinel; no live Order ever carries it.
type Order struct {
	Type              OrderType
	ID                OrderID
	UserID            string
	Side              Side
	Price             Price
	InitialQuantity   Quantity
	RemainingQuantity Quantity
}

// IsFullyFilled reports whether the order has no quantity left to match.
func (o *Order) IsFullyFilled() bool {
	return o.RemainingQuantity == 0
}
