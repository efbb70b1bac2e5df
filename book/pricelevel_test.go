package book

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestLevel(t *testing.T) (*orderPool, *PriceLevel) {
	t.Helper()
	return newOrderPool(4), newPriceLevel(Bid, 100)
}

func pushOrder(pool *orderPool, level *PriceLevel, userID string, qty Quantity) Sequence {
	seq := pool.acquire()
	pool.occupy(seq, &Order{
		ID:                OrderID{Seq: seq},
		UserID:            userID,
		InitialQuantity:   qty,
		RemainingQuantity: qty,
	})
	level.pushBack(pool, seq)
	return seq
}

func TestPriceLevel_PushBackPreservesFIFO(t *testing.T) {
	pool, level := newTestLevel(t)

	s1 := pushOrder(pool, level, "a", 10)
	s2 := pushOrder(pool, level, "b", 10)
	s3 := pushOrder(pool, level, "c", 10)

	require.Equal(t, s1, level.firstSeq)
	require.Equal(t, s3, level.lastSeq)

	require.Equal(t, "a", level.front(pool).UserID)
	level.popFront(pool)
	require.Equal(t, "b", level.front(pool).UserID)
	require.Equal(t, s2, level.firstSeq)
	level.popFront(pool)
	require.Equal(t, "c", level.front(pool).UserID)
	level.popFront(pool)
	require.True(t, level.IsEmpty())
}

func TestPriceLevel_FillAgainstPartial(t *testing.T) {
	pool, level := newTestLevel(t)
	pushOrder(pool, level, "resting", 100)

	incoming := &Order{RemainingQuantity: 40}
	q := level.fillAgainst(pool, incoming)

	require.Equal(t, Quantity(40), q)
	require.Equal(t, Quantity(0), incoming.RemainingQuantity)
	require.Equal(t, Quantity(60), level.front(pool).RemainingQuantity)
	require.False(t, level.IsEmpty())
}

func TestPriceLevel_FillAgainstFullyConsumesResting(t *testing.T) {
	pool, level := newTestLevel(t)
	pushOrder(pool, level, "resting", 30)

	incoming := &Order{RemainingQuantity: 100}
	q := level.fillAgainst(pool, incoming)

	require.Equal(t, Quantity(30), q)
	require.Equal(t, Quantity(70), incoming.RemainingQuantity)
	require.True(t, level.IsEmpty())
}

func TestPriceLevel_UnlinkFromMiddle(t *testing.T) {
	pool, level := newTestLevel(t)
	s1 := pushOrder(pool, level, "a", 10)
	s2 := pushOrder(pool, level, "b", 10)
	s3 := pushOrder(pool, level, "c", 10)

	require.NoError(t, level.unlink(pool, s2))

	require.Equal(t, s1, level.firstSeq)
	require.Equal(t, s3, level.lastSeq)

	node1, err := pool.node(s1)
	require.NoError(t, err)
	require.Equal(t, s3, node1.next)

	node3, err := pool.node(s3)
	require.NoError(t, err)
	require.Equal(t, s1, node3.prev)

	_, err = pool.get(s2)
	require.ErrorIs(t, err, ErrUnknownOrder)
}

func TestPriceLevel_UnlinkHeadAndTail(t *testing.T) {
	pool, level := newTestLevel(t)
	s1 := pushOrder(pool, level, "a", 10)
	_ = s1

	require.NoError(t, level.unlink(pool, s1))
	require.True(t, level.IsEmpty())
}
