package book

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOrderPool_AcquireNeverReturnsSentinel(t *testing.T) {
	p := newOrderPool(4)
	for i := 0; i < 10; i++ {
		seq := p.acquire()
		require.NotZero(t, seq)
	}
}

func TestOrderPool_ReleaseReusesFIFO(t *testing.T) {
	p := newOrderPool(4)
	a := p.acquire()
	b := p.acquire()
	p.occupy(a, &Order{})
	p.occupy(b, &Order{})

	p.release(a)
	p.release(b)

	// FIFO: the oldest freed slot (a) is handed back first.
	next := p.acquire()
	require.Equal(t, a, next)
	next2 := p.acquire()
	require.Equal(t, b, next2)
}

func TestOrderPool_GetUnknownOrder(t *testing.T) {
	p := newOrderPool(4)
	_, err := p.get(0)
	require.ErrorIs(t, err, ErrUnknownOrder)

	_, err = p.get(999)
	require.ErrorIs(t, err, ErrUnknownOrder)

	seq := p.acquire()
	_, err = p.get(seq) // acquired but not yet occupied
	require.ErrorIs(t, err, ErrUnknownOrder)
}

func TestOrderPool_ReleaseClearsNode(t *testing.T) {
	p := newOrderPool(4)
	seq := p.acquire()
	order := &Order{RemainingQuantity: 5}
	p.occupy(seq, order)

	node, err := p.node(seq)
	require.NoError(t, err)
	node.prev, node.next = 3, 7

	p.release(seq)

	n := p.nodes[seq]
	require.Nil(t, n.order)
	require.Zero(t, n.prev)
	require.Zero(t, n.next)
}
