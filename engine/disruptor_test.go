package engine

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRing_CapacityRoundsUpToPowerOfTwo(t *testing.T) {
	r := newRing[*Request](10)
	require.Equal(t, int64(16), r.size)
	require.Equal(t, int64(15), r.mask)
}

func TestRing_PublishAndDrainPreservesOrder(t *testing.T) {
	r := newRing[*Request](4)
	var got []RequestKind

	for _, k := range []RequestKind{KindAddOrder, KindCancelOrder, KindGetOrder} {
		req := newRequest(k)
		require.True(t, r.TryPublish(req))
	}

	n := r.drain(func(req *Request) { got = append(got, req.Kind) })
	require.Equal(t, 3, n)
	require.Equal(t, []RequestKind{KindAddOrder, KindCancelOrder, KindGetOrder}, got)
}

func TestRing_TryPublishFalseWhenFull(t *testing.T) {
	r := newRing[*Request](1)
	require.True(t, r.TryPublish(newRequest(KindGetOrder)))
	require.False(t, r.TryPublish(newRequest(KindGetOrder)))
}

func TestRing_DrainEmptyIsNoop(t *testing.T) {
	r := newRing[*Request](4)
	n := r.drain(func(*Request) { t.Fatal("should not be called") })
	require.Zero(t, n)
}

func TestRing_GenericOverOutboundEvents(t *testing.T) {
	r := newRing[*outboundEvent](4)
	require.True(t, r.TryPublish(&outboundEvent{kind: KindAddOrder}))
	require.True(t, r.TryPublish(&outboundEvent{kind: KindCancelOrder}))

	var kinds []RequestKind
	n := r.drain(func(ev *outboundEvent) { kinds = append(kinds, ev.kind) })
	require.Equal(t, 2, n)
	require.Equal(t, []RequestKind{KindAddOrder, KindCancelOrder}, kinds)
}
