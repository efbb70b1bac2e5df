package book

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMarketDataManager_LazyBookCreation(t *testing.T) {
	m := NewMarketDataManager(0)

	_, ok := m.Book(NewSymbolTag("MSFT"))
	require.False(t, ok)

	id, trades, err := m.AddOrder(Limit, "buyer", Buy, "MSFT", 100, 100)
	require.NoError(t, err)
	require.Empty(t, trades)
	require.Equal(t, NewSymbolTag("MSFT"), id.Symbol)

	_, ok = m.Book(NewSymbolTag("MSFT"))
	require.True(t, ok)
}

func TestMarketDataManager_UnknownBookOnModifyAndCancel(t *testing.T) {
	m := NewMarketDataManager(0)
	id := OrderID{Symbol: NewSymbolTag("AAPL"), Seq: 1}

	_, _, err := m.ModifyOrder(id, 100, 10)
	require.ErrorIs(t, err, ErrUnknownBook)

	err = m.CancelOrder(id)
	require.ErrorIs(t, err, ErrUnknownBook)

	_, err = m.GetOrder(id)
	require.ErrorIs(t, err, ErrUnknownBook)
}

func TestMarketDataManager_CrossSymbolIsolation(t *testing.T) {
	m := NewMarketDataManager(0)

	_, trades, err := m.AddOrder(Limit, "buyer", Buy, "MSFT", 100, 100)
	require.NoError(t, err)
	require.Empty(t, trades)

	// A resting MSFT bid must not cross against an AAPL ask at the same
	// price: books are fully isolated per symbol.
	_, trades, err = m.AddOrder(Limit, "seller", Sell, "AAPL", 100, 100)
	require.NoError(t, err)
	require.Empty(t, trades)

	msft, _ := m.Book(NewSymbolTag("MSFT"))
	aapl, _ := m.Book(NewSymbolTag("AAPL"))
	require.Equal(t, 1, msft.BidDepth())
	require.Equal(t, 1, aapl.AskDepth())
}

func TestMarketDataManager_ModifyAcrossRequeueRoutesToSameBook(t *testing.T) {
	m := NewMarketDataManager(0)

	id, _, err := m.AddOrder(Limit, "b1", Buy, "MSFT", 100, 50)
	require.NoError(t, err)

	newID, trades, err := m.ModifyOrder(id, 101, 40)
	require.NoError(t, err)
	require.Empty(t, trades)
	require.Equal(t, id.Symbol, newID.Symbol)

	msft, _ := m.Book(NewSymbolTag("MSFT"))
	require.Equal(t, 1, msft.BidDepth())
}
