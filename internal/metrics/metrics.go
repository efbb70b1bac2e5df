// Package metrics exposes the Prometheus collectors the engine harness
// registers. The matching core never imports this package directly; the
// harness (cmd/engine-harness) increments OrdersAccepted after each
// successful AddOrder and TradesExecuted from its engine.EventHandler
// OnTrades callback. BookDepth is registered, but nothing in this module
// sets it.
package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	OrdersAccepted = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "orders_accepted_total",
		Help: "Total AddOrder requests accepted by the engine.",
	}, []string{"symbol", "side"})

	TradesExecuted = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "trades_executed_total",
		Help: "Total Trade records emitted by the matching core.",
	})

	BookDepth = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "book_depth",
		Help: "Number of distinct price levels currently resting on a side of a book.",
	}, []string{"symbol", "side"})
)

// Register installs the engine harness's collectors into reg.
func Register(reg *prometheus.Registry) {
	reg.MustRegister(OrdersAccepted, TradesExecuted, BookDepth)
}
