// Command engine-harness is a minimal demonstration of wiring the
// matching core into a running process: config, structured logging,
// metrics, and a single engine instance processing a handful of orders.
// It is not part of the core's public contract — the core has no CLI,
// file, or wire surface of its own.
package main

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/quasar-chunawala/order-book-matching/book"
	"github.com/quasar-chunawala/order-book-matching/engine"
	"github.com/quasar-chunawala/order-book-matching/internal/config"
	"github.com/quasar-chunawala/order-book-matching/internal/metrics"
	"github.com/quasar-chunawala/order-book-matching/internal/obslog"
)

// harnessHandler adapts engine.EventHandler to log trades and count them
// in metrics.TradesExecuted.
type harnessHandler struct {
	logger *zap.Logger
}

func (h *harnessHandler) OnTrades(trades []book.Trade) {
	for _, t := range trades {
		metrics.TradesExecuted.Inc()
		h.logger.Info("trade",
			zap.String("executing_order", t.Executing.OrderID.String()),
			zap.String("reducing_order", t.Reducing.OrderID.String()),
			zap.Uint64("price", t.Executing.Price),
			zap.Uint64("quantity", t.Executing.Quantity),
		)
	}
}

func (h *harnessHandler) OnRequestProcessed(kind engine.RequestKind, res engine.Result) {
	if res.Err != nil {
		h.logger.Warn("request failed", zap.Int("kind", int(kind)), zap.Error(res.Err))
	}
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger := obslog.Must(cfg.ProductionLogger)
	defer logger.Sync()

	reg := prometheus.NewRegistry()
	metrics.Register(reg)
	go func() {
		http.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
		_ = http.ListenAndServe(":9090", nil)
	}()

	sessionID := uuid.New()
	logger.Info("starting engine harness", zap.String("session_id", sessionID.String()))

	e := engine.NewEngine(&harnessHandler{logger: logger}, logger, cfg.RingCapacity, cfg.PoolCapacityHint)
	e.Start()
	defer e.Stop()

	buyID, _, err := e.AddOrder(book.Limit, "buyer", book.Buy, "MSFT", 100, 100)
	if err != nil {
		logger.Fatal("add buy order failed", zap.Error(err))
	}
	metrics.OrdersAccepted.WithLabelValues("MSFT", book.Buy.String()).Inc()

	_, trades, err := e.AddOrder(book.Limit, "seller", book.Sell, "MSFT", 100, 100)
	if err != nil {
		logger.Fatal("add sell order failed", zap.Error(err))
	}
	metrics.OrdersAccepted.WithLabelValues("MSFT", book.Sell.String()).Inc()

	logger.Info("matched", zap.Int("trade_count", len(trades)), zap.String("buy_order_id", buyID.String()))
}
