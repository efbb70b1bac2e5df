// Package obslog wires the engine harness's structured logger. The
// matching core itself (book, engine) never imports this package; it
// only takes a *zap.Logger where it needs one (engine.NewEngine), keeping
// the core free of ambient dependencies.
package obslog

import "go.uber.org/zap"

// New builds the process logger. production selects zap's JSON production
// encoder; otherwise a human-readable development encoder is used.
func New(production bool) (*zap.Logger, error) {
	if production {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

// Must is New, panicking on failure — for harness startup paths where
// there is no sensible recovery.
func Must(production bool) *zap.Logger {
	logger, err := New(production)
	if err != nil {
		panic("obslog: failed to build logger: " + err.Error())
	}
	return logger
}
