// Package telemetry wraps a *zap.SugaredLogger behind a small interface so
// that callers can log without taking a direct dependency on zap's
// concrete types. Its only user in this module is cmd/segyinfo; the io
// driver and file layer take no logger and do not record their errors
// anywhere, they only return them.
package telemetry

import "go.uber.org/zap"

// Logger is the logging surface consumed by the rest of segyio. It is
// satisfied by *zap.SugaredLogger and by Nop().
type Logger interface {
	Debugw(msg string, keysAndValues ...any)
	Infow(msg string, keysAndValues ...any)
	Warnw(msg string, keysAndValues ...any)
	Errorw(msg string, keysAndValues ...any)
}

// NewProduction returns a Logger backed by zap's production configuration
// (JSON output, info level and above).
func NewProduction() (Logger, error) {
	l, err := zap.NewProduction()
	if err != nil {
		return nil, err
	}

	return l.Sugar(), nil
}

// NewDevelopment returns a Logger backed by zap's development configuration
// (console output, debug level and above, stack traces on warn+).
func NewDevelopment() (Logger, error) {
	l, err := zap.NewDevelopment()
	if err != nil {
		return nil, err
	}

	return l.Sugar(), nil
}

type nopLogger struct{}

func (nopLogger) Debugw(string, ...any) {}
func (nopLogger) Infow(string, ...any)  {}
func (nopLogger) Warnw(string, ...any)  {}
func (nopLogger) Errorw(string, ...any) {}

// Nop returns a Logger that discards everything.
func Nop() Logger { return nopLogger{} }
