package native

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
)

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(slog.New(slog.DiscardHandler))
}

// SetLogger configures the logger used by the native package and by
// package ggsvg, which reads it through its own Logger. Pass nil to
// restore silent behavior.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(slog.DiscardHandler)
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}

// fontscanLogger routes fontscan diagnostics to the package logger at
// debug level. fontscan reports every fallback step, which is too chatty
// for anything above debug.
type fontscanLogger struct{}

func (fontscanLogger) Printf(format string, args ...any) {
	l := Logger()
	if !l.Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	l.Debug(fmt.Sprintf(format, args...), "source", "fontscan")
}
