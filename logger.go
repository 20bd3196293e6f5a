package ggsvg

import (
	"log/slog"

	"github.com/gogpu/ggsvg/native"
)

// SetLogger routes the diagnostics of ggsvg and its sub-packages to l.
// Nothing is logged until a logger is set; nil silences output again.
// The root package and package native share one logger.
//
// Debug records:
//   - caches dropped after providers, their versions, or the font catalog
//     changed
//   - character and provider typeface caches cleared for exceeding their
//     limits
//   - paints the builder rejected
//   - fontscan fallback steps and blend modes the GPU path cannot express
//
// Warn records:
//   - typeface providers ignored because they cannot be compared
//   - font files the catalog skipped while scanning
//
// To see everything on stderr:
//
//	ggsvg.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	native.SetLogger(l)
}

// Logger returns the logger set by SetLogger, or a silent one.
func Logger() *slog.Logger {
	return native.Logger()
}
