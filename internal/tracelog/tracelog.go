// Package tracelog wraps log/slog with the verbosity-count convention the
// CLI exposes via repeated "-v" flags. surge's internal/trace and
// internal/observ packages gate a custom event sink on a trace level for a
// long-running VM; steelc runs one file through one synchronous pass (spec
// §5), so the standard structured logger replaces that bespoke ring buffer
// instead of a span/heartbeat model with nothing to correlate.
package tracelog

import (
	"io"
	"log/slog"
)

// LevelFor maps a "-v" repeat count to a slog level: 0 is warn-and-above,
// 1 is info, 2+ is debug.
func LevelFor(verboseCount int) slog.Level {
	switch {
	case verboseCount <= 0:
		return slog.LevelWarn
	case verboseCount == 1:
		return slog.LevelInfo
	default:
		return slog.LevelDebug
	}
}

// New builds a text-handler logger writing to w at the level implied by
// verboseCount.
func New(w io.Writer, verboseCount int) *slog.Logger {
	h := slog.NewTextHandler(w, &slog.HandlerOptions{Level: LevelFor(verboseCount)})
	return slog.New(h)
}
