package splathost

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/gogpu/gg"
)

// nopHandler is a slog.Handler that silently discards all log records.
// Enabled returns false so callers skip message formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// newNopLogger creates a logger that silently discards all output.
func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger. Accessed atomically so that
// SetLogger can be called while ticks are logging from another goroutine.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger for splathost and all its sub-packages.
// By default, splathost produces no log output.
//
// The logger is also handed to gg, which the software backend draws with,
// so both libraries report through the same sink.
//
// SetLogger is safe for concurrent use. Pass nil to restore silence.
//
// Log levels used by splathost:
//   - [slog.LevelDebug]: per-tick diagnostics (skipped ticks, re-arming)
//   - [slog.LevelInfo]: lifecycle transitions, pump activation
//   - [slog.LevelWarn]: protocol violations, backend failures
//
// Example:
//
//	splathost.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
	gg.SetLogger(l)
}

// Logger returns the current logger used by splathost.
// Sub-packages call this to share one configuration.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
