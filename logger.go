package notch

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler is a slog.Handler that silently discards all log records.
// Enabled returns false so callers skip attribute formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger. Accessed atomically so that
// SetLogger can be called while a draw pass is logging.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger for notch and its sub-packages.
// By default notch produces no log output.
//
// Pass nil to restore the silent default.
//
// Log levels used by notch:
//   - [slog.LevelDebug]: solved layouts for every edge of every draw pass
//   - [slog.LevelInfo]: backend lifecycle (begin/end, bytes written)
//   - [slog.LevelWarn]: configuration that degrades to "no decoration"
//
// Example:
//
//	notch.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger used by notch.
// Sub-packages (backend/, config/) call this to share the same configuration.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
