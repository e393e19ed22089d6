package stim

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler is a slog.Handler that silently discards all log records.
// The Enabled method returns false so the caller skips message formatting
// entirely, making disabled logging effectively zero-cost on the frame
// loop.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// newNopLogger creates a logger that silently discards all output.
func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger. Accessed atomically so that
// SetLogger can be called concurrently with logging from any goroutine,
// even though stimulus drawing itself is single-threaded.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	l := newNopLogger()
	loggerPtr.Store(l)
}

// SetLogger configures the logger for stim and all its sub-packages.
// By default, stim produces no log output. Call SetLogger to enable
// logging, for example to record every attribute mutation during an
// experiment session.
//
// SetLogger is safe for concurrent use: it stores the new logger
// atomically. Pass nil to disable logging (restore default silent
// behavior).
//
// Log levels used by stim:
//   - [slog.LevelDebug]: attribute mutations on stimuli
//   - [slog.LevelInfo]: stimulus lifecycle events
//   - [slog.LevelWarn]: non-fatal issues (line width above the hardware
//     cap, unsupported color operators, degenerate tessellation)
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger used by stim.
// Sub-packages (backend/record, backend/ebitensurface) call this to
// share the same logger configuration without introducing import cycles.
//
// Logger is safe for concurrent use.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}

// logAttrib records an attribute mutation on a stimulus. Every public
// setter calls it; the hook is fire-and-forget and its result is never
// consumed by the shape core.
func logAttrib(name, attrib string, value any) {
	Logger().Debug("attribute set", "stim", name, "attrib", attrib, "value", value)
}
