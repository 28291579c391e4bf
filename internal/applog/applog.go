// Package applog holds the process logger shared by the renderer packages.
//
// Logging is off by default: the terminal host owns stdout, so output only
// appears once the binary installs a handler with SetLogger.
package applog

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler discards all records. Enabled returns false so callers skip
// formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger installs l as the shared logger. Pass nil to silence logging.
//
// Levels in use:
//   - [slog.LevelDebug]: per-tick diagnostics (dropped plots, skipped frames)
//   - [slog.LevelInfo]: lifecycle (game started or stopped, viewport resized)
//   - [slog.LevelWarn]: presentation surface failures
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current shared logger. Safe for concurrent use.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
