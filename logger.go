package ggapp

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/gogpu/ggapp/platform"
	"github.com/gogpu/ggapp/probe"
)

// nopHandler is a slog.Handler that silently discards all log records.
// The Enabled method returns false so the caller skips message formatting
// entirely, making disabled logging effectively zero-cost.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// newNopLogger creates a logger that silently discards all output.
func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger. Accessed atomically so that
// SetLogger can be called concurrently with logging from any goroutine.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger for ggapp and its sub-packages
// (platform, probe). By default ggapp produces no log output.
//
// Log levels used by ggapp:
//   - [slog.LevelDebug]: selection pipeline internals (phase transitions,
//     raw signals, probe details)
//   - [slog.LevelInfo]: the backend decision and adapter lifecycle
//   - [slog.LevelWarn]: recovered anomalies (unreadable signals, probe
//     failure, storage I/O errors)
//
// Pass nil to restore the default silent behavior.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
	platform.SetLogger(l)
	probe.SetLogger(l)
}

// Logger returns the current logger used by ggapp.
// Logger is safe for concurrent use.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
