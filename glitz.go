// SPDX-License-Identifier: Unlicense OR MIT

// Package glitz is a safe, stateful layer over a WebGL2 rendering context.
// Application code issues GPU work as tasks submitted to a RenderingContext;
// a single connection pairing the live context with a dynamic state cache
// mediates every driver call, eliding the redundant ones, and a fenced task
// queue suspends GPU-bound tasks until the driver signals completion without
// blocking the main thread.
package glitz

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler is a slog.Handler that silently discards all log records.
// Enabled returns false so callers skip message formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// loggerPtr stores the active logger. Accessed atomically so SetLogger can
// be called at any point relative to logging call sites.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	l := slog.New(nopHandler{})
	loggerPtr.Store(l)
}

// SetLogger configures the logger for glitz. By default glitz produces no
// log output. Pass nil to restore the default silent behavior.
//
// Log levels used:
//   - [slog.LevelDebug]: fence inserts, task requeues, resource drops
//   - [slog.LevelInfo]: context lifecycle
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(nopHandler{})
	}
	loggerPtr.Store(l)
}

func logger() *slog.Logger {
	return loggerPtr.Load()
}
