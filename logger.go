package geom

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// silentHandler drops every record. Enabled reports false, so callers that
// check debugEnabled never build the attributes at all.
type silentHandler struct{}

func (silentHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (silentHandler) Handle(context.Context, slog.Record) error { return nil }
func (silentHandler) WithAttrs([]slog.Attr) slog.Handler        { return silentHandler{} }
func (silentHandler) WithGroup(string) slog.Handler             { return silentHandler{} }

var (
	silent  = slog.New(silentHandler{})
	current atomic.Pointer[slog.Logger]
)

func init() {
	current.Store(silent)
}

// SetLogger installs the logger used by geom and its sub-packages. Pass nil
// to go back to the silent default. Safe to call while other goroutines
// are transforming or converting geometry.
//
// Records are only written at [slog.LevelDebug], when a degenerate input is
// resolved by policy rather than by arithmetic:
//   - Invert returns a singular matrix unchanged
//   - Round or Cover clamps a coordinate into [-SafeInt, SafeInt]
//   - warp skips a draw whose matrix cannot be inverted
//
// Example:
//
//	geom.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = silent
	}
	current.Store(l)
}

// Logger returns the logger installed with SetLogger.
func Logger() *slog.Logger {
	return current.Load()
}

// debugEnabled reports whether a policy fallback would be recorded. The
// geometry paths call it before boxing their attributes.
func debugEnabled() bool {
	return current.Load().Enabled(context.Background(), slog.LevelDebug)
}
