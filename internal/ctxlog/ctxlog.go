// Package ctxlog carries a slog.Logger through context.Context so every
// layer logs through the app's configured handler without plumbing a
// logger argument everywhere.
package ctxlog

import (
	"context"
	"log/slog"
)

// key is unexported to prevent collisions with other packages' context keys.
type key struct{}

var loggerKey = key{}

// WithLogger returns a new context with the provided logger embedded.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// FromContext extracts the logger from a context, falling back to the
// process-wide default logger when none was attached. Library packages
// such as resolver rely on the fallback so they stay usable without an
// App around them.
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}
