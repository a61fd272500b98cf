package landing

import (
	"context"
	"log/slog"
)

type ctxKey struct{}

var (
	slogCtxKey = ctxKey{}
)

// Logger returns the *slog.Logger attached to the context with
// LoggingContext. If there isn't one, the returned logger discards
// everything.
func Logger(ctx context.Context) *slog.Logger {
	val := ctx.Value(slogCtxKey)
	if val == nil {
		return slog.New(slog.DiscardHandler)
	}
	logger, ok := val.(*slog.Logger)
	if !ok || logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return logger
}

// LoggingContext returns a copy of ctx that carries logger. Render, the
// HTTP handlers, and the exporter all log through it.
func LoggingContext(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, slogCtxKey, logger)
}
