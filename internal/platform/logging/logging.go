// Package logging builds the service logger on log/slog and carries the
// request-scoped logger through a context.Context.
//
// The HTTP logging middleware stores a logger enriched with request_id,
// correlation_id and the signed-in user; services pick it up with
// FromContext so their records share those attributes:
//
//	logging.FromContext(ctx).ErrorContext(ctx, "fallback completion failed",
//	    slog.String("operation", "Respond"),
//	    slog.Any("error", err),
//	)
//
// Attributes that may hold credentials (passwords, hashes, API keys, cookies)
// are masked by the handler before anything is written.
package logging

import (
	"context"
	"io"
	"log/slog"
	"strings"
)

type loggerKey struct{}

var levels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// New returns a logger writing to w. level is one of debug, info, warn or
// error (anything else means info); format "text" selects the key=value
// handler and every other value selects JSON. Debug loggers also record the
// source location.
func New(level, format string, w io.Writer) *slog.Logger {
	lvl, ok := levels[strings.ToLower(level)]
	if !ok {
		lvl = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level:       lvl,
		AddSource:   lvl == slog.LevelDebug,
		ReplaceAttr: newRedactAttr(),
	}

	if format == "text" {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

// WithLogger stores logger in ctx.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// FromContext returns the logger stored by WithLogger, or slog.Default.
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}
