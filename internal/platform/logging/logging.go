// Package logging builds the service's slog loggers and carries them through
// request contexts.
//
//	logger := logging.New("info", logging.FormatJSON, os.Stderr)
//	ctx = logging.WithLogger(ctx, logger.With(slog.String("request_id", id)))
//	logging.FromContext(ctx).InfoContext(ctx, "signed up", logging.Email(email))
//
// Error logs name the operation and the activity and attach the full chain:
//
//	logger.ErrorContext(ctx, "signup failed",
//	    slog.String("operation", "Signup"),
//	    slog.String("activity", name),
//	    slog.Any("error", err),
//	)
//
// Every handler built by New runs attributes through the masq redactor, and
// participant emails go through Email so raw addresses never reach the output.
package logging

import (
	"context"
	"io"
	"log/slog"
	"strings"
)

// Handler formats accepted by New.
const (
	FormatJSON = "json"
	FormatText = "text"
)

var levels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

type ctxKey struct{}

// New returns a logger writing to w. Level names are case-insensitive and
// unknown ones mean info. FormatText selects slog's text handler and anything
// else JSON. Debug loggers also record the source location.
func New(level, format string, w io.Writer) *slog.Logger {
	lvl, ok := levels[strings.ToLower(level)]
	if !ok {
		lvl = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level:       lvl,
		AddSource:   lvl <= slog.LevelDebug,
		ReplaceAttr: newRedactAttr(),
	}

	if format == FormatText {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

// WithLogger stores logger in ctx.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, logger)
}

// FromContext returns the logger stored by WithLogger, or slog.Default.
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(ctxKey{}).(*slog.Logger); ok && logger != nil {
		return logger
	}
	return slog.Default()
}
