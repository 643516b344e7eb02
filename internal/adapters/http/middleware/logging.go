package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/jsamuelsen11/activity-roster/internal/platform/logging"
)

// Logging logs a start and a completion line per request with a logger
// carrying the request and correlation IDs, and stores that logger with
// logging.WithLogger for handlers and services below.
//
// Only the path is logged, never the query string, because signup and
// unregister carry the participant email there. Header values are logged at
// debug level after RedactHeaders. Completion is logged at WARN for 4xx and
// ERROR for 5xx.
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ctx := r.Context()

			reqLogger := logger.With(
				slog.String("request_id", RequestIDFromContext(ctx)),
				slog.String("correlation_id", CorrelationIDFromContext(ctx)),
			)
			ctx = logging.WithLogger(ctx, reqLogger)

			method, path := slog.String("method", r.Method), slog.String("path", r.URL.Path)
			reqLogger.LogAttrs(ctx, slog.LevelInfo, "request started", method, path)
			if reqLogger.Enabled(ctx, slog.LevelDebug) {
				reqLogger.LogAttrs(ctx, slog.LevelDebug, "request headers", RedactHeaders(r.Header))
			}

			rw := newResponseWriter(w)
			next.ServeHTTP(rw, r.WithContext(ctx))

			attrs := []slog.Attr{
				method, path,
				slog.Int("status", rw.statusCode),
				slog.Int64("bytes", rw.written),
				slog.Duration("duration", time.Since(start)),
			}
			if route := routePattern(r); route != "" {
				attrs = append(attrs, slog.String("route", route))
			}
			reqLogger.LogAttrs(ctx, completionLevel(rw.statusCode), "request completed", attrs...)
		})
	}
}

func completionLevel(status int) slog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return slog.LevelError
	case status >= http.StatusBadRequest:
		return slog.LevelWarn
	}
	return slog.LevelInfo
}
