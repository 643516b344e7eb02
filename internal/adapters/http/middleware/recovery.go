package middleware

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/jsamuelsen11/activity-roster/internal/adapters/http/dto"
)

// Recovery turns a handler panic into a logged event and, when nothing has
// been written yet, a 500 problem. http.ErrAbortHandler is passed on so the
// server drops the connection without logging.
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rw := newResponseWriter(w)
			defer func() {
				v := recover()
				if v == nil {
					return
				}
				if err, ok := v.(error); ok && errors.Is(err, http.ErrAbortHandler) {
					panic(v)
				}

				logPanic(logger, r, v)
				if !rw.headerWritten {
					dto.WriteProblem(rw, r, http.StatusInternalServerError, dto.CodeInternal, "an unexpected error occurred")
				}
			}()
			next.ServeHTTP(rw, r)
		})
	}
}

func logPanic(logger *slog.Logger, r *http.Request, v any) {
	ctx := r.Context()
	logger.LogAttrs(ctx, slog.LevelError, "panic recovered",
		slog.String("panic", fmt.Sprint(v)),
		slog.String("panic_type", fmt.Sprintf("%T", v)),
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		slog.String("request_id", RequestIDFromContext(ctx)),
		slog.String("correlation_id", CorrelationIDFromContext(ctx)),
		slog.String("stack", string(debug.Stack())),
	)
}
