// Package middleware holds the inbound HTTP middleware. NewRouter installs
// it on the chi router, outermost first:
//
//	Recovery -> RequestID -> CorrelationID -> OpenTelemetry -> Logging -> Timeout -> handler
//
// OpenTelemetry and Logging read the chi route pattern after the handler
// returns, which is why they run inside the router rather than around it.
package middleware

import "net/http"

// responseWriter remembers what a handler sent so the middleware that wraps
// it can log, trace and recover.
type responseWriter struct {
	http.ResponseWriter
	statusCode    int
	headerWritten bool
	written       int64
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
}

// WriteHeader forwards the first status only.
func (rw *responseWriter) WriteHeader(code int) {
	if rw.headerWritten {
		return
	}
	rw.statusCode, rw.headerWritten = code, true
	rw.ResponseWriter.WriteHeader(code)
}

// Write counts body bytes. Writing before WriteHeader commits a 200.
func (rw *responseWriter) Write(b []byte) (int, error) {
	rw.headerWritten = true
	n, err := rw.ResponseWriter.Write(b)
	rw.written += int64(n)
	return n, err
}

// Unwrap exposes the wrapped writer to http.ResponseController.
func (rw *responseWriter) Unwrap() http.ResponseWriter {
	return rw.ResponseWriter
}
