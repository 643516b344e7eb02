package middleware

import (
	"log/slog"
	"maps"
	"net/http"
	"slices"
	"strings"

	"github.com/jsamuelsen11/activity-roster/internal/platform/logging"
)

const redacted = "[REDACTED]"

// RedactHeaders groups headers under "headers" in name order. Values of names
// listed in logging.SensitiveHeaders become "[REDACTED]"; repeated values are
// comma-joined.
func RedactHeaders(headers http.Header) slog.Attr {
	names := slices.Sorted(maps.Keys(headers))

	attrs := make([]any, 0, len(names))
	for _, name := range names {
		value := redacted
		if !logging.SensitiveHeaders[strings.ToLower(name)] {
			value = strings.Join(headers[name], ",")
		}
		attrs = append(attrs, slog.String(name, value))
	}
	return slog.Group("headers", attrs...)
}
