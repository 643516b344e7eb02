package middleware_test

import (
	"net/http"
	"slices"
	"testing"

	"github.com/jsamuelsen11/activity-roster/internal/adapters/http/middleware"
)

func TestRedactHeaders(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		headers http.Header
		want    map[string]string
	}{
		{
			name:    "empty",
			headers: http.Header{},
			want:    map[string]string{},
		},
		{
			name: "credentials",
			headers: http.Header{
				"Authorization":       {"Bearer secret-token"},
				"Proxy-Authorization": {"Basic Zm9vOmJhcg=="},
				"X-Api-Key":           {"k-123"},
				"Cookie":              {"session=abc123"},
				"Set-Cookie":          {"session=abc"},
			},
			want: map[string]string{
				"Authorization":       "[REDACTED]",
				"Proxy-Authorization": "[REDACTED]",
				"X-Api-Key":           "[REDACTED]",
				"Cookie":              "[REDACTED]",
				"Set-Cookie":          "[REDACTED]",
			},
		},
		{
			name: "roster client headers pass through",
			headers: http.Header{
				"Content-Type":     {"application/json"},
				"X-Correlation-Id": {"corr-1"},
				"User-Agent":       {"rosterctl"},
			},
			want: map[string]string{
				"Content-Type":     "application/json",
				"X-Correlation-Id": "corr-1",
				"User-Agent":       "rosterctl",
			},
		},
		{
			name:    "multiple values joined",
			headers: http.Header{"Accept": {"text/html", "application/json"}},
			want:    map[string]string{"Accept": "text/html,application/json"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			attr := middleware.RedactHeaders(tt.headers)
			if attr.Key != "headers" {
				t.Errorf("Key = %q, want headers", attr.Key)
			}

			group := attr.Value.Group()
			got := make(map[string]string, len(group))
			for _, a := range group {
				got[a.Key] = a.Value.String()
			}
			if len(got) != len(tt.want) {
				t.Fatalf("RedactHeaders() = %v, want %v", got, tt.want)
			}
			for k, v := range tt.want {
				if got[k] != v {
					t.Errorf("%s = %q, want %q", k, got[k], v)
				}
			}
		})
	}
}

func TestRedactHeaders_SortedByName(t *testing.T) {
	t.Parallel()

	attr := middleware.RedactHeaders(http.Header{
		"X-Request-Id": {"r"},
		"Accept":       {"*/*"},
		"Cookie":       {"c"},
	})

	var names []string
	for _, a := range attr.Value.Group() {
		names = append(names, a.Key)
	}
	if !slices.IsSorted(names) {
		t.Errorf("header order = %v, want sorted", names)
	}
}
