package httpclient

import (
	"context"
	"errors"
	"fmt"
	"math"
	"net"
	"net/http"
	"testing"
	"time"
)

func TestBackoff(t *testing.T) {
	t.Parallel()

	p := retryPolicy{
		initialInterval: 100 * time.Millisecond,
		maxInterval:     500 * time.Millisecond,
		multiplier:      2.0,
	}

	for _, tt := range []struct {
		retry int
		lo    time.Duration
		hi    time.Duration
	}{
		{retry: 1, lo: 75 * time.Millisecond, hi: 125 * time.Millisecond},
		{retry: 2, lo: 150 * time.Millisecond, hi: 250 * time.Millisecond},
		{retry: 3, lo: 300 * time.Millisecond, hi: 500 * time.Millisecond},
		{retry: 4, lo: 500 * time.Millisecond, hi: 500 * time.Millisecond},
		{retry: 10, lo: 500 * time.Millisecond, hi: 500 * time.Millisecond},
	} {
		for range 200 {
			if d := backoff(tt.retry, p); d < tt.lo || d > tt.hi {
				t.Fatalf("backoff(%d) = %v, want within [%v, %v]", tt.retry, d, tt.lo, tt.hi)
			}
		}
	}
}

func TestBackoff_JitterNeverExceedsMaxInterval(t *testing.T) {
	t.Parallel()

	p := retryPolicy{
		initialInterval: 400 * time.Millisecond,
		maxInterval:     400 * time.Millisecond,
		multiplier:      1.0,
	}
	for range 500 {
		if d := backoff(1, p); d > p.maxInterval {
			t.Fatalf("backoff(1) = %v, want <= %v", d, p.maxInterval)
		}
	}
}

func TestShouldRetry(t *testing.T) {
	t.Parallel()

	status := func(code int) *http.Response { return &http.Response{StatusCode: code} }
	dial := &net.OpError{Op: "dial", Net: "tcp", Err: errors.New("connection refused")}
	reset := &net.OpError{Op: "read", Net: "tcp", Err: errors.New("connection reset")}

	tests := []struct {
		name   string
		method string
		resp   *http.Response
		err    error
		want   bool
	}{
		{name: "GET 200", method: http.MethodGet, resp: status(http.StatusOK), want: false},
		{name: "GET 404", method: http.MethodGet, resp: status(http.StatusNotFound), want: false},
		{name: "GET 500", method: http.MethodGet, resp: status(http.StatusInternalServerError), want: true},
		{name: "GET 502", method: http.MethodGet, resp: status(http.StatusBadGateway), want: true},
		{name: "GET 429", method: http.MethodGet, resp: status(http.StatusTooManyRequests), want: true},
		{name: "POST 400 conflict", method: http.MethodPost, resp: status(http.StatusBadRequest), want: false},
		{name: "POST 500", method: http.MethodPost, resp: status(http.StatusInternalServerError), want: false},
		{name: "POST 503", method: http.MethodPost, resp: status(http.StatusServiceUnavailable), want: true},
		{name: "DELETE 500", method: http.MethodDelete, resp: status(http.StatusInternalServerError), want: false},
		{name: "DELETE 429", method: http.MethodDelete, resp: status(http.StatusTooManyRequests), want: true},
		{name: "GET read error", method: http.MethodGet, err: reset, want: true},
		{name: "POST read error", method: http.MethodPost, err: reset, want: false},
		{name: "POST dial error", method: http.MethodPost, err: fmt.Errorf("wrapped: %w", dial), want: true},
		{name: "GET canceled", method: http.MethodGet, err: context.Canceled, want: false},
		{name: "GET deadline", method: http.MethodGet, err: fmt.Errorf("get: %w", context.DeadlineExceeded), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := shouldRetry(tt.method, tt.resp, tt.err); got != tt.want {
				t.Errorf("shouldRetry(%s, %v, %v) = %v, want %v", tt.method, tt.resp, tt.err, got, tt.want)
			}
		})
	}
}

func TestParseRetryAfter(t *testing.T) {
	t.Parallel()

	for in, want := range map[string]time.Duration{
		"":                              0,
		"2":                             2 * time.Second,
		"0":                             0,
		"-1":                            0,
		"Wed, 21 Oct 2026 07:28:00 GMT": 0,
		"3600":                          time.Hour,
		"9223372036":                    maxRetryAfter,
		"99999999999999999999":          maxRetryAfter,
		"-99999999999999999999":         0,
	} {
		if got := parseRetryAfter(in); got != want {
			t.Errorf("parseRetryAfter(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestRandFloat64_InRange(t *testing.T) {
	t.Parallel()

	sum := 0.0
	for range 1000 {
		v := randFloat64()
		if v < 0 || v >= 1 {
			t.Fatalf("randFloat64() = %v, want [0, 1)", v)
		}
		sum += v
	}
	if mean := sum / 1000; math.Abs(mean-0.5) > 0.1 {
		t.Errorf("mean of randFloat64 = %v, want about 0.5", mean)
	}
}
