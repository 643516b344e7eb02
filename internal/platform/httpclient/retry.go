package httpclient

import (
	"bytes"
	"context"
	crand "crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/jsamuelsen11/activity-roster/internal/platform/logging"
)

// jitterFraction spreads each delay by up to 25% either way.
const jitterFraction = 0.25

// retryPolicy is the backoff schedule taken from config.RetryConfig.
type retryPolicy struct {
	maxAttempts     int
	initialInterval time.Duration
	maxInterval     time.Duration
	multiplier      float64
}

// shouldRetry decides whether attempt's outcome may be repeated. Roster
// mutations (POST signup, DELETE unregister) change state, so they are only
// repeated when the server cannot have acted: a dial failure, 429 or 503.
func shouldRetry(method string, resp *http.Response, err error) bool {
	safe := method == http.MethodGet || method == http.MethodHead || method == http.MethodOptions

	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return false
		}
		return safe || isDialError(err)
	}

	switch code := resp.StatusCode; {
	case code == http.StatusTooManyRequests, code == http.StatusServiceUnavailable:
		return true
	case code >= http.StatusInternalServerError:
		return safe
	}
	return false
}

// doWithRetry sends req up to maxAttempts times. The body is buffered so it
// can be replayed. When the final attempt still returns a retryable status,
// that response is handed back with an error and its body open; the caller
// closes it. The response is written through resp so the body-close lint
// sees ownership move to the caller.
func (c *Client) doWithRetry(ctx context.Context, req *http.Request, resp **http.Response) error {
	if c.retry.maxAttempts < 1 {
		return fmt.Errorf("httpclient: maxAttempts must be >= 1, got %d", c.retry.maxAttempts)
	}

	body, err := snapshotBody(req)
	if err != nil {
		return err
	}

	var lastErr error
	var retryAfter time.Duration

	for attempt := 1; attempt <= c.retry.maxAttempts; attempt++ {
		if attempt > 1 {
			if err := c.sleep(ctx, req, attempt, retryAfter, lastErr); err != nil {
				return err
			}
		}
		if body != nil {
			req.Body = io.NopCloser(bytes.NewReader(body))
			req.ContentLength = int64(len(body))
		}

		r, err := c.httpClient.Do(req)
		if !shouldRetry(req.Method, r, err) {
			if err != nil {
				return err
			}
			*resp = r
			return nil
		}

		if err != nil {
			lastErr, retryAfter = err, 0
			continue
		}

		lastErr = fmt.Errorf("HTTP %d from %s", r.StatusCode, c.serviceName)
		if attempt == c.retry.maxAttempts {
			*resp = r
			return lastErr
		}
		retryAfter = parseRetryAfter(r.Header.Get("Retry-After"))
		_, _ = io.Copy(io.Discard, r.Body)
		_ = r.Body.Close()
	}

	return lastErr
}

// snapshotBody reads and closes req.Body so each attempt gets a fresh copy.
func snapshotBody(req *http.Request) ([]byte, error) {
	if req.Body == nil || req.Body == http.NoBody {
		return nil, nil
	}
	defer req.Body.Close()

	b, err := io.ReadAll(req.Body)
	if err != nil {
		return nil, fmt.Errorf("reading request body: %w", err)
	}
	return b, nil
}

// sleep waits before attempt. A server Retry-After wins over the computed
// backoff, both capped at maxInterval.
func (c *Client) sleep(ctx context.Context, req *http.Request, attempt int, retryAfter time.Duration, lastErr error) error {
	delay := backoff(attempt-1, c.retry)
	if retryAfter > 0 {
		delay = min(retryAfter, c.retry.maxInterval)
	}

	logging.FromContext(ctx).WarnContext(ctx, "retrying roster API request",
		slog.String("operation", "httpclient.Do"),
		slog.String("method", req.Method),
		slog.String("path", req.URL.Path),
		slog.String("peer_service", c.serviceName),
		slog.Int("attempt", attempt),
		slog.Int("max_attempts", c.retry.maxAttempts),
		slog.Duration("backoff", delay),
		slog.Any("error", lastErr),
	)

	t := time.NewTimer(delay)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// backoff is the jittered exponential delay before the n-th retry (n >= 1),
// never above maxInterval.
func backoff(n int, p retryPolicy) time.Duration {
	delay := float64(p.initialInterval) * math.Pow(p.multiplier, float64(n-1))
	delay += delay * jitterFraction * (2*randFloat64() - 1)
	delay = math.Min(delay, float64(p.maxInterval))
	return time.Duration(math.Max(delay, 0))
}

// maxRetryAfter caps a parsed Retry-After before it becomes a Duration.
const maxRetryAfter = time.Hour

// parseRetryAfter accepts the delay-seconds form of Retry-After, capped at
// maxRetryAfter.
func parseRetryAfter(v string) time.Duration {
	secs, err := strconv.ParseInt(v, 10, 64)
	if errors.Is(err, strconv.ErrRange) && secs > 0 {
		return maxRetryAfter
	}
	if err != nil || secs <= 0 {
		return 0
	}
	if secs > int64(maxRetryAfter/time.Second) {
		return maxRetryAfter
	}
	return time.Duration(secs) * time.Second
}

// randFloat64 returns a value in [0, 1) drawn from crypto/rand.
func randFloat64() float64 {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0.5
	}
	return float64(binary.BigEndian.Uint64(b[:])>>11) / (1 << 53)
}

// isDialError reports a failure while connecting, before any request bytes
// were written.
func isDialError(err error) bool {
	var opErr *net.OpError
	return errors.As(err, &opErr) && opErr.Op == "dial"
}
