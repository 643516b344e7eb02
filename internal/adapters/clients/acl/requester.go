package acl

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/activity-roster/internal/platform/httpclient"
)

// Requester runs bodiless JSON calls against the roster API through an
// httpclient.Client. It always closes the response body and maps failures
// with TranslateHTTPError.
type Requester struct {
	client *httpclient.Client
	logger *slog.Logger
}

// NewRequester wraps client. A nil logger discards.
func NewRequester(client *httpclient.Client, logger *slog.Logger) *Requester {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Requester{client: client, logger: logger}
}

// Do sends method to path, which is relative to the client's base URL and
// carries its own query string. A 2xx body is decoded into out unless out is
// nil.
func (r *Requester) Do(ctx context.Context, method, path string, out any) error {
	switch method {
	case http.MethodGet, http.MethodPost, http.MethodDelete:
	default:
		return fmt.Errorf("unsupported HTTP method: %s", method)
	}

	req, err := http.NewRequestWithContext(ctx, method, r.client.BaseURL()+path, http.NoBody)
	if err != nil {
		return fmt.Errorf("building %s %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := r.client.Do(ctx, req)
	if resp != nil {
		defer r.closeBody(ctx, resp)
	}

	switch {
	case resp != nil && !isSuccess(resp.StatusCode):
		// Exhausted retries hand back the last response alongside err; the
		// response says more than the retry error does.
		terr := TranslateHTTPError(resp)
		r.logger.DebugContext(ctx, "roster API error response",
			slog.String("method", method),
			slog.String("path", req.URL.Path),
			slog.Int("status", resp.StatusCode),
			slog.Any("error", terr),
		)
		return terr
	case err != nil:
		r.logger.ErrorContext(ctx, "roster API request failed",
			slog.String("method", method),
			slog.String("path", req.URL.Path),
			slog.Any("error", err),
		)
		return fmt.Errorf("%s %s: %w", method, req.URL.Path, err)
	case out == nil:
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding %s %s: %w", method, req.URL.Path, err)
	}
	return nil
}

// CircuitBreakerState reports the underlying client's breaker state.
func (r *Requester) CircuitBreakerState() string {
	return r.client.CircuitBreakerState()
}

func (r *Requester) closeBody(ctx context.Context, resp *http.Response) {
	if err := resp.Body.Close(); err != nil {
		r.logger.WarnContext(ctx, "closing roster API response body", slog.Any("error", err))
	}
}

func isSuccess(status int) bool {
	return status >= http.StatusOK && status < http.StatusMultipleChoices
}
