package middleware_test

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/jsamuelsen11/activity-roster/internal/adapters/http/middleware"
)

func TestTimeout_Responses(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		timeout    time.Duration
		handler    http.HandlerFunc
		wantStatus int
		wantBody   string
		wantHeader string
	}{
		{
			name:    "completes before deadline",
			timeout: time.Second,
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.Header().Set("X-Roster", "chess")
				w.WriteHeader(http.StatusCreated)
				_, _ = w.Write([]byte("ok"))
			},
			wantStatus: http.StatusCreated,
			wantBody:   "ok",
			wantHeader: "chess",
		},
		{
			name:    "implicit 200 on write",
			timeout: time.Second,
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte("no explicit status"))
			},
			wantStatus: http.StatusOK,
			wantBody:   "no explicit status",
		},
		{
			name:    "deadline exceeded",
			timeout: 20 * time.Millisecond,
			handler: func(_ http.ResponseWriter, r *http.Request) {
				<-r.Context().Done()
			},
			wantStatus: http.StatusGatewayTimeout,
			wantBody:   `"code":"timeout"`,
		},
		{
			name:    "deadline exceeded after headers buffered",
			timeout: 20 * time.Millisecond,
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
				_, _ = w.Write([]byte("partial"))
				<-r.Context().Done()
			},
			wantStatus: http.StatusGatewayTimeout,
			wantBody:   `"code":"timeout"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/activities", http.NoBody)
			middleware.Timeout(tt.timeout)(tt.handler).ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if !strings.Contains(rec.Body.String(), tt.wantBody) {
				t.Errorf("body = %q, want it to contain %q", rec.Body.String(), tt.wantBody)
			}
			if tt.wantHeader != "" && rec.Header().Get("X-Roster") != tt.wantHeader {
				t.Errorf("X-Roster = %q, want %q", rec.Header().Get("X-Roster"), tt.wantHeader)
			}
			if tt.wantStatus == http.StatusGatewayTimeout {
				if ct := rec.Header().Get("Content-Type"); ct != "application/problem+json" {
					t.Errorf("Content-Type = %q, want application/problem+json", ct)
				}
				if strings.Contains(rec.Body.String(), "partial") {
					t.Errorf("body leaks buffered handler output: %q", rec.Body.String())
				}
			}
		})
	}
}

func TestTimeout_LateWriteFails(t *testing.T) {
	t.Parallel()

	writeErr := make(chan error, 1)
	handler := middleware.Timeout(10 * time.Millisecond)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
		time.Sleep(10 * time.Millisecond)
		_, err := w.Write([]byte("too late"))
		writeErr <- err
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/activities", http.NoBody))

	select {
	case err := <-writeErr:
		if !errors.Is(err, http.ErrHandlerTimeout) {
			t.Errorf("late Write error = %v, want http.ErrHandlerTimeout", err)
		}
	case <-time.After(time.Second):
		t.Fatal("handler never attempted its late write")
	}
}

func TestTimeout_ContextDeadline(t *testing.T) {
	t.Parallel()

	for _, d := range []time.Duration{time.Second, 0} {
		var hasDeadline bool
		handler := middleware.Timeout(d)(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
			_, hasDeadline = r.Context().Deadline()
		}))
		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", http.NoBody))

		if want := d > 0; hasDeadline != want {
			t.Errorf("Timeout(%v): context has deadline = %v, want %v", d, hasDeadline, want)
		}
	}
}

func TestTimeout_PanicReachesRecovery(t *testing.T) {
	t.Parallel()

	var logs bytes.Buffer
	handler := middleware.Recovery(testLogger(&logs))(
		middleware.Timeout(time.Second)(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {
			panic("roster exploded")
		})),
	)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/activities/Chess%20Club/signup", http.NoBody))

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", rec.Code)
	}
	if !strings.Contains(logs.String(), "roster exploded") {
		t.Errorf("recovery log missing panic value: %s", logs.String())
	}
}
