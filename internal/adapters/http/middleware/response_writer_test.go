package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestResponseWriter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		write       func(rw *responseWriter)
		wantStatus  int
		wantWritten int64
		wantHeader  bool
	}{
		{
			name:       "nothing written",
			write:      func(*responseWriter) {},
			wantStatus: http.StatusOK,
		},
		{
			name:       "explicit status",
			write:      func(rw *responseWriter) { rw.WriteHeader(http.StatusNotFound) },
			wantStatus: http.StatusNotFound,
			wantHeader: true,
		},
		{
			name: "first status wins",
			write: func(rw *responseWriter) {
				rw.WriteHeader(http.StatusBadRequest)
				rw.WriteHeader(http.StatusInternalServerError)
			},
			wantStatus: http.StatusBadRequest,
			wantHeader: true,
		},
		{
			name: "implicit 200 on write",
			write: func(rw *responseWriter) {
				_, _ = rw.Write([]byte(`{"message":"Signed up a@b.c for Chess Club"}`))
			},
			wantStatus:  http.StatusOK,
			wantWritten: 44,
			wantHeader:  true,
		},
		{
			name: "bytes accumulate",
			write: func(rw *responseWriter) {
				_, _ = rw.Write([]byte("abc"))
				_, _ = rw.Write([]byte("de"))
			},
			wantStatus:  http.StatusOK,
			wantWritten: 5,
			wantHeader:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := httptest.NewRecorder()
			rw := newResponseWriter(rec)
			tt.write(rw)

			if rw.statusCode != tt.wantStatus {
				t.Errorf("statusCode = %d, want %d", rw.statusCode, tt.wantStatus)
			}
			if rw.written != tt.wantWritten {
				t.Errorf("written = %d, want %d", rw.written, tt.wantWritten)
			}
			if rw.headerWritten != tt.wantHeader {
				t.Errorf("headerWritten = %v, want %v", rw.headerWritten, tt.wantHeader)
			}
			if tt.wantHeader && rec.Code != tt.wantStatus {
				t.Errorf("recorder Code = %d, want %d", rec.Code, tt.wantStatus)
			}
		})
	}
}

func TestResponseWriter_Unwrap(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	rw := newResponseWriter(rec)

	if rw.Unwrap() != rec {
		t.Error("Unwrap() did not return the wrapped writer")
	}
	if err := http.NewResponseController(rw).Flush(); err != nil {
		t.Errorf("Flush through wrapper error = %v", err)
	}
}
