package http_test

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"testing"
	"time"

	adapthttp "github.com/jsamuelsen11/activity-roster/internal/adapters/http"
	"github.com/jsamuelsen11/activity-roster/internal/platform/config"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func testServerConfig() config.ServerConfig {
	return config.ServerConfig{
		Host:         "127.0.0.1",
		Port:         0,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 5 * time.Second,
		IdleTimeout:  30 * time.Second,
	}
}

func TestServer_AddrBeforeListen(t *testing.T) {
	t.Parallel()

	cfg := testServerConfig()
	cfg.Port = 9090
	s := adapthttp.NewServer(cfg, http.NotFoundHandler(), nil)

	if got := s.Addr(); got != "127.0.0.1:9090" {
		t.Errorf("Addr() = %q, want %q", got, "127.0.0.1:9090")
	}
}

func TestServer_ServesRosterAndShutsDown(t *testing.T) {
	t.Parallel()

	s := adapthttp.NewServer(testServerConfig(), newRosterRouter(t), discardLogger())
	if err := s.Listen(); err != nil {
		t.Fatalf("Listen() error = %v", err)
	}
	if strings.HasSuffix(s.Addr(), ":0") {
		t.Fatalf("Addr() = %q, want the bound port", s.Addr())
	}

	errCh := make(chan error, 1)
	go func() { errCh <- s.Start() }()

	resp, err := http.Get("http://" + s.Addr() + "/activities")
	if err != nil {
		t.Fatalf("GET /activities error = %v", err)
	}
	_ = resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("GET /activities status = %d, want %d", resp.StatusCode, http.StatusOK)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.Shutdown(ctx); err != nil {
		t.Fatalf("Shutdown() error = %v", err)
	}
	if err := <-errCh; err != nil {
		t.Fatalf("Start() error after shutdown = %v", err)
	}
}

func TestServer_ShutdownWithoutDeadline(t *testing.T) {
	t.Parallel()

	s := adapthttp.NewServer(testServerConfig(), http.NotFoundHandler(), discardLogger())
	if err := s.Listen(); err != nil {
		t.Fatalf("Listen() error = %v", err)
	}

	errCh := make(chan error, 1)
	go func() { errCh <- s.Start() }()

	// Wait until the server answers before shutting down.
	deadline := time.Now().Add(2 * time.Second)
	for {
		resp, err := http.Get("http://" + s.Addr() + "/")
		if err == nil {
			_ = resp.Body.Close()
			break
		}
		if time.Now().After(deadline) {
			t.Fatalf("server never answered: %v", err)
		}
		time.Sleep(10 * time.Millisecond)
	}

	if err := s.Shutdown(context.Background()); err != nil {
		t.Fatalf("Shutdown() error = %v", err)
	}
	if err := <-errCh; err != nil {
		t.Fatalf("Start() error after shutdown = %v", err)
	}
}

func TestServer_ListenFailsOnBusyPort(t *testing.T) {
	t.Parallel()

	busy, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("net.Listen() error = %v", err)
	}
	t.Cleanup(func() { _ = busy.Close() })

	cfg := testServerConfig()
	cfg.Port = busy.Addr().(*net.TCPAddr).Port

	s := adapthttp.NewServer(cfg, http.NotFoundHandler(), discardLogger())
	if err := s.Listen(); err == nil {
		t.Error("Listen() on a busy port succeeded, want error")
	}
}
