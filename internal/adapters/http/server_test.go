package http_test

import (
	"context"
	"io"
	"log/slog"
	"net"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	adapthttp "github.com/jsamuelsen11/draftdesk/internal/adapters/http"
	"github.com/jsamuelsen11/draftdesk/internal/platform/config"
	"github.com/jsamuelsen11/draftdesk/internal/platform/logging"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// serve starts s on a loopback listener and returns its base URL and the
// channel Serve's result is delivered on.
func serve(t *testing.T, s *adapthttp.Server) (string, <-chan error) {
	t.Helper()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}

	errCh := make(chan error, 1)
	go func() { errCh <- s.Serve(ln) }()

	return "http://" + ln.Addr().String(), errCh
}

func TestServer_AddrBeforeServing(t *testing.T) {
	t.Parallel()

	s := adapthttp.NewServer(config.ServerConfig{Host: "127.0.0.1", Port: 9090}, http.NotFoundHandler(), nil)

	if got := s.Addr(); got != "127.0.0.1:9090" {
		t.Errorf("Addr() = %q, want %q", got, "127.0.0.1:9090")
	}
}

func TestServer_ServeAndShutdown(t *testing.T) {
	t.Parallel()

	var sawLogger atomic.Bool
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sawLogger.Store(logging.FromContext(r.Context()) != slog.Default())
		_, _ = io.WriteString(w, `{"draftId":"d1"}`)
	})

	cfg := config.ServerConfig{
		ReadTimeout:  time.Second,
		WriteTimeout: time.Second,
		IdleTimeout:  time.Second,
	}
	s := adapthttp.NewServer(cfg, handler, discardLogger())
	baseURL, errCh := serve(t, s)

	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, baseURL+"/api/v1/drafts/d1", http.NoBody)
	if err != nil {
		t.Fatalf("creating request: %v", err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()

	if string(body) != `{"draftId":"d1"}` {
		t.Errorf("body = %q", body)
	}
	if !sawLogger.Load() {
		t.Error("request context did not carry the server logger")
	}
	// A served request proves Serve has recorded the listener.
	if got := "http://" + s.Addr(); got != baseURL {
		t.Errorf("Addr() = %q, want bound address %q", got, baseURL)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.Shutdown(ctx); err != nil {
		t.Fatalf("Shutdown() error = %v", err)
	}
	if err := <-errCh; err != nil {
		t.Fatalf("Serve() error after shutdown = %v", err)
	}
}

func TestServer_ShutdownWithoutDeadline(t *testing.T) {
	t.Parallel()

	s := adapthttp.NewServer(config.ServerConfig{}, http.NotFoundHandler(), discardLogger())
	_, errCh := serve(t, s)

	if err := s.Shutdown(context.Background()); err != nil {
		t.Fatalf("Shutdown() error = %v", err)
	}
	if err := <-errCh; err != nil {
		t.Fatalf("Serve() error after shutdown = %v", err)
	}
}

func TestServer_StartFailsOnBadAddress(t *testing.T) {
	t.Parallel()

	s := adapthttp.NewServer(config.ServerConfig{Host: "256.0.0.1", Port: 1}, http.NotFoundHandler(), discardLogger())

	if err := s.Start(); err == nil {
		t.Fatal("Start() error = nil, want listen failure")
	}
}
