package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/preston-bernstein/nba-gamethread-bot/internal/testutil"
)

type stubListener struct {
	addr net.Addr
}

func (s *stubListener) Accept() (net.Conn, error) { return nil, errors.New("accept failure") }
func (s *stubListener) Close() error              { return nil }
func (s *stubListener) Addr() net.Addr            { return s.addr }

func TestNetHTTPServerServesCustomListener(t *testing.T) {
	l := &stubListener{addr: &net.TCPAddr{IP: net.IPv4zero, Port: 0}}
	s := netHTTPServer{srv: &http.Server{Handler: http.NewServeMux()}, listener: l}

	if err := s.ListenAndServe(); err == nil {
		t.Fatalf("expected serve error from stub listener")
	}
}

func TestNetHTTPServerListenAndServeWithoutListener(t *testing.T) {
	s := newNetHTTPServer("127.0.0.1:0", http.NewServeMux())
	done := make(chan error, 1)
	go func() { done <- s.ListenAndServe() }()

	time.Sleep(50 * time.Millisecond)
	_ = s.Shutdown(context.Background())

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatalf("listen did not return after shutdown")
	}
}

func TestNewNetHTTPServerSetsTimeouts(t *testing.T) {
	handler := http.NewServeMux()
	s := newNetHTTPServer(":1234", handler)

	if s.Addr() != ":1234" || s.Handler() != handler {
		t.Fatalf("expected addr and handler passthrough")
	}
	if s.srv.ReadTimeout != readTimeout || s.srv.WriteTimeout != writeTimeout || s.srv.IdleTimeout != idleTimeout {
		t.Fatalf("expected server timeouts to be applied")
	}
}

func TestLaunchServerReportsFailure(t *testing.T) {
	failed := make(chan error, 1)
	launchServer("test", &testutil.StubHTTPServer{ListenErr: errors.New("listen failure")}, nil, func(err error) { failed <- err })

	select {
	case err := <-failed:
		if err == nil {
			t.Fatalf("expected listen error")
		}
	case <-time.After(time.Second):
		t.Fatal("expected onError to be called")
	}
}
