package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/preston-bernstein/nba-gamethread-bot/internal/http/handlers"
)

func TestRouterRoutesKnownPaths(t *testing.T) {
	router := NewRouter(handlers.NewHandler("nyknicks", nil, nil, nil), handlers.NewAdminHandler(nil, "", nil))

	cases := map[string]struct {
		method string
		code   int
	}{
		"/health":    {http.MethodGet, http.StatusOK},
		"/ready":     {http.MethodGet, http.StatusOK},
		"/status":    {http.MethodGet, http.StatusOK},
		"/admin/run": {http.MethodPost, http.StatusUnauthorized},
	}

	for path, tc := range cases {
		req := httptest.NewRequest(tc.method, path, nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		if rr.Code != tc.code {
			t.Fatalf("route %s expected status %d, got %d", path, tc.code, rr.Code)
		}
	}
}

func TestRouterWithoutAdmin(t *testing.T) {
	router := NewRouter(handlers.NewHandler("nyknicks", nil, nil, nil), nil)

	for _, path := range []string{"/admin/run", "/does-not-exist"} {
		req := httptest.NewRequest(http.MethodPost, path, nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		if rr.Code != http.StatusNotFound {
			t.Fatalf("expected 404 for %s, got %d", path, rr.Code)
		}
	}
}
