package http

import (
	nethttp "net/http"

	"github.com/preston-bernstein/nba-gamethread-bot/internal/http/handlers"
)

// NewRouter registers HTTP routes on a ServeMux. admin may be nil.
func NewRouter(handler *handlers.Handler, admin *handlers.AdminHandler) nethttp.Handler {
	mux := nethttp.NewServeMux()
	mux.HandleFunc("/health", handler.Health)
	mux.HandleFunc("/ready", handler.Ready)
	mux.HandleFunc("/status", handler.Status)
	if admin != nil {
		mux.HandleFunc("/admin/run", admin.TriggerRun)
	}
	return mux
}
