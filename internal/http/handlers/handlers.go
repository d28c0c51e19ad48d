package handlers

import (
	"log/slog"
	nethttp "net/http"
	"time"

	"github.com/preston-bernstein/nba-gamethread-bot/internal/metrics"
	"github.com/preston-bernstein/nba-gamethread-bot/internal/poller"
)

// StatusResponse is the body of /status.
type StatusResponse struct {
	Ready     bool                                `json:"ready"`
	Subreddit string                              `json:"subreddit"`
	Now       time.Time                           `json:"now"`
	Poller    poller.Status                       `json:"poller"`
	Runs      metrics.RunSnapshot                 `json:"runs"`
	Providers map[string]metrics.ProviderSnapshot `json:"providers"`
}

// Handler serves the bot's operational endpoints.
type Handler struct {
	subreddit string
	logger    *slog.Logger
	now       func() time.Time
	statusFn  func() poller.Status
	recorder  *metrics.Recorder
}

// NewHandler constructs a Handler. statusFn and recorder may be nil.
func NewHandler(subreddit string, statusFn func() poller.Status, recorder *metrics.Recorder, logger *slog.Logger) *Handler {
	return &Handler{
		subreddit: subreddit,
		logger:    logger,
		now:       time.Now,
		statusFn:  statusFn,
		recorder:  recorder,
	}
}

// ServeHTTP routes the handler's own paths; anything else is a 404.
func (h *Handler) ServeHTTP(w nethttp.ResponseWriter, r *nethttp.Request) {
	switch r.URL.Path {
	case "/health":
		h.Health(w, r)
	case "/ready":
		h.Ready(w, r)
	case "/status":
		h.Status(w, r)
	default:
		writeError(w, r, nethttp.StatusNotFound, "not found", h.logger)
	}
}

// Health reports that the process is up.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, h.logger, nethttp.MethodGet, nethttp.MethodHead) {
		return
	}
	if err := r.Context().Err(); err != nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports whether the run loop is healthy enough to be trusted.
func (h *Handler) Ready(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, h.logger, nethttp.MethodGet, nethttp.MethodHead) {
		return
	}
	if h.statusFn == nil {
		writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	status := h.statusFn()
	if status.IsReady() {
		writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	msg := status.LastError
	if msg == "" {
		msg = "not ready"
	}
	writeError(w, r, nethttp.StatusServiceUnavailable, msg, h.logger)
}

// Status returns the poller state, the last report and run counters.
func (h *Handler) Status(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, h.logger, nethttp.MethodGet, nethttp.MethodHead) {
		return
	}
	resp := StatusResponse{
		Subreddit: h.subreddit,
		Now:       h.now().UTC(),
		Runs:      h.recorder.Runs(),
		Providers: h.recorder.Providers(),
	}
	if h.statusFn != nil {
		resp.Poller = h.statusFn()
		resp.Ready = resp.Poller.IsReady()
	}
	writeJSON(w, nethttp.StatusOK, resp, h.logger)
}
