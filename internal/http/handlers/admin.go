package handlers

import (
	"crypto/subtle"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/preston-bernstein/nba-gamethread-bot/internal/gamestate"
	"github.com/preston-bernstein/nba-gamethread-bot/internal/http/requestutil"
	"github.com/preston-bernstein/nba-gamethread-bot/internal/logging"
	"github.com/preston-bernstein/nba-gamethread-bot/internal/poller"
)

// AdminHandler exposes operator-only endpoints.
type AdminHandler struct {
	runner poller.Runner
	token  string
	logger *slog.Logger
	now    func() time.Time
	mu     sync.Mutex
}

// NewAdminHandler constructs an AdminHandler. An empty token disables it.
func NewAdminHandler(runner poller.Runner, token string, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		runner: runner,
		token:  token,
		logger: logger,
		now:    time.Now,
	}
}

// TriggerRun runs the bot once, outside the schedule. The optional "at" query
// parameter (RFC3339) replays the decision for that instant. Requires
// "Authorization: Bearer <ADMIN_TOKEN>".
func (h *AdminHandler) TriggerRun(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, h.logger, http.MethodPost) {
		return
	}
	if !h.authorize(r) {
		logging.Warn(h.logger, "admin unauthorized",
			slog.String(logging.FieldPath, r.URL.Path),
			slog.String("client_ip", requestutil.ClientIP(r)),
		)
		writeError(w, r, http.StatusUnauthorized, "unauthorized", h.logger)
		return
	}
	if h.runner == nil {
		writeError(w, r, http.StatusServiceUnavailable, "runner not configured", h.logger)
		return
	}

	logger := loggerFromContext(r, h.logger)
	at := h.now()
	if raw := strings.TrimSpace(r.URL.Query().Get("at")); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			logging.Warn(logger, "admin run invalid time", slog.String("at", raw))
			writeError(w, r, http.StatusBadRequest, "invalid at (expected RFC3339)", logger)
			return
		}
		at = parsed
	}

	if !h.mu.TryLock() {
		writeError(w, r, http.StatusConflict, poller.ErrRunInProgress.Error(), logger)
		return
	}
	defer h.mu.Unlock()

	report, err := h.runner.Run(r.Context(), at)
	if err != nil {
		status := http.StatusBadGateway
		switch {
		case errors.Is(err, poller.ErrRunInProgress):
			status = http.StatusConflict
		case errors.Is(err, gamestate.ErrMalformedSchedule):
			status = http.StatusUnprocessableEntity
		}
		writeError(w, r, status, err.Error(), logger)
		return
	}
	writeJSON(w, http.StatusOK, report, logger)
}

func (h *AdminHandler) authorize(r *http.Request) bool {
	if h.token == "" {
		return false
	}
	got, ok := requestutil.BearerToken(r)
	return ok && subtle.ConstantTimeCompare([]byte(got), []byte(h.token)) == 1
}
