package middleware

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/preston-bernstein/nba-gamethread-bot/internal/http/requestutil"
	"github.com/preston-bernstein/nba-gamethread-bot/internal/logging"
	"github.com/preston-bernstein/nba-gamethread-bot/internal/metrics"
)

// routeLabels are the paths the router serves. Anything else is reported as
// "other" so scanners cannot blow up metric cardinality.
var routeLabels = map[string]struct{}{
	"/health":    {},
	"/ready":     {},
	"/status":    {},
	"/admin/run": {},
}

// LoggingMiddleware tags each request with an id and a scoped logger, turns
// handler panics into 500s, then records the outcome in logs and metrics.
func LoggingMiddleware(baseLogger *slog.Logger, recorder *metrics.Recorder, next http.Handler) http.Handler {
	if baseLogger == nil {
		baseLogger = slog.Default()
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		reqID := requestutil.SanitizeRequestID(r.Header.Get(requestutil.HeaderRequestID))
		w.Header().Set(requestutil.HeaderRequestID, reqID)

		logger := baseLogger.With(
			slog.String(logging.FieldRequestID, reqID),
			slog.String(logging.FieldMethod, r.Method),
			slog.String(logging.FieldPath, r.URL.Path),
			slog.String("client_ip", requestutil.ClientIP(r)),
		)
		r = r.WithContext(withRequestID(logging.WithLogger(r.Context(), logger), reqID))
		sw := &statusWriter{ResponseWriter: w}

		panicked := serveRecovering(sw, r, next, logger)

		status := sw.statusCode()
		elapsed := time.Since(start)
		recorder.RecordHTTPRequest(r.Method, routeLabel(r.URL.Path), status, elapsed)

		level := slog.LevelInfo
		switch {
		case panicked:
			level = slog.LevelError
		case status >= http.StatusInternalServerError:
			level = slog.LevelWarn
		}
		logger.Log(r.Context(), level, "request complete",
			slog.Int(logging.FieldStatusCode, status),
			slog.Int("bytes", sw.written),
			slog.Int64(logging.FieldDurationMS, elapsed.Milliseconds()),
		)
	})
}

// serveRecovering runs next and reports whether it panicked. A panic before
// any header was written becomes a JSON 500.
func serveRecovering(sw *statusWriter, r *http.Request, next http.Handler, logger *slog.Logger) (panicked bool) {
	defer func() {
		rec := recover()
		if rec == nil {
			return
		}
		if rec == http.ErrAbortHandler {
			panic(rec)
		}
		panicked = true
		logging.Error(logger, "handler panic", fmt.Errorf("%v", rec))
		if sw.status == 0 {
			sw.Header().Set("Content-Type", "application/json")
			sw.WriteHeader(http.StatusInternalServerError)
			_, _ = sw.Write([]byte(`{"error":"internal error"}` + "\n"))
		}
	}()
	next.ServeHTTP(sw, r)
	return false
}

// statusWriter remembers the status and body size a handler produced.
type statusWriter struct {
	http.ResponseWriter
	status  int
	written int
}

func (w *statusWriter) WriteHeader(status int) {
	if w.status == 0 {
		w.status = status
	}
	w.ResponseWriter.WriteHeader(status)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	n, err := w.ResponseWriter.Write(b)
	w.written += n
	return n, err
}

func (w *statusWriter) statusCode() int {
	if w.status == 0 {
		return http.StatusOK
	}
	return w.status
}

type requestIDKey struct{}

// RequestIDFromContext returns the id LoggingMiddleware attached, or "".
func RequestIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

func withRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

func routeLabel(path string) string {
	if _, ok := routeLabels[path]; ok {
		return path
	}
	return "other"
}
