package server

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/preston-bernstein/nba-gamethread-bot/internal/config"
	httpserver "github.com/preston-bernstein/nba-gamethread-bot/internal/http"
	"github.com/preston-bernstein/nba-gamethread-bot/internal/http/handlers"
	"github.com/preston-bernstein/nba-gamethread-bot/internal/http/middleware"
	"github.com/preston-bernstein/nba-gamethread-bot/internal/logging"
	"github.com/preston-bernstein/nba-gamethread-bot/internal/metrics"
	"github.com/preston-bernstein/nba-gamethread-bot/internal/poller"
)

var metricsSetup = metrics.Setup

// Server runs the bot on an interval next to its health and metrics endpoints.
type Server struct {
	cfg           config.Config
	logger        *slog.Logger
	metrics       *metrics.Recorder
	httpServer    httpServer
	metricsServer httpServer
	poller        Poller
	metricsStop   func(context.Context) error
}

// New wires the bot, poller and HTTP servers from configuration.
func New(ctx context.Context, cfg config.Config, logger *slog.Logger) (*Server, error) {
	return newServerWithMetrics(ctx, cfg, logger, nil)
}

func newServerWithMetrics(ctx context.Context, cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) (*Server, error) {
	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger, recorder)

	parts, err := Build(ctx, cfg, logger, recorder)
	if err != nil {
		if metricsShutdown != nil {
			_ = metricsShutdown(context.Background())
		}
		return nil, err
	}
	return newServerWithRunner(cfg, logger, recorder, parts.Runner(), metricsSrv, metricsShutdown), nil
}

func newServerWithRunner(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder, runner poller.Runner, metricsSrv httpServer, metricsShutdown func(context.Context) error) *Server {
	serial := newSerialRunner(runner)
	plr := poller.New(serial, logger, cfg.RunInterval)

	return &Server{
		cfg:           cfg,
		logger:        logger,
		metrics:       recorder,
		httpServer:    buildHTTPServer(cfg, serial.nonBlocking(), plr, recorder, logger),
		metricsServer: metricsSrv,
		poller:        plr,
		metricsStop:   metricsShutdown,
	}
}

// newServerWithDeps is used for testing to inject custom components.
func newServerWithDeps(cfg config.Config, logger *slog.Logger, httpSrv httpServer, plr Poller) *Server {
	return &Server{
		cfg:        cfg,
		logger:     logger,
		httpServer: httpSrv,
		poller:     plr,
	}
}

func buildHTTPServer(cfg config.Config, runner poller.Runner, plr Poller, recorder *metrics.Recorder, logger *slog.Logger) httpServer {
	var statusFn func() poller.Status
	if plr != nil {
		statusFn = plr.Status
	}

	handler := handlers.NewHandler(cfg.Subreddit, statusFn, recorder, logger)
	var admin *handlers.AdminHandler
	if cfg.AdminToken != "" {
		admin = handlers.NewAdminHandler(runner, cfg.AdminToken, logger)
	}
	router := httpserver.NewRouter(handler, admin)
	return newNetHTTPServer(":"+cfg.Port, middleware.LoggingMiddleware(logger, recorder, router))
}

// Run starts the poller and HTTP servers, then waits for ctx to be cancelled
// before shutting down. stop is called if the HTTP server fails to serve.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	s.startMetrics()
	s.startServer(stop)
	s.poller.Start(ctx)

	<-ctx.Done()
	logging.Info(s.logger, "shutdown signal received")

	s.gracefulShutdown()
}

func (s *Server) startServer(stop context.CancelFunc) {
	launchServer("http", s.httpServer, s.logger, func(err error) {
		if stop != nil {
			stop()
		}
	})
}

func (s *Server) startMetrics() {
	if s.metricsServer == nil {
		return
	}
	launchServer("metrics", s.metricsServer, s.logger, nil)
}

func (s *Server) gracefulShutdown() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.poller.Stop(shutdownCtx); err != nil {
		logging.Error(s.logger, "failed to stop poller", err)
	}

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		logging.Error(s.logger, "graceful shutdown failed", err)
	}

	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(shutdownCtx); err != nil {
			logging.Warn(s.logger, "metrics server shutdown failed", "error", err)
		}
	}

	if s.metricsStop != nil {
		if err := s.metricsStop(shutdownCtx); err != nil {
			logging.Warn(s.logger, "metrics shutdown failed", "error", err)
		}
	}

	logging.Info(s.logger, "shutdown complete")
}

func buildMetrics(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) (*metrics.Recorder, httpServer, func(context.Context) error) {
	if recorder != nil {
		return recorder, nil, nil
	}

	tel, err := metricsSetup(context.Background(), metrics.TelemetryConfig{
		Enabled:        cfg.Metrics.Enabled,
		ServiceName:    cfg.Metrics.ServiceName,
		OtlpEndpoint:   cfg.Metrics.OtlpEndpoint,
		OtlpInsecure:   cfg.Metrics.OtlpInsecure,
		ExportInterval: cfg.Metrics.ExportInterval,
	})
	if err != nil {
		logging.Warn(logger, "metrics setup failed, continuing without telemetry", "error", err)
		return metrics.NewRecorder(), nil, nil
	}

	var metricsSrv httpServer
	if tel.Handler != nil {
		metricsSrv = newNetHTTPServer(":"+cfg.Metrics.Port, tel.Handler)
	}
	return tel.Recorder, metricsSrv, tel.Shutdown
}

// Handler exposes the HTTP handler (useful for tests).
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler()
}

// Metrics returns the recorder shared by the bot and the HTTP layer.
func (s *Server) Metrics() *metrics.Recorder {
	return s.metrics
}
