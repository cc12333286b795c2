package http

import (
	"context"
	"encoding/json"
	"log/slog"
	nethttp "net/http"
	"time"

	"github.com/google/uuid"

	"admissions-dashboard/internal/admissions"
	"admissions-dashboard/internal/config"
)

const requestIDHeader = "X-Request-ID"

// Server wraps an HTTP server and route handlers.
type Server struct {
	httpServer *nethttp.Server
	responder  *admissions.Responder
	metrics    *metrics
	logger     *slog.Logger
	seed       seedInfo
}

// NewServer loads the program seed table and creates a configured HTTP
// server with v1 endpoints.
func NewServer(ctx context.Context, cfg config.Config, logger *slog.Logger) (*Server, error) {
	if logger == nil {
		logger = slog.Default()
	}

	start := time.Now()
	table, info, err := loadProgramTable(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}
	elapsed := time.Since(start)
	logger.Info("program seed table loaded",
		"source", info.Source, "origin", info.Origin,
		"programs", info.Programs, "total_applicants", info.Total, "duration", elapsed)

	responder := admissions.NewResponder(admissions.ResponderConfig{
		Programs:        table,
		TrendWindowDays: cfg.TrendWindowDays,
		Location:        cfg.Location(),
	})
	s := newServer(cfg, responder, info, logger)
	s.metrics.recordSeedLoad(info.Programs, elapsed)
	return s, nil
}

func newServer(cfg config.Config, responder *admissions.Responder, info seedInfo, logger *slog.Logger) *Server {
	s := &Server{
		responder: responder,
		metrics:   newMetrics(),
		logger:    logger,
		seed:      info,
	}

	mux := nethttp.NewServeMux()
	mux.HandleFunc("/", dashboardHandler)
	mux.HandleFunc("/favicon.ico", faviconHandler)
	mux.Handle("/metrics", s.metrics.handler())
	mux.HandleFunc("/health", healthHandler)
	mux.HandleFunc("/ready", readyHandler)
	mux.HandleFunc(admissionsPath, admissionsAnalyticsHandler(responder, s.metrics))
	mux.HandleFunc(seedStatusPath, seedStatusHandler(info))
	mux.HandleFunc(settingsPath, dashboardSettingsHandler(cfg, responder))

	s.httpServer = &nethttp.Server{
		Addr:         cfg.ListenAddr,
		Handler:      s.loggingMiddleware(s.metrics.observabilityMiddleware(mux)),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}
	return s
}

// Handler exposes the fully wrapped handler, mainly for tests.
func (s *Server) Handler() nethttp.Handler {
	return s.httpServer.Handler
}

// ListenAndServe starts the HTTP server.
func (s *Server) ListenAndServe() error {
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

func healthHandler(w nethttp.ResponseWriter, _ *nethttp.Request) {
	writeJSON(w, nethttp.StatusOK, map[string]any{
		"status": "ok",
		"time":   time.Now().UTC(),
	})
}

func readyHandler(w nethttp.ResponseWriter, _ *nethttp.Request) {
	writeJSON(w, nethttp.StatusOK, map[string]any{
		"status": "ready",
	})
}

func (s *Server) loggingMiddleware(next nethttp.Handler) nethttp.Handler {
	return nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		start := time.Now()
		reqID := r.Header.Get(requestIDHeader)
		if reqID == "" {
			reqID = uuid.NewString()
		}
		w.Header().Set(requestIDHeader, reqID)

		rec := &statusRecorder{ResponseWriter: w, status: nethttp.StatusOK}
		next.ServeHTTP(rec, r)

		level := slog.LevelInfo
		if rec.status >= nethttp.StatusInternalServerError {
			level = slog.LevelError
		}
		s.logger.Log(r.Context(), level, "request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration", time.Since(start),
			"request_id", reqID,
		)
	})
}

func writeJSON(w nethttp.ResponseWriter, code int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(payload)
}
