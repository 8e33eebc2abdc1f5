package server

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/voyageai/voyageai/config"
	"github.com/voyageai/voyageai/logging"
	"github.com/voyageai/voyageai/service"
)

// Server wires the handlers, middleware chain and http.Server together.
type Server struct {
	httpServer *http.Server
	logger     logging.Logger
}

// New builds a ready-to-run server from settings and the travel
// service. db may be nil when no database is configured.
func New(settings config.Settings, svc *service.TravelService, db DBPinger, logger logging.Logger) *Server {
	if logger == nil {
		logger = &logging.NoOpLogger{}
	}
	h := NewHandler(svc, db, logger, settings.AppName)
	prefix := strings.TrimSuffix(settings.APIPrefix, "/")

	mux := http.NewServeMux()
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeJSON(w, http.StatusMethodNotAllowed, errorBody{Error: "method not allowed"})
			return
		}
		h.health(w, r)
	})
	mux.HandleFunc(prefix+"/plan", requirePost(h.createPlan))
	mux.HandleFunc(prefix+"/plan/stream", requirePost(h.createPlanStream))

	handler := chain(mux,
		RequestIDMiddleware,
		LoggingMiddleware(logger),
		CORSMiddleware(settings.CORSOrigins),
		RateLimitMiddleware(settings.RateLimitRPM),
	)

	return &Server{
		httpServer: &http.Server{
			Addr:              settings.AppAddr,
			Handler:           handler,
			ReadHeaderTimeout: 10 * time.Second,
		},
		logger: logger,
	}
}

func requirePost(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeJSON(w, http.StatusMethodNotAllowed, errorBody{Error: "method not allowed"})
			return
		}
		next(w, r)
	}
}

// Handler exposes the full middleware-wrapped handler, mainly for
// tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// ListenAndServe blocks until the server stops.
func (s *Server) ListenAndServe() error {
	s.logger.Info("HTTP server listening", map[string]interface{}{"addr": s.httpServer.Addr})
	return s.httpServer.ListenAndServe()
}

// Shutdown drains in-flight requests until ctx expires.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
