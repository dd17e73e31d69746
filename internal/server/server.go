// Package server wires the HTTP API of the journal server.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"

	"tradelens/internal/config"
	"tradelens/internal/database"
	"tradelens/internal/modules/analytics"
	"tradelens/internal/modules/journal"
)

// Config holds server configuration
type Config struct {
	Log       zerolog.Logger
	JournalDB *database.DB
	Config    *config.Config
}

// Server represents the HTTP server
type Server struct {
	router         *chi.Mux
	server         *http.Server
	log            zerolog.Logger
	journalDB      *database.DB
	cfg            *config.Config
	systemHandlers *SystemHandlers
}

// New creates a new HTTP server
func New(cfg Config) *Server {
	s := &Server{
		router:         chi.NewRouter(),
		log:            cfg.Log.With().Str("component", "server").Logger(),
		journalDB:      cfg.JournalDB,
		cfg:            cfg.Config,
		systemHandlers: NewSystemHandlers(cfg.Log, cfg.JournalDB),
	}

	s.setupMiddleware(cfg.Config.DevMode)
	s.setupRoutes()

	s.server = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Config.Port),
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// setupMiddleware configures middleware
func (s *Server) setupMiddleware(devMode bool) {
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(s.loggingMiddleware)
	s.router.Use(middleware.Timeout(60 * time.Second))

	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	if !devMode {
		s.router.Use(middleware.Compress(5))
	}
}

// setupRoutes configures all routes
func (s *Server) setupRoutes() {
	s.router.Get("/health", s.handleHealth)

	journalRepo := journal.NewTradeRepository(s.journalDB.Conn(), s.log)
	journalHandlers := journal.NewHandlers(journalRepo, s.log)

	analyticsService := analytics.NewService(s.log)
	analyticsHandlers := analytics.NewHandlers(analyticsService, journalRepo, s.log)

	s.router.Route("/api", func(r chi.Router) {
		r.Get("/dashboard", analyticsHandlers.HandleGetDashboard)

		r.Route("/analytics", func(r chi.Router) {
			r.Get("/metrics", analyticsHandlers.HandleGetMetrics)
			r.Get("/equity-curve", analyticsHandlers.HandleGetEquityCurve)
			r.Get("/behavior", analyticsHandlers.HandleGetBehavior)
			r.Get("/calendar", analyticsHandlers.HandleGetCalendar)
		})

		r.Route("/trades", func(r chi.Router) {
			r.Get("/", journalHandlers.HandleGetTrades)
			r.Get("/{date}", journalHandlers.HandleGetTradesForDate)
		})

		r.Get("/accounts", journalHandlers.HandleGetAccounts)

		r.Get("/system/status", s.systemHandlers.HandleSystemStatus)
	})
}

// Start starts the HTTP server
func (s *Server) Start() error {
	s.log.Info().Int("port", s.cfg.Port).Msg("Starting HTTP server")
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.log.Info().Msg("Shutting down HTTP server")
	return s.server.Shutdown(ctx)
}

// handleHealth reports basic liveness plus database reachability
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	status := http.StatusOK
	body := `{"status":"ok"}`
	if err := s.journalDB.Conn().PingContext(ctx); err != nil {
		s.log.Error().Err(err).Msg("Health check failed")
		status = http.StatusServiceUnavailable
		body = `{"status":"degraded"}`
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}

// loggingMiddleware logs HTTP requests
func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		s.log.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Int("bytes", ww.BytesWritten()).
			Dur("duration_ms", time.Since(start)).
			Str("request_id", middleware.GetReqID(r.Context())).
			Msg("HTTP request")
	})
}
