package server

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/Wachary/BioPlus-AI-1.1/internal/diagnosis"
	"github.com/Wachary/BioPlus-AI-1.1/internal/questiongen"
	"github.com/Wachary/BioPlus-AI-1.1/internal/store"
)

// EventRecorder is the slice of the event store the server writes to.
// A nil recorder disables persistence.
type EventRecorder interface {
	AppendSessionEvent(ctx context.Context, data store.SessionEventData) error
	AppendResponseEvent(ctx context.Context, data store.ResponseEventData) error
	AppendDiagnosisEvent(ctx context.Context, data store.DiagnosisEventData) error
}

// Server is the HTTP transport over the assessment engine.
type Server struct {
	router    *chi.Mux
	generator questiongen.Generator
	differ    diagnosis.Differ
	events    EventRecorder
	logger    zerolog.Logger
	config    Config
}

// New creates a Server wired to the given generator, differ, and event
// recorder.
func New(cfg Config, generator questiongen.Generator, differ diagnosis.Differ, events EventRecorder) *Server {
	s := &Server{
		router:    chi.NewRouter(),
		generator: generator,
		differ:    differ,
		events:    events,
		logger:    newLogger(cfg.Env),
		config:    cfg,
	}
	s.setupMiddleware()
	s.setupRoutes()
	return s
}

func newLogger(env string) zerolog.Logger {
	if env == "development" {
		return zerolog.New(zerolog.ConsoleWriter{
			Out:        os.Stdout,
			TimeFormat: time.RFC3339,
		}).With().Timestamp().Str("service", "bioplus").Logger()
	}
	return zerolog.New(os.Stdout).With().
		Timestamp().
		Str("service", "bioplus").
		Logger()
}

func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.Recoverer)
	s.router.Use(s.requestLogger)
}

func (s *Server) setupRoutes() {
	s.router.Get("/healthz", s.handleHealth)
	s.router.Get("/api/catalog", s.handleCatalog)
	s.router.Post("/api/questions", s.handleQuestions)
	s.router.Post("/api/diagnose", s.handleDiagnose)
}

// Handler exposes the router, mainly for httptest.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start runs the HTTP server until the listener fails.
func (s *Server) Start() error {
	s.logger.Info().Str("addr", s.config.Addr).Msg("starting server")
	return http.ListenAndServe(s.config.Addr, s.router)
}

// requestLogger logs one line per request with a wrapped status recorder.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		start := time.Now()

		next.ServeHTTP(rw, r)

		s.logger.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", rw.statusCode).
			Dur("duration", time.Since(start)).
			Str("request_id", middleware.GetReqID(r.Context())).
			Msg("request")
	})
}

// responseWriter captures the status code for logging.
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	rw.statusCode = statusCode
	rw.ResponseWriter.WriteHeader(statusCode)
}
