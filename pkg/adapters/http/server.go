// Package http exposes the engine protocol over HTTP for callers that
// prefer a socket to a stdio pipe, plus health, metrics and run audit
// endpoints.
package http

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/gantrykit/gantry/internal/logging"
	"github.com/gantrykit/gantry/pkg/domain"
	"github.com/gantrykit/gantry/pkg/ports"
	"github.com/gantrykit/gantry/pkg/protocol"
)

// Engine is the dispatch surface the server exposes.
type Engine interface {
	Dispatch(ctx context.Context, req protocol.Request) (protocol.Response, bool)
	Journal() ports.RunJournal
}

// Server serves the protocol over HTTP.
type Server struct {
	engine   Engine
	logger   *slog.Logger
	registry *prometheus.Registry
	shutdown func()
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithMetricsRegistry mounts /metrics backed by the given registry.
func WithMetricsRegistry(reg *prometheus.Registry) Option {
	return func(s *Server) {
		s.registry = reg
	}
}

// WithShutdown sets the callback invoked when a caller requests shutdown.
func WithShutdown(fn func()) Option {
	return func(s *Server) {
		s.shutdown = fn
	}
}

// NewHandler builds the HTTP handler for the engine.
func NewHandler(engine Engine, opts ...Option) http.Handler {
	s := &Server{
		engine: engine,
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Post("/ipc", s.handleIPC)
	r.Get("/healthz", s.handleHealth)
	r.Get("/runs", s.handleRuns)
	r.Get("/runs/{id}", s.handleRun)
	if s.registry != nil {
		r.Method(http.MethodGet, "/metrics",
			promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))
	}

	return r
}

// handleIPC runs one protocol exchange. Protocol-level failures still
// produce a 200; the error travels inside the envelope, exactly as it would
// over a pipe.
func (s *Server) handleIPC(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "failed to read request body", http.StatusBadRequest)
		return
	}

	req, derr := protocol.DecodeRequest(body)
	if derr != nil {
		s.writeResponse(w, protocol.Error(derr))
		return
	}

	resp, shutdown := s.engine.Dispatch(r.Context(), req)
	if shutdown {
		w.WriteHeader(http.StatusNoContent)
		if s.shutdown != nil {
			// After the response is on the wire; the callback owns exit.
			go s.shutdown()
		}
		return
	}

	s.writeResponse(w, resp)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}

func (s *Server) handleRuns(w http.ResponseWriter, r *http.Request) {
	runs, err := s.engine.Journal().List(r.Context())
	if err != nil {
		s.logger.Error("failed to list runs", "error", err)
		http.Error(w, "failed to list runs", http.StatusInternalServerError)
		return
	}
	s.writeJSON(w, runs)
}

func (s *Server) handleRun(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	run, err := s.engine.Journal().Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrRunNotFound) {
			http.Error(w, "run not found", http.StatusNotFound)
			return
		}
		s.logger.Error("failed to load run", "run_id", id, "error", err)
		http.Error(w, "failed to load run", http.StatusInternalServerError)
		return
	}
	s.writeJSON(w, run)
}

func (s *Server) writeResponse(w http.ResponseWriter, resp protocol.Response) {
	data, err := resp.Encode()
	if err != nil {
		s.logger.Error("failed to encode response", "error", err)
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(data)
}

func (s *Server) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("failed to encode response", "error", err)
	}
}
