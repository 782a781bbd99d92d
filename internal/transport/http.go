package transport

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/purrstack/catbase/internal/engine"
	"github.com/purrstack/catbase/internal/logging"
)

// HTTPServer exposes the engine over plain HTTP for callers that do not
// speak the stdio framing.
type HTTPServer struct {
	eng    *engine.Engine
	router *chi.Mux
	logger logging.Logger
}

type callRequest struct {
	Name string         `json:"name"`
	Args map[string]any `json:"arguments"`
}

// NewHTTPServer constructs an HTTPServer with middleware and routes
// configured.
func NewHTTPServer(eng *engine.Engine, logger logging.Logger) *HTTPServer {
	if logger == nil {
		logger = logging.NoOpLogger{}
	}
	s := &HTTPServer{eng: eng, router: chi.NewRouter(), logger: logger}

	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Timeout(60 * time.Second))

	s.router.Get("/health", s.handleHealth)

	s.router.Route("/mcp", func(r chi.Router) {
		r.Get("/initialize", s.handleInitialize)
		r.Get("/tools", s.handleListTools)
		r.Post("/call", s.handleCall)
	})

	return s
}

// Router exposes the root HTTP handler for the server.
func (s *HTTPServer) Router() http.Handler { return s.router }

func (s *HTTPServer) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *HTTPServer) handleInitialize(w http.ResponseWriter, _ *http.Request) {
	info := s.eng.Info()
	writeJSON(w, http.StatusOK, map[string]any{
		"protocolVersion": mcp.LATEST_PROTOCOL_VERSION,
		"capabilities":    map[string]any{"tools": map[string]any{}},
		"serverInfo":      map[string]string{"name": info.Name, "version": info.Version},
		"instructions":    info.Instructions,
	})
}

func (s *HTTPServer) handleListTools(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.eng.ListTools())
}

func (s *HTTPServer) handleCall(w http.ResponseWriter, r *http.Request) {
	var req callRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
		return
	}

	result, err := s.eng.CallTool(r.Context(), req.Name, req.Args)
	if err != nil {
		var engErr *engine.Error
		if errors.As(err, &engErr) {
			writeJSON(w, statusFor(engErr.Code), engErr)
			return
		}
		s.logger.Error("http.call.error", "tool", req.Name, "error", err.Error())
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func statusFor(code int) int {
	switch code {
	case mcp.INVALID_PARAMS:
		return http.StatusBadRequest
	case mcp.METHOD_NOT_FOUND:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
