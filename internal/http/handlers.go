package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/avelinak/tool-endpoint-service/internal/observability"
	"github.com/avelinak/tool-endpoint-service/internal/tools"
)

// Handler holds dependencies for HTTP handlers.
type Handler struct {
	registry *tools.Registry
	logger   *zap.Logger
	draining atomic.Bool

	// StorePing, when set, is called by the health handler to check snippet
	// store reachability. Used when the backend is memcached.
	StorePing func() error
}

// NewHandler returns a new Handler over the given tool registry.
func NewHandler(registry *tools.Registry, logger *zap.Logger) *Handler {
	return &Handler{
		registry: registry,
		logger:   logger,
	}
}

// SetDraining marks the service as shutting down. The health handler reports
// 503 with status shutting-down while set.
func (h *Handler) SetDraining(v bool) {
	h.draining.Store(v)
}

// ListTools handles GET /api/tools.
func (h *Handler) ListTools(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"tools": h.registry.Definitions(),
	})
}

// InvokeTool handles POST /api/tools/{name}. The request body is a JSON
// object of named string arguments; an empty body means no arguments.
func (h *Handler) InvokeTool(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]
	if _, ok := h.registry.Lookup(name); !ok {
		writeError(w, r, http.StatusNotFound, "TOOL_NOT_FOUND", "no such tool: "+name)
		return
	}

	args := map[string]string{}
	if r.Body != nil {
		if err := json.NewDecoder(r.Body).Decode(&args); err != nil && !errors.Is(err, io.EOF) {
			writeError(w, r, http.StatusBadRequest, "INVALID_ARGUMENTS", "request body must be a JSON object of string arguments")
			return
		}
	}

	result, err := h.registry.Invoke(r.Context(), name, args)
	if err != nil {
		if logger := loggerFromRequest(r); logger != nil {
			logger.Error("tool invocation failed", zap.String("tool", name), zap.Error(err))
		}
		writeError(w, r, http.StatusInternalServerError, "TOOL_FAILED", "tool invocation failed")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"tool":   name,
		"result": result,
	})
}

// GetHealth handles GET /health.
func (h *Handler) GetHealth(w http.ResponseWriter, r *http.Request) {
	status := "healthy"
	statusCode := http.StatusOK
	if h.draining.Load() {
		status = "shutting-down"
		statusCode = http.StatusServiceUnavailable
	}

	checks := make(map[string]string)
	if h.StorePing != nil {
		if h.StorePing() == nil {
			checks["snippetStore"] = "healthy"
		} else {
			checks["snippetStore"] = "unhealthy"
		}
	}

	writeJSON(w, statusCode, map[string]any{
		"status":    status,
		"service":   "tool-endpoint-service",
		"checks":    checks,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// writeJSON writes a JSON response with the specified HTTP status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError writes an error response in the standard error format with
// code, message, and the request's correlation ID when available.
func writeError(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	corrID := ""
	if v := r.Context().Value("correlation_id"); v != nil {
		corrID, _ = v.(string)
	}
	writeJSON(w, status, map[string]any{
		"error": map[string]string{
			"code":      code,
			"message":   message,
			"requestId": corrID,
		},
	})
}

func loggerFromRequest(r *http.Request) *zap.Logger {
	if logger, ok := r.Context().Value("logger").(*zap.Logger); ok {
		return logger
	}
	return nil
}

// NewRouter assembles the service router: tool listing and invocation under
// /api/tools, plus health and metrics.
func NewRouter(h *Handler, logger *zap.Logger, requestTimeout time.Duration) *mux.Router {
	router := mux.NewRouter()
	router.Use(CorrelationIDMiddleware(logger))
	router.Use(MetricsMiddleware)
	router.HandleFunc("/health", h.GetHealth).Methods(http.MethodGet)
	router.Handle("/metrics", observability.MetricsHandler())

	toolsRouter := router.PathPrefix("/api/tools").Subrouter()
	toolsRouter.Use(TimeoutMiddleware(requestTimeout))
	toolsRouter.HandleFunc("", h.ListTools).Methods(http.MethodGet)
	toolsRouter.HandleFunc("/{name}", h.InvokeTool).Methods(http.MethodPost)

	return router
}
