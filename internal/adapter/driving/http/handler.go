// Package httphandler is the HTTP driving adapter serving the JSON API and,
// in production mode, the prebuilt frontend bundle.
package httphandler

import (
	"log/slog"
	"net/http"
)

// healthMessage is the fixed message reported by the liveness check.
const healthMessage = "TFCC Backend is running"

// Handler is the HTTP driving adapter that serves the JSON API.
type Handler struct {
	logger *slog.Logger
}

// NewHandler creates a Handler with all required dependencies.
func NewHandler(logger *slog.Logger) *Handler {
	return &Handler{
		logger: logger,
	}
}

// RegisterAPIRoutes registers the JSON API routes on the provided mux.
func RegisterAPIRoutes(mux *http.ServeMux, h *Handler) {
	mux.HandleFunc("GET /api/health", h.Health)
}

// ApplyMiddleware wraps the handler with request-id, logging and recovery
// middleware. Recovery is innermost so panics are caught before logging.
func ApplyMiddleware(next http.Handler, logger *slog.Logger) http.Handler {
	wrapped := recoveryMiddleware(logger, next)
	wrapped = loggingMiddleware(logger, wrapped)
	wrapped = requestIDMiddleware(wrapped)
	return wrapped
}

// Health is the liveness check. It reports healthy unconditionally and never
// consults the database.
func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:  "OK",
		Message: healthMessage,
	})
}
