package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/devfolio/apiserver/internal/logger"
)

// ErrorResponse is a simple error payload.
type ErrorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, value any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(value)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, ErrorResponse{Error: message})
}

// serve adapts a read-only loader into a GET handler. Any load error is
// logged and reported as a generic server error.
func serve[T any](log *logger.Logger, resource string, load func(context.Context) (T, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		value, err := load(r.Context())
		if err != nil {
			log.Error("failed to load resource",
				"resource", resource,
				"request_id", middleware.GetReqID(r.Context()),
				"error", err,
			)
			writeError(w, http.StatusInternalServerError, "failed to load "+resource)
			return
		}
		writeJSON(w, http.StatusOK, value)
	}
}
