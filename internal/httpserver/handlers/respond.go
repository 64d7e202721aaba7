package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/schemehub/schemehub/internal/apperr"
	"github.com/schemehub/schemehub/internal/logger"
)

type messageResponse struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// writeError maps an application error to its HTTP status and client-safe
// message. Internal details are logged server-side only.
func writeError(w http.ResponseWriter, log logger.Logger, err error) {
	kind := apperr.KindOf(err)
	status := apperr.HTTPStatus(kind)
	switch {
	case kind == apperr.KindUnavailable:
		// Retryable: the catalog has not loaded yet, or a dependency is down.
		w.Header().Set("Retry-After", "5")
		log.Warn("request deferred", logger.Error(err))
	case status >= http.StatusInternalServerError:
		log.Error("request failed", logger.Error(err))
	default:
		log.Debug("request rejected", logger.Error(err))
	}
	writeJSON(w, status, messageResponse{Message: apperr.ClientMessage(err)})
}
