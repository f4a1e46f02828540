package handlers

import (
	"errors"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"areapulse/backend-go/internal/analytics"
	"areapulse/backend-go/internal/models"
	"areapulse/backend-go/internal/services"
)

// writeError maps domain errors onto status codes. Unknown errors are
// logged and reported as internal without leaking detail.
func writeError(w http.ResponseWriter, r *http.Request, err error, log *zap.Logger) {
	code := strings.TrimSpace(r.URL.Query().Get("area_code"))
	switch {
	case errors.Is(err, services.ErrNotFound):
		writeJSON(w, http.StatusNotFound, models.ErrorResponse{Error: "not_found", Detail: err.Error(), AreaCode: code})
	case errors.Is(err, analytics.ErrInvalidInput):
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "invalid_input", Detail: err.Error(), AreaCode: code})
	default:
		if log != nil {
			log.Error("request failed", zap.String("path", r.URL.Path), zap.Error(err))
		}
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "internal"})
	}
}

func (a *API) fail(w http.ResponseWriter, r *http.Request, err error) {
	writeError(w, r, err, a.log)
}
