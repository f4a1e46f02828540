package handlers

import (
	"net/http"

	"areapulse/backend-go/internal/models"
)

func (a *API) Health(w http.ResponseWriter, r *http.Request) {
	resp := models.HealthResponse{
		Ok:             true,
		TsISO:          nowISO(),
		Service:        "areapulse",
		Version:        a.version,
		SignalsBackend: a.svc.SignalsBackend(),
		Areas:          a.svc.Catalog().Len(),
	}
	writeJSON(w, http.StatusOK, resp)
}
