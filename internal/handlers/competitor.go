package handlers

import (
	"net/http"

	"go.uber.org/zap"
)

// CompetitorWatch advances the area's simulated price window on every call.
func (a *API) CompetitorWatch(w http.ResponseWriter, r *http.Request) {
	code, ok := requireAreaCode(w, r)
	if !ok {
		return
	}
	resp, err := a.svc.CompetitorWatch(r.Context(), code)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	if resp.Alert != nil && a.log != nil {
		a.log.Info("competitor alert", zap.String("area_code", code), zap.Int("latest", resp.Latest), zap.String("alert", *resp.Alert))
	}
	writeJSON(w, http.StatusOK, resp)
}
