package handlers

import (
	"net/http"

	"areapulse/backend-go/internal/analytics"
)

func (a *API) Forecast(w http.ResponseWriter, r *http.Request) {
	code, ok := requireAreaCode(w, r)
	if !ok {
		return
	}
	horizon, err := parseIntParam(r, "horizon_days", analytics.DefaultHorizonDays)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	resp, err := a.svc.Forecast(code, horizon)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}
