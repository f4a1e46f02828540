package handlers

import "net/http"

func (a *API) Areas(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, a.svc.Areas())
}

func (a *API) GeoJSON(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, a.svc.GeoJSON())
}

func (a *API) Heatmap(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, a.svc.Heatmap())
}

func (a *API) Marketing(w http.ResponseWriter, r *http.Request) {
	resp, err := a.svc.Marketing(r.Context())
	if err != nil {
		a.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}
