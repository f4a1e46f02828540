package handlers

import (
	"net/http"

	"areapulse/backend-go/internal/analytics"
)

func (a *API) Metrics(w http.ResponseWriter, r *http.Request) {
	code, ok := requireAreaCode(w, r)
	if !ok {
		return
	}
	resp, err := a.svc.Metrics(r.Context(), code)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (a *API) Benchmark(w http.ResponseWriter, r *http.Request) {
	code, ok := requireAreaCode(w, r)
	if !ok {
		return
	}
	yourRate, err := parseOptionalFloat(r, "your_hourly_rate")
	if err != nil {
		a.fail(w, r, err)
		return
	}
	yourReview, err := parseOptionalFloat(r, "your_review_score")
	if err != nil {
		a.fail(w, r, err)
		return
	}
	resp, err := a.svc.Benchmark(code, yourRate, yourReview)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (a *API) Insights(w http.ResponseWriter, r *http.Request) {
	code, ok := requireAreaCode(w, r)
	if !ok {
		return
	}
	resp, err := a.svc.Insights(code)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (a *API) Pricing(w http.ResponseWriter, r *http.Request) {
	code, ok := requireAreaCode(w, r)
	if !ok {
		return
	}
	yourRate, err := parseOptionalFloat(r, "your_hourly_rate")
	if err != nil {
		a.fail(w, r, err)
		return
	}
	resp, err := a.svc.Pricing(r.Context(), code, yourRate)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (a *API) LeadScore(w http.ResponseWriter, r *http.Request) {
	code, ok := requireAreaCode(w, r)
	if !ok {
		return
	}
	jobValue, err := parseFloatParam(r, "est_job_value", analytics.DefaultEstJobValue)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	review, err := parseFloatParam(r, "your_review_score", analytics.DefaultReviewScore)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	resp, err := a.svc.LeadScore(code, jobValue, review)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}
