package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"areapulse/backend-go/internal/analytics"
	"areapulse/backend-go/internal/services"
)

func TestParseOptionalFloat(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/api/benchmark?your_hourly_rate=0&your_review_score=&bad=x", nil)

	v, err := parseOptionalFloat(r, "your_hourly_rate")
	require.NoError(t, err)
	require.NotNil(t, v, "explicit zero is a supplied value")
	assert.Equal(t, 0.0, *v)

	v, err = parseOptionalFloat(r, "your_review_score")
	require.NoError(t, err)
	assert.Nil(t, v)

	v, err = parseOptionalFloat(r, "missing")
	require.NoError(t, err)
	assert.Nil(t, v)

	_, err = parseOptionalFloat(r, "bad")
	assert.True(t, errors.Is(err, analytics.ErrInvalidInput))
}

func TestParseOptionalFloatRejectsNonFinite(t *testing.T) {
	for _, raw := range []string{"NaN", "nan", "Inf", "-Inf", "+Infinity"} {
		r := httptest.NewRequest(http.MethodGet, "/api/pricing?your_hourly_rate="+url.QueryEscape(raw), nil)
		v, err := parseOptionalFloat(r, "your_hourly_rate")
		assert.Nil(t, v, raw)
		assert.True(t, errors.Is(err, analytics.ErrInvalidInput), raw)

		_, err = parseFloatParam(r, "your_hourly_rate", 1)
		assert.True(t, errors.Is(err, analytics.ErrInvalidInput), raw)
	}
}

func TestParseDefaults(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/api/lead_score?est_job_value=750&horizon_days=14", nil)

	f, err := parseFloatParam(r, "est_job_value", analytics.DefaultEstJobValue)
	require.NoError(t, err)
	assert.Equal(t, 750.0, f)

	f, err = parseFloatParam(r, "your_review_score", analytics.DefaultReviewScore)
	require.NoError(t, err)
	assert.Equal(t, 4.3, f)

	n, err := parseIntParam(r, "horizon_days", analytics.DefaultHorizonDays)
	require.NoError(t, err)
	assert.Equal(t, 14, n)

	n, err = parseIntParam(httptest.NewRequest(http.MethodGet, "/", nil), "horizon_days", analytics.DefaultHorizonDays)
	require.NoError(t, err)
	assert.Equal(t, 30, n)
}

func TestWriteErrorStatus(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{eris.Wrap(services.ErrNotFound, "area \"ZZ\""), http.StatusNotFound},
		{eris.Wrap(analytics.ErrInvalidInput, "rate"), http.StatusBadRequest},
		{errors.New("redis down"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		rec := httptest.NewRecorder()
		writeError(rec, httptest.NewRequest(http.MethodGet, "/api/metrics?area_code=ZZ", nil), tc.err, nil)
		assert.Equal(t, tc.want, rec.Code, tc.err.Error())
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	}
}

func TestWriteErrorHidesInternalDetail(t *testing.T) {
	rec := httptest.NewRecorder()
	writeError(rec, httptest.NewRequest(http.MethodGet, "/api/marketing", nil), errors.New("dial tcp 10.0.0.5:6379"), nil)
	assert.JSONEq(t, `{"error":"internal"}`, rec.Body.String())
}
