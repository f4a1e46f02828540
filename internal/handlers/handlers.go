package handlers

import (
	"encoding/json"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"areapulse/backend-go/internal/analytics"
	"areapulse/backend-go/internal/services"
)

type API struct {
	svc     *services.MarketService
	log     *zap.Logger
	version string
}

func New(svc *services.MarketService, log *zap.Logger, version string) *API {
	return &API{svc: svc, log: log, version: version}
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// requireAreaCode reads area_code and writes a 400 when it is missing.
func requireAreaCode(w http.ResponseWriter, r *http.Request) (string, bool) {
	code := strings.TrimSpace(r.URL.Query().Get("area_code"))
	if code == "" {
		writeError(w, r, eris.Wrap(analytics.ErrInvalidInput, "area_code is required"), nil)
		return "", false
	}
	return code, true
}

// parseOptionalFloat returns nil when the parameter is absent. Any supplied
// finite value, zero included, counts as provided.
func parseOptionalFloat(r *http.Request, name string) (*float64, error) {
	raw, ok := r.URL.Query()[name]
	if !ok || len(raw) == 0 || strings.TrimSpace(raw[0]) == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(raw[0]), 64)
	if err != nil {
		return nil, eris.Wrapf(analytics.ErrInvalidInput, "%s must be a number", name)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil, eris.Wrapf(analytics.ErrInvalidInput, "%s must be finite", name)
	}
	return &v, nil
}

func parseFloatParam(r *http.Request, name string, def float64) (float64, error) {
	v, err := parseOptionalFloat(r, name)
	if err != nil {
		return 0, err
	}
	if v == nil {
		return def, nil
	}
	return *v, nil
}

func parseIntParam(r *http.Request, name string, def int) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, eris.Wrapf(analytics.ErrInvalidInput, "%s must be an integer", name)
	}
	return v, nil
}

func nowISO() string {
	return time.Now().UTC().Format(time.RFC3339)
}
