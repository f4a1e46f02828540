package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"areapulse/backend-go/internal/config"
	"areapulse/backend-go/internal/handlers"
	"areapulse/backend-go/internal/services"
	"areapulse/backend-go/internal/telemetry"
)

func NewRouter(cfg *config.Config, svc *services.MarketService, m *telemetry.Metrics, log *zap.Logger, version string) http.Handler {
	api := handlers.New(svc, log, version)

	origins := cfg.CORS.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "Authorization", requestIDHeader},
		ExposedHeaders: []string{requestIDHeader},
		MaxAge:         300,
	}))
	r.Use(withRateLimit(cfg.RateLimit.PerMin, cfg.RateLimit.Burst, m))
	r.Use(withRequestID)
	r.Use(withLogging(log, m))
	r.Use(withRecovery(log))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"not_found","detail":"unknown route"}`))
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", api.Health)
		r.Get("/areas", api.Areas)
		r.Get("/geojson", api.GeoJSON)
		r.Get("/heatmap", api.Heatmap)
		r.Get("/metrics", api.Metrics)
		r.Get("/benchmark", api.Benchmark)
		r.Get("/insights", api.Insights)
		r.Get("/forecast", api.Forecast)
		r.Get("/pricing", api.Pricing)
		r.Get("/competitor_watch", api.CompetitorWatch)
		r.Get("/lead_score", api.LeadScore)
		r.Get("/marketing", api.Marketing)
	})
	if m != nil {
		r.Handle("/metrics", promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{}))
	}
	return r
}
