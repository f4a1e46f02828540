package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Metrics holds the Prometheus collectors exposed on /metrics.
type Metrics struct {
	Registry *prometheus.Registry

	RequestDuration  *prometheus.HistogramVec
	Requests         *prometheus.CounterVec
	RateLimited      prometheus.Counter
	CompetitorAlerts *prometheus.CounterVec
	SignalAdvances   *prometheus.CounterVec
}

func New() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		RequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "areapulse_http_request_duration_seconds",
				Help:    "HTTP request latency by route",
				Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
			},
			[]string{"route", "method"},
		),
		Requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "areapulse_http_requests_total",
				Help: "HTTP requests by route and status code",
			},
			[]string{"route", "method", "status"},
		),
		RateLimited: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "areapulse_http_rate_limited_total",
				Help: "Requests rejected by the per-client rate limiter",
			},
		),
		CompetitorAlerts: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "areapulse_competitor_alerts_total",
				Help: "Competitor price alerts raised by area and direction",
			},
			[]string{"area_code", "direction"},
		),
		SignalAdvances: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "areapulse_signal_advances_total",
				Help: "Competitor price window advances by area",
			},
			[]string{"area_code"},
		),
	}
	m.Registry.MustRegister(
		m.RequestDuration,
		m.Requests,
		m.RateLimited,
		m.CompetitorAlerts,
		m.SignalAdvances,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}
