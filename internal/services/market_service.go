package services

import (
	"context"

	"github.com/twpayne/go-geom/encoding/geojson"

	"areapulse/backend-go/internal/analytics"
	"areapulse/backend-go/internal/models"
	"areapulse/backend-go/internal/telemetry"
)

// MarketService turns catalog lookups and signal reads into dashboard
// responses. Competitor watch is the only method that mutates state.
type MarketService struct {
	catalog *Catalog
	signals SignalStore
	rnd     analytics.Rand
	metrics *telemetry.Metrics
}

func NewMarketService(cat *Catalog, signals SignalStore, rnd analytics.Rand, metrics *telemetry.Metrics) *MarketService {
	return &MarketService{catalog: cat, signals: signals, rnd: rnd, metrics: metrics}
}

func (s *MarketService) Catalog() *Catalog { return s.catalog }

func (s *MarketService) SignalsBackend() string { return s.signals.Backend() }

func (s *MarketService) Areas() []models.Area {
	return s.catalog.List()
}

func (s *MarketService) Heatmap() []models.HeatmapPoint {
	areas := s.catalog.List()
	out := make([]models.HeatmapPoint, 0, len(areas))
	for _, a := range areas {
		rec, _ := s.catalog.Get(a.Code)
		out = append(out, models.HeatmapPoint{a.Lat, a.Lng, analytics.Intensity(rec.Metrics.Demand, rec.Metrics.Competition)})
	}
	return out
}

func (s *MarketService) GeoJSON() *geojson.FeatureCollection {
	areas := s.catalog.List()
	fc := &geojson.FeatureCollection{Features: make([]*geojson.Feature, 0, len(areas))}
	for _, a := range areas {
		rec, _ := s.catalog.Get(a.Code)
		m := rec.Metrics
		fc.Features = append(fc.Features, &geojson.Feature{
			ID:       a.Code,
			Geometry: analytics.AreaSquare(a.Lat, a.Lng),
			Properties: map[string]interface{}{
				"area_code":        a.Code,
				"name":             a.Name,
				"demand":           m.Demand,
				"competition":      m.Competition,
				"avg_hourly_rate":  m.HourlyRate,
				"avg_review_score": m.ReviewScore,
				"close_rate":       m.CloseRatePct,
				"on_time":          m.OnTimePct,
				"avg_job_value":    m.AvgJobValue,
				"score":            m.Demand - m.Competition,
			},
		})
	}
	return fc
}

func (s *MarketService) competitorAvg(ctx context.Context, code string) (float64, error) {
	history, err := s.signals.History(ctx, code)
	if err != nil {
		return 0, err
	}
	return analytics.Mean(history), nil
}

func (s *MarketService) Metrics(ctx context.Context, code string) (models.MetricsResponse, error) {
	rec, err := s.catalog.Get(code)
	if err != nil {
		return models.MetricsResponse{}, err
	}
	compAvg, err := s.competitorAvg(ctx, code)
	if err != nil {
		return models.MetricsResponse{}, err
	}
	m := rec.Metrics
	return models.MetricsResponse{
		AreaCode:          code,
		DemandIndex:       m.Demand,
		CompetitionIndex:  m.Competition,
		AvgHourlyRate:     m.HourlyRate,
		AvgReviewScore:    m.ReviewScore,
		CloseRatePct:      m.CloseRatePct,
		OnTimePct:         m.OnTimePct,
		AvgJobValue:       m.AvgJobValue,
		CompetitorAvgRate: analytics.Round1(compAvg),
	}, nil
}

func (s *MarketService) Benchmark(code string, yourRate, yourReview *float64) (models.BenchmarkResponse, error) {
	rec, err := s.catalog.Get(code)
	if err != nil {
		return models.BenchmarkResponse{}, err
	}
	return models.BenchmarkResponse{
		AreaCode:   code,
		AreaAvg:    analytics.AreaAverages(rec.Metrics),
		YourVsArea: analytics.Benchmark(rec.Metrics, yourRate, yourReview),
	}, nil
}

func (s *MarketService) Insights(code string) (models.InsightsResponse, error) {
	rec, err := s.catalog.Get(code)
	if err != nil {
		return models.InsightsResponse{}, err
	}
	return models.InsightsResponse{AreaCode: code, Insights: analytics.Insights(rec.Metrics)}, nil
}

func (s *MarketService) Forecast(code string, horizonDays int) (models.ForecastResponse, error) {
	rec, err := s.catalog.Get(code)
	if err != nil {
		return models.ForecastResponse{}, err
	}
	points, err := analytics.Forecast(rec.Metrics.Demand, horizonDays, s.rnd)
	if err != nil {
		return models.ForecastResponse{}, err
	}
	return models.ForecastResponse{AreaCode: code, Points: points}, nil
}

// Pricing compares yourRate, or the area's average rate when nil, with the
// competitor window.
func (s *MarketService) Pricing(ctx context.Context, code string, yourRate *float64) (models.PricingResponse, error) {
	rec, err := s.catalog.Get(code)
	if err != nil {
		return models.PricingResponse{}, err
	}
	compAvg, err := s.competitorAvg(ctx, code)
	if err != nil {
		return models.PricingResponse{}, err
	}
	rate := rec.Metrics.HourlyRate
	if yourRate != nil {
		rate = *yourRate
	}
	recommendation, err := analytics.Pricing(rec.Metrics, rate, compAvg)
	if err != nil {
		return models.PricingResponse{}, err
	}
	return models.PricingResponse{AreaCode: code, Pricing: recommendation}, nil
}

func (s *MarketService) CompetitorWatch(ctx context.Context, code string) (models.CompetitorWatchResponse, error) {
	rec, err := s.catalog.Get(code)
	if err != nil {
		return models.CompetitorWatchResponse{}, err
	}
	price := analytics.SimulateCompetitorPrice(rec.Metrics.HourlyRate, s.rnd)
	prev, next, err := s.signals.Advance(ctx, code, price)
	if err != nil {
		return models.CompetitorWatchResponse{}, err
	}
	res := analytics.Watch(prev, next)
	if s.metrics != nil {
		s.metrics.SignalAdvances.WithLabelValues(code).Inc()
		if res.Alert != nil {
			direction := "increase"
			if res.Delta < 0 {
				direction = "decrease"
			}
			s.metrics.CompetitorAlerts.WithLabelValues(code, direction).Inc()
		}
	}
	return models.CompetitorWatchResponse{
		AreaCode: code,
		History:  res.History,
		Latest:   res.Latest,
		PrevAvg:  res.PrevAvg,
		Alert:    res.Alert,
	}, nil
}

func (s *MarketService) LeadScore(code string, estJobValue, reviewScore float64) (models.LeadScoreResponse, error) {
	rec, err := s.catalog.Get(code)
	if err != nil {
		return models.LeadScoreResponse{}, err
	}
	score, reasons := analytics.LeadScore(rec.Metrics, estJobValue, reviewScore)
	return models.LeadScoreResponse{AreaCode: code, LeadScore: score, Reasons: reasons}, nil
}

func (s *MarketService) Marketing(ctx context.Context) (models.MarketingResponse, error) {
	in := make([]analytics.MarketingInput, 0, s.catalog.Len())
	for _, code := range s.catalog.Codes() {
		rec, _ := s.catalog.Get(code)
		ad, err := s.signals.AdIntensity(ctx, code)
		if err != nil {
			return models.MarketingResponse{}, err
		}
		in = append(in, analytics.MarketingInput{AreaCode: code, Metrics: rec.Metrics, AdIntensity: ad})
	}
	return models.MarketingResponse{Ranking: analytics.RankMarketing(in)}, nil
}
