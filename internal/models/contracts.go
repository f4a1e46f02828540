package models

type Area struct {
	Code string  `json:"code"`
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lng  float64 `json:"lng"`
}

type BaseMetrics struct {
	Demand       float64 `json:"demand"`
	Competition  float64 `json:"competition"`
	HourlyRate   float64 `json:"hourly_rate"`
	ReviewScore  float64 `json:"review_score"`
	CloseRatePct float64 `json:"close_rate_pct"`
	OnTimePct    float64 `json:"on_time_pct"`
	AvgJobValue  float64 `json:"avg_job_value"`
}

type AreaRecord struct {
	Area
	Metrics BaseMetrics
}

type HealthResponse struct {
	Ok             bool   `json:"ok"`
	TsISO          string `json:"tsISO"`
	Service        string `json:"service"`
	Version        string `json:"version"`
	SignalsBackend string `json:"signals_backend"`
	Areas          int    `json:"areas"`
}

type MetricsResponse struct {
	AreaCode          string  `json:"area_code"`
	DemandIndex       float64 `json:"demand_index"`
	CompetitionIndex  float64 `json:"competition_index"`
	AvgHourlyRate     float64 `json:"avg_hourly_rate"`
	AvgReviewScore    float64 `json:"avg_review_score"`
	CloseRatePct      float64 `json:"close_rate_pct"`
	OnTimePct         float64 `json:"on_time_pct"`
	AvgJobValue       float64 `json:"avg_job_value"`
	CompetitorAvgRate float64 `json:"competitor_avg_rate"`
}

type AreaAverages struct {
	HourlyRate   float64 `json:"hourly_rate"`
	ReviewScore  float64 `json:"review_score"`
	CloseRatePct float64 `json:"close_rate_pct"`
	OnTimePct    float64 `json:"on_time_pct"`
	AvgJobValue  float64 `json:"avg_job_value"`
}

// BenchmarkDiff fields are nil when the caller did not supply a value.
type BenchmarkDiff struct {
	HourlyRateDiff  *float64 `json:"hourly_rate_diff"`
	ReviewScoreDiff *float64 `json:"review_score_diff"`
}

type BenchmarkResponse struct {
	AreaCode   string        `json:"area_code"`
	AreaAvg    AreaAverages  `json:"area_avg"`
	YourVsArea BenchmarkDiff `json:"your_vs_area"`
}

type InsightsResponse struct {
	AreaCode string   `json:"area_code"`
	Insights []string `json:"insights"`
}

type ForecastPoint struct {
	Day            int     `json:"day"`
	ForecastDemand float64 `json:"forecast_demand"`
}

type ForecastResponse struct {
	AreaCode string          `json:"area_code"`
	Points   []ForecastPoint `json:"points"`
}

type PricingRecommendation struct {
	CurrentRate       float64 `json:"current_rate"`
	CompetitorAvgRate float64 `json:"competitor_avg_rate"`
	RecommendedRate   float64 `json:"recommended_rate"`
	ChangePct         float64 `json:"change_pct"`
	Rationale         string  `json:"rationale"`
}

type PricingResponse struct {
	AreaCode string                `json:"area_code"`
	Pricing  PricingRecommendation `json:"pricing"`
}

type CompetitorWatchResponse struct {
	AreaCode string  `json:"area_code"`
	History  []int   `json:"history"`
	Latest   int     `json:"latest"`
	PrevAvg  float64 `json:"prev_avg"`
	Alert    *string `json:"alert"`
}

type LeadScoreResponse struct {
	AreaCode  string   `json:"area_code"`
	LeadScore float64  `json:"lead_score"`
	Reasons   []string `json:"reasons"`
}

type MarketingEntry struct {
	AreaCode        string  `json:"area_code"`
	RoiProxy        float64 `json:"roi_proxy"`
	SuggestedAction string  `json:"suggested_action"`
	Note            string  `json:"note"`
}

type MarketingResponse struct {
	Ranking []MarketingEntry `json:"ranking"`
}

// HeatmapPoint encodes as a [lat, lng, intensity] triple.
type HeatmapPoint [3]float64

type ErrorResponse struct {
	Error    string `json:"error"`
	Detail   string `json:"detail,omitempty"`
	AreaCode string `json:"area_code,omitempty"`
}
