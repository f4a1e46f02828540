package analytics

import "areapulse/backend-go/internal/models"

func AreaAverages(m models.BaseMetrics) models.AreaAverages {
	return models.AreaAverages{
		HourlyRate:   m.HourlyRate,
		ReviewScore:  m.ReviewScore,
		CloseRatePct: m.CloseRatePct,
		OnTimePct:    m.OnTimePct,
		AvgJobValue:  m.AvgJobValue,
	}
}

// Benchmark compares the caller's own figures with the area averages. A nil
// input leaves the matching diff unset.
func Benchmark(m models.BaseMetrics, yourRate, yourReview *float64) models.BenchmarkDiff {
	var diff models.BenchmarkDiff
	if yourRate != nil {
		d := *yourRate - m.HourlyRate
		diff.HourlyRateDiff = &d
	}
	if yourReview != nil {
		d := *yourReview - m.ReviewScore
		diff.ReviewScoreDiff = &d
	}
	return diff
}

const (
	tipPremium    = "Premium pricing area; test discounts or bundle packing."
	tipBoostAds   = "High demand + low competition; boost ads here."
	tipReviewAuto = "Reviews under 4.5★; automate post-job review requests."
)

func Insights(m models.BaseMetrics) []string {
	tips := []string{}
	if m.HourlyRate > 100 {
		tips = append(tips, tipPremium)
	}
	if m.Demand > 70 && m.Competition < 50 {
		tips = append(tips, tipBoostAds)
	}
	if m.ReviewScore < 4.5 {
		tips = append(tips, tipReviewAuto)
	}
	return tips
}
