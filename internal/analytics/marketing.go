package analytics

import (
	"fmt"
	"sort"

	"areapulse/backend-go/internal/models"
)

type MarketingInput struct {
	AreaCode    string
	Metrics     models.BaseMetrics
	AdIntensity int
}

func RoiProxy(m models.BaseMetrics, adIntensity int) float64 {
	return (m.Demand - m.Competition) - float64(adIntensity-50)
}

// RankMarketing orders areas by ROI proxy, highest first. Equal scores keep
// input order.
func RankMarketing(in []MarketingInput) []models.MarketingEntry {
	ranked := make([]models.MarketingEntry, 0, len(in))
	for _, a := range in {
		roi := RoiProxy(a.Metrics, a.AdIntensity)
		action := "Reduce"
		if roi > 0 {
			action = "Increase"
		}
		ranked = append(ranked, models.MarketingEntry{
			AreaCode:        a.AreaCode,
			RoiProxy:        Round1(roi),
			SuggestedAction: action,
			Note:            fmt.Sprintf("Demand %g vs Comp %g; Ad intensity %d", a.Metrics.Demand, a.Metrics.Competition, a.AdIntensity),
		})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].RoiProxy > ranked[j].RoiProxy
	})
	return ranked
}
