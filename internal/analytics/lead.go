package analytics

import "areapulse/backend-go/internal/models"

const (
	DefaultEstJobValue = 500.0
	DefaultReviewScore = 4.3

	minJobValue = 100.0
	maxJobValue = 1000.0

	weightJobValue = 0.5
	weightDemand   = 0.3
	weightReview   = 0.2

	reasonJobValue   = "High potential job value."
	reasonDemand     = "Favorable demand vs competition."
	reasonReputation = "Strong reputation fit."
)

// LeadScore rates a prospective job 0-100 from its value, the area's
// demand/competition gap and the provider's review score.
func LeadScore(m models.BaseMetrics, estJobValue, reviewScore float64) (float64, []string) {
	v := clamp(estJobValue, minJobValue, maxJobValue)
	vNorm := (v - minJobValue) / (maxJobValue - minJobValue) * 100
	demandSignal := m.Demand - m.Competition + 50
	reviewBonus := (reviewScore - 4.0) * 10
	score := clamp(weightJobValue*vNorm+weightDemand*demandSignal+weightReview*reviewBonus, 0, 100)

	reasons := []string{}
	if v > 600 {
		reasons = append(reasons, reasonJobValue)
	}
	if m.Demand > m.Competition {
		reasons = append(reasons, reasonDemand)
	}
	if reviewScore >= 4.5 {
		reasons = append(reasons, reasonReputation)
	}
	return Round1(score), reasons
}
