package analytics

import (
	"github.com/rotisserie/eris"

	"areapulse/backend-go/internal/models"
)

const (
	pricingSensitivity = 0.15

	rationalePremium = "High demand and/or lower competition allows a premium; aligned towards competitor average."
	rationaleAlign   = "Lower demand or higher competition suggests staying closer to competitor average."
)

// Pricing nudges the competitor average up or down by market pressure and
// reports the gap to yourRate.
func Pricing(m models.BaseMetrics, yourRate, compAvg float64) (models.PricingRecommendation, error) {
	if yourRate <= 0 {
		return models.PricingRecommendation{}, eris.Wrapf(ErrInvalidInput, "hourly rate must be positive, got %v", yourRate)
	}
	pressure := (m.Demand - m.Competition) / 100
	target := compAvg * (1 + pricingSensitivity*pressure)
	changePct := (target - yourRate) / yourRate * 100

	rationale := rationaleAlign
	if pressure > 0 {
		rationale = rationalePremium
	}
	return models.PricingRecommendation{
		CurrentRate:       yourRate,
		CompetitorAvgRate: Round1(compAvg),
		RecommendedRate:   Round1(target),
		ChangePct:         Round1(changePct),
		Rationale:         rationale,
	}, nil
}
