package analytics

import (
	"math"

	"github.com/rotisserie/eris"

	"areapulse/backend-go/internal/models"
)

const (
	DefaultHorizonDays = 30
	MaxHorizonDays     = 365

	weeklyAmplitude = 5.0
	trendPer60Days  = 3.0
	forecastNoise   = 2.0
)

// Forecast projects daily demand from the base index with a weekly cycle, a
// slow upward trend and uniform noise drawn from r.
func Forecast(baseDemand float64, horizonDays int, r Rand) ([]models.ForecastPoint, error) {
	if horizonDays < 1 || horizonDays > MaxHorizonDays {
		return nil, eris.Wrapf(ErrInvalidInput, "horizon_days must be within [1, %d], got %d", MaxHorizonDays, horizonDays)
	}
	out := make([]models.ForecastPoint, 0, horizonDays)
	for i := 0; i < horizonDays; i++ {
		k := float64(i)
		seasonal := weeklyAmplitude * math.Sin(2*math.Pi*k/7)
		trend := trendPer60Days * k / 60
		noise := uniform(r, -forecastNoise, forecastNoise)
		val := clamp(baseDemand+seasonal+trend+noise, 0, 100)
		out = append(out, models.ForecastPoint{Day: i + 1, ForecastDemand: Round1(val)})
	}
	return out, nil
}
