package analytics

import "fmt"

const (
	HistoryLen     = 6
	MinCompPrice   = 60
	MaxCompPrice   = 150
	AlertDelta     = 10
	MinAdIntensity = 30
	MaxAdIntensity = 85

	priceJitter = 15
)

// SimulateCompetitorPrice draws one competitor price around the area's base
// rate.
func SimulateCompetitorPrice(baseRate float64, r Rand) int {
	p := int(baseRate) + randInt(r, -priceJitter, priceJitter)
	return clampInt(p, MinCompPrice, MaxCompPrice)
}

func SeedHistory(baseRate float64, r Rand) []int {
	out := make([]int, HistoryLen)
	for i := range out {
		out[i] = SimulateCompetitorPrice(baseRate, r)
	}
	return out
}

func SeedAdIntensity(r Rand) int {
	return randInt(r, MinAdIntensity, MaxAdIntensity)
}

// ShiftWindow drops the oldest price and appends next, keeping the window
// length.
func ShiftWindow(prev []int, next int) []int {
	out := make([]int, 0, len(prev))
	if len(prev) > 0 {
		out = append(out, prev[1:]...)
	}
	return append(out, next)
}

type WatchResult struct {
	History []int
	Latest  int
	PrevAvg float64
	Delta   int
	Alert   *string
}

// Watch summarises one window advance. prev is the window before the shift
// and next the window after it.
func Watch(prev, next []int) WatchResult {
	latest := next[len(next)-1]
	res := WatchResult{History: next, Latest: latest}
	if len(prev) == 0 {
		return res
	}
	res.PrevAvg = Round1(Mean(prev[1:]))
	res.Delta = latest - prev[len(prev)-1]
	if abs(res.Delta) >= AlertDelta {
		direction := "increase"
		if res.Delta < 0 {
			direction = "decrease"
		}
		msg := fmt.Sprintf("Competitor price %s of £%d detected.", direction, abs(res.Delta))
		res.Alert = &msg
	}
	return res
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
