package analytics

import (
	"math/rand/v2"
	"testing"

	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"areapulse/backend-go/internal/models"
)

// seqRand replays fixed draws so simulations are exact.
type seqRand struct {
	ints   []int
	floats []float64
}

func (s *seqRand) IntN(n int) int {
	v := s.ints[0]
	s.ints = s.ints[1:]
	if v >= n {
		panic("seqRand: draw out of range")
	}
	return v
}

func (s *seqRand) Float64() float64 {
	v := s.floats[0]
	s.floats = s.floats[1:]
	return v
}

type constRand float64

func (c constRand) IntN(n int) int   { return int(float64(n) * float64(c)) }
func (c constRand) Float64() float64 { return float64(c) }

var southwark = models.BaseMetrics{Demand: 73, Competition: 47, HourlyRate: 102, ReviewScore: 4.4, CloseRatePct: 31, OnTimePct: 93, AvgJobValue: 560}

func TestIntensityBounds(t *testing.T) {
	cases := []struct {
		d, c float64
		want float64
	}{
		{80, 52, 0.78},
		{0, 100, 0},
		{100, 0, 1},
		{50, 50, 0.5},
		{-1e9, 1e9, 0},
		{1e9, -1e9, 1},
	}
	for _, tc := range cases {
		assert.InDelta(t, tc.want, Intensity(tc.d, tc.c), 1e-9, "d=%v c=%v", tc.d, tc.c)
	}
}

func TestIntensityMonotone(t *testing.T) {
	for c := -20.0; c <= 120; c += 7 {
		prev := -1.0
		for d := -20.0; d <= 120; d += 3 {
			got := Intensity(d, c)
			assert.GreaterOrEqual(t, got, prev)
			assert.GreaterOrEqual(t, got, 0.0)
			assert.LessOrEqual(t, got, 1.0)
			prev = got
		}
	}
	for d := -20.0; d <= 120; d += 7 {
		prev := 2.0
		for c := -20.0; c <= 120; c += 3 {
			got := Intensity(d, c)
			assert.LessOrEqual(t, got, prev)
			prev = got
		}
	}
}

func TestBenchmarkOptionalInputs(t *testing.T) {
	diff := Benchmark(southwark, nil, nil)
	assert.Nil(t, diff.HourlyRateDiff)
	assert.Nil(t, diff.ReviewScoreDiff)

	rate, review := 110.0, 0.0
	diff = Benchmark(southwark, &rate, &review)
	require.NotNil(t, diff.HourlyRateDiff)
	require.NotNil(t, diff.ReviewScoreDiff)
	assert.InDelta(t, 8, *diff.HourlyRateDiff, 1e-9)
	assert.InDelta(t, -4.4, *diff.ReviewScoreDiff, 1e-9)
}

func TestInsights(t *testing.T) {
	assert.Equal(t, []string{tipPremium, tipBoostAds, tipReviewAuto}, Insights(southwark))

	paddington := models.BaseMetrics{Demand: 68, Competition: 60, HourlyRate: 95, ReviewScore: 4.6}
	assert.Empty(t, Insights(paddington))
	assert.NotNil(t, Insights(paddington))
}

func TestForecastShapeAndBounds(t *testing.T) {
	r := rand.New(rand.NewPCG(7, 11))
	for _, base := range []float64{0, 1, 62, 80, 99, 100} {
		pts, err := Forecast(base, 30, r)
		require.NoError(t, err)
		require.Len(t, pts, 30)
		for i, p := range pts {
			assert.Equal(t, i+1, p.Day)
			assert.GreaterOrEqual(t, p.ForecastDemand, 0.0)
			assert.LessOrEqual(t, p.ForecastDemand, 100.0)
		}
	}
}

func TestForecastExactWithMidpointNoise(t *testing.T) {
	// Float64() == 0.5 makes the noise term zero.
	pts, err := Forecast(70, 8, constRand(0.5))
	require.NoError(t, err)
	assert.Equal(t, 70.0, pts[0].ForecastDemand)
	// day 7: k=6, 5*sin(12π/7) = -3.9092, trend 0.3
	assert.InDelta(t, 66.4, pts[6].ForecastDemand, 1e-9)
	// day 3: k=2, 5*sin(4π/7) = 4.8746, trend 0.1
	assert.InDelta(t, 75.0, pts[2].ForecastDemand, 1e-9)
}

func TestForecastSeededIsReproducible(t *testing.T) {
	a, err := Forecast(65, 14, rand.New(rand.NewPCG(1, 2)))
	require.NoError(t, err)
	b, err := Forecast(65, 14, rand.New(rand.NewPCG(1, 2)))
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestForecastRejectsHorizon(t *testing.T) {
	for _, h := range []int{0, -3, MaxHorizonDays + 1} {
		_, err := Forecast(70, h, constRand(0.5))
		assert.True(t, eris.Is(err, ErrInvalidInput), "horizon %d", h)
	}
}

func TestPricing(t *testing.T) {
	// pressure 0.26, target 100*(1+0.039) = 103.9, change (103.9-102)/102
	rec, err := Pricing(southwark, 102, 100)
	require.NoError(t, err)
	assert.Equal(t, 102.0, rec.CurrentRate)
	assert.Equal(t, 100.0, rec.CompetitorAvgRate)
	assert.InDelta(t, 103.9, rec.RecommendedRate, 1e-9)
	assert.InDelta(t, 1.9, rec.ChangePct, 1e-9)
	assert.Equal(t, rationalePremium, rec.Rationale)

	flat := models.BaseMetrics{Demand: 50, Competition: 60}
	rec, err = Pricing(flat, 100, 100)
	require.NoError(t, err)
	assert.InDelta(t, 98.5, rec.RecommendedRate, 1e-9)
	assert.InDelta(t, -1.5, rec.ChangePct, 1e-9)
	assert.Equal(t, rationaleAlign, rec.Rationale)
}

func TestPricingZeroRateIsInvalidInput(t *testing.T) {
	_, err := Pricing(southwark, 0, 100)
	require.Error(t, err)
	assert.True(t, eris.Is(err, ErrInvalidInput))

	_, err = Pricing(southwark, -5, 100)
	assert.True(t, eris.Is(err, ErrInvalidInput))
}

func TestSimulateCompetitorPriceClamps(t *testing.T) {
	// IntN(31) == 0 → -15, IntN(31) == 30 → +15
	assert.Equal(t, 87, SimulateCompetitorPrice(102, &seqRand{ints: []int{0}}))
	assert.Equal(t, 117, SimulateCompetitorPrice(102, &seqRand{ints: []int{30}}))
	assert.Equal(t, MinCompPrice, SimulateCompetitorPrice(50, &seqRand{ints: []int{0}}))
	assert.Equal(t, MaxCompPrice, SimulateCompetitorPrice(145, &seqRand{ints: []int{30}}))

	r := rand.New(rand.NewPCG(3, 4))
	for i := 0; i < 500; i++ {
		p := SimulateCompetitorPrice(98, r)
		assert.GreaterOrEqual(t, p, 83)
		assert.LessOrEqual(t, p, 113)
	}
}

func TestSeedHistoryAndAdIntensity(t *testing.T) {
	r := rand.New(rand.NewPCG(5, 6))
	h := SeedHistory(110, r)
	assert.Len(t, h, HistoryLen)
	for i := 0; i < 200; i++ {
		ad := SeedAdIntensity(r)
		assert.GreaterOrEqual(t, ad, MinAdIntensity)
		assert.LessOrEqual(t, ad, MaxAdIntensity)
	}
}

func TestShiftWindowKeepsLength(t *testing.T) {
	prev := []int{90, 95, 100, 105, 110, 115}
	next := ShiftWindow(prev, 120)
	assert.Equal(t, []int{95, 100, 105, 110, 115, 120}, next)
	assert.Equal(t, []int{90, 95, 100, 105, 110, 115}, prev)
}

func TestWatchAlert(t *testing.T) {
	prev := []int{90, 95, 100, 105, 110, 100}
	next := ShiftWindow(prev, 112)
	res := Watch(prev, next)
	assert.Equal(t, 112, res.Latest)
	assert.Equal(t, 12, res.Delta)
	assert.InDelta(t, 102.0, res.PrevAvg, 1e-9)
	require.NotNil(t, res.Alert)
	assert.Equal(t, "Competitor price increase of £12 detected.", *res.Alert)

	res = Watch(prev, ShiftWindow(prev, 90))
	require.NotNil(t, res.Alert)
	assert.Equal(t, "Competitor price decrease of £10 detected.", *res.Alert)

	res = Watch(prev, ShiftWindow(prev, 109))
	assert.Equal(t, 9, res.Delta)
	assert.Nil(t, res.Alert)
}

func TestLeadScore(t *testing.T) {
	// v_norm 44.44, demand 76, review 3 → 22.22+22.8+0.6 = 45.6
	score, reasons := LeadScore(southwark, 500, 4.3)
	assert.InDelta(t, 45.6, score, 1e-9)
	assert.Equal(t, []string{reasonDemand}, reasons)

	score, reasons = LeadScore(southwark, 5000, 4.8)
	// v clamps to 1000 → 50 + 22.8 + 1.6
	assert.InDelta(t, 74.4, score, 1e-9)
	assert.Equal(t, []string{reasonJobValue, reasonDemand, reasonReputation}, reasons)

	weak := models.BaseMetrics{Demand: 0, Competition: 100}
	score, reasons = LeadScore(weak, 10, 0)
	assert.Equal(t, 0.0, score)
	assert.Empty(t, reasons)
}

func TestRankMarketing(t *testing.T) {
	in := []MarketingInput{
		{AreaCode: "A", Metrics: models.BaseMetrics{Demand: 80, Competition: 52}, AdIntensity: 60},
		{AreaCode: "B", Metrics: models.BaseMetrics{Demand: 62, Competition: 42}, AdIntensity: 40},
		{AreaCode: "C", Metrics: models.BaseMetrics{Demand: 50, Competition: 60}, AdIntensity: 70},
		{AreaCode: "D", Metrics: models.BaseMetrics{Demand: 70, Competition: 42}, AdIntensity: 60},
	}
	ranked := RankMarketing(in)
	require.Len(t, ranked, 4)
	assert.Equal(t, "B", ranked[0].AreaCode)
	assert.Equal(t, 30.0, ranked[0].RoiProxy)
	// A and D tie on 18; input order wins
	assert.Equal(t, "A", ranked[1].AreaCode)
	assert.Equal(t, "D", ranked[2].AreaCode)
	assert.Equal(t, 18.0, ranked[1].RoiProxy)
	assert.Equal(t, "C", ranked[3].AreaCode)
	assert.Equal(t, -30.0, ranked[3].RoiProxy)
	assert.Equal(t, "Reduce", ranked[3].SuggestedAction)
	assert.Equal(t, "Increase", ranked[0].SuggestedAction)
	assert.Equal(t, "Demand 62 vs Comp 42; Ad intensity 40", ranked[0].Note)

	for i := 1; i < len(ranked); i++ {
		assert.GreaterOrEqual(t, ranked[i-1].RoiProxy, ranked[i].RoiProxy)
	}
}

func TestAreaSquare(t *testing.T) {
	poly := AreaSquare(51.5, -0.1)
	require.Equal(t, 1, poly.NumLinearRings())
	coords := poly.Coords()[0]
	require.Len(t, coords, 5)
	assert.Equal(t, coords[0], coords[4])
	assert.InDelta(t, -0.12, coords[0].X(), 1e-9)
	assert.InDelta(t, 51.49, coords[0].Y(), 1e-9)
	assert.InDelta(t, -0.08, coords[2].X(), 1e-9)
	assert.InDelta(t, 51.51, coords[2].Y(), 1e-9)
}

func TestNewRand(t *testing.T) {
	assert.IsType(t, globalRand{}, NewRand(0))
	a, b := NewRand(9), NewRand(9)
	for i := 0; i < 10; i++ {
		assert.Equal(t, a.IntN(1000), b.IntN(1000))
	}
}
