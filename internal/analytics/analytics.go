// Package analytics holds the pure computations behind the dashboard
// endpoints. Nothing here touches shared state; randomness is passed in.
package analytics

import (
	"math"
	"math/rand/v2"

	"github.com/rotisserie/eris"
)

var ErrInvalidInput = eris.New("invalid input")

// Rand is the subset of *rand.Rand the simulations draw from.
type Rand interface {
	IntN(n int) int
	Float64() float64
}

type globalRand struct{}

func (globalRand) IntN(n int) int   { return rand.IntN(n) }
func (globalRand) Float64() float64 { return rand.Float64() }

// NewRand returns a seeded source for seed != 0 and the goroutine-safe
// package-level source otherwise. A seeded source must not be shared
// between goroutines without a lock; see LockedRand.
func NewRand(seed uint64) Rand {
	if seed == 0 {
		return globalRand{}
	}
	return NewLockedRand(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
}

// randInt returns a uniform integer in [lo, hi].
func randInt(r Rand, lo, hi int) int {
	return lo + r.IntN(hi-lo+1)
}

// uniform returns a uniform float in [lo, hi).
func uniform(r Rand, lo, hi float64) float64 {
	return lo + (hi-lo)*r.Float64()
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func clampInt(v, lo, hi int) int {
	return max(lo, min(hi, v))
}

// Round1 rounds to one decimal place.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func Mean(vals []int) float64 {
	if len(vals) == 0 {
		return 0
	}
	sum := 0
	for _, v := range vals {
		sum += v
	}
	return float64(sum) / float64(len(vals))
}

// Intensity maps the demand/competition gap onto [0,1] for the heat overlay.
func Intensity(demand, competition float64) float64 {
	return clamp((demand-competition+50)/100, 0, 1)
}
