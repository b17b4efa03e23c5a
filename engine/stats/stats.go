// Package stats reduces a dice-sum distribution to the summary shown for a
// check: success chance, mean, spread, range and the outcome histogram.
package stats

import (
	"math"

	"github.com/nathoo/dicepool/engine/dist"
	"github.com/nathoo/dicepool/types"
)

// Reduce computes the simulation summary for pdf with flatModifier added to
// every dice sum. Only non-positive entries are ignored: a large pool's
// extremes can be far below 1e-15 and are still reachable outcomes.
func Reduce(pdf dist.Distribution, flatModifier, target int) types.SimulationResult {
	var (
		success  float64
		expected float64
		lo, hi   = -1, -1
		hist     []types.DistributionData
	)

	for sum, p := range pdf {
		if p <= 0 {
			continue
		}
		if lo == -1 {
			lo = sum
		}
		hi = sum

		outcome := sum + flatModifier
		if outcome >= target {
			success += p
		}
		expected += float64(sum) * p
		hist = append(hist, types.DistributionData{Outcome: outcome, Probability: p})
	}

	// No mass at all behaves like an empty pool.
	if lo == -1 {
		return types.SimulationResult{
			Chance:       successChance(flatModifier, target),
			Mean:         float64(flatModifier),
			Min:          flatModifier,
			Max:          flatModifier,
			Distribution: []types.DistributionData{},
		}
	}

	mean := expected + float64(flatModifier)

	var variance float64
	for _, d := range hist {
		diff := float64(d.Outcome) - mean
		variance += d.Probability * diff * diff
	}

	return types.SimulationResult{
		Chance:       Percent(success),
		Mean:         Round(mean, 1),
		Min:          lo + flatModifier,
		Max:          hi + flatModifier,
		StdDev:       Round(math.Sqrt(variance), 2),
		Distribution: hist,
	}
}

func successChance(total, target int) int {
	if total >= target {
		return 100
	}
	return 0
}

// Percent scales a probability to a whole percentage, rounding half up.
// Probabilities above 1 from accumulated drift are capped at 100.
func Percent(p float64) int {
	pct := int(math.Floor(p*100 + 0.5))
	if pct > 100 {
		return 100
	}
	if pct < 0 {
		return 0
	}
	return pct
}

// Round rounds x half up to the given number of decimal places.
func Round(x float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Floor(x*scale+0.5) / scale
}

// Band classifies a success chance for display.
type Band int

const (
	BandNeutral Band = iota
	BandCritical
	BandFavourable
)

// Classify returns the display band for a chance: 30 or less is critical,
// 80 or more is favourable.
func Classify(chance int) Band {
	switch {
	case chance <= 30:
		return BandCritical
	case chance >= 80:
		return BandFavourable
	default:
		return BandNeutral
	}
}
