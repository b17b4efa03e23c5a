// Package advantage rewrites a distribution into best-of-two or
// worst-of-two form through its cumulative distribution.
package advantage

import (
	"github.com/nathoo/dicepool/engine/dist"
	"github.com/nathoo/dicepool/types"
)

// Resolve maps the advantage/disadvantage flag pair to a roll rule.
// Advantage takes precedence when both are set.
func Resolve(advantage, disadvantage bool) types.RollType {
	switch {
	case advantage:
		return types.RollAdvantage
	case disadvantage:
		return types.RollDisadvantage
	default:
		return types.RollNormal
	}
}

// CDF returns the prefix sums of pdf.
func CDF(pdf dist.Distribution) []float64 {
	cdf := make([]float64, len(pdf))
	var acc float64
	for i, p := range pdf {
		acc += p
		cdf[i] = acc
	}
	return cdf
}

// Apply returns the distribution of max (ADV) or min (DIS) of two
// independent draws from pdf. RollNormal returns pdf unchanged.
//
// Each entry is computed as p*(2*below+p) for ADV and p*(2*above+p) for DIS,
// the factored difference of squared tail sums. Entries are never negative,
// an entry is zero exactly where pdf is zero, and extremes of large pools
// keep their mass instead of cancelling against a CDF of 1.
func Apply(pdf dist.Distribution, rule types.RollType) dist.Distribution {
	if rule != types.RollAdvantage && rule != types.RollDisadvantage {
		return pdf
	}
	out := make(dist.Distribution, len(pdf))
	if len(pdf) == 0 {
		return out
	}

	if rule == types.RollAdvantage {
		// below is P(draw < i)
		var below float64
		for i, p := range pdf {
			out[i] = p * (2*below + p)
			below += p
		}
		return out
	}

	// above is P(draw > i)
	var above float64
	for i := len(pdf) - 1; i >= 0; i-- {
		p := pdf[i]
		out[i] = p * (2*above + p)
		above += p
	}
	return out
}

// ApplyFlags is Apply with the rule taken from the flag pair.
func ApplyFlags(pdf dist.Distribution, advantage, disadvantage bool) dist.Distribution {
	return Apply(pdf, Resolve(advantage, disadvantage))
}
