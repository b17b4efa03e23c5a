// Package dist builds exact probability distributions for dice pools by
// repeated convolution of single-die uniform distributions.
package dist

import (
	"sort"

	"github.com/nathoo/dicepool/types"
)

// Distribution is a dense probability mass function indexed by dice sum.
// Index 0 is the empty-pool sum and only carries mass for an empty pool.
type Distribution []float64

// Identity returns the distribution of an empty pool: sum 0 with certainty.
// It is the identity element for Convolve.
func Identity() Distribution {
	return Distribution{1}
}

// SingleDie returns the uniform distribution of one die with the given sides.
func SingleDie(sides int) Distribution {
	d := make(Distribution, sides+1)
	p := 1 / float64(sides)
	for i := 1; i <= sides; i++ {
		d[i] = p
	}
	return d
}

// Convolve returns the distribution of the sum of two independent draws
// from a and b.
func Convolve(a, b Distribution) Distribution {
	if len(a) == 0 || len(b) == 0 {
		return Distribution{}
	}
	out := make(Distribution, len(a)+len(b)-1)
	for i, pa := range a {
		if pa == 0 {
			continue
		}
		for j, pb := range b {
			if pb == 0 {
				continue
			}
			out[i+j] += pa * pb
		}
	}
	return out
}

// Build returns the exact distribution of the pool's sum. Each die type is
// folded in once per unit of quantity, in ascending side order. An empty
// pool yields Identity.
func Build(dice types.DiceConfig) Distribution {
	pdf := Identity()
	for _, sides := range Sides(dice) {
		single := SingleDie(int(sides))
		for i := 0; i < dice[sides]; i++ {
			pdf = Convolve(pdf, single)
		}
	}
	return pdf
}

// Sides returns the die types with a positive quantity, ascending.
func Sides(dice types.DiceConfig) []types.DieType {
	sides := make([]types.DieType, 0, len(dice))
	for s, n := range dice {
		if n > 0 && s > 0 {
			sides = append(sides, s)
		}
	}
	sort.Slice(sides, func(i, j int) bool { return sides[i] < sides[j] })
	return sides
}

// Total returns the summed probability mass.
func (d Distribution) Total() float64 {
	var sum float64
	for _, p := range d {
		sum += p
	}
	return sum
}
