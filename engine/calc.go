package engine

import (
	"github.com/nathoo/dicepool/engine/advantage"
	"github.com/nathoo/dicepool/engine/dist"
	"github.com/nathoo/dicepool/engine/stats"
	"github.com/nathoo/dicepool/types"
)

// CalculateSimulation computes the exact outcome distribution of the check
// described by s and summarises it against s.Target.
func CalculateSimulation(s types.ProbabilityState) types.SimulationResult {
	pdf := dist.Build(s.Dice)
	pdf = advantage.ApplyFlags(pdf, s.Advantage, s.Disadvantage)
	return stats.Reduce(pdf, s.Skill+s.Modifier, s.Target)
}

// PerformRoll executes one concrete check using r as the entropy source.
func PerformRoll(s types.ProbabilityState, r Roller) types.RollOutcome {
	return SampleRoll(s, r)
}
