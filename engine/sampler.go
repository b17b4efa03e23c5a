package engine

import (
	"strconv"
	"strings"

	"github.com/nathoo/dicepool/engine/advantage"
	"github.com/nathoo/dicepool/engine/dist"
	"github.com/nathoo/dicepool/types"
)

// noDice is the breakdown of a roll with an empty pool.
const noDice = "NO_DICE"

// SampleRoll draws one concrete check from the pool. Advantage and
// disadvantage draw the whole pool a second time and keep the higher or
// lower total; the rule comes from advantage.Resolve so it always matches
// the exact distribution.
func SampleRoll(s types.ProbabilityState, r Roller) types.RollOutcome {
	first := rollPool(s.Dice, s.Skill, s.Modifier, r)
	out := types.RollOutcome{
		FinalTotal: first.Total,
		RollType:   advantage.Resolve(s.Advantage, s.Disadvantage),
		Rolls:      []types.RollDetail{first},
	}

	switch out.RollType {
	case types.RollAdvantage:
		second := rollPool(s.Dice, s.Skill, s.Modifier, r)
		out.Rolls = append(out.Rolls, second)
		out.FinalTotal = max(first.Total, second.Total)
	case types.RollDisadvantage:
		second := rollPool(s.Dice, s.Skill, s.Modifier, r)
		out.Rolls = append(out.Rolls, second)
		out.FinalTotal = min(first.Total, second.Total)
	}

	out.IsSuccess = out.FinalTotal >= s.Target
	return out
}

// rollPool rolls every die once and formats the per-type breakdown,
// e.g. "1D20(15)+2D6(3,5)".
func rollPool(dice types.DiceConfig, skill, mod int, r Roller) types.RollDetail {
	var (
		total int
		parts []string
	)
	for _, sides := range dist.Sides(dice) {
		count := dice[sides]
		results := make([]string, 0, count)
		for i := 0; i < count; i++ {
			v := r.Roll(int(sides))
			total += v
			results = append(results, strconv.Itoa(v))
		}
		parts = append(parts, strconv.Itoa(count)+"D"+strconv.Itoa(int(sides))+"("+strings.Join(results, ",")+")")
	}

	breakdown := noDice
	if len(parts) > 0 {
		breakdown = strings.Join(parts, "+")
	}
	return types.RollDetail{
		Total:     total + skill + mod,
		DiceTotal: total,
		Breakdown: breakdown,
		Skill:     skill,
		Mod:       mod,
	}
}
