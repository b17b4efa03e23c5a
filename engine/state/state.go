// Package state manages the mutable check configuration and the preset
// book it can be saved to and loaded from.
package state

import (
	"github.com/nathoo/dicepool/types"
)

// Limits applied to console edits.
const (
	MaxDicePerType = 99
	MaxSkill       = 50
	MinModifier    = -20
	MaxModifier    = 20
	MinTarget      = 1
)

// Defs holds the immutable definitions available at startup.
type Defs struct {
	Presets []types.Preset
}

// NewState returns the default configuration: 1D20, skill 5, DC 15.
func NewState() *types.ProbabilityState {
	return &types.ProbabilityState{
		Dice:   types.DiceConfig{types.D20: 1},
		Skill:  5,
		Target: 15,
		Mode:   types.ModeStandard,
	}
}

// Clone returns a deep copy of s so the copy's dice can be edited freely.
func Clone(s types.ProbabilityState) types.ProbabilityState {
	c := s
	c.Dice = make(types.DiceConfig, len(s.Dice))
	for k, v := range s.Dice {
		if v > 0 {
			c.Dice[k] = v
		}
	}
	if c.Mode == "" {
		c.Mode = types.ModeStandard
	}
	return c
}

// ValidDie reports whether sides is one of the supported die types.
func ValidDie(sides int) bool {
	for _, d := range types.DieTypes {
		if int(d) == sides {
			return true
		}
	}
	return false
}

// AddDice adds n dice (n may be negative) of the given type, clamping the
// quantity to [0, MaxDicePerType]. Returns the new quantity.
func AddDice(s *types.ProbabilityState, sides types.DieType, n int) int {
	return SetDice(s, sides, s.Dice[sides]+n)
}

// SetDice sets the quantity of a die type, clamped to [0, MaxDicePerType].
// Zero removes the entry. Returns the new quantity.
func SetDice(s *types.ProbabilityState, sides types.DieType, n int) int {
	if s.Dice == nil {
		s.Dice = types.DiceConfig{}
	}
	n = clamp(n, 0, MaxDicePerType)
	if n == 0 {
		delete(s.Dice, sides)
		return 0
	}
	s.Dice[sides] = n
	return n
}

// ClearDice empties the pool.
func ClearDice(s *types.ProbabilityState) {
	s.Dice = types.DiceConfig{}
}

// SetSkill sets the skill bonus, clamped to [0, MaxSkill].
func SetSkill(s *types.ProbabilityState, v int) int {
	s.Skill = clamp(v, 0, MaxSkill)
	return s.Skill
}

// SetModifier sets the situational modifier, clamped to [MinModifier, MaxModifier].
func SetModifier(s *types.ProbabilityState, v int) int {
	s.Modifier = clamp(v, MinModifier, MaxModifier)
	return s.Modifier
}

// SetTarget sets the DC, clamped to [MinTarget, max(20, MaxRoll+5)].
func SetTarget(s *types.ProbabilityState, v int) int {
	s.Target = clamp(v, MinTarget, max(20, MaxRoll(s)+5))
	return s.Target
}

// ToggleAdvantage flips advantage and always clears disadvantage.
func ToggleAdvantage(s *types.ProbabilityState) {
	s.Advantage = !s.Advantage
	s.Disadvantage = false
}

// ToggleDisadvantage flips disadvantage and always clears advantage.
func ToggleDisadvantage(s *types.ProbabilityState) {
	s.Disadvantage = !s.Disadvantage
	s.Advantage = false
}

// ClearAdvantage returns the check to a single roll.
func ClearAdvantage(s *types.ProbabilityState) {
	s.Advantage = false
	s.Disadvantage = false
}

// TotalDice returns the number of dice in the pool.
func TotalDice(s *types.ProbabilityState) int {
	n := 0
	for _, c := range s.Dice {
		if c > 0 {
			n += c
		}
	}
	return n
}

// MaxRoll returns the highest achievable total before advantage.
func MaxRoll(s *types.ProbabilityState) int {
	total := s.Skill + s.Modifier
	for sides, c := range s.Dice {
		if c > 0 {
			total += int(sides) * c
		}
	}
	return total
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
