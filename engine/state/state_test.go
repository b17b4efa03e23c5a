package state

import (
	"testing"

	"github.com/nathoo/dicepool/types"
)

func TestNewState_Defaults(t *testing.T) {
	s := NewState()
	if s.Dice[types.D20] != 1 || len(s.Dice) != 1 {
		t.Errorf("Dice = %v, want 1D20", s.Dice)
	}
	if s.Skill != 5 || s.Modifier != 0 || s.Target != 15 {
		t.Errorf("skill/mod/target = %d/%d/%d, want 5/0/15", s.Skill, s.Modifier, s.Target)
	}
	if s.Advantage || s.Disadvantage {
		t.Error("expected no advantage or disadvantage")
	}
	if s.Mode != types.ModeStandard {
		t.Errorf("Mode = %q, want standard", s.Mode)
	}
}

func TestClone_IndependentDice(t *testing.T) {
	s := NewState()
	c := Clone(*s)
	c.Dice[types.D6] = 3
	if _, ok := s.Dice[types.D6]; ok {
		t.Error("editing clone changed original dice")
	}
}

func TestClone_DropsZeroEntriesAndDefaultsMode(t *testing.T) {
	c := Clone(types.ProbabilityState{Dice: types.DiceConfig{types.D4: 0, types.D8: 2}})
	if len(c.Dice) != 1 || c.Dice[types.D8] != 2 {
		t.Errorf("Dice = %v, want {8:2}", c.Dice)
	}
	if c.Mode != types.ModeStandard {
		t.Errorf("Mode = %q, want standard", c.Mode)
	}
}

func TestValidDie(t *testing.T) {
	for _, d := range types.DieTypes {
		if !ValidDie(int(d)) {
			t.Errorf("ValidDie(%d) = false", d)
		}
	}
	for _, n := range []int{0, 1, 2, 3, 7, 30, -6} {
		if ValidDie(n) {
			t.Errorf("ValidDie(%d) = true", n)
		}
	}
}

func TestAddDice(t *testing.T) {
	s := NewState()
	if got := AddDice(s, types.D6, 2); got != 2 {
		t.Errorf("AddDice = %d, want 2", got)
	}
	if got := AddDice(s, types.D6, -5); got != 0 {
		t.Errorf("AddDice below zero = %d, want 0", got)
	}
	if _, ok := s.Dice[types.D6]; ok {
		t.Error("zero quantity should remove the entry")
	}
	if got := AddDice(s, types.D4, 500); got != MaxDicePerType {
		t.Errorf("AddDice over cap = %d, want %d", got, MaxDicePerType)
	}
}

func TestSetDice_NilConfig(t *testing.T) {
	s := &types.ProbabilityState{}
	SetDice(s, types.D12, 1)
	if s.Dice[types.D12] != 1 {
		t.Errorf("Dice = %v, want {12:1}", s.Dice)
	}
}

func TestClearDice(t *testing.T) {
	s := NewState()
	ClearDice(s)
	if TotalDice(s) != 0 {
		t.Errorf("TotalDice = %d, want 0", TotalDice(s))
	}
}

func TestSetters_Clamp(t *testing.T) {
	s := NewState()
	if got := SetSkill(s, 99); got != MaxSkill {
		t.Errorf("SetSkill(99) = %d", got)
	}
	if got := SetSkill(s, -1); got != 0 {
		t.Errorf("SetSkill(-1) = %d", got)
	}
	if got := SetModifier(s, -40); got != MinModifier {
		t.Errorf("SetModifier(-40) = %d", got)
	}
	if got := SetModifier(s, 3); got != 3 {
		t.Errorf("SetModifier(3) = %d", got)
	}
	if got := SetTarget(s, 0); got != MinTarget {
		t.Errorf("SetTarget(0) = %d", got)
	}
	// 1D20 + 0 skill + 3 mod: max roll 23, cap 28.
	SetSkill(s, 0)
	if got := SetTarget(s, 100); got != 28 {
		t.Errorf("SetTarget(100) = %d, want 28", got)
	}
}

func TestAdvantageToggles(t *testing.T) {
	s := NewState()
	ToggleAdvantage(s)
	if !s.Advantage || s.Disadvantage {
		t.Fatalf("after ToggleAdvantage: adv=%v dis=%v", s.Advantage, s.Disadvantage)
	}
	ToggleDisadvantage(s)
	if s.Advantage || !s.Disadvantage {
		t.Fatalf("after ToggleDisadvantage: adv=%v dis=%v", s.Advantage, s.Disadvantage)
	}
	ToggleDisadvantage(s)
	if s.Advantage || s.Disadvantage {
		t.Fatalf("second ToggleDisadvantage should clear: adv=%v dis=%v", s.Advantage, s.Disadvantage)
	}
	ToggleAdvantage(s)
	ClearAdvantage(s)
	if s.Advantage || s.Disadvantage {
		t.Fatal("ClearAdvantage left a flag set")
	}
}

func TestMaxRoll(t *testing.T) {
	s := &types.ProbabilityState{
		Dice:     types.DiceConfig{types.D6: 2, types.D4: 1, types.D100: 0},
		Skill:    2,
		Modifier: -2,
	}
	if got := MaxRoll(s); got != 16 {
		t.Errorf("MaxRoll = %d, want 16", got)
	}
	if got := TotalDice(s); got != 3 {
		t.Errorf("TotalDice = %d, want 3", got)
	}
}
