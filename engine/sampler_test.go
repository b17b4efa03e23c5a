package engine

import (
	"testing"

	"github.com/nathoo/dicepool/types"
)

// scriptedRoller returns queued values in order and records the sides asked for.
type scriptedRoller struct {
	values []int
	sides  []int
}

func (r *scriptedRoller) Roll(sides int) int {
	r.sides = append(r.sides, sides)
	v := r.values[0]
	r.values = r.values[1:]
	return v
}

func TestSampleRoll_NormalBreakdown(t *testing.T) {
	r := &scriptedRoller{values: []int{3, 5, 15}}
	s := types.ProbabilityState{
		Dice:   types.DiceConfig{types.D20: 1, types.D6: 2},
		Skill:  4,
		Target: 25,
	}

	out := SampleRoll(s, r)

	if out.RollType != types.RollNormal {
		t.Errorf("RollType = %s, want NORMAL", out.RollType)
	}
	if len(out.Rolls) != 1 {
		t.Fatalf("expected 1 roll, got %d", len(out.Rolls))
	}
	roll := out.Rolls[0]
	if roll.Breakdown != "2D6(3,5)+1D20(15)" {
		t.Errorf("Breakdown = %q", roll.Breakdown)
	}
	if roll.DiceTotal != 23 || roll.Total != 27 || roll.Skill != 4 || roll.Mod != 0 {
		t.Errorf("roll = %+v", roll)
	}
	if out.FinalTotal != 27 || !out.IsSuccess {
		t.Errorf("FinalTotal = %d, IsSuccess = %v", out.FinalTotal, out.IsSuccess)
	}
	// Dice are rolled in ascending side order.
	wantSides := []int{6, 6, 20}
	for i, s := range wantSides {
		if r.sides[i] != s {
			t.Errorf("roll %d used d%d, want d%d", i, r.sides[i], s)
		}
	}
}

func TestSampleRoll_Advantage(t *testing.T) {
	r := &scriptedRoller{values: []int{7, 16}}
	s := types.ProbabilityState{
		Dice: types.DiceConfig{types.D20: 1}, Modifier: -1, Target: 15, Advantage: true,
	}

	out := SampleRoll(s, r)

	if out.RollType != types.RollAdvantage || len(out.Rolls) != 2 {
		t.Fatalf("RollType = %s with %d rolls", out.RollType, len(out.Rolls))
	}
	if out.Rolls[0].Total != 6 || out.Rolls[1].Total != 15 {
		t.Errorf("totals = %d, %d", out.Rolls[0].Total, out.Rolls[1].Total)
	}
	if out.FinalTotal != 15 || !out.IsSuccess {
		t.Errorf("FinalTotal = %d, IsSuccess = %v; want 15, true", out.FinalTotal, out.IsSuccess)
	}
}

func TestSampleRoll_Disadvantage(t *testing.T) {
	r := &scriptedRoller{values: []int{7, 16}}
	s := types.ProbabilityState{
		Dice: types.DiceConfig{types.D20: 1}, Target: 10, Disadvantage: true,
	}

	out := SampleRoll(s, r)

	if out.RollType != types.RollDisadvantage || len(out.Rolls) != 2 {
		t.Fatalf("RollType = %s with %d rolls", out.RollType, len(out.Rolls))
	}
	if out.FinalTotal != 7 || out.IsSuccess {
		t.Errorf("FinalTotal = %d, IsSuccess = %v; want 7, false", out.FinalTotal, out.IsSuccess)
	}
}

func TestSampleRoll_BothFlagsIsAdvantage(t *testing.T) {
	r := &scriptedRoller{values: []int{2, 9}}
	s := types.ProbabilityState{
		Dice: types.DiceConfig{types.D10: 1}, Target: 5, Advantage: true, Disadvantage: true,
	}

	out := SampleRoll(s, r)
	if out.RollType != types.RollAdvantage || out.FinalTotal != 9 {
		t.Errorf("RollType = %s, FinalTotal = %d; want ADV, 9", out.RollType, out.FinalTotal)
	}
}

func TestSampleRoll_EmptyPool(t *testing.T) {
	r := &scriptedRoller{}
	s := types.ProbabilityState{Skill: 3, Modifier: 2, Target: 5}

	out := SampleRoll(s, r)

	if len(r.sides) != 0 {
		t.Errorf("empty pool rolled %d dice", len(r.sides))
	}
	roll := out.Rolls[0]
	if roll.Breakdown != "NO_DICE" || roll.DiceTotal != 0 || roll.Total != 5 {
		t.Errorf("roll = %+v", roll)
	}
	if !out.IsSuccess {
		t.Error("5 vs DC 5 should succeed")
	}
}

func TestSampleRoll_ZeroQuantitySkipped(t *testing.T) {
	r := &scriptedRoller{values: []int{4}}
	s := types.ProbabilityState{Dice: types.DiceConfig{types.D4: 1, types.D100: 0}}

	out := SampleRoll(s, r)
	if out.Rolls[0].Breakdown != "1D4(4)" {
		t.Errorf("Breakdown = %q", out.Rolls[0].Breakdown)
	}
}
