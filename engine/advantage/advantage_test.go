package advantage

import (
	"math"
	"testing"

	"github.com/nathoo/dicepool/engine/dist"
	"github.com/nathoo/dicepool/types"
)

const eps = 1e-12

func TestResolve(t *testing.T) {
	tests := []struct {
		adv, dis bool
		want     types.RollType
	}{
		{false, false, types.RollNormal},
		{true, false, types.RollAdvantage},
		{false, true, types.RollDisadvantage},
		{true, true, types.RollAdvantage},
	}
	for _, tt := range tests {
		if got := Resolve(tt.adv, tt.dis); got != tt.want {
			t.Errorf("Resolve(%v, %v) = %v, want %v", tt.adv, tt.dis, got, tt.want)
		}
	}
}

func TestCDF(t *testing.T) {
	cdf := CDF(dist.SingleDie(4))
	want := []float64{0, 0.25, 0.5, 0.75, 1}
	for i := range want {
		if math.Abs(cdf[i]-want[i]) > eps {
			t.Errorf("cdf[%d] = %v, want %v", i, cdf[i], want[i])
		}
	}
}

func TestApply_NormalUnchanged(t *testing.T) {
	pdf := dist.Build(types.DiceConfig{types.D6: 2})
	got := Apply(pdf, types.RollNormal)
	if &got[0] != &pdf[0] {
		t.Error("normal rule should return the input distribution")
	}
}

func TestApply_CoinAdvantage(t *testing.T) {
	got := Apply(dist.SingleDie(2), types.RollAdvantage)
	if math.Abs(got[1]-0.25) > eps {
		t.Errorf("p(1) = %v, want 0.25", got[1])
	}
	if math.Abs(got[2]-0.75) > eps {
		t.Errorf("p(2) = %v, want 0.75", got[2])
	}
}

func TestApply_CoinDisadvantage(t *testing.T) {
	got := Apply(dist.SingleDie(2), types.RollDisadvantage)
	if math.Abs(got[1]-0.75) > eps {
		t.Errorf("p(1) = %v, want 0.75", got[1])
	}
	if math.Abs(got[2]-0.25) > eps {
		t.Errorf("p(2) = %v, want 0.25", got[2])
	}
}

func TestApply_PointMassUnchanged(t *testing.T) {
	// Certainty at 3.
	pdf := dist.Distribution{0, 0, 0, 1, 0}
	for _, rule := range []types.RollType{types.RollAdvantage, types.RollDisadvantage} {
		got := Apply(pdf, rule)
		for i := range pdf {
			if math.Abs(got[i]-pdf[i]) > eps {
				t.Errorf("%s: p(%d) = %v, want %v", rule, i, got[i], pdf[i])
			}
		}
	}
	id := Apply(dist.Identity(), types.RollAdvantage)
	if len(id) != 1 || id[0] != 1 {
		t.Errorf("identity under advantage = %v, want [1]", id)
	}
}

func TestApply_D20Advantage(t *testing.T) {
	got := Apply(dist.SingleDie(20), types.RollAdvantage)
	// P(max = k) = (2k - 1) / 400
	for k := 1; k <= 20; k++ {
		want := float64(2*k-1) / 400
		if math.Abs(got[k]-want) > eps {
			t.Errorf("p(%d) = %v, want %v", k, got[k], want)
		}
	}
}

func TestApply_D20Disadvantage(t *testing.T) {
	got := Apply(dist.SingleDie(20), types.RollDisadvantage)
	// P(min = k) = (41 - 2k) / 400
	for k := 1; k <= 20; k++ {
		want := float64(41-2*k) / 400
		if math.Abs(got[k]-want) > eps {
			t.Errorf("p(%d) = %v, want %v", k, got[k], want)
		}
	}
}

func TestApply_PreservesMass(t *testing.T) {
	pdf := dist.Build(types.DiceConfig{types.D6: 3, types.D8: 1})
	for _, rule := range []types.RollType{types.RollAdvantage, types.RollDisadvantage} {
		got := Apply(pdf, rule)
		if len(got) != len(pdf) {
			t.Fatalf("%s: len = %d, want %d", rule, len(got), len(pdf))
		}
		if total := got.Total(); math.Abs(total-1) > 1e-9 {
			t.Errorf("%s: total = %v, want 1", rule, total)
		}
	}
}

func TestApply_DoesNotMutateInput(t *testing.T) {
	pdf := dist.SingleDie(6)
	orig := append(dist.Distribution(nil), pdf...)
	Apply(pdf, types.RollAdvantage)
	Apply(pdf, types.RollDisadvantage)
	for i := range orig {
		if pdf[i] != orig[i] {
			t.Fatalf("input mutated at %d: %v != %v", i, pdf[i], orig[i])
		}
	}
}

func TestApplyFlags_BothSetIsAdvantage(t *testing.T) {
	pdf := dist.SingleDie(2)
	got := ApplyFlags(pdf, true, true)
	if math.Abs(got[2]-0.75) > eps {
		t.Errorf("p(2) = %v, want 0.75", got[2])
	}
}

func TestApply_LargePoolKeepsExtremes(t *testing.T) {
	pdf := dist.Build(types.DiceConfig{types.D100: 8})
	lo, hi := 8, 800

	for _, rule := range []types.RollType{types.RollAdvantage, types.RollDisadvantage} {
		out := Apply(pdf, rule)
		for i, p := range out {
			if p < 0 {
				t.Fatalf("%s: out[%d] = %g, want >= 0", rule, i, p)
			}
			if (p == 0) != (pdf[i] == 0) {
				t.Fatalf("%s: out[%d] = %g but pdf[%d] = %g", rule, i, p, i, pdf[i])
			}
		}

		// The favoured end takes about twice its mass, the other end its square.
		wide, narrow := hi, lo
		if rule == types.RollDisadvantage {
			wide, narrow = lo, hi
		}
		if want := 2 * pdf[wide]; math.Abs(out[wide]/want-1) > 1e-6 {
			t.Errorf("%s: favoured extreme = %g, want about %g", rule, out[wide], want)
		}
		if want := pdf[narrow] * pdf[narrow]; math.Abs(out[narrow]/want-1) > 1e-6 {
			t.Errorf("%s: other extreme = %g, want about %g", rule, out[narrow], want)
		}
	}
}
