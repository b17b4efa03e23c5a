package engine

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/nathoo/dicepool/engine/advantage"
	"github.com/nathoo/dicepool/engine/dist"
	"github.com/nathoo/dicepool/types"
)

// FormatPool renders the dice pool as "1D20+2D6", or "NO_DICE".
func FormatPool(dice types.DiceConfig) string {
	sides := dist.Sides(dice)
	if len(sides) == 0 {
		return noDice
	}
	parts := make([]string, 0, len(sides))
	for _, s := range sides {
		parts = append(parts, fmt.Sprintf("%dD%d", dice[s], s))
	}
	return strings.Join(parts, "+")
}

// FormatConfig renders a configuration on one line.
func FormatConfig(s types.ProbabilityState) string {
	return fmt.Sprintf("%s | SKL %s | MOD %s | DC %d | %s",
		FormatPool(s.Dice), signed(s.Skill), signed(s.Modifier), s.Target,
		advantage.Resolve(s.Advantage, s.Disadvantage))
}

// FormatSummary renders the configuration and its simulation summary.
func FormatSummary(s types.ProbabilityState, sim types.SimulationResult) []string {
	return []string{
		FormatConfig(s),
		fmt.Sprintf("Chance %d%% | Mean %.1f | SD %.2f | Range %d..%d",
			sim.Chance, sim.Mean, sim.StdDev, sim.Min, sim.Max),
	}
}

// FormatLogEntry renders a roll with one line per draw.
func FormatLogEntry(e types.LogEntry) []string {
	lines := []string{FormatLogLine(e)}
	for i, r := range e.Rolls {
		lines = append(lines, fmt.Sprintf("  #%d %s %s %s = %d",
			i+1, r.Breakdown, signed(r.Skill), signed(r.Mod), r.Total))
	}
	return lines
}

// FormatLogLine renders a roll as a single summary line.
func FormatLogLine(e types.LogEntry) string {
	verdict := "FAIL"
	if e.IsSuccess {
		verdict = "SUCCESS"
	}
	return fmt.Sprintf("[%s] %-6s %3d vs DC %-3d %s",
		clockTime(e.Timestamp), e.RollType, e.FinalTotal, e.Target, verdict)
}

// FormatChart renders the histogram as text bars scaled so the most likely
// outcome fills width. Outcomes that meet the target are marked with '#',
// the rest with '-'.
func FormatChart(sim types.SimulationResult, target, width int) []string {
	if len(sim.Distribution) == 0 {
		return []string{"No outcomes."}
	}
	if width < 1 {
		width = 1
	}

	var peak float64
	for _, d := range sim.Distribution {
		peak = max(peak, d.Probability)
	}

	lines := make([]string, 0, len(sim.Distribution))
	for _, d := range sim.Distribution {
		n := int(d.Probability / peak * float64(width))
		if n == 0 {
			n = 1
		}
		mark := "-"
		if d.Outcome >= target {
			mark = "#"
		}
		lines = append(lines, fmt.Sprintf("%4d %6.2f%% %s", d.Outcome, d.Probability*100, strings.Repeat(mark, n)))
	}
	return lines
}

func signed(n int) string {
	if n < 0 {
		return strconv.Itoa(n)
	}
	return "+" + strconv.Itoa(n)
}

// clockTime extracts HH:MM:SS from an RFC3339 timestamp, or returns it as-is.
func clockTime(ts string) string {
	t, err := time.Parse(time.RFC3339, ts)
	if err != nil {
		return ts
	}
	return t.Format("15:04:05")
}
