package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/nathoo/dicepool/engine"
	"github.com/nathoo/dicepool/types"
)

// blocks are the eight column heights of the histogram strip.
var blocks = []rune("▁▂▃▄▅▆▇█")

// renderStatusBar produces a full-width inverted status line showing the
// preset, the configuration, and the success chance coloured by band.
func (m Model) renderStatusBar() string {
	s := m.engine.State
	sim := m.engine.Simulation()

	left := fmt.Sprintf(" %s | %s", m.engine.Preset, engine.FormatConfig(*s))
	chance := bandStyle(sim.Chance).Render(fmt.Sprintf("%d%%", sim.Chance))
	rest := fmt.Sprintf(" | Mean %.1f | SD %.2f | %d..%d ", sim.Mean, sim.StdDev, sim.Min, sim.Max)
	right := chance + styleStatusBar.Render(rest)

	// Drop the detail before the chance if the bar is too narrow.
	if lipgloss.Width(left)+lipgloss.Width(right)+1 > m.width {
		right = chance + styleStatusBar.Render(" ")
	}

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}

	return styleStatusBar.Render(left+strings.Repeat(" ", gap)) + right
}

// renderHistogram draws the distribution as one row of block characters,
// binning outcomes when there are more than width columns.
func renderHistogram(sim types.SimulationResult, target, width int) string {
	if len(sim.Distribution) == 0 || width < 1 {
		return styleMiss.Render("no dice")
	}

	bins := binDistribution(sim.Distribution, width)

	var peak float64
	for _, b := range bins {
		peak = max(peak, b.Probability)
	}

	var sb strings.Builder
	for _, b := range bins {
		level := 0
		if peak > 0 {
			level = int(b.Probability / peak * float64(len(blocks)-1))
		}
		col := string(blocks[level])
		if b.Outcome >= target {
			sb.WriteString(styleHit.Render(col))
		} else {
			sb.WriteString(styleMiss.Render(col))
		}
	}
	return sb.String()
}

// binDistribution merges adjacent outcomes into at most width bins. A
// bin is labelled by its highest outcome so it counts as a hit when any
// part of it meets the target.
func binDistribution(dist []types.DistributionData, width int) []types.DistributionData {
	if len(dist) <= width {
		return dist
	}
	per := (len(dist) + width - 1) / width
	out := make([]types.DistributionData, 0, width)
	for i := 0; i < len(dist); i += per {
		end := min(i+per, len(dist))
		var bin types.DistributionData
		for _, d := range dist[i:end] {
			bin.Probability += d.Probability
			bin.Outcome = d.Outcome
		}
		out = append(out, bin)
	}
	return out
}
