package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/nathoo/dicepool/engine/stats"
)

// Styles used throughout the TUI.
var (
	styleStatusBar = lipgloss.NewStyle().
			Background(lipgloss.Color("236")).
			Foreground(lipgloss.Color("252")).
			Bold(true)

	styleInputPrompt = lipgloss.NewStyle().
				Foreground(lipgloss.Color("34"))

	styleOutput = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255"))

	styleSummary = lipgloss.NewStyle().
			Bold(true)

	styleSuccess = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	styleFail = lipgloss.NewStyle().
			Foreground(lipgloss.Color("203"))

	styleDraw = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))

	styleSystem = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))

	styleError = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	stylePlayerInput = lipgloss.NewStyle().
				Foreground(lipgloss.Color("34"))

	styleTrace = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	// Histogram columns: at or above the DC, and below it.
	styleHit = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	styleMiss = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
)

// bandStyle colours a success chance the way the status bar shows it.
func bandStyle(chance int) lipgloss.Style {
	base := lipgloss.NewStyle().Background(lipgloss.Color("236")).Bold(true)
	switch stats.Classify(chance) {
	case stats.BandCritical:
		return base.Foreground(lipgloss.Color("196"))
	case stats.BandFavourable:
		return base.Foreground(lipgloss.Color("42"))
	default:
		return base.Foreground(lipgloss.Color("214"))
	}
}

// lineKind identifies the type of an output line for styling.
type lineKind int

const (
	kindOutput lineKind = iota
	kindSummary
	kindSuccess
	kindFail
	kindDraw
	kindSystem
	kindError
	kindTrace
)

// classifyLine determines what kind of output line this is.
func classifyLine(line string) lineKind {
	switch {
	case strings.HasPrefix(line, "[trace]"):
		return kindTrace
	case strings.HasPrefix(line, "  #"):
		return kindDraw
	case strings.HasPrefix(line, "[") && strings.HasSuffix(line, "SUCCESS"):
		return kindSuccess
	case strings.HasPrefix(line, "[") && strings.HasSuffix(line, "FAIL"):
		return kindFail
	case strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]"):
		return kindSystem
	case strings.HasPrefix(line, "Chance "):
		return kindSummary
	case strings.HasPrefix(line, "Unknown command"),
		strings.HasPrefix(line, "usage:"),
		strings.HasPrefix(line, "can't read"),
		strings.HasPrefix(line, "No preset named"),
		strings.HasPrefix(line, "Rename failed"):
		return kindError
	default:
		return kindOutput
	}
}

// renderLineKind applies the style for a given lineKind.
func renderLineKind(line string, kind lineKind) string {
	switch kind {
	case kindSummary:
		return styleSummary.Render(line)
	case kindSuccess:
		return styleSuccess.Render(line)
	case kindFail:
		return styleFail.Render(line)
	case kindDraw:
		return styleDraw.Render(line)
	case kindSystem:
		return styleSystem.Render(line)
	case kindError:
		return styleError.Render(line)
	case kindTrace:
		return styleTrace.Render(line)
	default:
		return styleOutput.Render(line)
	}
}

// styledSystemMsg renders a system message in gray with brackets.
func styledSystemMsg(text string) string {
	return styleSystem.Render("[" + text + "]")
}
