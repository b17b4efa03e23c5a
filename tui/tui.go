package tui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nathoo/dicepool/cli"
	"github.com/nathoo/dicepool/engine"
	"github.com/nathoo/dicepool/types"
)

// rawLine stores an unstyled output line with its classification,
// so we can re-wrap and re-style when the terminal is resized.
type rawLine struct {
	text     string
	kind     lineKind
	isInput  bool // true for echoed input
	isSystem bool // true for system messages
}

// Model is the Bubble Tea model for the dicepool TUI.
type Model struct {
	engine   *engine.Engine
	recorder engine.Recorder

	viewport viewport.Model
	input    textinput.Model
	history  *History

	rawLines []rawLine // accumulated output lines (unstyled, for re-wrapping)

	width    int
	height   int
	ready    bool
	trace    bool
	quitting bool
	lastCmd  string
	saveDir  string
	now      func() time.Time
}

// consoleOutputMsg carries output from the engine into the Update loop.
type consoleOutputMsg struct {
	input    string   // echoed input (empty for the banner)
	lines    []string // output lines
	isSystem bool     // true for meta-command output
}

// New creates a TUI model wired to the given engine. rec may be nil.
func New(eng *engine.Engine, rec engine.Recorder) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "d20, +2d6, dc 15, adv, roll"
	ti.Focus()
	ti.CharLimit = 256
	ti.PromptStyle = styleInputPrompt

	home, _ := os.UserHomeDir()
	return Model{
		engine:   eng,
		recorder: rec,
		input:    ti,
		history:  NewHistory(100),
		saveDir:  filepath.Join(home, ".dicepool", "saves"),
		now:      time.Now,
	}
}

// Run starts the Bubble Tea program. An empty saveDir keeps the default.
func Run(eng *engine.Engine, rec engine.Recorder, saveDir string) error {
	m := New(eng, rec)
	if saveDir != "" {
		m.saveDir = saveDir
	}
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}

// Init returns the initial command that produces the banner and stats.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.initialOutput())
}

func (m Model) initialOutput() tea.Cmd {
	return func() tea.Msg {
		lines := []string{cli.Banner, ""}
		result := m.engine.Step("stats")
		lines = append(lines, result.Output...)
		return consoleOutputMsg{lines: lines}
	}
}

// Update handles messages (key presses, window resize, console output).
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		vpHeight := m.height - 3 // histogram + status bar + input line
		if vpHeight < 1 {
			vpHeight = 1
		}

		if !m.ready {
			m.viewport = viewport.New(m.width, vpHeight)
			m.viewport.KeyMap = viewportKeyMap()
			m.ready = true
		} else {
			m.viewport.Width = m.width
			m.viewport.Height = vpHeight
		}

		m.refreshViewport()

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.quitting = true
			return m, tea.Quit

		case "enter":
			return m.handleEnter()

		case "ctrl+r":
			m.input.SetValue("roll")
			return m.handleEnter()

		case "up":
			if prev, ok := m.history.Prev(m.input.Value()); ok {
				m.input.SetValue(prev)
				m.input.CursorEnd()
			}
			return m, nil

		case "down":
			// Past the newest entry this is the line typed before Up.
			next, _ := m.history.Next()
			m.input.SetValue(next)
			m.input.CursorEnd()
			return m, nil

		case "pgup", "pgdown":
			var vpCmd tea.Cmd
			m.viewport, vpCmd = m.viewport.Update(msg)
			return m, vpCmd
		}

	case consoleOutputMsg:
		m = m.appendOutput(msg)
	}

	var inputCmd tea.Cmd
	m.input, inputCmd = m.input.Update(msg)
	cmds = append(cmds, inputCmd)

	return m, tea.Batch(cmds...)
}

// handleEnter processes the submitted input line.
func (m Model) handleEnter() (tea.Model, tea.Cmd) {
	input := strings.TrimSpace(m.input.Value())
	m.input.SetValue("")

	if input == "" {
		return m, nil
	}

	m.history.Push(input)
	m.history.ResetCursor()

	// Handle "again" / "g".
	if isRepeat(input) {
		if m.lastCmd == "" {
			m = m.appendOutput(consoleOutputMsg{
				input: input, lines: []string{"Nothing to repeat."}, isSystem: true,
			})
			return m, nil
		}
		input = m.lastCmd
	} else {
		m.lastCmd = input
	}

	// Meta-commands.
	if strings.HasPrefix(input, "/") {
		output, quit := m.handleMeta(input)
		m = m.appendOutput(consoleOutputMsg{input: input, lines: output, isSystem: true})
		if quit {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil
	}

	result := m.engine.Step(input)
	output := result.Output
	if err := m.engine.Persist(context.Background(), m.recorder, result); err != nil {
		output = append(output, fmt.Sprintf("[Store error: %v]", err))
	}
	if m.trace {
		output = append(output, m.formatTrace(result)...)
	}
	m = m.appendOutput(consoleOutputMsg{input: input, lines: output})
	return m, nil
}

// appendOutput adds lines to the scrollback and refreshes the viewport.
func (m Model) appendOutput(msg consoleOutputMsg) Model {
	if msg.input != "" {
		m.rawLines = append(m.rawLines, rawLine{
			text: "> " + msg.input, isInput: true,
		})
	}

	for _, line := range msg.lines {
		rl := rawLine{text: line, isSystem: msg.isSystem}
		if !msg.isSystem {
			rl.kind = classifyLine(line)
		}
		m.rawLines = append(m.rawLines, rl)
	}

	// Blank line separator between commands.
	m.rawLines = append(m.rawLines, rawLine{})

	m.refreshViewport()

	return m
}

// refreshViewport re-wraps and re-styles all raw lines at the current width
// and updates the viewport content.
func (m *Model) refreshViewport() {
	if !m.ready {
		return
	}

	width := m.width
	if width < 10 {
		width = 10
	}

	var styled []string
	for _, rl := range m.rawLines {
		if rl.text == "" {
			styled = append(styled, "")
			continue
		}

		wrapped := wordWrap(rl.text, width)

		switch {
		case rl.isInput:
			styled = append(styled, stylePlayerInput.Render(wrapped))
		case rl.isSystem:
			styled = append(styled, styledSystemMsg(wrapped))
		default:
			styled = append(styled, renderLineKind(wrapped, rl.kind))
		}
	}

	m.viewport.SetContent(strings.Join(styled, "\n"))
	m.viewport.GotoBottom()
}

// wordWrap wraps text to fit within the given width, breaking at word
// boundaries. Leading indentation is kept on the first line.
func wordWrap(text string, width int) string {
	if width <= 0 || len(text) <= width {
		return text
	}

	indent := text[:len(text)-len(strings.TrimLeft(text, " "))]

	var result strings.Builder
	words := strings.Fields(text)
	lineLen := 0

	for i, word := range words {
		wLen := len(word)

		if i == 0 {
			result.WriteString(indent + word)
			lineLen = len(indent) + wLen
			continue
		}

		if lineLen+1+wLen > width {
			result.WriteString("\n")
			result.WriteString(word)
			lineLen = wLen
		} else {
			result.WriteString(" ")
			result.WriteString(word)
			lineLen += 1 + wLen
		}
	}

	return result.String()
}

// View renders the full TUI layout: viewport + histogram + status bar + input.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "Loading..."
	}

	hist := renderHistogram(m.engine.Simulation(), m.engine.State.Target, m.width)
	return m.viewport.View() + "\n" + hist + "\n" + m.renderStatusBar() + "\n" + m.input.View()
}

// handleMeta dispatches meta-commands. Returns output lines and quit flag.
func (m *Model) handleMeta(input string) ([]string, bool) {
	parts := strings.Fields(input)
	cmd := strings.ToLower(parts[0])
	var arg string
	if len(parts) > 1 {
		arg = parts[1]
	}

	switch cmd {
	case "/quit", "/exit":
		return []string{"Goodbye."}, true

	case "/save":
		path := cli.ResolvePath(m.saveDir, arg, "quicksave")
		if err := cli.SaveSession(m.engine, path); err != nil {
			return []string{fmt.Sprintf("Save failed: %v", err)}, false
		}
		return []string{fmt.Sprintf("Session saved to %s.", path)}, false

	case "/load":
		path := cli.ResolvePath(m.saveDir, arg, "quicksave")
		sd, err := cli.LoadSession(m.engine, path)
		if err != nil {
			return []string{fmt.Sprintf("Load failed: %v", err)}, false
		}
		output := []string{fmt.Sprintf("Session loaded from %s (%d rolls).", path, len(sd.Log))}
		return append(output, m.engine.Step("stats").Output...), false

	case "/export":
		path := cli.ResolvePath(m.saveDir, arg, "presets")
		if err := cli.ExportPresets(m.engine, path, m.now()); err != nil {
			return []string{fmt.Sprintf("Export failed: %v", err)}, false
		}
		return []string{fmt.Sprintf("Exported %d presets to %s.", m.engine.Presets.Len(), path)}, false

	case "/import":
		path := cli.ResolvePath(m.saveDir, arg, "presets")
		n, err := cli.ImportPresets(m.engine, path)
		if err != nil {
			return []string{fmt.Sprintf("Import failed: %v", err)}, false
		}
		output := []string{fmt.Sprintf("Imported %d presets from %s.", n, path)}
		edited := types.Result{Events: []types.Event{{Type: engine.EventPresetsEdited}}}
		if err := m.engine.Persist(context.Background(), m.recorder, edited); err != nil {
			output = append(output, fmt.Sprintf("Store error: %v", err))
		}
		return output, false

	case "/help":
		return m.cmdHelp(), false

	case "/state":
		return m.cmdState(), false

	case "/trace":
		m.trace = !m.trace
		if m.trace {
			return []string{"Trace output enabled."}, false
		}
		return []string{"Trace output disabled."}, false

	default:
		return []string{fmt.Sprintf("Unknown command: %s. Type /help for available commands.", cmd)}, false
	}
}

func (m *Model) cmdHelp() []string {
	help := append([]string{}, cli.HelpLines...)
	return append(help,
		"",
		"Keys: Ctrl+R to roll, PgUp/PgDn to scroll, Up/Down for command history",
	)
}

func (m *Model) cmdState() []string {
	e := m.engine
	return []string{
		fmt.Sprintf("Preset: %s", e.Preset),
		fmt.Sprintf("Config: %s", engine.FormatConfig(*e.State)),
		fmt.Sprintf("Mode: %s", e.State.Mode),
		fmt.Sprintf("RNG: seed %d, position %d", e.RNG.Seed(), e.RNG.Position()),
		fmt.Sprintf("Log: %d/%d", e.Log.Len(), e.Log.Cap()),
	}
}

func (m *Model) formatTrace(result types.Result) []string {
	var lines []string
	if len(result.Events) > 0 {
		lines = append(lines, fmt.Sprintf("[trace] Events: %d", len(result.Events)))
		for _, e := range result.Events {
			lines = append(lines, fmt.Sprintf("[trace]   %s %v", e.Type, e.Data))
		}
	}
	return lines
}

// viewportKeyMap returns a viewport keymap with Up/Down disabled
// (we use those for input history).
func viewportKeyMap() viewport.KeyMap {
	return viewport.KeyMap{
		PageDown:     key.NewBinding(key.WithKeys("pgdown")),
		PageUp:       key.NewBinding(key.WithKeys("pgup")),
		HalfPageDown: key.NewBinding(key.WithKeys("ctrl+d")),
		HalfPageUp:   key.NewBinding(key.WithKeys("ctrl+u")),
		Up:           key.NewBinding(key.WithDisabled()),
		Down:         key.NewBinding(key.WithDisabled()),
	}
}
