// Package cli provides terminal I/O, output formatting, and meta-command
// dispatch for the dicepool console.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/nathoo/dicepool/engine"
	"github.com/nathoo/dicepool/types"
)

// Banner is printed before the first prompt.
const Banner = "DICEPOOL // probability console. Type /help for commands."

// CLI handles line-based terminal interaction.
type CLI struct {
	Engine    *engine.Engine
	Recorder  engine.Recorder // optional, mirrors rolls and presets
	In        io.Reader
	Out       io.Writer
	SaveDir   string
	Trace     bool
	EchoInput bool   // echo each input line after the prompt (for script playback)
	lastCmd   string // for "again"/"g" repeat
	now       func() time.Time
}

// New creates a CLI wired to the given engine.
func New(eng *engine.Engine) *CLI {
	home, _ := os.UserHomeDir()
	return &CLI{
		Engine:  eng,
		In:      os.Stdin,
		Out:     os.Stdout,
		SaveDir: filepath.Join(home, ".dicepool", "saves"),
		now:     time.Now,
	}
}

// Run starts the console loop: banner and current stats, then
// prompt → input → dispatch → output until EOF or /quit.
func (c *CLI) Run() {
	c.printLine(Banner)
	c.printResult(c.Engine.Step("stats"))

	scanner := bufio.NewScanner(c.In)
	for {
		c.print("> ")
		if !scanner.Scan() {
			break
		}
		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}
		// Skip comment lines (for script files).
		if strings.HasPrefix(input, "#") {
			continue
		}
		if c.EchoInput {
			c.printLine(input)
		}

		// Meta-commands start with '/'.
		if strings.HasPrefix(input, "/") {
			if c.handleMeta(input) {
				return // /quit
			}
			continue
		}

		// "again" / "g" repeats the last command.
		lower := strings.ToLower(input)
		if lower == "again" || lower == "g" {
			if c.lastCmd == "" {
				c.printLine("Nothing to repeat.")
				continue
			}
			input = c.lastCmd
		} else {
			c.lastCmd = input
		}

		result := c.Engine.Step(input)
		c.printResult(result)
		c.persist(result)

		if c.Trace {
			c.printTrace(result)
		}
	}
}

func (c *CLI) persist(result types.Result) {
	if err := c.Engine.Persist(context.Background(), c.Recorder, result); err != nil {
		c.printSystem(fmt.Sprintf("Store error: %v", err))
	}
}

// handleMeta dispatches meta-commands. Returns true if the console should exit.
func (c *CLI) handleMeta(input string) bool {
	parts := strings.Fields(input)
	cmd := strings.ToLower(parts[0])
	var arg string
	if len(parts) > 1 {
		arg = parts[1]
	}

	switch cmd {
	case "/quit", "/exit":
		c.printSystem("Goodbye.")
		return true

	case "/save":
		c.cmdSave(arg)

	case "/load":
		c.cmdLoad(arg)

	case "/export":
		c.cmdExport(arg)

	case "/import":
		c.cmdImport(arg)

	case "/help":
		c.cmdHelp()

	case "/state":
		c.cmdState()

	case "/trace":
		c.Trace = !c.Trace
		if c.Trace {
			c.printSystem("Trace output enabled.")
		} else {
			c.printSystem("Trace output disabled.")
		}

	default:
		c.printSystem(fmt.Sprintf("Unknown command: %s. Type /help for available commands.", cmd))
	}

	return false
}

func (c *CLI) cmdSave(name string) {
	path := ResolvePath(c.SaveDir, name, "quicksave")
	if err := SaveSession(c.Engine, path); err != nil {
		c.printSystem(fmt.Sprintf("Save failed: %v", err))
		return
	}
	c.printSystem(fmt.Sprintf("Session saved to %s.", path))
}

func (c *CLI) cmdLoad(name string) {
	path := ResolvePath(c.SaveDir, name, "quicksave")
	sd, err := LoadSession(c.Engine, path)
	if err != nil {
		c.printSystem(fmt.Sprintf("Load failed: %v", err))
		return
	}
	c.printSystem(fmt.Sprintf("Session loaded from %s (%d rolls).", path, len(sd.Log)))
	c.printResult(c.Engine.Step("stats"))
}

func (c *CLI) cmdExport(name string) {
	path := ResolvePath(c.SaveDir, name, "presets")
	if err := ExportPresets(c.Engine, path, c.now()); err != nil {
		c.printSystem(fmt.Sprintf("Export failed: %v", err))
		return
	}
	c.printSystem(fmt.Sprintf("Exported %d presets to %s.", c.Engine.Presets.Len(), path))
}

func (c *CLI) cmdImport(name string) {
	path := ResolvePath(c.SaveDir, name, "presets")
	n, err := ImportPresets(c.Engine, path)
	if err != nil {
		c.printSystem(fmt.Sprintf("Import failed: %v", err))
		return
	}
	c.printSystem(fmt.Sprintf("Imported %d presets from %s.", n, path))
	c.persist(types.Result{Events: []types.Event{{Type: engine.EventPresetsEdited}}})
}

// HelpLines lists the console commands. Shared with the TUI.
var HelpLines = []string{
	"System:",
	"  /save [name]    — Save session (default: quicksave)",
	"  /load [name]    — Load session (default: quicksave)",
	"  /export [name]  — Export presets as a JSON backup",
	"  /import [name]  — Import presets from a JSON backup",
	"  /quit           — Exit",
	"  /help           — Show this help",
	"  /state          — Debug: dump current configuration",
	"  /trace          — Toggle debug trace output",
	"",
	"Pool:",
	"  d20, 2d6, +d8       — Add dice",
	"  -d6, remove 2d6     — Remove dice",
	"  set d8 3            — Set a die count",
	"  clear               — Empty the pool",
	"  skill N / mod N / dc N",
	"  adv / dis / normal  — Advantage, disadvantage, single roll",
	"  mode standard|versus",
	"  reset               — Back to 1D20, skill 5, DC 15",
	"",
	"Output:",
	"  stats (s)           — Chance, mean, deviation, range",
	"  chart (c)           — Outcome histogram",
	"  roll (r)            — Roll against the DC",
	"  log [n|clear] (h)   — Recent rolls",
	"  again (g)           — Repeat your last command",
	"",
	"Presets:",
	"  presets (ls)        — List presets",
	"  preset <name>       — Load a preset",
	"  preset save [name] / preset new <name>",
	"  preset delete <name> / preset rename <from> <to>",
}

func (c *CLI) cmdHelp() {
	for _, line := range HelpLines {
		c.printLine(line)
	}
}

func (c *CLI) cmdState() {
	s := c.Engine.State
	c.printSystem(fmt.Sprintf("Preset: %s", c.Engine.Preset))
	c.printSystem(fmt.Sprintf("Config: %s", engine.FormatConfig(*s)))
	c.printSystem(fmt.Sprintf("Mode: %s", s.Mode))
	c.printSystem(fmt.Sprintf("RNG: seed %d, position %d", c.Engine.RNG.Seed(), c.Engine.RNG.Position()))
	c.printSystem(fmt.Sprintf("Log: %d/%d", c.Engine.Log.Len(), c.Engine.Log.Cap()))
}

func (c *CLI) printTrace(result types.Result) {
	if len(result.Events) > 0 {
		c.printSystem(fmt.Sprintf("[trace] Events: %d", len(result.Events)))
		for _, e := range result.Events {
			c.printSystem(fmt.Sprintf("[trace]   %s %v", e.Type, e.Data))
		}
	}
}

func (c *CLI) printResult(result types.Result) {
	for _, line := range result.Output {
		c.printLine(line)
	}
}

func (c *CLI) printLine(text string) {
	fmt.Fprintln(c.Out, text)
}

func (c *CLI) print(text string) {
	fmt.Fprint(c.Out, text)
}

func (c *CLI) printSystem(text string) {
	fmt.Fprintf(c.Out, "[%s]\n", text)
}
