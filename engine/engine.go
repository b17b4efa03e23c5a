// Package engine provides the exact probability engine, the roll sampler,
// and the Step() orchestrator that applies console commands to a session.
package engine

import (
	"fmt"
	"strings"

	"github.com/nathoo/dicepool/engine/parser"
	"github.com/nathoo/dicepool/engine/rolllog"
	"github.com/nathoo/dicepool/engine/save"
	"github.com/nathoo/dicepool/engine/state"
	"github.com/nathoo/dicepool/types"
)

// Event types emitted by Step.
const (
	EventConfigChanged = "config_changed"
	EventRoll          = "roll"
	EventPresetSaved   = "preset_saved"
	EventPresetsEdited = "presets_edited"
	EventLogCleared    = "log_cleared"
)

const diceWant = "dice like d20 or 2d6 (d4 d6 d8 d10 d12 d20 d100)"

// Engine holds one interactive session: the current configuration, the
// preset book, the roll log and the RNG used for rolls.
type Engine struct {
	Defs    *state.Defs
	State   *types.ProbabilityState
	Presets *state.PresetBook
	Log     *rolllog.Log
	RNG     *RNG
	Preset  string // name of the last loaded or saved preset

	sim types.SimulationResult
}

// New creates a session from definitions with the default configuration.
func New(defs *state.Defs, seed int64) *Engine {
	e := &Engine{
		Defs:    defs,
		State:   state.NewState(),
		Presets: state.NewPresetBook(defs.Presets),
		Log:     rolllog.New(rolllog.DefaultCap),
		RNG:     NewRNG(seed),
		Preset:  "UNNAMED_LOADOUT",
	}
	e.recompute()
	return e
}

// Simulation returns the summary for the current configuration.
func (e *Engine) Simulation() types.SimulationResult {
	return e.sim
}

// RestoreRNG re-creates the RNG from seed and advances to the saved position.
func (e *Engine) RestoreRNG(seed int64, position int64) {
	e.RNG = RestoreRNG(seed, position)
}

// Snapshot captures the session for saving.
func (e *Engine) Snapshot() save.SaveData {
	return save.SaveData{
		Preset:      e.Preset,
		State:       state.Clone(*e.State),
		RNGSeed:     e.RNG.Seed(),
		RNGPosition: e.RNG.Position(),
		Log:         e.Log.Entries(),
	}
}

// ApplySave restores a session saved with Snapshot.
func (e *Engine) ApplySave(sd *save.SaveData) {
	st := state.Clone(sd.State)
	e.State = &st
	if sd.Preset != "" {
		e.Preset = sd.Preset
	}
	e.RestoreRNG(sd.RNGSeed, sd.RNGPosition)
	e.Log.Restore(sd.Log)
	e.recompute()
}

// LoadPreset replaces the configuration with a preset's.
func (e *Engine) LoadPreset(p types.Preset) {
	st := state.Clone(p.State)
	e.State = &st
	e.Preset = p.Name
	e.recompute()
}

// Roll performs one check against the current configuration and records
// it in the log.
func (e *Engine) Roll() types.LogEntry {
	out := PerformRoll(*e.State, e.RNG)
	return e.Log.Record(out, e.State.Target)
}

func (e *Engine) recompute() {
	e.sim = CalculateSimulation(*e.State)
}

// Step processes one console command and returns the result.
func (e *Engine) Step(input string) types.Result {
	var result types.Result

	intent := parser.Parse(input)
	if intent.Verb == "" {
		result.Output = append(result.Output, "Enter a command. Type /help for the list.")
		return result
	}

	changed, out, err := e.edit(intent)
	if err != nil {
		result.Output = append(result.Output, err.Error())
		return result
	}
	if changed {
		e.recompute()
		result.Output = append(result.Output, out...)
		result.Output = append(result.Output, FormatSummary(*e.State, e.sim)...)
		result.Events = append(result.Events, types.Event{
			Type: EventConfigChanged,
			Data: map[string]any{"verb": intent.Verb, "chance": e.sim.Chance},
		})
		return result
	}
	if out != nil {
		result.Output = append(result.Output, out...)
		return result
	}

	switch intent.Verb {
	case "roll":
		entry := e.Roll()
		result.Output = append(result.Output, FormatLogEntry(entry)...)
		result.Events = append(result.Events, types.Event{
			Type: EventRoll,
			Data: map[string]any{"entry": entry},
		})

	case "stats", "dice":
		result.Output = append(result.Output, FormatSummary(*e.State, e.sim)...)

	case "chart":
		result.Output = append(result.Output, FormatChart(e.sim, e.State.Target, 40)...)

	case "log":
		result.Output = append(result.Output, e.logLines(intent.Args)...)
		if len(intent.Args) > 0 && strings.EqualFold(intent.Args[0], "clear") {
			result.Events = append(result.Events, types.Event{Type: EventLogCleared})
		}

	case "presets":
		result.Output = append(result.Output, e.presetLines()...)

	case "preset":
		out, evt, loaded := e.presetCommand(intent.Args)
		result.Output = append(result.Output, out...)
		if evt != nil {
			result.Events = append(result.Events, *evt)
		}
		if loaded {
			result.Output = append(result.Output, FormatSummary(*e.State, e.sim)...)
			result.Events = append(result.Events, types.Event{
				Type: EventConfigChanged,
				Data: map[string]any{"verb": intent.Verb, "chance": e.sim.Chance},
			})
		}

	default:
		result.Output = append(result.Output, fmt.Sprintf("Unknown command: %s. Type /help for available commands.", intent.Verb))
	}

	return result
}

// edit applies configuration commands. changed reports whether the
// simulation must be recomputed; out carries any extra lines.
func (e *Engine) edit(intent types.Intent) (changed bool, out []string, err error) {
	s := e.State
	args := intent.Args

	switch intent.Verb {
	case "add", "remove":
		if len(args) == 0 {
			return false, nil, &UsageError{Usage: intent.Verb + " <dice>, e.g. " + intent.Verb + " 2d6"}
		}
		for _, a := range args {
			count, sides, perr := parser.ParseDice(a)
			if perr != nil {
				return false, nil, &ArgError{Arg: a, Want: diceWant}
			}
			if intent.Verb == "remove" {
				count = -count
			}
			state.AddDice(s, sides, count)
		}
		return true, nil, nil

	case "set":
		if len(args) < 2 {
			return false, nil, &UsageError{Usage: "set <die> <count>, e.g. set d8 3"}
		}
		_, sides, perr := parser.ParseDice(args[0])
		if perr != nil {
			return false, nil, &ArgError{Arg: args[0], Want: diceWant}
		}
		n, perr := parser.ParseInt(args[1])
		if perr != nil {
			return false, nil, &ArgError{Arg: args[1], Want: "a dice count"}
		}
		state.SetDice(s, sides, n)
		return true, nil, nil

	case "clear":
		state.ClearDice(s)
		return true, nil, nil

	case "skill", "mod", "dc":
		if len(args) == 0 {
			return false, nil, &UsageError{Usage: intent.Verb + " <number>"}
		}
		n, perr := parser.ParseInt(args[0])
		if perr != nil {
			return false, nil, &ArgError{Arg: args[0], Want: "a number"}
		}
		var got int
		switch intent.Verb {
		case "skill":
			got = state.SetSkill(s, n)
		case "mod":
			got = state.SetModifier(s, n)
		default:
			got = state.SetTarget(s, n)
		}
		if got != n {
			out = append(out, fmt.Sprintf("%s limited to %d.", strings.ToUpper(intent.Verb), got))
		}
		return true, out, nil

	case "adv":
		state.ToggleAdvantage(s)
		return true, nil, nil

	case "dis":
		state.ToggleDisadvantage(s)
		return true, nil, nil

	case "normal":
		state.ClearAdvantage(s)
		return true, nil, nil

	case "mode":
		if len(args) == 0 {
			return false, []string{fmt.Sprintf("Mode: %s", s.Mode)}, nil
		}
		switch m := types.CalculationMode(strings.ToLower(args[0])); m {
		case types.ModeStandard, types.ModeVersus:
			s.Mode = m
		default:
			return false, nil, &ArgError{Arg: args[0], Want: "standard or versus"}
		}
		if s.Mode == types.ModeVersus {
			out = append(out, "Versus mode is not resolved yet; results use standard rules.")
		}
		return true, out, nil

	case "reset":
		e.State = state.NewState()
		e.Preset = "UNNAMED_LOADOUT"
		return true, nil, nil
	}

	return false, nil, nil
}

func (e *Engine) logLines(args []string) []string {
	if len(args) > 0 && strings.EqualFold(args[0], "clear") {
		e.Log.Clear()
		return []string{"Roll log cleared."}
	}

	entries := e.Log.Entries()
	if len(entries) == 0 {
		return []string{"No rolls yet."}
	}

	limit := 10
	if len(args) > 0 {
		if n, err := parser.ParseInt(args[0]); err == nil && n > 0 {
			limit = n
		}
	}
	if limit < len(entries) {
		entries = entries[:limit]
	}

	var lines []string
	for _, entry := range entries {
		lines = append(lines, FormatLogLine(entry))
	}
	lines = append(lines, fmt.Sprintf("%d of %d rolls, %.0f%% success.",
		len(entries), e.Log.Len(), e.Log.SuccessRate()*100))
	return lines
}

func (e *Engine) presetLines() []string {
	all := e.Presets.All()
	if len(all) == 0 {
		return []string{"No presets."}
	}
	lines := make([]string, 0, len(all))
	for _, p := range all {
		marker := " "
		if strings.EqualFold(p.Name, e.Preset) {
			marker = "*"
		}
		lines = append(lines, fmt.Sprintf("%s %-16s %s", marker, p.Name, FormatConfig(p.State)))
	}
	return lines
}

// presetCommand handles "preset <name>", "preset save <name>",
// "preset new <name>", "preset delete <name>" and "preset rename <from> <to>".
func (e *Engine) presetCommand(args []string) ([]string, *types.Event, bool) {
	if len(args) == 0 {
		return []string{fmt.Sprintf("Current preset: %s", e.Preset)}, nil, false
	}

	sub := strings.ToLower(args[0])
	rest := strings.Join(args[1:], " ")

	switch sub {
	case "list":
		return e.presetLines(), nil, false

	case "save", "new":
		name := rest
		if name == "" && sub == "save" {
			name = e.Preset
		}
		var p types.Preset
		if sub == "new" {
			p = e.Presets.SaveAsNew(name, *e.State)
		} else {
			p = e.Presets.Save(name, *e.State)
		}
		e.Preset = p.Name
		return []string{fmt.Sprintf("Preset %s saved.", p.Name)},
			&types.Event{Type: EventPresetSaved, Data: map[string]any{"preset": p}}, false

	case "delete", "rm":
		if rest == "" {
			return []string{"Usage: preset delete <name>"}, nil, false
		}
		if !e.Presets.Delete(rest) {
			return []string{fmt.Sprintf("No preset named %s.", rest)}, nil, false
		}
		return []string{fmt.Sprintf("Preset %s deleted.", rest)},
			&types.Event{Type: EventPresetsEdited, Data: map[string]any{"deleted": rest}}, false

	case "rename":
		if len(args) < 3 {
			return []string{"Usage: preset rename <from> <to>"}, nil, false
		}
		if err := e.Presets.Rename(args[1], args[2]); err != nil {
			return []string{fmt.Sprintf("Rename failed: %v", err)}, nil, false
		}
		if strings.EqualFold(e.Preset, args[1]) {
			e.Preset = args[2]
		}
		return []string{fmt.Sprintf("Preset %s renamed to %s.", args[1], args[2])},
			&types.Event{Type: EventPresetsEdited, Data: map[string]any{"renamed": args[1], "to": args[2]}}, false
	}

	name := strings.Join(args, " ")
	p, ok := e.Presets.Find(name)
	if !ok {
		return []string{fmt.Sprintf("No preset named %s. Type presets to list them.", name)}, nil, false
	}
	e.LoadPreset(p)
	return []string{fmt.Sprintf("Loaded preset %s.", p.Name)}, nil, true
}
