package loader

import (
	"fmt"
	"os"
	"strings"

	"github.com/nathoo/dicepool/engine/state"
	"github.com/nathoo/dicepool/types"
)

// ValidationError collects all validation errors and warnings.
type ValidationError struct {
	Errors   []string
	Warnings []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed with %d error(s):\n  %s",
		len(e.Errors), strings.Join(e.Errors, "\n  "))
}

// validate checks compiled presets for values the console could never set.
func validate(defs *state.Defs) error {
	ve := &ValidationError{}

	names := map[string]bool{}
	for _, p := range defs.Presets {
		if p.Name == "" {
			ve.Errors = append(ve.Errors, "preset name is required")
			continue
		}
		key := strings.ToUpper(p.Name)
		if names[key] {
			ve.Errors = append(ve.Errors, fmt.Sprintf("duplicate preset %q", p.Name))
		}
		names[key] = true

		validateState(p.Name, p.State, ve)
	}

	// Print warnings to stderr.
	for _, w := range ve.Warnings {
		fmt.Fprintf(os.Stderr, "warning: %s\n", w)
	}

	if len(ve.Errors) > 0 {
		return ve
	}
	return nil
}

func validateState(name string, s types.ProbabilityState, ve *ValidationError) {
	for sides, n := range s.Dice {
		if !state.ValidDie(int(sides)) {
			ve.Errors = append(ve.Errors, fmt.Sprintf(
				"preset %q uses unsupported die d%d", name, sides))
		}
		if n < 0 || n > state.MaxDicePerType {
			ve.Errors = append(ve.Errors, fmt.Sprintf(
				"preset %q has %d d%d, want 0..%d", name, n, sides, state.MaxDicePerType))
		}
	}
	if state.TotalDice(&s) == 0 {
		ve.Warnings = append(ve.Warnings, fmt.Sprintf("preset %q has no dice", name))
	}

	if s.Skill < 0 || s.Skill > state.MaxSkill {
		ve.Errors = append(ve.Errors, fmt.Sprintf(
			"preset %q skill %d out of range 0..%d", name, s.Skill, state.MaxSkill))
	}
	if s.Modifier < state.MinModifier || s.Modifier > state.MaxModifier {
		ve.Errors = append(ve.Errors, fmt.Sprintf(
			"preset %q modifier %d out of range %d..%d", name, s.Modifier, state.MinModifier, state.MaxModifier))
	}
	if s.Target < state.MinTarget {
		ve.Errors = append(ve.Errors, fmt.Sprintf(
			"preset %q target %d below %d", name, s.Target, state.MinTarget))
	}
	if s.Advantage && s.Disadvantage {
		ve.Errors = append(ve.Errors, fmt.Sprintf(
			"preset %q sets both advantage and disadvantage", name))
	}
	switch s.Mode {
	case types.ModeStandard, types.ModeVersus:
	default:
		ve.Errors = append(ve.Errors, fmt.Sprintf(
			"preset %q has unknown mode %q", name, s.Mode))
	}
}
