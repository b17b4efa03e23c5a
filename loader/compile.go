// Package loader loads Lua preset files into Go structs at startup.
// The Lua VM is discarded after loading, so no Lua runs at runtime.
package loader

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/nathoo/dicepool/engine/state"
	"github.com/nathoo/dicepool/types"
	lua "github.com/yuin/gopher-lua"
)

// rawPreset holds a preset table before compilation.
type rawPreset struct {
	name     string
	file     string
	table    *lua.LTable
	defaults *lua.LTable // Defaults in effect when the preset was declared, may be nil
}

// field returns key from the preset table, falling back to its defaults.
func (r rawPreset) field(key string) lua.LValue {
	if v := r.table.RawGetString(key); v != lua.LNil {
		return v
	}
	if r.defaults != nil {
		return r.defaults.RawGetString(key)
	}
	return lua.LNil
}

func (r rawPreset) getString(key string) string {
	if s, ok := r.field(key).(lua.LString); ok {
		return string(s)
	}
	return ""
}

func (r rawPreset) getBool(key string) bool {
	if b, ok := r.field(key).(lua.LBool); ok {
		return bool(b)
	}
	return false
}

// getInt returns an int field, or def if missing.
func (r rawPreset) getInt(key string, def int) int {
	if n, ok := r.field(key).(lua.LNumber); ok {
		return int(n)
	}
	return def
}

func (r rawPreset) getTable(key string) *lua.LTable {
	if t, ok := r.field(key).(*lua.LTable); ok {
		return t
	}
	return nil
}

// compile transforms collected Lua tables into Defs, in declaration order.
func compile(coll *collector) (*state.Defs, error) {
	defs := &state.Defs{}
	for i, raw := range coll.presets {
		p, err := compilePreset(raw)
		if err != nil {
			return nil, fmt.Errorf("preset %q (%s): %w", raw.name, raw.file, err)
		}
		p.ID = fmt.Sprintf("lua-%d", i+1)
		defs.Presets = append(defs.Presets, p)
	}
	return defs, nil
}

func compilePreset(raw rawPreset) (types.Preset, error) {
	def := state.NewState()
	s := types.ProbabilityState{
		Skill:        raw.getInt("skill", 0),
		Modifier:     raw.getInt("modifier", raw.getInt("mod", 0)),
		Target:       raw.getInt("target", raw.getInt("dc", def.Target)),
		Advantage:    raw.getBool("advantage"),
		Disadvantage: raw.getBool("disadvantage"),
		Mode:         types.CalculationMode(strings.ToLower(raw.getString("mode"))),
	}
	if s.Mode == "" {
		s.Mode = types.ModeStandard
	}

	dice, err := compileDice(raw.getTable("dice"))
	if err != nil {
		return types.Preset{}, err
	}
	s.Dice = dice

	return types.Preset{Name: strings.TrimSpace(raw.name), State: s}, nil
}

// compileDice reads a dice table keyed either by "d20" strings or by
// bare side counts ({[20] = 1}).
func compileDice(tbl *lua.LTable) (types.DiceConfig, error) {
	dice := types.DiceConfig{}
	if tbl == nil {
		return dice, nil
	}
	var err error
	tbl.ForEach(func(k, v lua.LValue) {
		if err != nil {
			return
		}
		n, ok := v.(lua.LNumber)
		if !ok {
			err = fmt.Errorf("dice entry %s: count must be a number, got %s", k.String(), v.Type())
			return
		}
		sides, perr := dieKey(k)
		if perr != nil {
			err = perr
			return
		}
		dice[sides] += int(n)
	})
	if err != nil {
		return nil, err
	}
	return dice, nil
}

func dieKey(k lua.LValue) (types.DieType, error) {
	switch key := k.(type) {
	case lua.LNumber:
		return types.DieType(int(key)), nil
	case lua.LString:
		s := strings.TrimPrefix(strings.ToLower(string(key)), "d")
		n, err := strconv.Atoi(s)
		if err != nil {
			return 0, fmt.Errorf("dice key %q is not a die like d20", string(key))
		}
		return types.DieType(n), nil
	}
	return 0, fmt.Errorf("dice key %s is not a die like d20", k.String())
}

// sortedLuaFiles returns .lua files with defaults.lua first and the rest
// sorted alphabetically.
func sortedLuaFiles(files []string) []string {
	var defaultsFile string
	var others []string
	for _, f := range files {
		if f == "defaults.lua" {
			defaultsFile = f
		} else {
			others = append(others, f)
		}
	}
	sort.Strings(others)
	if defaultsFile != "" {
		return append([]string{defaultsFile}, others...)
	}
	return others
}
