package loader

import (
	"fmt"

	"github.com/nathoo/dicepool/engine/parser"
	lua "github.com/yuin/gopher-lua"
)

// registerAPI registers the preset constructors and helpers as globals.
func registerAPI(L *lua.LState, coll *collector) {
	// Preset "NAME" { ... } is curried: Preset("NAME") returns a function that takes a table.
	L.SetGlobal("Preset", L.NewFunction(func(L *lua.LState) int {
		name := L.CheckString(1)
		file, defaults := coll.file, coll.defaults
		L.Push(L.NewFunction(func(L *lua.LState) int {
			tbl := L.CheckTable(1)
			coll.presets = append(coll.presets, rawPreset{
				name: name, file: file, table: tbl, defaults: defaults,
			})
			return 0
		}))
		return 1
	}))

	// Defaults { skill = 3, target = 12 } sets fields every later preset inherits.
	L.SetGlobal("Defaults", L.NewFunction(func(L *lua.LState) int {
		coll.defaults = L.CheckTable(1)
		return 0
	}))

	// Dice("1d20", "2d6") returns { d20 = 1, d6 = 2 }.
	L.SetGlobal("Dice", L.NewFunction(func(L *lua.LState) int {
		tbl := L.NewTable()
		for i := 1; i <= L.GetTop(); i++ {
			notation := L.CheckString(i)
			count, sides, err := parser.ParseDice(notation)
			if err != nil {
				L.ArgError(i, err.Error())
				return 0
			}
			key := fmt.Sprintf("d%d", sides)
			prev, _ := tbl.RawGetString(key).(lua.LNumber)
			tbl.RawSetString(key, prev+lua.LNumber(count))
		}
		L.Push(tbl)
		return 1
	}))
}
