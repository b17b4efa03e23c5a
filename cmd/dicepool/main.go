// Dicepool is an exact probability calculator and roller for dice-pool checks.
// Usage: dicepool [--version] [--plain] [--script <file>] [--trace]
//
//	[--presets <dir>] [--seed <n>] [--db <path>]
package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/nathoo/dicepool/cli"
	"github.com/nathoo/dicepool/config"
	"github.com/nathoo/dicepool/engine"
	"github.com/nathoo/dicepool/engine/rolllog"
	"github.com/nathoo/dicepool/loader"
	"github.com/nathoo/dicepool/store"
	"github.com/nathoo/dicepool/tui"
)

// Set via -ldflags at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const usage = "Usage: dicepool [--version] [--plain] [--script <file>] [--trace] [--presets <dir>] [--seed <n>] [--db <path>]"

func main() {
	cfg := config.Load()
	plain := false
	trace := false
	var scriptFile string

	args := os.Args[1:]
	// value returns the argument after flag i, exiting if there is none.
	value := func(i int) string {
		if i+1 >= len(args) {
			fmt.Fprintf(os.Stderr, "%s requires a value\n", args[i])
			os.Exit(1)
		}
		return args[i+1]
	}
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--version":
			fmt.Printf("dicepool %s (commit %s, built %s)\n", version, commit, date)
			return
		case "--plain":
			plain = true
		case "--trace":
			trace = true
		case "--script":
			scriptFile = value(i)
			i++
		case "--presets":
			cfg.PresetsDir = value(i)
			i++
		case "--db":
			cfg.DBPath = value(i)
			i++
		case "--seed":
			n, err := strconv.ParseInt(value(i), 10, 64)
			if err != nil {
				fmt.Fprintf(os.Stderr, "--seed: %v\n", err)
				os.Exit(1)
			}
			cfg.Seed = n
			i++
		default:
			fmt.Fprintf(os.Stderr, "unknown argument %q\n%s\n", args[i], usage)
			os.Exit(1)
		}
	}

	// Built-in presets plus any Lua preset files.
	defs, err := loader.LoadWithDefaults(cfg.PresetsDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading presets: %v\n", err)
		os.Exit(1)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	eng := engine.New(defs, seed)
	eng.Log = rolllog.New(cfg.LogCap)

	var rec engine.Recorder
	if cfg.DBPath != "" {
		ctx := context.Background()
		st, err := store.Open(ctx, cfg.DBPath, cfg.LogCap)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
			os.Exit(1)
		}
		defer st.Close()
		if err := eng.Resume(ctx, st); err != nil {
			fmt.Fprintf(os.Stderr, "Error reading database: %v\n", err)
			os.Exit(1)
		}
		rec = st
	}

	// Script mode: open file, force plain, echo commands.
	if scriptFile != "" {
		f, err := os.Open(scriptFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening script: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		c := newCLI(eng, rec, cfg, trace)
		c.In = f
		c.EchoInput = true
		c.Run()
		return
	}

	// Use plain CLI if --plain flag or stdout is not a terminal.
	if plain || !isTerminal() {
		newCLI(eng, rec, cfg, trace).Run()
		return
	}

	if err := tui.Run(eng, rec, cfg.SaveDir()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newCLI(eng *engine.Engine, rec engine.Recorder, cfg *config.Config, trace bool) *cli.CLI {
	c := cli.New(eng)
	c.Recorder = rec
	c.Trace = trace
	c.SaveDir = cfg.SaveDir()
	return c
}

// isTerminal returns true if stdout is a terminal (not piped/redirected).
func isTerminal() bool {
	fi, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}
