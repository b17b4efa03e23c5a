package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/nathoo/dicepool/engine/rolllog"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"DICEPOOL_DATA_DIR", "DICEPOOL_SEED", "DICEPOOL_LOG_CAP", "DICEPOOL_DB", "DICEPOOL_PRESETS_DIR"} {
		t.Setenv(k, "")
	}
	c := Load()
	home, _ := os.UserHomeDir()
	if c.DataDir != filepath.Join(home, ".dicepool") || c.Seed != 0 || c.LogCap != rolllog.DefaultCap || c.DBPath != "" || c.PresetsDir != "" {
		t.Errorf("defaults = %+v", c)
	}
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("DICEPOOL_DATA_DIR", "/tmp/dp")
	t.Setenv("DICEPOOL_SEED", "42")
	t.Setenv("DICEPOOL_LOG_CAP", "10")
	t.Setenv("DICEPOOL_DB", "1")
	t.Setenv("DICEPOOL_PRESETS_DIR", "presets")

	c := Load()
	if c.DataDir != "/tmp/dp" {
		t.Errorf("DataDir = %q", c.DataDir)
	}
	if c.Seed != 42 {
		t.Errorf("Seed = %d", c.Seed)
	}
	if c.LogCap != 10 {
		t.Errorf("LogCap = %d", c.LogCap)
	}
	if c.DBPath != filepath.Join("/tmp/dp", "dicepool.db") {
		t.Errorf("DBPath = %q", c.DBPath)
	}
	if c.PresetsDir != "presets" {
		t.Errorf("PresetsDir = %q", c.PresetsDir)
	}
	if c.SaveDir() != filepath.Join("/tmp/dp", "saves") {
		t.Errorf("SaveDir = %q", c.SaveDir())
	}
}

func TestLoad_IgnoresBadNumbers(t *testing.T) {
	t.Setenv("DICEPOOL_SEED", "lots")
	t.Setenv("DICEPOOL_LOG_CAP", "-3")
	c := Load()
	if c.Seed != 0 || c.LogCap != rolllog.DefaultCap {
		t.Errorf("got %+v", c)
	}
}

func TestLoad_ExplicitDBPath(t *testing.T) {
	t.Setenv("DICEPOOL_DB", "/var/lib/rolls.db")
	if c := Load(); c.DBPath != "/var/lib/rolls.db" {
		t.Errorf("DBPath = %q", c.DBPath)
	}
}
