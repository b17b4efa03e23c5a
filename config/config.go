// Package config reads dicepool defaults from the environment.
// Command-line flags override these in cmd/dicepool.
package config

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/nathoo/dicepool/engine/rolllog"
)

// Config holds the settings a dicepool session starts with.
type Config struct {
	PresetsDir string // directory of Lua preset files, empty for none
	DataDir    string // saves go in DataDir/saves, the default database in DataDir
	DBPath     string // SQLite file, empty disables persistence
	Seed       int64  // 0 means seed from the clock
	LogCap     int    // roll log entries kept in memory and in the database
}

// Load reads the DICEPOOL_* environment variables. Unset or malformed values
// fall back to defaults, with DataDir under the home directory.
// DICEPOOL_DB=1 selects DataDir/dicepool.db; the directory is created on open.
func Load() *Config {
	dataDir := os.Getenv("DICEPOOL_DATA_DIR")
	if dataDir == "" {
		home, _ := os.UserHomeDir()
		dataDir = filepath.Join(home, ".dicepool")
	}
	var seed int64
	if s := os.Getenv("DICEPOOL_SEED"); s != "" {
		if v, err := strconv.ParseInt(s, 10, 64); err == nil {
			seed = v
		}
	}
	logCap := rolllog.DefaultCap
	if s := os.Getenv("DICEPOOL_LOG_CAP"); s != "" {
		if v, err := strconv.Atoi(s); err == nil && v > 0 {
			logCap = v
		}
	}
	dbPath := os.Getenv("DICEPOOL_DB")
	if dbPath == "1" {
		dbPath = filepath.Join(dataDir, "dicepool.db")
	}
	return &Config{
		PresetsDir: os.Getenv("DICEPOOL_PRESETS_DIR"),
		DataDir:    dataDir,
		DBPath:     dbPath,
		Seed:       seed,
		LogCap:     logCap,
	}
}

// SaveDir is where /save, /load, /export and /import resolve bare names.
func (c *Config) SaveDir() string {
	return filepath.Join(c.DataDir, "saves")
}
