package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/nathoo/dicepool/engine"
	"github.com/nathoo/dicepool/engine/save"
)

// ResolvePath maps a save name to a file: bare names live in dir as
// <name>.json, anything that looks like a path is used as is. An empty
// name falls back to def.
func ResolvePath(dir, name, def string) string {
	if name == "" {
		name = def
	}
	if strings.ContainsRune(name, os.PathSeparator) || strings.HasSuffix(name, ".json") {
		return name
	}
	return filepath.Join(dir, name+".json")
}

// SaveSession writes the engine's session to path.
func SaveSession(eng *engine.Engine, path string) error {
	data, err := save.Save(eng.Snapshot())
	if err != nil {
		return fmt.Errorf("encoding session: %w", err)
	}
	return writeFile(path, data)
}

// LoadSession reads a session from path and applies it to eng.
func LoadSession(eng *engine.Engine, path string) (*save.SaveData, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	sd, err := save.Load(data)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	eng.ApplySave(sd)
	return sd, nil
}

// ExportPresets writes every preset in eng's book to path as a backup.
func ExportPresets(eng *engine.Engine, path string, now time.Time) error {
	data, err := save.Export(eng.Presets.All(), now)
	if err != nil {
		return fmt.Errorf("encoding presets: %w", err)
	}
	return writeFile(path, data)
}

// ImportPresets merges the presets in path into eng's book and returns
// how many were added or updated.
func ImportPresets(eng *engine.Engine, path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}
	presets, err := save.Import(data)
	if err != nil {
		return 0, err
	}
	return eng.Presets.Merge(presets), nil
}

func writeFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
