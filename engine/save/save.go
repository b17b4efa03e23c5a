// Package save implements JSON serialization of sessions and preset backups.
package save

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/nathoo/dicepool/types"
)

// Version is written into every file this package produces.
const Version = "1"

// BackupType tags a preset backup file.
const BackupType = "DICEPOOL_PRESET_BACKUP"

// SaveData is the JSON-serializable session format.
type SaveData struct {
	Version     string                 `json:"version"`
	Preset      string                 `json:"preset"`
	State       types.ProbabilityState `json:"state"`
	RNGSeed     int64                  `json:"rng_seed"`
	RNGPosition int64                  `json:"rng_position"`
	Log         []types.LogEntry       `json:"log"`
}

// Save serializes a session to JSON bytes.
func Save(sd SaveData) ([]byte, error) {
	sd.Version = Version
	if sd.Log == nil {
		sd.Log = []types.LogEntry{}
	}
	return json.MarshalIndent(sd, "", "  ")
}

// Load deserializes JSON bytes into SaveData.
func Load(data []byte) (*SaveData, error) {
	var sd SaveData
	if err := json.Unmarshal(data, &sd); err != nil {
		return nil, err
	}
	// Ensure maps are never nil after load.
	if sd.State.Dice == nil {
		sd.State.Dice = types.DiceConfig{}
	}
	if sd.State.Mode == "" {
		sd.State.Mode = types.ModeStandard
	}
	if sd.Log == nil {
		sd.Log = []types.LogEntry{}
	}
	return &sd, nil
}

// Backup is the preset export format.
type Backup struct {
	Version   string         `json:"version"`
	Type      string         `json:"type"`
	Timestamp string         `json:"timestamp"`
	Count     int            `json:"count"`
	Data      []types.Preset `json:"data"`
}

// Export serializes presets into a backup document.
func Export(presets []types.Preset, now time.Time) ([]byte, error) {
	if presets == nil {
		presets = []types.Preset{}
	}
	return json.MarshalIndent(Backup{
		Version:   Version,
		Type:      BackupType,
		Timestamp: now.UTC().Format(time.RFC3339),
		Count:     len(presets),
		Data:      presets,
	}, "", "  ")
}

// Import reads presets from a backup document, a bare JSON array of
// presets, or a single preset object. Entries without a name are dropped.
func Import(data []byte) ([]types.Preset, error) {
	var probe struct {
		Type  string          `json:"type"`
		Data  json.RawMessage `json:"data"`
		Name  string          `json:"name"`
		State json.RawMessage `json:"state"`
	}

	var candidates []types.Preset
	switch {
	case len(data) > 0 && firstByte(data) == '[':
		if err := json.Unmarshal(data, &candidates); err != nil {
			return nil, fmt.Errorf("decoding preset list: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &probe); err != nil {
			return nil, fmt.Errorf("decoding preset file: %w", err)
		}
		switch {
		case probe.Type == BackupType && len(probe.Data) > 0:
			if err := json.Unmarshal(probe.Data, &candidates); err != nil {
				return nil, fmt.Errorf("decoding backup data: %w", err)
			}
		case probe.Name != "" && len(probe.State) > 0:
			var p types.Preset
			if err := json.Unmarshal(data, &p); err != nil {
				return nil, fmt.Errorf("decoding preset: %w", err)
			}
			candidates = []types.Preset{p}
		default:
			return nil, fmt.Errorf("unrecognised preset format")
		}
	}

	out := make([]types.Preset, 0, len(candidates))
	for _, p := range candidates {
		if p.Name == "" {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

// firstByte returns the first non-whitespace byte of data.
func firstByte(data []byte) byte {
	for _, b := range data {
		switch b {
		case ' ', '\t', '\n', '\r':
			continue
		}
		return b
	}
	return 0
}
