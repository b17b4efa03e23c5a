package state

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/nathoo/dicepool/types"
)

// DefaultPresets returns the presets every session starts with.
func DefaultPresets() []types.Preset {
	return []types.Preset{
		{
			ID:   "1",
			Name: "STANDARD_ATK",
			State: types.ProbabilityState{
				Dice: types.DiceConfig{types.D20: 1}, Skill: 5, Target: 15, Mode: types.ModeStandard,
			},
		},
		{
			ID:   "2",
			Name: "HEAVY_DMG",
			State: types.ProbabilityState{
				Dice: types.DiceConfig{types.D6: 2, types.D4: 1}, Skill: 2, Modifier: -2, Target: 10, Mode: types.ModeStandard,
			},
		},
	}
}

// PresetBook is an ordered collection of presets with unique names.
type PresetBook struct {
	presets []types.Preset
	newID   func() string
}

// NewPresetBook creates a book holding copies of the given presets.
func NewPresetBook(presets []types.Preset) *PresetBook {
	b := &PresetBook{newID: uuid.NewString}
	b.Merge(presets)
	return b
}

// All returns a copy of the presets in order.
func (b *PresetBook) All() []types.Preset {
	out := make([]types.Preset, len(b.presets))
	for i, p := range b.presets {
		out[i] = p
		out[i].State = Clone(p.State)
	}
	return out
}

// Len returns the number of presets.
func (b *PresetBook) Len() int {
	return len(b.presets)
}

// Find looks up a preset by case-insensitive name.
func (b *PresetBook) Find(name string) (types.Preset, bool) {
	if i := b.index(name); i >= 0 {
		p := b.presets[i]
		p.State = Clone(p.State)
		return p, true
	}
	return types.Preset{}, false
}

// Save stores s under name, overwriting an existing preset of the same
// name. An empty name becomes LOADOUT_<n>.
func (b *PresetBook) Save(name string, s types.ProbabilityState) types.Preset {
	name = strings.TrimSpace(name)
	if name == "" {
		name = fmt.Sprintf("LOADOUT_%d", len(b.presets)+1)
	}
	if i := b.index(name); i >= 0 {
		b.presets[i].State = Clone(s)
		return b.presets[i]
	}
	b.presets = append(b.presets, types.Preset{ID: b.newID(), Name: name, State: Clone(s)})
	return b.presets[len(b.presets)-1]
}

// SaveAsNew stores s under a fresh name derived from base, appending
// _2, _3, ... until the name is unused.
func (b *PresetBook) SaveAsNew(base string, s types.ProbabilityState) types.Preset {
	base = strings.TrimSpace(base)
	if base == "" {
		base = "LOADOUT"
	}
	name := base
	for n := 2; b.index(name) >= 0; n++ {
		name = fmt.Sprintf("%s_%d", base, n)
	}
	return b.Save(name, s)
}

// Delete removes a preset by name. Returns false if it was not found.
func (b *PresetBook) Delete(name string) bool {
	i := b.index(name)
	if i < 0 {
		return false
	}
	b.presets = append(b.presets[:i], b.presets[i+1:]...)
	return true
}

// Rename changes a preset's name. Fails if the new name is taken.
func (b *PresetBook) Rename(from, to string) error {
	to = strings.TrimSpace(to)
	if to == "" {
		return fmt.Errorf("preset name cannot be empty")
	}
	i := b.index(from)
	if i < 0 {
		return fmt.Errorf("no preset named %q", from)
	}
	if j := b.index(to); j >= 0 && j != i {
		return fmt.Errorf("preset %q already exists", to)
	}
	b.presets[i].Name = to
	return nil
}

// Merge imports presets: a matching name has its state replaced, anything
// else is appended. Entries without a name are skipped. Returns how many
// presets were added or updated.
func (b *PresetBook) Merge(incoming []types.Preset) int {
	n := 0
	for _, p := range incoming {
		name := strings.TrimSpace(p.Name)
		if name == "" {
			continue
		}
		if i := b.index(name); i >= 0 {
			b.presets[i].State = Clone(p.State)
			n++
			continue
		}
		id := p.ID
		if id == "" {
			id = b.newID()
		}
		b.presets = append(b.presets, types.Preset{ID: id, Name: name, State: Clone(p.State)})
		n++
	}
	return n
}

func (b *PresetBook) index(name string) int {
	name = strings.TrimSpace(name)
	for i, p := range b.presets {
		if strings.EqualFold(p.Name, name) {
			return i
		}
	}
	return -1
}
