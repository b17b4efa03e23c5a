package engine

import (
	"context"
	"fmt"

	"github.com/nathoo/dicepool/types"
)

// Recorder mirrors session changes somewhere durable. *store.Store
// satisfies it.
type Recorder interface {
	AppendRoll(ctx context.Context, e types.LogEntry) error
	RecentRolls(ctx context.Context, limit int) ([]types.LogEntry, error)
	ClearRolls(ctx context.Context) error
	SavePresets(ctx context.Context, presets []types.Preset) error
	LoadPresets(ctx context.Context) ([]types.Preset, error)
}

// Persist writes the events of one step to rec. A nil rec is a no-op.
func (e *Engine) Persist(ctx context.Context, rec Recorder, res types.Result) error {
	if rec == nil {
		return nil
	}
	for _, ev := range res.Events {
		switch ev.Type {
		case EventRoll:
			entry, ok := ev.Data["entry"].(types.LogEntry)
			if !ok {
				continue
			}
			if err := rec.AppendRoll(ctx, entry); err != nil {
				return fmt.Errorf("recording roll: %w", err)
			}
		case EventLogCleared:
			if err := rec.ClearRolls(ctx); err != nil {
				return fmt.Errorf("clearing roll log: %w", err)
			}
		case EventPresetSaved, EventPresetsEdited:
			if err := rec.SavePresets(ctx, e.Presets.All()); err != nil {
				return fmt.Errorf("saving presets: %w", err)
			}
		}
	}
	return nil
}

// Resume seeds the roll log and preset book from rec. Stored presets are
// merged over the ones the session started with.
func (e *Engine) Resume(ctx context.Context, rec Recorder) error {
	if rec == nil {
		return nil
	}
	entries, err := rec.RecentRolls(ctx, e.Log.Cap())
	if err != nil {
		return fmt.Errorf("reading roll log: %w", err)
	}
	e.Log.Restore(entries)

	presets, err := rec.LoadPresets(ctx)
	if err != nil {
		return fmt.Errorf("reading presets: %w", err)
	}
	e.Presets.Merge(presets)
	return nil
}
