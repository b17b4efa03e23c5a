// Package rolllog keeps the most recent roll outcomes, newest first.
package rolllog

import (
	"time"

	"github.com/google/uuid"

	"github.com/nathoo/dicepool/types"
)

// DefaultCap is the number of entries kept when no cap is given.
const DefaultCap = 50

// Log is a capped, newest-first list of roll entries.
type Log struct {
	entries []types.LogEntry
	max     int
	now     func() time.Time
	newID   func() string
}

// New creates a log holding at most max entries. max <= 0 uses DefaultCap.
func New(max int) *Log {
	if max <= 0 {
		max = DefaultCap
	}
	return &Log{
		entries: make([]types.LogEntry, 0, max),
		max:     max,
		now:     time.Now,
		newID:   uuid.NewString,
	}
}

// Record turns a roll outcome into a log entry, stamps it, and puts it at
// the head of the log. The oldest entry is dropped past the cap.
func (l *Log) Record(out types.RollOutcome, target int) types.LogEntry {
	e := types.LogEntry{
		ID:         l.newID(),
		Timestamp:  l.now().Format(time.RFC3339),
		IsSuccess:  out.IsSuccess,
		FinalTotal: out.FinalTotal,
		Target:     target,
		RollType:   out.RollType,
		Rolls:      append([]types.RollDetail(nil), out.Rolls...),
	}
	l.push(e)
	return e
}

func (l *Log) push(e types.LogEntry) {
	l.entries = append([]types.LogEntry{e}, l.entries...)
	if len(l.entries) > l.max {
		l.entries = l.entries[:l.max]
	}
}

// Entries returns a copy of the log, newest first.
func (l *Log) Entries() []types.LogEntry {
	return append([]types.LogEntry(nil), l.entries...)
}

// Latest returns the most recent entry.
func (l *Log) Latest() (types.LogEntry, bool) {
	if len(l.entries) == 0 {
		return types.LogEntry{}, false
	}
	return l.entries[0], true
}

// Len returns the number of entries.
func (l *Log) Len() int {
	return len(l.entries)
}

// Cap returns the maximum number of entries kept.
func (l *Log) Cap() int {
	return l.max
}

// Clear drops every entry.
func (l *Log) Clear() {
	l.entries = l.entries[:0]
}

// Restore replaces the log with entries given newest first, truncated to
// the cap.
func (l *Log) Restore(entries []types.LogEntry) {
	if len(entries) > l.max {
		entries = entries[:l.max]
	}
	l.entries = append(l.entries[:0], entries...)
}

// SuccessRate returns the fraction of logged rolls that succeeded.
func (l *Log) SuccessRate() float64 {
	if len(l.entries) == 0 {
		return 0
	}
	n := 0
	for _, e := range l.entries {
		if e.IsSuccess {
			n++
		}
	}
	return float64(n) / float64(len(l.entries))
}
