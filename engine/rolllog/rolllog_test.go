package rolllog

import (
	"fmt"
	"testing"
	"time"

	"github.com/nathoo/dicepool/types"
)

func newTestLog(max int) *Log {
	l := New(max)
	n := 0
	l.newID = func() string {
		n++
		return fmt.Sprintf("roll-%d", n)
	}
	l.now = func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) }
	return l
}

func outcome(total int, ok bool) types.RollOutcome {
	return types.RollOutcome{
		IsSuccess:  ok,
		FinalTotal: total,
		RollType:   types.RollNormal,
		Rolls:      []types.RollDetail{{Total: total, DiceTotal: total, Breakdown: "1D20(1)"}},
	}
}

func TestNew_DefaultCap(t *testing.T) {
	if got := New(0).Cap(); got != DefaultCap {
		t.Errorf("Cap = %d, want %d", got, DefaultCap)
	}
	if got := New(-3).Cap(); got != DefaultCap {
		t.Errorf("Cap = %d, want %d", got, DefaultCap)
	}
}

func TestRecord_StampsEntry(t *testing.T) {
	l := newTestLog(5)
	e := l.Record(outcome(17, true), 15)

	if e.ID != "roll-1" {
		t.Errorf("ID = %q", e.ID)
	}
	if e.Timestamp != "2026-01-02T03:04:05Z" {
		t.Errorf("Timestamp = %q", e.Timestamp)
	}
	if e.Target != 15 || e.FinalTotal != 17 || !e.IsSuccess || e.RollType != types.RollNormal {
		t.Errorf("unexpected entry %+v", e)
	}
	if len(e.Rolls) != 1 || e.Rolls[0].Breakdown != "1D20(1)" {
		t.Errorf("Rolls = %+v", e.Rolls)
	}
}

func TestRecord_NewestFirstAndCapped(t *testing.T) {
	l := newTestLog(3)
	for i := 1; i <= 5; i++ {
		l.Record(outcome(i, false), 10)
	}
	if l.Len() != 3 {
		t.Fatalf("Len = %d, want 3", l.Len())
	}
	got := l.Entries()
	for i, want := range []int{5, 4, 3} {
		if got[i].FinalTotal != want {
			t.Errorf("entry %d total = %d, want %d", i, got[i].FinalTotal, want)
		}
	}
	latest, ok := l.Latest()
	if !ok || latest.ID != "roll-5" {
		t.Errorf("Latest = %+v, %v", latest, ok)
	}
}

func TestRecord_DefaultCapFifty(t *testing.T) {
	l := newTestLog(0)
	for i := 0; i < 60; i++ {
		l.Record(outcome(i, true), 1)
	}
	if l.Len() != 50 {
		t.Errorf("Len = %d, want 50", l.Len())
	}
}

func TestEntries_ReturnsCopy(t *testing.T) {
	l := newTestLog(3)
	l.Record(outcome(1, true), 1)
	got := l.Entries()
	got[0].FinalTotal = 99
	if e, _ := l.Latest(); e.FinalTotal != 1 {
		t.Error("mutating Entries() changed the log")
	}
}

func TestClearAndLatestEmpty(t *testing.T) {
	l := newTestLog(3)
	l.Record(outcome(1, true), 1)
	l.Clear()
	if l.Len() != 0 {
		t.Errorf("Len = %d after Clear", l.Len())
	}
	if _, ok := l.Latest(); ok {
		t.Error("Latest on empty log returned ok")
	}
}

func TestRestore_Truncates(t *testing.T) {
	l := newTestLog(2)
	l.Restore([]types.LogEntry{{ID: "a"}, {ID: "b"}, {ID: "c"}})
	got := l.Entries()
	if len(got) != 2 || got[0].ID != "a" || got[1].ID != "b" {
		t.Errorf("Entries = %+v", got)
	}
}

func TestSuccessRate(t *testing.T) {
	l := newTestLog(10)
	if l.SuccessRate() != 0 {
		t.Error("empty log should have rate 0")
	}
	l.Record(outcome(1, true), 1)
	l.Record(outcome(1, false), 1)
	l.Record(outcome(1, true), 1)
	l.Record(outcome(1, true), 1)
	if got := l.SuccessRate(); got != 0.75 {
		t.Errorf("SuccessRate = %v, want 0.75", got)
	}
}
