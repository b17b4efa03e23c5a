// Package tui provides a Bubble Tea terminal UI for the dicepool console.
package tui

import "strings"

// History recalls console commands with Up/Down, newest last.
// Each distinct command is kept once, at the position of its latest use,
// so an edit typed every few rolls stays one key away.
type History struct {
	entries []string
	max     int
	cursor  int    // -1 = not navigating, 0..len-1 = position in entries
	draft   string // input line that was being typed when navigation began
}

// NewHistory creates a history holding at most max distinct commands.
func NewHistory(max int) *History {
	return &History{
		entries: make([]string, 0, max),
		max:     max,
		cursor:  -1,
	}
}

// isRepeat reports whether cmd re-runs the previous command.
func isRepeat(cmd string) bool {
	lower := strings.ToLower(strings.TrimSpace(cmd))
	return lower == "again" || lower == "g"
}

// normalize collapses runs of whitespace so "dc  12" and "dc 12" match.
func normalize(cmd string) string {
	return strings.Join(strings.Fields(cmd), " ")
}

// Push records cmd as the newest entry. Blank lines and repeat commands are
// not recorded. An earlier entry equal to cmd, ignoring case and spacing,
// is moved to the end rather than duplicated.
func (h *History) Push(cmd string) {
	cmd = normalize(cmd)
	if cmd == "" || isRepeat(cmd) {
		return
	}
	for i, e := range h.entries {
		if strings.EqualFold(e, cmd) {
			h.entries = append(h.entries[:i], h.entries[i+1:]...)
			break
		}
	}
	h.entries = append(h.entries, cmd)
	if len(h.entries) > h.max {
		h.entries = h.entries[len(h.entries)-h.max:]
	}
}

// Prev returns the previous (older) entry. draft is the current input line;
// it is remembered on the first step so Next can give it back.
// Returns ("", false) if history is empty.
func (h *History) Prev(draft string) (string, bool) {
	if len(h.entries) == 0 {
		return "", false
	}
	if h.cursor == -1 {
		h.draft = draft
		h.cursor = len(h.entries) - 1
	} else if h.cursor > 0 {
		h.cursor--
	}
	return h.entries[h.cursor], true
}

// Next returns the next (newer) entry. Stepping past the newest entry ends
// navigation and returns the saved draft with ok == false.
func (h *History) Next() (string, bool) {
	if h.cursor == -1 {
		return "", false
	}
	h.cursor++
	if h.cursor >= len(h.entries) {
		draft := h.draft
		h.ResetCursor()
		return draft, false
	}
	return h.entries[h.cursor], true
}

// ResetCursor ends navigation and forgets the draft.
func (h *History) ResetCursor() {
	h.cursor = -1
	h.draft = ""
}
