// Package history provides bounded undo/redo over full-state snapshots.
// Snapshots are deep, independent copies: mutating the live state after
// recording never alters what was recorded.
package history

import "github.com/chazu/formwright/pkg/document"

// DefaultCapacity is the number of undo steps reachable from the newest
// state. The list holds one state more than this, since the current
// state occupies an entry of its own.
const DefaultCapacity = 50

// State is one snapshot of the editing session: every page, the active
// page index, and the current selection.
type State struct {
	Pages      []document.Page `json:"pages"`
	ActivePage int             `json:"activePage"`
	SelectedID string          `json:"selectedId,omitempty"`
}

func (s State) clone() State {
	return State{
		Pages:      document.ClonePages(s.Pages),
		ActivePage: s.ActivePage,
		SelectedID: s.SelectedID,
	}
}

// History is a bounded list of states with a cursor on the current one.
// Recording past capacity+1 entries drops the oldest; recording while
// the cursor is mid-list abandons the redo branch.
type History struct {
	entries  []State
	cursor   int
	capacity int
}

// New creates a history with the given capacity. Zero or negative means
// DefaultCapacity.
func New(capacity int) *History {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &History{capacity: capacity, cursor: -1}
}

// Record appends a snapshot of the state and moves the cursor to it.
func (h *History) Record(s State) {
	if h.cursor < len(h.entries)-1 {
		h.entries = h.entries[:h.cursor+1]
	}
	h.entries = append(h.entries, s.clone())
	h.cursor = len(h.entries) - 1
	if len(h.entries) > h.capacity+1 {
		drop := len(h.entries) - h.capacity - 1
		h.entries = append([]State(nil), h.entries[drop:]...)
		h.cursor -= drop
	}
}

// Undo steps the cursor back one state. ok is false when there is
// nothing earlier to return to.
func (h *History) Undo() (State, bool) {
	if h.cursor <= 0 {
		return State{}, false
	}
	h.cursor--
	return h.entries[h.cursor].clone(), true
}

// Redo steps the cursor forward one state. ok is false at the tail.
func (h *History) Redo() (State, bool) {
	if h.cursor < 0 || h.cursor >= len(h.entries)-1 {
		return State{}, false
	}
	h.cursor++
	return h.entries[h.cursor].clone(), true
}

// CanUndo reports whether Undo would return a state.
func (h *History) CanUndo() bool {
	return h.cursor > 0
}

// CanRedo reports whether Redo would return a state.
func (h *History) CanRedo() bool {
	return h.cursor >= 0 && h.cursor < len(h.entries)-1
}

// Len returns the number of retained states.
func (h *History) Len() int {
	return len(h.entries)
}
