// Package store implements the state-management core: an immutable
// application state, a closed action set, a pure reducer and a store
// that commits new states, notifies observers and schedules effects.
package store

import "slices"

// TodoItem is a single list entry. Identity is positional; equality is
// structural.
type TodoItem struct {
	Text string `json:"text"`
	Done bool   `json:"done"`
}

// AppState is the whole application state. It is a value type: every
// transition produces a fresh value, and Todos is cloned before any
// structural change so older states stay valid.
type AppState struct {
	Todos         []TodoItem
	CurrentInput  string
	SelectedIndex int
	StatusMessage string
	ExitRequested bool
}

// NewAppState returns the startup state: empty list, nothing selected.
func NewAppState() AppState {
	return AppState{
		SelectedIndex: -1,
		StatusMessage: "Ready",
	}
}

// Selected reports whether SelectedIndex points at an existing item.
func (s AppState) Selected() bool {
	return s.SelectedIndex >= 0 && s.SelectedIndex < len(s.Todos)
}

func (s AppState) cloneTodos() []TodoItem {
	return slices.Clone(s.Todos)
}
