// Package storage provides the persistence collaborators behind the
// effect runner: a JSON file repository (the default) and a SQLite
// repository, plus per-OS data directory resolution.
package storage

import (
	"os"
	"path/filepath"

	"github.com/arximboldi/vibe-todo/internal/store"
)

const (
	appDirName = "vibe-todo"

	// DefaultJSONName is the JSON data file created in the data dir.
	DefaultJSONName = "todos.json"
	// DefaultDBName is the SQLite data file created in the data dir.
	DefaultDBName = "todos.db"
)

// DefaultDataDir returns the per-OS application config directory for
// vibe-todo, creating it if missing. If the directory cannot be
// resolved or created it falls back to the current working directory;
// path resolution is never fatal.
func DefaultDataDir() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return "."
	}
	dir := filepath.Join(base, appDirName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "."
	}
	return dir
}

// loadedState wraps a persisted todo list in a fresh AppState. Only
// the list survives a round-trip; everything else resets.
func loadedState(todos []store.TodoItem) *store.AppState {
	state := store.NewAppState()
	state.Todos = todos
	if len(todos) > 0 {
		state.SelectedIndex = 0
	}
	state.StatusMessage = "State loaded."
	return &state
}
