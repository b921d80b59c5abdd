package storage

import (
	"context"
	"encoding/json"
	"errors"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/arximboldi/vibe-todo/internal/store"
)

// JSONFile persists the todo list as a JSON document of the form
// {"todos": [{"text": ..., "done": ...}]}. Unknown top-level fields
// are ignored on read.
type JSONFile struct {
	path string
}

// NewJSONFile returns a repository backed by the file at path.
func NewJSONFile(path string) *JSONFile {
	return &JSONFile{path: path}
}

// Path returns the backing file path.
func (j *JSONFile) Path() string {
	return j.path
}

// Save writes the snapshot's todo list to the file. Only todos are
// persisted.
func (j *JSONFile) Save(_ context.Context, state store.AppState) error {
	todos := state.Todos
	if todos == nil {
		todos = []store.TodoItem{}
	}
	doc := map[string][]store.TodoItem{"todos": todos}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(j.path, data, 0o644)
}

// Load reads the file back into a fresh AppState. A missing,
// unreadable or unparsable file yields (nil, nil): an absent result,
// never an error the caller must handle. A document that parses but
// has no usable "todos" array loads as an empty list.
func (j *JSONFile) Load(_ context.Context) (*store.AppState, error) {
	data, err := os.ReadFile(j.path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			log.Warn().Err(err).Str("path", j.path).Msg("cannot read state file")
		}
		return nil, nil
	}

	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		log.Warn().Err(err).Str("path", j.path).Msg("state file is not valid JSON")
		return nil, nil
	}

	var todos []store.TodoItem
	if raw, ok := doc["todos"]; ok {
		if err := json.Unmarshal(raw, &todos); err != nil {
			log.Warn().Err(err).Str("path", j.path).Msg("state file has no usable todos, loading empty list")
			todos = nil
		}
	} else {
		log.Warn().Str("path", j.path).Msg("state file has no todos key, loading empty list")
	}

	return loadedState(todos), nil
}
