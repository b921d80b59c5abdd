package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arximboldi/vibe-todo/internal/store"
)

func tempJSONFile(t *testing.T) *JSONFile {
	t.Helper()
	return NewJSONFile(filepath.Join(t.TempDir(), "todos.json"))
}

func TestJSONFile_round_trip(t *testing.T) {
	repo := tempJSONFile(t)
	ctx := context.Background()

	state := store.NewAppState()
	state.Todos = []store.TodoItem{
		{Text: "Buy milk", Done: false},
		{Text: "Walk dog", Done: true},
	}
	state.CurrentInput = "pending"
	state.SelectedIndex = 1
	state.ExitRequested = true

	require.NoError(t, repo.Save(ctx, state))

	loaded, err := repo.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, loaded)

	// Only the list round-trips; everything else resets.
	assert.Equal(t, state.Todos, loaded.Todos)
	assert.Equal(t, "", loaded.CurrentInput)
	assert.Equal(t, 0, loaded.SelectedIndex)
	assert.False(t, loaded.ExitRequested)
}

func TestJSONFile_saves_only_todos(t *testing.T) {
	repo := tempJSONFile(t)

	state := store.NewAppState()
	state.Todos = []store.TodoItem{{Text: "A"}}
	state.CurrentInput = "secret"
	require.NoError(t, repo.Save(context.Background(), state))

	data, err := os.ReadFile(repo.Path())
	require.NoError(t, err)
	assert.Contains(t, string(data), `"todos"`)
	assert.Contains(t, string(data), `"text": "A"`)
	assert.NotContains(t, string(data), "secret")
}

func TestJSONFile_empty_list_round_trip(t *testing.T) {
	repo := tempJSONFile(t)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, store.NewAppState()))

	loaded, err := repo.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Empty(t, loaded.Todos)
	assert.Equal(t, -1, loaded.SelectedIndex)
}

func TestJSONFile_missing_file_is_absent(t *testing.T) {
	repo := tempJSONFile(t)

	loaded, err := repo.Load(context.Background())

	assert.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestJSONFile_malformed_file_is_absent(t *testing.T) {
	repo := tempJSONFile(t)
	require.NoError(t, os.WriteFile(repo.Path(), []byte("{not json"), 0o644))

	loaded, err := repo.Load(context.Background())

	assert.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestJSONFile_missing_todos_key_loads_empty_list(t *testing.T) {
	repo := tempJSONFile(t)
	require.NoError(t, os.WriteFile(repo.Path(), []byte(`{"other": 1}`), 0o644))

	loaded, err := repo.Load(context.Background())

	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Empty(t, loaded.Todos)
	assert.Equal(t, -1, loaded.SelectedIndex)
}

func TestJSONFile_non_array_todos_loads_empty_list(t *testing.T) {
	repo := tempJSONFile(t)
	require.NoError(t, os.WriteFile(repo.Path(), []byte(`{"todos": "oops"}`), 0o644))

	loaded, err := repo.Load(context.Background())

	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Empty(t, loaded.Todos)
}

func TestJSONFile_ignores_unknown_fields(t *testing.T) {
	repo := tempJSONFile(t)
	doc := `{"version": 3, "todos": [{"text": "A", "done": true}], "extra": {}}`
	require.NoError(t, os.WriteFile(repo.Path(), []byte(doc), 0o644))

	loaded, err := repo.Load(context.Background())

	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, []store.TodoItem{{Text: "A", Done: true}}, loaded.Todos)
	assert.Equal(t, 0, loaded.SelectedIndex)
}
