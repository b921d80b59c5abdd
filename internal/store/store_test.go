package store

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRepo is an in-memory Repository for testing.
type fakeRepo struct {
	saved   []AppState
	loaded  *AppState
	saveErr error
	loadErr error
}

func (f *fakeRepo) Save(_ context.Context, state AppState) error {
	f.saved = append(f.saved, state)
	return f.saveErr
}

func (f *fakeRepo) Load(_ context.Context) (*AppState, error) {
	return f.loaded, f.loadErr
}

func newTestStore(repo *fakeRepo) *Store {
	return New(NewAppState(), NewRunner(repo, zerolog.Nop()))
}

func TestStore_dispatch_commits_and_notifies(t *testing.T) {
	s := newTestStore(&fakeRepo{})

	var observed []AppState
	s.Subscribe(func(state AppState) {
		observed = append(observed, state)
	})

	s.Dispatch(SetInputText{Text: "A"})
	s.Dispatch(AddTodo{})

	require.Len(t, observed, 2)
	assert.Equal(t, "A", observed[0].CurrentInput)
	assert.Equal(t, "Todo added.", observed[1].StatusMessage)
	assert.Equal(t, s.State(), observed[1])
}

func TestStore_notifies_all_subscribers(t *testing.T) {
	s := newTestStore(&fakeRepo{})

	first, second := 0, 0
	s.Subscribe(func(AppState) { first++ })
	s.Subscribe(func(AppState) { second++ })

	s.Dispatch(SetStatus{Message: "x"})

	assert.Equal(t, 1, first)
	assert.Equal(t, 1, second)
}

func TestStore_save_effect_runs_after_commit_and_notify(t *testing.T) {
	repo := &fakeRepo{}
	s := newTestStore(repo)

	var statuses []string
	s.Subscribe(func(state AppState) {
		statuses = append(statuses, state.StatusMessage)
	})

	s.Dispatch(SetInputText{Text: "A"})
	s.Dispatch(AddTodo{})
	s.Dispatch(RequestSave{})

	// "Saving..." must be committed and observed before the effect's
	// completion status lands.
	require.Equal(t, []string{"Ready", "Todo added.", "Saving...", "State saved successfully."}, statuses)
	require.Len(t, repo.saved, 1)

	// The effect received the pre-save snapshot, not the "Saving..."
	// state.
	assert.Equal(t, "Todo added.", repo.saved[0].StatusMessage)
	require.Len(t, repo.saved[0].Todos, 1)
	assert.Equal(t, "A", repo.saved[0].Todos[0].Text)
}

func TestStore_save_failure_sets_error_status(t *testing.T) {
	repo := &fakeRepo{saveErr: errors.New("disk full")}
	s := newTestStore(repo)

	s.Dispatch(RequestSave{})

	assert.Equal(t, "ERROR saving state!", s.State().StatusMessage)
}

func TestStore_load_effect_replaces_list(t *testing.T) {
	loaded := NewAppState()
	loaded.Todos = []TodoItem{{Text: "A", Done: true}, {Text: "B"}}
	loaded.SelectedIndex = 0

	s := newTestStore(&fakeRepo{loaded: &loaded})

	s.Dispatch(RequestLoad{})

	state := s.State()
	assert.Equal(t, loaded.Todos, state.Todos)
	assert.Equal(t, 0, state.SelectedIndex)
	assert.Equal(t, "State loaded successfully.", state.StatusMessage)
}

func TestStore_load_failure_keeps_list(t *testing.T) {
	s := New(AppState{
		Todos:         []TodoItem{{Text: "A"}},
		SelectedIndex: 0,
	}, NewRunner(&fakeRepo{loadErr: errors.New("gone")}, zerolog.Nop()))

	s.Dispatch(RequestLoad{})

	state := s.State()
	require.Len(t, state.Todos, 1)
	assert.Equal(t, 0, state.SelectedIndex)
	assert.Equal(t, "ERROR loading state or file not found.", state.StatusMessage)
}

func TestStore_absent_load_result_keeps_list(t *testing.T) {
	s := New(AppState{
		Todos: []TodoItem{{Text: "A"}},
	}, NewRunner(&fakeRepo{}, zerolog.Nop()))

	s.Dispatch(RequestLoad{})

	assert.Len(t, s.State().Todos, 1)
	assert.Equal(t, "ERROR loading state or file not found.", s.State().StatusMessage)
}

func TestStore_dispatch_from_observer_is_queued(t *testing.T) {
	s := newTestStore(&fakeRepo{})

	var statuses []string
	fired := false
	s.Subscribe(func(state AppState) {
		statuses = append(statuses, state.StatusMessage)
		if !fired {
			fired = true
			s.Dispatch(SetStatus{Message: "follow-up"})
		}
	})

	s.Dispatch(SetStatus{Message: "first"})

	assert.Equal(t, []string{"first", "follow-up"}, statuses)
}

func TestRunner_without_repository_reports_configuration_error(t *testing.T) {
	s := New(NewAppState(), NewRunner(nil, zerolog.Nop()))

	s.Dispatch(RequestSave{})
	assert.Equal(t, "ERROR: Save path not configured.", s.State().StatusMessage)

	s.Dispatch(RequestLoad{})
	assert.Equal(t, "ERROR: Load path not configured.", s.State().StatusMessage)
}

func TestStore_quit_is_visible_to_observers(t *testing.T) {
	s := newTestStore(&fakeRepo{})

	exit := false
	s.Subscribe(func(state AppState) {
		if state.ExitRequested {
			exit = true
		}
	})

	s.Dispatch(SetStatus{Message: "working"})
	require.False(t, exit)

	s.Dispatch(Quit{})
	assert.True(t, exit)
}
