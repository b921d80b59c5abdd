package store

import (
	"context"

	"github.com/rs/zerolog"
)

// Effect is a deferred unit of side-effecting work emitted by the
// reducer. nil means no effect. Effects run after the new state has
// been committed and observers notified, never inside Reduce.
type Effect interface {
	isEffect()
}

// SaveState persists the snapshot captured when the save was
// requested. Later dispatches cannot change what gets written.
type SaveState struct{ Snapshot AppState }

// LoadState reads the persisted list and completes with LoadComplete.
type LoadState struct{}

func (SaveState) isEffect() {}
func (LoadState) isEffect() {}

// Repository is the persistence collaborator the effect runner drives.
// Load returns (nil, nil) when there is nothing usable to read; loaded
// states come back with input, selection and exit flags reset.
type Repository interface {
	Save(ctx context.Context, state AppState) error
	Load(ctx context.Context) (*AppState, error)
}

// Runner executes effects against an injected repository. Each effect
// dispatches at most one follow-up action and never returns an error
// to the caller; failures surface as status messages.
type Runner struct {
	repo Repository
	log  zerolog.Logger
}

// NewRunner returns a runner bound to repo.
func NewRunner(repo Repository, log zerolog.Logger) *Runner {
	return &Runner{repo: repo, log: log}
}

// Run executes a single effect and feeds its completion action into
// dispatch.
func (r *Runner) Run(effect Effect, dispatch func(Action)) {
	switch eff := effect.(type) {
	case SaveState:
		if r.repo == nil {
			r.log.Error().Msg("save effect failed: repository not configured")
			dispatch(SetStatus{Message: "ERROR: Save path not configured."})
			return
		}
		r.log.Debug().Int("todos", len(eff.Snapshot.Todos)).Msg("executing save effect")
		if err := r.repo.Save(context.Background(), eff.Snapshot); err != nil {
			r.log.Error().Err(err).Msg("save failed")
			dispatch(SetStatus{Message: "ERROR saving state!"})
			return
		}
		r.log.Info().Msg("save successful")
		dispatch(SetStatus{Message: "State saved successfully."})

	case LoadState:
		if r.repo == nil {
			r.log.Error().Msg("load effect failed: repository not configured")
			dispatch(LoadComplete{Message: "ERROR: Load path not configured."})
			return
		}
		r.log.Debug().Msg("executing load effect")
		loaded, err := r.repo.Load(context.Background())
		if err != nil || loaded == nil {
			r.log.Warn().Err(err).Msg("load failed or file not found")
			dispatch(LoadComplete{Message: "ERROR loading state or file not found."})
			return
		}
		r.log.Info().Int("todos", len(loaded.Todos)).Msg("load successful")
		dispatch(LoadComplete{State: loaded, Message: "State loaded successfully."})
	}
}
