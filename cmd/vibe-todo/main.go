package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"

	"github.com/arximboldi/vibe-todo/internal/config"
	"github.com/arximboldi/vibe-todo/internal/logging"
	"github.com/arximboldi/vibe-todo/internal/storage"
	"github.com/arximboldi/vibe-todo/internal/store"
	"github.com/arximboldi/vibe-todo/internal/ui"
)

const logFileName = "vibe-todo.log"

func main() {
	dataDir := storage.DefaultDataDir()

	cfgPath := config.ResolveConfigPath(dataDir)
	cfg, err := config.LoadOrCreate(cfgPath)
	if err != nil {
		fmt.Printf("failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog, err := logging.New(cfg.LogLevel, filepath.Join(dataDir, logFileName))
	if err != nil {
		fmt.Printf("failed to set up logging: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()
	log.Logger = logger
	log.Info().Str("config", cfgPath).Str("data_dir", dataDir).Msg("application starting")

	repo, closeRepo, err := openRepository(cfg, dataDir)
	if err != nil {
		fmt.Printf("failed to open storage: %v\n", err)
		os.Exit(1)
	}
	defer closeRepo()

	runner := store.NewRunner(repo, logger)
	st := store.New(initialState(repo), runner)
	st.Subscribe(func(state store.AppState) {
		log.Debug().
			Str("status", state.StatusMessage).
			Int("todos", len(state.Todos)).
			Int("selected", state.SelectedIndex).
			Msg("state committed")
	})

	if err := ui.Run(st, cfg); err != nil {
		fmt.Printf("error running program: %v\n", err)
		os.Exit(1)
	}
	log.Info().Msg("application finished cleanly")
}

func openRepository(cfg config.Config, dataDir string) (store.Repository, func(), error) {
	switch cfg.Backend {
	case config.BackendSQLite:
		path := cfg.DataPath
		if path == "" {
			path = filepath.Join(dataDir, storage.DefaultDBName)
		}
		db, err := storage.OpenSQLite(path)
		if err != nil {
			return nil, nil, err
		}
		return db, func() { _ = db.Close() }, nil
	default:
		path := cfg.DataPath
		if path == "" {
			path = filepath.Join(dataDir, storage.DefaultJSONName)
		}
		return storage.NewJSONFile(path), func() {}, nil
	}
}

// initialState loads the persisted list if there is one, otherwise
// starts fresh. Either way the exit flag starts cleared.
func initialState(repo store.Repository) store.AppState {
	loaded, err := repo.Load(context.Background())
	if err == nil && loaded != nil {
		log.Info().Int("todos", len(loaded.Todos)).Msg("loaded initial state from disk")
		state := *loaded
		state.StatusMessage = "State loaded."
		state.ExitRequested = false
		return state
	}
	log.Info().Msg("no saved state found, starting fresh")
	state := store.NewAppState()
	state.StatusMessage = "Ready (new list)."
	return state
}
