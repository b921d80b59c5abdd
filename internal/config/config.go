// Package config handles the TOML configuration file and its on-disk
// location.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

const (
	// DefaultConfigFileName is the config file created in the data dir.
	DefaultConfigFileName = "config.toml"

	// BackendJSON persists todos as a JSON document (the default).
	BackendJSON = "json"
	// BackendSQLite persists todos in a SQLite database.
	BackendSQLite = "sqlite"
)

type Keymap struct {
	Quit    string `toml:"quit"`
	Add     string `toml:"add"`
	Up      string `toml:"up"`
	Down    string `toml:"down"`
	Toggle  string `toml:"toggle"`
	Remove  string `toml:"remove"`
	Save    string `toml:"save"`
	Load    string `toml:"load"`
	Confirm string `toml:"confirm"`
	Cancel  string `toml:"cancel"`
}

type Config struct {
	// DataPath overrides the data file location. Empty means the
	// backend's default file inside the app data directory.
	DataPath string `toml:"data_path"`
	Backend  string `toml:"backend"`
	Autosave bool   `toml:"autosave"`
	LogLevel string `toml:"log_level"`
	Keys     Keymap `toml:"keys"`
}

// LoadOrCreate reads the config at path, writing the default config
// there first if none exists.
func LoadOrCreate(path string) (Config, error) {
	cfg := Default()
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := write(path, cfg); err != nil {
			return cfg, err
		}
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if cfg.Backend == "" {
		cfg.Backend = BackendJSON
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if err := cfg.validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// ResolveConfigPath returns the config file path inside dataDir.
func ResolveConfigPath(dataDir string) string {
	return filepath.Join(dataDir, DefaultConfigFileName)
}

func (c Config) validate() error {
	switch c.Backend {
	case BackendJSON, BackendSQLite:
		return nil
	default:
		return fmt.Errorf("unknown backend %q (want %q or %q)", c.Backend, BackendJSON, BackendSQLite)
	}
}

func write(path string, cfg Config) error {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Default returns the configuration written on first launch.
func Default() Config {
	return Config{
		Backend:  BackendJSON,
		Autosave: true,
		LogLevel: "info",
		Keys: Keymap{
			Quit:    "q",
			Add:     "a",
			Up:      "k",
			Down:    "j",
			Toggle:  "t",
			Remove:  "r",
			Save:    "s",
			Load:    "l",
			Confirm: "enter",
			Cancel:  "esc",
		},
	}
}
