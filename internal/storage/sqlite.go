package storage

import (
	"context"
	"database/sql"
	"errors"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
	_ "modernc.org/sqlite"

	"github.com/arximboldi/vibe-todo/internal/store"
)

// SQLite persists the todo list in a single-table SQLite database.
// Saving replaces the whole table inside a transaction so the stored
// rows always mirror one snapshot.
type SQLite struct {
	db *sql.DB
}

// OpenSQLite opens (or creates) the database at dbPath and ensures the
// schema exists.
func OpenSQLite(dbPath string) (*SQLite, error) {
	if dbPath == "" {
		return nil, errors.New("db path is empty")
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil && !errors.Is(err, os.ErrExist) {
		return nil, err
	}
	db, err := sql.Open("sqlite", sqliteDSN(dbPath))
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)

	s := &SQLite{db: db}
	if err := s.ensureSchema(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Close closes the underlying database.
func (s *SQLite) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *SQLite) ensureSchema() error {
	const ddl = `
CREATE TABLE IF NOT EXISTS todos (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	position INTEGER NOT NULL,
	text TEXT NOT NULL,
	done INTEGER NOT NULL DEFAULT 0
);`
	_, err := s.db.Exec(ddl)
	return err
}

// Save replaces all stored rows with the snapshot's todo list,
// preserving display order via the position column.
func (s *SQLite) Save(ctx context.Context, state store.AppState) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM todos;`); err != nil {
		return err
	}
	for i, todo := range state.Todos {
		done := 0
		if todo.Done {
			done = 1
		}
		_, err := tx.ExecContext(ctx,
			`INSERT INTO todos (position, text, done) VALUES (?, ?, ?);`,
			i, todo.Text, done)
		if err != nil {
			return err
		}
	}
	return tx.Commit()
}

// Load reads the stored rows in display order into a fresh AppState.
// Query failures yield (nil, err); the effect runner turns that into
// an absent result.
func (s *SQLite) Load(ctx context.Context) (*store.AppState, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT text, done FROM todos ORDER BY position, id;`)
	if err != nil {
		log.Warn().Err(err).Msg("cannot query todos table")
		return nil, err
	}
	defer rows.Close()

	var todos []store.TodoItem
	for rows.Next() {
		var todo store.TodoItem
		var done int
		if err := rows.Scan(&todo.Text, &done); err != nil {
			return nil, err
		}
		todo.Done = done == 1
		todos = append(todos, todo)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return loadedState(todos), nil
}

// modernc.org/sqlite uses driver name "sqlite" and prefers a file: DSN.
// mode=rwc creates the database file if it doesn't exist.
func sqliteDSN(path string) string {
	if strings.HasPrefix(path, "file:") {
		return path
	}
	abs, err := filepath.Abs(path)
	if err == nil {
		path = abs
	}
	u := url.URL{
		Scheme: "file",
		Path:   path,
	}
	q := u.Query()
	q.Set("mode", "rwc")
	q.Set("_pragma", "busy_timeout(5000)")
	u.RawQuery = q.Encode()
	return u.String()
}
