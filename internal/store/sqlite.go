package store

import (
	"database/sql"
	"fmt"
	"sync"

	"nickandperla.net/arith/internal/eval"
)

// Current schema version
const SchemaVersion = "1"

// SQLite is a SQLite-backed store.
type SQLite struct {
	mu sync.Mutex
	db *sql.DB
}

// NewSQLite creates a new SQLite store at the given path.
func NewSQLite(path string) (*SQLite, error) {
	db, err := sql.Open(driverName, path)
	if err != nil {
		return nil, err
	}

	// Create tables if not exists
	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS contexts (
			name TEXT PRIMARY KEY
		);
		CREATE TABLE IF NOT EXISTS bindings (
			context_name TEXT NOT NULL,
			var TEXT NOT NULL,
			value INTEGER NOT NULL,
			PRIMARY KEY (context_name, var),
			FOREIGN KEY (context_name) REFERENCES contexts(name)
		);
		CREATE TABLE IF NOT EXISTS metadata (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
	`)
	if err != nil {
		db.Close()
		return nil, err
	}

	s := &SQLite{db: db}

	// Check/set schema version (use unlocked versions since we're in init)
	version, err := s.getMetadataUnlocked("schema_version")
	if err != nil {
		db.Close()
		return nil, err
	}

	switch version {
	case "":
		if err := s.setMetadataUnlocked("schema_version", SchemaVersion); err != nil {
			db.Close()
			return nil, err
		}
	case SchemaVersion:
		// Up to date.
	default:
		db.Close()
		return nil, fmt.Errorf("unsupported schema version: %s (expected %s)", version, SchemaVersion)
	}

	return s, nil
}

// Get retrieves a context by name.
func (s *SQLite) Get(name string) (eval.Context, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var n string
	err := s.db.QueryRow("SELECT name FROM contexts WHERE name = ?", name).Scan(&n)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	rows, err := s.db.Query("SELECT var, value FROM bindings WHERE context_name = ?", name)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ctx := make(eval.Context)
	for rows.Next() {
		var v string
		var value int64
		if err := rows.Scan(&v, &value); err != nil {
			return nil, err
		}
		ctx[v] = value
	}
	return ctx, rows.Err()
}

// Put stores a context by name, replacing any previous bindings.
func (s *SQLite) Put(name string, ctx eval.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("INSERT OR IGNORE INTO contexts (name) VALUES (?)", name); err != nil {
		return err
	}
	if _, err := tx.Exec("DELETE FROM bindings WHERE context_name = ?", name); err != nil {
		return err
	}
	for v, value := range ctx {
		if _, err := tx.Exec(
			"INSERT INTO bindings (context_name, var, value) VALUES (?, ?, ?)",
			name, v, value,
		); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// Delete removes a context by name.
func (s *SQLite) Delete(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM bindings WHERE context_name = ?", name); err != nil {
		return err
	}
	if _, err := tx.Exec("DELETE FROM contexts WHERE name = ?", name); err != nil {
		return err
	}
	return tx.Commit()
}

// List returns all stored context names, sorted.
func (s *SQLite) List() ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.db.Query("SELECT name FROM contexts ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// Close closes the database connection.
func (s *SQLite) Close() error {
	return s.db.Close()
}

// GetMetadata retrieves a metadata value by key.
func (s *SQLite) GetMetadata(key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.getMetadataUnlocked(key)
}

// getMetadataUnlocked retrieves metadata without locking (caller must hold lock).
func (s *SQLite) getMetadataUnlocked(key string) (string, error) {
	var value string
	err := s.db.QueryRow("SELECT value FROM metadata WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return value, nil
}

// SetMetadata stores a metadata value by key.
func (s *SQLite) SetMetadata(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.setMetadataUnlocked(key, value)
}

// setMetadataUnlocked stores metadata without locking (caller must hold lock).
func (s *SQLite) setMetadataUnlocked(key, value string) error {
	_, err := s.db.Exec(`
		INSERT INTO metadata (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	return err
}
