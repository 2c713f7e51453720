// Package store provides the SQLite-backed key-value store that holds all
// planner state, one JSON snapshot per logical key.
//
// The contract is deliberately lossy on the failure side: reads that miss,
// fail to parse, or hit a storage error return the caller's default, and
// writes that fail are dropped. The planner is a best-effort personal tool
// and no storage failure is worth surfacing to the user.
package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // register sqlite driver
)

// prefix namespaces every planner key inside the kv table.
const prefix = "hustle_"

// Store is the persistent key-value store backing all repositories.
type Store struct {
	db *sql.DB
}

// Open opens or creates the store database at the given path.
func Open(dbPath string) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)")
	if err != nil {
		return nil, fmt.Errorf("opening store db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Set serializes value to JSON and stores it under the namespaced key.
// Failures are silent no-ops.
func (s *Store) Set(key string, value any) {
	data, err := json.Marshal(value)
	if err != nil {
		return
	}
	s.setRaw(prefix+key, string(data))
}

// Get deserializes the value stored under key into T, returning def when
// the key is absent or the stored text does not parse.
func Get[T any](s *Store, key string, def T) T {
	raw, ok := s.getRaw(prefix + key)
	if !ok {
		return def
	}
	var v T
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		return def
	}
	return v
}

// Remove deletes the value stored under key, if any.
func (s *Store) Remove(key string) {
	s.removeRaw(prefix + key)
}

// Clear removes every key in the planner namespace. Keys outside the
// prefix (the obfuscation key and secure entries included) are left alone.
func (s *Store) Clear() {
	s.removePrefix(prefix)
}

func (s *Store) getRaw(key string) (string, bool) {
	var value string
	err := s.db.QueryRow("SELECT value FROM kv WHERE key = ?", key).Scan(&value)
	if err != nil {
		return "", false
	}
	return value, true
}

func (s *Store) setRaw(key, value string) {
	_, _ = s.db.Exec("INSERT OR REPLACE INTO kv (key, value) VALUES (?, ?)", key, value)
}

func (s *Store) removeRaw(key string) {
	_, _ = s.db.Exec("DELETE FROM kv WHERE key = ?", key)
}

// removePrefix deletes all keys starting with p. GLOB rather than LIKE so
// the underscore in the prefix is matched literally.
func (s *Store) removePrefix(p string) {
	_, _ = s.db.Exec("DELETE FROM kv WHERE key GLOB ?", p+"*")
}
