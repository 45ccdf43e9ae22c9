// Package sqlite implements the relational store for notes, projects, tasks,
// tags, and links on top of the pure-Go SQLite driver.
package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// timeLayout is how timestamps are persisted. Values are truncated to second
// precision so they round-trip through the Markdown mirror unchanged.
const timeLayout = time.RFC3339

// Store wraps a single SQLite connection. One Store is opened per process
// invocation; concurrent access to the database file is left to SQLite's own
// locking.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the database at dbPath and applies the
// schema and index DDL.
func Open(dbPath string) (*Store, error) {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	for _, ddl := range schemaDDL {
		if _, err := db.Exec(ddl); err != nil {
			db.Close()
			return nil, fmt.Errorf("applying schema: %w", err)
		}
	}
	for _, ddl := range indexDDL {
		if _, err := db.Exec(ddl); err != nil {
			db.Close()
			return nil, fmt.Errorf("applying indexes: %w", err)
		}
	}

	return &Store{db: db}, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// now returns the current instant in UTC at second precision.
func now() time.Time {
	return time.Now().UTC().Truncate(time.Second)
}

// nullable maps the empty string to NULL on the way into the database.
func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}

// fromNull maps a nullable text column back to the empty string.
func fromNull(ns sql.NullString) string {
	if !ns.Valid {
		return ""
	}
	return ns.String
}

// parseTime parses a persisted timestamp.
func parseTime(s string) (time.Time, error) {
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing timestamp: %w", err)
	}
	return t, nil
}

// orderClause maps an order value to a SQL direction on the given column.
// Anything other than "asc" or "desc" falls back to descending.
func orderClause(column, order string) string {
	switch order {
	case "asc":
		return " ORDER BY " + column + " ASC"
	case "desc":
		return " ORDER BY " + column + " DESC"
	default:
		return " ORDER BY " + column + " DESC"
	}
}
