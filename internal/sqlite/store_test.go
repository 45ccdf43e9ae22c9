package sqlite

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupStore opens a fresh database in a per-test temp directory.
func setupStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "kairo.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenCreatesParentDirectory(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "deeper", "kairo.db")
	s, err := Open(dbPath)
	require.NoError(t, err)
	defer s.Close()

	// Schema application must leave a working database behind.
	_, err = s.db.Exec("INSERT INTO tags (id, tag_name, created_at) VALUES ('t-001', 'x', '2025-01-01T00:00:00Z')")
	assert.NoError(t, err)
}

func TestOpenIsIdempotent(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "kairo.db")

	s1, err := Open(dbPath)
	require.NoError(t, err)
	require.NoError(t, s1.Close())

	// Reopening an existing database must not fail on the IF NOT EXISTS DDL.
	s2, err := Open(dbPath)
	require.NoError(t, err)
	assert.NoError(t, s2.Close())
}

func TestOrderClause(t *testing.T) {
	tests := []struct {
		name  string
		order string
		want  string
	}{
		{name: "ascending", order: "asc", want: " ORDER BY created_at ASC"},
		{name: "descending", order: "desc", want: " ORDER BY created_at DESC"},
		{name: "empty falls back to descending", order: "", want: " ORDER BY created_at DESC"},
		{name: "garbage falls back to descending", order: "sideways", want: " ORDER BY created_at DESC"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, orderClause("created_at", tt.order))
		})
	}
}
