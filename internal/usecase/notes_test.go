package usecase

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mesh-intelligence/kairo/internal/markdown"
	"github.com/mesh-intelligence/kairo/internal/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupNotes(t *testing.T) Notes {
	t.Helper()
	root := t.TempDir()
	s, err := sqlite.Open(filepath.Join(root, "kairo.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return Notes{Store: s, Dir: filepath.Join(root, "notes")}
}

func TestNotesCreateWritesMirror(t *testing.T) {
	u := setupNotes(t)

	note, err := u.Create(sqlite.CreateNoteParams{Title: "Mirror me", NoteType: "fleeting", Tags: []string{"x"}})
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(u.Dir, note.ID+".md"))
	require.NoError(t, err)
	content := string(data)
	assert.Contains(t, content, "title: Mirror me")
	assert.Contains(t, content, "- x")
	assert.Contains(t, content, "## Mirror me")
}

func TestNotesUpdatePreservesBody(t *testing.T) {
	u := setupNotes(t)
	note, err := u.Create(sqlite.CreateNoteParams{Title: "Original", NoteType: "fleeting"})
	require.NoError(t, err)

	// Edit the body the way a user editing the file would.
	fm, _, err := markdown.Split(u.Dir, note.ID)
	require.NoError(t, err)
	edited := "\n\nHand-written thoughts.\n"
	require.NoError(t, os.WriteFile(
		filepath.Join(u.Dir, note.ID+".md"),
		[]byte("---"+fm+"---"+edited),
		0o644,
	))

	title := "Retitled"
	_, err = u.Update(note.ID, sqlite.UpdateNoteParams{Title: &title})
	require.NoError(t, err)

	_, body, err := markdown.Split(u.Dir, note.ID)
	require.NoError(t, err)
	assert.Equal(t, edited, body)

	got, err := u.Get(note.ID)
	require.NoError(t, err)
	assert.Equal(t, "Retitled", got.Title)
}

func TestNotesUpdateFailsWithoutMirror(t *testing.T) {
	u := setupNotes(t)
	note, err := u.Create(sqlite.CreateNoteParams{Title: "Homeless", NoteType: "fleeting"})
	require.NoError(t, err)
	require.NoError(t, os.Remove(filepath.Join(u.Dir, note.ID+".md")))

	title := "New title"
	_, err = u.Update(note.ID, sqlite.UpdateNoteParams{Title: &title})
	assert.Error(t, err)
}

func TestNotesPreview(t *testing.T) {
	u := setupNotes(t)
	note, err := u.Create(sqlite.CreateNoteParams{Title: "Render", NoteType: "permanent"})
	require.NoError(t, err)

	html, err := u.Preview(note.ID)
	require.NoError(t, err)
	assert.Contains(t, html, "<h2>Render</h2>")
}

func TestNotesLifecycleLeavesMirrorAlone(t *testing.T) {
	u := setupNotes(t)
	note, err := u.Create(sqlite.CreateNoteParams{Title: "Still here", NoteType: "fleeting"})
	require.NoError(t, err)
	path := filepath.Join(u.Dir, note.ID+".md")
	before, err := os.ReadFile(path)
	require.NoError(t, err)

	_, err = u.Archive(note.ID)
	require.NoError(t, err)
	_, err = u.Unarchive(note.ID)
	require.NoError(t, err)
	require.NoError(t, u.Purge(note.ID))

	// The mirror file survives even a purge; only the database rows go.
	after, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, before, after)

	got, err := u.Get(note.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}
