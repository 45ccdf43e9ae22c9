// Package usecase sequences store calls, tag lookups, and Markdown mirror
// writes for each logical command. The mirror is written on create and
// update only; lifecycle flips never touch it.
package usecase

import (
	"fmt"
	"log/slog"

	"github.com/mesh-intelligence/kairo/internal/markdown"
	"github.com/mesh-intelligence/kairo/internal/sqlite"
	"github.com/mesh-intelligence/kairo/pkg/types"
)

// Notes orchestrates note commands against the store and the notes mirror
// directory.
type Notes struct {
	Store *sqlite.Store
	Dir   string
}

// Create inserts the note and writes a fresh mirror file with a synthesized
// body. A mirror write failure is logged but does not undo the committed
// database change.
func (u Notes) Create(p sqlite.CreateNoteParams) (*types.Note, error) {
	note, err := u.Store.CreateNote(p)
	if err != nil {
		return nil, fmt.Errorf("create note: %w", err)
	}

	if err := u.writeMirror(note, nil); err != nil {
		slog.Warn("failed to write note mirror", "id", note.ID, "error", err)
	}
	return note, nil
}

// Update applies the partial update, recovers the current body from the
// existing mirror file, and rewrites the file with the new front matter and
// the recovered body. The body must be recovered before the overwrite or any
// free-text edits would be lost.
func (u Notes) Update(id string, p sqlite.UpdateNoteParams) (*types.Note, error) {
	note, err := u.Store.UpdateNote(id, p)
	if err != nil {
		return nil, fmt.Errorf("update note: %w", err)
	}

	_, body, err := markdown.Split(u.Dir, note.ID)
	if err != nil {
		return nil, fmt.Errorf("update note: %w", err)
	}
	if err := u.writeMirror(note, &body); err != nil {
		slog.Warn("failed to write note mirror", "id", note.ID, "error", err)
	}
	return note, nil
}

// List returns notes matching the options.
func (u Notes) List(opts sqlite.ListOptions) ([]*types.Note, error) {
	notes, err := u.Store.ListNotes(opts)
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	return notes, nil
}

// Get returns the note, or (nil, nil) when absent.
func (u Notes) Get(id string) (*types.Note, error) {
	return u.Store.GetNote(id)
}

// Archive marks the note archived.
func (u Notes) Archive(id string) (*types.Note, error) {
	note, err := u.Store.ArchiveNote(id)
	if err != nil {
		return nil, fmt.Errorf("archive note: %w", err)
	}
	return note, nil
}

// Unarchive restores an archived note to the active state.
func (u Notes) Unarchive(id string) (*types.Note, error) {
	note, err := u.Store.UnarchiveNote(id)
	if err != nil {
		return nil, fmt.Errorf("unarchive note: %w", err)
	}
	return note, nil
}

// Delete soft-deletes the note.
func (u Notes) Delete(id string) (*types.Note, error) {
	note, err := u.Store.SoftDeleteNote(id)
	if err != nil {
		return nil, fmt.Errorf("delete note: %w", err)
	}
	return note, nil
}

// Restore recovers a soft-deleted note.
func (u Notes) Restore(id string) (*types.Note, error) {
	note, err := u.Store.RestoreNote(id)
	if err != nil {
		return nil, fmt.Errorf("restore note: %w", err)
	}
	return note, nil
}

// Purge hard-deletes the note and its tag and link rows. The mirror file is
// left behind.
func (u Notes) Purge(id string) error {
	if err := u.Store.PurgeNote(id); err != nil {
		return fmt.Errorf("purge note: %w", err)
	}
	return nil
}

// Preview renders the note's mirror body to HTML.
func (u Notes) Preview(id string) (string, error) {
	html, err := markdown.Preview(u.Dir, id)
	if err != nil {
		return "", fmt.Errorf("preview note: %w", err)
	}
	return html, nil
}

func (u Notes) writeMirror(note *types.Note, body *string) error {
	tags, err := u.Store.TagsByNoteID(note.ID)
	if err != nil {
		return err
	}
	fm := markdown.NewNoteFrontMatter(note, markdown.TagNames(tags))
	return markdown.Write(u.Dir, fm, body)
}
