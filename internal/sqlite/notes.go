package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/mesh-intelligence/kairo/pkg/types"
)

const noteColumns = "id, title, note_type, sub_type, created_at, updated_at, archived, deleted, project_id, task_id"

// CreateNoteParams carries the raw user inputs for note creation. Enum fields
// are validated here, not by the caller.
type CreateNoteParams struct {
	Title     string
	NoteType  string
	SubType   string
	ProjectID string
	TaskID    string
	Tags      []string
}

// UpdateNoteParams carries a partial note update. Nil pointers leave the
// corresponding field untouched; a nil Tags slice leaves the tag associations
// untouched while an empty one removes them all.
type UpdateNoteParams struct {
	Title     *string
	NoteType  *string
	SubType   *string
	ProjectID *string
	TaskID    *string
	Tags      []string
}

// ListOptions filters a note or project listing. Archived and Deleted default
// to false, selecting only active records; both true is rejected. A nil Tags
// slice disables the tag filter.
type ListOptions struct {
	Archived bool
	Deleted  bool
	Tags     []string
	Order    string
}

// CreateNote validates the inputs, generates a timestamp-derived ID, inserts
// the row, and attaches tags in the supplied order.
func (s *Store) CreateNote(p CreateNoteParams) (*types.Note, error) {
	noteType, err := types.ParseNoteType(p.NoteType)
	if err != nil {
		return nil, err
	}
	subType, err := types.ParseSubType(p.SubType)
	if err != nil {
		return nil, err
	}
	if p.ProjectID != "" {
		if _, err := s.ensureProjectExists(p.ProjectID); err != nil {
			return nil, err
		}
	}

	ts := now()
	note := &types.Note{
		ID:        noteID(ts),
		Title:     p.Title,
		NoteType:  noteType,
		SubType:   subType,
		CreatedAt: ts,
		UpdatedAt: ts,
		ProjectID: p.ProjectID,
		TaskID:    p.TaskID,
	}

	_, err = s.db.Exec(
		"INSERT INTO notes ("+noteColumns+") VALUES (?, ?, ?, ?, ?, ?, 0, 0, ?, ?)",
		note.ID, note.Title, string(note.NoteType), nullable(string(note.SubType)),
		note.CreatedAt.Format(timeLayout), note.UpdatedAt.Format(timeLayout),
		nullable(note.ProjectID), nullable(note.TaskID),
	)
	if err != nil {
		return nil, fmt.Errorf("inserting note: %w", err)
	}

	if p.Tags != nil {
		if err := s.attachTags(noteTagsTable, noteTagsColumn, note.ID, p.Tags); err != nil {
			return nil, err
		}
	}
	return note, nil
}

// ListNotes returns notes matching the options, ordered by creation time
// (descending unless Order is "asc").
func (s *Store) ListNotes(opts ListOptions) ([]*types.Note, error) {
	if opts.Archived && opts.Deleted {
		return nil, types.ErrInvalidListFilter
	}

	var query string
	var args []any
	if opts.Tags != nil {
		query = "SELECT DISTINCT n." + prefixColumns("n", noteColumns) +
			" FROM notes n" +
			" INNER JOIN note_tags nt ON nt.note_id = n.id" +
			" INNER JOIN tags t ON t.id = nt.tag_id" +
			" WHERE t.tag_name IN (" + placeholders(len(opts.Tags)) + ")" +
			" AND n.archived = ? AND n.deleted = ?"
		for _, tag := range opts.Tags {
			args = append(args, tag)
		}
		args = append(args, opts.Archived, opts.Deleted)
		query += orderClause("n.created_at", opts.Order)
	} else {
		query = "SELECT " + noteColumns + " FROM notes WHERE archived = ? AND deleted = ?"
		args = append(args, opts.Archived, opts.Deleted)
		query += orderClause("created_at", opts.Order)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing notes: %w", err)
	}
	defer rows.Close()

	var out []*types.Note
	for rows.Next() {
		n, err := scanNoteRow(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating notes: %w", err)
	}
	return out, nil
}

// GetNote returns the note with the given ID, or (nil, nil) if absent.
func (s *Store) GetNote(id string) (*types.Note, error) {
	row := s.db.QueryRow("SELECT "+noteColumns+" FROM notes WHERE id = ?", id)
	n, err := scanNote(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return n, err
}

// UpdateNote applies a partial update. Enum fields supplied in p are
// re-validated; absent ones keep their stored value. A supplied project
// reference must exist.
func (s *Store) UpdateNote(id string, p UpdateNoteParams) (*types.Note, error) {
	note, err := s.ensureNoteExists(id)
	if err != nil {
		return nil, err
	}

	if p.Title != nil {
		note.Title = *p.Title
	}
	if p.NoteType != nil {
		nt, err := types.ParseNoteType(*p.NoteType)
		if err != nil {
			return nil, err
		}
		note.NoteType = nt
	}
	if p.SubType != nil {
		st, err := types.ParseSubType(*p.SubType)
		if err != nil {
			return nil, err
		}
		note.SubType = st
	}
	if p.ProjectID != nil {
		if *p.ProjectID != "" {
			if _, err := s.ensureProjectExists(*p.ProjectID); err != nil {
				return nil, err
			}
		}
		note.ProjectID = *p.ProjectID
	}
	if p.TaskID != nil {
		note.TaskID = *p.TaskID
	}
	note.UpdatedAt = now()

	_, err = s.db.Exec(
		"UPDATE notes SET title = ?, note_type = ?, sub_type = ?, updated_at = ?, project_id = ?, task_id = ? WHERE id = ?",
		note.Title, string(note.NoteType), nullable(string(note.SubType)),
		note.UpdatedAt.Format(timeLayout), nullable(note.ProjectID), nullable(note.TaskID), id,
	)
	if err != nil {
		return nil, fmt.Errorf("updating note: %w", err)
	}

	if p.Tags != nil {
		if err := s.replaceTags(noteTagsTable, noteTagsColumn, id, p.Tags); err != nil {
			return nil, err
		}
	}
	return note, nil
}

// ArchiveNote marks a note archived. Archiving an archived note is an error.
func (s *Store) ArchiveNote(id string) (*types.Note, error) {
	return s.setNoteFlag(id, "archived", true, types.ErrAlreadyArchived)
}

// UnarchiveNote clears the archived flag. The note must be archived.
func (s *Store) UnarchiveNote(id string) (*types.Note, error) {
	return s.setNoteFlag(id, "archived", false, types.ErrNotArchived)
}

// SoftDeleteNote marks a note deleted. Deleting a deleted note is an error.
func (s *Store) SoftDeleteNote(id string) (*types.Note, error) {
	return s.setNoteFlag(id, "deleted", true, types.ErrAlreadyDeleted)
}

// RestoreNote clears the deleted flag. The note must be deleted.
func (s *Store) RestoreNote(id string) (*types.Note, error) {
	return s.setNoteFlag(id, "deleted", false, types.ErrNotDeleted)
}

// PurgeNote hard-deletes a note together with its tag associations and any
// links that reference it from either end.
func (s *Store) PurgeNote(id string) error {
	if _, err := s.ensureNoteExists(id); err != nil {
		return err
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning purge: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM note_tags WHERE note_id = ?", id); err != nil {
		return fmt.Errorf("purging note tags: %w", err)
	}
	if _, err := tx.Exec("DELETE FROM linked_notes WHERE from_id = ? OR to_id = ?", id, id); err != nil {
		return fmt.Errorf("purging note links: %w", err)
	}
	if _, err := tx.Exec("DELETE FROM notes WHERE id = ?", id); err != nil {
		return fmt.Errorf("purging note: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing purge: %w", err)
	}
	return nil
}

// setNoteFlag flips one lifecycle flag after asserting the opposite-state
// precondition.
func (s *Store) setNoteFlag(id, column string, value bool, precondition error) (*types.Note, error) {
	note, err := s.ensureNoteExists(id)
	if err != nil {
		return nil, err
	}

	current := note.Archived
	if column == "deleted" {
		current = note.Deleted
	}
	if current == value {
		return nil, fmt.Errorf("note %q: %w", id, precondition)
	}

	if _, err := s.db.Exec("UPDATE notes SET "+column+" = ? WHERE id = ?", value, id); err != nil {
		return nil, fmt.Errorf("updating note flag: %w", err)
	}
	if column == "deleted" {
		note.Deleted = value
	} else {
		note.Archived = value
	}
	return note, nil
}

func (s *Store) ensureNoteExists(id string) (*types.Note, error) {
	note, err := s.GetNote(id)
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, fmt.Errorf("note %q: %w", id, types.ErrNotFound)
	}
	return note, nil
}

func scanNote(row *sql.Row) (*types.Note, error) {
	var n types.Note
	var subType, projectID, taskID sql.NullString
	var createdAt, updatedAt string
	err := row.Scan(&n.ID, &n.Title, (*string)(&n.NoteType), &subType,
		&createdAt, &updatedAt, &n.Archived, &n.Deleted, &projectID, &taskID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning note: %w", err)
	}
	return hydrateNote(&n, subType, projectID, taskID, createdAt, updatedAt)
}

func scanNoteRow(rows *sql.Rows) (*types.Note, error) {
	var n types.Note
	var subType, projectID, taskID sql.NullString
	var createdAt, updatedAt string
	err := rows.Scan(&n.ID, &n.Title, (*string)(&n.NoteType), &subType,
		&createdAt, &updatedAt, &n.Archived, &n.Deleted, &projectID, &taskID)
	if err != nil {
		return nil, fmt.Errorf("scanning note: %w", err)
	}
	return hydrateNote(&n, subType, projectID, taskID, createdAt, updatedAt)
}

func hydrateNote(n *types.Note, subType, projectID, taskID sql.NullString, createdAt, updatedAt string) (*types.Note, error) {
	n.SubType = types.SubType(fromNull(subType))
	n.ProjectID = fromNull(projectID)
	n.TaskID = fromNull(taskID)

	var err error
	if n.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, err
	}
	if n.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return nil, err
	}
	return n, nil
}

// placeholders returns n comma-separated SQL placeholders.
func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?, ", n), ", ")
}

// prefixColumns qualifies each column in a comma-separated list with an
// alias, for joined queries.
func prefixColumns(alias, columns string) string {
	parts := strings.Split(columns, ", ")
	return strings.Join(parts, ", "+alias+".")
}
