package sqlite

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/mesh-intelligence/kairo/pkg/types"
)

// Join table descriptors for each taggable entity type.
const (
	noteTagsTable    = "note_tags"
	projectTagsTable = "project_tags"
	taskTagsTable    = "task_tags"

	noteTagsColumn    = "note_id"
	projectTagsColumn = "project_id"
	taskTagsColumn    = "task_id"
)

// CreateTag inserts a tag with a generated sequential ID. Name uniqueness is
// not enforced here; lookup-by-name relies on callers going through
// getOrCreateTag.
func (s *Store) CreateTag(name string) (*types.Tag, error) {
	id, err := s.nextSequentialID("tags", tagIDPrefix)
	if err != nil {
		return nil, err
	}

	tag := &types.Tag{
		ID:        id,
		TagName:   name,
		CreatedAt: now(),
	}
	_, err = s.db.Exec(
		"INSERT INTO tags (id, tag_name, created_at, deleted) VALUES (?, ?, ?, 0)",
		tag.ID, tag.TagName, tag.CreatedAt.Format(timeLayout),
	)
	if err != nil {
		return nil, fmt.Errorf("inserting tag: %w", err)
	}
	return tag, nil
}

// ListTags returns tags whose deleted flag matches the given value, newest
// first.
func (s *Store) ListTags(deleted bool) ([]*types.Tag, error) {
	rows, err := s.db.Query(
		"SELECT id, tag_name, created_at, deleted FROM tags WHERE deleted = ? ORDER BY created_at DESC",
		deleted,
	)
	if err != nil {
		return nil, fmt.Errorf("listing tags: %w", err)
	}
	defer rows.Close()

	return scanTags(rows)
}

// GetTag returns the tag with the given ID, or (nil, nil) if absent.
func (s *Store) GetTag(id string) (*types.Tag, error) {
	row := s.db.QueryRow("SELECT id, tag_name, created_at, deleted FROM tags WHERE id = ?", id)
	tag, err := scanTag(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return tag, err
}

// GetTagByName returns the tag with the exact given name, or (nil, nil) if
// absent. Matching is case-sensitive.
func (s *Store) GetTagByName(name string) (*types.Tag, error) {
	row := s.db.QueryRow("SELECT id, tag_name, created_at, deleted FROM tags WHERE tag_name = ?", name)
	tag, err := scanTag(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return tag, err
}

// RenameTag changes a tag's name.
func (s *Store) RenameTag(id, newName string) (*types.Tag, error) {
	tag, err := s.ensureTagExists(id)
	if err != nil {
		return nil, err
	}

	if _, err := s.db.Exec("UPDATE tags SET tag_name = ? WHERE id = ?", newName, id); err != nil {
		return nil, fmt.Errorf("renaming tag: %w", err)
	}
	tag.TagName = newName
	return tag, nil
}

// SoftDeleteTag marks a tag deleted. Deleting an already-deleted tag is an
// error.
func (s *Store) SoftDeleteTag(id string) (*types.Tag, error) {
	tag, err := s.ensureTagExists(id)
	if err != nil {
		return nil, err
	}
	if tag.Deleted {
		return nil, fmt.Errorf("tag %q: %w", id, types.ErrAlreadyDeleted)
	}

	if _, err := s.db.Exec("UPDATE tags SET deleted = 1 WHERE id = ?", id); err != nil {
		return nil, fmt.Errorf("deleting tag: %w", err)
	}
	tag.Deleted = true
	return tag, nil
}

// TagsByNoteID returns the tags attached to a note.
func (s *Store) TagsByNoteID(noteID string) ([]*types.Tag, error) {
	return s.tagsByEntity(noteTagsTable, noteTagsColumn, noteID)
}

// TagsByProjectID returns the tags attached to a project.
func (s *Store) TagsByProjectID(projectID string) ([]*types.Tag, error) {
	return s.tagsByEntity(projectTagsTable, projectTagsColumn, projectID)
}

// TagsByTaskID returns the tags attached to a task.
func (s *Store) TagsByTaskID(taskID string) ([]*types.Tag, error) {
	return s.tagsByEntity(taskTagsTable, taskTagsColumn, taskID)
}

// getOrCreateTag resolves a tag name to its record, creating the tag on a
// miss.
func (s *Store) getOrCreateTag(name string) (*types.Tag, error) {
	tag, err := s.GetTagByName(name)
	if err != nil {
		return nil, err
	}
	if tag != nil {
		return tag, nil
	}
	return s.CreateTag(name)
}

// attachTags resolves each name in order and inserts one join row per name.
// Duplicate names produce duplicate join rows; the caller decides whether
// that matters.
func (s *Store) attachTags(joinTable, entityColumn, entityID string, names []string) error {
	for _, name := range names {
		tag, err := s.getOrCreateTag(name)
		if err != nil {
			return err
		}
		_, err = s.db.Exec(
			fmt.Sprintf("INSERT INTO %s (%s, tag_id) VALUES (?, ?)", joinTable, entityColumn),
			entityID, tag.ID,
		)
		if err != nil {
			return fmt.Errorf("attaching tag %q: %w", name, err)
		}
	}
	return nil
}

// replaceTags deletes every join row for the entity and recreates them from
// names. An empty slice therefore removes all tag associations.
func (s *Store) replaceTags(joinTable, entityColumn, entityID string, names []string) error {
	_, err := s.db.Exec(
		fmt.Sprintf("DELETE FROM %s WHERE %s = ?", joinTable, entityColumn),
		entityID,
	)
	if err != nil {
		return fmt.Errorf("clearing tag associations: %w", err)
	}
	return s.attachTags(joinTable, entityColumn, entityID, names)
}

func (s *Store) tagsByEntity(joinTable, entityColumn, entityID string) ([]*types.Tag, error) {
	query := fmt.Sprintf(
		"SELECT t.id, t.tag_name, t.created_at, t.deleted FROM %s j INNER JOIN tags t ON t.id = j.tag_id WHERE j.%s = ?",
		joinTable, entityColumn,
	)
	rows, err := s.db.Query(query, entityID)
	if err != nil {
		return nil, fmt.Errorf("querying %s: %w", joinTable, err)
	}
	defer rows.Close()

	return scanTags(rows)
}

func (s *Store) ensureTagExists(id string) (*types.Tag, error) {
	tag, err := s.GetTag(id)
	if err != nil {
		return nil, err
	}
	if tag == nil {
		return nil, fmt.Errorf("tag %q: %w", id, types.ErrNotFound)
	}
	return tag, nil
}

func scanTag(row *sql.Row) (*types.Tag, error) {
	var t types.Tag
	var createdAt string
	if err := row.Scan(&t.ID, &t.TagName, &createdAt, &t.Deleted); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning tag: %w", err)
	}
	var err error
	t.CreatedAt, err = parseTime(createdAt)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func scanTags(rows *sql.Rows) ([]*types.Tag, error) {
	var out []*types.Tag
	for rows.Next() {
		var t types.Tag
		var createdAt string
		if err := rows.Scan(&t.ID, &t.TagName, &createdAt, &t.Deleted); err != nil {
			return nil, fmt.Errorf("scanning tag: %w", err)
		}
		var err error
		t.CreatedAt, err = parseTime(createdAt)
		if err != nil {
			return nil, err
		}
		out = append(out, &t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating tags: %w", err)
	}
	return out, nil
}
