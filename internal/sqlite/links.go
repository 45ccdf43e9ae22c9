package sqlite

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/mesh-intelligence/kairo/pkg/types"
)

const linkColumns = "id, from_id, to_id, link_type, created_at, deleted"

// LinkListOptions filters a link listing by one endpoint. Setting both is
// rejected.
type LinkListOptions struct {
	FromID string
	ToID   string
}

// CreateLink validates the link type, generates the next sequential "ln-NNN"
// ID, and inserts the edge. Endpoint existence is not checked.
func (s *Store) CreateLink(fromID, toID, linkType string) (*types.LinkedNote, error) {
	lt, err := types.ParseLinkType(linkType)
	if err != nil {
		return nil, err
	}

	id, err := s.nextSequentialID("linked_notes", linkIDPrefix)
	if err != nil {
		return nil, err
	}

	link := &types.LinkedNote{
		ID:        id,
		FromID:    fromID,
		ToID:      toID,
		LinkType:  lt,
		CreatedAt: now(),
	}

	_, err = s.db.Exec(
		"INSERT INTO linked_notes ("+linkColumns+") VALUES (?, ?, ?, ?, ?, 0)",
		link.ID, link.FromID, link.ToID, nullable(string(link.LinkType)),
		link.CreatedAt.Format(timeLayout),
	)
	if err != nil {
		return nil, fmt.Errorf("inserting link: %w", err)
	}
	return link, nil
}

// ListLinks returns links newest first, optionally filtered by exactly one
// endpoint.
func (s *Store) ListLinks(opts LinkListOptions) ([]*types.LinkedNote, error) {
	if opts.FromID != "" && opts.ToID != "" {
		return nil, types.ErrConflictingLinkFilter
	}

	query := "SELECT " + linkColumns + " FROM linked_notes"
	var args []any
	switch {
	case opts.FromID != "":
		query += " WHERE from_id = ?"
		args = append(args, opts.FromID)
	case opts.ToID != "":
		query += " WHERE to_id = ?"
		args = append(args, opts.ToID)
	}
	query += " ORDER BY created_at DESC"

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing links: %w", err)
	}
	defer rows.Close()

	var out []*types.LinkedNote
	for rows.Next() {
		var l types.LinkedNote
		var linkType sql.NullString
		var createdAt string
		if err := rows.Scan(&l.ID, &l.FromID, &l.ToID, &linkType, &createdAt, &l.Deleted); err != nil {
			return nil, fmt.Errorf("scanning link: %w", err)
		}
		l.LinkType = types.LinkType(fromNull(linkType))
		if l.CreatedAt, err = parseTime(createdAt); err != nil {
			return nil, err
		}
		out = append(out, &l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating links: %w", err)
	}
	return out, nil
}

// GetLink returns the link with the given ID, or (nil, nil) if absent.
func (s *Store) GetLink(id string) (*types.LinkedNote, error) {
	row := s.db.QueryRow("SELECT "+linkColumns+" FROM linked_notes WHERE id = ?", id)

	var l types.LinkedNote
	var linkType sql.NullString
	var createdAt string
	err := row.Scan(&l.ID, &l.FromID, &l.ToID, &linkType, &createdAt, &l.Deleted)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("scanning link: %w", err)
	}
	l.LinkType = types.LinkType(fromNull(linkType))
	if l.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, err
	}
	return &l, nil
}

// SoftDeleteLink marks a link deleted. Deleting a deleted link is an error.
func (s *Store) SoftDeleteLink(id string) (*types.LinkedNote, error) {
	link, err := s.GetLink(id)
	if err != nil {
		return nil, err
	}
	if link == nil {
		return nil, fmt.Errorf("link %q: %w", id, types.ErrNotFound)
	}
	if link.Deleted {
		return nil, fmt.Errorf("link %q: %w", id, types.ErrAlreadyDeleted)
	}

	if _, err := s.db.Exec("UPDATE linked_notes SET deleted = 1 WHERE id = ?", id); err != nil {
		return nil, fmt.Errorf("deleting link: %w", err)
	}
	link.Deleted = true
	return link, nil
}
