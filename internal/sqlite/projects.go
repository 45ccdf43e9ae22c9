package sqlite

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/mesh-intelligence/kairo/pkg/types"
)

const projectColumns = "id, title, description, created_at, updated_at, archived, deleted"

// CreateProjectParams carries the raw user inputs for project creation.
type CreateProjectParams struct {
	Title       string
	Description string
	Tags        []string
}

// UpdateProjectParams carries a partial project update. Nil pointers leave
// fields untouched; a nil Tags slice leaves associations untouched.
type UpdateProjectParams struct {
	Title       *string
	Description *string
	Tags        []string
}

// CreateProject generates the next sequential "p-NNN" ID, inserts the row,
// and attaches tags in the supplied order.
func (s *Store) CreateProject(p CreateProjectParams) (*types.Project, error) {
	id, err := s.nextSequentialID("projects", projectIDPrefix)
	if err != nil {
		return nil, err
	}

	ts := now()
	project := &types.Project{
		ID:          id,
		Title:       p.Title,
		Description: p.Description,
		CreatedAt:   ts,
		UpdatedAt:   ts,
	}

	_, err = s.db.Exec(
		"INSERT INTO projects ("+projectColumns+") VALUES (?, ?, ?, ?, ?, 0, 0)",
		project.ID, project.Title, nullable(project.Description),
		project.CreatedAt.Format(timeLayout), project.UpdatedAt.Format(timeLayout),
	)
	if err != nil {
		return nil, fmt.Errorf("inserting project: %w", err)
	}

	if p.Tags != nil {
		if err := s.attachTags(projectTagsTable, projectTagsColumn, project.ID, p.Tags); err != nil {
			return nil, err
		}
	}
	return project, nil
}

// ListProjects returns projects matching the options, ordered by creation
// time (descending unless Order is "asc").
func (s *Store) ListProjects(opts ListOptions) ([]*types.Project, error) {
	if opts.Archived && opts.Deleted {
		return nil, types.ErrInvalidListFilter
	}

	var query string
	var args []any
	if opts.Tags != nil {
		query = "SELECT DISTINCT p." + prefixColumns("p", projectColumns) +
			" FROM projects p" +
			" INNER JOIN project_tags pt ON pt.project_id = p.id" +
			" INNER JOIN tags t ON t.id = pt.tag_id" +
			" WHERE t.tag_name IN (" + placeholders(len(opts.Tags)) + ")" +
			" AND p.archived = ? AND p.deleted = ?"
		for _, tag := range opts.Tags {
			args = append(args, tag)
		}
		args = append(args, opts.Archived, opts.Deleted)
		query += orderClause("p.created_at", opts.Order)
	} else {
		query = "SELECT " + projectColumns + " FROM projects WHERE archived = ? AND deleted = ?"
		args = append(args, opts.Archived, opts.Deleted)
		query += orderClause("created_at", opts.Order)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}
	defer rows.Close()

	var out []*types.Project
	for rows.Next() {
		p, err := scanProjectRow(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating projects: %w", err)
	}
	return out, nil
}

// GetProject returns the project with the given ID, or (nil, nil) if absent.
func (s *Store) GetProject(id string) (*types.Project, error) {
	row := s.db.QueryRow("SELECT "+projectColumns+" FROM projects WHERE id = ?", id)
	p, err := scanProject(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return p, err
}

// UpdateProject applies a partial update and, when Tags is non-nil, replaces
// the tag associations wholesale.
func (s *Store) UpdateProject(id string, p UpdateProjectParams) (*types.Project, error) {
	project, err := s.ensureProjectExists(id)
	if err != nil {
		return nil, err
	}

	if p.Title != nil {
		project.Title = *p.Title
	}
	if p.Description != nil {
		project.Description = *p.Description
	}
	project.UpdatedAt = now()

	_, err = s.db.Exec(
		"UPDATE projects SET title = ?, description = ?, updated_at = ? WHERE id = ?",
		project.Title, nullable(project.Description), project.UpdatedAt.Format(timeLayout), id,
	)
	if err != nil {
		return nil, fmt.Errorf("updating project: %w", err)
	}

	if p.Tags != nil {
		if err := s.replaceTags(projectTagsTable, projectTagsColumn, id, p.Tags); err != nil {
			return nil, err
		}
	}
	return project, nil
}

// ArchiveProject marks a project archived. Archiving an archived project is
// an error.
func (s *Store) ArchiveProject(id string) (*types.Project, error) {
	return s.setProjectFlag(id, "archived", true, types.ErrAlreadyArchived)
}

// UnarchiveProject clears the archived flag. The project must be archived.
func (s *Store) UnarchiveProject(id string) (*types.Project, error) {
	return s.setProjectFlag(id, "archived", false, types.ErrNotArchived)
}

// SoftDeleteProject marks a project deleted. Deleting a deleted project is an
// error.
func (s *Store) SoftDeleteProject(id string) (*types.Project, error) {
	return s.setProjectFlag(id, "deleted", true, types.ErrAlreadyDeleted)
}

// RestoreProject clears the deleted flag. The project must be deleted.
func (s *Store) RestoreProject(id string) (*types.Project, error) {
	return s.setProjectFlag(id, "deleted", false, types.ErrNotDeleted)
}

// PurgeProject hard-deletes a project together with its tag associations.
// Notes and tasks that referenced the project keep their dangling project_id.
func (s *Store) PurgeProject(id string) error {
	if _, err := s.ensureProjectExists(id); err != nil {
		return err
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning purge: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM project_tags WHERE project_id = ?", id); err != nil {
		return fmt.Errorf("purging project tags: %w", err)
	}
	if _, err := tx.Exec("DELETE FROM projects WHERE id = ?", id); err != nil {
		return fmt.Errorf("purging project: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing purge: %w", err)
	}
	return nil
}

func (s *Store) setProjectFlag(id, column string, value bool, precondition error) (*types.Project, error) {
	project, err := s.ensureProjectExists(id)
	if err != nil {
		return nil, err
	}

	current := project.Archived
	if column == "deleted" {
		current = project.Deleted
	}
	if current == value {
		return nil, fmt.Errorf("project %q: %w", id, precondition)
	}

	if _, err := s.db.Exec("UPDATE projects SET "+column+" = ? WHERE id = ?", value, id); err != nil {
		return nil, fmt.Errorf("updating project flag: %w", err)
	}
	if column == "deleted" {
		project.Deleted = value
	} else {
		project.Archived = value
	}
	return project, nil
}

func (s *Store) ensureProjectExists(id string) (*types.Project, error) {
	project, err := s.GetProject(id)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, fmt.Errorf("project %q: %w", id, types.ErrNotFound)
	}
	return project, nil
}

func scanProject(row *sql.Row) (*types.Project, error) {
	var p types.Project
	var description sql.NullString
	var createdAt, updatedAt string
	err := row.Scan(&p.ID, &p.Title, &description, &createdAt, &updatedAt, &p.Archived, &p.Deleted)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning project: %w", err)
	}
	return hydrateProject(&p, description, createdAt, updatedAt)
}

func scanProjectRow(rows *sql.Rows) (*types.Project, error) {
	var p types.Project
	var description sql.NullString
	var createdAt, updatedAt string
	err := rows.Scan(&p.ID, &p.Title, &description, &createdAt, &updatedAt, &p.Archived, &p.Deleted)
	if err != nil {
		return nil, fmt.Errorf("scanning project: %w", err)
	}
	return hydrateProject(&p, description, createdAt, updatedAt)
}

func hydrateProject(p *types.Project, description sql.NullString, createdAt, updatedAt string) (*types.Project, error) {
	p.Description = fromNull(description)

	var err error
	if p.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, err
	}
	if p.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return nil, err
	}
	return p, nil
}
