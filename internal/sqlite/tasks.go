package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/mesh-intelligence/kairo/pkg/types"
)

const taskColumns = "id, title, description, priority, due_date, created_at, updated_at, archived, deleted, project_id"

// CreateTaskParams carries the raw user inputs for task creation. A blank
// priority defaults to medium; the due date is a YYYY-MM-DD string.
type CreateTaskParams struct {
	Title       string
	Description string
	Priority    string
	DueDate     string
	ProjectID   string
	Tags        []string
}

// UpdateTaskParams carries a partial task update. Priority is always
// re-derived: leaving it blank resets the task to medium, matching the
// historical behavior. A blank DueDate leaves the stored date unchanged.
type UpdateTaskParams struct {
	Title       *string
	Description *string
	Priority    string
	DueDate     string
	ProjectID   *string
	Tags        []string
}

// TaskListOptions filters a task listing. On top of the common flags it
// supports priority and project filters. The tag-filtered path orders by due
// date instead of creation time.
type TaskListOptions struct {
	Archived  bool
	Deleted   bool
	Tags      []string
	Order     string
	Priority  string
	ProjectID string
}

// CreateTask validates the inputs, generates the next sequential "task-NNN"
// ID, inserts the row, and attaches tags in the supplied order.
func (s *Store) CreateTask(p CreateTaskParams) (*types.Task, error) {
	priority, err := types.ParsePriority(p.Priority)
	if err != nil {
		return nil, err
	}
	dueDate, err := types.ParseDueDate(p.DueDate)
	if err != nil {
		return nil, err
	}
	if p.ProjectID != "" {
		if _, err := s.ensureProjectExists(p.ProjectID); err != nil {
			return nil, err
		}
	}

	id, err := s.nextSequentialID("tasks", taskIDPrefix)
	if err != nil {
		return nil, err
	}

	ts := now()
	task := &types.Task{
		ID:          id,
		Title:       p.Title,
		Description: p.Description,
		Priority:    priority,
		DueDate:     dueDate,
		CreatedAt:   ts,
		UpdatedAt:   ts,
		ProjectID:   p.ProjectID,
	}

	_, err = s.db.Exec(
		"INSERT INTO tasks ("+taskColumns+") VALUES (?, ?, ?, ?, ?, ?, ?, 0, 0, ?)",
		task.ID, task.Title, nullable(task.Description), string(task.Priority),
		formatDueDate(task.DueDate), task.CreatedAt.Format(timeLayout),
		task.UpdatedAt.Format(timeLayout), nullable(task.ProjectID),
	)
	if err != nil {
		return nil, fmt.Errorf("inserting task: %w", err)
	}

	if p.Tags != nil {
		if err := s.attachTags(taskTagsTable, taskTagsColumn, task.ID, p.Tags); err != nil {
			return nil, err
		}
	}
	return task, nil
}

// ListTasks returns tasks matching the options. Without a tag filter the sort
// key is creation time; with one it is the due date, both defaulting to
// descending.
func (s *Store) ListTasks(opts TaskListOptions) ([]*types.Task, error) {
	if opts.Archived && opts.Deleted {
		return nil, types.ErrInvalidListFilter
	}
	if opts.Priority != "" {
		if _, err := types.ParsePriority(opts.Priority); err != nil {
			return nil, err
		}
	}

	var query string
	var args []any
	var extra string
	if opts.Priority != "" {
		extra += " AND priority = ?"
	}
	if opts.ProjectID != "" {
		extra += " AND project_id = ?"
	}

	if opts.Tags != nil {
		query = "SELECT DISTINCT k." + prefixColumns("k", taskColumns) +
			" FROM tasks k" +
			" INNER JOIN task_tags kt ON kt.task_id = k.id" +
			" INNER JOIN tags t ON t.id = kt.tag_id" +
			" WHERE t.tag_name IN (" + placeholders(len(opts.Tags)) + ")" +
			" AND k.archived = ? AND k.deleted = ?"
		for _, tag := range opts.Tags {
			args = append(args, tag)
		}
		args = append(args, opts.Archived, opts.Deleted)
		if opts.Priority != "" {
			query += " AND k.priority = ?"
			args = append(args, opts.Priority)
		}
		if opts.ProjectID != "" {
			query += " AND k.project_id = ?"
			args = append(args, opts.ProjectID)
		}
		query += orderClause("k.due_date", opts.Order)
	} else {
		query = "SELECT " + taskColumns + " FROM tasks WHERE archived = ? AND deleted = ?" + extra
		args = append(args, opts.Archived, opts.Deleted)
		if opts.Priority != "" {
			args = append(args, opts.Priority)
		}
		if opts.ProjectID != "" {
			args = append(args, opts.ProjectID)
		}
		query += orderClause("created_at", opts.Order)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing tasks: %w", err)
	}
	defer rows.Close()

	var out []*types.Task
	for rows.Next() {
		t, err := scanTaskRow(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating tasks: %w", err)
	}
	return out, nil
}

// GetTask returns the task with the given ID, or (nil, nil) if absent.
func (s *Store) GetTask(id string) (*types.Task, error) {
	row := s.db.QueryRow("SELECT "+taskColumns+" FROM tasks WHERE id = ?", id)
	t, err := scanTask(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return t, err
}

// UpdateTask applies a partial update. The priority is always rewritten from
// the supplied value (blank resets to medium); the due date only changes when
// supplied.
func (s *Store) UpdateTask(id string, p UpdateTaskParams) (*types.Task, error) {
	task, err := s.ensureTaskExists(id)
	if err != nil {
		return nil, err
	}

	priority, err := types.ParsePriority(p.Priority)
	if err != nil {
		return nil, err
	}
	task.Priority = priority

	if p.DueDate != "" {
		due, err := types.ParseDueDate(p.DueDate)
		if err != nil {
			return nil, err
		}
		task.DueDate = due
	}
	if p.Title != nil {
		task.Title = *p.Title
	}
	if p.Description != nil {
		task.Description = *p.Description
	}
	if p.ProjectID != nil {
		if *p.ProjectID != "" {
			if _, err := s.ensureProjectExists(*p.ProjectID); err != nil {
				return nil, err
			}
		}
		task.ProjectID = *p.ProjectID
	}
	task.UpdatedAt = now()

	_, err = s.db.Exec(
		"UPDATE tasks SET title = ?, description = ?, priority = ?, due_date = ?, updated_at = ?, project_id = ? WHERE id = ?",
		task.Title, nullable(task.Description), string(task.Priority),
		formatDueDate(task.DueDate), task.UpdatedAt.Format(timeLayout),
		nullable(task.ProjectID), id,
	)
	if err != nil {
		return nil, fmt.Errorf("updating task: %w", err)
	}

	if p.Tags != nil {
		if err := s.replaceTags(taskTagsTable, taskTagsColumn, id, p.Tags); err != nil {
			return nil, err
		}
	}
	return task, nil
}

// ArchiveTask marks a task archived. Archiving an archived task is an error.
func (s *Store) ArchiveTask(id string) (*types.Task, error) {
	return s.setTaskFlag(id, "archived", true, types.ErrAlreadyArchived)
}

// UnarchiveTask clears the archived flag. The task must be archived.
func (s *Store) UnarchiveTask(id string) (*types.Task, error) {
	return s.setTaskFlag(id, "archived", false, types.ErrNotArchived)
}

// SoftDeleteTask marks a task deleted. Deleting a deleted task is an error.
func (s *Store) SoftDeleteTask(id string) (*types.Task, error) {
	return s.setTaskFlag(id, "deleted", true, types.ErrAlreadyDeleted)
}

// RestoreTask clears the deleted flag. The task must be deleted.
func (s *Store) RestoreTask(id string) (*types.Task, error) {
	return s.setTaskFlag(id, "deleted", false, types.ErrNotDeleted)
}

// PurgeTask hard-deletes a task together with its tag associations.
func (s *Store) PurgeTask(id string) error {
	if _, err := s.ensureTaskExists(id); err != nil {
		return err
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning purge: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM task_tags WHERE task_id = ?", id); err != nil {
		return fmt.Errorf("purging task tags: %w", err)
	}
	if _, err := tx.Exec("DELETE FROM tasks WHERE id = ?", id); err != nil {
		return fmt.Errorf("purging task: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing purge: %w", err)
	}
	return nil
}

func (s *Store) setTaskFlag(id, column string, value bool, precondition error) (*types.Task, error) {
	task, err := s.ensureTaskExists(id)
	if err != nil {
		return nil, err
	}

	current := task.Archived
	if column == "deleted" {
		current = task.Deleted
	}
	if current == value {
		return nil, fmt.Errorf("task %q: %w", id, precondition)
	}

	if _, err := s.db.Exec("UPDATE tasks SET "+column+" = ? WHERE id = ?", value, id); err != nil {
		return nil, fmt.Errorf("updating task flag: %w", err)
	}
	if column == "deleted" {
		task.Deleted = value
	} else {
		task.Archived = value
	}
	return task, nil
}

func (s *Store) ensureTaskExists(id string) (*types.Task, error) {
	task, err := s.GetTask(id)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, fmt.Errorf("task %q: %w", id, types.ErrNotFound)
	}
	return task, nil
}

// formatDueDate persists a due date as RFC 3339 midnight, or NULL.
func formatDueDate(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.Format(timeLayout)
}

func scanTask(row *sql.Row) (*types.Task, error) {
	var t types.Task
	var description, priority, dueDate, projectID sql.NullString
	var createdAt, updatedAt string
	err := row.Scan(&t.ID, &t.Title, &description, &priority, &dueDate,
		&createdAt, &updatedAt, &t.Archived, &t.Deleted, &projectID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning task: %w", err)
	}
	return hydrateTask(&t, description, priority, dueDate, projectID, createdAt, updatedAt)
}

func scanTaskRow(rows *sql.Rows) (*types.Task, error) {
	var t types.Task
	var description, priority, dueDate, projectID sql.NullString
	var createdAt, updatedAt string
	err := rows.Scan(&t.ID, &t.Title, &description, &priority, &dueDate,
		&createdAt, &updatedAt, &t.Archived, &t.Deleted, &projectID)
	if err != nil {
		return nil, fmt.Errorf("scanning task: %w", err)
	}
	return hydrateTask(&t, description, priority, dueDate, projectID, createdAt, updatedAt)
}

func hydrateTask(t *types.Task, description, priority, dueDate, projectID sql.NullString, createdAt, updatedAt string) (*types.Task, error) {
	t.Description = fromNull(description)
	t.Priority = types.Priority(fromNull(priority))
	t.ProjectID = fromNull(projectID)

	if dueDate.Valid {
		due, err := parseTime(dueDate.String)
		if err != nil {
			return nil, err
		}
		t.DueDate = &due
	}

	var err error
	if t.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, err
	}
	if t.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return nil, err
	}
	return t, nil
}
