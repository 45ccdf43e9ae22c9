package usecase

import (
	"fmt"
	"log/slog"

	"github.com/mesh-intelligence/kairo/internal/markdown"
	"github.com/mesh-intelligence/kairo/internal/sqlite"
	"github.com/mesh-intelligence/kairo/pkg/types"
)

// Tasks orchestrates task commands against the store and the tasks mirror
// directory.
type Tasks struct {
	Store *sqlite.Store
	Dir   string
}

// Create inserts the task and writes a fresh mirror file.
func (u Tasks) Create(p sqlite.CreateTaskParams) (*types.Task, error) {
	task, err := u.Store.CreateTask(p)
	if err != nil {
		return nil, fmt.Errorf("create task: %w", err)
	}

	if err := u.writeMirror(task, nil); err != nil {
		slog.Warn("failed to write task mirror", "id", task.ID, "error", err)
	}
	return task, nil
}

// Update applies the partial update and rewrites the mirror file, preserving
// the existing body.
func (u Tasks) Update(id string, p sqlite.UpdateTaskParams) (*types.Task, error) {
	task, err := u.Store.UpdateTask(id, p)
	if err != nil {
		return nil, fmt.Errorf("update task: %w", err)
	}

	_, body, err := markdown.Split(u.Dir, task.ID)
	if err != nil {
		return nil, fmt.Errorf("update task: %w", err)
	}
	if err := u.writeMirror(task, &body); err != nil {
		slog.Warn("failed to write task mirror", "id", task.ID, "error", err)
	}
	return task, nil
}

// List returns tasks matching the options.
func (u Tasks) List(opts sqlite.TaskListOptions) ([]*types.Task, error) {
	tasks, err := u.Store.ListTasks(opts)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	return tasks, nil
}

// Get returns the task, or (nil, nil) when absent.
func (u Tasks) Get(id string) (*types.Task, error) {
	return u.Store.GetTask(id)
}

// Archive marks the task archived.
func (u Tasks) Archive(id string) (*types.Task, error) {
	task, err := u.Store.ArchiveTask(id)
	if err != nil {
		return nil, fmt.Errorf("archive task: %w", err)
	}
	return task, nil
}

// Unarchive restores an archived task to the active state.
func (u Tasks) Unarchive(id string) (*types.Task, error) {
	task, err := u.Store.UnarchiveTask(id)
	if err != nil {
		return nil, fmt.Errorf("unarchive task: %w", err)
	}
	return task, nil
}

// Delete soft-deletes the task.
func (u Tasks) Delete(id string) (*types.Task, error) {
	task, err := u.Store.SoftDeleteTask(id)
	if err != nil {
		return nil, fmt.Errorf("delete task: %w", err)
	}
	return task, nil
}

// Restore recovers a soft-deleted task.
func (u Tasks) Restore(id string) (*types.Task, error) {
	task, err := u.Store.RestoreTask(id)
	if err != nil {
		return nil, fmt.Errorf("restore task: %w", err)
	}
	return task, nil
}

// Purge hard-deletes the task and its tag rows.
func (u Tasks) Purge(id string) error {
	if err := u.Store.PurgeTask(id); err != nil {
		return fmt.Errorf("purge task: %w", err)
	}
	return nil
}

func (u Tasks) writeMirror(task *types.Task, body *string) error {
	tags, err := u.Store.TagsByTaskID(task.ID)
	if err != nil {
		return err
	}
	fm := markdown.NewTaskFrontMatter(task, markdown.TagNames(tags))
	return markdown.Write(u.Dir, fm, body)
}
