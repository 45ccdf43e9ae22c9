package sqlite

import (
	"testing"
	"time"

	"github.com/mesh-intelligence/kairo/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateTaskDefaults(t *testing.T) {
	s := setupStore(t)

	task, err := s.CreateTask(CreateTaskParams{Title: "Water the plants"})
	require.NoError(t, err)
	assert.Equal(t, "task-001", task.ID)
	assert.Equal(t, types.PriorityMedium, task.Priority)
	assert.Nil(t, task.DueDate)

	got, err := s.GetTask(task.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, types.PriorityMedium, got.Priority)
	assert.Nil(t, got.DueDate)
}

func TestCreateTaskWithDueDate(t *testing.T) {
	s := setupStore(t)

	task, err := s.CreateTask(CreateTaskParams{
		Title:    "File taxes",
		Priority: "high",
		DueDate:  "2026-04-15",
	})
	require.NoError(t, err)
	assert.Equal(t, types.PriorityHigh, task.Priority)
	require.NotNil(t, task.DueDate)

	got, err := s.GetTask(task.ID)
	require.NoError(t, err)
	require.NotNil(t, got.DueDate)
	assert.Equal(t, time.Date(2026, 4, 15, 0, 0, 0, 0, time.UTC), *got.DueDate)
}

func TestCreateTaskRejectsBadInputs(t *testing.T) {
	s := setupStore(t)

	_, err := s.CreateTask(CreateTaskParams{Title: "x", Priority: "urgent"})
	assert.ErrorIs(t, err, types.ErrInvalidEnum)

	_, err = s.CreateTask(CreateTaskParams{Title: "x", DueDate: "2025-13-01"})
	assert.ErrorIs(t, err, types.ErrInvalidDueDate)

	_, err = s.CreateTask(CreateTaskParams{Title: "x", ProjectID: "p-404"})
	assert.ErrorIs(t, err, types.ErrNotFound)

	// Validation failures must not leave partial rows behind.
	tasks, err := s.ListTasks(TaskListOptions{})
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestListTasksByPriorityAndProject(t *testing.T) {
	s := setupStore(t)
	project, err := s.CreateProject(CreateProjectParams{Title: "Chores"})
	require.NoError(t, err)

	high, err := s.CreateTask(CreateTaskParams{Title: "High", Priority: "high", ProjectID: project.ID})
	require.NoError(t, err)
	low, err := s.CreateTask(CreateTaskParams{Title: "Low", Priority: "low"})
	require.NoError(t, err)

	got, err := s.ListTasks(TaskListOptions{Priority: "high"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, high.ID, got[0].ID)

	got, err = s.ListTasks(TaskListOptions{ProjectID: project.ID})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, high.ID, got[0].ID)

	got, err = s.ListTasks(TaskListOptions{Priority: "low", ProjectID: project.ID})
	require.NoError(t, err)
	assert.Empty(t, got)
	_ = low

	_, err = s.ListTasks(TaskListOptions{Priority: "urgent"})
	assert.ErrorIs(t, err, types.ErrInvalidEnum)
}

func TestListTasksByTagOrdersByDueDate(t *testing.T) {
	s := setupStore(t)

	jan, err := s.CreateTask(CreateTaskParams{Title: "Jan", DueDate: "2026-01-10", Tags: []string{"q1"}})
	require.NoError(t, err)
	mar, err := s.CreateTask(CreateTaskParams{Title: "Mar", DueDate: "2026-03-05", Tags: []string{"q1"}})
	require.NoError(t, err)
	feb, err := s.CreateTask(CreateTaskParams{Title: "Feb", DueDate: "2026-02-01", Tags: []string{"q1"}})
	require.NoError(t, err)
	_, err = s.CreateTask(CreateTaskParams{Title: "Other", DueDate: "2026-06-01"})
	require.NoError(t, err)

	got, err := s.ListTasks(TaskListOptions{Tags: []string{"q1"}})
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, []string{mar.ID, feb.ID, jan.ID}, []string{got[0].ID, got[1].ID, got[2].ID})

	got, err = s.ListTasks(TaskListOptions{Tags: []string{"q1"}, Order: "asc"})
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, jan.ID, got[0].ID)
}

func TestUpdateTaskPriorityAlwaysRewritten(t *testing.T) {
	s := setupStore(t)
	task, err := s.CreateTask(CreateTaskParams{Title: "Reset me", Priority: "high", DueDate: "2026-05-01"})
	require.NoError(t, err)

	// A blank priority on update resets the task to medium, while an
	// unsupplied due date stays as stored.
	title := "Renamed"
	updated, err := s.UpdateTask(task.ID, UpdateTaskParams{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Title)
	assert.Equal(t, types.PriorityMedium, updated.Priority)
	require.NotNil(t, updated.DueDate)
	assert.Equal(t, time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC), *updated.DueDate)

	updated, err = s.UpdateTask(task.ID, UpdateTaskParams{Priority: "low", DueDate: "2026-07-01"})
	require.NoError(t, err)
	assert.Equal(t, types.PriorityLow, updated.Priority)
	require.NotNil(t, updated.DueDate)
	assert.Equal(t, time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC), *updated.DueDate)
}

func TestUpdateTaskProjectReference(t *testing.T) {
	s := setupStore(t)
	task, err := s.CreateTask(CreateTaskParams{Title: "Orphan"})
	require.NoError(t, err)

	missing := "p-404"
	_, err = s.UpdateTask(task.ID, UpdateTaskParams{ProjectID: &missing})
	assert.ErrorIs(t, err, types.ErrNotFound)

	project, err := s.CreateProject(CreateProjectParams{Title: "Home"})
	require.NoError(t, err)
	updated, err := s.UpdateTask(task.ID, UpdateTaskParams{ProjectID: &project.ID})
	require.NoError(t, err)
	assert.Equal(t, project.ID, updated.ProjectID)

	// Clearing the reference with an explicit empty string.
	empty := ""
	updated, err = s.UpdateTask(task.ID, UpdateTaskParams{ProjectID: &empty})
	require.NoError(t, err)
	assert.Empty(t, updated.ProjectID)
}

func TestTaskLifecyclePreconditions(t *testing.T) {
	s := setupStore(t)
	task, err := s.CreateTask(CreateTaskParams{Title: "Lifecycle"})
	require.NoError(t, err)

	_, err = s.ArchiveTask(task.ID)
	require.NoError(t, err)
	_, err = s.ArchiveTask(task.ID)
	assert.ErrorIs(t, err, types.ErrAlreadyArchived)

	_, err = s.UnarchiveTask(task.ID)
	require.NoError(t, err)
	_, err = s.UnarchiveTask(task.ID)
	assert.ErrorIs(t, err, types.ErrNotArchived)
}

func TestPurgeTask(t *testing.T) {
	s := setupStore(t)
	task, err := s.CreateTask(CreateTaskParams{Title: "Doomed", Tags: []string{"gone"}})
	require.NoError(t, err)

	require.NoError(t, s.PurgeTask(task.ID))

	got, err := s.GetTask(task.ID)
	require.NoError(t, err)
	assert.Nil(t, got)

	var joinRows int
	require.NoError(t, s.db.QueryRow("SELECT COUNT(*) FROM task_tags WHERE task_id = ?", task.ID).Scan(&joinRows))
	assert.Zero(t, joinRows)
}
