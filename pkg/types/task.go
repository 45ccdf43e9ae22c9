package types

import (
	"fmt"
	"strings"
	"time"
)

// Priority is a task priority level.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// DueDateLayout is the accepted input format for task due dates.
const DueDateLayout = "2006-01-02"

// Task is a unit of work, optionally tied to a project.
type Task struct {
	ID          string
	Title       string
	Description string
	Priority    Priority
	DueDate     *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Archived    bool
	Deleted     bool
	ProjectID   string
}

// ParsePriority validates a user-supplied priority. The empty string maps to
// medium, the historical default.
func ParsePriority(s string) (Priority, error) {
	switch Priority(s) {
	case "":
		return PriorityMedium, nil
	case PriorityLow, PriorityMedium, PriorityHigh:
		return Priority(s), nil
	default:
		return "", fmt.Errorf("%w: task_priority %q", ErrInvalidEnum, s)
	}
}

// ParseDueDate parses a YYYY-MM-DD due date into midnight UTC of that day.
// The empty string means "no due date".
func ParseDueDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	d, err := time.ParseInLocation(DueDateLayout, s, time.UTC)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDueDate, err)
	}
	return &d, nil
}

func (t Task) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "ID: %s\n", t.ID)
	fmt.Fprintf(&b, "Title: %s\n", t.Title)
	if t.Description != "" {
		fmt.Fprintf(&b, "Description: %s\n", t.Description)
	} else {
		fmt.Fprintf(&b, "Description: No description\n")
	}
	if t.Priority != "" {
		fmt.Fprintf(&b, "Priority: %s\n", t.Priority)
	}
	if t.DueDate != nil {
		fmt.Fprintf(&b, "DueDate: %s\n", t.DueDate.Format("2006/01/02"))
	} else {
		fmt.Fprintf(&b, "DueDate: No due date set\n")
	}
	if t.ProjectID != "" {
		fmt.Fprintf(&b, "Project: %s\n", t.ProjectID)
	} else {
		fmt.Fprintf(&b, "Project: No related project\n")
	}
	fmt.Fprintf(&b, "Created: %s\n", t.CreatedAt.Format("2006/01/02 15:04:05"))
	fmt.Fprintf(&b, "Updated: %s\n", t.UpdatedAt.Format("2006/01/02 15:04:05"))
	fmt.Fprintf(&b, "Archived: %t\n", t.Archived)
	fmt.Fprintf(&b, "Deleted: %t", t.Deleted)
	return b.String()
}
