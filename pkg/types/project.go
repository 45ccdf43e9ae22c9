package types

import (
	"fmt"
	"strings"
	"time"
)

// Project groups tasks and notes under one initiative.
type Project struct {
	ID          string
	Title       string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Archived    bool
	Deleted     bool
}

func (p Project) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "ID: %s\n", p.ID)
	fmt.Fprintf(&b, "Title: %s\n", p.Title)
	if p.Description != "" {
		fmt.Fprintf(&b, "Description: %s\n", p.Description)
	} else {
		fmt.Fprintf(&b, "Description: No description\n")
	}
	fmt.Fprintf(&b, "Created: %s\n", p.CreatedAt.Format("2006/01/02 15:04:05"))
	fmt.Fprintf(&b, "Updated: %s\n", p.UpdatedAt.Format("2006/01/02 15:04:05"))
	fmt.Fprintf(&b, "Archived: %t\n", p.Archived)
	fmt.Fprintf(&b, "Deleted: %t", p.Deleted)
	return b.String()
}
