package types

import (
	"fmt"
	"strings"
	"time"
)

// Tag is a label attachable to notes, projects, and tasks. Tag names are
// matched case-sensitively when resolving by name.
type Tag struct {
	ID        string
	TagName   string
	CreatedAt time.Time
	Deleted   bool
}

func (t Tag) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "ID: %s\n", t.ID)
	fmt.Fprintf(&b, "Name: %s\n", t.TagName)
	fmt.Fprintf(&b, "Created: %s\n", t.CreatedAt.Format("2006/01/02 15:04:05"))
	fmt.Fprintf(&b, "Deleted: %t", t.Deleted)
	return b.String()
}
