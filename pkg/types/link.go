package types

import (
	"fmt"
	"strings"
	"time"
)

// LinkType classifies the relation between two linked notes. The empty value
// means "untyped link".
type LinkType string

const (
	LinkTypeStructure LinkType = "structure"
	LinkTypeReference LinkType = "reference"
	LinkTypeSupport   LinkType = "support"
	LinkTypeRelated   LinkType = "related"
	LinkTypeRefute    LinkType = "refute"
)

var validLinkTypes = map[LinkType]bool{
	LinkTypeStructure: true,
	LinkTypeReference: true,
	LinkTypeSupport:   true,
	LinkTypeRelated:   true,
	LinkTypeRefute:    true,
}

// LinkedNote is a directed, typed edge between two notes. Endpoint existence
// is not enforced.
type LinkedNote struct {
	ID        string
	FromID    string
	ToID      string
	LinkType  LinkType
	CreatedAt time.Time
	Deleted   bool
}

// ParseLinkType validates a user-supplied link type. The empty string and the
// tombstone "_" both mean "untyped".
func ParseLinkType(s string) (LinkType, error) {
	if s == "" || s == "_" {
		return "", nil
	}
	if validLinkTypes[LinkType(s)] {
		return LinkType(s), nil
	}
	return "", fmt.Errorf("%w: link_type %q", ErrInvalidEnum, s)
}

func (l LinkedNote) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "ID: %s\n", l.ID)
	fmt.Fprintf(&b, "From: %s\n", l.FromID)
	fmt.Fprintf(&b, "To: %s\n", l.ToID)
	if l.LinkType != "" {
		fmt.Fprintf(&b, "Type: %s\n", l.LinkType)
	}
	fmt.Fprintf(&b, "Created: %s\n", l.CreatedAt.Format("2006/01/02 15:04:05"))
	fmt.Fprintf(&b, "Deleted: %t", l.Deleted)
	return b.String()
}
