package types

import (
	"fmt"
	"strings"
	"time"
)

// NoteType classifies a note in the Zettelkasten sense.
type NoteType string

const (
	NoteTypeFleeting  NoteType = "fleeting"
	NoteTypePermanent NoteType = "permanent"
)

// SubType refines a note's purpose. The empty value means "no sub-type".
type SubType string

const (
	SubTypeQuestion      SubType = "question"
	SubTypeInvestigation SubType = "investigation"
	SubTypeLog           SubType = "log"
	SubTypeIdea          SubType = "idea"
	SubTypeReference     SubType = "reference"
	SubTypeLiterature    SubType = "literature"
	SubTypeQuote         SubType = "quote"
)

var validSubTypes = map[SubType]bool{
	SubTypeQuestion:      true,
	SubTypeInvestigation: true,
	SubTypeLog:           true,
	SubTypeIdea:          true,
	SubTypeReference:     true,
	SubTypeLiterature:    true,
	SubTypeQuote:         true,
}

// Note is a Zettelkasten note. Optional string fields use the empty string
// for "unset" and are persisted as NULL.
type Note struct {
	ID        string
	Title     string
	NoteType  NoteType
	SubType   SubType
	CreatedAt time.Time
	UpdatedAt time.Time
	Archived  bool
	Deleted   bool
	ProjectID string
	TaskID    string
}

// ParseNoteType validates a user-supplied note type. The field is required;
// the empty string is rejected like any other unrecognized value.
func ParseNoteType(s string) (NoteType, error) {
	switch NoteType(s) {
	case NoteTypeFleeting, NoteTypePermanent:
		return NoteType(s), nil
	default:
		return "", fmt.Errorf("%w: note_type %q", ErrInvalidEnum, s)
	}
}

// ParseSubType validates a user-supplied sub-type. The empty string and the
// tombstone "_" both mean "no sub-type".
func ParseSubType(s string) (SubType, error) {
	if s == "" || s == "_" {
		return "", nil
	}
	if validSubTypes[SubType(s)] {
		return SubType(s), nil
	}
	return "", fmt.Errorf("%w: sub_type %q", ErrInvalidEnum, s)
}

func (n Note) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "ID: %s\n", n.ID)
	fmt.Fprintf(&b, "Title: %s\n", n.Title)
	fmt.Fprintf(&b, "Type: %s\n", n.NoteType)
	if n.SubType != "" {
		fmt.Fprintf(&b, "SubType: %s\n", n.SubType)
	}
	if n.ProjectID != "" {
		fmt.Fprintf(&b, "Project: %s\n", n.ProjectID)
	}
	if n.TaskID != "" {
		fmt.Fprintf(&b, "Task: %s\n", n.TaskID)
	}
	fmt.Fprintf(&b, "Created: %s\n", n.CreatedAt.Format("2006/01/02 15:04:05"))
	fmt.Fprintf(&b, "Updated: %s\n", n.UpdatedAt.Format("2006/01/02 15:04:05"))
	fmt.Fprintf(&b, "Archived: %t\n", n.Archived)
	fmt.Fprintf(&b, "Deleted: %t", n.Deleted)
	return b.String()
}
