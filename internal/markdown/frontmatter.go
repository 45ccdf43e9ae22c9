package markdown

import (
	"github.com/mesh-intelligence/kairo/pkg/types"
)

// frontMatterTimeLayout is how timestamps appear in front matter.
const frontMatterTimeLayout = "2006-01-02T15:04:05"

// NoteFrontMatter is the YAML front matter of a note's mirror file: the note
// fields flattened plus the tag names.
type NoteFrontMatter struct {
	ID        string   `yaml:"id"`
	Title     string   `yaml:"title"`
	NoteType  string   `yaml:"note_type"`
	SubType   *string  `yaml:"sub_type"`
	CreatedAt string   `yaml:"created_at"`
	UpdatedAt string   `yaml:"updated_at"`
	Archived  bool     `yaml:"archived"`
	Deleted   bool     `yaml:"deleted"`
	ProjectID *string  `yaml:"project_id"`
	TaskID    *string  `yaml:"task_id"`
	Tags      []string `yaml:"tags"`
}

// NewNoteFrontMatter builds the front matter for a note and its tag names.
func NewNoteFrontMatter(n *types.Note, tags []string) NoteFrontMatter {
	return NoteFrontMatter{
		ID:        n.ID,
		Title:     n.Title,
		NoteType:  string(n.NoteType),
		SubType:   optional(string(n.SubType)),
		CreatedAt: n.CreatedAt.Format(frontMatterTimeLayout),
		UpdatedAt: n.UpdatedAt.Format(frontMatterTimeLayout),
		Archived:  n.Archived,
		Deleted:   n.Deleted,
		ProjectID: optional(n.ProjectID),
		TaskID:    optional(n.TaskID),
		Tags:      tagList(tags),
	}
}

func (m NoteFrontMatter) EntityID() string    { return m.ID }
func (m NoteFrontMatter) EntityTitle() string { return m.Title }

// ProjectFrontMatter is the YAML front matter of a project's mirror file.
type ProjectFrontMatter struct {
	ID          string   `yaml:"id"`
	Title       string   `yaml:"title"`
	Description *string  `yaml:"description"`
	CreatedAt   string   `yaml:"created_at"`
	UpdatedAt   string   `yaml:"updated_at"`
	Archived    bool     `yaml:"archived"`
	Deleted     bool     `yaml:"deleted"`
	Tags        []string `yaml:"tags"`
}

// NewProjectFrontMatter builds the front matter for a project and its tag
// names.
func NewProjectFrontMatter(p *types.Project, tags []string) ProjectFrontMatter {
	return ProjectFrontMatter{
		ID:          p.ID,
		Title:       p.Title,
		Description: optional(p.Description),
		CreatedAt:   p.CreatedAt.Format(frontMatterTimeLayout),
		UpdatedAt:   p.UpdatedAt.Format(frontMatterTimeLayout),
		Archived:    p.Archived,
		Deleted:     p.Deleted,
		Tags:        tagList(tags),
	}
}

func (m ProjectFrontMatter) EntityID() string    { return m.ID }
func (m ProjectFrontMatter) EntityTitle() string { return m.Title }

// TaskFrontMatter is the YAML front matter of a task's mirror file.
type TaskFrontMatter struct {
	ID          string   `yaml:"id"`
	Title       string   `yaml:"title"`
	Description *string  `yaml:"description"`
	Priority    *string  `yaml:"priority"`
	DueDate     *string  `yaml:"due_date"`
	CreatedAt   string   `yaml:"created_at"`
	UpdatedAt   string   `yaml:"updated_at"`
	Archived    bool     `yaml:"archived"`
	Deleted     bool     `yaml:"deleted"`
	ProjectID   *string  `yaml:"project_id"`
	Tags        []string `yaml:"tags"`
}

// NewTaskFrontMatter builds the front matter for a task and its tag names.
func NewTaskFrontMatter(t *types.Task, tags []string) TaskFrontMatter {
	var due *string
	if t.DueDate != nil {
		s := t.DueDate.Format(frontMatterTimeLayout)
		due = &s
	}
	return TaskFrontMatter{
		ID:          t.ID,
		Title:       t.Title,
		Description: optional(t.Description),
		Priority:    optional(string(t.Priority)),
		DueDate:     due,
		CreatedAt:   t.CreatedAt.Format(frontMatterTimeLayout),
		UpdatedAt:   t.UpdatedAt.Format(frontMatterTimeLayout),
		Archived:    t.Archived,
		Deleted:     t.Deleted,
		ProjectID:   optional(t.ProjectID),
		Tags:        tagList(tags),
	}
}

func (m TaskFrontMatter) EntityID() string    { return m.ID }
func (m TaskFrontMatter) EntityTitle() string { return m.Title }

// optional maps the empty string to a YAML null.
func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// tagList keeps the tags field an array (never null) in the front matter.
func tagList(tags []string) []string {
	if tags == nil {
		return []string{}
	}
	return tags
}

// TagNames extracts the names from tag records in order.
func TagNames(tags []*types.Tag) []string {
	names := make([]string, 0, len(tags))
	for _, t := range tags {
		names = append(names, t.TagName)
	}
	return names
}
