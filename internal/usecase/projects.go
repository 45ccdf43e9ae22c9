package usecase

import (
	"fmt"
	"log/slog"

	"github.com/mesh-intelligence/kairo/internal/markdown"
	"github.com/mesh-intelligence/kairo/internal/sqlite"
	"github.com/mesh-intelligence/kairo/pkg/types"
)

// Projects orchestrates project commands against the store and the projects
// mirror directory.
type Projects struct {
	Store *sqlite.Store
	Dir   string
}

// Create inserts the project and writes a fresh mirror file.
func (u Projects) Create(p sqlite.CreateProjectParams) (*types.Project, error) {
	project, err := u.Store.CreateProject(p)
	if err != nil {
		return nil, fmt.Errorf("create project: %w", err)
	}

	if err := u.writeMirror(project, nil); err != nil {
		slog.Warn("failed to write project mirror", "id", project.ID, "error", err)
	}
	return project, nil
}

// Update applies the partial update and rewrites the mirror file, preserving
// the existing body.
func (u Projects) Update(id string, p sqlite.UpdateProjectParams) (*types.Project, error) {
	project, err := u.Store.UpdateProject(id, p)
	if err != nil {
		return nil, fmt.Errorf("update project: %w", err)
	}

	_, body, err := markdown.Split(u.Dir, project.ID)
	if err != nil {
		return nil, fmt.Errorf("update project: %w", err)
	}
	if err := u.writeMirror(project, &body); err != nil {
		slog.Warn("failed to write project mirror", "id", project.ID, "error", err)
	}
	return project, nil
}

// List returns projects matching the options.
func (u Projects) List(opts sqlite.ListOptions) ([]*types.Project, error) {
	projects, err := u.Store.ListProjects(opts)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	return projects, nil
}

// Get returns the project, or (nil, nil) when absent.
func (u Projects) Get(id string) (*types.Project, error) {
	return u.Store.GetProject(id)
}

// Archive marks the project archived.
func (u Projects) Archive(id string) (*types.Project, error) {
	project, err := u.Store.ArchiveProject(id)
	if err != nil {
		return nil, fmt.Errorf("archive project: %w", err)
	}
	return project, nil
}

// Unarchive restores an archived project to the active state.
func (u Projects) Unarchive(id string) (*types.Project, error) {
	project, err := u.Store.UnarchiveProject(id)
	if err != nil {
		return nil, fmt.Errorf("unarchive project: %w", err)
	}
	return project, nil
}

// Delete soft-deletes the project.
func (u Projects) Delete(id string) (*types.Project, error) {
	project, err := u.Store.SoftDeleteProject(id)
	if err != nil {
		return nil, fmt.Errorf("delete project: %w", err)
	}
	return project, nil
}

// Restore recovers a soft-deleted project.
func (u Projects) Restore(id string) (*types.Project, error) {
	project, err := u.Store.RestoreProject(id)
	if err != nil {
		return nil, fmt.Errorf("restore project: %w", err)
	}
	return project, nil
}

// Purge hard-deletes the project and its tag rows.
func (u Projects) Purge(id string) error {
	if err := u.Store.PurgeProject(id); err != nil {
		return fmt.Errorf("purge project: %w", err)
	}
	return nil
}

func (u Projects) writeMirror(project *types.Project, body *string) error {
	tags, err := u.Store.TagsByProjectID(project.ID)
	if err != nil {
		return err
	}
	fm := markdown.NewProjectFrontMatter(project, markdown.TagNames(tags))
	return markdown.Write(u.Dir, fm, body)
}
