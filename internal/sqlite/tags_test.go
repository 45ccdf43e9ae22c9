package sqlite

import (
	"testing"

	"github.com/mesh-intelligence/kairo/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateTagAssignsSequentialIDs(t *testing.T) {
	s := setupStore(t)

	first, err := s.CreateTag("golang")
	require.NoError(t, err)
	assert.Equal(t, "t-001", first.ID)
	assert.Equal(t, "golang", first.TagName)
	assert.False(t, first.Deleted)

	second, err := s.CreateTag("reading")
	require.NoError(t, err)
	assert.Equal(t, "t-002", second.ID)
}

func TestGetTagByName(t *testing.T) {
	s := setupStore(t)
	created, err := s.CreateTag("inbox")
	require.NoError(t, err)

	got, err := s.GetTagByName("inbox")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, created.ID, got.ID)

	// Case-sensitive: a differently-cased name is a miss.
	missing, err := s.GetTagByName("Inbox")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestGetOrCreateTagReusesExisting(t *testing.T) {
	s := setupStore(t)

	first, err := s.getOrCreateTag("focus")
	require.NoError(t, err)
	second, err := s.getOrCreateTag("focus")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	tags, err := s.ListTags(false)
	require.NoError(t, err)
	assert.Len(t, tags, 1)
}

func TestRenameTag(t *testing.T) {
	s := setupStore(t)
	tag, err := s.CreateTag("wip")
	require.NoError(t, err)

	renamed, err := s.RenameTag(tag.ID, "in-progress")
	require.NoError(t, err)
	assert.Equal(t, "in-progress", renamed.TagName)

	got, err := s.GetTag(tag.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "in-progress", got.TagName)
}

func TestRenameTagMissing(t *testing.T) {
	s := setupStore(t)

	_, err := s.RenameTag("t-999", "anything")
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestSoftDeleteTag(t *testing.T) {
	s := setupStore(t)
	tag, err := s.CreateTag("stale")
	require.NoError(t, err)

	deleted, err := s.SoftDeleteTag(tag.ID)
	require.NoError(t, err)
	assert.True(t, deleted.Deleted)

	// The deleted tag moves from the active listing to the deleted one.
	active, err := s.ListTags(false)
	require.NoError(t, err)
	assert.Empty(t, active)

	gone, err := s.ListTags(true)
	require.NoError(t, err)
	require.Len(t, gone, 1)
	assert.Equal(t, tag.ID, gone[0].ID)

	// A second delete fails the precondition.
	_, err = s.SoftDeleteTag(tag.ID)
	assert.ErrorIs(t, err, types.ErrAlreadyDeleted)
}

func TestAttachTagsPreservesOrderAndDuplicates(t *testing.T) {
	s := setupStore(t)
	project, err := s.CreateProject(CreateProjectParams{Title: "Tagged"})
	require.NoError(t, err)

	require.NoError(t, s.attachTags(projectTagsTable, projectTagsColumn, project.ID, []string{"a", "b", "a"}))

	var joinRows int
	require.NoError(t, s.db.QueryRow("SELECT COUNT(*) FROM project_tags WHERE project_id = ?", project.ID).Scan(&joinRows))
	assert.Equal(t, 3, joinRows)

	// Only two distinct tag records were created.
	tags, err := s.ListTags(false)
	require.NoError(t, err)
	assert.Len(t, tags, 2)
}

func TestReplaceTags(t *testing.T) {
	s := setupStore(t)
	project, err := s.CreateProject(CreateProjectParams{Title: "Swap", Tags: []string{"old-a", "old-b"}})
	require.NoError(t, err)

	require.NoError(t, s.replaceTags(projectTagsTable, projectTagsColumn, project.ID, []string{"new"}))

	tags, err := s.TagsByProjectID(project.ID)
	require.NoError(t, err)
	require.Len(t, tags, 1)
	assert.Equal(t, "new", tags[0].TagName)

	// Empty replacement clears every association.
	require.NoError(t, s.replaceTags(projectTagsTable, projectTagsColumn, project.ID, []string{}))
	tags, err = s.TagsByProjectID(project.ID)
	require.NoError(t, err)
	assert.Empty(t, tags)
}
