package sqlite

// Schema DDL. Timestamps are stored as RFC 3339 text in UTC; booleans as
// INTEGER 0/1. Optional columns are nullable.
const (
	createNotes = `CREATE TABLE IF NOT EXISTS notes (
    id TEXT PRIMARY KEY,
    title TEXT NOT NULL,
    note_type TEXT NOT NULL,
    sub_type TEXT,
    created_at TEXT NOT NULL,
    updated_at TEXT NOT NULL,
    archived INTEGER NOT NULL DEFAULT 0,
    deleted INTEGER NOT NULL DEFAULT 0,
    project_id TEXT,
    task_id TEXT
);`

	createProjects = `CREATE TABLE IF NOT EXISTS projects (
    id TEXT PRIMARY KEY,
    title TEXT NOT NULL,
    description TEXT,
    created_at TEXT NOT NULL,
    updated_at TEXT NOT NULL,
    archived INTEGER NOT NULL DEFAULT 0,
    deleted INTEGER NOT NULL DEFAULT 0
);`

	createTasks = `CREATE TABLE IF NOT EXISTS tasks (
    id TEXT PRIMARY KEY,
    title TEXT NOT NULL,
    description TEXT,
    priority TEXT,
    due_date TEXT,
    created_at TEXT NOT NULL,
    updated_at TEXT NOT NULL,
    archived INTEGER NOT NULL DEFAULT 0,
    deleted INTEGER NOT NULL DEFAULT 0,
    project_id TEXT
);`

	createTags = `CREATE TABLE IF NOT EXISTS tags (
    id TEXT PRIMARY KEY,
    tag_name TEXT NOT NULL,
    created_at TEXT NOT NULL,
    deleted INTEGER NOT NULL DEFAULT 0
);`

	createNoteTags = `CREATE TABLE IF NOT EXISTS note_tags (
    note_id TEXT NOT NULL,
    tag_id TEXT NOT NULL
);`

	createProjectTags = `CREATE TABLE IF NOT EXISTS project_tags (
    project_id TEXT NOT NULL,
    tag_id TEXT NOT NULL
);`

	createTaskTags = `CREATE TABLE IF NOT EXISTS task_tags (
    task_id TEXT NOT NULL,
    tag_id TEXT NOT NULL
);`

	createLinkedNotes = `CREATE TABLE IF NOT EXISTS linked_notes (
    id TEXT PRIMARY KEY,
    from_id TEXT NOT NULL,
    to_id TEXT NOT NULL,
    link_type TEXT,
    created_at TEXT NOT NULL,
    deleted INTEGER NOT NULL DEFAULT 0
);`
)

// Index DDL for the join-table lookups and the name-based tag resolution.
const (
	idxNoteTagsNote       = `CREATE INDEX IF NOT EXISTS idx_note_tags_note ON note_tags(note_id);`
	idxProjectTagsProject = `CREATE INDEX IF NOT EXISTS idx_project_tags_project ON project_tags(project_id);`
	idxTaskTagsTask       = `CREATE INDEX IF NOT EXISTS idx_task_tags_task ON task_tags(task_id);`
	idxTagsName           = `CREATE INDEX IF NOT EXISTS idx_tags_name ON tags(tag_name);`
	idxLinkedNotesFrom    = `CREATE INDEX IF NOT EXISTS idx_linked_notes_from ON linked_notes(from_id);`
	idxLinkedNotesTo      = `CREATE INDEX IF NOT EXISTS idx_linked_notes_to ON linked_notes(to_id);`
)

// schemaDDL lists all CREATE TABLE statements in dependency order.
var schemaDDL = []string{
	createNotes,
	createProjects,
	createTasks,
	createTags,
	createNoteTags,
	createProjectTags,
	createTaskTags,
	createLinkedNotes,
}

// indexDDL lists all CREATE INDEX statements.
var indexDDL = []string{
	idxNoteTagsNote,
	idxProjectTagsProject,
	idxTaskTagsTask,
	idxTagsName,
	idxLinkedNotesFrom,
	idxLinkedNotesTo,
}
