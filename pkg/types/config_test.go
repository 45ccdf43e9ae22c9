package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigValidate(t *testing.T) {
	full := Config{Paths: PathsConfig{
		DBPath:      "/tmp/kairo.db",
		NotesDir:    "/tmp/notes",
		ProjectsDir: "/tmp/projects",
		TasksDir:    "/tmp/tasks",
	}}
	assert.NoError(t, full.Validate())

	tests := []struct {
		name string
		cfg  Config
	}{
		{"empty", Config{}},
		{"missing db_path", Config{Paths: PathsConfig{NotesDir: "a", ProjectsDir: "b", TasksDir: "c"}}},
		{"missing notes_dir", Config{Paths: PathsConfig{DBPath: "a", ProjectsDir: "b", TasksDir: "c"}}},
		{"missing projects_dir", Config{Paths: PathsConfig{DBPath: "a", NotesDir: "b", TasksDir: "c"}}},
		{"missing tasks_dir", Config{Paths: PathsConfig{DBPath: "a", NotesDir: "b", ProjectsDir: "c"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, tt.cfg.Validate())
		})
	}
}
