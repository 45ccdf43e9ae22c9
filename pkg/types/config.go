package types

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Config is the application configuration loaded from config.toml.
type Config struct {
	Paths PathsConfig `mapstructure:"paths" yaml:"paths"`
}

// PathsConfig locates the database file and the per-entity Markdown mirror
// directories.
type PathsConfig struct {
	DBPath      string `mapstructure:"db_path" yaml:"db_path"`
	NotesDir    string `mapstructure:"notes_dir" yaml:"notes_dir"`
	ProjectsDir string `mapstructure:"projects_dir" yaml:"projects_dir"`
	TasksDir    string `mapstructure:"tasks_dir" yaml:"tasks_dir"`
}

// Validate checks that every configured path is present.
func (c Config) Validate() error {
	return c.Paths.Validate()
}

// Validate checks the paths section.
func (p PathsConfig) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.DBPath, validation.Required),
		validation.Field(&p.NotesDir, validation.Required),
		validation.Field(&p.ProjectsDir, validation.Required),
		validation.Field(&p.TasksDir, validation.Required),
	)
}
