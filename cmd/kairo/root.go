package main

import (
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/kairo/internal/sqlite"
	"github.com/mesh-intelligence/kairo/internal/usecase"
	"github.com/mesh-intelligence/kairo/pkg/types"
)

var (
	// cfg and store are initialized by PersistentPreRunE and shared by every
	// command in the process.
	cfg   *types.Config
	store *sqlite.Store

	notes    usecase.Notes
	projects usecase.Projects
	tasks    usecase.Tasks
)

var rootCmd = &cobra.Command{
	Use:   "kairo",
	Short: "Kairo is a plain-text personal knowledge base",
	Long: `Kairo manages notes, projects, tasks, tags, and links between notes.
Records live in a SQLite database; notes, projects, and tasks are mirrored
to Markdown files with YAML front matter so they stay editable and greppable
with ordinary tools.`,
	PersistentPreRunE:  initWorkspace,
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error { return closeWorkspace() },
	SilenceUsage:       true,
	SilenceErrors:      true,
}

func init() {
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(noteCmd)
	rootCmd.AddCommand(projectCmd)
	rootCmd.AddCommand(taskCmd)
	rootCmd.AddCommand(tagCmd)
	rootCmd.AddCommand(linkCmd)
}

// initWorkspace loads the configuration and opens the database. The version
// command works without either.
func initWorkspace(cmd *cobra.Command, args []string) error {
	if cmd.Name() == "version" {
		return nil
	}

	c, err := loadConfig()
	if err != nil {
		return err
	}
	cfg = c

	s, err := sqlite.Open(cfg.Paths.DBPath)
	if err != nil {
		return err
	}
	store = s

	notes = usecase.Notes{Store: store, Dir: cfg.Paths.NotesDir}
	projects = usecase.Projects{Store: store, Dir: cfg.Paths.ProjectsDir}
	tasks = usecase.Tasks{Store: store, Dir: cfg.Paths.TasksDir}
	return nil
}

func closeWorkspace() error {
	if store == nil {
		return nil
	}
	return store.Close()
}
