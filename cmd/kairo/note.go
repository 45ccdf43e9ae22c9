// Note commands: create, list, get, preview.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/kairo/internal/sqlite"
)

var noteCmd = &cobra.Command{
	Use:   "note",
	Short: "Manage notes",
}

var (
	noteCreateTitle   string
	noteCreateType    string
	noteCreateSubType string
	noteCreateProject string
	noteCreateTask    string
	noteCreateTags    []string
	noteListArch      bool
	noteListDel       bool
	noteListTags      []string
	noteListOrder     string
	noteGetID         string
	notePreviewID     string
)

var noteCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a note",
	Long: `Create inserts a note and writes its Markdown mirror file.

Example:
  kairo note create -t "Spaced repetition" -n permanent -s idea --tag learning`,
	Args: cobra.NoArgs,
	RunE: runNoteCreate,
}

var noteListCmd = &cobra.Command{
	Use:   "list",
	Short: "List notes",
	Long: `List shows active notes by default. Use --archived or --deleted to
inspect the other lifecycle states (not both at once), and --tag to filter by
tag name.`,
	Args: cobra.NoArgs,
	RunE: runNoteList,
}

var noteGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Show a single note",
	Args:  cobra.NoArgs,
	RunE:  runNoteGet,
}

var notePreviewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Render a note's Markdown body to HTML",
	Args:  cobra.NoArgs,
	RunE:  runNotePreview,
}

func init() {
	noteCreateCmd.Flags().StringVarP(&noteCreateTitle, "title", "t", "", "note title")
	noteCreateCmd.Flags().StringVarP(&noteCreateType, "note-type", "n", "", "note type (fleeting, permanent)")
	noteCreateCmd.Flags().StringVarP(&noteCreateSubType, "sub-type", "s", "", "sub-type (question, investigation, log, idea, reference, literature, quote)")
	noteCreateCmd.Flags().StringVar(&noteCreateProject, "pid", "", "project to attach the note to")
	noteCreateCmd.Flags().StringVar(&noteCreateTask, "tid", "", "task to attach the note to")
	noteCreateCmd.Flags().StringArrayVar(&noteCreateTags, "tag", nil, "tag name (repeatable)")
	noteCreateCmd.MarkFlagRequired("title")
	noteCreateCmd.MarkFlagRequired("note-type")

	noteListCmd.Flags().BoolVar(&noteListArch, "archived", false, "list archived notes")
	noteListCmd.Flags().BoolVar(&noteListDel, "deleted", false, "list deleted notes")
	noteListCmd.Flags().StringArrayVar(&noteListTags, "tag", nil, "filter by tag name (repeatable)")
	noteListCmd.Flags().StringVar(&noteListOrder, "order", "", "sort order (asc, desc)")

	noteGetCmd.Flags().StringVar(&noteGetID, "id", "", "note ID")
	noteGetCmd.MarkFlagRequired("id")

	notePreviewCmd.Flags().StringVar(&notePreviewID, "id", "", "note ID")
	notePreviewCmd.MarkFlagRequired("id")

	noteCmd.AddCommand(noteCreateCmd)
	noteCmd.AddCommand(noteListCmd)
	noteCmd.AddCommand(noteGetCmd)
	noteCmd.AddCommand(noteUpdateCmd)
	noteCmd.AddCommand(notePreviewCmd)
	noteCmd.AddCommand(noteArchiveCmd)
	noteCmd.AddCommand(noteUnarchiveCmd)
	noteCmd.AddCommand(noteDeleteCmd)
	noteCmd.AddCommand(noteRestoreCmd)
	noteCmd.AddCommand(notePurgeCmd)
}

func runNoteCreate(cmd *cobra.Command, args []string) error {
	note, err := notes.Create(sqlite.CreateNoteParams{
		Title:     noteCreateTitle,
		NoteType:  noteCreateType,
		SubType:   noteCreateSubType,
		ProjectID: noteCreateProject,
		TaskID:    noteCreateTask,
		Tags:      noteCreateTags,
	})
	if err != nil {
		return err
	}
	fmt.Println("Created note", note.ID)
	return nil
}

func runNoteList(cmd *cobra.Command, args []string) error {
	items, err := notes.List(sqlite.ListOptions{
		Archived: noteListArch,
		Deleted:  noteListDel,
		Tags:     noteListTags,
		Order:    noteListOrder,
	})
	if err != nil {
		return err
	}
	printNoteTable(items)
	return nil
}

func runNoteGet(cmd *cobra.Command, args []string) error {
	note, err := notes.Get(noteGetID)
	if err != nil {
		return err
	}
	if note == nil {
		fmt.Println("Note not found:", noteGetID)
		return nil
	}
	fmt.Println(note)
	return nil
}

func runNotePreview(cmd *cobra.Command, args []string) error {
	html, err := notes.Preview(notePreviewID)
	if err != nil {
		return err
	}
	fmt.Print(html)
	return nil
}
