// Note update command. Only fields whose flags were supplied change; pass
// "_" to sub-type to clear it, and --tag to replace the tag set wholesale.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/kairo/internal/sqlite"
)

var (
	noteUpdateID      string
	noteUpdateTitle   string
	noteUpdateType    string
	noteUpdateSubType string
	noteUpdateProject string
	noteUpdateTask    string
	noteUpdateTags    []string
)

var noteUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update a note",
	Long: `Update changes the supplied fields and rewrites the Markdown mirror,
keeping the body intact.

Example:
  kairo note update --id 20250601T103000 -t "Better title" -s _`,
	Args: cobra.NoArgs,
	RunE: runNoteUpdate,
}

func init() {
	noteUpdateCmd.Flags().StringVar(&noteUpdateID, "id", "", "note ID")
	noteUpdateCmd.Flags().StringVarP(&noteUpdateTitle, "title", "t", "", "new title")
	noteUpdateCmd.Flags().StringVarP(&noteUpdateType, "note-type", "n", "", "new note type")
	noteUpdateCmd.Flags().StringVarP(&noteUpdateSubType, "sub-type", "s", "", "new sub-type (\"_\" clears it)")
	noteUpdateCmd.Flags().StringVar(&noteUpdateProject, "pid", "", "new project reference (\"\" clears it)")
	noteUpdateCmd.Flags().StringVar(&noteUpdateTask, "tid", "", "new task reference (\"\" clears it)")
	noteUpdateCmd.Flags().StringArrayVar(&noteUpdateTags, "tag", nil, "replacement tag set (repeatable)")
	noteUpdateCmd.MarkFlagRequired("id")
}

func runNoteUpdate(cmd *cobra.Command, args []string) error {
	note, err := notes.Update(noteUpdateID, sqlite.UpdateNoteParams{
		Title:     changedString(cmd, "title", noteUpdateTitle),
		NoteType:  changedString(cmd, "note-type", noteUpdateType),
		SubType:   changedString(cmd, "sub-type", noteUpdateSubType),
		ProjectID: changedString(cmd, "pid", noteUpdateProject),
		TaskID:    changedString(cmd, "tid", noteUpdateTask),
		Tags:      changedSlice(cmd, "tag", noteUpdateTags),
	})
	if err != nil {
		return err
	}
	fmt.Println("Updated note", note.ID)
	return nil
}
