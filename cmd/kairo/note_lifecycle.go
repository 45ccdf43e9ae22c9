// Note lifecycle commands: archive, unarchive, delete, restore, purge.
// None of these touch the Markdown mirror.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var noteLifecycleID string

var noteArchiveCmd = &cobra.Command{
	Use:   "archive",
	Short: "Archive a note",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		note, err := notes.Archive(noteLifecycleID)
		if err != nil {
			return err
		}
		fmt.Println("Archived note", note.ID)
		return nil
	},
}

var noteUnarchiveCmd = &cobra.Command{
	Use:   "unarchive",
	Short: "Unarchive a note",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		note, err := notes.Unarchive(noteLifecycleID)
		if err != nil {
			return err
		}
		fmt.Println("Unarchived note", note.ID)
		return nil
	},
}

var noteDeleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Soft-delete a note",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		note, err := notes.Delete(noteLifecycleID)
		if err != nil {
			return err
		}
		fmt.Println("Deleted note", note.ID)
		return nil
	},
}

var noteRestoreCmd = &cobra.Command{
	Use:   "restore",
	Short: "Restore a soft-deleted note",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		note, err := notes.Restore(noteLifecycleID)
		if err != nil {
			return err
		}
		fmt.Println("Restored note", note.ID)
		return nil
	},
}

var notePurgeCmd = &cobra.Command{
	Use:   "purge",
	Short: "Permanently delete a note and its tag and link rows",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := notes.Purge(noteLifecycleID); err != nil {
			return err
		}
		fmt.Println("Purged note", noteLifecycleID)
		return nil
	},
}

func init() {
	for _, c := range []*cobra.Command{noteArchiveCmd, noteUnarchiveCmd, noteDeleteCmd, noteRestoreCmd, notePurgeCmd} {
		c.Flags().StringVar(&noteLifecycleID, "id", "", "note ID")
		c.MarkFlagRequired("id")
	}
}
