// Task lifecycle commands.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var taskLifecycleID string

var taskArchiveCmd = &cobra.Command{
	Use:   "archive",
	Short: "Archive a task",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		task, err := tasks.Archive(taskLifecycleID)
		if err != nil {
			return err
		}
		fmt.Println("Archived task", task.ID)
		return nil
	},
}

var taskUnarchiveCmd = &cobra.Command{
	Use:   "unarchive",
	Short: "Unarchive a task",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		task, err := tasks.Unarchive(taskLifecycleID)
		if err != nil {
			return err
		}
		fmt.Println("Unarchived task", task.ID)
		return nil
	},
}

var taskDeleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Soft-delete a task",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		task, err := tasks.Delete(taskLifecycleID)
		if err != nil {
			return err
		}
		fmt.Println("Deleted task", task.ID)
		return nil
	},
}

var taskRestoreCmd = &cobra.Command{
	Use:   "restore",
	Short: "Restore a soft-deleted task",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		task, err := tasks.Restore(taskLifecycleID)
		if err != nil {
			return err
		}
		fmt.Println("Restored task", task.ID)
		return nil
	},
}

var taskPurgeCmd = &cobra.Command{
	Use:   "purge",
	Short: "Permanently delete a task and its tag rows",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := tasks.Purge(taskLifecycleID); err != nil {
			return err
		}
		fmt.Println("Purged task", taskLifecycleID)
		return nil
	},
}

func init() {
	for _, c := range []*cobra.Command{taskArchiveCmd, taskUnarchiveCmd, taskDeleteCmd, taskRestoreCmd, taskPurgeCmd} {
		c.Flags().StringVar(&taskLifecycleID, "id", "", "task ID")
		c.MarkFlagRequired("id")
	}
}
