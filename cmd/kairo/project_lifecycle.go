// Project lifecycle commands.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var projectLifecycleID string

var projectArchiveCmd = &cobra.Command{
	Use:   "archive",
	Short: "Archive a project",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		project, err := projects.Archive(projectLifecycleID)
		if err != nil {
			return err
		}
		fmt.Println("Archived project", project.ID)
		return nil
	},
}

var projectUnarchiveCmd = &cobra.Command{
	Use:   "unarchive",
	Short: "Unarchive a project",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		project, err := projects.Unarchive(projectLifecycleID)
		if err != nil {
			return err
		}
		fmt.Println("Unarchived project", project.ID)
		return nil
	},
}

var projectDeleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Soft-delete a project",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		project, err := projects.Delete(projectLifecycleID)
		if err != nil {
			return err
		}
		fmt.Println("Deleted project", project.ID)
		return nil
	},
}

var projectRestoreCmd = &cobra.Command{
	Use:   "restore",
	Short: "Restore a soft-deleted project",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		project, err := projects.Restore(projectLifecycleID)
		if err != nil {
			return err
		}
		fmt.Println("Restored project", project.ID)
		return nil
	},
}

var projectPurgeCmd = &cobra.Command{
	Use:   "purge",
	Short: "Permanently delete a project and its tag rows",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := projects.Purge(projectLifecycleID); err != nil {
			return err
		}
		fmt.Println("Purged project", projectLifecycleID)
		return nil
	},
}

func init() {
	for _, c := range []*cobra.Command{projectArchiveCmd, projectUnarchiveCmd, projectDeleteCmd, projectRestoreCmd, projectPurgeCmd} {
		c.Flags().StringVar(&projectLifecycleID, "id", "", "project ID")
		c.MarkFlagRequired("id")
	}
}
