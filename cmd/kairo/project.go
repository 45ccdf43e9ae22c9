// Project commands: create, list, get, update.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/kairo/internal/sqlite"
)

var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Manage projects",
}

var (
	projectCreateTitle string
	projectCreateDesc  string
	projectCreateTags  []string
	projectListArch    bool
	projectListDel     bool
	projectListTags    []string
	projectListOrder   string
	projectGetID       string
	projectUpdateID    string
	projectUpdateTtl   string
	projectUpdateDesc  string
	projectUpdateTags  []string
)

var projectCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a project",
	Long: `Create inserts a project and writes its Markdown mirror file.

Example:
  kairo project create -t "Garden redesign" -d "Plan the spring layout" --tag home`,
	Args: cobra.NoArgs,
	RunE: runProjectCreate,
}

var projectListCmd = &cobra.Command{
	Use:   "list",
	Short: "List projects",
	Args:  cobra.NoArgs,
	RunE:  runProjectList,
}

var projectGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Show a single project",
	Args:  cobra.NoArgs,
	RunE:  runProjectGet,
}

var projectUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update a project",
	Args:  cobra.NoArgs,
	RunE:  runProjectUpdate,
}

func init() {
	projectCreateCmd.Flags().StringVarP(&projectCreateTitle, "title", "t", "", "project title")
	projectCreateCmd.Flags().StringVarP(&projectCreateDesc, "description", "d", "", "project description")
	projectCreateCmd.Flags().StringArrayVar(&projectCreateTags, "tag", nil, "tag name (repeatable)")
	projectCreateCmd.MarkFlagRequired("title")

	projectListCmd.Flags().BoolVar(&projectListArch, "archived", false, "list archived projects")
	projectListCmd.Flags().BoolVar(&projectListDel, "deleted", false, "list deleted projects")
	projectListCmd.Flags().StringArrayVar(&projectListTags, "tag", nil, "filter by tag name (repeatable)")
	projectListCmd.Flags().StringVar(&projectListOrder, "order", "", "sort order (asc, desc)")

	projectGetCmd.Flags().StringVar(&projectGetID, "id", "", "project ID")
	projectGetCmd.MarkFlagRequired("id")

	projectUpdateCmd.Flags().StringVar(&projectUpdateID, "id", "", "project ID")
	projectUpdateCmd.Flags().StringVarP(&projectUpdateTtl, "title", "t", "", "new title")
	projectUpdateCmd.Flags().StringVarP(&projectUpdateDesc, "description", "d", "", "new description")
	projectUpdateCmd.Flags().StringArrayVar(&projectUpdateTags, "tag", nil, "replacement tag set (repeatable)")
	projectUpdateCmd.MarkFlagRequired("id")

	projectCmd.AddCommand(projectCreateCmd)
	projectCmd.AddCommand(projectListCmd)
	projectCmd.AddCommand(projectGetCmd)
	projectCmd.AddCommand(projectUpdateCmd)
	projectCmd.AddCommand(projectArchiveCmd)
	projectCmd.AddCommand(projectUnarchiveCmd)
	projectCmd.AddCommand(projectDeleteCmd)
	projectCmd.AddCommand(projectRestoreCmd)
	projectCmd.AddCommand(projectPurgeCmd)
}

func runProjectCreate(cmd *cobra.Command, args []string) error {
	project, err := projects.Create(sqlite.CreateProjectParams{
		Title:       projectCreateTitle,
		Description: projectCreateDesc,
		Tags:        projectCreateTags,
	})
	if err != nil {
		return err
	}
	fmt.Println("Created project", project.ID)
	return nil
}

func runProjectList(cmd *cobra.Command, args []string) error {
	items, err := projects.List(sqlite.ListOptions{
		Archived: projectListArch,
		Deleted:  projectListDel,
		Tags:     projectListTags,
		Order:    projectListOrder,
	})
	if err != nil {
		return err
	}
	printProjectTable(items)
	return nil
}

func runProjectGet(cmd *cobra.Command, args []string) error {
	project, err := projects.Get(projectGetID)
	if err != nil {
		return err
	}
	if project == nil {
		fmt.Println("Project not found:", projectGetID)
		return nil
	}
	fmt.Println(project)
	return nil
}

func runProjectUpdate(cmd *cobra.Command, args []string) error {
	project, err := projects.Update(projectUpdateID, sqlite.UpdateProjectParams{
		Title:       changedString(cmd, "title", projectUpdateTtl),
		Description: changedString(cmd, "description", projectUpdateDesc),
		Tags:        changedSlice(cmd, "tag", projectUpdateTags),
	})
	if err != nil {
		return err
	}
	fmt.Println("Updated project", project.ID)
	return nil
}
