// Task commands: create, list, get, update.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/kairo/internal/sqlite"
)

var taskCmd = &cobra.Command{
	Use:   "task",
	Short: "Manage tasks",
}

var (
	taskCreateTitle    string
	taskCreateDesc     string
	taskCreatePriority string
	taskCreateDue      string
	taskCreateProject  string
	taskCreateTags     []string
	taskListArch       bool
	taskListDel        bool
	taskListTags       []string
	taskListOrder      string
	taskListPriority   string
	taskListProject    string
	taskGetID          string
	taskUpdateID       string
	taskUpdateTitle    string
	taskUpdateDesc     string
	taskUpdatePrio     string
	taskUpdateDue      string
	taskUpdateProj     string
	taskUpdateTags     []string
)

var taskCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a task",
	Long: `Create inserts a task and writes its Markdown mirror file. The priority
defaults to medium.

Example:
  kairo task create -t "File taxes" -p high --due 2026-04-15 --pid p-001`,
	Args: cobra.NoArgs,
	RunE: runTaskCreate,
}

var taskListCmd = &cobra.Command{
	Use:   "list",
	Short: "List tasks",
	Long: `List shows active tasks by default. Tag-filtered listings sort by due
date; everything else sorts by creation time.`,
	Args: cobra.NoArgs,
	RunE: runTaskList,
}

var taskGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Show a single task",
	Args:  cobra.NoArgs,
	RunE:  runTaskGet,
}

var taskUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update a task",
	Long: `Update changes the supplied fields. The priority is rewritten on
every update: omitting -p resets the task to medium.`,
	Args: cobra.NoArgs,
	RunE: runTaskUpdate,
}

func init() {
	taskCreateCmd.Flags().StringVarP(&taskCreateTitle, "title", "t", "", "task title")
	taskCreateCmd.Flags().StringVarP(&taskCreateDesc, "description", "d", "", "task description")
	taskCreateCmd.Flags().StringVarP(&taskCreatePriority, "priority", "p", "", "priority (low, medium, high)")
	taskCreateCmd.Flags().StringVar(&taskCreateDue, "due", "", "due date (YYYY-MM-DD)")
	taskCreateCmd.Flags().StringVar(&taskCreateProject, "pid", "", "project to attach the task to")
	taskCreateCmd.Flags().StringArrayVar(&taskCreateTags, "tag", nil, "tag name (repeatable)")
	taskCreateCmd.MarkFlagRequired("title")

	taskListCmd.Flags().BoolVar(&taskListArch, "archived", false, "list archived tasks")
	taskListCmd.Flags().BoolVar(&taskListDel, "deleted", false, "list deleted tasks")
	taskListCmd.Flags().StringArrayVar(&taskListTags, "tag", nil, "filter by tag name (repeatable)")
	taskListCmd.Flags().StringVar(&taskListOrder, "order", "", "sort order (asc, desc)")
	taskListCmd.Flags().StringVarP(&taskListPriority, "priority", "p", "", "filter by priority")
	taskListCmd.Flags().StringVar(&taskListProject, "pid", "", "filter by project")

	taskGetCmd.Flags().StringVar(&taskGetID, "id", "", "task ID")
	taskGetCmd.MarkFlagRequired("id")

	taskUpdateCmd.Flags().StringVar(&taskUpdateID, "id", "", "task ID")
	taskUpdateCmd.Flags().StringVarP(&taskUpdateTitle, "title", "t", "", "new title")
	taskUpdateCmd.Flags().StringVarP(&taskUpdateDesc, "description", "d", "", "new description")
	taskUpdateCmd.Flags().StringVarP(&taskUpdatePrio, "priority", "p", "", "new priority (omitting resets to medium)")
	taskUpdateCmd.Flags().StringVar(&taskUpdateDue, "due", "", "new due date (YYYY-MM-DD)")
	taskUpdateCmd.Flags().StringVar(&taskUpdateProj, "pid", "", "new project reference (\"\" clears it)")
	taskUpdateCmd.Flags().StringArrayVar(&taskUpdateTags, "tag", nil, "replacement tag set (repeatable)")
	taskUpdateCmd.MarkFlagRequired("id")

	taskCmd.AddCommand(taskCreateCmd)
	taskCmd.AddCommand(taskListCmd)
	taskCmd.AddCommand(taskGetCmd)
	taskCmd.AddCommand(taskUpdateCmd)
	taskCmd.AddCommand(taskArchiveCmd)
	taskCmd.AddCommand(taskUnarchiveCmd)
	taskCmd.AddCommand(taskDeleteCmd)
	taskCmd.AddCommand(taskRestoreCmd)
	taskCmd.AddCommand(taskPurgeCmd)
}

func runTaskCreate(cmd *cobra.Command, args []string) error {
	task, err := tasks.Create(sqlite.CreateTaskParams{
		Title:       taskCreateTitle,
		Description: taskCreateDesc,
		Priority:    taskCreatePriority,
		DueDate:     taskCreateDue,
		ProjectID:   taskCreateProject,
		Tags:        taskCreateTags,
	})
	if err != nil {
		return err
	}
	fmt.Println("Created task", task.ID)
	return nil
}

func runTaskList(cmd *cobra.Command, args []string) error {
	items, err := tasks.List(sqlite.TaskListOptions{
		Archived:  taskListArch,
		Deleted:   taskListDel,
		Tags:      taskListTags,
		Order:     taskListOrder,
		Priority:  taskListPriority,
		ProjectID: taskListProject,
	})
	if err != nil {
		return err
	}
	printTaskTable(items)
	return nil
}

func runTaskGet(cmd *cobra.Command, args []string) error {
	task, err := tasks.Get(taskGetID)
	if err != nil {
		return err
	}
	if task == nil {
		fmt.Println("Task not found:", taskGetID)
		return nil
	}
	fmt.Println(task)
	return nil
}

func runTaskUpdate(cmd *cobra.Command, args []string) error {
	task, err := tasks.Update(taskUpdateID, sqlite.UpdateTaskParams{
		Title:       changedString(cmd, "title", taskUpdateTitle),
		Description: changedString(cmd, "description", taskUpdateDesc),
		Priority:    taskUpdatePrio,
		DueDate:     taskUpdateDue,
		ProjectID:   changedString(cmd, "pid", taskUpdateProj),
		Tags:        changedSlice(cmd, "tag", taskUpdateTags),
	})
	if err != nil {
		return err
	}
	fmt.Println("Updated task", task.ID)
	return nil
}
