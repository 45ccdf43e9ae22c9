// Tag commands: create, list, get, update, delete. Tags have no Markdown
// mirror, so these talk to the store directly.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var tagCmd = &cobra.Command{
	Use:   "tag",
	Short: "Manage tags",
}

var (
	tagCreateName string
	tagListDel    bool
	tagGetID      string
	tagUpdateID   string
	tagUpdateName string
	tagDeleteID   string
)

var tagCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a tag",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		tag, err := store.CreateTag(tagCreateName)
		if err != nil {
			return fmt.Errorf("create tag: %w", err)
		}
		fmt.Println("Created tag", tag.ID)
		return nil
	},
}

var tagListCmd = &cobra.Command{
	Use:   "list",
	Short: "List tags",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		items, err := store.ListTags(tagListDel)
		if err != nil {
			return fmt.Errorf("list tags: %w", err)
		}
		printTagTable(items)
		return nil
	},
}

var tagGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Show a single tag",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		tag, err := store.GetTag(tagGetID)
		if err != nil {
			return err
		}
		if tag == nil {
			fmt.Println("Tag not found:", tagGetID)
			return nil
		}
		fmt.Println(tag)
		return nil
	},
}

var tagUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Rename a tag",
	Long: `Rename changes a tag's name in place. Entities tagged with it follow
along, since associations reference the tag ID.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		tag, err := store.RenameTag(tagUpdateID, tagUpdateName)
		if err != nil {
			return fmt.Errorf("rename tag: %w", err)
		}
		fmt.Println("Renamed tag", tag.ID, "to", tag.TagName)
		return nil
	},
}

var tagDeleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Soft-delete a tag",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		tag, err := store.SoftDeleteTag(tagDeleteID)
		if err != nil {
			return fmt.Errorf("delete tag: %w", err)
		}
		fmt.Println("Deleted tag", tag.ID)
		return nil
	},
}

func init() {
	tagCreateCmd.Flags().StringVarP(&tagCreateName, "name", "n", "", "tag name")
	tagCreateCmd.MarkFlagRequired("name")

	tagListCmd.Flags().BoolVar(&tagListDel, "deleted", false, "list deleted tags")

	tagGetCmd.Flags().StringVar(&tagGetID, "id", "", "tag ID")
	tagGetCmd.MarkFlagRequired("id")

	tagUpdateCmd.Flags().StringVar(&tagUpdateID, "id", "", "tag ID")
	tagUpdateCmd.Flags().StringVarP(&tagUpdateName, "name", "n", "", "new tag name")
	tagUpdateCmd.MarkFlagRequired("id")
	tagUpdateCmd.MarkFlagRequired("name")

	tagDeleteCmd.Flags().StringVar(&tagDeleteID, "id", "", "tag ID")
	tagDeleteCmd.MarkFlagRequired("id")

	tagCmd.AddCommand(tagCreateCmd)
	tagCmd.AddCommand(tagListCmd)
	tagCmd.AddCommand(tagGetCmd)
	tagCmd.AddCommand(tagUpdateCmd)
	tagCmd.AddCommand(tagDeleteCmd)
}
