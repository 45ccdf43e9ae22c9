// Link commands: create, list, get, delete. Links connect two notes by ID and
// have no Markdown mirror.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/kairo/internal/sqlite"
)

var linkCmd = &cobra.Command{
	Use:   "link",
	Short: "Manage links between notes",
}

var (
	linkCreateFrom string
	linkCreateTo   string
	linkCreateType string
	linkListFrom   string
	linkListTo     string
	linkGetID      string
	linkDeleteID   string
)

var linkCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Link one note to another",
	Long: `Create records a directed link between two note IDs.

Example:
  kairo link create --from 20250601T103000 --to 20250528T091200 --link-type reference`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		link, err := store.CreateLink(linkCreateFrom, linkCreateTo, linkCreateType)
		if err != nil {
			return fmt.Errorf("create link: %w", err)
		}
		fmt.Println("Created link", link.ID)
		return nil
	},
}

var linkListCmd = &cobra.Command{
	Use:   "list",
	Short: "List links",
	Long:  `List shows all links, or those touching one endpoint via --from or --to.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		items, err := store.ListLinks(sqlite.LinkListOptions{
			FromID: linkListFrom,
			ToID:   linkListTo,
		})
		if err != nil {
			return fmt.Errorf("list links: %w", err)
		}
		printLinkTable(items)
		return nil
	},
}

var linkGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Show a single link",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		link, err := store.GetLink(linkGetID)
		if err != nil {
			return err
		}
		if link == nil {
			fmt.Println("Link not found:", linkGetID)
			return nil
		}
		fmt.Println(link)
		return nil
	},
}

var linkDeleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Soft-delete a link",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		link, err := store.SoftDeleteLink(linkDeleteID)
		if err != nil {
			return fmt.Errorf("delete link: %w", err)
		}
		fmt.Println("Deleted link", link.ID)
		return nil
	},
}

func init() {
	linkCreateCmd.Flags().StringVar(&linkCreateFrom, "from", "", "source note ID")
	linkCreateCmd.Flags().StringVar(&linkCreateTo, "to", "", "target note ID")
	linkCreateCmd.Flags().StringVar(&linkCreateType, "link-type", "", "link type (structure, reference, support, related, refute)")
	linkCreateCmd.MarkFlagRequired("from")
	linkCreateCmd.MarkFlagRequired("to")

	linkListCmd.Flags().StringVar(&linkListFrom, "from", "", "filter by source note ID")
	linkListCmd.Flags().StringVar(&linkListTo, "to", "", "filter by target note ID")

	linkGetCmd.Flags().StringVar(&linkGetID, "id", "", "link ID")
	linkGetCmd.MarkFlagRequired("id")

	linkDeleteCmd.Flags().StringVar(&linkDeleteID, "id", "", "link ID")
	linkDeleteCmd.MarkFlagRequired("id")

	linkCmd.AddCommand(linkCreateCmd)
	linkCmd.AddCommand(linkListCmd)
	linkCmd.AddCommand(linkGetCmd)
	linkCmd.AddCommand(linkDeleteCmd)
}
