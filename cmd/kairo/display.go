// Table rendering for list commands.
package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/mesh-intelligence/kairo/pkg/types"
)

const tableDateLayout = "2006-01-02"

func newTable() *tabwriter.Writer {
	return tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
}

// truncate shortens long titles so the table stays readable.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}

func printNoteTable(items []*types.Note) {
	if len(items) == 0 {
		fmt.Println("No notes found.")
		return
	}

	w := newTable()
	fmt.Fprintln(w, "ID\tTITLE\tTYPE\tSUBTYPE\tCREATED")
	for _, n := range items {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			n.ID, truncate(n.Title, 40), n.NoteType, n.SubType,
			n.CreatedAt.Format(tableDateLayout))
	}
	w.Flush()
	fmt.Printf("Total: %d note(s)\n", len(items))
}

func printProjectTable(items []*types.Project) {
	if len(items) == 0 {
		fmt.Println("No projects found.")
		return
	}

	w := newTable()
	fmt.Fprintln(w, "ID\tTITLE\tDESCRIPTION\tCREATED")
	for _, p := range items {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			p.ID, truncate(p.Title, 40), truncate(p.Description, 40),
			p.CreatedAt.Format(tableDateLayout))
	}
	w.Flush()
	fmt.Printf("Total: %d project(s)\n", len(items))
}

func printTaskTable(items []*types.Task) {
	if len(items) == 0 {
		fmt.Println("No tasks found.")
		return
	}

	w := newTable()
	fmt.Fprintln(w, "ID\tTITLE\tPRIORITY\tDUE\tPROJECT")
	for _, k := range items {
		due := ""
		if k.DueDate != nil {
			due = k.DueDate.Format(types.DueDateLayout)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			k.ID, truncate(k.Title, 40), k.Priority, due, k.ProjectID)
	}
	w.Flush()
	fmt.Printf("Total: %d task(s)\n", len(items))
}

func printTagTable(items []*types.Tag) {
	if len(items) == 0 {
		fmt.Println("No tags found.")
		return
	}

	w := newTable()
	fmt.Fprintln(w, "ID\tNAME\tCREATED")
	for _, tg := range items {
		fmt.Fprintf(w, "%s\t%s\t%s\n", tg.ID, tg.TagName, tg.CreatedAt.Format(tableDateLayout))
	}
	w.Flush()
	fmt.Printf("Total: %d tag(s)\n", len(items))
}

func printLinkTable(items []*types.LinkedNote) {
	if len(items) == 0 {
		fmt.Println("No links found.")
		return
	}

	w := newTable()
	fmt.Fprintln(w, "ID\tFROM\tTO\tTYPE\tCREATED")
	for _, l := range items {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			l.ID, l.FromID, l.ToID, l.LinkType, l.CreatedAt.Format(tableDateLayout))
	}
	w.Flush()
	fmt.Printf("Total: %d link(s)\n", len(items))
}
