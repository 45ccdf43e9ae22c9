// Package main provides the kairo CLI, a plain-text personal knowledge base
// backed by SQLite with Markdown mirror files.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
