package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// version is stamped at release time.
const version = "0.3.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the kairo version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("kairo", version)
	},
}
