package main

import "github.com/spf13/cobra"

// changedString distinguishes "flag not given" from "flag given as empty":
// update commands only touch fields whose flags were actually supplied.
func changedString(cmd *cobra.Command, name, value string) *string {
	if cmd.Flags().Changed(name) {
		return &value
	}
	return nil
}

// changedSlice returns the slice only when the flag was supplied, so a nil
// result leaves tag associations untouched.
func changedSlice(cmd *cobra.Command, name string, value []string) []string {
	if cmd.Flags().Changed(name) {
		if value == nil {
			return []string{}
		}
		return value
	}
	return nil
}
