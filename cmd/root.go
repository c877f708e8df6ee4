// Package cmd provides the command-line interface for draftbridge.
package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "draftbridge",
	Short: "Draftbridge turns a note into a Jira issue",
	Long: `Draftbridge is a CLI tool that turns a free-form note into a new Jira
issue. The first line of the note becomes the issue summary, the rest
becomes the description, and the note's tags become issue labels. After
the issue is created, a markdown back-link to it is prepended to the
note.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(sendCmd)
	rootCmd.AddCommand(authCmd)
}
