package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/okampfer/draftbridge/internal/credential"
)

// authCmd groups credential management commands.
var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage stored Jira credentials",
}

// authLoginCmd prompts for the email and API token and stores them in
// the OS keyring, replacing any cached pair.
var authLoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Store Jira credentials in the OS keyring",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := credential.NewStore()
		if err != nil {
			return err
		}

		creds, err := store.Login()
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Stored credentials for %s\n", creds.Email)
		return nil
	},
}

// authForgetCmd removes the cached pair. The next send prompts again.
var authForgetCmd = &cobra.Command{
	Use:   "forget",
	Short: "Remove stored Jira credentials",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := credential.NewStore()
		if err != nil {
			return err
		}

		if err := store.Forget(); err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), "Credentials removed")
		return nil
	},
}

func init() {
	authCmd.AddCommand(authLoginCmd)
	authCmd.AddCommand(authForgetCmd)
}
