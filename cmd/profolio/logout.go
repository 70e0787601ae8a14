package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Log out of the current session",
	Long:  "Discard the in-memory session and delete the persisted token. No server call is made.",
	RunE:  runLogout,
}

func init() {
	rootCmd.AddCommand(logoutCmd)
}

func runLogout(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}

	a.session.Logout()
	fmt.Fprintf(os.Stdout, "Logged out\n")
	return nil
}
