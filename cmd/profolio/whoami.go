package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the current account",
	Long:  "Restore the persisted session and print the account it belongs to.",
	RunE:  runWhoami,
}

func init() {
	rootCmd.AddCommand(whoamiCmd)
}

func runWhoami(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}

	user, err := a.session.Verify(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to restore session: %w", err)
	}
	if user == nil {
		fmt.Fprintf(os.Stdout, "Not logged in\n")
		return nil
	}

	fmt.Fprintf(os.Stdout, "Email:    %s\n", user.Email)
	fmt.Fprintf(os.Stdout, "Name:     %s\n", user.FullName)
	fmt.Fprintf(os.Stdout, "Premium:  %t\n", user.IsPremium)
	if user.SubscriptionType != "" {
		fmt.Fprintf(os.Stdout, "Plan:     %s\n", user.SubscriptionType)
	}
	fmt.Fprintf(os.Stdout, "Verified: %t\n", user.EmailVerified)
	return nil
}
