package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create a new Profolio account",
	Long:  "Register a new account and log in immediately. A verification email is sent to the given address.",
	RunE:  runRegister,
}

var (
	registerEmail    string
	registerPassword string
	registerName     string
)

func init() {
	registerCmd.Flags().StringVarP(&registerEmail, "email", "e", "", "Account email (required)")
	registerCmd.Flags().StringVarP(&registerPassword, "password", "p", "", "Account password, minimum 8 characters (required)")
	registerCmd.Flags().StringVarP(&registerName, "name", "n", "", "Full name (required)")

	if err := registerCmd.MarkFlagRequired("email"); err != nil {
		panic(fmt.Sprintf("failed to mark email flag as required: %v", err))
	}
	if err := registerCmd.MarkFlagRequired("password"); err != nil {
		panic(fmt.Sprintf("failed to mark password flag as required: %v", err))
	}
	if err := registerCmd.MarkFlagRequired("name"); err != nil {
		panic(fmt.Sprintf("failed to mark name flag as required: %v", err))
	}

	rootCmd.AddCommand(registerCmd)
}

func runRegister(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}

	user, err := a.session.Register(cmd.Context(), registerEmail, registerPassword, registerName)
	if err != nil {
		return fmt.Errorf("registration failed: %w", err)
	}

	fmt.Fprintf(os.Stdout, "Account created for %s\n", user.Email)
	fmt.Fprintf(os.Stdout, "Check your inbox for a verification link\n")
	return nil
}
