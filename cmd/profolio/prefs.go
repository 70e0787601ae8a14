package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var prefsCmd = &cobra.Command{
	Use:   "prefs",
	Short: "Manage account preferences",
}

var prefsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current preferences",
	RunE:  runPrefsShow,
}

var prefsThemeCmd = &cobra.Command{
	Use:   "theme <light|dark>",
	Short: "Set the UI theme",
	Args:  cobra.ExactArgs(1),
	RunE:  runPrefsTheme,
}

func init() {
	prefsCmd.AddCommand(prefsShowCmd)
	prefsCmd.AddCommand(prefsThemeCmd)
	rootCmd.AddCommand(prefsCmd)
}

func runPrefsShow(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	if err := a.requireSession(cmd); err != nil {
		return err
	}

	prefs, err := a.prefs.Get(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to fetch preferences: %w", err)
	}

	fmt.Fprintf(os.Stdout, "Theme: %s\n", prefs.Theme)
	return nil
}

func runPrefsTheme(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	if err := a.requireSession(cmd); err != nil {
		return err
	}

	prefs, err := a.prefs.SetTheme(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("failed to set theme: %w", err)
	}

	fmt.Fprintf(os.Stdout, "Theme set to %s\n", prefs.Theme)
	return nil
}
