package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// errAborted is returned when the user declines a destructive action.
var errAborted = fmt.Errorf("aborted")

// confirmDelete prompts before a destructive action unless assumeYes is set.
// Anything other than "y" or "yes" declines.
func confirmDelete(cmd *cobra.Command, what string, assumeYes bool) error {
	if assumeYes {
		return nil
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Delete %s? This cannot be undone. [y/N]: ", what)
	reader := bufio.NewReader(cmd.InOrStdin())
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return errAborted
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return nil
	}
	return errAborted
}
