package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var resumeShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a resume",
	Args:  cobra.ExactArgs(1),
	RunE:  runResumeShow,
}

var resumeShowJSON bool

func init() {
	resumeShowCmd.Flags().BoolVar(&resumeShowJSON, "json", false, "Print the raw resume document as JSON")

	resumeCmd.AddCommand(resumeShowCmd)
}

func runResumeShow(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	if err := a.requireSession(cmd); err != nil {
		return err
	}

	resume, err := a.resumes.Get(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("failed to fetch resume: %w", err)
	}

	if resumeShowJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(resume)
	}

	a.printer.PrintResume(resume)
	return nil
}
