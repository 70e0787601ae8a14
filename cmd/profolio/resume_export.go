package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var resumeExportCmd = &cobra.Command{
	Use:   "export <id>",
	Short: "Export a resume as PDF",
	Args:  cobra.ExactArgs(1),
	RunE:  runResumeExport,
}

var resumeExportOut string

func init() {
	resumeExportCmd.Flags().StringVarP(&resumeExportOut, "out", "o", "", "Output file path (required)")
	if err := resumeExportCmd.MarkFlagRequired("out"); err != nil {
		panic(fmt.Sprintf("failed to mark out flag as required: %v", err))
	}

	resumeCmd.AddCommand(resumeExportCmd)
}

func runResumeExport(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	if err := a.requireSession(cmd); err != nil {
		return err
	}

	f, err := os.Create(resumeExportOut)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = f.Close() }()

	if err := a.resumes.ExportPDF(cmd.Context(), args[0], f); err != nil {
		return fmt.Errorf("failed to export PDF: %w", err)
	}

	fmt.Fprintf(os.Stdout, "Wrote %s\n", resumeExportOut)
	return nil
}
