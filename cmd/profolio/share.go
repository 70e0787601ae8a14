package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/profolio/profolio-cli/internal/public"
)

var shareCmd = &cobra.Command{
	Use:   "share <slug>",
	Short: "View a publicly shared resume",
	Long:  "Fetch a resume through its public share link. No login is required; password-protected shares need --password.",
	Args:  cobra.ExactArgs(1),
	RunE:  runShare,
}

var (
	sharePassword string
	sharePDFOut   string
)

func init() {
	shareCmd.Flags().StringVarP(&sharePassword, "password", "p", "", "Password for protected shares")
	shareCmd.Flags().StringVarP(&sharePDFOut, "pdf", "o", "", "Download as PDF to this path instead of printing")

	rootCmd.AddCommand(shareCmd)
}

func runShare(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}

	slug := args[0]

	if sharePDFOut != "" {
		f, err := os.Create(sharePDFOut)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer func() { _ = f.Close() }()

		if err := a.public.ExportPDF(cmd.Context(), slug, sharePassword, f); err != nil {
			return shareError(err)
		}
		fmt.Fprintf(os.Stdout, "Wrote %s\n", sharePDFOut)
		return nil
	}

	resume, err := a.public.Resolve(cmd.Context(), slug, sharePassword)
	if err != nil {
		return shareError(err)
	}

	fmt.Fprintf(os.Stdout, "Title:    %s\n", resume.Title)
	fmt.Fprintf(os.Stdout, "Template: %s\n", resume.Template)
	if resume.FullName != "" {
		fmt.Fprintf(os.Stdout, "Name:     %s\n", resume.FullName)
	}
	fmt.Fprintf(os.Stdout, "Skills:   %d\n", len(resume.Data.Skills))
	return nil
}

func shareError(err error) error {
	switch {
	case errors.Is(err, public.ErrNotFound):
		return fmt.Errorf("no shared resume exists at that link")
	case errors.Is(err, public.ErrPasswordRequired):
		return fmt.Errorf("this share is password protected; retry with --password")
	case errors.Is(err, public.ErrInvalidPassword):
		return fmt.Errorf("incorrect password")
	default:
		return fmt.Errorf("failed to fetch shared resume: %w", err)
	}
}
