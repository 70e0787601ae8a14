package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/profolio/profolio-cli/internal/document"
)

var resumeCmd = &cobra.Command{
	Use:   "resume",
	Short: "Manage resumes",
}

var resumeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all resumes in the account",
	RunE:  runResumeList,
}

var resumeCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new empty resume",
	RunE:  runResumeCreate,
}

var resumeDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a resume",
	Args:  cobra.ExactArgs(1),
	RunE:  runResumeDelete,
}

var resumeDuplicateCmd = &cobra.Command{
	Use:   "duplicate <id>",
	Short: "Duplicate an existing resume",
	Args:  cobra.ExactArgs(1),
	RunE:  runResumeDuplicate,
}

var (
	resumeTitle     string
	resumeDeleteYes bool
)

func init() {
	resumeCreateCmd.Flags().StringVarP(&resumeTitle, "title", "t", "", "Resume title (defaults to \"Untitled Resume\")")
	resumeDeleteCmd.Flags().BoolVarP(&resumeDeleteYes, "yes", "y", false, "Skip the confirmation prompt")

	resumeCmd.AddCommand(resumeListCmd)
	resumeCmd.AddCommand(resumeCreateCmd)
	resumeCmd.AddCommand(resumeDeleteCmd)
	resumeCmd.AddCommand(resumeDuplicateCmd)
	rootCmd.AddCommand(resumeCmd)
}

func runResumeList(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	if err := a.requireSession(cmd); err != nil {
		return err
	}

	collection, err := a.resumes.List(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to list resumes: %w", err)
	}
	if len(collection) == 0 {
		fmt.Fprintf(os.Stdout, "No resumes yet; run `profolio resume create`\n")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "ID\tTITLE\tTEMPLATE\tPUBLIC\tUPDATED\n")
	for _, r := range collection {
		fmt.Fprintf(w, "%s\t%s\t%s\t%t\t%s\n", r.ID, r.Title, r.Template, r.IsPublic, r.UpdatedAt.Format("2006-01-02 15:04"))
	}
	return w.Flush()
}

func runResumeCreate(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	if err := a.requireSession(cmd); err != nil {
		return err
	}

	saved, err := a.resumes.Save(cmd.Context(), document.NewResume(resumeTitle))
	if err != nil {
		return fmt.Errorf("failed to create resume: %w", err)
	}

	fmt.Fprintf(os.Stdout, "Created resume %s (%s)\n", saved.Title, saved.ID)
	return nil
}

func runResumeDelete(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	if err := a.requireSession(cmd); err != nil {
		return err
	}

	if err := confirmDelete(cmd, fmt.Sprintf("resume %s", args[0]), resumeDeleteYes); err != nil {
		return err
	}

	if err := a.resumes.Delete(cmd.Context(), args[0]); err != nil {
		return fmt.Errorf("failed to delete resume: %w", err)
	}

	fmt.Fprintf(os.Stdout, "Deleted resume %s\n", args[0])
	return nil
}

func runResumeDuplicate(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	if err := a.requireSession(cmd); err != nil {
		return err
	}

	copy, err := a.resumes.Duplicate(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("failed to duplicate resume: %w", err)
	}

	fmt.Fprintf(os.Stdout, "Created copy %s (%s)\n", copy.Title, copy.ID)
	return nil
}
