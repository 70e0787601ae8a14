package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/profolio/profolio-cli/internal/types"
)

var coverLetterCmd = &cobra.Command{
	Use:     "cover-letter",
	Aliases: []string{"cl"},
	Short:   "Manage cover letters",
}

var coverLetterListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all cover letters in the account",
	RunE:  runCoverLetterList,
}

var coverLetterShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Print a cover letter",
	Args:  cobra.ExactArgs(1),
	RunE:  runCoverLetterShow,
}

var coverLetterDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a cover letter",
	Args:  cobra.ExactArgs(1),
	RunE:  runCoverLetterDelete,
}

var coverLetterGenerateCmd = &cobra.Command{
	Use:   "generate <resume-id>",
	Short: "Generate a cover letter for a job posting",
	Long:  "Generate a cover letter from a resume, a job description, and a company name, then save it to the account. Requires a premium account.",
	Args:  cobra.ExactArgs(1),
	RunE:  runCoverLetterGenerate,
}

var (
	clJobText string
	clJobFile string
	clJobURL  string
	clBrowser bool
	clCompany string
	clTone      string
	clTitle     string
	clDeleteYes bool
)

func init() {
	coverLetterGenerateCmd.Flags().StringVarP(&clJobText, "job", "j", "", "Job description text")
	coverLetterGenerateCmd.Flags().StringVarP(&clJobFile, "job-file", "f", "", "Path to a file containing the job description")
	coverLetterGenerateCmd.Flags().StringVarP(&clJobURL, "job-url", "u", "", "URL of the job posting to fetch")
	coverLetterGenerateCmd.Flags().BoolVar(&clBrowser, "browser", false, "Render the posting URL in a headless browser when plain fetching yields too little text")
	coverLetterGenerateCmd.Flags().StringVarP(&clCompany, "company", "c", "", "Company name (required)")
	coverLetterGenerateCmd.Flags().StringVar(&clTone, "tone", "professional", "Writing tone (professional, friendly, enthusiastic)")
	coverLetterGenerateCmd.Flags().StringVarP(&clTitle, "title", "t", "", "Title for the saved letter (defaults to the company name)")
	if err := coverLetterGenerateCmd.MarkFlagRequired("company"); err != nil {
		panic(fmt.Sprintf("failed to mark company flag as required: %v", err))
	}
	coverLetterDeleteCmd.Flags().BoolVarP(&clDeleteYes, "yes", "y", false, "Skip the confirmation prompt")

	coverLetterCmd.AddCommand(coverLetterListCmd)
	coverLetterCmd.AddCommand(coverLetterShowCmd)
	coverLetterCmd.AddCommand(coverLetterDeleteCmd)
	coverLetterCmd.AddCommand(coverLetterGenerateCmd)
	rootCmd.AddCommand(coverLetterCmd)
}

func runCoverLetterList(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	if err := a.requireSession(cmd); err != nil {
		return err
	}

	letters, err := a.coverLetters.List(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to list cover letters: %w", err)
	}
	if len(letters) == 0 {
		fmt.Fprintf(os.Stdout, "No cover letters yet\n")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "ID\tTITLE\tCOMPANY\tUPDATED\n")
	for _, l := range letters {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", l.ID, l.Title, l.CompanyName, l.UpdatedAt.Format("2006-01-02 15:04"))
	}
	return w.Flush()
}

func runCoverLetterShow(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	if err := a.requireSession(cmd); err != nil {
		return err
	}

	letter, err := a.coverLetters.Get(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("failed to fetch cover letter: %w", err)
	}

	fmt.Fprintf(os.Stdout, "%s\n\n%s\n", letter.Title, letter.Content)
	return nil
}

func runCoverLetterDelete(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	if err := a.requireSession(cmd); err != nil {
		return err
	}

	if err := confirmDelete(cmd, fmt.Sprintf("cover letter %s", args[0]), clDeleteYes); err != nil {
		return err
	}

	if err := a.coverLetters.Delete(cmd.Context(), args[0]); err != nil {
		return fmt.Errorf("failed to delete cover letter: %w", err)
	}

	fmt.Fprintf(os.Stdout, "Deleted cover letter %s\n", args[0])
	return nil
}

func runCoverLetterGenerate(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	if err := a.requireSession(cmd); err != nil {
		return err
	}

	jobDescription, err := resolveJobDescription(cmd, clJobText, clJobFile, clJobURL, clBrowser)
	if err != nil {
		return err
	}

	content, err := a.ai.GenerateCoverLetter(cmd.Context(), args[0], jobDescription, clCompany, clTone)
	if err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}

	title := clTitle
	if title == "" {
		title = clCompany
	}
	saved, err := a.coverLetters.Save(cmd.Context(), types.CoverLetter{
		Title:          title,
		ResumeID:       args[0],
		CompanyName:    clCompany,
		JobDescription: jobDescription,
		Content:        content,
	})
	if err != nil {
		return fmt.Errorf("failed to save cover letter: %w", err)
	}

	fmt.Fprintf(os.Stdout, "Saved cover letter %s (%s)\n", saved.Title, saved.ID)
	return nil
}
