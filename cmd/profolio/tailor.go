package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/profolio/profolio-cli/internal/ai"
	"github.com/profolio/profolio-cli/internal/jobdesc"
)

var tailorCmd = &cobra.Command{
	Use:   "tailor <resume-id>",
	Short: "Tailor a resume to a job description",
	Long:  "Ask the AI tailor for a rewritten summary and missing skills for a job description, supplied inline, from a file, or fetched from a posting URL. Requires a premium account.",
	RunE:  runTailor,
	Args:  cobra.ExactArgs(1),
}

var (
	tailorJobText string
	tailorJobFile string
	tailorJobURL  string
	tailorBrowser bool
	tailorApply   bool
)

func init() {
	tailorCmd.Flags().StringVarP(&tailorJobText, "job", "j", "", "Job description text")
	tailorCmd.Flags().StringVarP(&tailorJobFile, "job-file", "f", "", "Path to a file containing the job description")
	tailorCmd.Flags().StringVarP(&tailorJobURL, "job-url", "u", "", "URL of the job posting to fetch")
	tailorCmd.Flags().BoolVar(&tailorBrowser, "browser", false, "Render the posting URL in a headless browser when plain fetching yields too little text")
	tailorCmd.Flags().BoolVar(&tailorApply, "apply", false, "Apply the suggested changes and save the resume")

	rootCmd.AddCommand(tailorCmd)
}

// resolveJobDescription loads the job description from whichever source flag
// was given. Exactly one of text, file, or URL must be set.
func resolveJobDescription(cmd *cobra.Command, text, file, url string, useBrowser bool) (string, error) {
	set := 0
	for _, v := range []string{text, file, url} {
		if v != "" {
			set++
		}
	}
	if set == 0 {
		return "", fmt.Errorf("one of --job, --job-file, or --job-url must be provided")
	}
	if set > 1 {
		return "", fmt.Errorf("--job, --job-file, and --job-url are mutually exclusive; provide only one")
	}

	switch {
	case text != "":
		return text, nil
	case file != "":
		data, err := os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("failed to read job description file: %w", err)
		}
		return string(data), nil
	default:
		opts := jobdesc.DefaultOptions()
		opts.UseBrowser = useBrowser
		extracted, err := jobdesc.FromURL(cmd.Context(), url, opts)
		if err != nil {
			return "", fmt.Errorf("failed to fetch job posting: %w", err)
		}
		return extracted, nil
	}
}

func runTailor(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	if err := a.requireSession(cmd); err != nil {
		return err
	}

	jobDescription, err := resolveJobDescription(cmd, tailorJobText, tailorJobFile, tailorJobURL, tailorBrowser)
	if err != nil {
		return err
	}

	result, err := a.ai.TailorResume(cmd.Context(), args[0], jobDescription)
	if err != nil {
		return fmt.Errorf("tailoring failed: %w", err)
	}

	a.printer.PrintTailoring(result)

	if !tailorApply {
		return nil
	}

	resume, err := a.resumes.Get(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("failed to fetch resume: %w", err)
	}
	resume.Data = ai.ApplyTailoring(resume.Data, result)
	if _, err := a.resumes.Save(cmd.Context(), *resume); err != nil {
		return fmt.Errorf("failed to save resume: %w", err)
	}

	fmt.Fprintf(os.Stdout, "Applied tailoring to resume %s\n", resume.ID)
	return nil
}
