package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var atsCmd = &cobra.Command{
	Use:   "ats <resume-id>",
	Short: "Score a resume against a job description",
	Long:  "Run an ATS (applicant tracking system) analysis of a resume against a job description and print the score, missing keywords, and suggestions. Requires a premium account.",
	Args:  cobra.ExactArgs(1),
	RunE:  runATS,
}

var (
	atsJobText string
	atsJobFile string
	atsJobURL  string
	atsBrowser bool
)

func init() {
	atsCmd.Flags().StringVarP(&atsJobText, "job", "j", "", "Job description text")
	atsCmd.Flags().StringVarP(&atsJobFile, "job-file", "f", "", "Path to a file containing the job description")
	atsCmd.Flags().StringVarP(&atsJobURL, "job-url", "u", "", "URL of the job posting to fetch")
	atsCmd.Flags().BoolVar(&atsBrowser, "browser", false, "Render the posting URL in a headless browser when plain fetching yields too little text")

	rootCmd.AddCommand(atsCmd)
}

func runATS(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	if err := a.requireSession(cmd); err != nil {
		return err
	}

	jobDescription, err := resolveJobDescription(cmd, atsJobText, atsJobFile, atsJobURL, atsBrowser)
	if err != nil {
		return err
	}

	result, err := a.ai.ATSOptimize(cmd.Context(), args[0], jobDescription)
	if err != nil {
		return fmt.Errorf("ATS analysis failed: %w", err)
	}

	a.printer.PrintATSResult(result)
	return nil
}
