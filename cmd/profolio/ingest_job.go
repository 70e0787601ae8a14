package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/profolio/profolio-cli/internal/jobdesc"
)

var ingestJobCmd = &cobra.Command{
	Use:   "ingest-job <url>",
	Short: "Fetch and clean a job posting from a URL",
	Long:  "Fetch a job posting page, strip navigation and boilerplate, and print the cleaned text. Use the output with `profolio tailor` or `profolio ats`.",
	Args:  cobra.ExactArgs(1),
	RunE:  runIngestJob,
}

var (
	ingestOut     string
	ingestBrowser bool
)

func init() {
	ingestJobCmd.Flags().StringVarP(&ingestOut, "out", "o", "", "Write the cleaned text to this file instead of stdout")
	ingestJobCmd.Flags().BoolVar(&ingestBrowser, "browser", false, "Render the page in a headless browser when plain fetching yields too little text")

	rootCmd.AddCommand(ingestJobCmd)
}

func runIngestJob(cmd *cobra.Command, args []string) error {
	opts := jobdesc.DefaultOptions()
	opts.UseBrowser = ingestBrowser

	text, err := jobdesc.FromURL(cmd.Context(), args[0], opts)
	if err != nil {
		return fmt.Errorf("failed to ingest job posting: %w", err)
	}

	if ingestOut != "" {
		if err := os.WriteFile(ingestOut, []byte(text), 0o644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		fmt.Fprintf(os.Stdout, "Wrote %s\n", ingestOut)
		return nil
	}

	fmt.Fprintln(os.Stdout, text)
	return nil
}
