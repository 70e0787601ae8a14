package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/profolio/profolio-cli/internal/ai"
)

var enhanceCmd = &cobra.Command{
	Use:   "enhance <resume-id>",
	Short: "Rewrite an experience entry as STAR-format bullets",
	Long:  "Send an experience entry's text to the AI enhancer and replace its achievements with the returned STAR-format bullets. Requires a premium account.",
	Args:  cobra.ExactArgs(1),
	RunE:  runEnhance,
}

var (
	enhanceExperienceID string
	enhanceDryRun       bool
)

func init() {
	enhanceCmd.Flags().StringVarP(&enhanceExperienceID, "experience", "x", "", "Experience entry id (required)")
	enhanceCmd.Flags().BoolVar(&enhanceDryRun, "dry-run", false, "Print the bullets without saving")
	if err := enhanceCmd.MarkFlagRequired("experience"); err != nil {
		panic(fmt.Sprintf("failed to mark experience flag as required: %v", err))
	}

	rootCmd.AddCommand(enhanceCmd)
}

func runEnhance(cmd *cobra.Command, args []string) error {
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

	target := -1
	for i := range resume.Data.Experiences {
		if resume.Data.Experiences[i].ID == enhanceExperienceID {
			target = i
			break
		}
	}
	if target < 0 {
		return fmt.Errorf("experience %s not found on resume %s", enhanceExperienceID, resume.ID)
	}

	bullets, err := a.ai.EnhanceExperience(cmd.Context(), resume.Data.Experiences[target])
	if err != nil {
		return fmt.Errorf("enhancement failed: %w", err)
	}

	for _, bullet := range bullets {
		fmt.Fprintf(os.Stdout, "  • %s\n", bullet)
	}
	if enhanceDryRun {
		return nil
	}

	resume.Data, err = ai.ApplyEnhancement(resume.Data, enhanceExperienceID, bullets)
	if err != nil {
		return err
	}
	if _, err := a.resumes.Save(cmd.Context(), *resume); err != nil {
		return fmt.Errorf("failed to save resume: %w", err)
	}

	fmt.Fprintf(os.Stdout, "Updated experience %s with %d bullets\n", enhanceExperienceID, len(bullets))
	return nil
}
