package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/profolio/profolio-cli/internal/types"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show an account overview",
	Long:  "Fetch the account's resumes, cover letters, and preferences concurrently and print a summary.",
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	if err := a.requireSession(cmd); err != nil {
		return err
	}

	var (
		resumeList []types.Resume
		letters    []types.CoverLetter
		prefs      *types.Preferences
	)

	g, ctx := errgroup.WithContext(cmd.Context())
	g.Go(func() error {
		var err error
		resumeList, err = a.resumes.List(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		letters, err = a.coverLetters.List(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		prefs, err = a.prefs.Get(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return fmt.Errorf("failed to fetch account overview: %w", err)
	}

	user := a.session.User()
	fmt.Fprintf(os.Stdout, "Account:       %s\n", user.Email)
	fmt.Fprintf(os.Stdout, "Premium:       %t\n", user.IsPremium)
	fmt.Fprintf(os.Stdout, "Resumes:       %d\n", len(resumeList))
	fmt.Fprintf(os.Stdout, "Cover letters: %d\n", len(letters))
	fmt.Fprintf(os.Stdout, "Theme:         %s\n", prefs.Theme)

	shared := 0
	for _, r := range resumeList {
		if r.IsPublic {
			shared++
		}
	}
	if shared > 0 {
		fmt.Fprintf(os.Stdout, "Shared:        %d resume(s) public\n", shared)
	}
	return nil
}
