package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/profolio/profolio-cli/internal/types"
)

var checkoutCmd = &cobra.Command{
	Use:   "checkout",
	Short: "Start a premium upgrade checkout",
	Long:  "Create a checkout session for a premium plan and print the payment URL to open in a browser. Once paid, run `profolio confirm-payment` with the session id.",
	RunE:  runCheckout,
}

var checkoutPlan string

func init() {
	checkoutCmd.Flags().StringVarP(&checkoutPlan, "plan", "p", types.PlanLifetime, "Plan to purchase (early_bird or lifetime)")

	rootCmd.AddCommand(checkoutCmd)
}

func runCheckout(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	if err := a.requireSession(cmd); err != nil {
		return err
	}

	url, err := a.payments.CreateCheckout(cmd.Context(), checkoutPlan, a.cfg.APIBaseURL)
	if err != nil {
		return fmt.Errorf("failed to create checkout: %w", err)
	}

	fmt.Fprintf(os.Stdout, "Open this URL to complete payment:\n%s\n", url)
	return nil
}
