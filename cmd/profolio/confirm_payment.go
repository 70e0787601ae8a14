package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/profolio/profolio-cli/internal/payments"
)

var confirmPaymentCmd = &cobra.Command{
	Use:   "confirm-payment <session-id>",
	Short: "Wait for a checkout payment to complete",
	Long:  "Poll the payment status of a checkout session until it is paid, expires, or the attempt budget runs out. On success the session is refreshed so premium entitlements take effect immediately.",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfirmPayment,
}

var (
	confirmInterval time.Duration
	confirmAttempts int
)

func init() {
	confirmPaymentCmd.Flags().DurationVar(&confirmInterval, "interval", payments.DefaultPollInterval, "Delay between status checks")
	confirmPaymentCmd.Flags().IntVar(&confirmAttempts, "attempts", payments.DefaultMaxAttempts, "Maximum number of status checks")

	rootCmd.AddCommand(confirmPaymentCmd)
}

func runConfirmPayment(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	if err := a.requireSession(cmd); err != nil {
		return err
	}

	poller := payments.NewPoller(a.payments, a.session)
	poller.Interval = confirmInterval
	poller.MaxAttempts = confirmAttempts

	fmt.Fprintf(os.Stdout, "Waiting for payment confirmation...\n")
	result, err := poller.Wait(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("payment polling failed: %w", err)
	}

	switch result.State {
	case payments.StateSuccess:
		fmt.Fprintf(os.Stdout, "Payment confirmed after %d checks\n", result.Attempts)
		if result.RefreshErr != nil {
			fmt.Fprintf(os.Stdout, "Note: session refresh failed (%v); log in again to pick up premium features\n", result.RefreshErr)
		}
	default:
		fmt.Fprintf(os.Stdout, "Payment not confirmed after %d checks\n", result.Attempts)
		if result.Last != nil && result.Last.Expired() {
			fmt.Fprintf(os.Stdout, "The checkout session expired; run `profolio checkout` to start over\n")
		}
	}
	return nil
}
