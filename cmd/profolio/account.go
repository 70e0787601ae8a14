package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/profolio/profolio-cli/internal/types"
)

var accountCmd = &cobra.Command{
	Use:   "account",
	Short: "Manage the Profolio account",
}

var forgotPasswordCmd = &cobra.Command{
	Use:   "forgot-password",
	Short: "Request a password reset email",
	RunE:  runForgotPassword,
}

var resetPasswordCmd = &cobra.Command{
	Use:   "reset-password",
	Short: "Set a new password using a reset token",
	RunE:  runResetPassword,
}

var verifyEmailCmd = &cobra.Command{
	Use:   "verify-email",
	Short: "Confirm the account email using a verification token",
	RunE:  runVerifyEmail,
}

var resendVerificationCmd = &cobra.Command{
	Use:   "resend-verification",
	Short: "Resend the verification email for the current session",
	RunE:  runResendVerification,
}

var updateProfileCmd = &cobra.Command{
	Use:   "update",
	Short: "Update the profile name or change the password",
	Long:  "Update the account's full name, or change its password by supplying both the current and the new password. The two changes are mutually exclusive.",
	RunE:  runUpdateProfile,
}

var (
	accountEmail           string
	accountToken           string
	accountNewPassword     string
	accountOldPassword     string
	accountConfirmPassword string
	accountFullName        string
)

func init() {
	forgotPasswordCmd.Flags().StringVarP(&accountEmail, "email", "e", "", "Account email (required)")
	if err := forgotPasswordCmd.MarkFlagRequired("email"); err != nil {
		panic(fmt.Sprintf("failed to mark email flag as required: %v", err))
	}

	resetPasswordCmd.Flags().StringVarP(&accountToken, "token", "t", "", "Reset token from the email (required)")
	resetPasswordCmd.Flags().StringVarP(&accountNewPassword, "password", "p", "", "New password (required)")
	if err := resetPasswordCmd.MarkFlagRequired("token"); err != nil {
		panic(fmt.Sprintf("failed to mark token flag as required: %v", err))
	}
	if err := resetPasswordCmd.MarkFlagRequired("password"); err != nil {
		panic(fmt.Sprintf("failed to mark password flag as required: %v", err))
	}

	verifyEmailCmd.Flags().StringVarP(&accountToken, "token", "t", "", "Verification token from the email (required)")
	if err := verifyEmailCmd.MarkFlagRequired("token"); err != nil {
		panic(fmt.Sprintf("failed to mark token flag as required: %v", err))
	}

	updateProfileCmd.Flags().StringVarP(&accountFullName, "name", "n", "", "New full name")
	updateProfileCmd.Flags().StringVar(&accountOldPassword, "current-password", "", "Current password (required for a password change)")
	updateProfileCmd.Flags().StringVar(&accountNewPassword, "new-password", "", "New password")
	updateProfileCmd.Flags().StringVar(&accountConfirmPassword, "confirm-password", "", "New password again, to guard against typos")

	accountCmd.AddCommand(forgotPasswordCmd)
	accountCmd.AddCommand(resetPasswordCmd)
	accountCmd.AddCommand(verifyEmailCmd)
	accountCmd.AddCommand(resendVerificationCmd)
	accountCmd.AddCommand(updateProfileCmd)
	rootCmd.AddCommand(accountCmd)
}

func runForgotPassword(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	if err := a.session.ForgotPassword(cmd.Context(), accountEmail); err != nil {
		return fmt.Errorf("failed to request reset: %w", err)
	}
	fmt.Fprintf(os.Stdout, "If an account exists for %s, a reset email has been sent\n", accountEmail)
	return nil
}

func runResetPassword(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	if err := a.session.ResetPassword(cmd.Context(), accountToken, accountNewPassword); err != nil {
		return fmt.Errorf("failed to reset password: %w", err)
	}
	fmt.Fprintf(os.Stdout, "Password updated; log in with the new password\n")
	return nil
}

func runVerifyEmail(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	if err := a.session.VerifyEmail(cmd.Context(), accountToken); err != nil {
		return fmt.Errorf("failed to verify email: %w", err)
	}
	fmt.Fprintf(os.Stdout, "Email verified\n")
	return nil
}

func runResendVerification(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	if err := a.requireSession(cmd); err != nil {
		return err
	}
	if err := a.session.ResendVerification(cmd.Context()); err != nil {
		return fmt.Errorf("failed to resend verification: %w", err)
	}
	fmt.Fprintf(os.Stdout, "Verification email sent\n")
	return nil
}

func runUpdateProfile(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	if err := a.requireSession(cmd); err != nil {
		return err
	}

	req := types.UpdateProfileRequest{
		FullName:        accountFullName,
		CurrentPassword: accountOldPassword,
		NewPassword:     accountNewPassword,
		ConfirmPassword: accountConfirmPassword,
	}
	user, err := a.session.UpdateProfile(cmd.Context(), req)
	if err != nil {
		return fmt.Errorf("failed to update profile: %w", err)
	}

	fmt.Fprintf(os.Stdout, "Profile updated for %s\n", user.Email)
	return nil
}
