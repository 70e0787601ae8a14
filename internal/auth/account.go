package auth

import (
	"context"

	"github.com/profolio/profolio-cli/internal/types"
)

// ForgotPassword requests a password reset email. The server reports success
// regardless of whether the address exists, for enumeration resistance.
func (s *Store) ForgotPassword(ctx context.Context, email string) error {
	req := types.ForgotPasswordRequest{Email: email}
	if err := req.Validate(); err != nil {
		return &CredentialError{Reason: "a valid email is required", Cause: err}
	}
	return s.client.Post(ctx, "/auth/forgot-password", &req, nil)
}

// ResetPassword consumes a reset token and sets a new password.
func (s *Store) ResetPassword(ctx context.Context, token, newPassword string) error {
	req := types.ResetPasswordRequest{Token: token, NewPassword: newPassword}
	if err := req.Validate(); err != nil {
		return &CredentialError{Reason: "a reset token and a password of at least 8 characters are required", Cause: err}
	}
	return s.client.Post(ctx, "/auth/reset-password", &req, nil)
}

// VerifyEmail consumes an email verification token.
func (s *Store) VerifyEmail(ctx context.Context, token string) error {
	req := types.VerifyEmailRequest{Token: token}
	if err := req.Validate(); err != nil {
		return &CredentialError{Reason: "a verification token is required", Cause: err}
	}
	return s.client.Post(ctx, "/auth/verify-email", &req, nil)
}

// ResendVerification asks the server to send a fresh verification email for
// the authenticated account.
func (s *Store) ResendVerification(ctx context.Context) error {
	return s.client.Post(ctx, "/auth/resend-verification", nil, nil)
}

// UpdateProfile applies a name change or a password change. Validation runs
// locally before any network I/O; a refreshed user is returned on success.
func (s *Store) UpdateProfile(ctx context.Context, req types.UpdateProfileRequest) (*types.User, error) {
	if err := req.Validate(); err != nil {
		return nil, &CredentialError{Reason: err.Error(), Cause: err}
	}
	var user types.User
	if err := s.client.Put(ctx, "/auth/update-profile", &req, &user); err != nil {
		return nil, err
	}
	s.mu.Lock()
	s.user = &user
	s.mu.Unlock()
	return &user, nil
}
