package types

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// User represents the authenticated account as returned by the API.
type User struct {
	ID               string    `json:"id"`
	Email            string    `json:"email"`
	FullName         string    `json:"full_name"`
	IsPremium        bool      `json:"is_premium"`
	SubscriptionType string    `json:"subscription_type,omitempty"`
	EmailVerified    bool      `json:"email_verified"`
	CreatedAt        time.Time `json:"created_at,omitempty"`
}

// TokenResponse is the login/register response carrying the bearer token and
// the user it authenticates.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	User        *User  `json:"user"`
}

// LoginRequest is the payload for POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RegisterRequest is the payload for POST /auth/register.
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	FullName string `json:"full_name" validate:"required,min=1"`
}

// ForgotPasswordRequest is the payload for POST /auth/forgot-password.
type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// ResetPasswordRequest is the payload for POST /auth/reset-password.
type ResetPasswordRequest struct {
	Token       string `json:"token" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=8"`
}

// VerifyEmailRequest is the payload for POST /auth/verify-email.
type VerifyEmailRequest struct {
	Token string `json:"token" validate:"required"`
}

// UpdateProfileRequest is the payload for PUT /auth/update-profile. Exactly one
// of the two update shapes must be present: a name change, or a password
// change carrying the current password and a matching re-entry of the new one.
// ConfirmPassword never leaves the client.
type UpdateProfileRequest struct {
	FullName        string `json:"full_name,omitempty"`
	CurrentPassword string `json:"current_password,omitempty"`
	NewPassword     string `json:"new_password,omitempty" validate:"omitempty,min=8"`
	ConfirmPassword string `json:"-"`
}

// Validate validates the LoginRequest using the validator.
func (r *LoginRequest) Validate() error {
	return validator.New().Struct(r)
}

// Validate validates the RegisterRequest using the validator.
func (r *RegisterRequest) Validate() error {
	return validator.New().Struct(r)
}

// Validate validates the ForgotPasswordRequest using the validator.
func (r *ForgotPasswordRequest) Validate() error {
	return validator.New().Struct(r)
}

// Validate validates the ResetPasswordRequest using the validator.
func (r *ResetPasswordRequest) Validate() error {
	return validator.New().Struct(r)
}

// Validate validates the VerifyEmailRequest using the validator.
func (r *VerifyEmailRequest) Validate() error {
	return validator.New().Struct(r)
}

// Validate checks that the UpdateProfileRequest describes exactly one kind of
// change and that a password change carries the current password.
func (r *UpdateProfileRequest) Validate() error {
	nameChange := r.FullName != ""
	passwordChange := r.NewPassword != "" || r.CurrentPassword != ""

	if !nameChange && !passwordChange {
		return fmt.Errorf("nothing to update: provide a full name or a new password")
	}
	if nameChange && passwordChange {
		return fmt.Errorf("name and password updates must be issued separately")
	}
	if passwordChange {
		if r.CurrentPassword == "" {
			return fmt.Errorf("current password is required to change the password")
		}
		if r.NewPassword == "" {
			return fmt.Errorf("new password is required")
		}
		if r.ConfirmPassword != r.NewPassword {
			return fmt.Errorf("password confirmation does not match")
		}
	}
	return validator.New().Struct(r)
}
