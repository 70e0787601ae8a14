package auth

import (
	"errors"

	"github.com/profolio/profolio-cli/internal/api"
)

// CredentialError indicates a request rejected before any network I/O.
type CredentialError struct {
	Reason string
	Cause  error
}

func (e *CredentialError) Error() string {
	return e.Reason
}

func (e *CredentialError) Unwrap() error {
	return e.Cause
}

// InvalidCredentialsError indicates the server rejected a login or register
// attempt, carrying its human-readable reason.
type InvalidCredentialsError struct {
	Detail string
}

func (e *InvalidCredentialsError) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	return "invalid email or password"
}

// loginError maps server rejections of login/register to
// InvalidCredentialsError and passes everything else through.
func loginError(err error) error {
	var apiErr *api.APIError
	if errors.As(err, &apiErr) && apiErr.StatusCode >= 400 && apiErr.StatusCode < 500 {
		return &InvalidCredentialsError{Detail: apiErr.Detail}
	}
	return err
}
