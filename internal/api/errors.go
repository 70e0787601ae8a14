package api

import (
	"errors"
	"fmt"
	"net/http"
)

// RequestError represents a transport-level failure: the request never
// completed, or the response body was unusable.
type RequestError struct {
	URL     string
	Message string
	Cause   error
}

func (e *RequestError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("request error for %s: %s: %v", e.URL, e.Message, e.Cause)
	}
	return fmt.Sprintf("request error for %s: %s", e.URL, e.Message)
}

func (e *RequestError) Unwrap() error {
	return e.Cause
}

// APIError represents a non-2xx response with the server's detail message.
type APIError struct {
	StatusCode int
	Detail     string
}

func (e *APIError) Error() string {
	return e.Detail
}

// IsNotFound reports whether err is a 404 from the server.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

// IsUnauthorized reports whether err is a 401 from the server.
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusUnauthorized
}

// IsForbidden reports whether err is a 403, the server's answer when a
// premium-gated feature is invoked without entitlement.
func IsForbidden(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusForbidden
}
