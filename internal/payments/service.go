// Package payments drives the checkout hand-off to the external payment
// provider and the bounded status polling that bridges its asynchronous
// confirmation back to the caller.
package payments

import (
	"context"
	"fmt"
	"net/url"

	"github.com/profolio/profolio-cli/internal/api"
	"github.com/profolio/profolio-cli/internal/types"
)

// Service is the client for the /payments endpoints.
type Service struct {
	client *api.Client
}

// NewService creates a payments client.
func NewService(client *api.Client) *Service {
	return &Service{client: client}
}

// CreateCheckout opens a checkout session for a plan and returns the external
// redirect URL the user must visit to pay.
func (s *Service) CreateCheckout(ctx context.Context, plan, originURL string) (string, error) {
	req := types.CheckoutRequest{Plan: plan, OriginURL: originURL}
	if err := req.Validate(); err != nil {
		return "", fmt.Errorf("invalid checkout request: %w", err)
	}
	var resp types.CheckoutResponse
	if err := s.client.Post(ctx, "/payments/create-checkout", &req, &resp); err != nil {
		return "", err
	}
	if resp.URL == "" {
		return "", &api.RequestError{URL: "/payments/create-checkout", Message: "server returned no checkout URL"}
	}
	return resp.URL, nil
}

// Status queries the payment state of a checkout session.
func (s *Service) Status(ctx context.Context, sessionID string) (*types.PaymentStatus, error) {
	if sessionID == "" {
		return nil, fmt.Errorf("session id is required")
	}
	var status types.PaymentStatus
	if err := s.client.Get(ctx, "/payments/status/"+url.PathEscape(sessionID), &status); err != nil {
		return nil, err
	}
	return &status, nil
}
