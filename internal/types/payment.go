package types

import "github.com/go-playground/validator/v10"

// Subscription plans offered at checkout.
const (
	PlanEarlyBird = "early_bird"
	PlanLifetime  = "lifetime"
)

// CheckoutRequest is the payload for POST /payments/create-checkout.
type CheckoutRequest struct {
	Plan      string `json:"plan" validate:"required,oneof=early_bird lifetime"`
	OriginURL string `json:"origin_url" validate:"required,url"`
}

// CheckoutResponse carries the external checkout redirect target.
type CheckoutResponse struct {
	URL string `json:"url"`
}

// PaymentStatus is the poll target response for GET /payments/status/{id}.
// PaymentStatus "paid" and Status "expired" are the two terminal shapes.
type PaymentStatus struct {
	SessionID     string  `json:"session_id,omitempty"`
	Status        string  `json:"status"`
	PaymentStatus string  `json:"payment_status"`
	Amount        float64 `json:"amount,omitempty"`
	Plan          string  `json:"plan,omitempty"`
}

// Paid reports whether the payment reached the terminal paid state.
func (p *PaymentStatus) Paid() bool {
	return p.PaymentStatus == "paid"
}

// Expired reports whether the checkout session reached the terminal expired
// state without payment.
func (p *PaymentStatus) Expired() bool {
	return p.Status == "expired"
}

// Validate validates the CheckoutRequest using the validator.
func (r *CheckoutRequest) Validate() error {
	return validator.New().Struct(r)
}
