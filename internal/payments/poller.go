package payments

import (
	"context"
	"time"

	"github.com/profolio/profolio-cli/internal/types"
)

// Polling bounds. Confirmation is processed asynchronously by the payment
// provider; the poller gives up after DefaultMaxAttempts queries, so the worst
// case before Failed is attempts x interval.
const (
	DefaultPollInterval = 2 * time.Second
	DefaultMaxAttempts  = 10
)

// PollState is the poller's observable state.
type PollState int

const (
	StateLoading PollState = iota
	StateSuccess
	StateFailed
)

func (s PollState) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateSuccess:
		return "success"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Refresher re-fetches the session after a confirmed payment so the new
// entitlement becomes visible. The auth store satisfies it.
type Refresher interface {
	Refresh(ctx context.Context) (*types.User, error)
}

// PollResult is the terminal outcome of a polling run.
type PollResult struct {
	State    PollState
	Attempts int
	Last     *types.PaymentStatus
	// RefreshErr carries a failed post-payment session refresh. The payment
	// itself is confirmed server-side, so the state is still Success.
	RefreshErr error
}

// Poller repeatedly queries a checkout session's payment status until a
// terminal state or the attempt budget runs out. Queries are strictly
// sequential: each completes, and its delay elapses, before the next is
// issued. Cancelling the context halts all further scheduling.
type Poller struct {
	service   *Service
	refresher Refresher

	Interval    time.Duration
	MaxAttempts int
}

// NewPoller creates a poller with the default interval and attempt budget.
// refresher may be nil when no session refresh is wanted.
func NewPoller(service *Service, refresher Refresher) *Poller {
	return &Poller{
		service:     service,
		refresher:   refresher,
		Interval:    DefaultPollInterval,
		MaxAttempts: DefaultMaxAttempts,
	}
}

// Wait polls until the session reaches a terminal state. A missing session id
// short-circuits to Failed without a single query. Transport failures and
// non-terminal answers consume one attempt each. The returned error is non-nil
// only for context cancellation.
func (p *Poller) Wait(ctx context.Context, sessionID string) (*PollResult, error) {
	if sessionID == "" {
		return &PollResult{State: StateFailed}, nil
	}

	result := &PollResult{State: StateLoading}
	for {
		status, err := p.service.Status(ctx, sessionID)
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		result.Attempts++
		if err == nil {
			result.Last = status
			if status.Paid() {
				result.State = StateSuccess
				if p.refresher != nil {
					if _, refreshErr := p.refresher.Refresh(ctx); refreshErr != nil {
						result.RefreshErr = refreshErr
					}
				}
				return result, nil
			}
			if status.Expired() {
				result.State = StateFailed
				return result, nil
			}
		}

		if result.Attempts >= p.MaxAttempts {
			result.State = StateFailed
			return result, nil
		}

		timer := time.NewTimer(p.Interval)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}
}
