package payments

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/profolio/profolio-cli/internal/api"
	"github.com/profolio/profolio-cli/internal/types"
)

type fakeRefresher struct {
	calls int
	err   error
}

func (f *fakeRefresher) Refresh(_ context.Context) (*types.User, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return &types.User{ID: "u1", IsPremium: true}, nil
}

// statusSequence serves one canned payment status per request, repeating the
// last one once exhausted.
func statusSequence(t *testing.T, queries *atomic.Int32, statuses ...types.PaymentStatus) *Service {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := int(queries.Add(1))
		status := statuses[len(statuses)-1]
		if n <= len(statuses) {
			status = statuses[n-1]
		}
		_, _ = fmt.Fprintf(w, `{"session_id":%q,"status":%q,"payment_status":%q}`,
			status.SessionID, status.Status, status.PaymentStatus)
	}))
	t.Cleanup(server.Close)
	return NewService(api.New(server.URL, nil))
}

func fastPoller(service *Service, refresher Refresher) *Poller {
	p := NewPoller(service, refresher)
	p.Interval = time.Millisecond
	return p
}

func pending() types.PaymentStatus {
	return types.PaymentStatus{Status: "open", PaymentStatus: "unpaid"}
}

func paid() types.PaymentStatus {
	return types.PaymentStatus{Status: "complete", PaymentStatus: "paid"}
}

func expired() types.PaymentStatus {
	return types.PaymentStatus{Status: "expired", PaymentStatus: "unpaid"}
}

func TestWait_PaidOnLastAttempt(t *testing.T) {
	var queries atomic.Int32
	statuses := make([]types.PaymentStatus, 0, 10)
	for i := 0; i < 9; i++ {
		statuses = append(statuses, pending())
	}
	statuses = append(statuses, paid())

	refresher := &fakeRefresher{}
	poller := fastPoller(statusSequence(t, &queries, statuses...), refresher)

	result, err := poller.Wait(context.Background(), "cs_1")
	require.NoError(t, err)
	assert.Equal(t, StateSuccess, result.State)
	assert.Equal(t, 10, result.Attempts)
	assert.Equal(t, int32(10), queries.Load())
	assert.Equal(t, 1, refresher.calls)
	assert.NoError(t, result.RefreshErr)
}

func TestWait_BudgetExhausted(t *testing.T) {
	var queries atomic.Int32
	refresher := &fakeRefresher{}
	poller := fastPoller(statusSequence(t, &queries, pending()), refresher)

	result, err := poller.Wait(context.Background(), "cs_1")
	require.NoError(t, err)
	assert.Equal(t, StateFailed, result.State)
	assert.Equal(t, 10, result.Attempts)
	// Exactly the budget, never one more.
	assert.Equal(t, int32(10), queries.Load())
	assert.Zero(t, refresher.calls)
}

func TestWait_ExpiredIsTerminal(t *testing.T) {
	var queries atomic.Int32
	poller := fastPoller(statusSequence(t, &queries, pending(), expired()), nil)

	result, err := poller.Wait(context.Background(), "cs_1")
	require.NoError(t, err)
	assert.Equal(t, StateFailed, result.State)
	assert.Equal(t, 2, result.Attempts)
	assert.Equal(t, int32(2), queries.Load())
}

func TestWait_EmptySessionID(t *testing.T) {
	var queries atomic.Int32
	poller := fastPoller(statusSequence(t, &queries, paid()), nil)

	result, err := poller.Wait(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, StateFailed, result.State)
	assert.Zero(t, result.Attempts)
	assert.Zero(t, queries.Load())
}

func TestWait_RefreshFailureStillSuccess(t *testing.T) {
	var queries atomic.Int32
	refresher := &fakeRefresher{err: errors.New("me endpoint down")}
	poller := fastPoller(statusSequence(t, &queries, paid()), refresher)

	result, err := poller.Wait(context.Background(), "cs_1")
	require.NoError(t, err)
	assert.Equal(t, StateSuccess, result.State)
	assert.Error(t, result.RefreshErr)
}

func TestWait_TransportFailuresConsumeAttempts(t *testing.T) {
	var queries atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		queries.Add(1)
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte(`{"detail":"upstream down"}`))
	}))
	t.Cleanup(server.Close)

	poller := fastPoller(NewService(api.New(server.URL, nil)), nil)
	poller.MaxAttempts = 3

	result, err := poller.Wait(context.Background(), "cs_1")
	require.NoError(t, err)
	assert.Equal(t, StateFailed, result.State)
	assert.Equal(t, 3, result.Attempts)
	assert.Equal(t, int32(3), queries.Load())
}

func TestWait_CancellationStopsPolling(t *testing.T) {
	var queries atomic.Int32
	poller := fastPoller(statusSequence(t, &queries, pending()), nil)
	poller.Interval = time.Hour

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	var result *PollResult
	var waitErr error
	go func() {
		result, waitErr = poller.Wait(ctx, "cs_1")
		close(done)
	}()

	// Let the first query land, then cancel during the delay.
	require.Eventually(t, func() bool { return queries.Load() >= 1 }, time.Second, time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("poller did not stop after cancellation")
	}
	require.ErrorIs(t, waitErr, context.Canceled)
	assert.Nil(t, result)
	assert.Equal(t, int32(1), queries.Load())
}

func TestPollState_String(t *testing.T) {
	assert.Equal(t, "loading", StateLoading.String())
	assert.Equal(t, "success", StateSuccess.String())
	assert.Equal(t, "failed", StateFailed.String())
}
