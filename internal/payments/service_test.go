package payments

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/profolio/profolio-cli/internal/api"
	"github.com/profolio/profolio-cli/internal/types"
)

func newTestService(t *testing.T, handler http.Handler) *Service {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewService(api.New(server.URL, nil))
}

func TestCreateCheckout(t *testing.T) {
	svc := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/payments/create-checkout", r.URL.Path)
		var req types.CheckoutRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, types.PlanLifetime, req.Plan)
		_, _ = w.Write([]byte(`{"url":"https://pay.example.com/cs_1"}`))
	}))

	url, err := svc.CreateCheckout(context.Background(), types.PlanLifetime, "https://app.example.com")
	require.NoError(t, err)
	assert.Equal(t, "https://pay.example.com/cs_1", url)
}

func TestCreateCheckout_UnknownPlan(t *testing.T) {
	svc := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		t.Fatal("no request expected")
	}))

	_, err := svc.CreateCheckout(context.Background(), "gold", "https://app.example.com")
	require.Error(t, err)
}

func TestCreateCheckout_MissingURLInResponse(t *testing.T) {
	svc := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))

	_, err := svc.CreateCheckout(context.Background(), types.PlanEarlyBird, "https://app.example.com")
	require.Error(t, err)
}

func TestStatus(t *testing.T) {
	svc := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/payments/status/cs_1", r.URL.Path)
		_, _ = w.Write([]byte(`{"session_id":"cs_1","status":"complete","payment_status":"paid","plan":"lifetime"}`))
	}))

	status, err := svc.Status(context.Background(), "cs_1")
	require.NoError(t, err)
	assert.True(t, status.Paid())
	assert.False(t, status.Expired())
	assert.Equal(t, "lifetime", status.Plan)
}

func TestStatus_EmptySessionID(t *testing.T) {
	svc := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		t.Fatal("no request expected")
	}))

	_, err := svc.Status(context.Background(), "")
	require.Error(t, err)
}
