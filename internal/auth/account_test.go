package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/profolio/profolio-cli/internal/types"
)

func TestForgotPassword(t *testing.T) {
	var gotPath string
	store, _ := newTestStore(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(`{"message":"sent"}`))
	}))

	require.NoError(t, store.ForgotPassword(context.Background(), "jane@example.com"))
	assert.Equal(t, "/auth/forgot-password", gotPath)
}

func TestForgotPassword_InvalidEmail(t *testing.T) {
	store, _ := newTestStore(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		t.Fatal("no request expected")
	}))

	assert.Error(t, store.ForgotPassword(context.Background(), "not-an-email"))
}

func TestResetPassword(t *testing.T) {
	store, _ := newTestStore(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req types.ResetPasswordRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "reset-tok", req.Token)
		_, _ = w.Write([]byte(`{"message":"ok"}`))
	}))

	require.NoError(t, store.ResetPassword(context.Background(), "reset-tok", "newpassword"))
}

func TestVerifyEmail(t *testing.T) {
	store, _ := newTestStore(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/auth/verify-email", r.URL.Path)
		_, _ = w.Write([]byte(`{"message":"verified"}`))
	}))

	require.NoError(t, store.VerifyEmail(context.Background(), "verify-tok"))
}

func TestUpdateProfile_RefreshesCachedUser(t *testing.T) {
	store, _ := newTestStore(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/auth/login" {
			_, _ = w.Write([]byte(`{"access_token":"tok","user":{"id":"u1","email":"jane@example.com","full_name":"Jane Doe"}}`))
			return
		}
		require.Equal(t, http.MethodPut, r.Method)
		_, _ = w.Write([]byte(`{"id":"u1","email":"jane@example.com","full_name":"Jane Q. Doe"}`))
	}))

	_, err := store.Login(context.Background(), "jane@example.com", "hunter22")
	require.NoError(t, err)

	user, err := store.UpdateProfile(context.Background(), types.UpdateProfileRequest{FullName: "Jane Q. Doe"})
	require.NoError(t, err)
	assert.Equal(t, "Jane Q. Doe", user.FullName)
	assert.Equal(t, "Jane Q. Doe", store.User().FullName)
}

func TestUpdateProfile_LocalValidation(t *testing.T) {
	store, _ := newTestStore(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		t.Fatal("no request expected")
	}))

	_, err := store.UpdateProfile(context.Background(), types.UpdateProfileRequest{})
	assert.Error(t, err)
}
