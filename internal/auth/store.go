// Package auth owns the session: the bearer token, the authenticated user,
// and the durable token file. It is the only writer of the credential; every
// other service reads it through the API client's token source.
package auth

import (
	"context"
	"sync"

	"github.com/profolio/profolio-cli/internal/api"
	"github.com/profolio/profolio-cli/internal/types"
)

// Store holds the process-wide session. Construct with NewStore; the store
// registers itself as the client's token source and 401 teardown handler.
type Store struct {
	client    *api.Client
	tokenPath string

	mu    sync.RWMutex
	token string
	user  *types.User
}

// NewStore creates the session store and wires it into the API client.
func NewStore(client *api.Client, tokenPath string) *Store {
	s := &Store{
		client:    client,
		tokenPath: tokenPath,
	}
	client.SetTokenSource(s)
	client.SetUnauthorizedHandler(s.clear)
	return s
}

// Token returns the current bearer token, or "" when unauthenticated. It
// implements api.TokenSource.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// User returns the authenticated user, or nil.
func (s *Store) User() *types.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

// IsPremium reports whether the session holds a premium entitlement. This is
// a UX gate only; the server re-checks on every premium endpoint.
func (s *Store) IsPremium() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user != nil && s.user.IsPremium
}

// Login authenticates with email and password, persists the bearer token, and
// sets the session.
func (s *Store) Login(ctx context.Context, email, password string) (*types.User, error) {
	req := types.LoginRequest{Email: email, Password: password}
	if err := req.Validate(); err != nil {
		return nil, &CredentialError{Reason: "email and password are required", Cause: err}
	}

	var resp types.TokenResponse
	if err := s.client.Post(ctx, "/auth/login", &req, &resp); err != nil {
		return nil, loginError(err)
	}
	return s.establish(&resp)
}

// Register creates an account and opens a session for it.
func (s *Store) Register(ctx context.Context, email, password, fullName string) (*types.User, error) {
	req := types.RegisterRequest{Email: email, Password: password, FullName: fullName}
	if err := req.Validate(); err != nil {
		return nil, &CredentialError{Reason: "a valid email, a name, and a password of at least 8 characters are required", Cause: err}
	}

	var resp types.TokenResponse
	if err := s.client.Post(ctx, "/auth/register", &req, &resp); err != nil {
		return nil, loginError(err)
	}
	return s.establish(&resp)
}

// Logout clears the session. It always succeeds: no network call is made, and
// a failed token-file removal still clears the in-memory state.
func (s *Store) Logout() {
	s.clear()
}

// Verify loads the stored token, if any, and validates it against the backend.
// Any failure, network errors included, clears the session so startup never
// leaves it ambiguous. A nil user with nil error means no stored session.
func (s *Store) Verify(ctx context.Context) (*types.User, error) {
	token, err := loadToken(s.tokenPath)
	if err != nil || token == "" {
		return nil, nil
	}
	if tokenExpired(token) {
		s.clear()
		return nil, nil
	}

	s.mu.Lock()
	s.token = token
	s.mu.Unlock()

	var user types.User
	if err := s.client.Get(ctx, "/auth/me", &user); err != nil {
		s.clear()
		return nil, nil
	}

	s.mu.Lock()
	s.user = &user
	s.mu.Unlock()
	return &user, nil
}

// Refresh re-fetches the current user to pick up entitlement changes. On
// failure the existing session is left as-is.
func (s *Store) Refresh(ctx context.Context) (*types.User, error) {
	if s.Token() == "" {
		return nil, nil
	}
	var user types.User
	if err := s.client.Get(ctx, "/auth/me", &user); err != nil {
		return s.User(), err
	}
	s.mu.Lock()
	s.user = &user
	s.mu.Unlock()
	return &user, nil
}

// establish persists the token and installs the session state. A token that
// cannot be written to disk still yields a working in-process session.
func (s *Store) establish(resp *types.TokenResponse) (*types.User, error) {
	if resp.AccessToken == "" || resp.User == nil {
		return nil, &CredentialError{Reason: "server returned an incomplete session"}
	}
	_ = saveToken(s.tokenPath, resp.AccessToken)
	s.mu.Lock()
	s.token = resp.AccessToken
	s.user = resp.User
	s.mu.Unlock()
	return resp.User, nil
}

func (s *Store) clear() {
	s.mu.Lock()
	s.token = ""
	s.user = nil
	s.mu.Unlock()
	_ = deleteToken(s.tokenPath)
}
