// Package session keeps track of the authenticated user on the client
// side: the current token, the identity it resolves to, and the token
// file that survives restarts.
package session

import (
	"context"

	"github.com/dmitrijs2005/taskkeeper/internal/client/client"
)

// Session holds the client-side authentication state.
type Session struct {
	client  client.Client
	storage TokenStorage

	user    *client.User
	loading bool
}

func New(c client.Client, storage TokenStorage) *Session {
	return &Session{client: c, storage: storage, loading: true}
}

// User returns the authenticated user, or nil when logged out.
func (s *Session) User() *client.User {
	return s.user
}

// Authenticated reports whether a user is currently signed in.
func (s *Session) Authenticated() bool {
	return s.user != nil
}

// Loading reports whether Restore has not finished yet.
func (s *Session) Loading() bool {
	return s.loading
}

// Restore tries to resume a previous session from the persisted token.
// The token is only trusted after the server resolves it to a profile;
// on any failure the token is discarded and the session starts logged
// out. Restore never returns the failure itself: a stale token is a
// normal state, not an error.
func (s *Session) Restore(ctx context.Context) {
	defer func() { s.loading = false }()

	token, err := s.storage.Load()
	if err != nil || token == "" {
		return
	}

	s.client.SetToken(token)
	user, err := s.client.GetProfile(ctx)
	if err != nil {
		s.client.ClearToken()
		_ = s.storage.Clear()
		return
	}
	s.user = user
}

// Register creates an account. The server does not sign the new user
// in, so the session state does not change.
func (s *Session) Register(ctx context.Context, name, email, password string) (string, error) {
	return s.client.Register(ctx, name, email, password)
}

// Login authenticates with the server and persists the token.
func (s *Session) Login(ctx context.Context, email, password string) error {
	result, err := s.client.Login(ctx, email, password)
	if err != nil {
		return err
	}

	s.client.SetToken(result.Token)
	s.user = &client.User{ID: result.ID, Name: result.Name, Email: email}

	// A session that cannot be persisted is still a valid session.
	_ = s.storage.Save(result.Token)
	return nil
}

// Logout drops the local session. The token itself stays valid on the
// server; there is nothing to revoke.
func (s *Session) Logout() {
	s.client.ClearToken()
	s.user = nil
	_ = s.storage.Clear()
}

// UpdateName changes the display name of the signed-in user.
func (s *Session) UpdateName(ctx context.Context, name string) error {
	user, err := s.client.UpdateProfile(ctx, name)
	if err != nil {
		return err
	}
	s.user = user
	return nil
}
