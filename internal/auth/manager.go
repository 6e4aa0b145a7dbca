package auth

import (
	"context"
	"time"

	"github.com/heritage-io/rcu-client/pkg/rcu"
)

// TokenManager supplies the bearer token attached to authenticated requests.
type TokenManager interface {
	// GetToken returns a usable access token or an error when none is held.
	GetToken(ctx context.Context) (string, error)
	// SetToken stores a token obtained elsewhere.
	SetToken(token string, expiresAt time.Time)
	// Authenticated reports whether a usable token is currently held.
	Authenticated() bool
}

// SessionTokenManager holds the token obtained by an explicit Authenticate
// call. It never fetches tokens itself: a request made before
// authentication fails immediately with rcu.ErrNotAuthenticated, without
// touching the network.
type SessionTokenManager struct {
	store *TokenStore
}

// NewSessionTokenManager creates an empty session manager.
func NewSessionTokenManager() *SessionTokenManager {
	return &SessionTokenManager{store: NewTokenStore()}
}

// GetToken implements TokenManager.GetToken.
func (m *SessionTokenManager) GetToken(ctx context.Context) (string, error) {
	token := m.store.Get()
	if !token.Valid() {
		return "", rcu.ErrNotAuthenticated
	}

	return token.AccessToken, nil
}

// SetToken implements TokenManager.SetToken.
func (m *SessionTokenManager) SetToken(token string, expiresAt time.Time) {
	m.store.Set(&Token{
		AccessToken: token,
		ExpiresAt:   expiresAt,
	})
}

// SetFullToken stores the full token record returned by the auth endpoint.
func (m *SessionTokenManager) SetFullToken(token *Token) {
	m.store.Set(token)
}

// Authenticated implements TokenManager.Authenticated.
func (m *SessionTokenManager) Authenticated() bool {
	return m.store.Get().Valid()
}

// Clear drops the held token.
func (m *SessionTokenManager) Clear() {
	m.store.Clear()
}

// StaticTokenManager provides a pre-obtained token that is never refreshed.
type StaticTokenManager struct {
	token string
}

// NewStaticTokenManager wraps a fixed bearer token.
func NewStaticTokenManager(token string) *StaticTokenManager {
	return &StaticTokenManager{token: token}
}

// GetToken implements TokenManager.GetToken.
func (m *StaticTokenManager) GetToken(ctx context.Context) (string, error) {
	if m.token == "" {
		return "", rcu.ErrNotAuthenticated
	}

	return m.token, nil
}

// SetToken implements TokenManager.SetToken.
func (m *StaticTokenManager) SetToken(token string, expiresAt time.Time) {
	m.token = token
}

// Authenticated implements TokenManager.Authenticated.
func (m *StaticTokenManager) Authenticated() bool {
	return m.token != ""
}
