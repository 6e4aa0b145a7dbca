package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/heritage-io/rcu-client/pkg/rcu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthenticatorRequestToken(t *testing.T) {
	t.Run("successful exchange", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
			assert.Equal(t, "test-api-key", r.Header.Get("X-API-Key"))

			var payload map[string]string

			require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
			assert.Equal(t, "test-client", payload["client_id"])
			assert.Equal(t, "test-secret", payload["secret_key"])
			assert.Equal(t, "client_credentials", payload["grant_type"])

			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			_ = json.NewEncoder(w).Encode(map[string]interface{}{
				"access_token": "new-token",
				"token_type":   "Bearer",
				"expires_in":   3600,
			})
		}))
		defer server.Close()

		authenticator := NewAuthenticator(&Config{
			TokenURL:  server.URL,
			APIKey:    "test-api-key",
			ClientID:  "test-client",
			SecretKey: "test-secret",
		})

		token, err := authenticator.RequestToken(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "new-token", token.AccessToken)
		assert.Equal(t, "Bearer", token.TokenType)
		assert.False(t, token.ExpiresAt.IsZero())
		assert.True(t, token.Valid())
	})

	t.Run("non-200 status fails", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"errors":[{"code":40100,"title":"Unauthorized","detail":"invalid credentials"}]}`))
		}))
		defer server.Close()

		authenticator := NewAuthenticator(&Config{
			TokenURL:  server.URL,
			APIKey:    "test-api-key",
			ClientID:  "test-client",
			SecretKey: "bad-secret",
		})

		token, err := authenticator.RequestToken(context.Background())
		assert.ErrorIs(t, err, rcu.ErrAuthenticationFailed)
		assert.Contains(t, err.Error(), "invalid credentials")
		assert.Nil(t, token)
	})

	t.Run("non-200 with unparseable body fails", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte("internal error"))
		}))
		defer server.Close()

		authenticator := NewAuthenticator(&Config{TokenURL: server.URL})

		token, err := authenticator.RequestToken(context.Background())
		assert.ErrorIs(t, err, rcu.ErrAuthenticationFailed)
		assert.Contains(t, err.Error(), "status 500")
		assert.Nil(t, token)
	})

	t.Run("missing access_token fails", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(`{"token_type":"Bearer"}`))
		}))
		defer server.Close()

		authenticator := NewAuthenticator(&Config{TokenURL: server.URL})

		token, err := authenticator.RequestToken(context.Background())
		assert.ErrorIs(t, err, rcu.ErrAuthenticationFailed)
		assert.Nil(t, token)
	})

	t.Run("token without expires_in has no expiry", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(`{"access_token":"forever-token"}`))
		}))
		defer server.Close()

		authenticator := NewAuthenticator(&Config{TokenURL: server.URL})

		token, err := authenticator.RequestToken(context.Background())
		require.NoError(t, err)
		assert.True(t, token.ExpiresAt.IsZero())
		assert.True(t, token.Valid())
	})
}
