package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/heritage-io/rcu-client/pkg/rcu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPermitsSubmit(t *testing.T) {
	t.Run("submits the permit payload", func(t *testing.T) {
		fixed := time.Date(2026, 8, 25, 10, 0, 0, 0, time.UTC)
		timeNow = func() time.Time { return fixed }

		defer func() { timeNow = time.Now }()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/v1/auth/token" {
				tokenResponse(w)

				return
			}

			assert.Equal(t, "/v1/permits", r.URL.Path)
			assert.Equal(t, http.MethodPost, r.Method)

			var payload rcu.PermitSubmission

			require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
			require.NotNil(t, payload.VisitorInfo)
			assert.Equal(t, "John Doe", payload.VisitorInfo.Name)
			assert.Equal(t, "US", payload.VisitorInfo.Nationality)
			assert.Equal(t, fixed.Format(time.RFC3339), payload.SubmissionDate)
			assert.Equal(t, "v1", payload.APIVersion)

			w.WriteHeader(http.StatusCreated)
			_, _ = w.Write([]byte(`{"permit_id":"prm_98765","status":"pending"}`))
		}))
		defer server.Close()

		c := newSessionClient(t, server, nil)
		ctx := context.Background()

		require.NoError(t, c.Authenticate(ctx))

		permit, err := c.Permits().Submit(ctx, &rcu.VisitorInfo{
			Name:        "John Doe",
			Nationality: "US",
			VisitDate:   "2026-09-15",
			Purpose:     "Heritage site tour",
		})
		require.NoError(t, err)
		assert.Equal(t, "prm_98765", permit.PermitID)
		assert.Equal(t, "pending", permit.Status)
	})

	t.Run("nil visitor info", func(t *testing.T) {
		c, err := New(&rcu.Config{APIEndpoint: "https://api.rcu.gov.sa", AccessToken: "token"})
		require.NoError(t, err)

		_, err = c.Permits().Submit(context.Background(), nil)
		assert.ErrorIs(t, err, rcu.ErrVisitorInfoRequired)
	})

	t.Run("non-201 status is a failed submission", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/v1/auth/token" {
				tokenResponse(w)

				return
			}

			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(`{"permit_id":"prm_98765"}`))
		}))
		defer server.Close()

		c := newSessionClient(t, server, nil)
		ctx := context.Background()

		require.NoError(t, c.Authenticate(ctx))

		_, err := c.Permits().Submit(ctx, &rcu.VisitorInfo{Name: "John Doe"})
		assert.ErrorIs(t, err, rcu.ErrUnexpectedStatus)
	})

	t.Run("validation failure surfaces the API error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/v1/auth/token" {
				tokenResponse(w)

				return
			}

			w.WriteHeader(http.StatusUnprocessableEntity)
			_, _ = w.Write([]byte(`{"errors":[{"code":42200,"title":"Validation","detail":"visit_date is required"}]}`))
		}))
		defer server.Close()

		c := newSessionClient(t, server, nil)
		ctx := context.Background()

		require.NoError(t, c.Authenticate(ctx))

		_, err := c.Permits().Submit(ctx, &rcu.VisitorInfo{Name: "John Doe"})
		require.Error(t, err)

		var respErr *rcu.ResponseError

		require.ErrorAs(t, err, &respErr)
		assert.Equal(t, "visit_date is required", respErr.FirstError().Detail)
	})
}

func TestPermitsGet(t *testing.T) {
	t.Run("returns the permit", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/v1/auth/token" {
				tokenResponse(w)

				return
			}

			assert.Equal(t, "/v1/permits/prm_98765", r.URL.Path)

			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(`{"permit_id":"prm_98765","status":"approved"}`))
		}))
		defer server.Close()

		c := newSessionClient(t, server, nil)
		ctx := context.Background()

		require.NoError(t, c.Authenticate(ctx))

		permit, err := c.Permits().Get(ctx, "prm_98765")
		require.NoError(t, err)
		assert.Equal(t, "approved", permit.Status)
	})

	t.Run("empty permit ID", func(t *testing.T) {
		c, err := New(&rcu.Config{APIEndpoint: "https://api.rcu.gov.sa", AccessToken: "token"})
		require.NoError(t, err)

		_, err = c.Permits().Get(context.Background(), "")
		assert.ErrorIs(t, err, rcu.ErrPermitIDRequired)
	})
}
