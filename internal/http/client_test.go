package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"
	"time"

	"github.com/heritage-io/rcu-client/internal/auth"
	"github.com/heritage-io/rcu-client/pkg/rcu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testLogger captures debug output for assertions.
type testLogger struct {
	messages []string
}

func (l *testLogger) Debug(msg string, fields map[string]interface{}) {
	l.messages = append(l.messages, msg)
}

func (l *testLogger) Info(msg string, fields map[string]interface{}) {
	l.messages = append(l.messages, msg)
}

func (l *testLogger) Warn(msg string, fields map[string]interface{}) {
	l.messages = append(l.messages, msg)
}

func (l *testLogger) Error(msg string, fields map[string]interface{}) {
	l.messages = append(l.messages, msg)
}

func TestClientDo(t *testing.T) {
	t.Run("sends bearer token and standard headers", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
			assert.Equal(t, "application/json", r.Header.Get("Accept"))
			assert.Equal(t, "rcu-client/1.0", r.Header.Get("User-Agent"))

			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(`{"ok":true}`))
		}))
		defer server.Close()

		client := NewClient(server.URL, auth.NewStaticTokenManager("test-token"))

		resp, err := client.Get(context.Background(), "/v1/test", nil)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.JSONEq(t, `{"ok":true}`, string(resp.Body))
	})

	t.Run("fails before the network without a token", func(t *testing.T) {
		var hits int32

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt32(&hits, 1)
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := NewClient(server.URL, auth.NewSessionTokenManager())

		_, err := client.Get(context.Background(), "/v1/test", nil)
		assert.ErrorIs(t, err, rcu.ErrNotAuthenticated)
		assert.Equal(t, int32(0), atomic.LoadInt32(&hits))
	})

	t.Run("nil token manager sends no authorization header", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Empty(t, r.Header.Get("Authorization"))
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := NewClient(server.URL, nil)

		_, err := client.Get(context.Background(), "/v1/test", nil)
		require.NoError(t, err)
	})

	t.Run("sends the API key header", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "test-api-key", r.Header.Get("X-API-Key"))
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := NewClient(server.URL, nil, WithAPIKey("test-api-key"))

		_, err := client.Get(context.Background(), "/v1/test", nil)
		require.NoError(t, err)
	})

	t.Run("encodes query parameters", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "alula", r.URL.Query().Get("region"))
			assert.Equal(t, "10", r.URL.Query().Get("limit"))
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := NewClient(server.URL, nil)

		query := url.Values{}
		query.Set("region", "alula")
		query.Set("limit", "10")

		_, err := client.Get(context.Background(), "/v1/test", query)
		require.NoError(t, err)
	})

	t.Run("marshals the request body as JSON", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

			var payload map[string]string

			require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
			assert.Equal(t, "value", payload["key"])

			w.WriteHeader(http.StatusCreated)
		}))
		defer server.Close()

		client := NewClient(server.URL, nil)

		resp, err := client.Post(context.Background(), "/v1/test", map[string]string{"key": "value"})
		require.NoError(t, err)
		assert.Equal(t, http.StatusCreated, resp.StatusCode)
	})

	t.Run("sends custom headers", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "custom-value", r.Header.Get("X-Custom"))
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := NewClient(server.URL, nil)

		_, err := client.Do(context.Background(), &Request{
			Method:  http.MethodGet,
			Path:    "/v1/test",
			Headers: map[string]string{"X-Custom": "custom-value"},
		})
		require.NoError(t, err)
	})

	t.Run("decodes the error envelope", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"errors":[{"code":40400,"title":"Not Found","detail":"no such permit"}]}`))
		}))
		defer server.Close()

		client := NewClient(server.URL, nil)

		resp, err := client.Get(context.Background(), "/v1/test", nil)
		require.Error(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)

		var respErr *rcu.ResponseError

		require.ErrorAs(t, err, &respErr)
		assert.Equal(t, http.StatusNotFound, respErr.StatusCode)
		assert.Equal(t, "no such permit", respErr.FirstError().Detail)
	})

	t.Run("handles an unparseable error body", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
			_, _ = w.Write([]byte("<html>bad gateway</html>"))
		}))
		defer server.Close()

		client := NewClient(server.URL, nil)

		_, err := client.Get(context.Background(), "/v1/test", nil)

		var respErr *rcu.ResponseError

		require.ErrorAs(t, err, &respErr)
		assert.Equal(t, http.StatusBadGateway, respErr.StatusCode)
	})

	t.Run("logs requests in debug mode", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		logger := &testLogger{}
		client := NewClient(server.URL, nil, WithLogger(logger), WithDebug(true))

		_, err := client.Get(context.Background(), "/v1/test", nil)
		require.NoError(t, err)
		assert.Contains(t, logger.messages, "HTTP Request")
		assert.Contains(t, logger.messages, "HTTP Response")
	})

	t.Run("overrides the user agent", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "custom-agent/2.0", r.Header.Get("User-Agent"))
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := NewClient(server.URL, nil, WithUserAgent("custom-agent/2.0"))

		_, err := client.Get(context.Background(), "/v1/test", nil)
		require.NoError(t, err)
	})
}

func TestClientMethods(t *testing.T) {
	tests := []struct {
		name   string
		method string
		call   func(*Client, context.Context) (*Response, error)
	}{
		{
			name:   "Get",
			method: http.MethodGet,
			call: func(c *Client, ctx context.Context) (*Response, error) {
				return c.Get(ctx, "/v1/test", nil)
			},
		},
		{
			name:   "Post",
			method: http.MethodPost,
			call: func(c *Client, ctx context.Context) (*Response, error) {
				return c.Post(ctx, "/v1/test", nil)
			},
		},
		{
			name:   "Put",
			method: http.MethodPut,
			call: func(c *Client, ctx context.Context) (*Response, error) {
				return c.Put(ctx, "/v1/test", nil)
			},
		},
		{
			name:   "Patch",
			method: http.MethodPatch,
			call: func(c *Client, ctx context.Context) (*Response, error) {
				return c.Patch(ctx, "/v1/test", nil)
			},
		},
		{
			name:   "Delete",
			method: http.MethodDelete,
			call: func(c *Client, ctx context.Context) (*Response, error) {
				return c.Delete(ctx, "/v1/test")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, tt.method, r.Method)
				w.WriteHeader(http.StatusOK)
			}))
			defer server.Close()

			client := NewClient(server.URL, nil)

			resp, err := tt.call(client, context.Background())
			require.NoError(t, err)
			assert.Equal(t, http.StatusOK, resp.StatusCode)
		})
	}
}

func TestClientRetries(t *testing.T) {
	t.Run("single attempt by default", func(t *testing.T) {
		var attempts int32

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt32(&attempts, 1)
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		client := NewClient(server.URL, nil)

		_, err := client.Get(context.Background(), "/v1/test", nil)
		require.Error(t, err)
		assert.Equal(t, int32(1), atomic.LoadInt32(&attempts))
	})

	t.Run("retries when configured", func(t *testing.T) {
		var attempts int32

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if atomic.AddInt32(&attempts, 1) < 3 {
				w.WriteHeader(http.StatusInternalServerError)

				return
			}

			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := NewClient(server.URL, nil,
			WithRetryConfig(3, 10*time.Millisecond, 50*time.Millisecond))

		resp, err := client.Get(context.Background(), "/v1/test", nil)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, int32(3), atomic.LoadInt32(&attempts))
	})
}
