package adapter

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ryft-xyz/ryft-indexer/internal/domain"
	"github.com/ryft-xyz/ryft-indexer/internal/logger"
)

func TestMain(m *testing.M) {
	if err := logger.Initialize(logger.Config{Debug: false}); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

// newTestClient returns a client with a near-zero retry schedule so rate
// limit tests run fast
func newTestClient(maxElapsed time.Duration) *RealHTTPClient {
	return &RealHTTPClient{
		client: &http.Client{Timeout: 5 * time.Second},
		newBackOff: func() backoff.BackOff {
			b := backoff.NewExponentialBackOff()
			b.InitialInterval = time.Millisecond
			b.MaxInterval = 5 * time.Millisecond
			b.MaxElapsedTime = maxElapsed
			return b
		},
	}
}

func TestGet_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "secret", r.Header.Get("X-API-KEY"))
		_, _ = w.Write([]byte(`{"name":"ok"}`))
	}))
	defer server.Close()

	client := newTestClient(time.Second)

	var result struct {
		Name string `json:"name"`
	}
	err := client.Get(context.Background(), server.URL, map[string]string{"X-API-KEY": "secret"}, &result)

	require.NoError(t, err)
	assert.Equal(t, "ok", result.Name)
}

func TestGet_RetriesRateLimitThenSucceeds(t *testing.T) {
	var attempts atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if attempts.Add(1) <= 2 {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		_, _ = w.Write([]byte(`{"name":"ok"}`))
	}))
	defer server.Close()

	client := newTestClient(time.Second)

	var result struct {
		Name string `json:"name"`
	}
	err := client.Get(context.Background(), server.URL, nil, &result)

	require.NoError(t, err)
	assert.Equal(t, int32(3), attempts.Load())
	assert.Equal(t, "ok", result.Name)
}

func TestGet_RateLimitExhausted(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := newTestClient(20 * time.Millisecond)

	var result map[string]interface{}
	err := client.Get(context.Background(), server.URL, nil, &result)

	assert.ErrorIs(t, err, domain.ErrRateLimitExceeded)
}

func TestGet_EmbeddedRateLimitCode(t *testing.T) {
	var attempts atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if attempts.Add(1) == 1 {
			// JSON-RPC style rate limit inside a 200 envelope
			_, _ = w.Write([]byte(`{"error":{"code":429,"message":"capacity exceeded"}}`))
			return
		}
		_, _ = w.Write([]byte(`{"result":"0x1"}`))
	}))
	defer server.Close()

	client := newTestClient(time.Second)

	var result map[string]interface{}
	err := client.Get(context.Background(), server.URL, nil, &result)

	require.NoError(t, err)
	assert.Equal(t, int32(2), attempts.Load())
}

func TestGet_NotFoundIsPermanent(t *testing.T) {
	var attempts atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts.Add(1)
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"not indexed"}`))
	}))
	defer server.Close()

	client := newTestClient(time.Second)

	var result map[string]interface{}
	err := client.Get(context.Background(), server.URL, nil, &result)

	require.Error(t, err)
	assert.Equal(t, int32(1), attempts.Load(), "4xx responses must not be retried")

	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusNotFound, statusErr.StatusCode)
}

func TestPost_SendsBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		buf := make([]byte, r.ContentLength)
		_, _ = r.Body.Read(buf)
		assert.JSONEq(t, `{"a":1}`, string(buf))
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer server.Close()

	client := newTestClient(time.Second)

	body, err := client.Post(context.Background(), server.URL, nil, strings.NewReader(`{"a":1}`))

	require.NoError(t, err)
	assert.JSONEq(t, `{"ok":true}`, string(body))
}

func TestGetBytes_ReturnsRawBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("raw-bytes"))
	}))
	defer server.Close()

	client := newTestClient(time.Second)

	body, err := client.GetBytes(context.Background(), server.URL, nil)

	require.NoError(t, err)
	assert.Equal(t, []byte("raw-bytes"), body)
}
