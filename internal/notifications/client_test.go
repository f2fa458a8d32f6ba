package notifications

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"tla_rarity_sync/internal/retry"

	"github.com/stretchr/testify/assert"
)

var testRetryConfig = retry.Config{
	MaxRetries: 1,
	BaseDelay:  time.Millisecond,
	MaxDelay:   5 * time.Millisecond,
	Timeout:    time.Second,
}

func TestNotifySyncResult(t *testing.T) {
	var requests atomic.Int64
	var body atomic.Value
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		b, _ := io.ReadAll(r.Body)
		body.Store(string(b))
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/rarity-sync", r.URL.Path)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "rarity-sync", true, testRetryConfig)
	client.NotifySyncResult(context.Background(), 5, 2, false)

	assert.Equal(t, int64(1), requests.Load())
	assert.Contains(t, body.Load().(string), "5 rows updated")
	assert.Contains(t, body.Load().(string), "2 names unmatched")
}

func TestNotifySyncResultDisabled(t *testing.T) {
	var requests atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "rarity-sync", false, testRetryConfig)
	client.NotifySyncResult(context.Background(), 5, 0, false)

	assert.Zero(t, requests.Load())
}

func TestNotifySyncResultRetries(t *testing.T) {
	var requests atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if requests.Add(1) == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "rarity-sync", true, testRetryConfig)
	client.NotifySyncResult(context.Background(), 1, 0, true)

	assert.Equal(t, int64(2), requests.Load())
}
