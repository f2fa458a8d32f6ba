package notifications

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"tla_rarity_sync/internal/retry"

	"github.com/rs/zerolog/log"
)

// Client posts sync summaries to an ntfy topic. A disabled client is a
// no-op so callers never need to branch.
type Client struct {
	httpClient *http.Client
	baseURL    string
	topic      string
	enabled    bool
	retryCfg   retry.Config
}

func NewClient(baseURL, topic string, enabled bool, retryCfg retry.Config) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		baseURL:  strings.TrimRight(baseURL, "/"),
		topic:    topic,
		enabled:  enabled,
		retryCfg: retryCfg,
	}
}

// NotifySyncResult sends a one-line summary of a completed run. Send
// failures are logged, never propagated: the sync already succeeded.
func (c *Client) NotifySyncResult(ctx context.Context, updated, missing int, dryRun bool) {
	if !c.enabled {
		log.Debug().Msg("Notifications disabled, skipping")
		return
	}

	message := fmt.Sprintf("Rarity sync complete: %d rows updated, %d names unmatched", updated, missing)
	if dryRun {
		message = fmt.Sprintf("Rarity sync dry run: %d rows would update, %d names unmatched", updated, missing)
	}

	_, err := retry.WithRetry(ctx, c.retryCfg, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, c.send(ctx, message)
	})
	if err != nil {
		log.Warn().Err(err).Msg("Failed to send sync notification")
		return
	}

	log.Debug().Str("topic", c.topic).Msg("Sent sync notification")
}

func (c *Client) send(ctx context.Context, message string) error {
	url := fmt.Sprintf("%s/%s", c.baseURL, c.topic)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBufferString(message))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "text/plain")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send notification: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("notification rejected with status %d: %s", resp.StatusCode, string(body))
	}

	return nil
}
