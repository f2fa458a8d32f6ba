package scryfall

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"tla_rarity_sync/internal/retry"

	"github.com/rs/zerolog/log"
)

const defaultBaseURL = "https://api.scryfall.com"

// Fetch failure taxonomy. RequestError carries the diagnostic payload
// for non-retryable HTTP failures; the sentinels classify the rest.
var (
	ErrRateLimitExceeded   = errors.New("scryfall rate limit retries exhausted")
	ErrUpstreamUnavailable = errors.New("scryfall unavailable")
	ErrCatalogUnreachable  = errors.New("failed to contact scryfall")
)

// RequestError is a non-2xx response outside the retryable classes
// (not a 429 and not a 5xx).
type RequestError struct {
	StatusCode int
	Body       string
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("scryfall request failed with %d: %s", e.StatusCode, e.Body)
}

// Card is one catalog record.
type Card struct {
	Name   string `json:"name"`
	Rarity string `json:"rarity"`
}

type searchPage struct {
	Data     []Card `json:"data"`
	HasMore  bool   `json:"has_more"`
	NextPage string `json:"next_page"`
}

type Client struct {
	baseURL           string
	client            *http.Client
	maxRetries        int
	backoffBase       time.Duration
	backoffMax        time.Duration
	retryAfterDefault time.Duration
}

type Option func(*Client)

// WithBaseURL points the client at a different search endpoint base.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// WithRetryConfig applies the retry ceiling, backoff curve and request
// timeout from a resilience config.
func WithRetryConfig(cfg retry.Config) Option {
	return func(c *Client) {
		c.maxRetries = cfg.MaxRetries
		c.backoffBase = cfg.BaseDelay
		c.backoffMax = cfg.MaxDelay
		c.client.Timeout = cfg.Timeout
	}
}

// WithRetryAfterDefault sets the wait used when a 429 carries no usable
// Retry-After header.
func WithRetryAfterDefault(d time.Duration) Option {
	return func(c *Client) {
		c.retryAfterDefault = d
	}
}

func NewClient(opts ...Option) *Client {
	c := &Client{
		baseURL: defaultBaseURL,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
		maxRetries:        5,
		backoffBase:       1 * time.Second,
		backoffMax:        30 * time.Second,
		retryAfterDefault: 2 * time.Second,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FetchSetCards retrieves every card in a set, following pagination
// until exhausted, and returns them keyed by trimmed name. Later pages
// overwrite earlier entries on name collision. The retry counter lives
// in this call and resets after each successful page, so one slow page
// cannot starve the rest of the fetch.
func (c *Client) FetchSetCards(ctx context.Context, setCode string) (map[string]Card, error) {
	pageURL := fmt.Sprintf("%s/cards/search?q=%s", c.baseURL, url.QueryEscape("set:"+setCode))
	cards := make(map[string]Card)
	retries := 0
	pages := 0

	for pageURL != "" {
		resp, err := c.get(ctx, pageURL)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrCatalogUnreachable, err)
		}

		if resp.StatusCode == http.StatusTooManyRequests {
			resp.Body.Close()
			retries++
			if retries > c.maxRetries {
				return nil, fmt.Errorf("%w after %d attempts", ErrRateLimitExceeded, retries)
			}
			wait := c.retryAfterWait(resp)
			log.Debug().
				Dur("wait", wait).
				Int("attempt", retries).
				Msg("Rate limited by Scryfall, backing off")
			if err := sleep(ctx, wait); err != nil {
				return nil, err
			}
			continue
		}

		if resp.StatusCode >= 500 {
			resp.Body.Close()
			retries++
			if retries > c.maxRetries {
				return nil, fmt.Errorf("%w: status %d after %d attempts", ErrUpstreamUnavailable, resp.StatusCode, retries)
			}
			wait := retry.BackoffDelay(retries, c.backoffBase, c.backoffMax)
			log.Debug().
				Int("status", resp.StatusCode).
				Dur("wait", wait).
				Int("attempt", retries).
				Msg("Scryfall server error, backing off")
			if err := sleep(ctx, wait); err != nil {
				return nil, err
			}
			continue
		}

		if resp.StatusCode != http.StatusOK {
			body, _ := io.ReadAll(resp.Body)
			resp.Body.Close()
			return nil, &RequestError{StatusCode: resp.StatusCode, Body: string(body)}
		}

		var page searchPage
		err = json.NewDecoder(resp.Body).Decode(&page)
		resp.Body.Close()
		if err != nil {
			return nil, fmt.Errorf("failed to decode search page: %w", err)
		}

		retries = 0
		pages++
		for _, card := range page.Data {
			name := strings.TrimSpace(card.Name)
			if name == "" || card.Rarity == "" {
				continue
			}
			cards[name] = Card{Name: name, Rarity: card.Rarity}
		}

		log.Debug().
			Int("page", pages).
			Int("cards", len(cards)).
			Bool("has_more", page.HasMore).
			Msg("Fetched search page")

		if page.HasMore {
			pageURL = page.NextPage
		} else {
			pageURL = ""
		}
	}

	log.Info().
		Str("set", setCode).
		Int("cards", len(cards)).
		Int("pages", pages).
		Msg("Fetched card catalog")

	return cards, nil
}

func (c *Client) get(ctx context.Context, pageURL string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	return c.client.Do(req)
}

// retryAfterWait honors a positive integer Retry-After header, falling
// back to the configured default.
func (c *Client) retryAfterWait(resp *http.Response) time.Duration {
	if v := resp.Header.Get("Retry-After"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
			return time.Duration(secs) * time.Second
		}
	}
	return c.retryAfterDefault
}

func sleep(ctx context.Context, d time.Duration) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d):
		return nil
	}
}
