package config

import (
	"time"

	"tla_rarity_sync/internal/retry"
)

// ResilienceConfig groups the retry tunables for the two operations
// that retry: the paginated catalog fetch and the completion
// notification. Sheet reads and writes do not retry; a collaborator
// failure aborts the run.
type ResilienceConfig struct {
	CatalogFetch retry.Config
	Notify       retry.Config
}

var DefaultResilienceConfig = ResilienceConfig{
	CatalogFetch: retry.Config{
		MaxRetries: 5,
		BaseDelay:  1 * time.Second,
		MaxDelay:   30 * time.Second,
		Timeout:    15 * time.Second,
	},
	Notify: retry.Config{
		MaxRetries: 3,
		BaseDelay:  2 * time.Second,
		MaxDelay:   20 * time.Second,
		Timeout:    10 * time.Second,
	},
}
