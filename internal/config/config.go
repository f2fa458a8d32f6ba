package config

import (
	"fmt"

	"tla_rarity_sync/internal/sheets"
)

// Sync holds one run's configuration. Zero values are invalid; the CLI
// layer fills in the flag defaults before Validate runs.
type Sync struct {
	SheetURL        string
	Worksheet       string
	Column          string
	StartRow        int
	SetCode         string
	CreateTitle     string
	DryRun          bool
	CredentialsFile string
}

// Validate fails fast on bad values before any network call is made.
func (s *Sync) Validate() error {
	if _, err := sheets.ColumnToIndex(s.Column); err != nil {
		return fmt.Errorf("invalid --column: %w", err)
	}
	if s.StartRow < 1 {
		return fmt.Errorf("--start-row must be >= 1, got %d", s.StartRow)
	}
	if s.Worksheet == "" {
		return fmt.Errorf("--worksheet cannot be empty")
	}
	if s.SetCode == "" {
		return fmt.Errorf("--set-code cannot be empty")
	}
	if s.SheetURL == "" && s.CreateTitle == "" {
		return fmt.Errorf("--create-title cannot be empty when no --sheet-url is given")
	}
	if s.CredentialsFile == "" {
		return fmt.Errorf("no credentials file configured; pass --credentials or set GOOGLE_APPLICATION_CREDENTIALS")
	}
	return nil
}
