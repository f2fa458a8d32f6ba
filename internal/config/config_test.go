package config

import (
	"testing"

	"tla_rarity_sync/internal/sheets"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validSync() Sync {
	return Sync{
		Worksheet:       "Sheet1",
		Column:          "A",
		StartRow:        2,
		SetCode:         "tla",
		CreateTitle:     "The Last Airbender Sync",
		CredentialsFile: "credentials.json",
	}
}

func TestValidate(t *testing.T) {
	cfg := validSync()
	require.NoError(t, cfg.Validate())

	cfg = validSync()
	cfg.CreateTitle = ""
	cfg.SheetURL = "https://docs.google.com/spreadsheets/d/abc123"
	require.NoError(t, cfg.Validate())
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Sync)
	}{
		{"empty column", func(s *Sync) { s.Column = "" }},
		{"numeric column", func(s *Sync) { s.Column = "A1" }},
		{"zero start row", func(s *Sync) { s.StartRow = 0 }},
		{"negative start row", func(s *Sync) { s.StartRow = -1 }},
		{"empty worksheet", func(s *Sync) { s.Worksheet = "" }},
		{"empty set code", func(s *Sync) { s.SetCode = "" }},
		{"no sheet URL or create title", func(s *Sync) { s.CreateTitle = "" }},
		{"no credentials", func(s *Sync) { s.CredentialsFile = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validSync()
			tt.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestValidateWrapsColumnError(t *testing.T) {
	cfg := validSync()
	cfg.Column = "7"
	assert.ErrorIs(t, cfg.Validate(), sheets.ErrInvalidColumn)
}
