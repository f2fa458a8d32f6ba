package sheets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSpreadsheetID(t *testing.T) {
	tests := []struct {
		url  string
		want string
	}{
		{"https://docs.google.com/spreadsheets/d/1QgYUWbeT5laQiwA5qEw76K_tsKZX721vTzXU91AXg-E/edit#gid=0", "1QgYUWbeT5laQiwA5qEw76K_tsKZX721vTzXU91AXg-E"},
		{"https://docs.google.com/spreadsheets/d/abc_123-XYZ", "abc_123-XYZ"},
	}

	for _, tt := range tests {
		got, err := ParseSpreadsheetID(tt.url)
		require.NoError(t, err, "url %q", tt.url)
		assert.Equal(t, tt.want, got)
	}
}

func TestParseSpreadsheetIDInvalid(t *testing.T) {
	for _, url := range []string{"", "not-a-url", "https://docs.google.com/document/d/abc123"} {
		_, err := ParseSpreadsheetID(url)
		assert.Error(t, err, "url %q", url)
	}
}
