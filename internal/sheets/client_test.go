package sheets_test

import (
	"context"
	"os"
	"testing"

	"tla_rarity_sync/internal/sheets"
)

// Live-API test, gated on real credentials being present.
func TestReadColumnRowsIntegration(t *testing.T) {
	credsFile := os.Getenv("GOOGLE_APPLICATION_CREDENTIALS")
	spreadsheetID := os.Getenv("SYNC_TEST_SPREADSHEET_ID")
	if credsFile == "" || spreadsheetID == "" {
		t.Skip("GOOGLE_APPLICATION_CREDENTIALS and SYNC_TEST_SPREADSHEET_ID not set")
	}

	ctx := context.Background()
	client, err := sheets.NewClient(ctx, credsFile)
	if err != nil {
		t.Fatalf("Failed to create client: %v", err)
	}

	rows, err := client.ReadColumnRows(ctx, spreadsheetID, "Sheet1", "A", 2)
	if err != nil {
		t.Fatalf("Failed to read column rows: %v", err)
	}

	for _, row := range rows {
		if row.Row < 2 {
			t.Errorf("Expected row numbers >= 2, got %d", row.Row)
		}
		if row.Text == "" {
			t.Errorf("Expected non-empty text for row %d", row.Row)
		}
	}
}
