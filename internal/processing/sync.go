package processing

import (
	"context"
	"fmt"

	"tla_rarity_sync/internal/scryfall"
	"tla_rarity_sync/internal/sheets"

	"github.com/rs/zerolog/log"
)

// SheetAPI is the narrow spreadsheet surface the sync needs.
// *sheets.Client satisfies it; tests substitute a fake.
type SheetAPI interface {
	ReadColumnRows(ctx context.Context, spreadsheetID, worksheet, column string, startRow int) ([]sheets.RowValue, error)
	WriteColumn(ctx context.Context, spreadsheetID, worksheet, column string, updates []sheets.RowUpdate) error
}

// Params configures one sync run against an already-resolved
// spreadsheet.
type Params struct {
	SpreadsheetID string
	Worksheet     string
	Column        string
	StartRow      int
	DryRun        bool
}

// SyncResult summarizes one completed run.
type SyncResult struct {
	Updated int
	Missing []string
}

// SyncSheet reads the name column, reconciles it against the catalog
// and either previews or writes the rarity codes one column to the
// right of the names. The batched write is the sole mutating step; any
// earlier failure leaves the sheet untouched.
func SyncSheet(ctx context.Context, api SheetAPI, params Params, catalog map[string]scryfall.Card) (*SyncResult, error) {
	sourceIndex, err := sheets.ColumnToIndex(params.Column)
	if err != nil {
		return nil, err
	}
	targetColumn, err := sheets.IndexToColumn(sourceIndex + 1)
	if err != nil {
		return nil, err
	}

	rows, err := api.ReadColumnRows(ctx, params.SpreadsheetID, params.Worksheet, params.Column, params.StartRow)
	if err != nil {
		return nil, err
	}

	updates, missing := Reconcile(rows, catalog)
	log.Debug().
		Int("rows", len(rows)).
		Int("updates", len(updates)).
		Int("missing", len(missing)).
		Str("target_column", targetColumn).
		Msg("Reconciled sheet rows against catalog")

	if params.DryRun {
		for _, update := range updates {
			fmt.Printf("Would update row %d to %s\n", update.Row, update.Code)
		}
	} else if err := api.WriteColumn(ctx, params.SpreadsheetID, params.Worksheet, targetColumn, updates); err != nil {
		return nil, err
	}

	return &SyncResult{Updated: len(updates), Missing: missing}, nil
}
