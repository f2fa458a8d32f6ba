package processing

import (
	"strings"

	"tla_rarity_sync/internal/scryfall"
	"tla_rarity_sync/internal/sheets"
)

// rowDisposition classifies what a single sheet row produced. Every row
// lands in exactly one of these.
type rowDisposition int

const (
	rowSkipped rowDisposition = iota
	rowUpdated
	rowMissing
)

// classifyRow decides one row's fate against the catalog: blank rows
// are skipped, rows whose trimmed name has a mappable rarity become
// updates, everything else is missing.
func classifyRow(row sheets.RowValue, catalog map[string]scryfall.Card) (rowDisposition, string) {
	name := strings.TrimSpace(row.Text)
	if name == "" {
		return rowSkipped, ""
	}

	card, ok := catalog[name]
	if !ok {
		return rowMissing, ""
	}

	code, ok := card.Code()
	if !ok {
		return rowMissing, ""
	}

	return rowUpdated, code
}

// Reconcile matches sheet rows against the catalog and computes the
// cell updates plus the names that could not be resolved to a rarity
// code. Missing names keep their original, untrimmed text. Pure
// function: no I/O, no hidden state, row order preserved in both
// outputs.
func Reconcile(rows []sheets.RowValue, catalog map[string]scryfall.Card) ([]sheets.RowUpdate, []string) {
	var updates []sheets.RowUpdate
	var missing []string

	for _, row := range rows {
		switch disposition, code := classifyRow(row, catalog); disposition {
		case rowUpdated:
			updates = append(updates, sheets.RowUpdate{Row: row.Row, Code: code})
		case rowMissing:
			missing = append(missing, row.Text)
		}
	}

	return updates, missing
}
