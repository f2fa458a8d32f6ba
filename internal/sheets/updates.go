package sheets

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"google.golang.org/api/sheets/v4"
)

// RowUpdate is one pending cell write: a row number and the rarity code
// destined for the target column.
type RowUpdate struct {
	Row  int
	Code string
}

// WriteColumn writes every update into the given column of the worksheet
// in a single batched call. No-op when there is nothing to write.
func (c *Client) WriteColumn(ctx context.Context, spreadsheetID, worksheet, column string, updates []RowUpdate) error {
	if len(updates) == 0 {
		log.Debug().Msg("No updates to write, skipping batch update")
		return nil
	}

	data := make([]*sheets.ValueRange, 0, len(updates))
	for _, update := range updates {
		data = append(data, &sheets.ValueRange{
			Range:  fmt.Sprintf("%s!%s%d", worksheet, column, update.Row),
			Values: [][]interface{}{{update.Code}},
		})
	}

	if err := c.BatchUpdate(ctx, spreadsheetID, data); err != nil {
		return err
	}

	log.Info().
		Int("cells", len(updates)).
		Str("column", column).
		Msg("Wrote rarity codes")

	return nil
}
