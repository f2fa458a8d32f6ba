package sheets

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
)

// RowValue is one read cell: the sheet's native 1-based row number and
// the raw text it contained.
type RowValue struct {
	Row  int
	Text string
}

// ReadColumnRows reads a single column from startRow to the end of the
// worksheet and returns the non-empty rows with their native row
// numbers. Rows the API omits entirely are skipped, so Row always
// reflects the spreadsheet's own numbering.
func (c *Client) ReadColumnRows(ctx context.Context, spreadsheetID, worksheet, column string, startRow int) ([]RowValue, error) {
	readRange := fmt.Sprintf("%s!%s%d:%s", worksheet, column, startRow, column)
	values, err := c.ReadRange(ctx, spreadsheetID, readRange)
	if err != nil {
		return nil, err
	}

	var rows []RowValue
	for i, row := range values {
		if len(row) == 0 || row[0] == nil {
			continue
		}
		rows = append(rows, RowValue{
			Row:  startRow + i,
			Text: fmt.Sprintf("%v", row[0]),
		})
	}

	log.Debug().
		Str("range", readRange).
		Int("rows", len(rows)).
		Msg("Read name column")

	return rows, nil
}
