package sheets

import (
	"context"
	"fmt"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

type Client struct {
	service *sheets.Service
}

func NewClient(ctx context.Context, credentialsFile string) (*Client, error) {
	service, err := sheets.NewService(ctx, option.WithCredentialsFile(credentialsFile))
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}

	return &Client{
		service: service,
	}, nil
}

// ReadRange reads raw cell values from a range, row-major.
func (c *Client) ReadRange(ctx context.Context, spreadsheetID, range_ string) ([][]interface{}, error) {
	resp, err := c.service.Spreadsheets.Values.Get(spreadsheetID, range_).
		MajorDimension("ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet values: %w", err)
	}

	return resp.Values, nil
}

// BatchUpdate applies all value ranges in one values.batchUpdate call.
// RAW input keeps codes from being interpreted as formulas.
func (c *Client) BatchUpdate(ctx context.Context, spreadsheetID string, data []*sheets.ValueRange) error {
	req := &sheets.BatchUpdateValuesRequest{
		ValueInputOption: "RAW",
		Data:             data,
	}

	_, err := c.service.Spreadsheets.Values.BatchUpdate(spreadsheetID, req).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("failed to update sheet values: %w", err)
	}

	return nil
}

// CreateSpreadsheet creates a new spreadsheet with the given title and
// returns its ID and browser URL.
func (c *Client) CreateSpreadsheet(ctx context.Context, title string) (string, string, error) {
	spreadsheet := &sheets.Spreadsheet{
		Properties: &sheets.SpreadsheetProperties{Title: title},
	}

	resp, err := c.service.Spreadsheets.Create(spreadsheet).
		Fields("spreadsheetId").
		Context(ctx).
		Do()
	if err != nil {
		return "", "", fmt.Errorf("failed to create spreadsheet: %w", err)
	}

	url := fmt.Sprintf("https://docs.google.com/spreadsheets/d/%s", resp.SpreadsheetId)
	return resp.SpreadsheetId, url, nil
}
