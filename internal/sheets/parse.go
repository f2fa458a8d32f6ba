package sheets

import (
	"fmt"
	"regexp"
)

var spreadsheetIDPattern = regexp.MustCompile(`/spreadsheets/d/([a-zA-Z0-9-_]+)`)

// ParseSpreadsheetID extracts the spreadsheet ID from a Google Sheets
// URL of the usual docs.google.com/spreadsheets/d/<id> shape.
func ParseSpreadsheetID(sheetURL string) (string, error) {
	match := spreadsheetIDPattern.FindStringSubmatch(sheetURL)
	if match == nil {
		return "", fmt.Errorf("no spreadsheet ID found in URL %q", sheetURL)
	}
	return match[1], nil
}
