package sheets

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidColumn reports a column reference outside A-Z letters or a
// column index below 1.
var ErrInvalidColumn = errors.New("invalid column reference")

// ColumnToIndex converts a letter column reference ("A", "AA") to its
// 1-based index using bijective base-26 ('A'=1, no zero digit). Input is
// case-insensitive and whitespace-trimmed.
func ColumnToIndex(column string) (int, error) {
	column = strings.ToUpper(strings.TrimSpace(column))
	if column == "" {
		return 0, fmt.Errorf("%w: empty", ErrInvalidColumn)
	}

	index := 0
	for _, r := range column {
		if r < 'A' || r > 'Z' {
			return 0, fmt.Errorf("%w: %q", ErrInvalidColumn, column)
		}
		index = index*26 + int(r-'A') + 1
	}
	return index, nil
}

// IndexToColumn converts a 1-based column index back to its uppercase
// letter reference. Inverse of ColumnToIndex for all valid inputs.
func IndexToColumn(index int) (string, error) {
	if index < 1 {
		return "", fmt.Errorf("%w: index %d", ErrInvalidColumn, index)
	}

	var chars []byte
	for index > 0 {
		index--
		chars = append(chars, byte('A'+index%26))
		index /= 26
	}
	for i, j := 0, len(chars)-1; i < j; i, j = i+1, j-1 {
		chars[i], chars[j] = chars[j], chars[i]
	}
	return string(chars), nil
}
