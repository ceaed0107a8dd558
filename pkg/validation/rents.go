package validation

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseRentList parses a comma-separated list of monthly rents per square
// metre, e.g. "25, 30,35". Blank entries are skipped, so an empty string
// yields an empty list. Order and duplicates are preserved.
func ParseRentList(input string) ([]float64, error) {
	var rents []float64
	for i, token := range strings.Split(input, ",") {
		trimmed := strings.TrimSpace(token)
		if trimmed == "" {
			continue
		}
		rent, err := strconv.ParseFloat(trimmed, 64)
		if err != nil {
			return nil, fmt.Errorf("rent entry %d (%q) is not a number", i+1, trimmed)
		}
		if rent < 0 {
			return nil, fmt.Errorf("rent entry %d (%q) is negative", i+1, trimmed)
		}
		rents = append(rents, rent)
	}
	return rents, nil
}

// FormatRentList renders rents back into the comma-separated form accepted by
// ParseRentList.
func FormatRentList(rents []float64) string {
	parts := make([]string, len(rents))
	for i, rent := range rents {
		parts[i] = strconv.FormatFloat(rent, 'f', -1, 64)
	}
	return strings.Join(parts, ",")
}
