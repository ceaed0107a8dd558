// Package format renders amounts for human-readable output.
package format

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Currency returns a currency string with the given symbol and thousands
// separators (e.g., "-€1,234.56").
func Currency(amount float64, symbol string) string {
	formatted := formatPositive(math.Abs(amount))
	if amount < 0 && formatted != "0.00" {
		return "-" + symbol + formatted
	}
	return symbol + formatted
}

// NumericCurrency returns a currency string without a currency symbol but with separators (e.g., "-1,234.56").
func NumericCurrency(amount float64) string {
	formatted := formatPositive(math.Abs(amount))
	if amount < 0 && formatted != "0.00" {
		return "-" + formatted
	}
	return formatted
}

// Percent returns a percentage with two decimals (e.g., "1,125.30%").
func Percent(value float64) string {
	return NumericCurrency(value) + "%"
}

func formatPositive(value float64) string {
	return message.NewPrinter(language.English).Sprintf("%.2f", value)
}
