// Package mathutil provides common mathematical utility functions.
package mathutil

import (
	"math"

	"github.com/iwvelando/rental-forecast/pkg/constants"
)

// Round rounds a value to two decimals, i.e. to represent real currency.
func Round(val float64) float64 {
	return math.Round(val*constants.DecimalPrecision) / constants.DecimalPrecision
}

// Min returns the minimum of two float64 values
func Min(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

// Max returns the maximum of two float64 values
func Max(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

// SafeRatio divides numerator by denominator and returns 0 unless the
// denominator is strictly positive. Equity and year counts are the only
// denominators in the simulation, and neither has a meaningful negative case.
func SafeRatio(numerator, denominator float64) float64 {
	if denominator <= 0 {
		return 0
	}
	return numerator / denominator
}

// Percent converts a fraction into a percentage.
func Percent(fraction float64) float64 {
	return fraction * constants.PercentageMultiplier
}

// Fraction converts a percentage into a fraction.
func Fraction(percentage float64) float64 {
	return percentage / constants.PercentageMultiplier
}
