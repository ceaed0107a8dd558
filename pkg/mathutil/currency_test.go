package mathutil

import (
	"math"
	"testing"
)

func TestRound(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{"Round up at midpoint", 1.235, 1.24},
		{"Round down below midpoint", 1.234, 1.23},
		{"No rounding needed", 1.23, 1.23},
		{"Large number", 12345.678, 12345.68},
		{"Negative number round up", -1.235, -1.24},
		{"Negative number round down", -1.234, -1.23},
		{"Zero", 0.0, 0.0},
		{"Very small positive", 0.001, 0.00},
		{"Very small negative", -0.001, 0.00},
		{"Exactly one cent", 0.01, 0.01},
		{"Nearly two cents", 0.019, 0.02},
		{"Large negative", -12345.678, -12345.68},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Round(tt.input)
			if math.Abs(result-tt.expected) > 0.001 {
				t.Errorf("Round(%v) = %v, expected %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestMin(t *testing.T) {
	tests := []struct {
		name     string
		a        float64
		b        float64
		expected float64
	}{
		{"First smaller", 1.0, 2.0, 1.0},
		{"Second smaller", 2.0, 1.0, 1.0},
		{"Equal values", 1.0, 1.0, 1.0},
		{"Negative numbers", -2.0, -1.0, -2.0},
		{"Mixed signs", -1.0, 1.0, -1.0},
		{"Zero and positive", 0.0, 1.0, 0.0},
		{"Zero and negative", 0.0, -1.0, -1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Min(tt.a, tt.b)
			if result != tt.expected {
				t.Errorf("Min(%v, %v) = %v, expected %v", tt.a, tt.b, result, tt.expected)
			}
		})
	}
}

func TestMax(t *testing.T) {
	tests := []struct {
		name     string
		a        float64
		b        float64
		expected float64
	}{
		{"First larger", 2.0, 1.0, 2.0},
		{"Second larger", 1.0, 2.0, 2.0},
		{"Equal values", 1.0, 1.0, 1.0},
		{"Negative numbers", -2.0, -1.0, -1.0},
		{"Mixed signs", -1.0, 1.0, 1.0},
		{"Zero and positive", 0.0, 1.0, 1.0},
		{"Zero and negative", 0.0, -1.0, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Max(tt.a, tt.b)
			if result != tt.expected {
				t.Errorf("Max(%v, %v) = %v, expected %v", tt.a, tt.b, result, tt.expected)
			}
		})
	}
}

func TestSafeRatio(t *testing.T) {
	tests := []struct {
		name        string
		numerator   float64
		denominator float64
		expected    float64
	}{
		{"Cashflow over equity", 5000.0, 20000.0, 0.25},
		{"Negative cashflow", -2000.0, 20000.0, -0.1},
		{"Zero equity", 5000.0, 0.0, 0.0},
		{"Negative equity", 5000.0, -20000.0, 0.0},
		{"Zero numerator", 0.0, 12.0, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := SafeRatio(tt.numerator, tt.denominator)
			if math.IsNaN(result) || math.IsInf(result, 0) {
				t.Fatalf("SafeRatio(%v, %v) = %v, expected a finite value", tt.numerator, tt.denominator, result)
			}
			if math.Abs(result-tt.expected) > 0.0001 {
				t.Errorf("SafeRatio(%v, %v) = %v, expected %v",
					tt.numerator, tt.denominator, result, tt.expected)
			}
		})
	}
}

func TestPercentAndFraction(t *testing.T) {
	tests := []struct {
		name     string
		fraction float64
		percent  float64
	}{
		{"Interest rate", 0.04, 4.0},
		{"Whole", 1.0, 100.0},
		{"Zero", 0.0, 0.0},
		{"Negative", -0.25, -25.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Percent(tt.fraction); math.Abs(got-tt.percent) > 0.0001 {
				t.Errorf("Percent(%v) = %v, expected %v", tt.fraction, got, tt.percent)
			}
			if got := Fraction(tt.percent); math.Abs(got-tt.fraction) > 0.0001 {
				t.Errorf("Fraction(%v) = %v, expected %v", tt.percent, got, tt.fraction)
			}
		})
	}
}

// Test edge cases and boundary conditions
func TestRoundingEdgeCases(t *testing.T) {
	// Test very large numbers
	largeNum := 999999999.999
	result := Round(largeNum)
	expected := 1000000000.00
	if math.Abs(result-expected) > 0.001 {
		t.Errorf("Round of large number failed: got %v, expected %v", result, expected)
	}

	// Test very small numbers
	smallNum := 0.0001
	result = Round(smallNum)
	expected = 0.00
	if math.Abs(result-expected) > 0.001 {
		t.Errorf("Round of small number failed: got %v, expected %v", result, expected)
	}
}
