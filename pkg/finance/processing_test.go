package finance

import (
	"math"
	"testing"
)

func referenceProperty() Property {
	return Property{
		SizeSqm:                    40,
		MaintenancePerSqm:          10,
		VacancyRate:                0.05,
		ServiceChargeAnnual:        1200,
		DeductibleServiceChargePct: 0.70,
	}
}

func TestGrossRent(t *testing.T) {
	tests := []struct {
		name       string
		rentPerSqm float64
		sizeSqm    float64
		expected   float64
	}{
		{"Reference flat", 25, 40, 12000},
		{"Zero rent", 0, 40, 0},
		{"Zero size", 25, 0, 0},
		{"Fractional rent", 12.5, 60, 9000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := GrossRent(tt.rentPerSqm, tt.sizeSqm)
			if math.Abs(result-tt.expected) > 0.01 {
				t.Errorf("GrossRent() = %.2f, expected %.2f", result, tt.expected)
			}
		})
	}
}

func TestSplitServiceCharge(t *testing.T) {
	deductible, nonDeductible := referenceProperty().SplitServiceCharge()
	if math.Abs(deductible-840) > 0.01 {
		t.Errorf("deductible = %.2f, expected 840.00", deductible)
	}
	if math.Abs(nonDeductible-360) > 0.01 {
		t.Errorf("non-deductible = %.2f, expected 360.00", nonDeductible)
	}
}

func TestCalculateTaxes(t *testing.T) {
	tests := []struct {
		name          string
		taxableIncome float64
		taxRate       float64
		expected      float64
	}{
		{"Positive income", 5560, 0.30, 1668},
		{"Loss gives no refund", -3000, 0.30, 0},
		{"Break even", 0, 0.30, 0},
		{"Zero rate", 10000, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CalculateTaxes(tt.taxableIncome, tt.taxRate)
			if math.Abs(result-tt.expected) > 0.01 {
				t.Errorf("CalculateTaxes() = %.2f, expected %.2f", result, tt.expected)
			}
		})
	}
}

func TestCashOnCashReturnPct(t *testing.T) {
	tests := []struct {
		name     string
		cashflow float64
		equity   float64
		expected float64
	}{
		{"Positive return", 4372, 20000, 21.86},
		{"Negative return", -1000, 20000, -5},
		{"Zero equity", 4372, 0, 0},
		{"Negative equity", 4372, -100, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CashOnCashReturnPct(tt.cashflow, tt.equity)
			if math.IsNaN(result) {
				t.Fatalf("CashOnCashReturnPct() returned NaN")
			}
			if math.Abs(result-tt.expected) > 0.01 {
				t.Errorf("CashOnCashReturnPct() = %.2f, expected %.2f", result, tt.expected)
			}
		})
	}
}

func TestComputeYear(t *testing.T) {
	tax := TaxPolicy{Rate: 0.30, AnnualAmortization: 2000}

	y := ComputeYear(referenceProperty(), tax, 25, 3600, 2700)

	expected := map[string][2]float64{
		"GrossRent":                  {y.GrossRent, 12000},
		"VacancyLoss":                {y.VacancyLoss, 600},
		"Maintenance":                {y.Maintenance, 400},
		"DeductibleServiceCharge":    {y.DeductibleServiceCharge, 840},
		"NonDeductibleServiceCharge": {y.NonDeductibleServiceCharge, 360},
		"Interest":                   {y.Interest, 3600},
		"Amortization":               {y.Amortization, 2000},
		// 12000 - 600 - 400 - 360 - 3600
		"CashflowBeforeTaxes": {y.CashflowBeforeTaxes, 7040},
		// 12000 - 840 - 3600 - 2000
		"TaxableIncome":      {y.TaxableIncome, 5560},
		"Taxes":              {y.Taxes, 1668},
		"CashflowAfterTaxes": {y.CashflowAfterTaxes, 5372},
		"PrincipalRepayment": {y.PrincipalRepayment, 2700},
		"NetCashflow":        {y.NetCashflow, 2672},
	}

	for field, values := range expected {
		if math.Abs(values[0]-values[1]) > 0.01 {
			t.Errorf("%s = %.2f, expected %.2f", field, values[0], values[1])
		}
	}
}

func TestComputeYearTaxLoss(t *testing.T) {
	tax := TaxPolicy{Rate: 0.30, AnnualAmortization: 2000}

	y := ComputeYear(referenceProperty(), tax, 5, 3600, 2700)

	if y.TaxableIncome >= 0 {
		t.Fatalf("expected a taxable loss, got %.2f", y.TaxableIncome)
	}
	if y.Taxes != 0 {
		t.Errorf("expected no taxes on a loss, got %.2f", y.Taxes)
	}
	if math.Abs(y.CashflowAfterTaxes-y.CashflowBeforeTaxes) > 0.0001 {
		t.Errorf("cashflow after taxes %.2f should equal cashflow before taxes %.2f",
			y.CashflowAfterTaxes, y.CashflowBeforeTaxes)
	}
}
