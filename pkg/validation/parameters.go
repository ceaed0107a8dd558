package validation

import (
	"fmt"

	"github.com/iwvelando/rental-forecast/pkg/mathutil"
	"github.com/iwvelando/rental-forecast/pkg/simulation"
)

// ValidateParameters returns warnings for inputs that simulate without error
// but produce degenerate projections. Nothing here rejects a configuration.
func ValidateParameters(p simulation.Parameters) []string {
	var warnings []string

	if p.LoanAmount() <= 0 {
		warnings = append(warnings, fmt.Sprintf(
			"equity (%.2f) covers the purchase cost (%.2f) - no loan will be simulated",
			p.Equity, p.PurchaseCost()))
	} else if p.LoanRepaymentRate <= 0 {
		warnings = append(warnings, fmt.Sprintf(
			"repayment rate is %.2f%% - the loan will not be repaid within the simulated years",
			mathutil.Percent(p.LoanRepaymentRate)))
	}

	if p.Equity <= 0 {
		warnings = append(warnings, "equity is not positive - cash-on-cash and ROI metrics will be reported as 0")
	}

	if p.SizeSqm <= 0 {
		warnings = append(warnings, fmt.Sprintf("property size is %.2f m² - gross rent will be 0", p.SizeSqm))
	}

	rates := []struct {
		name  string
		value float64
	}{
		{"loan interest rate", p.LoanInterestRate},
		{"loan repayment rate", p.LoanRepaymentRate},
		{"vacancy rate", p.VacancyRate},
		{"deductible service charge portion", p.DeductibleServiceChargePct},
		{"tax rate", p.TaxRate},
		{"amortization rate", p.AmortizationRate},
	}
	for _, rate := range rates {
		if rate.value < 0 || rate.value > 1 {
			warnings = append(warnings, fmt.Sprintf("%s of %.2f%% is outside 0-100%%",
				rate.name, mathutil.Percent(rate.value)))
		}
	}

	return warnings
}
