// Package simulation runs the year-by-year cashflow, tax and amortization
// projection of a leveraged rental property for a single rent assumption.
package simulation

import (
	"github.com/iwvelando/rental-forecast/pkg/finance"
	"github.com/iwvelando/rental-forecast/pkg/loans"
)

// Parameters holds the property, financing and tax inputs shared by every
// rent scenario of a run. Rates are annual fractions, e.g. 0.04 for 4%.
type Parameters struct {
	PurchasePrice              float64 `json:"purchasePrice"`
	PurchaseCosts              float64 `json:"purchaseCosts"`
	Equity                     float64 `json:"equity"`
	LoanInterestRate           float64 `json:"loanInterestRate"`
	LoanRepaymentRate          float64 `json:"loanRepaymentRate"`
	SizeSqm                    float64 `json:"sizeSqm"`
	MaintenancePerSqm          float64 `json:"maintenancePerSqm"`
	VacancyRate                float64 `json:"vacancyRate"`
	ServiceChargeAnnual        float64 `json:"serviceChargeAnnual"`
	DeductibleServiceChargePct float64 `json:"deductibleServiceChargePct"`
	TaxRate                    float64 `json:"taxRate"`
	AmortizationRate           float64 `json:"amortizationRate"`
}

// PurchaseCost is the purchase price plus incidental purchase costs.
func (p Parameters) PurchaseCost() float64 {
	return p.PurchasePrice + p.PurchaseCosts
}

// LoanAmount is the financed part of the purchase cost. A value <= 0 means
// the purchase needs no debt.
func (p Parameters) LoanAmount() float64 {
	return p.PurchaseCost() - p.Equity
}

// AnnualAmortizationValue is the constant yearly depreciation deduction.
func (p Parameters) AnnualAmortizationValue() float64 {
	return p.PurchasePrice * p.AmortizationRate
}

// AnnualFixedRepaymentAmount is the constant nominal principal installment.
func (p Parameters) AnnualFixedRepaymentAmount() float64 {
	return p.Loan().FixedInstallment()
}

// Loan returns the financing inputs.
func (p Parameters) Loan() loans.LoanConfig {
	return loans.LoanConfig{
		Amount:        p.LoanAmount(),
		InterestRate:  p.LoanInterestRate,
		RepaymentRate: p.LoanRepaymentRate,
	}
}

// Property returns the operating inputs.
func (p Parameters) Property() finance.Property {
	return finance.Property{
		SizeSqm:                    p.SizeSqm,
		MaintenancePerSqm:          p.MaintenancePerSqm,
		VacancyRate:                p.VacancyRate,
		ServiceChargeAnnual:        p.ServiceChargeAnnual,
		DeductibleServiceChargePct: p.DeductibleServiceChargePct,
	}
}

// TaxPolicy returns the income tax inputs.
func (p Parameters) TaxPolicy() finance.TaxPolicy {
	return finance.TaxPolicy{
		Rate:               p.TaxRate,
		AnnualAmortization: p.AnnualAmortizationValue(),
	}
}
