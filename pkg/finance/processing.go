// Package finance provides the rental income, tax and cashflow formulas
// applied to every simulated year.
package finance

import (
	"github.com/iwvelando/rental-forecast/pkg/constants"
	"github.com/iwvelando/rental-forecast/pkg/mathutil"
)

// Property holds the operating inputs of a rented unit. Rates are fractions.
type Property struct {
	SizeSqm                    float64
	MaintenancePerSqm          float64
	VacancyRate                float64
	ServiceChargeAnnual        float64
	DeductibleServiceChargePct float64
}

// TaxPolicy holds the income tax inputs. AnnualAmortization is the yearly
// depreciation deduction and is unrelated to loan principal.
type TaxPolicy struct {
	Rate               float64
	AnnualAmortization float64
}

// YearlyCashflow holds one year's income statement.
type YearlyCashflow struct {
	GrossRent                  float64
	VacancyLoss                float64
	Maintenance                float64
	DeductibleServiceCharge    float64
	NonDeductibleServiceCharge float64
	Interest                   float64
	Amortization               float64
	CashflowBeforeTaxes        float64
	TaxableIncome              float64
	Taxes                      float64
	CashflowAfterTaxes         float64
	PrincipalRepayment         float64
	NetCashflow                float64
}

// GrossRent returns the annual rent for a monthly rent per square metre.
func GrossRent(rentPerSqm, sizeSqm float64) float64 {
	return rentPerSqm * sizeSqm * constants.MonthsPerYear
}

// Maintenance returns the annual maintenance reserve.
func (p Property) Maintenance() float64 {
	return p.MaintenancePerSqm * p.SizeSqm
}

// SplitServiceCharge splits the annual service charge into its tax-deductible
// and non-deductible parts.
func (p Property) SplitServiceCharge() (deductible, nonDeductible float64) {
	deductible = p.ServiceChargeAnnual * p.DeductibleServiceChargePct
	return deductible, p.ServiceChargeAnnual - deductible
}

// CalculateTaxes applies the tax rate to the taxable income. Losses are not
// refunded, so the result is never negative.
func CalculateTaxes(taxableIncome, taxRate float64) float64 {
	return mathutil.Max(0, taxableIncome*taxRate)
}

// CashOnCashReturnPct returns the after-tax cashflow as a percentage of the
// invested equity, or 0 when no equity was invested.
func CashOnCashReturnPct(cashflowAfterTaxes, equity float64) float64 {
	return mathutil.Percent(mathutil.SafeRatio(cashflowAfterTaxes, equity))
}

// ComputeYear derives the income statement of one year from the rent and the
// loan installment paid that year.
func ComputeYear(property Property, tax TaxPolicy, rentPerSqm, interest, principal float64) YearlyCashflow {
	var y YearlyCashflow
	y.GrossRent = GrossRent(rentPerSqm, property.SizeSqm)
	y.DeductibleServiceCharge, y.NonDeductibleServiceCharge = property.SplitServiceCharge()
	y.VacancyLoss = y.GrossRent * property.VacancyRate
	y.Maintenance = property.Maintenance()
	y.Interest = interest
	y.Amortization = tax.AnnualAmortization
	y.PrincipalRepayment = principal

	y.CashflowBeforeTaxes = y.GrossRent - y.VacancyLoss - y.Maintenance - y.NonDeductibleServiceCharge - y.Interest

	// Vacancy and maintenance reduce cash but are not deducted here.
	y.TaxableIncome = y.GrossRent - y.DeductibleServiceCharge - y.Interest - y.Amortization
	y.Taxes = CalculateTaxes(y.TaxableIncome, tax.Rate)

	y.CashflowAfterTaxes = y.CashflowBeforeTaxes - y.Taxes
	y.NetCashflow = y.CashflowAfterTaxes - y.PrincipalRepayment
	return y
}
