package simulation

import "fmt"

// Metric identifies a ledger column independently of how it is labelled.
type Metric string

// Ledger metrics.
const (
	MetricGrossRent                  Metric = "grossRent"
	MetricInterestPayment            Metric = "interestPayment"
	MetricDeductibleServiceCharge    Metric = "deductibleServiceCharge"
	MetricNonDeductibleServiceCharge Metric = "nonDeductibleServiceCharge"
	MetricAmortization               Metric = "amortization"
	MetricCashflowBeforeTaxes        Metric = "cashflowBeforeTaxes"
	MetricTaxes                      Metric = "taxes"
	MetricCashflowAfterTaxes         Metric = "cashflowAfterTaxes"
	MetricPrincipalRepayment         Metric = "principalRepayment"
	MetricMaintenance                Metric = "maintenance"
	MetricVacancyLoss                Metric = "vacancyLoss"
	MetricNetCashflow                Metric = "netCashflow"
	MetricTotalEquity                Metric = "totalEquity"
	MetricRemainingDebt              Metric = "remainingDebt"
	MetricCashOnCashReturn           Metric = "cashOnCashReturnPct"
)

var metricValues = map[Metric]func(YearRecord) float64{
	MetricGrossRent:                  func(r YearRecord) float64 { return r.GrossRent },
	MetricInterestPayment:            func(r YearRecord) float64 { return r.InterestPayment },
	MetricDeductibleServiceCharge:    func(r YearRecord) float64 { return r.DeductibleServiceCharge },
	MetricNonDeductibleServiceCharge: func(r YearRecord) float64 { return r.NonDeductibleServiceCharge },
	MetricAmortization:               func(r YearRecord) float64 { return r.Amortization },
	MetricCashflowBeforeTaxes:        func(r YearRecord) float64 { return r.CashflowBeforeTaxes },
	MetricTaxes:                      func(r YearRecord) float64 { return r.Taxes },
	MetricCashflowAfterTaxes:         func(r YearRecord) float64 { return r.CashflowAfterTaxes },
	MetricPrincipalRepayment:         func(r YearRecord) float64 { return r.PrincipalRepayment },
	MetricMaintenance:                func(r YearRecord) float64 { return r.Maintenance },
	MetricVacancyLoss:                func(r YearRecord) float64 { return r.VacancyLoss },
	MetricNetCashflow:                func(r YearRecord) float64 { return r.NetCashflow },
	MetricTotalEquity:                func(r YearRecord) float64 { return r.TotalEquity },
	MetricRemainingDebt:              func(r YearRecord) float64 { return r.RemainingDebt },
	MetricCashOnCashReturn:           func(r YearRecord) float64 { return r.CashOnCashReturnPct },
}

// LedgerMetrics lists the ledger columns in display order.
var LedgerMetrics = []Metric{
	MetricGrossRent,
	MetricInterestPayment,
	MetricDeductibleServiceCharge,
	MetricAmortization,
	MetricCashflowBeforeTaxes,
	MetricTaxes,
	MetricPrincipalRepayment,
	MetricMaintenance,
	MetricVacancyLoss,
	MetricNonDeductibleServiceCharge,
	MetricNetCashflow,
	MetricTotalEquity,
	MetricRemainingDebt,
	MetricCashOnCashReturn,
}

// ParseMetric validates a metric name.
func ParseMetric(name string) (Metric, error) {
	m := Metric(name)
	if _, ok := metricValues[m]; !ok {
		return "", fmt.Errorf("unknown ledger metric %q", name)
	}
	return m, nil
}

// Value returns the metric's value in a ledger row.
func (m Metric) Value(r YearRecord) float64 {
	if fn, ok := metricValues[m]; ok {
		return fn(r)
	}
	return 0
}

// IsPercentage reports whether the metric is a percentage rather than an amount.
func (m Metric) IsPercentage() bool {
	return m == MetricCashOnCashReturn
}
