// Package output provides utilities for formatting and displaying forecast results.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/iwvelando/rental-forecast/internal/forecast"
	"github.com/iwvelando/rental-forecast/pkg/constants"
	"github.com/iwvelando/rental-forecast/pkg/format"
	"github.com/iwvelando/rental-forecast/pkg/mathutil"
	"github.com/iwvelando/rental-forecast/pkg/simulation"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var metricLabels = map[simulation.Metric]string{
	simulation.MetricGrossRent:                  "Gross Rent",
	simulation.MetricInterestPayment:            "Interest Payment",
	simulation.MetricDeductibleServiceCharge:    "Deductible Service Charge",
	simulation.MetricNonDeductibleServiceCharge: "Non-Deductible Service Charge",
	simulation.MetricAmortization:               "Amortization",
	simulation.MetricCashflowBeforeTaxes:        "Cashflow Before Taxes",
	simulation.MetricTaxes:                      "Taxes",
	simulation.MetricCashflowAfterTaxes:         "Cashflow After Taxes",
	simulation.MetricPrincipalRepayment:         "Loan Repayment (Principal)",
	simulation.MetricMaintenance:                "Maintenance",
	simulation.MetricVacancyLoss:                "Vacancy Loss",
	simulation.MetricNetCashflow:                "Net Cashflow",
	simulation.MetricTotalEquity:                "Total Equity",
	simulation.MetricRemainingDebt:              "Remaining Debt",
	simulation.MetricCashOnCashReturn:           "Cash-on-Cash Return",
}

// Label returns the display label of a ledger metric, suffixed with its unit.
func Label(metric simulation.Metric, symbol string) string {
	name, ok := metricLabels[metric]
	if !ok {
		name = string(metric)
	}
	if metric.IsPercentage() {
		return name + " (%)"
	}
	if symbol == "" {
		return name
	}
	return fmt.Sprintf("%s (%s)", name, symbol)
}

// summaryHeaders are the summary table columns; {symbol} stands for the
// currency symbol.
var summaryHeaders = []string{
	"Rent {symbol}/m²",
	"Cumulative Net Cashflow ({symbol})",
	"Average Annual Net Cashflow ({symbol})",
	"Final Equity ({symbol})",
	"Total ROI on Equity (%)",
	"Average Annual ROI on Equity p.a. (%)",
	"Loan Paid Off Year",
}

func summaryHeader(symbol string) []string {
	headers := make([]string, len(summaryHeaders))
	for i, h := range summaryHeaders {
		headers[i] = strings.ReplaceAll(h, "{symbol}", symbol)
	}
	return headers
}

// PrettyFormat writes a human-readable rather than machine-readable report: a
// summary table over all scenarios followed by each scenario's ledger.
func PrettyFormat(w io.Writer, results []forecast.Forecast, symbol string) {
	p := message.NewPrinter(language.English)

	fmt.Fprintf(w, "=== Summary ===\n")
	fmt.Fprintf(w, "%s\n", strings.Join(summaryHeader(symbol), " | "))
	for _, result := range results {
		s := result.Summary
		_, _ = p.Fprintf(w, "%.2f | %s | %s | %s | %s | %s | %s\n",
			s.RentPerSqm,
			format.Currency(s.TotalNetCashflow, symbol),
			format.Currency(s.AvgNetCashflowPerYear, symbol),
			format.Currency(s.FinalEquity, symbol),
			format.Percent(s.TotalROIPct),
			format.Percent(s.AvgAnnualROIPct),
			s.PayoffLabel(),
		)
	}

	for _, result := range results {
		fmt.Fprintf(w, "\n--- Detailed scenario: %.2f %s/m² ---\n", result.Result.RentPerSqm, symbol)
		columns := []string{"Year"}
		for _, metric := range simulation.LedgerMetrics {
			columns = append(columns, Label(metric, symbol))
		}
		fmt.Fprintf(w, "%s\n", strings.Join(columns, " | "))

		for _, record := range result.Result.Ledger {
			cells := []string{fmt.Sprintf("%d", record.Year)}
			for _, metric := range simulation.LedgerMetrics {
				cells = append(cells, p.Sprintf("%.2f", metric.Value(record)))
			}
			fmt.Fprintf(w, "%s\n", strings.Join(cells, " | "))
		}

		fmt.Fprintf(w, "%s\n", cashflowSentence(result.Summary))
		fmt.Fprintf(w, "%s\n", payoffSentence(result))
	}
}

func cashflowSentence(s forecast.Summary) string {
	if s.FirstPositiveCashflowYear == 0 {
		return "The net cashflow will not be positive in this scenario."
	}
	return fmt.Sprintf("The net cashflow will be positive for the first time in year %d.", s.FirstPositiveCashflowYear)
}

func payoffSentence(result forecast.Forecast) string {
	switch result.Result.Payoff.Status {
	case simulation.PayoffRepaid:
		return fmt.Sprintf("The loan will be paid off in %.1f years.", result.Result.Payoff.Year)
	case simulation.PayoffNoDebt:
		return "No loan is needed in this scenario."
	default:
		return fmt.Sprintf("The loan will not be paid back within the next %d years.", result.Result.SimulatedYears())
	}
}

// CsvFormat writes the scenario summaries in comma-separated value format.
func CsvFormat(w io.Writer, results []forecast.Forecast) {
	_, _ = io.WriteString(w, CsvString(results))
}

// CsvString renders the scenario summaries in comma-separated value format.
func CsvString(results []forecast.Forecast) string {
	var builder strings.Builder
	builder.WriteString(`"scenario","rentPerSqm","totalNetCashflow","avgNetCashflowPerYear","finalEquity","totalRoiPct","avgAnnualRoiPct","payoffYear","firstPositiveCashflowYear"`)
	builder.WriteString("\n")
	for _, result := range results {
		s := result.Summary
		firstPositive := constants.PayoffNotApplicable
		if s.FirstPositiveCashflowYear > 0 {
			firstPositive = fmt.Sprintf("%d", s.FirstPositiveCashflowYear)
		}
		fmt.Fprintf(&builder, `"%s","%s","%s","%s","%s","%s","%s","%s","%s"`,
			result.Name,
			csvAmount(s.RentPerSqm),
			csvAmount(s.TotalNetCashflow),
			csvAmount(s.AvgNetCashflowPerYear),
			csvAmount(s.FinalEquity),
			csvAmount(s.TotalROIPct),
			csvAmount(s.AvgAnnualROIPct),
			s.PayoffLabel(),
			firstPositive,
		)
		builder.WriteString("\n")
	}
	return builder.String()
}

// LedgerCsv writes one scenario's ledger in comma-separated value format,
// one row per simulated year.
func LedgerCsv(w io.Writer, result forecast.Forecast) {
	_, _ = io.WriteString(w, LedgerCsvString(result))
}

// LedgerCsvString renders one scenario's ledger in comma-separated value
// format.
func LedgerCsvString(result forecast.Forecast) string {
	var builder strings.Builder
	builder.WriteString(`"year"`)
	for _, metric := range simulation.LedgerMetrics {
		fmt.Fprintf(&builder, `,"%s"`, metric)
	}
	builder.WriteString("\n")
	for _, record := range result.Result.Ledger {
		fmt.Fprintf(&builder, `"%d"`, record.Year)
		for _, metric := range simulation.LedgerMetrics {
			fmt.Fprintf(&builder, `,"%s"`, csvAmount(metric.Value(record)))
		}
		builder.WriteString("\n")
	}
	return builder.String()
}

// LedgerFileName names the export file of one scenario's ledger.
func LedgerFileName(result forecast.Forecast) string {
	return fmt.Sprintf("detailed_scenario_%.2f.csv", result.Result.RentPerSqm)
}

// csvAmount rounds to cents; adding 0 turns a negative zero into "0.00".
func csvAmount(v float64) string {
	return fmt.Sprintf("%.2f", mathutil.Round(v)+0)
}
