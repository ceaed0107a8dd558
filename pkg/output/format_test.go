package output

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/iwvelando/rental-forecast/internal/config"
	"github.com/iwvelando/rental-forecast/internal/forecast"
	"github.com/iwvelando/rental-forecast/pkg/simulation"
)

func defaultForecasts(t *testing.T, rents ...float64) []forecast.Forecast {
	t.Helper()
	results, err := forecast.Run(context.Background(), nil, config.Default().Parameters(), rents, 2)
	if err != nil {
		t.Fatalf("forecast.Run failed: %v", err)
	}
	return results
}

func TestLabel(t *testing.T) {
	tests := []struct {
		metric   simulation.Metric
		symbol   string
		expected string
	}{
		{simulation.MetricNetCashflow, "€", "Net Cashflow (€)"},
		{simulation.MetricPrincipalRepayment, "$", "Loan Repayment (Principal) ($)"},
		{simulation.MetricCashOnCashReturn, "€", "Cash-on-Cash Return (%)"},
		{simulation.MetricTaxes, "", "Taxes"},
		{simulation.Metric("unknown"), "€", "unknown (€)"},
	}

	for _, tt := range tests {
		t.Run(string(tt.metric), func(t *testing.T) {
			if got := Label(tt.metric, tt.symbol); got != tt.expected {
				t.Errorf("Label(%s, %q) = %q, expected %q", tt.metric, tt.symbol, got, tt.expected)
			}
		})
	}

	for _, metric := range simulation.LedgerMetrics {
		if _, ok := metricLabels[metric]; !ok {
			t.Errorf("ledger metric %s has no display label", metric)
		}
	}
}

func TestPrettyFormat(t *testing.T) {
	var buf bytes.Buffer
	PrettyFormat(&buf, defaultForecasts(t, 25, 10), "€")
	output := buf.String()

	expected := []string{
		"=== Summary ===",
		"Rent €/m² | Cumulative Net Cashflow (€)",
		"Loan Paid Off Year",
		"€135,059.60",
		"-€28,044.40",
		"€110,000.00",
		"1,125.30%",
		"--- Detailed scenario: 25.00 €/m² ---",
		"--- Detailed scenario: 10.00 €/m² ---",
		"Year | Gross Rent (€) | Interest Payment (€)",
		"Cash-on-Cash Return (%)",
		"1 | 12,000.00 | 3,600.00 | 840.00",
		"The net cashflow will be positive for the first time in year 1.",
		"The net cashflow will be positive for the first time in year 28.",
		"The loan will be paid off in 34.0 years.",
	}
	for _, element := range expected {
		if !strings.Contains(output, element) {
			t.Errorf("PrettyFormat output missing %q", element)
		}
	}

	if strings.Index(output, "25.00 €/m²") > strings.Index(output, "10.00 €/m²") {
		t.Error("PrettyFormat should keep the scenario order")
	}
}

func TestPrettyFormatPayoffSentences(t *testing.T) {
	params := config.Default().Parameters()

	noDebt := params
	noDebt.Equity = noDebt.PurchaseCost()
	stuck := params
	stuck.LoanRepaymentRate = 0

	tests := []struct {
		name     string
		params   simulation.Parameters
		rent     float64
		expected []string
	}{
		{
			name:   "No debt",
			params: noDebt,
			rent:   25,
			expected: []string{
				"No loan is needed in this scenario.",
				"| N/A",
			},
		},
		{
			name:   "Never repaid",
			params: stuck,
			rent:   1,
			expected: []string{
				"The loan will not be paid back within the next 100 years.",
				"The net cashflow will not be positive in this scenario.",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results, err := forecast.Run(context.Background(), nil, tt.params, []float64{tt.rent}, 1)
			if err != nil {
				t.Fatalf("forecast.Run failed: %v", err)
			}
			var buf bytes.Buffer
			PrettyFormat(&buf, results, "€")
			for _, element := range tt.expected {
				if !strings.Contains(buf.String(), element) {
					t.Errorf("PrettyFormat output missing %q", element)
				}
			}
		})
	}
}

func TestPrettyFormatEmptyResults(t *testing.T) {
	defer func() {
		if r := recover(); r != nil {
			t.Errorf("PrettyFormat panicked with empty results: %v", r)
		}
	}()

	var buf bytes.Buffer
	PrettyFormat(&buf, []forecast.Forecast{}, "€")
	if !strings.Contains(buf.String(), "=== Summary ===") {
		t.Error("PrettyFormat should still print the summary header")
	}
}

func TestCsvFormat(t *testing.T) {
	var buf bytes.Buffer
	CsvFormat(&buf, defaultForecasts(t, 25, 10))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("CsvFormat should produce 3 lines (header + 2 scenarios), got %d", len(lines))
	}

	for _, element := range []string{`"scenario"`, `"totalNetCashflow"`, `"payoffYear"`, `"firstPositiveCashflowYear"`} {
		if !strings.Contains(lines[0], element) {
			t.Errorf("CsvFormat header missing: %s", element)
		}
	}

	expectedRows := []string{
		`"25","25.00","135059.60","3972.34","110000.00","1125.30","33.10","34.0","1"`,
		`"10","10.00","-28044.40","-824.84","110000.00","309.78","9.11","34.0","28"`,
	}
	for i, row := range expectedRows {
		if lines[i+1] != row {
			t.Errorf("CsvFormat row %d = %s, expected %s", i+1, lines[i+1], row)
		}
	}
}

func TestCsvStringMatchesCsvFormat(t *testing.T) {
	results := defaultForecasts(t, 30, 35)

	var buf bytes.Buffer
	CsvFormat(&buf, results)

	if CsvString(results) != buf.String() {
		t.Fatalf("CsvString and CsvFormat output mismatch\nCsvString:\n%s\nCsvFormat:\n%s", CsvString(results), buf.String())
	}
}

func TestLedgerCsv(t *testing.T) {
	results := defaultForecasts(t, 25)

	var buf bytes.Buffer
	LedgerCsv(&buf, results[0])

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 35 {
		t.Fatalf("LedgerCsv should produce 35 lines (header + 34 years), got %d", len(lines))
	}
	if !strings.HasPrefix(lines[0], `"year","grossRent","interestPayment"`) {
		t.Errorf("LedgerCsv header = %s", lines[0])
	}
	if !strings.HasPrefix(lines[1], `"1","12000.00","3600.00","840.00","2000.00","7040.00","1668.00","2700.00"`) {
		t.Errorf("LedgerCsv first row = %s", lines[1])
	}
	if !strings.HasSuffix(lines[1], `,"22700.00","87300.00","26.86"`) {
		t.Errorf("LedgerCsv first row should end with equity, debt and return: %s", lines[1])
	}
	if !strings.HasPrefix(lines[34], `"34",`) {
		t.Errorf("LedgerCsv last row = %s", lines[34])
	}

	if LedgerCsvString(results[0]) != buf.String() {
		t.Error("LedgerCsvString and LedgerCsv output mismatch")
	}
	if name := LedgerFileName(results[0]); name != "detailed_scenario_25.00.csv" {
		t.Errorf("LedgerFileName() = %s", name)
	}
}

func TestCsvAmountsRoundToCents(t *testing.T) {
	results := []forecast.Forecast{{
		Name: "tiny",
		Summary: forecast.Summary{
			RentPerSqm:            12.346,
			TotalNetCashflow:      -0.001,
			AvgNetCashflowPerYear: 1.005001,
			FinalEquity:           20000,
		},
	}}

	lines := strings.Split(strings.TrimSpace(CsvString(results)), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected header and 1 row, got %d lines", len(lines))
	}
	expected := `"tiny","12.35","0.00","1.01","20000.00","0.00","0.00","N/A","N/A"`
	if lines[1] != expected {
		t.Errorf("CsvString row = %s, expected %s", lines[1], expected)
	}
}
