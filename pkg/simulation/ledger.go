package simulation

import (
	"encoding/json"
	"fmt"
)

// YearRecord is one row of a scenario ledger.
type YearRecord struct {
	Year                       int     `json:"year"`
	GrossRent                  float64 `json:"grossRent"`
	InterestPayment            float64 `json:"interestPayment"`
	DeductibleServiceCharge    float64 `json:"deductibleServiceCharge"`
	NonDeductibleServiceCharge float64 `json:"nonDeductibleServiceCharge"`
	Amortization               float64 `json:"amortization"`
	CashflowBeforeTaxes        float64 `json:"cashflowBeforeTaxes"`
	Taxes                      float64 `json:"taxes"`
	CashflowAfterTaxes         float64 `json:"cashflowAfterTaxes"`
	PrincipalRepayment         float64 `json:"principalRepayment"`
	Maintenance                float64 `json:"maintenance"`
	VacancyLoss                float64 `json:"vacancyLoss"`
	NetCashflow                float64 `json:"netCashflow"`
	TotalEquity                float64 `json:"totalEquity"`
	RemainingDebt              float64 `json:"remainingDebt"`
	CashOnCashReturnPct        float64 `json:"cashOnCashReturnPct"`
}

// PayoffStatus distinguishes a repaid loan from one that never existed and
// one that is still outstanding when the simulation stops.
type PayoffStatus int

const (
	// PayoffUndetermined means debt remained after the last simulated year.
	PayoffUndetermined PayoffStatus = iota
	// PayoffRepaid means the debt reached zero; Payoff.Year is set.
	PayoffRepaid
	// PayoffNoDebt means equity covered the whole purchase cost.
	PayoffNoDebt
)

var payoffStatusNames = map[PayoffStatus]string{
	PayoffUndetermined: "undetermined",
	PayoffRepaid:       "repaid",
	PayoffNoDebt:       "no-debt",
}

func (s PayoffStatus) String() string {
	if name, ok := payoffStatusNames[s]; ok {
		return name
	}
	return fmt.Sprintf("PayoffStatus(%d)", int(s))
}

// MarshalText renders the status by name.
func (s PayoffStatus) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText parses a status name written by MarshalText.
func (s *PayoffStatus) UnmarshalText(text []byte) error {
	for status, name := range payoffStatusNames {
		if name == string(text) {
			*s = status
			return nil
		}
	}
	return fmt.Errorf("unknown payoff status %q", text)
}

// Payoff is the fractional year in which the debt was fully repaid.
type Payoff struct {
	Status PayoffStatus
	Year   float64
}

// Defined reports whether Year carries a payoff year.
func (p Payoff) Defined() bool {
	return p.Status == PayoffRepaid
}

// MarshalJSON omits the year unless the loan was repaid.
func (p Payoff) MarshalJSON() ([]byte, error) {
	out := struct {
		Status PayoffStatus `json:"status"`
		Year   *float64     `json:"year,omitempty"`
	}{Status: p.Status}
	if p.Defined() {
		year := p.Year
		out.Year = &year
	}
	return json.Marshal(out)
}

// Result is the ledger of one rent scenario. The ledger starts at year 1.
type Result struct {
	RentPerSqm float64      `json:"rentPerSqm"`
	Ledger     []YearRecord `json:"ledger"`
	Payoff     Payoff       `json:"payoff"`
}

// SimulatedYears is the number of ledger rows, i.e. the final year number.
func (r Result) SimulatedYears() int {
	return len(r.Ledger)
}
