package simulation

import "github.com/iwvelando/rental-forecast/pkg/loans"

// InterpolatePayoff finds the first year whose remaining debt is zero and
// interpolates the fractional payoff year within it. A ledger that never
// reaches zero, including an empty one, is PayoffUndetermined.
func InterpolatePayoff(ledger []YearRecord) Payoff {
	schedule := make([]loans.Installment, len(ledger))
	for i, record := range ledger {
		schedule[i] = loans.Installment{
			Year:               record.Year,
			Interest:           record.InterestPayment,
			Principal:          record.PrincipalRepayment,
			RemainingPrincipal: record.RemainingDebt,
		}
	}

	year, ok := loans.PayoffYear(schedule)
	if !ok {
		return Payoff{Status: PayoffUndetermined}
	}
	return Payoff{Status: PayoffRepaid, Year: year}
}
