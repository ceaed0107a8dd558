// Package loans provides loan repayment utilities for a fixed nominal principal
// installment schedule.
package loans

import (
	"fmt"

	"github.com/iwvelando/rental-forecast/pkg/mathutil"
	"go.uber.org/zap"
)

// Installment holds the values for one annual loan installment.
type Installment struct {
	Year               int
	Interest           float64
	Principal          float64
	RemainingPrincipal float64
}

// LoanConfig represents loan parameters. Rates are annual fractions.
type LoanConfig struct {
	Amount        float64
	InterestRate  float64
	RepaymentRate float64
}

// FixedInstallment returns the constant nominal principal repaid every year.
// Unlike an annuity the total payment shrinks as interest falls.
func (l LoanConfig) FixedInstallment() float64 {
	return l.Amount * l.RepaymentRate
}

// CalculateInterestPayment calculates the annual interest on the opening balance.
func CalculateInterestPayment(remainingPrincipal, annualInterestRate float64) float64 {
	return remainingPrincipal * annualInterestRate
}

// NextInstallment computes the installment for the year following an opening
// balance. The principal never exceeds the opening balance and the remaining
// principal is floored at zero. A non-positive balance yields an empty
// installment that carries the balance unchanged.
func NextInstallment(balance, annualInterestRate, fixedInstallment float64) Installment {
	if balance <= 0 {
		return Installment{RemainingPrincipal: balance}
	}
	principal := mathutil.Min(fixedInstallment, balance)
	return Installment{
		Interest:           CalculateInterestPayment(balance, annualInterestRate),
		Principal:          principal,
		RemainingPrincipal: mathutil.Max(0, balance-principal),
	}
}

// AmortizationScheduleGenerator provides utilities for generating loan amortization schedules
type AmortizationScheduleGenerator struct {
	logger *zap.Logger
}

// NewAmortizationScheduleGenerator creates a new generator instance
func NewAmortizationScheduleGenerator(logger *zap.Logger) *AmortizationScheduleGenerator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AmortizationScheduleGenerator{logger: logger}
}

// GenerateSchedule returns one installment per year, starting with year 1,
// until the loan is repaid or maxYears installments have been produced. A loan
// with a non-positive amount produces an empty schedule.
func (g *AmortizationScheduleGenerator) GenerateSchedule(loan LoanConfig, maxYears int) []Installment {
	var schedule []Installment
	fixed := loan.FixedInstallment()
	balance := loan.Amount

	for year := 1; balance > 0 && year <= maxYears; year++ {
		installment := NextInstallment(balance, loan.InterestRate, fixed)
		installment.Year = year
		schedule = append(schedule, installment)
		balance = installment.RemainingPrincipal
	}

	if balance > 0 && len(schedule) > 0 {
		g.logger.Debug(fmt.Sprintf("loan not repaid within %d years, %.2f outstanding", maxYears, balance),
			zap.String("op", "loans.GenerateSchedule"),
			zap.Float64("installment", fixed),
		)
	}

	return schedule
}

// PayoffYear returns the fractional year in which the remaining principal
// first reaches zero, interpolating linearly within that year on the
// assumption that principal is repaid evenly across it. The second return
// value is false when the schedule never reaches zero.
func PayoffYear(schedule []Installment) (float64, bool) {
	for i, installment := range schedule {
		if installment.RemainingPrincipal > 0 {
			continue
		}
		year := installment.Year
		if year == 1 {
			return 1.0, true
		}
		if i == 0 || installment.Principal <= 0 {
			return float64(year), true
		}
		previousBalance := schedule[i-1].RemainingPrincipal
		return float64(year-1) + previousBalance/installment.Principal, true
	}
	return 0, false
}
