package simulation

import (
	"github.com/iwvelando/rental-forecast/pkg/constants"
	"github.com/iwvelando/rental-forecast/pkg/finance"
	"github.com/iwvelando/rental-forecast/pkg/loans"
	"go.uber.org/zap"
)

// Simulator projects rent scenarios. It holds no state besides its logger and
// is safe for concurrent use.
type Simulator struct {
	logger    *zap.Logger
	generator *loans.AmortizationScheduleGenerator
}

// NewSimulator creates a simulator. A nil logger is replaced by a no-op logger.
func NewSimulator(logger *zap.Logger) *Simulator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Simulator{
		logger:    logger,
		generator: loans.NewAmortizationScheduleGenerator(logger),
	}
}

// Simulate projects a single rent scenario with a no-op logger.
func Simulate(params Parameters, rentPerSqm float64) Result {
	return NewSimulator(nil).Simulate(params, rentPerSqm)
}

// Simulate projects the scenario for a monthly rent per square metre. Years
// are simulated while debt remains, up to constants.MaxSimulationYears. When
// the loan amount is not positive the ledger is empty and the payoff status
// is PayoffNoDebt.
func (s *Simulator) Simulate(params Parameters, rentPerSqm float64) Result {
	schedule := s.generator.GenerateSchedule(params.Loan(), constants.MaxSimulationYears)
	property := params.Property()
	tax := params.TaxPolicy()

	result := Result{
		RentPerSqm: rentPerSqm,
		Ledger:     make([]YearRecord, 0, len(schedule)),
	}

	equityIncrease := 0.0
	for _, installment := range schedule {
		year := finance.ComputeYear(property, tax, rentPerSqm, installment.Interest, installment.Principal)
		equityIncrease += installment.Principal

		result.Ledger = append(result.Ledger, YearRecord{
			Year:                       installment.Year,
			GrossRent:                  year.GrossRent,
			InterestPayment:            year.Interest,
			DeductibleServiceCharge:    year.DeductibleServiceCharge,
			NonDeductibleServiceCharge: year.NonDeductibleServiceCharge,
			Amortization:               year.Amortization,
			CashflowBeforeTaxes:        year.CashflowBeforeTaxes,
			Taxes:                      year.Taxes,
			CashflowAfterTaxes:         year.CashflowAfterTaxes,
			PrincipalRepayment:         year.PrincipalRepayment,
			Maintenance:                year.Maintenance,
			VacancyLoss:                year.VacancyLoss,
			NetCashflow:                year.NetCashflow,
			TotalEquity:                params.Equity + equityIncrease,
			RemainingDebt:              installment.RemainingPrincipal,
			CashOnCashReturnPct:        finance.CashOnCashReturnPct(year.CashflowAfterTaxes, params.Equity),
		})
	}

	if params.LoanAmount() <= 0 {
		result.Payoff = Payoff{Status: PayoffNoDebt}
	} else {
		result.Payoff = InterpolatePayoff(result.Ledger)
	}

	s.logger.Debug("scenario simulated",
		zap.String("op", "simulation.Simulate"),
		zap.Float64("rentPerSqm", rentPerSqm),
		zap.Int("years", len(result.Ledger)),
		zap.Stringer("payoff", result.Payoff.Status),
	)

	return result
}

// Baseline returns the year-0 row: no income or payments, the initial
// equity and the full loan amount outstanding.
func Baseline(params Parameters) YearRecord {
	return YearRecord{
		TotalEquity:   params.Equity,
		RemainingDebt: params.LoanAmount(),
	}
}
