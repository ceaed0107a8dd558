package forecast

import (
	"fmt"

	"github.com/iwvelando/rental-forecast/pkg/constants"
	"github.com/iwvelando/rental-forecast/pkg/mathutil"
	"github.com/iwvelando/rental-forecast/pkg/simulation"
)

// Summary holds the aggregate figures of one rent scenario.
type Summary struct {
	RentPerSqm            float64           `json:"rentPerSqm"`
	TotalNetCashflow      float64           `json:"totalNetCashflow"`
	SimulatedYears        int               `json:"simulatedYears"`
	AvgNetCashflowPerYear float64           `json:"avgNetCashflowPerYear"`
	FinalEquity           float64           `json:"finalEquity"`
	TotalROIOnEquity      float64           `json:"totalRoiOnEquity"` // fraction
	TotalROIPct           float64           `json:"totalRoiPct"`
	AvgAnnualROIPct       float64           `json:"avgAnnualRoiPct"`
	Payoff                simulation.Payoff `json:"payoff"`
	// FirstPositiveCashflowYear is 0 when the net cashflow is never positive.
	FirstPositiveCashflowYear int `json:"firstPositiveCashflowYear"`
}

// Aggregate simulates every rent sequentially and summarizes each scenario
// in the order given.
func Aggregate(rents []float64, params simulation.Parameters) []Summary {
	summaries := make([]Summary, 0, len(rents))
	for _, rent := range rents {
		summaries = append(summaries, Summarize(simulation.Simulate(params, rent), params.Equity))
	}
	return summaries
}

// Summarize derives the aggregate figures of a simulated scenario. Ratios over
// equity or years are 0 when the denominator is not positive.
func Summarize(result simulation.Result, equity float64) Summary {
	s := Summary{
		RentPerSqm:     result.RentPerSqm,
		SimulatedYears: result.SimulatedYears(),
		FinalEquity:    equity,
		Payoff:         result.Payoff,
	}

	for _, record := range result.Ledger {
		s.TotalNetCashflow += record.NetCashflow
		if s.FirstPositiveCashflowYear == 0 && record.NetCashflow > 0 {
			s.FirstPositiveCashflowYear = record.Year
		}
	}
	if n := len(result.Ledger); n > 0 {
		s.FinalEquity = result.Ledger[n-1].TotalEquity
	}

	years := float64(s.SimulatedYears)
	s.AvgNetCashflowPerYear = mathutil.SafeRatio(s.TotalNetCashflow, years)
	s.TotalROIOnEquity = mathutil.SafeRatio(s.TotalNetCashflow+(s.FinalEquity-equity), equity)
	s.TotalROIPct = mathutil.Percent(s.TotalROIOnEquity)
	s.AvgAnnualROIPct = mathutil.SafeRatio(s.TotalROIPct, years)
	return s
}

// PayoffLabel renders the payoff year with one decimal, or N/A.
func (s Summary) PayoffLabel() string {
	if !s.Payoff.Defined() {
		return constants.PayoffNotApplicable
	}
	return fmt.Sprintf("%.1f", s.Payoff.Year)
}
