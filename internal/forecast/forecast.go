// Package forecast defines the data structures related to a given forecast and
// includes functions for computing the forecasts of every rent scenario.
package forecast

import (
	"context"
	"fmt"
	"strconv"

	"github.com/iwvelando/rental-forecast/internal/config"
	"github.com/iwvelando/rental-forecast/pkg/constants"
	"github.com/iwvelando/rental-forecast/pkg/simulation"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Forecast holds the ledger and summary of one rent scenario.
type Forecast struct {
	Name    string            `json:"name"`
	Result  simulation.Result `json:"result"`
	Summary Summary           `json:"summary"`
}

// GetForecast simulates every rent scenario of the configuration.
func GetForecast(logger *zap.Logger, conf config.Configuration) ([]Forecast, error) {
	return GetForecastWithContext(context.Background(), logger, conf)
}

// GetForecastWithContext simulates every rent scenario of the configuration,
// stopping early if ctx is cancelled.
func GetForecastWithContext(ctx context.Context, logger *zap.Logger, conf config.Configuration) ([]Forecast, error) {
	rents, err := conf.RentList()
	if err != nil {
		return nil, err
	}
	return Run(ctx, logger, conf.Parameters(), rents, constants.DefaultSimulationWorkers)
}

// Run simulates one scenario per rent, at most workers at a time, and
// returns the forecasts in the order of rents. Duplicate rents are simulated
// independently.
func Run(ctx context.Context, logger *zap.Logger, params simulation.Parameters, rents []float64, workers int) ([]Forecast, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if workers < 1 {
		workers = 1
	}

	simulator := simulation.NewSimulator(logger)
	results := make([]Forecast, len(rents))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, rent := range rents {
		i, rent := i, rent
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return fmt.Errorf("scenario %s not simulated: %w", ScenarioName(rent), err)
			}
			result := simulator.Simulate(params, rent)
			results[i] = Forecast{
				Name:    ScenarioName(rent),
				Result:  result,
				Summary: Summarize(result, params.Equity),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	logger.Debug(fmt.Sprintf("simulated %d rent scenarios", len(results)),
		zap.String("op", "forecast.Run"),
		zap.Float64("loanAmount", params.LoanAmount()),
	)

	return results, nil
}

// ScenarioName labels a scenario by its rent per square metre.
func ScenarioName(rentPerSqm float64) string {
	return strconv.FormatFloat(rentPerSqm, 'f', -1, 64)
}
