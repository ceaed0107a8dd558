package forecast

import "github.com/iwvelando/rental-forecast/pkg/simulation"

// Point is one (year, value) pair of a series.
type Point struct {
	Year  int     `json:"year"`
	Value float64 `json:"value"`
}

// Series is the per-year progression of one ledger metric in one scenario.
type Series struct {
	Name       string            `json:"name"`
	RentPerSqm float64           `json:"rentPerSqm"`
	Metric     simulation.Metric `json:"metric"`
	Points     []Point           `json:"points"`
}

// BuildSeries extracts a metric from every forecast's ledger, one series per
// scenario in forecast order.
func BuildSeries(forecasts []Forecast, metric simulation.Metric) []Series {
	series := make([]Series, 0, len(forecasts))
	for _, fc := range forecasts {
		points := make([]Point, 0, len(fc.Result.Ledger))
		for _, record := range fc.Result.Ledger {
			points = append(points, Point{Year: record.Year, Value: metric.Value(record)})
		}
		series = append(series, Series{
			Name:       fc.Name,
			RentPerSqm: fc.Result.RentPerSqm,
			Metric:     metric,
			Points:     points,
		})
	}
	return series
}
