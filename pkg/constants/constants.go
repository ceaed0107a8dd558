// Package constants provides shared constants for the rental-forecast application.
package constants

// Simulation constants
const (
	// MonthsPerYear converts monthly rent per square metre into annual rent.
	MonthsPerYear = 12

	// MaxSimulationYears bounds the annual loop when the debt never shrinks,
	// e.g. with a repayment rate of 0.
	MaxSimulationYears = 100

	// DecimalPrecision is the precision for currency rounding (2 decimal places)
	DecimalPrecision = 100

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0

	// CurrencyTolerance is the tolerance for currency comparisons (1 cent)
	CurrencyTolerance = 0.01
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"

	// DefaultCurrencySymbol is printed next to amounts; it has no effect on any
	// computation.
	DefaultCurrencySymbol = "€"

	// PayoffNotApplicable is shown when a scenario has no payoff year.
	PayoffNotApplicable = "N/A"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// DefaultServerConfigFile is the default server configuration file name
	DefaultServerConfigFile = "server-config.yaml"

	// EnvPrefix namespaces environment overrides, e.g. RENTAL_FORECAST_FINANCING_EQUITY.
	EnvPrefix = "RENTAL_FORECAST"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address for the API
	DefaultServerAddress = ":8080"

	// DefaultMaxUploadSizeBytes is the default maximum upload size for YAML configs (256 KB)
	DefaultMaxUploadSizeBytes int64 = 256 * 1024

	// DefaultShutdownTimeoutSeconds bounds graceful shutdown of the HTTP server.
	DefaultShutdownTimeoutSeconds = 10

	// DefaultSimulationWorkers caps how many rent scenarios are simulated at once.
	DefaultSimulationWorkers = 4
)
