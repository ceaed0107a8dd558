package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/iwvelando/rental-forecast/internal/config"
	"github.com/iwvelando/rental-forecast/internal/forecast"
	"github.com/iwvelando/rental-forecast/internal/server"
	"github.com/iwvelando/rental-forecast/pkg/constants"
	"github.com/iwvelando/rental-forecast/pkg/output"
	"github.com/iwvelando/rental-forecast/pkg/validation"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

type runOptions struct {
	configPath   string
	outputFormat string
	logLevel     string
	rents        string
	ledgerDir    string
}

type serveOptions struct {
	serverConfigPath string
	address          string
	logLevel         string
}

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "failed to load .env file: %v\n", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCommand(os.Stdout).ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand(out io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:           "rental-forecast",
		Short:         "Project cashflow, taxes and loan payoff of a rental property",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(out)

	runOpts := &runOptions{}
	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Simulate every rent scenario of a configuration and print the report",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runForecast(cmd, runOpts)
		},
	}
	runCmd.Flags().StringVar(&runOpts.configPath, "config", constants.DefaultConfigFile, "path to configuration file")
	runCmd.Flags().StringVar(&runOpts.outputFormat, "output-format", "", "type of output override: pretty, csv")
	runCmd.Flags().StringVar(&runOpts.logLevel, "log-level", "", "log level override (debug, info, warn, error)")
	runCmd.Flags().StringVar(&runOpts.rents, "rents", "", "comma-separated rents per square metre, overriding the configuration")
	runCmd.Flags().StringVar(&runOpts.ledgerDir, "ledger-dir", "", "directory to write one detailed ledger CSV per scenario")

	serveOpts := &serveOptions{}
	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the forecast over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve(cmd, serveOpts)
		},
	}
	serveCmd.Flags().StringVar(&serveOpts.serverConfigPath, "server-config", constants.DefaultServerConfigFile, "path to server configuration file")
	serveCmd.Flags().StringVar(&serveOpts.address, "address", "", "listen address override, e.g. :8080")
	serveCmd.Flags().StringVar(&serveOpts.logLevel, "log-level", "", "log level override (debug, info, warn, error)")

	root.AddCommand(runCmd, serveCmd)
	return root
}

// loadConfiguration reads the configuration file. A missing file at the
// default location falls back to the built-in defaults.
func loadConfiguration(path string, explicit bool) (*config.Configuration, error) {
	conf, err := config.LoadConfiguration(path)
	if err == nil {
		return conf, nil
	}
	if _, statErr := os.Stat(path); !explicit && errors.Is(statErr, fs.ErrNotExist) {
		return config.Default(), nil
	}
	return nil, fmt.Errorf("failed to load configuration at %s: %w", path, err)
}

func runForecast(cmd *cobra.Command, opts *runOptions) error {
	conf, err := loadConfiguration(opts.configPath, cmd.Flags().Changed("config"))
	if err != nil {
		return err
	}
	if opts.rents != "" {
		conf.Assumptions.Rents = opts.rents
	}

	logger, err := initializeLogger(conf.Logging, opts.logLevel)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	outputFormat := conf.Output.Format
	if opts.outputFormat != "" {
		outputFormat = opts.outputFormat
	}
	if outputFormat == "" {
		outputFormat = constants.OutputFormatPretty
	}
	if err := validation.ValidateOutputFormat(outputFormat); err != nil {
		return err
	}

	for _, warning := range conf.ValidateConfiguration() {
		logger.Warn("Configuration warning: "+warning,
			zap.String("op", "main.runForecast"),
		)
	}

	if rents, err := conf.RentList(); err == nil {
		logger.Debug("simulating rent scenarios",
			zap.String("op", "main.runForecast"),
			zap.String("rents", validation.FormatRentList(rents)),
		)
	}

	results, err := forecast.GetForecastWithContext(cmd.Context(), logger, *conf)
	if err != nil {
		return fmt.Errorf("failed to compute forecast: %w", err)
	}

	switch outputFormat {
	case constants.OutputFormatPretty:
		output.PrettyFormat(cmd.OutOrStdout(), results, conf.CurrencySymbol())
	case constants.OutputFormatCSV:
		output.CsvFormat(cmd.OutOrStdout(), results)
	}

	if opts.ledgerDir != "" {
		if err := writeLedgers(logger, opts.ledgerDir, results); err != nil {
			return err
		}
	}
	return nil
}

// writeLedgers exports each scenario's detailed ledger as its own CSV file.
func writeLedgers(logger *zap.Logger, dir string, results []forecast.Forecast) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create ledger directory %s: %w", dir, err)
	}
	for _, result := range results {
		path := filepath.Join(dir, output.LedgerFileName(result))
		if err := os.WriteFile(path, []byte(output.LedgerCsvString(result)), 0644); err != nil {
			return fmt.Errorf("failed to write ledger %s: %w", path, err)
		}
		logger.Info("ledger written",
			zap.String("op", "main.writeLedgers"),
			zap.String("scenario", result.Name),
			zap.String("path", path),
		)
	}
	return nil
}

func serve(cmd *cobra.Command, opts *serveOptions) error {
	cfg, err := server.LoadConfig(opts.serverConfigPath)
	if err != nil {
		return err
	}
	if opts.address != "" {
		cfg.Address = opts.address
	}

	logger, err := initializeLogger(cfg.Logging, opts.logLevel)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	return server.New(logger, cfg, version).Run(cmd.Context())
}
