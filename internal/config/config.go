// Package config defines the data structures related to configuration and
// includes functions for loading the config and converting it into
// simulation parameters.
package config

import (
	"fmt"
	"io"
	"strings"

	"github.com/iwvelando/rental-forecast/pkg/constants"
	"github.com/iwvelando/rental-forecast/pkg/mathutil"
	"github.com/iwvelando/rental-forecast/pkg/simulation"
	"github.com/iwvelando/rental-forecast/pkg/validation"
	"github.com/spf13/viper"
)

// Configuration holds all configuration for rental-forecast. Rates are given
// in percent, e.g. 4 for 4%.
type Configuration struct {
	Property    Property      `yaml:"property"`
	Financing   Financing     `yaml:"financing"`
	Operating   Operating     `yaml:"operating"`
	Assumptions Assumptions   `yaml:"assumptions"`
	Logging     LoggingConfig `yaml:"logging,omitempty"`
	Output      OutputConfig  `yaml:"output,omitempty"`
}

// Property holds the purchase inputs.
type Property struct {
	PurchasePrice float64 `yaml:"purchasePrice"`
	PurchaseCosts float64 `yaml:"purchaseCosts"`
	SizeSqm       float64 `yaml:"sizeSqm"`
}

// Financing holds the equity and loan inputs.
type Financing struct {
	Equity        float64 `yaml:"equity"`
	InterestRate  float64 `yaml:"interestRate"`
	RepaymentRate float64 `yaml:"repaymentRate"`
}

// Operating holds the running costs of the property.
type Operating struct {
	MaintenancePerSqm          float64 `yaml:"maintenancePerSqm"`
	VacancyRate                float64 `yaml:"vacancyRate"`
	ServiceChargeAnnual        float64 `yaml:"serviceChargeAnnual"`
	DeductibleServiceChargePct float64 `yaml:"deductibleServiceChargePct"`
}

// Assumptions holds the rent scenarios and tax inputs. Rents is a
// comma-separated list of monthly rents per square metre.
type Assumptions struct {
	Rents            string  `yaml:"rents"`
	TaxRate          float64 `yaml:"taxRate"`
	AmortizationRate float64 `yaml:"amortizationRate"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format         string `yaml:"format,omitempty"` // pretty, csv
	CurrencySymbol string `yaml:"currencySymbol,omitempty"`
}

// defaults mirrors the values a new user sees before editing anything.
var defaults = map[string]interface{}{
	"property.purchasePrice":               100000.0,
	"property.purchaseCosts":               10000.0,
	"property.sizeSqm":                     40.0,
	"financing.equity":                     20000.0,
	"financing.interestRate":               4.0,
	"financing.repaymentRate":              3.0,
	"operating.maintenancePerSqm":          10.0,
	"operating.vacancyRate":                5.0,
	"operating.serviceChargeAnnual":        1200.0,
	"operating.deductibleServiceChargePct": 70.0,
	"assumptions.rents":                    "25,30,35",
	"assumptions.taxRate":                  30.0,
	"assumptions.amortizationRate":         2.0,
	"logging.level":                        "",
	"logging.format":                       "",
	"logging.outputFile":                   "",
	"output.format":                        "",
	"output.currencySymbol":                constants.DefaultCurrencySymbol,
}

func newViper() *viper.Viper {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	v.SetConfigType("yml")
	return v
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there. Keys missing from the file take their defaults and
// every key can be overridden from the environment, e.g.
// RENTAL_FORECAST_FINANCING_EQUITY=30000.
func LoadConfiguration(configPath string) (*Configuration, error) {
	v := newViper()
	v.SetConfigFile(configPath)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	return decode(v)
}

// LoadConfigurationFromReader loads a YAML-formatted configuration from r.
func LoadConfigurationFromReader(r io.Reader) (*Configuration, error) {
	v := newViper()

	if err := v.ReadConfig(r); err != nil {
		return nil, fmt.Errorf("error reading config data, %s", err)
	}

	return decode(v)
}

// Default returns the configuration used when no file is supplied.
func Default() *Configuration {
	conf, err := decode(newViper())
	if err != nil {
		// The defaults table decodes by construction.
		panic(err)
	}
	return conf
}

func decode(v *viper.Viper) (*Configuration, error) {
	var configuration Configuration
	if err := v.Unmarshal(&configuration); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}
	return &configuration, nil
}

// Parameters converts the configuration into simulation parameters, turning
// percentages into fractions.
func (c *Configuration) Parameters() simulation.Parameters {
	return simulation.Parameters{
		PurchasePrice:              c.Property.PurchasePrice,
		PurchaseCosts:              c.Property.PurchaseCosts,
		Equity:                     c.Financing.Equity,
		LoanInterestRate:           mathutil.Fraction(c.Financing.InterestRate),
		LoanRepaymentRate:          mathutil.Fraction(c.Financing.RepaymentRate),
		SizeSqm:                    c.Property.SizeSqm,
		MaintenancePerSqm:          c.Operating.MaintenancePerSqm,
		VacancyRate:                mathutil.Fraction(c.Operating.VacancyRate),
		ServiceChargeAnnual:        c.Operating.ServiceChargeAnnual,
		DeductibleServiceChargePct: mathutil.Fraction(c.Operating.DeductibleServiceChargePct),
		TaxRate:                    mathutil.Fraction(c.Assumptions.TaxRate),
		AmortizationRate:           mathutil.Fraction(c.Assumptions.AmortizationRate),
	}
}

// RentList parses the configured rent scenarios.
func (c *Configuration) RentList() ([]float64, error) {
	rents, err := validation.ParseRentList(c.Assumptions.Rents)
	if err != nil {
		return nil, fmt.Errorf("invalid rents %q: %w", c.Assumptions.Rents, err)
	}
	return rents, nil
}

// CurrencySymbol returns the configured symbol or the default one.
func (c *Configuration) CurrencySymbol() string {
	if c.Output.CurrencySymbol == "" {
		return constants.DefaultCurrencySymbol
	}
	return c.Output.CurrencySymbol
}

// ValidateConfiguration performs general validation of the configuration and returns warnings
func (c *Configuration) ValidateConfiguration() []string {
	warnings := validation.ValidateParameters(c.Parameters())

	rents, err := c.RentList()
	if err == nil && len(rents) == 0 {
		warnings = append(warnings, "no rent scenarios configured - nothing will be simulated")
	}

	return warnings
}
