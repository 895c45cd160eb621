// Package config carries the run configuration: entity volumes, per-entity
// bad-data probabilities, and output settings. A compiled-in default matches
// the standard dataset profile; a YAML file overrides any subset of it.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

type Config struct {
	NumCustomers int `yaml:"num_customers"`
	NumBranches  int `yaml:"num_branches"`
	NumEmployees int `yaml:"num_employees"`
	NumMerchants int `yaml:"num_merchants"`

	AccountsPerCustomerMin    int `yaml:"accounts_per_customer_min"`
	AccountsPerCustomerMax    int `yaml:"accounts_per_customer_max"`
	CardsPerCustomerMin       int `yaml:"cards_per_customer_min"`
	CardsPerCustomerMax       int `yaml:"cards_per_customer_max"`
	TransactionsPerAccountMin int `yaml:"transactions_per_account_min"`
	TransactionsPerAccountMax int `yaml:"transactions_per_account_max"`
	LoansPerCustomerMin       int `yaml:"loans_per_customer_min"`
	LoansPerCustomerMax       int `yaml:"loans_per_customer_max"`

	ExchangeRateDays      int     `yaml:"exchange_rate_days"`
	AuditLogsPerUserMin   int     `yaml:"audit_logs_per_user_min"`
	AuditLogsPerUserMax   int     `yaml:"audit_logs_per_user_max"`
	LoginsPerCustomerMin  int     `yaml:"logins_per_customer_min"`
	LoginsPerCustomerMax  int     `yaml:"logins_per_customer_max"`
	NumInvestmentAccounts int     `yaml:"num_investment_accounts"`
	FraudRate             float64 `yaml:"fraud_rate"`

	OutputFormats   []string `yaml:"output_formats"`
	OutputDirectory string   `yaml:"output_directory"`

	// Seed 0 means "derive from the clock"; any other value makes the run
	// reproducible.
	Seed int64 `yaml:"seed"`

	BadDataPercentage map[string]float64 `yaml:"bad_data_percentage"`
	BadDataTypes      map[string]bool    `yaml:"bad_data_types"`
}

// Default returns the standard dataset profile.
func Default() Config {
	return Config{
		NumCustomers: 1000,
		NumBranches:  50,
		NumEmployees: 200,
		NumMerchants: 500,

		AccountsPerCustomerMin:    1,
		AccountsPerCustomerMax:    3,
		CardsPerCustomerMin:       0,
		CardsPerCustomerMax:       2,
		TransactionsPerAccountMin: 5,
		TransactionsPerAccountMax: 50,
		LoansPerCustomerMin:       0,
		LoansPerCustomerMax:       2,

		ExchangeRateDays:      365,
		AuditLogsPerUserMin:   5,
		AuditLogsPerUserMax:   50,
		LoginsPerCustomerMin:  8,
		LoginsPerCustomerMax:  30,
		NumInvestmentAccounts: 0,
		FraudRate:             0.05,

		OutputFormats:   []string{"csv", "sql"},
		OutputDirectory: "output",

		BadDataPercentage: map[string]float64{
			"customers":      0.20,
			"accounts":       0.15,
			"cards":          0.25,
			"transactions":   0.10,
			"branches":       0.05,
			"employees":      0.08,
			"merchants":      0.12,
			"loans":          0.15,
			"loan_payments":  0.20,
			"audit_logs":     0.05,
			"exchange_rates": 0.03,
		},
		BadDataTypes: map[string]bool{
			"missing_data":      true,
			"invalid_format":    true,
			"out_of_range":      true,
			"inconsistent_data": true,
			"duplicate_data":    false,
			"malformed_data":    true,
		},
	}
}

// Load reads a YAML file over the defaults. Keys absent from the file keep
// their default values.
func Load(path string) (Config, error) {
	cfg := Default()

	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects negative volumes, inverted min/max ranges, and
// probabilities outside [0,1].
func (c Config) Validate() error {
	counts := map[string]int{
		"num_customers": c.NumCustomers,
		"num_branches":  c.NumBranches,
		"num_employees": c.NumEmployees,
		"num_merchants": c.NumMerchants,
	}
	for name, v := range counts {
		if v < 0 {
			return fmt.Errorf("%s must not be negative, got %d", name, v)
		}
	}

	ranges := []struct {
		name     string
		min, max int
	}{
		{"accounts_per_customer", c.AccountsPerCustomerMin, c.AccountsPerCustomerMax},
		{"cards_per_customer", c.CardsPerCustomerMin, c.CardsPerCustomerMax},
		{"transactions_per_account", c.TransactionsPerAccountMin, c.TransactionsPerAccountMax},
		{"loans_per_customer", c.LoansPerCustomerMin, c.LoansPerCustomerMax},
		{"audit_logs_per_user", c.AuditLogsPerUserMin, c.AuditLogsPerUserMax},
		{"logins_per_customer", c.LoginsPerCustomerMin, c.LoginsPerCustomerMax},
	}
	for _, r := range ranges {
		if r.min < 0 {
			return fmt.Errorf("%s_min must not be negative, got %d", r.name, r.min)
		}
		if r.min > r.max {
			return fmt.Errorf("%s range is inverted: min %d > max %d", r.name, r.min, r.max)
		}
	}

	if c.FraudRate < 0 || c.FraudRate > 1 {
		return fmt.Errorf("fraud_rate must be within [0,1], got %v", c.FraudRate)
	}
	for table, p := range c.BadDataPercentage {
		if p < 0 || p > 1 {
			return fmt.Errorf("bad_data_percentage for %s must be within [0,1], got %v", table, p)
		}
	}

	for _, format := range c.OutputFormats {
		if format != "csv" && format != "sql" {
			return fmt.Errorf("unsupported output format %q", format)
		}
	}
	return nil
}

// BadProbability returns the configured bad-data probability for a table,
// 0 when none is set.
func (c Config) BadProbability(table string) float64 {
	return c.BadDataPercentage[table]
}
