package config

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Config holds the reconciliation tunables.
type Config struct {
	// DefaultExchangeRate is the LBP/USD rate used when an event carries none.
	DefaultExchangeRate decimal.Decimal
	// RateSanityFloor separates plausible exchange rates from zero or
	// uninitialized data.
	RateSanityFloor decimal.Decimal
	// DebtEpsilon is the tolerance for the client debt mismatch check.
	DebtEpsilon decimal.Decimal
	// AmountEntryThreshold flags amounts above it as probable currency-unit
	// entry errors.
	AmountEntryThreshold decimal.Decimal
}

// LoadConfig loads configuration from environment variables and a .env file if
// present. Invalid values degrade to the defaults with a warning.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("DEFAULT_EXCHANGE_RATE", "89500")
	viper.SetDefault("RATE_SANITY_FLOOR", "100")
	viper.SetDefault("DEBT_EPSILON", "0.01")
	viper.SetDefault("AMOUNT_ENTRY_THRESHOLD", "100000000")

	viper.AutomaticEnv()

	cfg := &Config{
		DefaultExchangeRate:  loadDecimal("DEFAULT_EXCHANGE_RATE", "89500"),
		RateSanityFloor:      loadDecimal("RATE_SANITY_FLOOR", "100"),
		DebtEpsilon:          loadDecimal("DEBT_EPSILON", "0.01"),
		AmountEntryThreshold: loadDecimal("AMOUNT_ENTRY_THRESHOLD", "100000000"),
	}
	return cfg, nil
}

func loadDecimal(key, fallback string) decimal.Decimal {
	raw := viper.GetString(key)
	d, err := decimal.NewFromString(raw)
	if err != nil || !d.IsPositive() {
		log.Printf("Warning: Invalid value for %s ('%s'). Defaulting to %s.\n", key, raw, fallback)
		d, _ = decimal.NewFromString(fallback)
	}
	return d
}
