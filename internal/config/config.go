// Package config holds the static, validated runtime configuration for the
// pipeline. The driver takes no flags and reads no environment variables
// (see system interfaces); Load exists so every constant the pipeline
// depends on is gathered, named, and validated in one place instead of
// scattered as magic numbers across processors.
package config

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Config holds every tunable constant the pipeline's processors need.
type Config struct {
	// Input files, read once to EOF from the working directory.
	PricesFile     string
	TradesFile     string
	MarketDataFile string
	InquiriesFile  string

	// Output files, opened once in append mode and held open for the
	// life of the run.
	PositionsFile    string
	RiskFile         string
	ExecutionsFile   string
	StreamingFile    string
	AllInquiriesFile string
	GUIFile          string

	// MarketDataBatchSize is the number of CSV lines that accumulate into
	// one order book update.
	MarketDataBatchSize int

	// AlgoExecutionSpreadThreshold is the maximum offer-minus-bid spread
	// at which the algo-execution processor crosses the market.
	AlgoExecutionSpreadThreshold decimal.Decimal

	// AlgoStreamingBaseVisibleSize is the smaller of the two alternating
	// visible sizes the algo-streaming processor emits; the larger size
	// is double it, and hidden size is always double the visible size.
	AlgoStreamingBaseVisibleSize int64

	// TradeBookingBooks is the rotation of books that algo-execution-
	// derived trades cycle through.
	TradeBookingBooks []string

	// GUIThrottleInterval is the minimum wall-clock gap between two
	// consecutive GUI publications.
	GUIThrottleInterval time.Duration
}

// Default returns the pipeline's configuration. All values are fixed by
// the system design; there is nothing to override from the environment.
func Default() *Config {
	return &Config{
		PricesFile:     "prices.txt",
		TradesFile:     "trades.txt",
		MarketDataFile: "marketdata.txt",
		InquiriesFile:  "inquiries.txt",

		PositionsFile:    "positions.txt",
		RiskFile:         "risk.txt",
		ExecutionsFile:   "executions.txt",
		StreamingFile:    "streaming.txt",
		AllInquiriesFile: "allinquiries.txt",
		GUIFile:          "gui.txt",

		MarketDataBatchSize:          10,
		AlgoExecutionSpreadThreshold: decimal.NewFromInt(1).Div(decimal.NewFromInt(128)),
		AlgoStreamingBaseVisibleSize: 10_000_000,
		TradeBookingBooks:            []string{"TRSY1", "TRSY2", "TRSY3"},
		GUIThrottleInterval:          300 * time.Millisecond,
	}
}

// Validate checks that the configuration is internally consistent. Load
// always returns a validated Config; this is exposed separately so tests
// can construct a modified Config and check it the same way the pipeline
// does.
func (c *Config) Validate() error {
	if c.MarketDataBatchSize <= 0 {
		return fmt.Errorf("market data batch size must be positive, got %d", c.MarketDataBatchSize)
	}
	if c.AlgoExecutionSpreadThreshold.IsNegative() {
		return fmt.Errorf("algo execution spread threshold must not be negative, got %s", c.AlgoExecutionSpreadThreshold)
	}
	if c.AlgoStreamingBaseVisibleSize <= 0 {
		return fmt.Errorf("algo streaming base visible size must be positive, got %d", c.AlgoStreamingBaseVisibleSize)
	}
	if len(c.TradeBookingBooks) == 0 {
		return fmt.Errorf("trade booking books must not be empty")
	}
	if c.GUIThrottleInterval <= 0 {
		return fmt.Errorf("gui throttle interval must be positive, got %s", c.GUIThrottleInterval)
	}
	return nil
}

// Load returns the pipeline's validated default configuration.
func Load() (*Config, error) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
