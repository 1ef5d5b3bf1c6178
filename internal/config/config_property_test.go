package config

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"pgregory.net/rapid"
)

// TestProperty_ValidateAcceptsOnlyWellFormedConfigs checks that Validate
// rejects a config exactly when one of its fields is out of range, across
// randomly generated combinations of fields.
func TestProperty_ValidateAcceptsOnlyWellFormedConfigs(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		cfg := Default()
		cfg.MarketDataBatchSize = rapid.IntRange(-5, 20).Draw(t, "batchSize")
		cfg.AlgoStreamingBaseVisibleSize = rapid.Int64Range(-5, 100).Draw(t, "baseVisibleSize")
		cfg.GUIThrottleInterval = time.Duration(rapid.Int64Range(-5, 1000).Draw(t, "throttle")) * time.Millisecond
		numBooks := rapid.IntRange(0, 3).Draw(t, "numBooks")
		cfg.TradeBookingBooks = cfg.TradeBookingBooks[:numBooks]
		cfg.AlgoExecutionSpreadThreshold = decimal.NewFromInt(rapid.Int64Range(-5, 5).Draw(t, "threshold"))

		err := cfg.Validate()
		wantErr := cfg.MarketDataBatchSize <= 0 ||
			cfg.AlgoStreamingBaseVisibleSize <= 0 ||
			cfg.GUIThrottleInterval <= 0 ||
			len(cfg.TradeBookingBooks) == 0 ||
			cfg.AlgoExecutionSpreadThreshold.IsNegative()

		if wantErr && err == nil {
			t.Fatalf("expected Validate() to reject %+v", cfg)
		}
		if !wantErr && err != nil {
			t.Fatalf("Validate() rejected a well-formed config %+v: %v", cfg, err)
		}
	})
}
