package engine

import (
	"testing"

	"github.com/cshen/tsyflow/internal/domain"
	"github.com/shopspring/decimal"
)

func mustDecimal(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("decimal.NewFromString(%q): %v", s, err)
	}
	return d
}

func mustInstrument(t *testing.T, identifier string) domain.Instrument {
	t.Helper()
	inst, err := domain.GetInstrument(identifier)
	if err != nil {
		t.Fatalf("GetInstrument(%q): %v", identifier, err)
	}
	return inst
}
