package connector

import (
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/cshen/tsyflow/internal/domain"
)

func TestPricesSubscriber_ParsesValidLinesAndSkipsBadOnes(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	input := strings.Join([]string{
		"91282CFX4, 99-160, 1-000",
		"NOTREAL, 99-160, 1-000",
		"91282CFX4, garbage, 1-000",
		"91282CFY2, 100-000, 0-040",
	}, "\n")

	var got []domain.Price
	sub := NewPricesSubscriber(strings.NewReader(input), logger, func(p domain.Price) { got = append(got, p) })
	if err := sub.Subscribe(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(got) != 2 {
		t.Fatalf("expected 2 valid prices published, got %d", len(got))
	}
	if got[0].Instrument.Identifier != "91282CFX4" {
		t.Fatalf("unexpected first price: %+v", got[0])
	}
	if got[1].Instrument.Identifier != "91282CFY2" {
		t.Fatalf("unexpected second price: %+v", got[1])
	}
}
