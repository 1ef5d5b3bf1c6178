package connector

import (
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/cshen/tsyflow/internal/domain"
)

func TestTradesSubscriber_ParsesValidLinesAndSkipsBadOnes(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	input := strings.Join([]string{
		"91282CFX4, T1, 99-160, TRSY1, 1000000, BUY",
		"91282CFX4, T2, 99-160, TRSY1, notanumber, BUY",
		"91282CFX4, T3, 99-160, TRSY1, 1000, SIDEWAYS",
		"91282CFY2, T4, 100-000, TRSY2, 500000, SELL",
	}, "\n")

	var got []domain.Trade
	sub := NewTradesSubscriber(strings.NewReader(input), logger, func(tr domain.Trade) { got = append(got, tr) })
	if err := sub.Subscribe(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(got) != 2 {
		t.Fatalf("expected 2 valid trades published, got %d", len(got))
	}
	if got[0].TradeID != "T1" || got[0].Side != domain.Buy || got[0].Quantity != 1_000_000 {
		t.Fatalf("unexpected first trade: %+v", got[0])
	}
	if got[1].TradeID != "T4" || got[1].Side != domain.Sell || got[1].Book != "TRSY2" {
		t.Fatalf("unexpected second trade: %+v", got[1])
	}
}
