package connector

import (
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/cshen/tsyflow/internal/domain"
)

func TestInquiriesSubscriber_ParsesValidLinesAndSkipsBadOnes(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	input := strings.Join([]string{
		"INQ1, 91282CFX4, BUY, 1000000, 99-160, RECEIVED",
		"INQ2, NOTREAL, BUY, 1000000, 99-160, RECEIVED",
		"INQ3, 91282CFX4, SIDEWAYS, 1000000, 99-160, RECEIVED",
		"INQ4, 91282CFY2, SELL, 500000, 100-000, QUOTED",
	}, "\n")

	var got []domain.Inquiry
	sub := NewInquiriesSubscriber(strings.NewReader(input), logger, func(i domain.Inquiry) error {
		got = append(got, i)
		return nil
	})
	if err := sub.Subscribe(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(got) != 2 {
		t.Fatalf("expected 2 valid inquiries received, got %d", len(got))
	}
	if got[0].InquiryID != "INQ1" || got[0].State != domain.Received || got[0].Side != domain.Buy {
		t.Fatalf("unexpected first inquiry: %+v", got[0])
	}
	if got[1].InquiryID != "INQ4" || got[1].State != domain.Quoted || got[1].Side != domain.Sell {
		t.Fatalf("unexpected second inquiry: %+v", got[1])
	}
}
