package engine

import (
	"testing"

	"github.com/cshen/tsyflow/internal/domain"
)

func TestTradeBookingService_DerivesTradeAndRotatesBooks(t *testing.T) {
	svc := NewTradeBookingService([]string{"TRSY1", "TRSY2", "TRSY3"})
	inst := mustInstrument(t, "91282CFX4")

	bidOrder := domain.ExecutionOrder{Instrument: inst, Side: domain.Bid, OrderID: "0", Price: mustDecimal(t, "99.5"), VisibleQuantity: 1000, HiddenQuantity: 0}
	svc.ProcessAdd(bidOrder)

	trade, ok := svc.GetData("TRADE-EXECUTE-0")
	if !ok {
		t.Fatal("expected a trade keyed by TRADE-EXECUTE-0")
	}
	if trade.Side != domain.Buy || trade.Book != "TRSY1" || trade.Quantity != 1000 {
		t.Fatalf("unexpected first trade: %+v", trade)
	}

	offerOrder := domain.ExecutionOrder{Instrument: inst, Side: domain.Offer, OrderID: "1", Price: mustDecimal(t, "99.5"), VisibleQuantity: 500, HiddenQuantity: 0}
	svc.ProcessAdd(offerOrder)
	second, ok := svc.GetData("TRADE-EXECUTE-1")
	if !ok {
		t.Fatal("expected a second trade")
	}
	if second.Side != domain.Sell || second.Book != "TRSY2" {
		t.Fatalf("unexpected second trade: %+v", second)
	}

	svc.ProcessAdd(domain.ExecutionOrder{Instrument: inst, Side: domain.Bid, OrderID: "2", VisibleQuantity: 1})
	svc.ProcessAdd(domain.ExecutionOrder{Instrument: inst, Side: domain.Bid, OrderID: "3", VisibleQuantity: 1})
	fourth, _ := svc.GetData("TRADE-EXECUTE-3")
	if fourth.Book != "TRSY1" {
		t.Fatalf("expected book rotation to wrap back to TRSY1 on the fourth trade, got %s", fourth.Book)
	}
}

func TestTradeBookingService_IngestStoresDirectTrades(t *testing.T) {
	svc := NewTradeBookingService([]string{"TRSY1", "TRSY2", "TRSY3"})
	inst := mustInstrument(t, "91282CFY2")

	trade := domain.Trade{Instrument: inst, TradeID: "T1", Price: mustDecimal(t, "99.5"), Book: "TRSY1", Quantity: 100, Side: domain.Buy}
	svc.Ingest(trade)

	stored, ok := svc.GetData("T1")
	if !ok || stored.Quantity != 100 {
		t.Fatalf("expected directly ingested trade to be stored, got %+v, ok=%v", stored, ok)
	}
}
