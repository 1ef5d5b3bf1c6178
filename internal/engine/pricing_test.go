package engine

import (
	"testing"

	"github.com/cshen/tsyflow/internal/domain"
	"github.com/cshen/tsyflow/internal/soa"
)

func TestPricingService_StoresLatestAndFansOut(t *testing.T) {
	svc := NewPricingService()

	var received []domain.Price
	svc.AddListener(soa.AddFunc[domain.Price](func(p domain.Price) { received = append(received, p) }))

	inst, err := domain.GetInstrument("91282CFX4")
	if err != nil {
		t.Fatal(err)
	}

	price := domain.Price{Instrument: inst, Mid: mustDecimal(t, "100"), BidOfferSpread: mustDecimal(t, "0.03125")}
	svc.OnMessage(price)

	stored, ok := svc.GetData("91282CFX4")
	if !ok || !stored.Mid.Equal(price.Mid) {
		t.Fatalf("expected stored price, got %+v, ok=%v", stored, ok)
	}
	if len(received) != 1 {
		t.Fatalf("expected 1 fan-out call, got %d", len(received))
	}
}
