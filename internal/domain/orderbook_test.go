package domain

import (
	"testing"

	"github.com/shopspring/decimal"
)

func mustPrice(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	p, err := ParseFractionalPrice(s)
	if err != nil {
		t.Fatalf("ParseFractionalPrice(%q): %v", s, err)
	}
	return p
}

func TestBestBidOffer_PicksExtremesAndBreaksTiesByFirstOccurrence(t *testing.T) {
	inst, err := GetInstrument("91282CFX4")
	if err != nil {
		t.Fatal(err)
	}

	p99160 := mustPrice(t, "99-160")
	p99163 := mustPrice(t, "99-163")

	bids := []Order{
		{Price: p99160, Quantity: 1000, Side: Bid},
		{Price: p99160, Quantity: 500, Side: Bid}, // same price, arrives second: loses the tie
		{Price: mustPrice(t, "99-060"), Quantity: 2000, Side: Bid},
	}
	offers := []Order{
		{Price: p99163, Quantity: 1500, Side: Offer},
		{Price: mustPrice(t, "99-260"), Quantity: 900, Side: Offer},
	}

	book := NewOrderBook(inst, bids, offers)
	bestBid, bestOffer := BestBidOffer(book)

	if !bestBid.Price.Equal(p99160) || bestBid.Quantity != 1000 {
		t.Fatalf("unexpected best bid: %+v", bestBid)
	}
	if !bestOffer.Price.Equal(p99163) || bestOffer.Quantity != 1500 {
		t.Fatalf("unexpected best offer: %+v", bestOffer)
	}
}

func TestBestBidOffer_EmptySidesUseSentinels(t *testing.T) {
	inst, err := GetInstrument("91282CFX4")
	if err != nil {
		t.Fatal(err)
	}

	book := NewOrderBook(inst, nil, nil)
	bestBid, bestOffer := BestBidOffer(book)

	if !bestBid.Price.Equal(decimal.Zero) || bestBid.Side != Bid {
		t.Fatalf("expected zero-price BID sentinel, got %+v", bestBid)
	}
	if bestOffer.Side != Offer || !bestOffer.Price.Equal(sentinelBestOfferPrice) {
		t.Fatalf("expected high-price OFFER sentinel, got %+v", bestOffer)
	}
	if bestOffer.Price.Sub(bestBid.Price).LessThan(decimal.NewFromInt(1)) {
		t.Fatal("empty-book sentinel spread should never look crossable")
	}
}

func TestAggregateMarketData_SumsQuantitiesAtEachPrice(t *testing.T) {
	inst, err := GetInstrument("91282CFX4")
	if err != nil {
		t.Fatal(err)
	}

	p := mustPrice(t, "99-160")
	bids := []Order{
		{Price: p, Quantity: 100, Side: Bid},
		{Price: p, Quantity: 200, Side: Bid},
		{Price: mustPrice(t, "99-060"), Quantity: 50, Side: Bid},
	}

	book := NewOrderBook(inst, bids, nil)
	aggregated := AggregateMarketData(book)

	stack := aggregated.BidStack()
	if len(stack) != 2 {
		t.Fatalf("expected 2 aggregated price levels, got %d: %+v", len(stack), stack)
	}

	var total int64
	for _, o := range stack {
		if o.Price.Equal(p) {
			total = o.Quantity
		}
	}
	if total != 300 {
		t.Fatalf("expected aggregated quantity 300 at %s, got %d", p, total)
	}
}

func TestBestBidOffer_ReturnsFreshValuesNotAliases(t *testing.T) {
	inst, err := GetInstrument("91282CFX4")
	if err != nil {
		t.Fatal(err)
	}
	bids := []Order{{Price: mustPrice(t, "99-160"), Quantity: 1000, Side: Bid}}
	book := NewOrderBook(inst, bids, nil)

	first, _ := BestBidOffer(book)
	first.Quantity = 999999

	second, _ := BestBidOffer(book)
	if second.Quantity == 999999 {
		t.Fatal("mutating a returned best-bid value should not affect a later read")
	}
}
