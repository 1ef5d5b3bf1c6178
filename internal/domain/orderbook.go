package domain

import (
	"github.com/google/btree"
	"github.com/shopspring/decimal"
)

// bookEntry is a single Order resting in an OrderBook's bid or offer
// stack, tagged with the sequence number it arrived in. The sequence
// number is the tiebreaker that realizes "ties broken by first
// occurrence" when two entries share a price.
type bookEntry struct {
	Price decimal.Decimal
	Seq   int64
	Order Order
}

// bidLess orders the bid side price descending (so Min() returns the
// highest bid), then by arrival sequence ascending.
func bidLess(a, b bookEntry) bool {
	if !a.Price.Equal(b.Price) {
		return a.Price.GreaterThan(b.Price)
	}
	return a.Seq < b.Seq
}

// offerLess orders the offer side price ascending (so Min() returns the
// lowest offer), then by arrival sequence ascending.
func offerLess(a, b bookEntry) bool {
	if !a.Price.Equal(b.Price) {
		return a.Price.LessThan(b.Price)
	}
	return a.Seq < b.Seq
}

const bookDegree = 8

// OrderBook is the bid/offer depth for one instrument, keyed by
// instrument identifier with latest-wins semantics: each market-data
// batch builds a brand new OrderBook rather than mutating a prior one.
type OrderBook struct {
	Instrument Instrument
	bids       *btree.BTreeG[bookEntry]
	offers     *btree.BTreeG[bookEntry]
}

// NewOrderBook builds an OrderBook from a batch of bid and offer orders,
// in arrival order. Both slices are consumed by value; the caller's
// slices are never retained or mutated.
func NewOrderBook(instrument Instrument, bidStack, offerStack []Order) OrderBook {
	ob := OrderBook{
		Instrument: instrument,
		bids:       btree.NewG(bookDegree, bidLess),
		offers:     btree.NewG(bookDegree, offerLess),
	}
	for i, o := range bidStack {
		ob.bids.ReplaceOrInsert(bookEntry{Price: o.Price, Seq: int64(i), Order: o})
	}
	for i, o := range offerStack {
		ob.offers.ReplaceOrInsert(bookEntry{Price: o.Price, Seq: int64(i), Order: o})
	}
	return ob
}

// sentinelBestOfferPrice stands in for "no offers in this book": a price
// high enough that it never crosses a real bid. It replaces the
// original's same-side BID sentinel with a correctly tagged OFFER of
// effectively infinite price.
var sentinelBestOfferPrice = decimal.NewFromInt(1_000_000_000)

// BestBidOffer returns the best bid (highest price) and best offer
// (lowest price) in ob, each a fresh value — never an alias into ob's
// internal structure. An empty bid side yields a zero-price BID sentinel;
// an empty offer side yields sentinelBestOfferPrice tagged OFFER.
func BestBidOffer(ob OrderBook) (bestBid, bestOffer Order) {
	bestBid = Order{Price: decimal.Zero, Side: Bid}
	if e, ok := ob.bids.Min(); ok {
		bestBid = e.Order
	}

	bestOffer = Order{Price: sentinelBestOfferPrice, Side: Offer}
	if e, ok := ob.offers.Min(); ok {
		bestOffer = e.Order
	}
	return bestBid, bestOffer
}

// AggregateMarketData sums quantities at each distinct price on each side
// and rebuilds the stacks from the aggregated levels. The order of the
// resulting stacks is unspecified.
func AggregateMarketData(ob OrderBook) OrderBook {
	aggregated := NewOrderBook(ob.Instrument, nil, nil)
	aggregated.bids = aggregateSide(ob.bids, Bid)
	aggregated.offers = aggregateSide(ob.offers, Offer)
	return aggregated
}

func aggregateSide(tree *btree.BTreeG[bookEntry], side PricingSide) *btree.BTreeG[bookEntry] {
	var less func(a, b bookEntry) bool
	if side == Bid {
		less = bidLess
	} else {
		less = offerLess
	}
	result := btree.NewG(bookDegree, less)

	var seq int64
	var pending *bookEntry
	flush := func() {
		if pending == nil {
			return
		}
		result.ReplaceOrInsert(bookEntry{Price: pending.Price, Seq: seq, Order: pending.Order})
		seq++
		pending = nil
	}

	tree.Ascend(func(e bookEntry) bool {
		if pending != nil && pending.Price.Equal(e.Price) {
			pending.Order.Quantity += e.Order.Quantity
			return true
		}
		flush()
		entry := e
		pending = &entry
		return true
	})
	flush()

	return result
}

// BidStack returns ob's bid-side orders in the book's natural (price)
// order. Callers receive a fresh slice; mutating it does not affect ob.
func (ob OrderBook) BidStack() []Order {
	return collectSide(ob.bids)
}

// OfferStack returns ob's offer-side orders in the book's natural
// (price) order. Callers receive a fresh slice; mutating it does not
// affect ob.
func (ob OrderBook) OfferStack() []Order {
	return collectSide(ob.offers)
}

func collectSide(tree *btree.BTreeG[bookEntry]) []Order {
	orders := make([]Order, 0, tree.Len())
	tree.Ascend(func(e bookEntry) bool {
		orders = append(orders, e.Order)
		return true
	})
	return orders
}
