package domain

import "github.com/shopspring/decimal"

// PricingSide is the two-way quoting side used by Order, PriceStreamOrder,
// and ExecutionOrder. Trade uses the distinct BUY/SELL Side instead.
type PricingSide string

const (
	Bid   PricingSide = "BID"
	Offer PricingSide = "OFFER"
)

// Order is a single resting entry on a market-data order book: a price,
// a quantity, and a side. It is a plain value object, not a keyed record.
type Order struct {
	Price    decimal.Decimal
	Quantity int64
	Side     PricingSide
}
