package domain

import "github.com/shopspring/decimal"

// TradeSide is BUY or SELL, distinct from the two-way PricingSide used by
// quotes and orders.
type TradeSide string

const (
	Buy  TradeSide = "BUY"
	Sell TradeSide = "SELL"
)

// Trade is a booked execution against an instrument, keyed by TradeID.
type Trade struct {
	Instrument Instrument
	TradeID    string
	Price      decimal.Decimal
	Book       string
	Quantity   int64
	Side       TradeSide
}
