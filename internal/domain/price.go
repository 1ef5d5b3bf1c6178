package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Price is an internal mid/spread quote for an instrument. Keyed by
// instrument identifier; the pricing processor stores latest-wins.
type Price struct {
	Instrument     Instrument
	Mid            decimal.Decimal
	BidOfferSpread decimal.Decimal
}

// BidPrice is mid minus half the spread.
func (p Price) BidPrice() decimal.Decimal {
	return p.Mid.Sub(p.BidOfferSpread.Div(decimal.NewFromInt(2)))
}

// OfferPrice is mid plus half the spread.
func (p Price) OfferPrice() decimal.Decimal {
	return p.Mid.Add(p.BidOfferSpread.Div(decimal.NewFromInt(2)))
}

// FormattedIdentifier satisfies soa.Record for the GUI throttle's
// persistence listener.
func (p Price) FormattedIdentifier() string {
	return p.Instrument.Identifier
}

// FormattedRecord satisfies soa.Record for the GUI throttle's persistence
// listener.
func (p Price) FormattedRecord() string {
	return fmt.Sprintf("CUSIP: %s, %s, %s",
		p.Instrument.Identifier, FormatFractionalPrice(p.Mid), FormatFractionalPrice(p.BidOfferSpread))
}
