package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// PriceStreamOrder is one side (bid or offer) of a two-way quote, with a
// visible and a hidden quantity.
type PriceStreamOrder struct {
	Price           decimal.Decimal
	VisibleQuantity int64
	HiddenQuantity  int64
	Side            PricingSide
}

func (o PriceStreamOrder) print() string {
	return fmt.Sprintf("Side: %s, Price: %s, Visible quantity: %d, Hidden quantity: %d",
		o.Side, FormatFractionalPrice(o.Price), o.VisibleQuantity, o.HiddenQuantity)
}

// PriceStream is a two-way market for an instrument: a bid order and an
// offer order. Constructors are expected to uphold bidOrder.Price <=
// offerOrder.Price.
type PriceStream struct {
	Instrument Instrument
	BidOrder   PriceStreamOrder
	OfferOrder PriceStreamOrder
}

// FormattedIdentifier satisfies soa.Record for the streaming persistence
// listener.
func (s PriceStream) FormattedIdentifier() string {
	return s.Instrument.Identifier
}

// FormattedRecord satisfies soa.Record for the streaming persistence
// listener.
func (s PriceStream) FormattedRecord() string {
	return fmt.Sprintf("CUSIP: %s, %s, %s", s.Instrument.Identifier, s.BidOrder.print(), s.OfferOrder.print())
}
