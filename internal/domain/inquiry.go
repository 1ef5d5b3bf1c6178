package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// InquiryState is the lifecycle state of a customer inquiry.
type InquiryState string

const (
	Received         InquiryState = "RECEIVED"
	Quoted           InquiryState = "QUOTED"
	Done             InquiryState = "DONE"
	Rejected         InquiryState = "REJECTED"
	CustomerRejected InquiryState = "CUSTOMER_REJECTED"
)

// Inquiry is a customer RFQ, keyed by InquiryID.
type Inquiry struct {
	InquiryID  string
	Instrument Instrument
	Side       TradeSide
	Quantity   int64
	Price      decimal.Decimal
	State      InquiryState
}

// WithState returns a copy of the inquiry in a new state, leaving the
// original untouched.
func (i Inquiry) WithState(state InquiryState) Inquiry {
	i.State = state
	return i
}

// WithPrice returns a copy of the inquiry with a new quoted price,
// leaving the original untouched.
func (i Inquiry) WithPrice(price decimal.Decimal) Inquiry {
	i.Price = price
	return i
}

// FormattedIdentifier satisfies soa.Record for the inquiry persistence
// listener.
func (i Inquiry) FormattedIdentifier() string {
	return i.InquiryID
}

// FormattedRecord satisfies soa.Record for the inquiry persistence
// listener.
func (i Inquiry) FormattedRecord() string {
	return fmt.Sprintf("Inquiry ID: %s, Side: %s, Price: %s, Quantity: %d, State: %s",
		i.InquiryID, i.Side, FormatFractionalPrice(i.Price), i.Quantity, i.State)
}
