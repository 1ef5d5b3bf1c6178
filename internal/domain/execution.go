package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ExecutionOrderType is the order type an ExecutionOrder can be placed as.
// The algo-execution processor only ever emits MARKET orders; the other
// values exist because a downstream execution venue could accept them.
type ExecutionOrderType string

const (
	FOK    ExecutionOrderType = "FOK"
	IOC    ExecutionOrderType = "IOC"
	Market ExecutionOrderType = "MARKET"
	Limit  ExecutionOrderType = "LIMIT"
	Stop   ExecutionOrderType = "STOP"
)

// ExecutionOrder is an order placed on an execution venue. ParentOrderID
// is "NA" and IsChildOrder is false for every order the algo-execution
// processor emits; both fields exist to carry a child-order relationship
// that this pipeline never creates.
type ExecutionOrder struct {
	Instrument      Instrument
	Side            PricingSide
	OrderID         string
	Type            ExecutionOrderType
	Price           decimal.Decimal
	VisibleQuantity int64
	HiddenQuantity  int64
	ParentOrderID   string
	IsChildOrder    bool
}

// FormattedIdentifier satisfies soa.Record for the execution persistence
// listener.
func (o ExecutionOrder) FormattedIdentifier() string {
	return o.OrderID
}

// FormattedRecord satisfies soa.Record for the execution persistence
// listener.
func (o ExecutionOrder) FormattedRecord() string {
	return fmt.Sprintf(
		"CUSIP: %s, Side: %s, Order ID: %s, Order type: %s, Price: %s, Visible quantity: %d, Hidden quantity: %d, Parent order ID: %s, Is child order: %t",
		o.Instrument.Identifier, o.Side, o.OrderID, o.Type, FormatFractionalPrice(o.Price),
		o.VisibleQuantity, o.HiddenQuantity, o.ParentOrderID, o.IsChildOrder)
}
