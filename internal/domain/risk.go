package domain

import "fmt"

// PV01 is the static price value of a one-basis-point yield change for
// an instrument, paired with the aggregate position it was computed
// against. Value and Quantity are kept separate, not pre-multiplied;
// BucketRisk is where the two combine into a monetary risk number.
type PV01 struct {
	Instrument Instrument
	Value      float64
	Quantity   int64
}

// FormattedIdentifier satisfies soa.Record for the risk persistence
// listener.
func (p PV01) FormattedIdentifier() string {
	return p.Instrument.Identifier
}

// FormattedRecord satisfies soa.Record for the risk persistence listener.
func (p PV01) FormattedRecord() string {
	return fmt.Sprintf("CUSIP: %s, PV01: %f, Quantity: %d", p.Instrument.Identifier, p.Value, p.Quantity)
}

// BucketedSector names a group of instruments that risk can be rolled up
// across.
type BucketedSector struct {
	Name        string
	Instruments []Instrument
}

// BucketRisk is the rollup of PV01 risk across a BucketedSector: the sum
// of pv01*quantity across every instrument in the bucket. Quantity is
// fixed at 1 so the Value field alone carries the bucket's total risk.
type BucketRisk struct {
	Sector   BucketedSector
	Value    float64
	Quantity int64
}
