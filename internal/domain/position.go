package domain

import (
	"fmt"
	"sort"
	"strings"
)

// Position is the signed per-book quantity map for one instrument. The
// aggregate position is always the sum of the per-book quantities; it is
// computed on demand rather than tracked separately, so there is no way
// for the two to drift apart.
type Position struct {
	Instrument Instrument
	Books      map[string]int64
}

// NewPosition creates an empty Position for an instrument.
func NewPosition(instrument Instrument) Position {
	return Position{Instrument: instrument, Books: make(map[string]int64)}
}

// AddToBook adds a signed quantity to a book and returns the updated
// Position. The Books map is written in place and is not copied: p, the
// returned Position and every other copy of p share it and all see the
// change.
func (p Position) AddToBook(book string, signedQuantity int64) Position {
	p.Books[book] += signedQuantity
	return p
}

// Aggregate sums the signed quantity across every book.
func (p Position) Aggregate() int64 {
	var total int64
	for _, q := range p.Books {
		total += q
	}
	return total
}

// FormattedIdentifier satisfies soa.Record for the position persistence
// listener.
func (p Position) FormattedIdentifier() string {
	return p.Instrument.Identifier
}

// FormattedRecord satisfies soa.Record for the position persistence
// listener.
func (p Position) FormattedRecord() string {
	books := make([]string, 0, len(p.Books))
	for b := range p.Books {
		books = append(books, b)
	}
	sort.Strings(books)

	var sb strings.Builder
	fmt.Fprintf(&sb, "CUSIP: %s, ", p.Instrument.Identifier)
	for _, b := range books {
		fmt.Fprintf(&sb, "%s: %d, ", b, p.Books[b])
	}
	fmt.Fprintf(&sb, "Aggregate: %d", p.Aggregate())
	return sb.String()
}
