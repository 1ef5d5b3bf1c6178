package engine

import (
	"fmt"

	"github.com/cshen/tsyflow/internal/domain"
	"github.com/cshen/tsyflow/internal/soa"
)

// MarketDataService accumulates marketdata.txt lines into working bid
// and offer stacks and packages every batchSize lines into one
// OrderBook update. The identifier on the batch's final line determines
// the book's instrument; identifiers on earlier lines in the batch are
// assumed to match it.
type MarketDataService struct {
	*soa.BaseService[string, domain.OrderBook]
	batchSize      int
	bidStack       []domain.Order
	offerStack     []domain.Order
	lineIdentifier string
	lineCount      int
}

func NewMarketDataService(batchSize int) *MarketDataService {
	return &MarketDataService{
		BaseService: soa.NewBaseService(func(ob domain.OrderBook) string { return ob.Instrument.Identifier }),
		batchSize:   batchSize,
	}
}

// Ingest accumulates one parsed marketdata.txt line. Once batchSize
// lines have accumulated, it resolves the batch's instrument, packages
// the accumulated stacks into an OrderBook, resets the accumulators, and
// fans the book out.
func (s *MarketDataService) Ingest(identifier string, order domain.Order) error {
	switch order.Side {
	case domain.Bid:
		s.bidStack = append(s.bidStack, order)
	case domain.Offer:
		s.offerStack = append(s.offerStack, order)
	default:
		return fmt.Errorf("%w: unknown side on market data line", domain.ErrUnknownEnumToken)
	}
	s.lineIdentifier = identifier
	s.lineCount++

	if s.lineCount < s.batchSize {
		return nil
	}

	instrument, err := domain.GetInstrument(s.lineIdentifier)
	if err != nil {
		s.resetBatch()
		return err
	}

	book := domain.NewOrderBook(instrument, s.bidStack, s.offerStack)
	s.resetBatch()
	s.OnMessage(book)
	return nil
}

func (s *MarketDataService) resetBatch() {
	s.bidStack = nil
	s.offerStack = nil
	s.lineIdentifier = ""
	s.lineCount = 0
}

// AggregateMarketData sums quantities at each price level of the latest
// OrderBook stored for identifier and rebuilds its stacks.
func (s *MarketDataService) AggregateMarketData(identifier string) (domain.OrderBook, bool) {
	book, ok := s.GetData(identifier)
	if !ok {
		return domain.OrderBook{}, false
	}
	return domain.AggregateMarketData(book), true
}
