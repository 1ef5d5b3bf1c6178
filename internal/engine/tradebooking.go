package engine

import (
	"github.com/cshen/tsyflow/internal/domain"
	"github.com/cshen/tsyflow/internal/soa"
)

// TradeBookingService derives a Trade from each ExecutionOrder it
// observes, rotating the booking book through books on a monotonic
// counter mod len(books). It also accepts trades ingested directly from
// trades.txt through Ingest, storing and fanning out either kind the
// same way.
type TradeBookingService struct {
	*soa.BaseService[string, domain.Trade]
	books     []string
	bookIndex int
}

func NewTradeBookingService(books []string) *TradeBookingService {
	return &TradeBookingService{
		BaseService: soa.NewBaseService(func(t domain.Trade) string { return t.TradeID }),
		books:       books,
	}
}

func (s *TradeBookingService) ProcessAdd(order domain.ExecutionOrder) {
	side := domain.Sell
	if order.Side == domain.Bid {
		side = domain.Buy
	}

	book := s.books[s.bookIndex%len(s.books)]
	s.bookIndex++

	trade := domain.Trade{
		Instrument: order.Instrument,
		TradeID:    "TRADE-EXECUTE-" + order.OrderID,
		Price:      order.Price,
		Book:       book,
		Quantity:   order.VisibleQuantity + order.HiddenQuantity,
		Side:       side,
	}
	s.OnMessage(trade)
}

func (s *TradeBookingService) ProcessRemove(domain.ExecutionOrder) {}
func (s *TradeBookingService) ProcessUpdate(domain.ExecutionOrder) {}

// Ingest stores a trade parsed directly from trades.txt and fans it out,
// the same as a trade derived from an execution.
func (s *TradeBookingService) Ingest(trade domain.Trade) {
	s.OnMessage(trade)
}
