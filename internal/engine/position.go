package engine

import (
	"github.com/cshen/tsyflow/internal/domain"
	"github.com/cshen/tsyflow/internal/soa"
)

// PositionService maintains a per-book signed position for each
// instrument it sees trades for. SELL subtracts, BUY adds.
type PositionService struct {
	*soa.BaseService[string, domain.Position]
}

func NewPositionService() *PositionService {
	return &PositionService{
		BaseService: soa.NewBaseService(func(p domain.Position) string { return p.Instrument.Identifier }),
	}
}

func (s *PositionService) ProcessAdd(trade domain.Trade) {
	signed := trade.Quantity
	if trade.Side == domain.Sell {
		signed = -signed
	}

	position, ok := s.GetData(trade.Instrument.Identifier)
	if !ok {
		position = domain.NewPosition(trade.Instrument)
	}
	position = position.AddToBook(trade.Book, signed)
	s.OnMessage(position)
}

func (s *PositionService) ProcessRemove(domain.Trade) {}
func (s *PositionService) ProcessUpdate(domain.Trade) {}
