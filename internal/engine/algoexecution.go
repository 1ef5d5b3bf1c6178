package engine

import (
	"strconv"

	"github.com/cshen/tsyflow/internal/domain"
	"github.com/cshen/tsyflow/internal/soa"
	"github.com/shopspring/decimal"
)

// AlgoExecutionService crosses the spread with an alternating side
// whenever a book update's best offer minus best bid is within
// spreadThreshold. isBuy starts true; numID starts at 0 and is the
// decimal-string order ID of the next emitted order.
type AlgoExecutionService struct {
	*soa.BaseService[string, domain.ExecutionOrder]
	spreadThreshold decimal.Decimal
	isBuy           bool
	numID           int
}

func NewAlgoExecutionService(spreadThreshold decimal.Decimal) *AlgoExecutionService {
	return &AlgoExecutionService{
		BaseService:     soa.NewBaseService(func(o domain.ExecutionOrder) string { return o.OrderID }),
		spreadThreshold: spreadThreshold,
		isBuy:           true,
	}
}

func (s *AlgoExecutionService) ProcessAdd(book domain.OrderBook) {
	bestBid, bestOffer := domain.BestBidOffer(book)
	spread := bestOffer.Price.Sub(bestBid.Price)
	if spread.GreaterThan(s.spreadThreshold) {
		return
	}

	order := domain.ExecutionOrder{
		Instrument:     book.Instrument,
		OrderID:        strconv.Itoa(s.numID),
		Type:           domain.Market,
		ParentOrderID:  "NA",
		IsChildOrder:   false,
		HiddenQuantity: 0,
	}
	if s.isBuy {
		order.Side = domain.Bid
		order.Price = bestOffer.Price
		order.VisibleQuantity = bestOffer.Quantity
	} else {
		order.Side = domain.Offer
		order.Price = bestBid.Price
		order.VisibleQuantity = bestBid.Quantity
	}
	s.isBuy = !s.isBuy
	s.numID++

	s.OnMessage(order)
}

func (s *AlgoExecutionService) ProcessRemove(domain.OrderBook) {}
func (s *AlgoExecutionService) ProcessUpdate(domain.OrderBook) {}
