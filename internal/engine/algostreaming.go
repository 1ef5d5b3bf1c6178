package engine

import (
	"github.com/cshen/tsyflow/internal/domain"
	"github.com/cshen/tsyflow/internal/soa"
)

// AlgoStreamingService derives a two-way PriceStream from each Price it
// observes. Visible size alternates 1x/2x baseVisibleSize across
// successive prices, starting at 1x; hidden size is always double
// visible. The alternation is a single boolean flipped before each emit,
// preserved from the source's "(isFirst+1)*baseVisibleSize" pattern with
// isFirst initially false.
type AlgoStreamingService struct {
	*soa.BaseService[string, domain.PriceStream]
	baseVisibleSize int64
	isFirst         bool
}

func NewAlgoStreamingService(baseVisibleSize int64) *AlgoStreamingService {
	return &AlgoStreamingService{
		BaseService:     soa.NewBaseService(func(s domain.PriceStream) string { return s.Instrument.Identifier }),
		baseVisibleSize: baseVisibleSize,
	}
}

func (s *AlgoStreamingService) ProcessAdd(price domain.Price) {
	multiplier := int64(1)
	if s.isFirst {
		multiplier = 2
	}
	s.isFirst = !s.isFirst

	visible := multiplier * s.baseVisibleSize
	hidden := 2 * visible

	stream := domain.PriceStream{
		Instrument: price.Instrument,
		BidOrder: domain.PriceStreamOrder{
			Price:           price.BidPrice(),
			VisibleQuantity: visible,
			HiddenQuantity:  hidden,
			Side:            domain.Bid,
		},
		OfferOrder: domain.PriceStreamOrder{
			Price:           price.OfferPrice(),
			VisibleQuantity: visible,
			HiddenQuantity:  hidden,
			Side:            domain.Offer,
		},
	}
	s.OnMessage(stream)
}

func (s *AlgoStreamingService) ProcessRemove(domain.Price) {}
func (s *AlgoStreamingService) ProcessUpdate(domain.Price) {}
