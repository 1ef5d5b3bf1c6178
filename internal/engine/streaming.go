package engine

import (
	"github.com/cshen/tsyflow/internal/domain"
	"github.com/cshen/tsyflow/internal/soa"
)

// StreamingService is a passthrough: it stores and re-emits every
// PriceStream it receives from AlgoStreamingService, unchanged, to its
// own listeners (trade persistence and whatever else subscribes).
type StreamingService struct {
	*soa.BaseService[string, domain.PriceStream]
}

func NewStreamingService() *StreamingService {
	return &StreamingService{
		BaseService: soa.NewBaseService(func(s domain.PriceStream) string { return s.Instrument.Identifier }),
	}
}

func (s *StreamingService) ProcessAdd(stream domain.PriceStream) { s.OnMessage(stream) }
func (s *StreamingService) ProcessRemove(domain.PriceStream)     {}
func (s *StreamingService) ProcessUpdate(domain.PriceStream)     {}
