package engine

import (
	"github.com/cshen/tsyflow/internal/domain"
	"github.com/cshen/tsyflow/internal/soa"
)

// ExecutionService is a passthrough: it stores and re-emits every
// ExecutionOrder it receives from AlgoExecutionService to its listeners
// (trade-booking and execution persistence).
type ExecutionService struct {
	*soa.BaseService[string, domain.ExecutionOrder]
}

func NewExecutionService() *ExecutionService {
	return &ExecutionService{
		BaseService: soa.NewBaseService(func(o domain.ExecutionOrder) string { return o.OrderID }),
	}
}

func (s *ExecutionService) ProcessAdd(order domain.ExecutionOrder) { s.OnMessage(order) }
func (s *ExecutionService) ProcessRemove(domain.ExecutionOrder)    {}
func (s *ExecutionService) ProcessUpdate(domain.ExecutionOrder)    {}
