// Package engine holds the pipeline's stateful processors: one Go type
// per component in the data flow, each composed from a soa.BaseService
// for its own keyed store and implementing soa.Listener for whatever
// upstream service it subscribes to.
package engine

import (
	"github.com/cshen/tsyflow/internal/domain"
	"github.com/cshen/tsyflow/internal/soa"
)

// PricingService stores the latest Price per instrument and fans it out
// unchanged. It has no state beyond that store.
type PricingService struct {
	*soa.BaseService[string, domain.Price]
}

func NewPricingService() *PricingService {
	return &PricingService{
		BaseService: soa.NewBaseService(func(p domain.Price) string { return p.Instrument.Identifier }),
	}
}
