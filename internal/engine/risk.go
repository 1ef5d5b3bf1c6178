package engine

import (
	"github.com/cshen/tsyflow/internal/domain"
	"github.com/cshen/tsyflow/internal/soa"
)

// RiskService pairs each position update with its instrument's static
// PV01 value and exposes on-demand bucketed rollups across sectors.
type RiskService struct {
	*soa.BaseService[string, domain.PV01]
}

func NewRiskService() *RiskService {
	return &RiskService{
		BaseService: soa.NewBaseService(func(p domain.PV01) string { return p.Instrument.Identifier }),
	}
}

func (s *RiskService) ProcessAdd(position domain.Position) {
	pv01Value, err := domain.GetPV01(position.Instrument.Identifier)
	if err != nil {
		// every instrument reaching Position was already resolved by
		// GetInstrument upstream, and pv01Table covers the same set.
		return
	}

	s.OnMessage(domain.PV01{
		Instrument: position.Instrument,
		Value:      pv01Value,
		Quantity:   position.Aggregate(),
	})
}

func (s *RiskService) ProcessRemove(domain.Position) {}
func (s *RiskService) ProcessUpdate(domain.Position) {}

// BucketRisk sums pv01·quantity across every instrument in sector using
// each instrument's latest stored PV01 record. Instruments with no
// stored record yet (no position booked) contribute zero.
func (s *RiskService) BucketRisk(sector domain.BucketedSector) domain.BucketRisk {
	var total float64
	for _, instrument := range sector.Instruments {
		pv01, ok := s.GetData(instrument.Identifier)
		if !ok {
			continue
		}
		total += pv01.Value * float64(pv01.Quantity)
	}
	return domain.BucketRisk{Sector: sector, Value: total, Quantity: 1}
}
