package engine

import (
	"time"

	"github.com/cshen/tsyflow/internal/domain"
	"github.com/cshen/tsyflow/internal/soa"
)

// Clock returns the current wall-clock time. Production wiring passes
// time.Now; tests pass a fake so the throttle's behavior is
// deterministic.
type Clock func() time.Time

// GUIThrottleService rate-limits Price updates to at most one emission
// per interval of wall-clock time. The zero value of lastTime predates
// any real clock reading, so the first update is always emitted.
type GUIThrottleService struct {
	*soa.BaseService[string, domain.Price]
	interval time.Duration
	now      Clock
	lastTime time.Time
}

func NewGUIThrottleService(interval time.Duration, now Clock) *GUIThrottleService {
	return &GUIThrottleService{
		BaseService: soa.NewBaseService(func(p domain.Price) string { return p.Instrument.Identifier }),
		interval:    interval,
		now:         now,
	}
}

func (s *GUIThrottleService) ProcessAdd(price domain.Price) {
	now := s.now()
	if now.Sub(s.lastTime) <= s.interval {
		return
	}
	s.lastTime = now
	s.OnMessage(price)
}

func (s *GUIThrottleService) ProcessRemove(domain.Price) {}
func (s *GUIThrottleService) ProcessUpdate(domain.Price) {}
