package engine

import (
	"fmt"

	"github.com/cshen/tsyflow/internal/domain"
	"github.com/cshen/tsyflow/internal/soa"
	"github.com/shopspring/decimal"
)

// InquiryService runs the RECEIVED→QUOTED→DONE state machine per
// inquiryId. A RECEIVED record is stored and fanned out once, then
// advanced straight through QUOTED to DONE with SetData, never
// re-entering the fan-out path — an explicit two-step transition in
// place of the original's connector re-entrancy. A QUOTED record is
// stored as DONE without fan-out.
type InquiryService struct {
	*soa.BaseService[string, domain.Inquiry]
}

func NewInquiryService() *InquiryService {
	return &InquiryService{
		BaseService: soa.NewBaseService(func(i domain.Inquiry) string { return i.InquiryID }),
	}
}

// Receive ingests one inquiries.txt record in its input state.
func (s *InquiryService) Receive(inquiry domain.Inquiry) error {
	switch inquiry.State {
	case domain.Received:
		s.OnMessage(inquiry)
		quoted := inquiry.WithState(domain.Quoted)
		s.SetData(quoted)
		s.SetData(quoted.WithState(domain.Done))
		return nil
	case domain.Quoted:
		s.SetData(inquiry.WithState(domain.Done))
		return nil
	case domain.Rejected, domain.CustomerRejected:
		s.SetData(inquiry)
		return nil
	default:
		return fmt.Errorf("%w: inquiry %s arrived in state %s", domain.ErrInquiryTerminalState, inquiry.InquiryID, inquiry.State)
	}
}

// SendQuote sets a price on a RECEIVED or QUOTED inquiry and advances it
// straight to DONE.
func (s *InquiryService) SendQuote(id string, price decimal.Decimal) error {
	inquiry, ok := s.GetData(id)
	if !ok {
		return fmt.Errorf("%w: %s", domain.ErrInquiryNotFound, id)
	}
	if inquiry.State != domain.Received && inquiry.State != domain.Quoted {
		return fmt.Errorf("%w: inquiry %s is in state %s", domain.ErrInquiryTerminalState, id, inquiry.State)
	}

	s.SetData(inquiry.WithPrice(price).WithState(domain.Done))
	return nil
}

// RejectInquiry moves a non-terminal inquiry to REJECTED.
func (s *InquiryService) RejectInquiry(id string) error {
	inquiry, ok := s.GetData(id)
	if !ok {
		return fmt.Errorf("%w: %s", domain.ErrInquiryNotFound, id)
	}
	if inquiry.State == domain.Done || inquiry.State == domain.Rejected || inquiry.State == domain.CustomerRejected {
		return fmt.Errorf("%w: inquiry %s is in state %s", domain.ErrInquiryTerminalState, id, inquiry.State)
	}

	s.SetData(inquiry.WithState(domain.Rejected))
	return nil
}
