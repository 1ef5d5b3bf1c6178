package connector

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/cshen/tsyflow/internal/domain"
)

// InquiriesSubscriber parses inquiries.txt: inquiryId, identifier, side,
// quantity, price(fractional), state.
type InquiriesSubscriber struct {
	r       io.Reader
	logger  *slog.Logger
	receive func(domain.Inquiry) error
}

func NewInquiriesSubscriber(r io.Reader, logger *slog.Logger, receive func(domain.Inquiry) error) *InquiriesSubscriber {
	return &InquiriesSubscriber{r: r, logger: logger, receive: receive}
}

func (s *InquiriesSubscriber) Subscribe() error {
	return scanLines(s.r, s.logger, "inquiries.txt", func(line string) error {
		fields, err := splitCSVLine(line, 6)
		if err != nil {
			return fmt.Errorf("%w: %v", domain.ErrMalformedRecord, err)
		}

		instrument, err := domain.GetInstrument(fields[1])
		if err != nil {
			return err
		}

		var side domain.TradeSide
		switch fields[2] {
		case string(domain.Buy):
			side = domain.Buy
		case string(domain.Sell):
			side = domain.Sell
		default:
			return fmt.Errorf("%w: unknown inquiry side %q", domain.ErrUnknownEnumToken, fields[2])
		}

		quantity, err := strconv.ParseInt(fields[3], 10, 64)
		if err != nil {
			return fmt.Errorf("%w: invalid quantity %q", domain.ErrMalformedRecord, fields[3])
		}
		price, err := domain.ParseFractionalPrice(fields[4])
		if err != nil {
			return err
		}

		var state domain.InquiryState
		switch fields[5] {
		case string(domain.Received):
			state = domain.Received
		case string(domain.Quoted):
			state = domain.Quoted
		case string(domain.Done):
			state = domain.Done
		case string(domain.Rejected):
			state = domain.Rejected
		case string(domain.CustomerRejected):
			state = domain.CustomerRejected
		default:
			return fmt.Errorf("%w: unknown inquiry state %q", domain.ErrUnknownEnumToken, fields[5])
		}

		return s.receive(domain.Inquiry{
			InquiryID:  fields[0],
			Instrument: instrument,
			Side:       side,
			Quantity:   quantity,
			Price:      price,
			State:      state,
		})
	})
}
