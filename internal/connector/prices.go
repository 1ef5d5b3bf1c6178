package connector

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/cshen/tsyflow/internal/domain"
)

// PricesSubscriber parses prices.txt: identifier, midPrice(fractional),
// bidOfferSpread(fractional).
type PricesSubscriber struct {
	r       io.Reader
	logger  *slog.Logger
	publish func(domain.Price)
}

func NewPricesSubscriber(r io.Reader, logger *slog.Logger, publish func(domain.Price)) *PricesSubscriber {
	return &PricesSubscriber{r: r, logger: logger, publish: publish}
}

func (s *PricesSubscriber) Subscribe() error {
	return scanLines(s.r, s.logger, "prices.txt", func(line string) error {
		fields, err := splitCSVLine(line, 3)
		if err != nil {
			return fmt.Errorf("%w: %v", domain.ErrMalformedRecord, err)
		}

		instrument, err := domain.GetInstrument(fields[0])
		if err != nil {
			return err
		}
		mid, err := domain.ParseFractionalPrice(fields[1])
		if err != nil {
			return err
		}
		spread, err := domain.ParseFractionalPrice(fields[2])
		if err != nil {
			return err
		}

		s.publish(domain.Price{Instrument: instrument, Mid: mid, BidOfferSpread: spread})
		return nil
	})
}
