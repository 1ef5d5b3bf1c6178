package connector

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/cshen/tsyflow/internal/domain"
)

// TradesSubscriber parses trades.txt: identifier, tradeId,
// price(fractional), book, quantity, side.
type TradesSubscriber struct {
	r       io.Reader
	logger  *slog.Logger
	publish func(domain.Trade)
}

func NewTradesSubscriber(r io.Reader, logger *slog.Logger, publish func(domain.Trade)) *TradesSubscriber {
	return &TradesSubscriber{r: r, logger: logger, publish: publish}
}

func (s *TradesSubscriber) Subscribe() error {
	return scanLines(s.r, s.logger, "trades.txt", func(line string) error {
		fields, err := splitCSVLine(line, 6)
		if err != nil {
			return fmt.Errorf("%w: %v", domain.ErrMalformedRecord, err)
		}

		instrument, err := domain.GetInstrument(fields[0])
		if err != nil {
			return err
		}
		price, err := domain.ParseFractionalPrice(fields[2])
		if err != nil {
			return err
		}
		quantity, err := strconv.ParseInt(fields[4], 10, 64)
		if err != nil {
			return fmt.Errorf("%w: invalid quantity %q", domain.ErrMalformedRecord, fields[4])
		}

		var side domain.TradeSide
		switch fields[5] {
		case string(domain.Buy):
			side = domain.Buy
		case string(domain.Sell):
			side = domain.Sell
		default:
			return fmt.Errorf("%w: unknown trade side %q", domain.ErrUnknownEnumToken, fields[5])
		}

		s.publish(domain.Trade{
			Instrument: instrument,
			TradeID:    fields[1],
			Price:      price,
			Book:       fields[3],
			Quantity:   quantity,
			Side:       side,
		})
		return nil
	})
}
