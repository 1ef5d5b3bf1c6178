package connector

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/cshen/tsyflow/internal/domain"
)

// MarketDataSubscriber parses marketdata.txt: identifier,
// price(fractional), quantity, side. Every ingest is handed to the
// market-data service's batching accumulator, not published directly.
type MarketDataSubscriber struct {
	r      io.Reader
	logger *slog.Logger
	ingest func(identifier string, order domain.Order) error
}

func NewMarketDataSubscriber(r io.Reader, logger *slog.Logger, ingest func(string, domain.Order) error) *MarketDataSubscriber {
	return &MarketDataSubscriber{r: r, logger: logger, ingest: ingest}
}

func (s *MarketDataSubscriber) Subscribe() error {
	return scanLines(s.r, s.logger, "marketdata.txt", func(line string) error {
		fields, err := splitCSVLine(line, 4)
		if err != nil {
			return fmt.Errorf("%w: %v", domain.ErrMalformedRecord, err)
		}

		identifier := fields[0]
		if _, err := domain.GetInstrument(identifier); err != nil {
			return err
		}
		price, err := domain.ParseFractionalPrice(fields[1])
		if err != nil {
			return err
		}
		quantity, err := strconv.ParseInt(fields[2], 10, 64)
		if err != nil {
			return fmt.Errorf("%w: invalid quantity %q", domain.ErrMalformedRecord, fields[2])
		}

		var side domain.PricingSide
		switch fields[3] {
		case string(domain.Bid):
			side = domain.Bid
		case string(domain.Offer):
			side = domain.Offer
		default:
			return fmt.Errorf("%w: unknown market data side %q", domain.ErrUnknownEnumToken, fields[3])
		}

		return s.ingest(identifier, domain.Order{Price: price, Quantity: quantity, Side: side})
	})
}
