// Command tsyflow runs the fixed-income trading pipeline once to
// completion: it reads prices.txt, trades.txt, marketdata.txt, and
// inquiries.txt from the working directory to EOF, and writes
// positions.txt, risk.txt, executions.txt, streaming.txt,
// allinquiries.txt, and gui.txt there. It takes no flags and reads no
// environment variables.
package main

import (
	"log/slog"
	"os"
	"time"

	"github.com/cshen/tsyflow/internal/config"
	"github.com/cshen/tsyflow/internal/connector"
	"github.com/cshen/tsyflow/internal/domain"
	"github.com/cshen/tsyflow/internal/engine"
	"github.com/cshen/tsyflow/internal/persist"
	"github.com/google/uuid"
)

func main() {
	runID := uuid.New().String()
	logger := slog.New(slog.NewJSONHandler(os.Stderr, nil)).With(slog.String("run_id", runID))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := run(cfg, logger); err != nil {
		logger.Error("pipeline failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *slog.Logger) error {
	pricingService := engine.NewPricingService()
	algoStreamingService := engine.NewAlgoStreamingService(cfg.AlgoStreamingBaseVisibleSize)
	streamingService := engine.NewStreamingService()
	marketDataService := engine.NewMarketDataService(cfg.MarketDataBatchSize)
	algoExecutionService := engine.NewAlgoExecutionService(cfg.AlgoExecutionSpreadThreshold)
	executionService := engine.NewExecutionService()
	tradeBookingService := engine.NewTradeBookingService(cfg.TradeBookingBooks)
	positionService := engine.NewPositionService()
	riskService := engine.NewRiskService()
	inquiryService := engine.NewInquiryService()
	guiService := engine.NewGUIThrottleService(cfg.GUIThrottleInterval, time.Now)

	writers, err := newWriters(cfg, logger)
	if err != nil {
		return err
	}
	defer writers.closeAll(logger)

	pricingService.AddListener(algoStreamingService)
	pricingService.AddListener(guiService)
	algoStreamingService.AddListener(streamingService)
	streamingService.AddListener(writers.streaming)
	marketDataService.AddListener(algoExecutionService)
	algoExecutionService.AddListener(executionService)
	executionService.AddListener(tradeBookingService)
	executionService.AddListener(writers.executions)
	tradeBookingService.AddListener(positionService)
	positionService.AddListener(riskService)
	positionService.AddListener(writers.positions)
	riskService.AddListener(writers.risk)
	inquiryService.AddListener(writers.inquiries)
	guiService.AddListener(writers.gui)

	pricesFile, err := os.Open(cfg.PricesFile)
	if err != nil {
		return err
	}
	defer pricesFile.Close()

	tradesFile, err := os.Open(cfg.TradesFile)
	if err != nil {
		return err
	}
	defer tradesFile.Close()

	inquiriesFile, err := os.Open(cfg.InquiriesFile)
	if err != nil {
		return err
	}
	defer inquiriesFile.Close()

	marketDataFile, err := os.Open(cfg.MarketDataFile)
	if err != nil {
		return err
	}
	defer marketDataFile.Close()

	pricesSub := connector.NewPricesSubscriber(pricesFile, logger, pricingService.OnMessage)
	logger.Info("subscribing prices")
	if err := pricesSub.Subscribe(); err != nil {
		return err
	}

	tradesSub := connector.NewTradesSubscriber(tradesFile, logger, tradeBookingService.Ingest)
	logger.Info("subscribing trades")
	if err := tradesSub.Subscribe(); err != nil {
		return err
	}

	inquiriesSub := connector.NewInquiriesSubscriber(inquiriesFile, logger, inquiryService.Receive)
	logger.Info("subscribing inquiries")
	if err := inquiriesSub.Subscribe(); err != nil {
		return err
	}

	marketDataSub := connector.NewMarketDataSubscriber(marketDataFile, logger, marketDataService.Ingest)
	logger.Info("subscribing market data")
	if err := marketDataSub.Subscribe(); err != nil {
		return err
	}

	return nil
}

type writerSet struct {
	positions  *persist.Writer[domain.Position]
	risk       *persist.Writer[domain.PV01]
	executions *persist.Writer[domain.ExecutionOrder]
	streaming  *persist.Writer[domain.PriceStream]
	inquiries  *persist.Writer[domain.Inquiry]
	gui        *persist.Writer[domain.Price]
}

func newWriters(cfg *config.Config, logger *slog.Logger) (*writerSet, error) {
	positions, err := persist.NewWriter[domain.Position](cfg.PositionsFile, time.Now, logger)
	if err != nil {
		return nil, err
	}
	risk, err := persist.NewWriter[domain.PV01](cfg.RiskFile, time.Now, logger)
	if err != nil {
		return nil, err
	}
	executions, err := persist.NewWriter[domain.ExecutionOrder](cfg.ExecutionsFile, time.Now, logger)
	if err != nil {
		return nil, err
	}
	streaming, err := persist.NewWriter[domain.PriceStream](cfg.StreamingFile, time.Now, logger)
	if err != nil {
		return nil, err
	}
	inquiries, err := persist.NewWriter[domain.Inquiry](cfg.AllInquiriesFile, time.Now, logger)
	if err != nil {
		return nil, err
	}
	gui, err := persist.NewWriter[domain.Price](cfg.GUIFile, time.Now, logger)
	if err != nil {
		return nil, err
	}

	return &writerSet{
		positions:  positions,
		risk:       risk,
		executions: executions,
		streaming:  streaming,
		inquiries:  inquiries,
		gui:        gui,
	}, nil
}

func (w *writerSet) closeAll(logger *slog.Logger) {
	for _, c := range []interface{ Close() error }{w.positions, w.risk, w.executions, w.streaming, w.inquiries, w.gui} {
		if err := c.Close(); err != nil {
			logger.Error("failed to close output file", slog.String("error", err.Error()))
		}
	}
}
