package main

import (
	"stock_monitor/internal/app/router"
	"stock_monitor/internal/feature/watchlist/adapters"
	watchlisthandler "stock_monitor/internal/feature/watchlist/transport/handler"
	"stock_monitor/internal/feature/watchlist/usecase"
	"stock_monitor/internal/platform/config"
	"stock_monitor/internal/platform/db"
	"stock_monitor/internal/platform/externalapi/twelvedata"
	infrahttp "stock_monitor/internal/platform/http"
	"stock_monitor/internal/platform/http/handler"
	"stock_monitor/internal/platform/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.L().Fatal().Err(err).Msg("invalid configuration")
	}
	logger.Init(cfg.Log.Level, cfg.Log.Pretty)

	if cfg.Market.APIKey == "" {
		logger.L().Warn().Msg("TWELVE_DATA_API_KEY is not set; ticker validation will fail")
	}

	// db
	gdb, err := db.Open(cfg.DB)
	if err != nil {
		logger.L().Fatal().Err(err).Msg("failed to open database")
	}

	// Repository
	tickerRepo := adapters.NewTickerRepository(gdb)

	// External market data client
	httpClient := infrahttp.NewHTTPClient(cfg.Market.Timeout)
	market := twelvedata.NewSymbolLookup(twelvedata.Config{
		APIKey:  cfg.Market.APIKey,
		BaseURL: cfg.Market.BaseURL,
		Timeout: cfg.Market.Timeout,
	}, httpClient)

	// Usecase
	tickerUC := usecase.NewTickerUsecase(tickerRepo, market)

	// Handler
	tickerH := watchlisthandler.NewTickerHandler(tickerUC)
	rootH := handler.NewRootHandler(config.AppName, config.Version)

	r := router.NewRouter(rootH, tickerH)

	logger.L().Info().Str("port", cfg.Server.Port).Msg("starting server")
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		logger.L().Fatal().Err(err).Msg("server exited")
	}
}
