package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"travel-planner/config"
	_ "travel-planner/docs" // Swagger docs
	currencyHTTP "travel-planner/internal/currency/delivery/http"
	currencyUC "travel-planner/internal/currency/usecase"
	"travel-planner/internal/httpserver"
	"travel-planner/internal/middleware"
	packingHTTP "travel-planner/internal/packing/delivery/http"
	packingFile "travel-planner/internal/packing/repository/file"
	packingUC "travel-planner/internal/packing/usecase"
	weatherHTTP "travel-planner/internal/weather/delivery/http"
	weatherUC "travel-planner/internal/weather/usecase"
	"travel-planner/pkg/frankfurter"
	"travel-planner/pkg/log"
	"travel-planner/pkg/openmeteo"
)

// @title       Travel Planner API
// @description Packing checklist with weather forecasts and currency conversion for the destination.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Travel Planner...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Packing domain
	itemRepo := packingFile.New(cfg.Storage.Dir)
	packingUseCase := packingUC.New(ctx, logger, itemRepo)
	packingHandler := packingHTTP.New(logger, packingUseCase)

	// 4. Weather domain
	meteoClient := openmeteo.NewClient(cfg.OpenMeteo.Timeout).
		WithGeocodingBaseURL(cfg.OpenMeteo.GeocodingURL).
		WithForecastBaseURL(cfg.OpenMeteo.ForecastURL)
	weatherUseCase := weatherUC.New(logger, meteoClient, meteoClient)
	weatherHandler := weatherHTTP.New(logger, weatherUseCase)

	// 5. Currency domain
	fxClient := frankfurter.NewClient(cfg.Frankfurter.Timeout).
		WithBaseURL(cfg.Frankfurter.URL)
	currencyUseCase := currencyUC.New(logger, fxClient)
	currencyHandler := currencyHTTP.New(logger, currencyUseCase)

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		Middleware:      middleware.New(logger, cfg.RateLimit),
		PackingHandler:  packingHandler,
		WeatherHandler:  weatherHandler,
		CurrencyHandler: currencyHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
