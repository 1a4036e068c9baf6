// Package main is the entry point for the layover daylight planner service.
//
//	@title						Layover Daylight Planner API
//	@version					1.0.0
//	@description				Reports how many hours of a layover fall in daylight and how many in darkness, split by local calendar day.
//
//	@contact.name				API Support
//	@contact.url				https://github.com/rest-planner/layover-daylight/issues
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/api/v1
//
//	@schemes					http https
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	// Import generated docs for swagger
	_ "github.com/rest-planner/layover-daylight/docs"

	"github.com/rest-planner/layover-daylight/internal/adapter/airport"
	planhttp "github.com/rest-planner/layover-daylight/internal/adapter/http"
	"github.com/rest-planner/layover-daylight/internal/adapter/http/middleware"
	"github.com/rest-planner/layover-daylight/internal/adapter/solar"
	"github.com/rest-planner/layover-daylight/internal/adapter/timezone"
	"github.com/rest-planner/layover-daylight/internal/config"
	"github.com/rest-planner/layover-daylight/internal/infrastructure/logger"
	"github.com/rest-planner/layover-daylight/internal/infrastructure/timeutil"
	"github.com/rest-planner/layover-daylight/internal/usecase"
)

const (
	shutdownTimeout = 10 * time.Second
	startupTimeout  = 2 * time.Minute
)

func main() {
	cfg := config.MustLoad()

	log := logger.New(cfg.Logging)
	logger.SetGlobal(log)

	logger.Info().
		Str("env", cfg.App.Env).
		Int("port", cfg.Server.Port).
		Str("airports_source", cfg.Airports.Source).
		Msg("Configuration loaded")

	ctx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	e, err := newServer(ctx, cfg, log)
	cancel()
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to initialize server")
	}

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	go func() {
		logger.Info().Str("address", addr).Msg("Starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	gracefulShutdown(e)
}

// newServer wires the adapters, use case and routes into an Echo instance.
func newServer(ctx context.Context, cfg *config.Config, log *logger.Logger) (*echo.Echo, error) {
	loader := airport.NewLoader(&airport.LoaderConfig{
		FetchTimeout: cfg.Airports.FetchTimeout,
		Logger:       log,
	})
	airports, err := loader.Load(ctx, cfg.Airports.Source)
	if err != nil {
		return nil, fmt.Errorf("load airports: %w", err)
	}

	zones, err := timezone.NewResolver()
	if err != nil {
		return nil, err
	}

	planner := usecase.NewStayPlanner(usecase.Dependencies{
		Airports: airports,
		Zones:    zones,
		Solar:    solar.NewCachedCalculator(solar.NewSunriseCalculator(), solar.DefaultCacheSize),
		Clock:    timeutil.NewRealClock(),
		Logger:   log.WithComponent("planner"),
	}, &usecase.Config{
		CalculationTimeout: cfg.Timeouts.Calculation,
		DefaultSearchLimit: cfg.Search.DefaultLimit,
		MaxSearchLimit:     cfg.Search.MaxLimit,
	})

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	middleware.Setup(e, log)
	planhttp.RegisterRoutes(e, planhttp.NewStayHandler(planner))

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e, nil
}

// gracefulShutdown handles graceful server shutdown on interrupt signals.
func gracefulShutdown(e *echo.Echo) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	logger.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("Error during server shutdown")
	}

	logger.Info().Msg("Server stopped")
}
