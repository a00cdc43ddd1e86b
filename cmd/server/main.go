// Package main is the entry point for the OTA adapter gateway. The gateway
// fronts the legacy booking backend: adapted supplier modules are translated
// and answered locally, everything else is reverse-proxied unmodified.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	gatewayhttp "github.com/sajidmahamud835/ota-proxy/internal/adapter/http"
	gatewaymw "github.com/sajidmahamud835/ota-proxy/internal/adapter/http/middleware"
	"github.com/sajidmahamud835/ota-proxy/internal/adapter/supplier/duffel"
	"github.com/sajidmahamud835/ota-proxy/internal/adapter/supplier/iatalocal"
	"github.com/sajidmahamud835/ota-proxy/internal/config"
	"github.com/sajidmahamud835/ota-proxy/internal/domain"
	"github.com/sajidmahamud835/ota-proxy/internal/infrastructure/logger"
	"github.com/sajidmahamud835/ota-proxy/internal/infrastructure/upstream"
	"github.com/sajidmahamud835/ota-proxy/internal/usecase"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.MustLoad()

	appLog := logger.New(logger.Config{
		Level:       cfg.Logging.Level,
		Format:      cfg.Logging.Format,
		ServiceName: "ota-proxy",
	})
	log.Logger = appLog

	appLog.Info().
		Str("env", cfg.App.Env).
		Int("port", cfg.Server.Port).
		Str("legacy_target", cfg.Legacy.TargetURL).
		Msg("Configuration loaded")

	legacyURL, err := url.Parse(cfg.Legacy.TargetURL)
	if err != nil {
		appLog.Fatal().Err(err).Msg("Invalid legacy target URL")
	}

	// Supplier adapters and orchestration
	registry := domain.NewSupplierRegistry(
		duffel.NewAdapter(cfg.Supplier.DuffelURL),
		iatalocal.NewAdapter(cfg.Supplier.IATALocalURL),
	)
	caller := upstream.NewClient(upstream.Config{
		Timeout:           cfg.Supplier.Timeout,
		RequestsPerSecond: cfg.Supplier.RateLimitRPS,
		Burst:             cfg.Supplier.RateLimitBurst,
	}, appLog)
	adaptUC := usecase.NewAdaptUseCase(registry, caller, appLog)
	handler := gatewayhttp.NewGatewayHandler(adaptUC)

	// HTTP server
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	gatewaymw.Setup(e, appLog)
	e.Use(gatewayhttp.PassThroughProxy(legacyURL, cfg.Legacy.StripPrefix))
	gatewayhttp.RegisterRoutes(e, handler)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	go func() {
		appLog.Info().Str("address", addr).Msg("Starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLog.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	gracefulShutdown(e)
}

// gracefulShutdown blocks until an interrupt signal and drains the server.
func gracefulShutdown(e *echo.Echo) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Error during server shutdown")
	}

	log.Info().Msg("Server stopped")
}
