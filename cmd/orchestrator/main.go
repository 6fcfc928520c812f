package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bookwise/payment-orchestrator/internal/application/services"
	"github.com/bookwise/payment-orchestrator/internal/config"
	"github.com/bookwise/payment-orchestrator/internal/infrastructure/gateway"
	"github.com/bookwise/payment-orchestrator/internal/interfaces/rest/handlers"
	"github.com/bookwise/payment-orchestrator/internal/interfaces/rest/middleware"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := cfg.Logger.NewLogger()
	slog.SetDefault(logger)

	logger.Info("starting booking payment orchestrator",
		"port", cfg.Server.Port,
		"gateway", cfg.Gateway.BaseURL,
		"log_level", cfg.Logger.Level,
	)

	gatewayClient := gateway.NewGatewayClient(cfg.Gateway)
	if cfg.Retry.MaxRetries > 0 {
		gatewayClient = gateway.NewRetryGatewayClient(gatewayClient, cfg.Retry)
	}

	bookingService := services.NewBookingService(gatewayClient, logger)

	paymentHandler := handlers.NewPaymentHandler(bookingService)

	mux := http.NewServeMux()
	paymentHandler.RegisterRoutes(mux)

	handler := middleware.Recovery(logger)(mux)
	handler = middleware.Logging(logger)(handler)
	handler = middleware.Timeout(cfg.Server.ReadTimeout)(handler)

	server := &http.Server{
		Addr:         "0.0.0.0:" + cfg.Server.Port,
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		logger.Info("server starting", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	logger.Info("server exited")
}
