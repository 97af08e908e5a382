package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pudu-fleet-gateway/config"
	httpHandler "pudu-fleet-gateway/internal/adapter/http/handler"
	"pudu-fleet-gateway/internal/core/ports"
	"pudu-fleet-gateway/internal/service"
	"pudu-fleet-gateway/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Str("cloud_base_url", cfg.Cloud.BaseURL).
		Msg("Starting Pudu Fleet Gateway")

	// Initialize signed cloud transport. Credentials are validated
	// here; a misconfigured gateway must not come up.
	signer := service.NewPuduSignatureService(cfg.Cloud.AppKey, cfg.Cloud.AppSecret)
	cloudSvc, err := service.NewCloudService(cfg.Cloud, signer, &http.Client{Timeout: cfg.Cloud.Timeout})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize cloud service")
	}
	defer cloudSvc.Close()

	// Deep health probes the cloud with a signed request
	cloudHealth := service.NewCloudHealthChecker(cloudSvc)

	// Load OpenAPI spec for Swagger UI
	if specBytes, err := os.ReadFile("docs/api/openapi.yaml"); err == nil {
		httpHandler.SetSwaggerSpec(specBytes)
		log.Info().Msg("OpenAPI spec loaded for Swagger UI at /swagger")
	} else {
		log.Warn().Err(err).Msg("OpenAPI spec not found, Swagger UI will be unavailable")
	}

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		Cloud:          cloudSvc,
		HealthCheckers: []ports.HealthChecker{cloudHealth},
		Logger:         log,
	})

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
