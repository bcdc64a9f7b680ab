// cmd/api/main.go

package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"brandpulse/internal/app"
	"brandpulse/internal/config"
	"brandpulse/internal/server"
	"brandpulse/internal/server/handlers"
)

func main() {
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(os.Stderr)

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Setup signal handling for graceful shutdown
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Wire the report pipeline: the primary table is required, the
	// related sources degrade to hint messages when missing
	pipeline, err := app.Build(cfg.Report.VariantPath)
	if err != nil {
		log.Fatal().Err(err).Str("variant", cfg.Report.VariantPath).Msg("Failed to build report pipeline")
	}

	// Initialize handlers
	reportHandler := handlers.NewReportHandler(pipeline.Reporter)
	relatedHandler := handlers.NewRelatedHandler(pipeline.Reporter, handlers.RelatedSources{
		Mentions:     pipeline.Mentions,
		MentionsHint: pipeline.MentionsHint,
		Channels:     pipeline.Channels,
		ChannelsHint: pipeline.ChannelsHint,
	})

	// Initialize HTTP server
	httpServer := server.NewServer(cfg.Server, reportHandler, relatedHandler)

	// Start HTTP server
	go func() {
		log.Info().Str("host", cfg.Server.Host).Int("port", cfg.Server.Port).Msg("Starting HTTP server")
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server error")
		}
	}()

	// Wait for shutdown signal
	<-shutdown
	log.Info().Msg("Shutdown signal received")

	// Create shutdown context with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()

	// Graceful shutdown
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown error")
	}

	log.Info().Msg("Shutdown complete")
}
