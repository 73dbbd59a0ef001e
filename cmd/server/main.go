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

	"github.com/agrovista/mandi/config"
	"github.com/agrovista/mandi/internal/advisory"
	"github.com/agrovista/mandi/internal/agdata"
	"github.com/agrovista/mandi/internal/analyze"
	"github.com/agrovista/mandi/internal/api/agmarknet"
	"github.com/agrovista/mandi/internal/api/openweather"
	"github.com/agrovista/mandi/internal/charts"
	platformhttp "github.com/agrovista/mandi/internal/platform/http"
	"github.com/agrovista/mandi/internal/price"
	"github.com/agrovista/mandi/internal/recommend"
	"github.com/agrovista/mandi/internal/server"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// 2. Configure logging
	setupLogging(cfg.LogLevel)
	log.Info().Str("port", cfg.Port).Msg("Starting mandi API server")

	// 3. Shared outbound HTTP client
	httpClient := platformhttp.NewClient(platformhttp.ClientOptions{
		Timeout:        time.Duration(cfg.SourceTimeout) * time.Second,
		RequestsPerSec: cfg.RequestsPerSec,
	})

	// 4. Collaborators
	kb := agdata.New()
	weather := openweather.New(httpClient, cfg.OpenWeatherAPIKey, log.Logger)
	prices := price.NewChain(log.Logger, agmarknet.New(httpClient, log.Logger))
	llm := advisory.New(advisory.Options{
		APIKey:      cfg.AnthropicAPIKey,
		Model:       cfg.AdvisoryModel,
		Temperature: cfg.AdvisoryTemp,
	}, log.Logger)

	var renderer analyze.ChartRenderer
	if cfg.ChartsEnabled {
		renderer = charts.New(log.Logger)
	}

	// 5. Core services and router
	srv := server.New(cfg, server.Deps{
		KB:       kb,
		Weather:  weather,
		Prices:   prices,
		Advisory: llm,
		Engine:   recommend.New(kb, log.Logger),
		Analyzer: analyze.New(renderer, log.Logger),
	}, log.Logger)

	httpServer := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      srv.Handler(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: time.Duration(cfg.RequestTimeout) * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server error")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutdown signal received")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Shutdown error")
	}
	log.Info().Msg("Server stopped")
}

// setupLogging configures the logger
func setupLogging(logLevel string) {
	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	log.Logger = log.Output(output)

	level, err := zerolog.ParseLevel(logLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
}
