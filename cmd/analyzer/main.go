// Command analyzer fetches commodity prices and prints the full market
// analysis report as JSON, for one-shot runs and cron jobs.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/agrovista/mandi/config"
	"github.com/agrovista/mandi/internal/analyze"
	"github.com/agrovista/mandi/internal/api/agmarknet"
	"github.com/agrovista/mandi/internal/charts"
	platformhttp "github.com/agrovista/mandi/internal/platform/http"
	"github.com/agrovista/mandi/internal/price"
	"github.com/agrovista/mandi/models"
)

func main() {
	state := flag.String("state", "", "state to price against (defaults to DEFAULT_STATE)")
	crops := flag.String("crops", "", "comma-separated commodities (defaults to the full catalogue)")
	withCharts := flag.Bool("charts", false, "include base64 chart images in the report")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}
	setupLogging(cfg.LogLevel)

	if *state == "" {
		*state = cfg.DefaultState
	}
	var commodities []string
	for _, c := range strings.Split(*crops, ",") {
		if trimmed := strings.TrimSpace(c); trimmed != "" {
			commodities = append(commodities, trimmed)
		}
	}

	httpClient := platformhttp.NewClient(platformhttp.ClientOptions{
		Timeout:        time.Duration(cfg.SourceTimeout) * time.Second,
		RequestsPerSec: cfg.RequestsPerSec,
	})
	chain := price.NewChain(log.Logger, agmarknet.New(httpClient, log.Logger))

	var renderer analyze.ChartRenderer
	if *withCharts {
		renderer = charts.New(log.Logger)
	}
	analyzer := analyze.New(renderer, log.Logger)

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.RequestTimeout)*time.Second)
	defer cancel()

	observations := chain.GetPrices(ctx, models.Location{State: *state}, commodities)
	report := analyzer.AnalyzeMarket(observations, nil)

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		log.Fatal().Err(err).Msg("Failed to encode report")
	}
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
