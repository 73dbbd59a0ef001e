// Package price resolves commodity quotes through an ordered source
// chain (live Agmarknet first, the built-in reference table last) and
// derives the quick market sentiment snapshot from a quote batch. A
// source miss falls through to the next source; the chain never fails
// a whole batch.
package price

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/agrovista/mandi/internal/metrics"
	"github.com/agrovista/mandi/models"
)

// Source is one link in the chain. ok=false means "could not quote",
// which is not an error.
type Source interface {
	FetchPrice(ctx context.Context, commodity string, loc models.Location) (models.PriceObservation, bool)
}

// Chain is the ordered source chain. Implements models.PriceProvider.
type Chain struct {
	sources []Source
	log     zerolog.Logger
	now     func() time.Time
}

// NewChain builds a chain over the given live sources. The reference
// table always backs the chain, so every requested commodity gets a
// quote.
func NewChain(logger zerolog.Logger, sources ...Source) *Chain {
	return &Chain{
		sources: sources,
		log:     logger.With().Str("component", "price").Logger(),
		now:     time.Now,
	}
}

// GetPrices resolves one quote per commodity, trying each source in
// order. An empty commodity list means the full reference catalogue.
func (c *Chain) GetPrices(ctx context.Context, loc models.Location, commodities []string) []models.PriceObservation {
	if len(commodities) == 0 {
		commodities = ReferenceCommodities()
	}

	out := make([]models.PriceObservation, 0, len(commodities))
	for _, commodity := range commodities {
		out = append(out, c.resolve(ctx, commodity, loc))
	}
	return out
}

func (c *Chain) resolve(ctx context.Context, commodity string, loc models.Location) models.PriceObservation {
	for _, source := range c.sources {
		if obs, ok := source.FetchPrice(ctx, commodity, loc); ok {
			return obs
		}
	}
	c.log.Debug().Str("commodity", commodity).Msg("no live quote, using reference price")
	metrics.PriceSourceFallbacks.Inc()
	return referencePrice(commodity, loc, c.now())
}
