package models

import "context"

// PriceProvider returns zero or more observations for the requested
// commodities. A commodity the provider cannot price is simply absent
// from the result; the provider never fails the whole batch.
type PriceProvider interface {
	GetPrices(ctx context.Context, loc Location, commodities []string) []PriceObservation
}

// WeatherProvider aggregates a forecast window for a location.
// Implementations fall back to static defaults rather than failing.
type WeatherProvider interface {
	GetSnapshot(ctx context.Context, loc Location) WeatherSnapshot
}

// KnowledgeBase is the read-only agronomic reference data. Unknown
// keys yield ok=false with a zero profile, never an error.
type KnowledgeBase interface {
	Crop(name string) (CropProfile, bool)
	Region(state string) (RegionProfile, bool)
	CropNames() []string
	SeasonalCrops(season Season) []string
}

// AdvisoryGenerator turns the query context into free-text advice.
// The text is opaque to the rest of the system.
type AdvisoryGenerator interface {
	Generate(ctx context.Context, query FarmerQuery, weather WeatherSnapshot, prices []PriceObservation) string
	Available(ctx context.Context) bool
}
