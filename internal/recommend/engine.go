// Package recommend implements the crop recommendation core: per-crop
// confidence scoring, ranking, the categorical risk profile and the
// rule-based advisory list. Everything here is a pure transformation
// over in-memory inputs; providers and the knowledge base are injected.
package recommend

import (
	"sort"
	"time"

	"github.com/rs/zerolog"

	"github.com/agrovista/mandi/internal/agdata"
	"github.com/agrovista/mandi/models"
)

const (
	// Crops scoring at or below this confidence are not recommended.
	minConfidence = 0.3
	// At most this many recommendations are returned per query.
	maxRecommendations = 5
	// Fallback price per quintal when no observation covers a crop.
	defaultMarketPrice = 2000
)

// Engine scores candidate crops against weather, region and market
// conditions. Safe for concurrent use.
type Engine struct {
	kb  models.KnowledgeBase
	log zerolog.Logger
	now func() time.Time
}

// New returns an engine over the given knowledge base.
func New(kb models.KnowledgeBase, logger zerolog.Logger) *Engine {
	return &Engine{
		kb:  kb,
		log: logger.With().Str("component", "recommend").Logger(),
		now: time.Now,
	}
}

// Recommend scores every candidate crop and returns the top candidates
// by confidence, highest first. Candidates are all known crops, or the
// intersection with the farmer's preference list when one is supplied.
func (e *Engine) Recommend(query models.FarmerQuery, weather models.WeatherSnapshot, prices []models.PriceObservation) []models.CropRecommendation {
	candidates := e.kb.CropNames()
	if len(query.PreferredCrops) > 0 {
		preferred := make(map[string]bool, len(query.PreferredCrops))
		for _, name := range query.PreferredCrops {
			preferred[name] = true
		}
		kept := candidates[:0]
		for _, name := range candidates {
			if preferred[name] {
				kept = append(kept, name)
			}
		}
		candidates = kept
	}

	season := agdata.SeasonForMonth(e.now().Month())
	planting, harvesting := agdata.PlantingWindow(season)

	recommendations := make([]models.CropRecommendation, 0, len(candidates))
	for _, name := range candidates {
		crop, ok := e.kb.Crop(name)
		if !ok {
			continue
		}

		suitability := Suitability(e.kb, name, query.Location.State, weather)
		market := marketScore(name, prices)
		confidence := e.confidence(suitability, market, crop, query)
		if confidence <= minConfidence {
			continue
		}

		price := marketPrice(name, prices)
		yield := crop.YieldPerHectare
		if query.LandSize > 0 {
			yield *= query.LandSize
		}
		profit := price * yield * crop.ProfitMargin

		recommendations = append(recommendations, models.CropRecommendation{
			CropName:        name,
			ConfidenceScore: confidence,
			ExpectedYield:   yield,
			MarketPrice:     price,
			EstimatedProfit: profit,
			PlantingSeason:  season,
			PlantingTime:    planting,
			HarvestingTime:  harvesting,
			WaterNeed:       crop.WaterRequirement,
			FertilizerNeed:  crop.FertilizerNeed,
			PestRisk:        crop.PestRisk,
			MarketDemand:    crop.MarketDemand,
			Reasons:         reasons(crop, suitability, market, weather),
		})
	}

	sort.SliceStable(recommendations, func(i, j int) bool {
		return recommendations[i].ConfidenceScore > recommendations[j].ConfidenceScore
	})
	if len(recommendations) > maxRecommendations {
		recommendations = recommendations[:maxRecommendations]
	}

	e.log.Debug().
		Int("candidates", len(candidates)).
		Int("recommended", len(recommendations)).
		Str("season", string(season)).
		Msg("scored crop candidates")

	return recommendations
}

// confidence blends suitability and market momentum 60/40, applies the
// risk-tolerance and budget adjustments and clamps to [0,1].
func (e *Engine) confidence(suitability, market float64, crop models.CropProfile, query models.FarmerQuery) float64 {
	confidence := suitability*0.6 + market*0.4

	switch query.RiskTolerance {
	case models.LevelLow:
		if crop.PestRisk == models.LevelLow && crop.MarketDemand == models.LevelHigh {
			confidence += 0.1
		}
	case models.LevelHigh:
		if crop.ProfitMargin > 0.3 {
			confidence += 0.1
		}
	}

	if query.Budget > 0 {
		// Rough per-hectare cultivation cost.
		if crop.YieldPerHectare*1000 > query.Budget {
			confidence *= 0.5
		}
	}

	if confidence > 1 {
		return 1
	}
	if confidence < 0 {
		return 0
	}
	return confidence
}

// marketScore maps the crop's observed trend onto a momentum score,
// 0.5 when no observation covers the crop.
func marketScore(crop string, prices []models.PriceObservation) float64 {
	for _, p := range prices {
		if p.CommodityName != crop {
			continue
		}
		switch p.PriceTrend {
		case models.TrendIncreasing:
			return 0.9
		case models.TrendStable:
			return 0.7
		default:
			return 0.4
		}
	}
	return 0.5
}

func marketPrice(crop string, prices []models.PriceObservation) float64 {
	for _, p := range prices {
		if p.CommodityName == crop {
			return p.CurrentPrice
		}
	}
	return defaultMarketPrice
}

// reasons builds the explanation list in a fixed order so the output
// is stable for identical inputs.
func reasons(crop models.CropProfile, suitability, market float64, weather models.WeatherSnapshot) []string {
	var out []string

	if suitability > 0.8 {
		out = append(out, "Excellent suitability for current weather conditions")
	} else if suitability > 0.6 {
		out = append(out, "Good suitability for current weather conditions")
	}

	if market > 0.8 {
		out = append(out, "Strong market demand and favorable price trends")
	} else if market > 0.6 {
		out = append(out, "Stable market conditions")
	}

	if crop.MarketDemand == models.LevelHigh {
		out = append(out, "High market demand ensures good selling opportunities")
	}
	if crop.ProfitMargin > 0.3 {
		out = append(out, "High profit potential")
	}
	if weather.Suitability == "Excellent" {
		out = append(out, "Optimal weather conditions for this crop")
	}

	return out
}

// SummarizeLocation merges the query location with the regional profile
// for the response payload. Unknown states yield zeroed regional fields.
func (e *Engine) SummarizeLocation(loc models.Location) models.LocationSummary {
	summary := models.LocationSummary{
		State:    loc.State,
		District: loc.District,
		SoilType: loc.SoilType,
	}
	region, ok := e.kb.Region(loc.State)
	if !ok {
		return summary
	}
	if summary.SoilType == "" {
		summary.SoilType = region.SoilType
	}
	summary.Climate = region.Climate
	summary.IrrigationCoverage = region.IrrigationCoverage
	summary.AverageRainfall = region.AverageRainfall
	summary.MajorCrops = region.MajorCrops
	return summary
}
