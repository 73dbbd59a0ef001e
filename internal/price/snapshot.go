package price

import (
	"github.com/agrovista/mandi/internal/calculate"
	"github.com/agrovista/mandi/models"
)

// Snapshot derives the quick sentiment view from one quote batch.
// Returns nil for an empty batch.
func Snapshot(observations []models.PriceObservation) *models.MarketSnapshot {
	if len(observations) == 0 {
		return nil
	}

	distribution := map[models.PriceTrend]int{
		models.TrendIncreasing: 0,
		models.TrendDecreasing: 0,
		models.TrendStable:     0,
	}
	var sum float64
	best, worst := observations[0], observations[0]
	for _, obs := range observations {
		distribution[obs.PriceTrend]++
		sum += obs.CurrentPrice
		if obs.CurrentPrice > best.CurrentPrice {
			best = obs
		}
		if obs.CurrentPrice < worst.CurrentPrice {
			worst = obs
		}
	}

	total := len(observations)
	increasing := distribution[models.TrendIncreasing]
	decreasing := distribution[models.TrendDecreasing]

	return &models.MarketSnapshot{
		Sentiment:            sentiment(increasing, decreasing, total),
		AveragePrice:         calculate.Round2(sum / float64(total)),
		TrendDistribution:    distribution,
		BestPerforming:       quote(best),
		WorstPerforming:      quote(worst),
		MarketRecommendation: recommendation(increasing, decreasing, total),
	}
}

// sentiment is Bullish or Bearish when more than 60% of trends point
// one way, Neutral otherwise.
func sentiment(increasing, decreasing, total int) string {
	switch {
	case float64(increasing)/float64(total)*100 > 60:
		return "Bullish"
	case float64(decreasing)/float64(total)*100 > 60:
		return "Bearish"
	default:
		return "Neutral"
	}
}

func recommendation(increasing, decreasing, total int) string {
	switch {
	case float64(increasing) > float64(total)*0.6:
		return "Market is showing strong upward trends - good time for planting high-value crops"
	case float64(decreasing) > float64(total)*0.6:
		return "Market is declining - consider diversifying or focusing on staple crops"
	default:
		return "Market is stable - focus on crops with consistent demand"
	}
}

func quote(obs models.PriceObservation) *models.CommodityQuote {
	return &models.CommodityQuote{
		Commodity: obs.CommodityName,
		Price:     obs.CurrentPrice,
		Trend:     obs.PriceTrend,
	}
}
