package calculate

import (
	"github.com/agrovista/mandi/models"
)

// AnalyzeTrends derives direction and momentum from the categorical
// trend labels and price levels of a batch of observations.
//
// trend_score = (increasing - decreasing) / total, in [-1, 1].
// Momentum is the mean first difference of the price levels, a proxy
// for rate of change when no historical series is available.
func AnalyzeTrends(observations []models.PriceObservation) models.TrendAnalysis {
	distribution := map[models.PriceTrend]int{
		models.TrendIncreasing: 0,
		models.TrendDecreasing: 0,
		models.TrendStable:     0,
	}

	var levels []float64
	for _, obs := range observations {
		distribution[obs.PriceTrend]++
		if obs.CurrentPrice > 0 {
			levels = append(levels, obs.CurrentPrice)
		}
	}

	momentum := 0.0
	if len(levels) > 1 {
		var sum float64
		for i := 1; i < len(levels); i++ {
			sum += levels[i] - levels[i-1]
		}
		momentum = sum / float64(len(levels)-1)
	}

	total := 0
	for _, c := range distribution {
		total += c
	}
	score := 0.0
	if total > 0 {
		score = float64(distribution[models.TrendIncreasing]-distribution[models.TrendDecreasing]) / float64(total)
	}

	return models.TrendAnalysis{
		Distribution: distribution,
		TrendScore:   Round3(score),
		Momentum:     Round2(momentum),
		Strength:     trendStrength(score),
		Direction:    marketDirection(score),
	}
}

func trendStrength(score float64) string {
	abs := score
	if abs < 0 {
		abs = -abs
	}
	switch {
	case abs > 0.6:
		return "Strong"
	case abs > 0.3:
		return "Moderate"
	default:
		return "Weak"
	}
}

func marketDirection(score float64) string {
	switch {
	case score > 0.3:
		return "Bullish"
	case score < -0.3:
		return "Bearish"
	default:
		return "Neutral"
	}
}
