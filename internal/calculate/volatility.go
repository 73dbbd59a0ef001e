package calculate

import (
	"github.com/agrovista/mandi/models"
)

// Volatility classifies price dispersion by coefficient of variation.
// When a historical series with at least two points is supplied, the
// standard deviation of its percentage returns is reported as
// historical volatility; otherwise that field stays absent.
func Volatility(prices []float64, historical []models.HistoricalPricePoint) models.VolatilityMetrics {
	if len(prices) < 2 {
		return models.VolatilityMetrics{
			Class:          "Low",
			Stability:      "High",
			Interpretation: interpretVolatility(0),
		}
	}

	cv := CoefficientOfVariation(prices)

	class, stability := classifyVolatility(cv)

	metrics := models.VolatilityMetrics{
		Volatility:     Round2(cv),
		Class:          class,
		Stability:      stability,
		StdDev:         Round2(StdDev(prices)),
		Interpretation: interpretVolatility(cv),
	}

	var histPrices []float64
	for _, h := range historical {
		if h.Price > 0 {
			histPrices = append(histPrices, h.Price)
		}
	}
	if len(histPrices) > 1 {
		returns := PercentReturns(histPrices)
		hv := Round2(StdDev(returns))
		metrics.HistoricalVolatility = &hv
	}

	return metrics
}

func classifyVolatility(cv float64) (class, stability string) {
	switch {
	case cv < 10:
		return "Low", "Very Stable"
	case cv < 20:
		return "Moderate", "Stable"
	case cv < 30:
		return "High", "Unstable"
	default:
		return "Very High", "Highly Unstable"
	}
}

func interpretVolatility(cv float64) string {
	switch {
	case cv < 10:
		return "Prices are very stable with low variability"
	case cv < 20:
		return "Moderate price variability - normal market conditions"
	case cv < 30:
		return "High price variability - volatile market conditions"
	default:
		return "Very high price variability - extremely volatile market"
	}
}
