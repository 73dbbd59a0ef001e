package calculate

import (
	"fmt"

	"github.com/agrovista/mandi/models"
)

// PairwiseSimilarity computes the price-level similarity heuristic for
// every unordered pair of commodities:
//
//	similarity = 1 - |p_i - p_j| / max(p_i, p_j)
//
// Values near 1 mean similar price levels. This is NOT a time-series
// correlation coefficient; it only compares current price levels.
func PairwiseSimilarity(observations []models.PriceObservation) models.SimilarityAnalysis {
	if len(observations) < 2 {
		return models.SimilarityAnalysis{Message: "Insufficient data for similarity analysis"}
	}

	pairs := make(map[string]float64)
	for i := 0; i < len(observations); i++ {
		for j := i + 1; j < len(observations); j++ {
			pi := observations[i].CurrentPrice
			pj := observations[j].CurrentPrice
			max := pi
			if pj > max {
				max = pj
			}
			similarity := 0.0
			if max > 0 {
				diff := pi - pj
				if diff < 0 {
					diff = -diff
				}
				similarity = 1 - diff/max
			}
			key := fmt.Sprintf("%s_vs_%s", observations[i].CommodityName, observations[j].CommodityName)
			pairs[key] = Round3(similarity)
		}
	}

	return models.SimilarityAnalysis{
		Pairwise:       pairs,
		Interpretation: "Price similarity indicates commodities with similar market positioning",
	}
}
