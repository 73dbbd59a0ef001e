package calculate

import (
	"sort"

	"github.com/agrovista/mandi/models"
)

// SegmentMarket splits a batch into low/medium/high price tertiles.
// Thresholds are the values at sorted indices n/3 and 2n/3 - a split
// on sorted rank, not on equal price intervals; ties at the boundary
// fall into the lower segment. Needs at least three observations.
func SegmentMarket(observations []models.PriceObservation) models.MarketSegmentation {
	if len(observations) < 3 {
		return models.MarketSegmentation{Message: "Insufficient data for segmentation"}
	}

	sorted := make([]float64, len(observations))
	for i, obs := range observations {
		sorted[i] = obs.CurrentPrice
	}
	sort.Float64s(sorted)

	n := len(sorted)
	lowThreshold := sorted[n/3]
	highThreshold := sorted[2*n/3]

	var low, medium, high []models.PriceObservation
	for _, obs := range observations {
		switch {
		case obs.CurrentPrice <= lowThreshold:
			low = append(low, obs)
		case obs.CurrentPrice <= highThreshold:
			medium = append(medium, obs)
		default:
			high = append(high, obs)
		}
	}

	return models.MarketSegmentation{
		Low:    buildSegment(low),
		Medium: buildSegment(medium),
		High:   buildSegment(high),
		Method: "Rank-based tertile split",
	}
}

func buildSegment(members []models.PriceObservation) models.PriceSegment {
	segment := models.PriceSegment{
		Count:       len(members),
		Commodities: []string{},
	}
	if len(members) == 0 {
		return segment
	}
	var sum float64
	for _, m := range members {
		sum += m.CurrentPrice
		segment.Commodities = append(segment.Commodities, m.CommodityName)
	}
	segment.AvgPrice = Round2(sum / float64(len(members)))
	return segment
}
