package recommend

import (
	"github.com/agrovista/mandi/models"
)

// Distance divisors for the partial-credit suitability factors. A crop
// loses all temperature credit 10°C outside its optimal range, all
// rainfall credit 500mm outside, all humidity credit 20 points outside.
const (
	temperatureDivisor = 10
	rainfallDivisor    = 500
	humidityDivisor    = 20
)

// Suitability scores one crop against a region and weather snapshot.
// Four equally weighted factors, each in [0,1]: temperature, rainfall,
// humidity (full credit inside the crop's optimal range, linear decay
// outside) and regional fit (1.0 when the crop is among the region's
// major crops, 0.5 otherwise - absence is not disqualifying).
// An unknown crop scores 0.
func Suitability(kb models.KnowledgeBase, crop, state string, weather models.WeatherSnapshot) float64 {
	profile, ok := kb.Crop(crop)
	if !ok {
		return 0
	}

	score := rangeFactor(profile.Temperature, weather.Temperature, temperatureDivisor)
	score += rangeFactor(profile.Rainfall, weather.Rainfall, rainfallDivisor)
	score += rangeFactor(profile.Humidity, weather.Humidity, humidityDivisor)

	regional := 0.5
	if region, ok := kb.Region(state); ok {
		for _, major := range region.MajorCrops {
			if major == crop {
				regional = 1.0
				break
			}
		}
	}
	score += regional

	return score / 4
}

// rangeFactor is 1.0 inside the optimal range, decaying linearly with
// the distance to the nearest bound, floored at 0.
func rangeFactor(optimal models.Range, value, divisor float64) float64 {
	if optimal.Contains(value) {
		return 1.0
	}
	factor := 1.0 - optimal.Distance(value)/divisor
	if factor < 0 {
		return 0
	}
	return factor
}
