package calculate

import (
	"math"
	"sort"

	"github.com/agrovista/mandi/models"
)

// Round2 rounds to 2 decimal places, the reporting convention for
// prices and percentages.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Round3 rounds to 3 decimal places, used for scores and ratios.
func Round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}

// Mean returns the arithmetic mean, 0 for an empty sample.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// Median returns the middle value of the sample, 0 for an empty sample.
func Median(values []float64) float64 {
	n := len(values)
	if n == 0 {
		return 0
	}
	sorted := make([]float64, n)
	copy(sorted, values)
	sort.Float64s(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}

// Variance returns the population variance (divisor n).
func Variance(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	mean := Mean(values)
	var sum float64
	for _, v := range values {
		d := v - mean
		sum += d * d
	}
	return sum / float64(len(values))
}

// StdDev returns the population standard deviation.
func StdDev(values []float64) float64 {
	return math.Sqrt(Variance(values))
}

// Percentile returns the p-th percentile (0-100) using linear
// interpolation between sorted sample points.
func Percentile(values []float64, p float64) float64 {
	n := len(values)
	if n == 0 {
		return 0
	}
	sorted := make([]float64, n)
	copy(sorted, values)
	sort.Float64s(sorted)
	if n == 1 {
		return sorted[0]
	}
	rank := p / 100 * float64(n-1)
	lo := int(math.Floor(rank))
	hi := int(math.Ceil(rank))
	if lo < 0 {
		lo = 0
	}
	if hi > n-1 {
		hi = n - 1
	}
	if lo == hi {
		return sorted[lo]
	}
	frac := rank - float64(lo)
	return sorted[lo] + frac*(sorted[hi]-sorted[lo])
}

// CoefficientOfVariation returns std/mean*100, 0 when the mean is not
// positive. Scale-invariant dispersion measure.
func CoefficientOfVariation(values []float64) float64 {
	mean := Mean(values)
	if mean <= 0 {
		return 0
	}
	return StdDev(values) / mean * 100
}

// Summarize computes the descriptive statistics of a price sample.
// An empty sample yields a diagnostic message with zeroed fields.
func Summarize(prices []float64) models.DescriptiveStats {
	if len(prices) == 0 {
		return models.DescriptiveStats{Message: "No price data available for analysis"}
	}

	q25 := Percentile(prices, 25)
	q75 := Percentile(prices, 75)
	min, max := prices[0], prices[0]
	for _, p := range prices[1:] {
		if p < min {
			min = p
		}
		if p > max {
			max = p
		}
	}

	return models.DescriptiveStats{
		Mean:     Round2(Mean(prices)),
		Median:   Round2(Median(prices)),
		StdDev:   Round2(StdDev(prices)),
		Variance: Round2(Variance(prices)),
		CV:       Round2(CoefficientOfVariation(prices)),
		Min:      Round2(min),
		Max:      Round2(max),
		Range:    Round2(max - min),
		Q25:      Round2(q25),
		Q75:      Round2(q75),
		IQR:      Round2(q75 - q25),
	}
}
