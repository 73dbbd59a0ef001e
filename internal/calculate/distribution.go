package calculate

import (
	"math"
	"sort"

	"github.com/agrovista/mandi/models"
)

// significance level for the normality decision
const normalityAlpha = 0.05

// AnalyzeDistribution runs the distribution-shape tests on a price
// sample: sample skewness, excess kurtosis and a normality test at the
// 0.05 level (Shapiro-Wilk for 3..5000 observations, Kolmogorov-
// Smirnov against a standard normal reference otherwise).
// Needs at least three prices; otherwise an insufficient-data marker.
func AnalyzeDistribution(prices []float64) models.DistributionAnalysis {
	n := len(prices)
	if n < 3 {
		return models.DistributionAnalysis{Message: "Insufficient data for distribution analysis"}
	}

	var pValue float64
	if n <= 5000 {
		_, pValue = ShapiroWilk(prices)
	} else {
		_, pValue = KolmogorovSmirnov(prices)
	}
	isNormal := pValue > normalityAlpha

	skew := Skewness(prices)
	kurt := Kurtosis(prices)

	distType := "Non-normal"
	if isNormal {
		distType = "Normal"
	}

	return models.DistributionAnalysis{
		DistributionType: distType,
		NormalityPValue:  math.Round(pValue*10000) / 10000,
		Skewness:         Round3(skew),
		Kurtosis:         Round3(kurt),
		SkewnessLabel:    skewnessLabel(skew),
		KurtosisLabel:    kurtosisLabel(kurt),
	}
}

// Skewness returns the biased sample skewness g1 = m3 / m2^1.5,
// 0 for a constant sample.
func Skewness(values []float64) float64 {
	m2 := centralMoment(values, 2)
	if m2 == 0 {
		return 0
	}
	return centralMoment(values, 3) / math.Pow(m2, 1.5)
}

// Kurtosis returns the biased excess kurtosis m4 / m2^2 - 3,
// 0 for a constant sample.
func Kurtosis(values []float64) float64 {
	m2 := centralMoment(values, 2)
	if m2 == 0 {
		return 0
	}
	return centralMoment(values, 4)/(m2*m2) - 3
}

func centralMoment(values []float64, order int) float64 {
	if len(values) == 0 {
		return 0
	}
	mean := Mean(values)
	var sum float64
	for _, v := range values {
		sum += math.Pow(v-mean, float64(order))
	}
	return sum / float64(len(values))
}

func skewnessLabel(skew float64) string {
	switch {
	case skew > 0.5:
		return "Right-skewed"
	case skew < -0.5:
		return "Left-skewed"
	default:
		return "Symmetric"
	}
}

func kurtosisLabel(kurt float64) string {
	switch {
	case kurt > 0:
		return "Heavy-tailed"
	case kurt < 0:
		return "Light-tailed"
	default:
		return "Normal-tailed"
	}
}

// ShapiroWilk computes the Shapiro-Wilk W statistic and its p-value
// following Royston's AS R94 approximation, valid for sample sizes
// 3 through 5000. A degenerate (constant) sample yields W=1, p=1.
func ShapiroWilk(values []float64) (w, p float64) {
	n := len(values)
	if n < 3 {
		return 0, 0
	}

	x := make([]float64, n)
	copy(x, values)
	sort.Float64s(x)

	if x[n-1] == x[0] {
		// constant sample: the test statistic is undefined, treat as normal
		return 1, 1
	}

	// Expected values of normal order statistics (Blom approximation).
	m := make([]float64, n)
	var ssq float64
	for i := 0; i < n; i++ {
		m[i] = normalQuantile((float64(i+1) - 0.375) / (float64(n) + 0.25))
		ssq += m[i] * m[i]
	}

	// Weights: normalized m with polynomial-corrected tail coefficients.
	a := make([]float64, n)
	rsn := 1 / math.Sqrt(float64(n))
	switch {
	case n == 3:
		a[0] = math.Sqrt(0.5)
		a[2] = -a[0]
	case n <= 5:
		an := poly([]float64{0, 0.221157, -0.147981, -2.071190, 4.434685, -2.706056}, rsn) + m[n-1]/math.Sqrt(ssq)
		phi := (ssq - 2*m[n-1]*m[n-1]) / (1 - 2*an*an)
		a[n-1] = an
		a[0] = -an
		for i := 1; i < n-1; i++ {
			a[i] = m[i] / math.Sqrt(phi)
		}
	default:
		an := poly([]float64{0, 0.221157, -0.147981, -2.071190, 4.434685, -2.706056}, rsn) + m[n-1]/math.Sqrt(ssq)
		an1 := poly([]float64{0, 0.042981, -0.293762, -1.752461, 5.682633, -3.582633}, rsn) + m[n-2]/math.Sqrt(ssq)
		phi := (ssq - 2*m[n-1]*m[n-1] - 2*m[n-2]*m[n-2]) / (1 - 2*an*an - 2*an1*an1)
		a[n-1] = an
		a[n-2] = an1
		a[0] = -an
		a[1] = -an1
		for i := 2; i < n-2; i++ {
			a[i] = m[i] / math.Sqrt(phi)
		}
	}

	mean := Mean(x)
	var num, den float64
	for i := 0; i < n; i++ {
		num += a[i] * x[i]
		den += (x[i] - mean) * (x[i] - mean)
	}
	w = num * num / den
	if w > 1 {
		w = 1
	}

	// p-value via Royston's normalizing transforms.
	switch {
	case n == 3:
		p = 6 / math.Pi * (math.Asin(math.Sqrt(w)) - math.Asin(math.Sqrt(0.75)))
		if p < 0 {
			p = 0
		}
		if p > 1 {
			p = 1
		}
	case n <= 11:
		fn := float64(n)
		gamma := -2.273 + 0.459*fn
		lw := -math.Log(gamma - math.Log(1-w))
		mu := 0.5440 - 0.39978*fn + 0.025054*fn*fn - 0.0006714*fn*fn*fn
		sigma := math.Exp(1.3822 - 0.77857*fn + 0.062767*fn*fn - 0.0020322*fn*fn*fn)
		p = 1 - normalCDF((lw-mu)/sigma)
	default:
		lw := math.Log(1 - w)
		u := math.Log(float64(n))
		mu := -1.5861 - 0.31082*u - 0.083751*u*u + 0.0038915*u*u*u
		sigma := math.Exp(-0.4803 - 0.082676*u + 0.0030302*u*u)
		p = 1 - normalCDF((lw-mu)/sigma)
	}
	return w, p
}

// KolmogorovSmirnov runs a one-sample KS test of the data against a
// standard normal reference, matching the large-sample branch of the
// reporting pipeline. Returns the D statistic and the asymptotic
// p-value (Stephens' lambda correction).
func KolmogorovSmirnov(values []float64) (d, p float64) {
	n := len(values)
	if n == 0 {
		return 0, 0
	}
	x := make([]float64, n)
	copy(x, values)
	sort.Float64s(x)

	for i, v := range x {
		cdf := normalCDF(v)
		dPlus := float64(i+1)/float64(n) - cdf
		dMinus := cdf - float64(i)/float64(n)
		if dPlus > d {
			d = dPlus
		}
		if dMinus > d {
			d = dMinus
		}
	}

	sqrtN := math.Sqrt(float64(n))
	lambda := (sqrtN + 0.12 + 0.11/sqrtN) * d
	p = kolmogorovQ(lambda)
	return d, p
}

// kolmogorovQ is the survival function of the Kolmogorov distribution:
// Q(λ) = 2 Σ (-1)^(k-1) exp(-2 k² λ²).
func kolmogorovQ(lambda float64) float64 {
	if lambda <= 0 {
		return 1
	}
	var sum float64
	sign := 1.0
	for k := 1; k <= 100; k++ {
		term := math.Exp(-2 * float64(k*k) * lambda * lambda)
		sum += sign * term
		if term < 1e-10 {
			break
		}
		sign = -sign
	}
	q := 2 * sum
	if q < 0 {
		return 0
	}
	if q > 1 {
		return 1
	}
	return q
}

// normalCDF is the standard normal cumulative distribution function.
func normalCDF(z float64) float64 {
	return 0.5 * math.Erfc(-z/math.Sqrt2)
}

// normalQuantile is the standard normal inverse CDF (Acklam's rational
// approximation, relative error below 1.15e-9).
func normalQuantile(p float64) float64 {
	if p <= 0 {
		return math.Inf(-1)
	}
	if p >= 1 {
		return math.Inf(1)
	}

	a := []float64{-3.969683028665376e+01, 2.209460984245205e+02, -2.759285104469687e+02,
		1.383577518672690e+02, -3.066479806614716e+01, 2.506628277459239e+00}
	b := []float64{-5.447609879822406e+01, 1.615858368580409e+02, -1.556989798598866e+02,
		6.680131188771972e+01, -1.328068155288572e+01}
	c := []float64{-7.784894002430293e-03, -3.223964580411365e-01, -2.400758277161838e+00,
		-2.549732539343734e+00, 4.374664141464968e+00, 2.938163982698783e+00}
	dd := []float64{7.784695709041462e-03, 3.224671290700398e-01, 2.445134137142996e+00,
		3.754408661907416e+00}

	const pLow = 0.02425
	const pHigh = 1 - pLow

	switch {
	case p < pLow:
		q := math.Sqrt(-2 * math.Log(p))
		return (((((c[0]*q+c[1])*q+c[2])*q+c[3])*q+c[4])*q + c[5]) /
			((((dd[0]*q+dd[1])*q+dd[2])*q+dd[3])*q + 1)
	case p > pHigh:
		q := math.Sqrt(-2 * math.Log(1-p))
		return -(((((c[0]*q+c[1])*q+c[2])*q+c[3])*q+c[4])*q + c[5]) /
			((((dd[0]*q+dd[1])*q+dd[2])*q+dd[3])*q + 1)
	default:
		q := p - 0.5
		r := q * q
		return (((((a[0]*r+a[1])*r+a[2])*r+a[3])*r+a[4])*r + a[5]) * q /
			(((((b[0]*r+b[1])*r+b[2])*r+b[3])*r+b[4])*r + 1)
	}
}

// poly evaluates c[0] + c[1]x + c[2]x² + ... at x.
func poly(c []float64, x float64) float64 {
	var result float64
	for i := len(c) - 1; i >= 0; i-- {
		result = result*x + c[i]
	}
	return result
}
