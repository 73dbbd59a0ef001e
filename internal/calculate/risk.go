package calculate

import (
	"github.com/agrovista/mandi/models"
)

// PercentReturns computes period-over-period percentage returns:
// returns[i] = (p[i+1]-p[i]) / p[i] * 100. Zero denominators
// contribute a zero return rather than dividing by zero.
func PercentReturns(prices []float64) []float64 {
	if len(prices) < 2 {
		return nil
	}
	returns := make([]float64, 0, len(prices)-1)
	for i := 1; i < len(prices); i++ {
		if prices[i-1] == 0 {
			returns = append(returns, 0)
			continue
		}
		returns = append(returns, (prices[i]-prices[i-1])/prices[i-1]*100)
	}
	return returns
}

// Risk computes downside-risk metrics over the percentage returns of
// a price sample: VaR(95%) as the 5th percentile of returns, CVaR as
// the mean of returns at or below VaR, a Sharpe-like risk-adjusted
// return, and the maximum drawdown of the cumulative return path.
// Needs at least two prices; otherwise an insufficient-data marker.
func Risk(prices []float64) models.RiskMetrics {
	if len(prices) < 2 {
		return models.RiskMetrics{Message: "Insufficient data for risk calculation"}
	}

	returns := PercentReturns(prices)

	var95 := Percentile(returns, 5)

	var tail []float64
	for _, r := range returns {
		if r <= var95 {
			tail = append(tail, r)
		}
	}
	cvar := Mean(tail)

	sharpe := 0.0
	if std := StdDev(returns); std > 0 {
		sharpe = Mean(returns) / std
	}

	return models.RiskMetrics{
		ValueAtRisk95:      Round2(var95),
		ConditionalVaR:     Round2(cvar),
		RiskAdjustedReturn: Round3(sharpe),
		MaxDrawdown:        Round2(MaxDrawdown(returns)),
		RiskLevel:          riskLevel(var95),
	}
}

// MaxDrawdown returns the most negative gap between the cumulative
// return path and its running maximum, 0 when there is no drawdown.
func MaxDrawdown(returns []float64) float64 {
	if len(returns) == 0 {
		return 0
	}
	var cumulative, runningMax, maxDD float64
	runningMax = 0
	first := true
	for _, r := range returns {
		cumulative += r
		if first || cumulative > runningMax {
			runningMax = cumulative
			first = false
		}
		if dd := cumulative - runningMax; dd < maxDD {
			maxDD = dd
		}
	}
	return maxDD
}

func riskLevel(var95 float64) models.Level {
	abs := var95
	if abs < 0 {
		abs = -abs
	}
	switch {
	case abs > 10:
		return models.LevelHigh
	case abs > 5:
		return models.LevelMedium
	default:
		return models.LevelLow
	}
}
