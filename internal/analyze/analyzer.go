// Package analyze builds the full statistical market report over one
// batch of price observations, orchestrating the calculate modules and
// deriving the threshold-triggered insights and advisories.
package analyze

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/agrovista/mandi/internal/calculate"
	"github.com/agrovista/mandi/models"
)

// ChartRenderer produces the optional visualization section. Rendering
// never fails the report; errors surface inside the result.
type ChartRenderer interface {
	Render(observations []models.PriceObservation, historical []models.HistoricalPricePoint) models.VisualizationResult
}

// Analyzer assembles market analysis reports. Safe for concurrent use.
type Analyzer struct {
	charts ChartRenderer
	log    zerolog.Logger
	now    func() time.Time
}

// New returns an analyzer. charts may be nil, in which case the
// visualization section reports itself unavailable.
func New(charts ChartRenderer, logger zerolog.Logger) *Analyzer {
	return &Analyzer{
		charts: charts,
		log:    logger.With().Str("component", "analyze").Logger(),
		now:    time.Now,
	}
}

// AnalyzeMarket computes the complete report for one observation batch.
// The historical series is optional and only feeds the historical
// volatility figure and the time-series chart. An empty batch yields a
// complete report shape with a diagnostic summary message.
func (a *Analyzer) AnalyzeMarket(observations []models.PriceObservation, historical []models.HistoricalPricePoint) models.MarketAnalysisReport {
	if len(observations) == 0 {
		return a.emptyReport()
	}

	prices := make([]float64, len(observations))
	for i, obs := range observations {
		prices[i] = obs.CurrentPrice
	}

	report := models.MarketAnalysisReport{
		Summary: models.ReportSummary{
			TotalCommodities: len(observations),
			DataSource:       "Real-time API Data",
			AnalyzedAt:       a.now(),
			AnalysisType:     "Advanced Statistical Analysis",
		},
		Descriptive:  calculate.Summarize(prices),
		Trend:        calculate.AnalyzeTrends(observations),
		Volatility:   calculate.Volatility(prices, historical),
		Similarity:   calculate.PairwiseSimilarity(observations),
		Segmentation: calculate.SegmentMarket(observations),
		Risk:         calculate.Risk(prices),
		Distribution: calculate.AnalyzeDistribution(prices),
	}
	report.Visualization = a.renderCharts(observations, historical)
	report.Advisories = advisories(observations, report.Trend, report.Volatility)
	report.Insights = insights(len(prices), report.Trend, report.Volatility, report.Risk)

	a.log.Debug().
		Int("commodities", len(observations)).
		Float64("trend_score", report.Trend.TrendScore).
		Str("volatility_class", report.Volatility.Class).
		Msg("built market analysis report")

	return report
}

func (a *Analyzer) renderCharts(observations []models.PriceObservation, historical []models.HistoricalPricePoint) models.VisualizationResult {
	if a.charts == nil {
		return models.VisualizationResult{
			Status:  models.VisualizationUnavailable,
			Message: "Chart rendering is not enabled",
		}
	}
	return a.charts.Render(observations, historical)
}

// advisories derives the structured advisory entries from thresholds
// on the computed metrics.
func advisories(observations []models.PriceObservation, trend models.TrendAnalysis, volatility models.VolatilityMetrics) []models.MarketAdvisory {
	out := []models.MarketAdvisory{}

	mean := 0.0
	for _, obs := range observations {
		mean += obs.CurrentPrice
	}
	mean /= float64(len(observations))

	var highValue []string
	for _, obs := range observations {
		if obs.CurrentPrice > mean*1.2 {
			highValue = append(highValue, obs.CommodityName)
		}
	}
	if len(highValue) > 0 {
		if len(highValue) > 3 {
			highValue = highValue[:3]
		}
		out = append(out, models.MarketAdvisory{
			Type:       "High-Value Opportunity",
			Priority:   models.LevelHigh,
			Message:    fmt.Sprintf("Consider focusing on %s - prices are significantly above average", strings.Join(highValue, ", ")),
			Confidence: models.LevelMedium,
		})
	}

	if volatility.Class == "High" {
		out = append(out, models.MarketAdvisory{
			Type:       "Risk Management",
			Priority:   models.LevelHigh,
			Message:    "High price volatility detected. Consider diversifying portfolio to mitigate risk.",
			Confidence: models.LevelHigh,
		})
	}

	if trend.TrendScore > 0.5 {
		out = append(out, models.MarketAdvisory{
			Type:       "Market Timing",
			Priority:   models.LevelMedium,
			Message:    "Strong bullish trend detected. Good time for strategic investments.",
			Confidence: models.LevelMedium,
		})
	}

	return out
}

// insights derives the threshold-triggered sentences. Needs at least
// two prices; a single observation has no dispersion to speak of.
func insights(n int, trend models.TrendAnalysis, volatility models.VolatilityMetrics, risk models.RiskMetrics) []string {
	out := []string{}
	if n < 2 {
		return out
	}

	cv := volatility.Volatility
	if cv > 20 {
		out = append(out, fmt.Sprintf("High price dispersion (CV=%.1f%%) indicates significant market heterogeneity", cv))
	} else if cv < 10 {
		out = append(out, fmt.Sprintf("Low price dispersion (CV=%.1f%%) suggests stable, homogeneous market conditions", cv))
	}

	score := trend.TrendScore
	if score > 0.6 || score < -0.6 {
		direction := "bullish"
		if score < 0 {
			direction = "bearish"
		}
		out = append(out, fmt.Sprintf("Strong %s momentum (score: %.2f) suggests directional market movement", direction, score))
	}

	if risk.Message == "" {
		if v := risk.ValueAtRisk95; v > 10 || v < -10 {
			out = append(out, fmt.Sprintf("High downside risk (VaR 95%%: %.1f%%) - consider risk mitigation strategies", v))
		}
	}

	return out
}

// emptyReport is the fixed shape returned for an empty batch.
func (a *Analyzer) emptyReport() models.MarketAnalysisReport {
	return models.MarketAnalysisReport{
		Summary: models.ReportSummary{
			TotalCommodities: 0,
			DataSource:       "Real-time API Data",
			AnalyzedAt:       a.now(),
			Message:          "No price data available for analysis",
		},
		Descriptive:  models.DescriptiveStats{Message: "No price data available for analysis"},
		Similarity:   models.SimilarityAnalysis{Message: "Insufficient data for similarity analysis"},
		Segmentation: models.MarketSegmentation{Message: "Insufficient data for segmentation"},
		Risk:         models.RiskMetrics{Message: "Insufficient data for risk calculation"},
		Distribution: models.DistributionAnalysis{Message: "Insufficient data for distribution analysis"},
		Visualization: models.VisualizationResult{
			Status:  models.VisualizationUnavailable,
			Message: "No price data available for visualization",
		},
		Advisories: []models.MarketAdvisory{},
		Insights:   []string{},
	}
}

// TopMovers returns the commodities priced furthest above the batch
// mean, highest first, for presentation layers that want a quick list.
func TopMovers(observations []models.PriceObservation, limit int) []models.CommodityQuote {
	if len(observations) == 0 || limit <= 0 {
		return nil
	}
	quotes := make([]models.CommodityQuote, len(observations))
	for i, obs := range observations {
		quotes[i] = models.CommodityQuote{
			Commodity: obs.CommodityName,
			Price:     obs.CurrentPrice,
			Trend:     obs.PriceTrend,
		}
	}
	sort.SliceStable(quotes, func(i, j int) bool { return quotes[i].Price > quotes[j].Price })
	if len(quotes) > limit {
		quotes = quotes[:limit]
	}
	return quotes
}
