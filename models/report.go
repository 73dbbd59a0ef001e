package models

import "time"

// The market analysis report and its sections. Sections that need a
// minimum sample size carry a Message instead of numbers when the
// sample is too small; that is a diagnostic, not an error.

// MarketAnalysisReport is the full statistical report over one batch
// of price observations. Numeric sections are deterministic for a
// given batch; the visualization section is best-effort.
type MarketAnalysisReport struct {
	Summary       ReportSummary        `json:"summary"`
	Descriptive   DescriptiveStats     `json:"descriptive_statistics"`
	Trend         TrendAnalysis        `json:"trend_analysis"`
	Volatility    VolatilityMetrics    `json:"volatility_metrics"`
	Similarity    SimilarityAnalysis   `json:"similarity_analysis"`
	Segmentation  MarketSegmentation   `json:"market_segmentation"`
	Risk          RiskMetrics          `json:"risk_metrics"`
	Distribution  DistributionAnalysis `json:"distribution_analysis"`
	Visualization VisualizationResult  `json:"visualizations"`
	Advisories    []MarketAdvisory     `json:"recommendations"`
	Insights      []string             `json:"mathematical_insights"`
}

// ReportSummary is report metadata.
type ReportSummary struct {
	TotalCommodities int       `json:"total_commodities"`
	DataSource       string    `json:"data_source"`
	AnalyzedAt       time.Time `json:"analysis_timestamp"`
	AnalysisType     string    `json:"analysis_type"`
	Message          string    `json:"message,omitempty"`
}

// DescriptiveStats holds the sample statistics, reported at 2 decimals.
type DescriptiveStats struct {
	Mean     float64 `json:"mean"`
	Median   float64 `json:"median"`
	StdDev   float64 `json:"standard_deviation"`
	Variance float64 `json:"variance"`
	CV       float64 `json:"coefficient_of_variation"`
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
	Range    float64 `json:"range"`
	Q25      float64 `json:"q25"`
	Q75      float64 `json:"q75"`
	IQR      float64 `json:"iqr"`
	Message  string  `json:"message,omitempty"`
}

// TrendAnalysis summarizes the categorical trend labels of a batch.
type TrendAnalysis struct {
	Distribution map[PriceTrend]int `json:"distribution"`
	TrendScore   float64            `json:"trend_score"` // -1 (bearish) .. 1 (bullish)
	Momentum     float64            `json:"momentum"`
	Strength     string             `json:"trend_strength"`   // Strong, Moderate, Weak
	Direction    string             `json:"market_direction"` // Bullish, Bearish, Neutral
}

// VolatilityMetrics classifies dispersion via the coefficient of variation.
type VolatilityMetrics struct {
	Volatility           float64  `json:"volatility"` // CV, percent
	Class                string   `json:"volatility_class"`
	Stability            string   `json:"price_stability"`
	StdDev               float64  `json:"standard_deviation"`
	HistoricalVolatility *float64 `json:"historical_volatility,omitempty"` // absent without a historical series
	Interpretation       string   `json:"volatility_interpretation"`
}

// SimilarityAnalysis holds the pairwise price-level similarity heuristic.
// This is a level-similarity proxy, not a time-series correlation.
type SimilarityAnalysis struct {
	Pairwise       map[string]float64 `json:"pairwise_similarities,omitempty"`
	Interpretation string             `json:"interpretation,omitempty"`
	Message        string             `json:"message,omitempty"`
}

// PriceSegment is one of the three tertile segments.
type PriceSegment struct {
	Count       int      `json:"count"`
	AvgPrice    float64  `json:"avg_price"`
	Commodities []string `json:"commodities"`
}

// MarketSegmentation is the low/medium/high tertile split.
type MarketSegmentation struct {
	Low     PriceSegment `json:"low_price"`
	Medium  PriceSegment `json:"medium_price"`
	High    PriceSegment `json:"high_price"`
	Method  string       `json:"segmentation_method,omitempty"`
	Message string       `json:"message,omitempty"`
}

// RiskMetrics holds the downside-risk figures over period returns.
type RiskMetrics struct {
	ValueAtRisk95      float64 `json:"value_at_risk_95"`
	ConditionalVaR     float64 `json:"conditional_var"`
	RiskAdjustedReturn float64 `json:"risk_adjusted_return"`
	MaxDrawdown        float64 `json:"max_drawdown"`
	RiskLevel          Level   `json:"risk_level"`
	Message            string  `json:"message,omitempty"`
}

// DistributionAnalysis holds the distribution-shape results.
type DistributionAnalysis struct {
	DistributionType string  `json:"distribution_type"` // Normal, Non-normal
	NormalityPValue  float64 `json:"normality_p_value"`
	Skewness         float64 `json:"skewness"`
	Kurtosis         float64 `json:"kurtosis"`
	SkewnessLabel    string  `json:"skewness_interpretation"`
	KurtosisLabel    string  `json:"kurtosis_interpretation"`
	Message          string  `json:"message,omitempty"`
}

// VisualizationStatus tags the state of the chart section so consumers
// can match on present / degraded / absent exhaustively.
type VisualizationStatus string

const (
	VisualizationOK          VisualizationStatus = "ok"
	VisualizationDegraded    VisualizationStatus = "degraded"
	VisualizationUnavailable VisualizationStatus = "unavailable"
)

// VisualizationResult carries base64 PNG charts keyed by chart name.
// A render failure degrades the section without aborting the report.
type VisualizationResult struct {
	Status  VisualizationStatus `json:"status"`
	Charts  map[string]string   `json:"charts,omitempty"`
	Error   string              `json:"error,omitempty"`
	Message string              `json:"message,omitempty"`
}

// MarketAdvisory is one structured advisory entry in the report.
type MarketAdvisory struct {
	Type       string `json:"type"`
	Priority   Level  `json:"priority"`
	Message    string `json:"message"`
	Confidence Level  `json:"confidence"`
}
