package analyze

import (
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/agrovista/mandi/models"
)

type stubRenderer struct {
	result models.VisualizationResult
	calls  int
}

func (s *stubRenderer) Render(_ []models.PriceObservation, _ []models.HistoricalPricePoint) models.VisualizationResult {
	s.calls++
	return s.result
}

func observations(prices ...float64) []models.PriceObservation {
	names := []string{"Rice", "Wheat", "Maize", "Cotton", "Soybean", "Potato", "Onion", "Tomato", "Groundnut"}
	out := make([]models.PriceObservation, len(prices))
	for i, p := range prices {
		out[i] = models.PriceObservation{
			CommodityName:  names[i%len(names)],
			CurrentPrice:   p,
			PriceTrend:     models.TrendStable,
			MarketLocation: "Test Mandi",
			ObservedAt:     time.Now(),
		}
	}
	return out
}

func TestAnalyzeMarketEmptyBatch(t *testing.T) {
	a := New(nil, zerolog.Nop())

	report := a.AnalyzeMarket(nil, nil)
	if report.Summary.TotalCommodities != 0 {
		t.Errorf("TotalCommodities = %d, want 0", report.Summary.TotalCommodities)
	}
	if report.Summary.Message != "No price data available for analysis" {
		t.Errorf("unexpected summary message %q", report.Summary.Message)
	}
	if report.Visualization.Status != models.VisualizationUnavailable {
		t.Errorf("Visualization.Status = %q, want unavailable", report.Visualization.Status)
	}
	if report.Advisories == nil || len(report.Advisories) != 0 {
		t.Errorf("Advisories = %v, want empty non-nil", report.Advisories)
	}
	if report.Insights == nil || len(report.Insights) != 0 {
		t.Errorf("Insights = %v, want empty non-nil", report.Insights)
	}
}

func TestAnalyzeMarketSections(t *testing.T) {
	a := New(nil, zerolog.Nop())
	obs := observations(10, 20, 30)
	obs[0].PriceTrend = models.TrendIncreasing
	obs[1].PriceTrend = models.TrendIncreasing
	obs[2].PriceTrend = models.TrendDecreasing

	report := a.AnalyzeMarket(obs, nil)

	if report.Summary.TotalCommodities != 3 {
		t.Errorf("TotalCommodities = %d, want 3", report.Summary.TotalCommodities)
	}
	if report.Summary.AnalysisType != "Advanced Statistical Analysis" {
		t.Errorf("AnalysisType = %q", report.Summary.AnalysisType)
	}
	if report.Descriptive.Mean != 20 {
		t.Errorf("Mean = %v, want 20", report.Descriptive.Mean)
	}
	// (2 increasing - 1 decreasing) / 3
	if got := report.Trend.TrendScore; got < 0.333 || got > 0.334 {
		t.Errorf("TrendScore = %v, want ~0.333", got)
	}
	if report.Trend.Direction != "Bullish" {
		t.Errorf("Direction = %q, want Bullish", report.Trend.Direction)
	}
	if report.Volatility.Class != "Very High" {
		t.Errorf("volatility class = %q, want Very High", report.Volatility.Class)
	}
	if report.Segmentation.Message != "" {
		t.Errorf("unexpected segmentation message %q", report.Segmentation.Message)
	}
	if report.Visualization.Status != models.VisualizationUnavailable {
		t.Errorf("nil renderer should be unavailable, got %q", report.Visualization.Status)
	}
}

func TestAnalyzeMarketDeterministic(t *testing.T) {
	a := New(nil, zerolog.Nop())
	a.now = func() time.Time { return time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC) }
	obs := observations(1500, 2500, 3500, 4500)

	first := a.AnalyzeMarket(obs, nil)
	second := a.AnalyzeMarket(obs, nil)

	if first.Descriptive != second.Descriptive {
		t.Errorf("descriptive sections differ: %+v vs %+v", first.Descriptive, second.Descriptive)
	}
	if first.Risk != second.Risk {
		t.Errorf("risk sections differ: %+v vs %+v", first.Risk, second.Risk)
	}
	if first.Distribution != second.Distribution {
		t.Errorf("distribution sections differ")
	}
}

func TestAnalyzeMarketUsesRenderer(t *testing.T) {
	renderer := &stubRenderer{result: models.VisualizationResult{
		Status: models.VisualizationOK,
		Charts: map[string]string{"price_distribution": "deadbeef"},
	}}
	a := New(renderer, zerolog.Nop())

	report := a.AnalyzeMarket(observations(100, 200), nil)
	if renderer.calls != 1 {
		t.Fatalf("renderer called %d times, want 1", renderer.calls)
	}
	if report.Visualization.Status != models.VisualizationOK {
		t.Errorf("Visualization.Status = %q, want ok", report.Visualization.Status)
	}
}

func TestAdvisories(t *testing.T) {
	// Mean 1160, std 320, CV 27.59 (class High); Cotton at 1800 is
	// above 1.2x the mean; 4 increasing vs 1 decreasing scores 0.6.
	obs := []models.PriceObservation{
		{CommodityName: "Rice", CurrentPrice: 1000, PriceTrend: models.TrendIncreasing},
		{CommodityName: "Wheat", CurrentPrice: 1000, PriceTrend: models.TrendIncreasing},
		{CommodityName: "Maize", CurrentPrice: 1000, PriceTrend: models.TrendIncreasing},
		{CommodityName: "Cotton", CurrentPrice: 1800, PriceTrend: models.TrendIncreasing},
		{CommodityName: "Onion", CurrentPrice: 1000, PriceTrend: models.TrendDecreasing},
	}
	a := New(nil, zerolog.Nop())
	report := a.AnalyzeMarket(obs, nil)

	var types []string
	for _, adv := range report.Advisories {
		types = append(types, adv.Type)
	}
	assertHas := func(want string) {
		for _, typ := range types {
			if typ == want {
				return
			}
		}
		t.Errorf("missing advisory %q in %v", want, types)
	}
	assertHas("High-Value Opportunity")
	assertHas("Risk Management")
	assertHas("Market Timing") // trend score 0.6 > 0.5

	for _, adv := range report.Advisories {
		if adv.Type == "High-Value Opportunity" {
			if !strings.Contains(adv.Message, "Cotton") {
				t.Errorf("high-value message should name Cotton: %q", adv.Message)
			}
			if adv.Priority != models.LevelHigh || adv.Confidence != models.LevelMedium {
				t.Errorf("unexpected levels: %+v", adv)
			}
		}
	}
}

func TestInsights(t *testing.T) {
	tests := []struct {
		name       string
		n          int
		trend      models.TrendAnalysis
		volatility models.VolatilityMetrics
		risk       models.RiskMetrics
		wantSubstr []string
	}{
		{
			name:       "single price yields nothing",
			n:          1,
			volatility: models.VolatilityMetrics{Volatility: 50},
			wantSubstr: nil,
		},
		{
			name:       "high dispersion",
			n:          5,
			volatility: models.VolatilityMetrics{Volatility: 42.5},
			wantSubstr: []string{"High price dispersion (CV=42.5%)"},
		},
		{
			name:       "low dispersion",
			n:          5,
			volatility: models.VolatilityMetrics{Volatility: 4.2},
			wantSubstr: []string{"Low price dispersion (CV=4.2%)"},
		},
		{
			name:       "bearish momentum and downside risk",
			n:          5,
			trend:      models.TrendAnalysis{TrendScore: -0.8},
			volatility: models.VolatilityMetrics{Volatility: 15},
			risk:       models.RiskMetrics{ValueAtRisk95: -12.3},
			wantSubstr: []string{"Strong bearish momentum", "VaR 95%: -12.3%"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := insights(tt.n, tt.trend, tt.volatility, tt.risk)
			if len(got) != len(tt.wantSubstr) {
				t.Fatalf("insights = %v, want %d entries", got, len(tt.wantSubstr))
			}
			for i, want := range tt.wantSubstr {
				if !strings.Contains(got[i], want) {
					t.Errorf("insights[%d] = %q, want substring %q", i, got[i], want)
				}
			}
		})
	}
}

func TestTopMovers(t *testing.T) {
	obs := observations(100, 900, 500)
	movers := TopMovers(obs, 2)
	if len(movers) != 2 {
		t.Fatalf("got %d movers, want 2", len(movers))
	}
	if movers[0].Price != 900 || movers[1].Price != 500 {
		t.Errorf("unexpected order: %+v", movers)
	}
	if TopMovers(nil, 3) != nil {
		t.Error("expected nil for empty input")
	}
}
