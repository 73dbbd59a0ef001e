package calculate

import (
	"testing"

	"github.com/agrovista/mandi/models"
)

func TestPercentReturns(t *testing.T) {
	tests := []struct {
		name   string
		prices []float64
		want   []float64
	}{
		{"too short", []float64{100}, nil},
		{"up and down", []float64{100, 110, 99}, []float64{10, -10}},
		{"zero denominator", []float64{0, 50, 100}, []float64{0, 100}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PercentReturns(tt.prices)
			if len(got) != len(tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
			for i := range got {
				if !almostEqual(got[i], tt.want[i], 1e-9) {
					t.Errorf("returns[%d] = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestRiskInsufficientData(t *testing.T) {
	got := Risk([]float64{2500})
	if got.Message != "Insufficient data for risk calculation" {
		t.Errorf("Message = %q", got.Message)
	}
	if got.ValueAtRisk95 != 0 || got.RiskLevel != "" {
		t.Errorf("expected zeroed metrics, got %+v", got)
	}
}

func TestRiskMetrics(t *testing.T) {
	// Returns: +10%, -10%, +25%, -20%.
	prices := []float64{100, 110, 99, 123.75, 99}
	got := Risk(prices)

	// Sorted returns: -20, -10, 10, 25. Percentile(5) interpolates
	// near the bottom: rank 0.15 between -20 and -10.
	if got.ValueAtRisk95 != -18.5 {
		t.Errorf("ValueAtRisk95 = %v, want -18.5", got.ValueAtRisk95)
	}
	// Only the -20 return sits at or below VaR.
	if got.ConditionalVaR != -20 {
		t.Errorf("ConditionalVaR = %v, want -20", got.ConditionalVaR)
	}
	if got.RiskLevel != models.LevelHigh {
		t.Errorf("RiskLevel = %v, want High", got.RiskLevel)
	}
	if got.RiskAdjustedReturn == 0 {
		t.Errorf("RiskAdjustedReturn = 0, want non-zero")
	}
	// Cumulative path 10, 0, 25, 5: deepest gap below the running
	// maximum is -20.
	if got.MaxDrawdown != -20 {
		t.Errorf("MaxDrawdown = %v, want -20", got.MaxDrawdown)
	}
}

func TestRiskLevels(t *testing.T) {
	tests := []struct {
		name   string
		prices []float64
		want   models.Level
	}{
		{"calm series", []float64{100, 101, 100, 101, 100, 101}, models.LevelLow},
		{"moderate swings", []float64{100, 93, 100, 93, 100, 93}, models.LevelMedium},
		{"wild swings", []float64{100, 80, 100, 80, 100, 80}, models.LevelHigh},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Risk(tt.prices); got.RiskLevel != tt.want {
				t.Errorf("RiskLevel = %v, want %v (VaR %v)", got.RiskLevel, tt.want, got.ValueAtRisk95)
			}
		})
	}
}

func TestMaxDrawdown(t *testing.T) {
	tests := []struct {
		name    string
		returns []float64
		want    float64
	}{
		{"empty", nil, 0},
		{"monotonic rise", []float64{5, 5, 5}, 0},
		{"single dip", []float64{10, -15, 20}, -15},
		{"all negative", []float64{-5, -5}, -5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MaxDrawdown(tt.returns)
			if !almostEqual(got, tt.want, 1e-9) {
				t.Errorf("MaxDrawdown = %v, want %v", got, tt.want)
			}
		})
	}
}
