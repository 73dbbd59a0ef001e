package calculate

import (
	"testing"

	"github.com/agrovista/mandi/models"
)

func TestSegmentMarket(t *testing.T) {
	observations := []models.PriceObservation{
		obs("A", 10, models.TrendStable),
		obs("B", 20, models.TrendStable),
		obs("C", 30, models.TrendStable),
		obs("D", 40, models.TrendStable),
		obs("E", 50, models.TrendStable),
		obs("F", 60, models.TrendStable),
		obs("G", 70, models.TrendStable),
		obs("H", 80, models.TrendStable),
		obs("I", 90, models.TrendStable),
	}

	got := SegmentMarket(observations)

	// Thresholds are the sorted values at ranks 3 and 6: 40 and 70.
	if got.Low.Count != 4 || got.Medium.Count != 3 || got.High.Count != 2 {
		t.Fatalf("counts = %d/%d/%d, want 4/3/2", got.Low.Count, got.Medium.Count, got.High.Count)
	}
	if got.Low.AvgPrice != 25 {
		t.Errorf("Low.AvgPrice = %v, want 25", got.Low.AvgPrice)
	}
	if got.High.AvgPrice != 85 {
		t.Errorf("High.AvgPrice = %v, want 85", got.High.AvgPrice)
	}
	if got.Method != "Rank-based tertile split" {
		t.Errorf("Method = %q", got.Method)
	}
	if len(got.Medium.Commodities) != 3 || got.Medium.Commodities[0] != "E" {
		t.Errorf("Medium.Commodities = %v", got.Medium.Commodities)
	}
}

func TestSegmentMarketTiesFallLow(t *testing.T) {
	observations := []models.PriceObservation{
		obs("A", 5, models.TrendStable),
		obs("B", 5, models.TrendStable),
		obs("C", 9, models.TrendStable),
	}

	got := SegmentMarket(observations)

	if got.Low.Count != 2 {
		t.Errorf("Low.Count = %d, want 2", got.Low.Count)
	}
	if got.Medium.Count != 1 {
		t.Errorf("Medium.Count = %d, want 1", got.Medium.Count)
	}
	if got.High.Count != 0 {
		t.Errorf("High.Count = %d, want 0", got.High.Count)
	}
	if got.High.Commodities == nil {
		t.Error("empty segment should still carry an empty commodity list")
	}
}

func TestSegmentMarketInsufficientData(t *testing.T) {
	got := SegmentMarket([]models.PriceObservation{
		obs("A", 10, models.TrendStable),
		obs("B", 20, models.TrendStable),
	})
	if got.Message != "Insufficient data for segmentation" {
		t.Errorf("Message = %q", got.Message)
	}
}
