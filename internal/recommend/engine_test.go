package recommend

import (
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/agrovista/mandi/internal/agdata"
	"github.com/agrovista/mandi/models"
)

func testKB() models.KnowledgeBase {
	crops := map[string]models.CropProfile{
		"Rice": {
			Name:             "Rice",
			Seasons:          []models.Season{models.SeasonKharif},
			Temperature:      models.Range{Min: 20, Max: 35},
			Rainfall:         models.Range{Min: 100, Max: 200},
			Humidity:         models.Range{Min: 60, Max: 90},
			YieldPerHectare:  4.0,
			WaterRequirement: models.LevelHigh,
			FertilizerNeed:   models.LevelMedium,
			PestRisk:         models.LevelLow,
			MarketDemand:     models.LevelHigh,
			ProfitMargin:     0.25,
		},
		"Cotton": {
			Name:             "Cotton",
			Seasons:          []models.Season{models.SeasonKharif},
			Temperature:      models.Range{Min: 21, Max: 30},
			Rainfall:         models.Range{Min: 50, Max: 100},
			Humidity:         models.Range{Min: 50, Max: 80},
			YieldPerHectare:  2.5,
			WaterRequirement: models.LevelMedium,
			FertilizerNeed:   models.LevelHigh,
			PestRisk:         models.LevelHigh,
			MarketDemand:     models.LevelHigh,
			ProfitMargin:     0.4,
		},
	}
	regions := map[string]models.RegionProfile{
		"Punjab": {
			State:              "Punjab",
			SoilType:           models.SoilAlluvial,
			Climate:            "Semi-arid",
			MajorCrops:         []string{"Rice", "Wheat"},
			IrrigationCoverage: 98.0,
			AverageRainfall:    650,
		},
	}
	return agdata.NewWithData(crops, regions)
}

func goodWeather() models.WeatherSnapshot {
	return models.WeatherSnapshot{
		Temperature: 25,
		Humidity:    70,
		Rainfall:    150,
		Suitability: "Good",
	}
}

func newTestEngine(kb models.KnowledgeBase) *Engine {
	e := New(kb, zerolog.Nop())
	e.now = func() time.Time { return time.Date(2024, time.July, 15, 0, 0, 0, 0, time.UTC) }
	return e
}

func TestSuitability(t *testing.T) {
	kb := testKB()

	tests := []struct {
		name    string
		crop    string
		state   string
		weather models.WeatherSnapshot
		want    float64
	}{
		{
			name:    "optimal conditions major crop",
			crop:    "Rice",
			state:   "Punjab",
			weather: models.WeatherSnapshot{Temperature: 25, Rainfall: 150, Humidity: 70},
			want:    1.0,
		},
		{
			name:    "optimal conditions non-major crop",
			crop:    "Cotton",
			state:   "Punjab",
			weather: models.WeatherSnapshot{Temperature: 25, Rainfall: 75, Humidity: 65},
			want:    0.875, // (1 + 1 + 1 + 0.5) / 4
		},
		{
			name:    "unknown crop scores zero",
			crop:    "Quinoa",
			state:   "Punjab",
			weather: models.WeatherSnapshot{Temperature: 25, Rainfall: 150, Humidity: 70},
			want:    0,
		},
		{
			name:    "temperature 5 degrees out loses half its factor",
			crop:    "Rice",
			state:   "Punjab",
			weather: models.WeatherSnapshot{Temperature: 40, Rainfall: 150, Humidity: 70},
			want:    0.875, // (0.5 + 1 + 1 + 1) / 4
		},
		{
			name:    "unknown region still earns partial regional credit",
			crop:    "Rice",
			state:   "Atlantis",
			weather: models.WeatherSnapshot{Temperature: 25, Rainfall: 150, Humidity: 70},
			want:    0.875, // regional factor falls back to 0.5
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Suitability(kb, tt.crop, tt.state, tt.weather)
			if !almostEqual(got, tt.want) {
				t.Errorf("Suitability() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMarketScore(t *testing.T) {
	prices := []models.PriceObservation{
		{CommodityName: "Rice", CurrentPrice: 2500, PriceTrend: models.TrendIncreasing},
		{CommodityName: "Cotton", CurrentPrice: 6500, PriceTrend: models.TrendDecreasing},
		{CommodityName: "Wheat", CurrentPrice: 2200, PriceTrend: models.TrendStable},
	}

	tests := []struct {
		crop string
		want float64
	}{
		{"Rice", 0.9},
		{"Wheat", 0.7},
		{"Cotton", 0.4},
		{"Onion", 0.5}, // no observation
	}

	for _, tt := range tests {
		if got := marketScore(tt.crop, prices); got != tt.want {
			t.Errorf("marketScore(%q) = %v, want %v", tt.crop, got, tt.want)
		}
	}
}

func TestConfidenceAdjustments(t *testing.T) {
	e := newTestEngine(testKB())
	rice, _ := testKB().Crop("Rice")
	cotton, _ := testKB().Crop("Cotton")

	tests := []struct {
		name        string
		suitability float64
		market      float64
		crop        models.CropProfile
		query       models.FarmerQuery
		want        float64
	}{
		{
			name:        "base blend",
			suitability: 1.0,
			market:      0.5,
			crop:        rice,
			query:       models.FarmerQuery{},
			want:        0.8,
		},
		{
			name:        "low tolerance bonus for safe high-demand crop",
			suitability: 1.0,
			market:      0.5,
			crop:        rice,
			query:       models.FarmerQuery{RiskTolerance: models.LevelLow},
			want:        0.9,
		},
		{
			name:        "high tolerance bonus for high margin crop",
			suitability: 1.0,
			market:      0.5,
			crop:        cotton,
			query:       models.FarmerQuery{RiskTolerance: models.LevelHigh},
			want:        0.9,
		},
		{
			name:        "budget penalty halves the score",
			suitability: 1.0,
			market:      0.5,
			crop:        rice, // cost estimate 4000 > budget 3000
			query:       models.FarmerQuery{Budget: 3000},
			want:        0.4,
		},
		{
			name:        "clamped to one",
			suitability: 1.0,
			market:      0.9,
			crop:        rice,
			query:       models.FarmerQuery{RiskTolerance: models.LevelLow},
			want:        1.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := e.confidence(tt.suitability, tt.market, tt.crop, tt.query)
			if !almostEqual(got, tt.want) {
				t.Errorf("confidence() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRecommendRankingAndFiltering(t *testing.T) {
	e := newTestEngine(testKB())
	query := models.FarmerQuery{
		Location: models.Location{State: "Punjab", District: "Ludhiana"},
		LandSize: 2,
	}
	prices := []models.PriceObservation{
		{CommodityName: "Rice", CurrentPrice: 2500, PriceTrend: models.TrendIncreasing},
	}

	recs := e.Recommend(query, goodWeather(), prices)
	if len(recs) == 0 {
		t.Fatal("expected at least one recommendation")
	}
	for i := 1; i < len(recs); i++ {
		if recs[i].ConfidenceScore > recs[i-1].ConfidenceScore {
			t.Errorf("recommendations not sorted: %v before %v", recs[i-1].ConfidenceScore, recs[i].ConfidenceScore)
		}
	}
	for _, rec := range recs {
		if rec.ConfidenceScore <= minConfidence {
			t.Errorf("crop %s below confidence floor: %v", rec.CropName, rec.ConfidenceScore)
		}
		if rec.ConfidenceScore > 1 {
			t.Errorf("crop %s confidence above 1: %v", rec.CropName, rec.ConfidenceScore)
		}
	}

	if recs[0].CropName != "Rice" {
		t.Errorf("expected Rice first, got %s", recs[0].CropName)
	}
	// Yield scaled by 2 hectares, profit from the observed price.
	if recs[0].ExpectedYield != 8.0 {
		t.Errorf("ExpectedYield = %v, want 8.0", recs[0].ExpectedYield)
	}
	if want := 2500 * 8.0 * 0.25; recs[0].EstimatedProfit != want {
		t.Errorf("EstimatedProfit = %v, want %v", recs[0].EstimatedProfit, want)
	}
	// July falls in Kharif.
	if recs[0].PlantingSeason != models.SeasonKharif {
		t.Errorf("PlantingSeason = %v, want Kharif", recs[0].PlantingSeason)
	}
	if recs[0].PlantingTime != "June-July" || recs[0].HarvestingTime != "October-November" {
		t.Errorf("unexpected schedule: %s / %s", recs[0].PlantingTime, recs[0].HarvestingTime)
	}
}

func TestRecommendPreferredCropsRestrict(t *testing.T) {
	e := newTestEngine(testKB())
	query := models.FarmerQuery{
		Location:       models.Location{State: "Punjab"},
		PreferredCrops: []string{"Cotton"},
	}

	recs := e.Recommend(query, goodWeather(), nil)
	for _, rec := range recs {
		if rec.CropName != "Cotton" {
			t.Errorf("unexpected crop %s outside preference list", rec.CropName)
		}
	}
}

func TestRecommendTopFive(t *testing.T) {
	crops := map[string]models.CropProfile{}
	for _, name := range []string{"A", "B", "C", "D", "E", "F", "G"} {
		crops[name] = models.CropProfile{
			Name:            name,
			Temperature:     models.Range{Min: 0, Max: 50},
			Rainfall:        models.Range{Min: 0, Max: 1000},
			Humidity:        models.Range{Min: 0, Max: 100},
			YieldPerHectare: 3,
			ProfitMargin:    0.2,
		}
	}
	e := newTestEngine(agdata.NewWithData(crops, nil))

	recs := e.Recommend(models.FarmerQuery{}, goodWeather(), nil)
	if len(recs) != 5 {
		t.Fatalf("expected 5 recommendations, got %d", len(recs))
	}
}

func TestRecommendDefaultPrice(t *testing.T) {
	e := newTestEngine(testKB())
	recs := e.Recommend(models.FarmerQuery{Location: models.Location{State: "Punjab"}}, goodWeather(), nil)
	for _, rec := range recs {
		if rec.MarketPrice != defaultMarketPrice {
			t.Errorf("crop %s price = %v, want default %v", rec.CropName, rec.MarketPrice, defaultMarketPrice)
		}
	}
}

func TestReasonsOrder(t *testing.T) {
	cotton, _ := testKB().Crop("Cotton")
	weather := models.WeatherSnapshot{Suitability: "Excellent"}

	got := reasons(cotton, 0.9, 0.9, weather)
	want := []string{
		"Excellent suitability for current weather conditions",
		"Strong market demand and favorable price trends",
		"High market demand ensures good selling opportunities",
		"High profit potential",
		"Optimal weather conditions for this crop",
	}
	if len(got) != len(want) {
		t.Fatalf("reasons = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("reasons[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestSummarizeLocation(t *testing.T) {
	e := newTestEngine(testKB())

	got := e.SummarizeLocation(models.Location{State: "Punjab", District: "Amritsar"})
	if got.SoilType != models.SoilAlluvial {
		t.Errorf("SoilType = %v, want Alluvial", got.SoilType)
	}
	if got.Climate != "Semi-arid" || got.IrrigationCoverage != 98.0 {
		t.Errorf("unexpected regional fields: %+v", got)
	}

	unknown := e.SummarizeLocation(models.Location{State: "Atlantis", District: "X", SoilType: models.SoilRed})
	if unknown.SoilType != models.SoilRed || unknown.Climate != "" {
		t.Errorf("unexpected summary for unknown state: %+v", unknown)
	}
}

func almostEqual(a, b float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d < 1e-9
}
