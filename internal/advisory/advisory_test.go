package advisory

import (
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/agrovista/mandi/models"
)

func TestGenerateWithoutAPIKeyUsesFallback(t *testing.T) {
	g := New(Options{Model: "claude-sonnet-4-20250514"}, zerolog.Nop())
	assert.False(t, g.Available(context.Background()))

	query := models.FarmerQuery{Location: models.Location{State: "Punjab", District: "Ludhiana"}}
	weather := models.WeatherSnapshot{Suitability: "Excellent", CurrentTemp: 27, Rainfall: 80}

	text := g.Generate(context.Background(), query, weather, nil)
	assert.Contains(t, text, "AGRICULTURAL RECOMMENDATIONS FOR PUNJAB")
	assert.Contains(t, text, "RICE - High yield potential")

	// Same inputs, same output.
	assert.Equal(t, text, g.Generate(context.Background(), query, weather, nil))
}

func TestFallbackPoorWeather(t *testing.T) {
	query := models.FarmerQuery{Location: models.Location{State: "Gujarat"}}
	weather := models.WeatherSnapshot{Suitability: "Poor"}

	text := fallback(query, weather)
	assert.Contains(t, text, "WHEAT - Drought resistant")
	assert.NotContains(t, text, "RICE - High yield potential")
}

func TestBuildPrompt(t *testing.T) {
	query := models.FarmerQuery{
		Location:       models.Location{State: "Maharashtra", District: "Nashik", SoilType: models.SoilBlack},
		Budget:         150000,
		LandSize:       3,
		PreferredCrops: []string{"Onion", "Tomato"},
		RiskTolerance:  models.LevelHigh,
	}
	weather := models.WeatherSnapshot{
		CurrentTemp:     31,
		CurrentHumidity: 55,
		Rainfall:        12.5,
		Suitability:     "Fair",
	}
	prices := []models.PriceObservation{
		{CommodityName: "Onion", CurrentPrice: 1800, PriceTrend: models.TrendDecreasing},
	}

	prompt := buildPrompt(query, weather, prices)

	assert.Contains(t, prompt, "Location: Maharashtra, Nashik")
	assert.Contains(t, prompt, "Land Size: 3 hectares")
	assert.Contains(t, prompt, "Budget: ₹150000")
	assert.Contains(t, prompt, "Risk Tolerance: High")
	assert.Contains(t, prompt, "Preferred Crops: Onion, Tomato")
	assert.Contains(t, prompt, "Soil Type: Black")
	assert.Contains(t, prompt, "Onion: ₹1800/quintal (Trend: decreasing)")
	assert.True(t, strings.HasSuffix(strings.TrimSpace(prompt), "suitable for farmers."))
}

func TestBuildPromptDefaults(t *testing.T) {
	prompt := buildPrompt(models.FarmerQuery{}, models.WeatherSnapshot{}, nil)
	assert.Contains(t, prompt, "Land Size: Not specified")
	assert.Contains(t, prompt, "Budget: ₹Not specified")
	assert.Contains(t, prompt, "Risk Tolerance: Medium")
	assert.Contains(t, prompt, "Soil Type: Not specified")
}
