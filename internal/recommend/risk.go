package recommend

import (
	"github.com/agrovista/mandi/models"
)

// Flat per-hectare cultivation cost used for the financial risk check.
const costPerHectare = 50000

// AssessRisks derives the categorical risk profile for a query. Every
// sub-risk defaults to Low; the overall rating counts how many
// sub-risks ended up High.
func AssessRisks(query models.FarmerQuery, weather models.WeatherSnapshot, market *models.MarketSnapshot) models.RiskProfile {
	profile := models.RiskProfile{
		WeatherRisk:   models.LevelLow,
		MarketRisk:    models.LevelLow,
		PestRisk:      models.LevelLow,
		FinancialRisk: models.LevelLow,
		OverallRisk:   models.LevelLow,
	}

	switch weather.Suitability {
	case "Poor", "Fair":
		profile.WeatherRisk = models.LevelHigh
	case "Good":
		profile.WeatherRisk = models.LevelMedium
	}

	if market != nil {
		switch market.Sentiment {
		case "Bearish":
			profile.MarketRisk = models.LevelHigh
		case "Neutral":
			profile.MarketRisk = models.LevelMedium
		}
	}

	if query.Budget > 0 && query.LandSize > 0 {
		estimated := query.LandSize * costPerHectare
		switch {
		case estimated > query.Budget*1.5:
			profile.FinancialRisk = models.LevelHigh
		case estimated > query.Budget:
			profile.FinancialRisk = models.LevelMedium
		}
	}

	high := 0
	for _, level := range []models.Level{profile.WeatherRisk, profile.MarketRisk, profile.PestRisk, profile.FinancialRisk} {
		if level == models.LevelHigh {
			high++
		}
	}
	switch {
	case high >= 2:
		profile.OverallRisk = models.LevelHigh
	case high >= 1:
		profile.OverallRisk = models.LevelMedium
	}

	return profile
}
