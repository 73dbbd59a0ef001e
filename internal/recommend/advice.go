package recommend

import (
	"fmt"

	"github.com/agrovista/mandi/models"
)

// Rainfall below this over the forecast window triggers irrigation advice.
const lowRainfallMM = 50

// Advise builds the rule-based advisory list: weather, irrigation,
// pest control and market entries, each gated on current conditions.
func Advise(weather models.WeatherSnapshot, recommendations []models.CropRecommendation) []models.AgriculturalAdvice {
	var advice []models.AgriculturalAdvice

	if weather.Suitability == "Poor" {
		advice = append(advice, models.AgriculturalAdvice{
			AdviceType:         "Weather",
			Title:              "Adverse Weather Conditions",
			Description:        "Current weather conditions are not optimal for most crops. Consider greenhouse farming or delay planting until conditions improve.",
			ConfidenceScore:    0.9,
			Urgency:            models.LevelHigh,
			ImplementationTime: "Immediate",
			CostEstimate:       5000,
		})
	}

	if weather.Rainfall < lowRainfallMM {
		advice = append(advice, models.AgriculturalAdvice{
			AdviceType:         "Irrigation",
			Title:              "Irrigation Required",
			Description:        "Low rainfall detected. Ensure adequate irrigation for your crops. Consider drip irrigation for water efficiency.",
			ConfidenceScore:    0.8,
			Urgency:            models.LevelMedium,
			ImplementationTime: "1-2 days",
			CostEstimate:       2000,
		})
	}

	for _, rec := range recommendations {
		if rec.PestRisk == models.LevelHigh {
			advice = append(advice, models.AgriculturalAdvice{
				AdviceType:         "Pest Control",
				Title:              "High Pest Risk Detected",
				Description:        "Some recommended crops have high pest risk. Implement integrated pest management and regular monitoring.",
				ConfidenceScore:    0.7,
				Urgency:            models.LevelMedium,
				ImplementationTime: "1 week",
				CostEstimate:       3000,
			})
			break
		}
	}

	if len(recommendations) > 0 {
		best := recommendations[0]
		for _, rec := range recommendations[1:] {
			if rec.ConfidenceScore > best.ConfidenceScore {
				best = rec
			}
		}
		advice = append(advice, models.AgriculturalAdvice{
			AdviceType:         "Market",
			Title:              fmt.Sprintf("Best Crop: %s", best.CropName),
			Description:        fmt.Sprintf("Based on current market conditions and weather, %s shows the highest potential with %.1f%% confidence.", best.CropName, best.ConfidenceScore*100),
			ConfidenceScore:    best.ConfidenceScore,
			Urgency:            models.LevelLow,
			ImplementationTime: "1-2 weeks",
			CostEstimate:       best.EstimatedProfit * 0.3,
		})
	}

	return advice
}
