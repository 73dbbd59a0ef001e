package agdata

import (
	"github.com/agrovista/mandi/models"
)

// Crop and region reference tables for the major Indian crops and
// agricultural states. Yields are tonnes/hectare, rainfall mm/season,
// temperature °C, humidity %.

func cropTable() map[string]models.CropProfile {
	return map[string]models.CropProfile{
		"Rice": {
			Name:             "Rice",
			Seasons:          []models.Season{models.SeasonKharif, models.SeasonRabi},
			SoilTypes:        []models.SoilType{models.SoilAlluvial, models.SoilBlack},
			Temperature:      models.Range{Min: 20, Max: 35},
			Rainfall:         models.Range{Min: 1000, Max: 2000},
			Humidity:         models.Range{Min: 70, Max: 90},
			YieldPerHectare:  3.5,
			WaterRequirement: models.LevelHigh,
			FertilizerNeed:   models.LevelHigh,
			PestRisk:         models.LevelMedium,
			MarketDemand:     models.LevelHigh,
			ProfitMargin:     0.25,
			States:           []string{"West Bengal", "Punjab", "Uttar Pradesh", "Andhra Pradesh", "Tamil Nadu"},
		},
		"Wheat": {
			Name:             "Wheat",
			Seasons:          []models.Season{models.SeasonRabi},
			SoilTypes:        []models.SoilType{models.SoilAlluvial, models.SoilBlack},
			Temperature:      models.Range{Min: 15, Max: 25},
			Rainfall:         models.Range{Min: 500, Max: 800},
			Humidity:         models.Range{Min: 50, Max: 70},
			YieldPerHectare:  3.0,
			WaterRequirement: models.LevelMedium,
			FertilizerNeed:   models.LevelMedium,
			PestRisk:         models.LevelLow,
			MarketDemand:     models.LevelHigh,
			ProfitMargin:     0.20,
			States:           []string{"Punjab", "Haryana", "Uttar Pradesh", "Madhya Pradesh", "Rajasthan"},
		},
		"Maize": {
			Name:             "Maize",
			Seasons:          []models.Season{models.SeasonKharif, models.SeasonRabi},
			SoilTypes:        []models.SoilType{models.SoilAlluvial, models.SoilRed, models.SoilBlack},
			Temperature:      models.Range{Min: 18, Max: 30},
			Rainfall:         models.Range{Min: 600, Max: 1000},
			Humidity:         models.Range{Min: 60, Max: 80},
			YieldPerHectare:  4.0,
			WaterRequirement: models.LevelMedium,
			FertilizerNeed:   models.LevelMedium,
			PestRisk:         models.LevelMedium,
			MarketDemand:     models.LevelMedium,
			ProfitMargin:     0.22,
			States:           []string{"Karnataka", "Andhra Pradesh", "Maharashtra", "Bihar", "Uttar Pradesh"},
		},
		"Sugarcane": {
			Name:             "Sugarcane",
			Seasons:          []models.Season{models.SeasonKharif},
			SoilTypes:        []models.SoilType{models.SoilAlluvial, models.SoilBlack},
			Temperature:      models.Range{Min: 25, Max: 35},
			Rainfall:         models.Range{Min: 1000, Max: 1500},
			Humidity:         models.Range{Min: 70, Max: 85},
			YieldPerHectare:  80.0,
			WaterRequirement: models.LevelHigh,
			FertilizerNeed:   models.LevelHigh,
			PestRisk:         models.LevelHigh,
			MarketDemand:     models.LevelHigh,
			ProfitMargin:     0.30,
			States:           []string{"Uttar Pradesh", "Maharashtra", "Karnataka", "Tamil Nadu", "Gujarat"},
		},
		"Cotton": {
			Name:             "Cotton",
			Seasons:          []models.Season{models.SeasonKharif},
			SoilTypes:        []models.SoilType{models.SoilBlack, models.SoilRed},
			Temperature:      models.Range{Min: 20, Max: 35},
			Rainfall:         models.Range{Min: 500, Max: 1000},
			Humidity:         models.Range{Min: 60, Max: 80},
			YieldPerHectare:  2.5,
			WaterRequirement: models.LevelMedium,
			FertilizerNeed:   models.LevelHigh,
			PestRisk:         models.LevelHigh,
			MarketDemand:     models.LevelMedium,
			ProfitMargin:     0.35,
			States:           []string{"Gujarat", "Maharashtra", "Punjab", "Haryana", "Rajasthan"},
		},
		"Soybean": {
			Name:             "Soybean",
			Seasons:          []models.Season{models.SeasonKharif},
			SoilTypes:        []models.SoilType{models.SoilBlack, models.SoilRed},
			Temperature:      models.Range{Min: 20, Max: 30},
			Rainfall:         models.Range{Min: 600, Max: 1000},
			Humidity:         models.Range{Min: 60, Max: 80},
			YieldPerHectare:  2.0,
			WaterRequirement: models.LevelMedium,
			FertilizerNeed:   models.LevelMedium,
			PestRisk:         models.LevelMedium,
			MarketDemand:     models.LevelHigh,
			ProfitMargin:     0.28,
			States:           []string{"Madhya Pradesh", "Maharashtra", "Rajasthan", "Karnataka"},
		},
		"Groundnut": {
			Name:             "Groundnut",
			Seasons:          []models.Season{models.SeasonKharif, models.SeasonRabi},
			SoilTypes:        []models.SoilType{models.SoilRed, models.SoilLaterite},
			Temperature:      models.Range{Min: 20, Max: 30},
			Rainfall:         models.Range{Min: 500, Max: 800},
			Humidity:         models.Range{Min: 50, Max: 70},
			YieldPerHectare:  1.5,
			WaterRequirement: models.LevelLow,
			FertilizerNeed:   models.LevelLow,
			PestRisk:         models.LevelLow,
			MarketDemand:     models.LevelMedium,
			ProfitMargin:     0.32,
			States:           []string{"Gujarat", "Rajasthan", "Tamil Nadu", "Andhra Pradesh", "Karnataka"},
		},
		"Potato": {
			Name:             "Potato",
			Seasons:          []models.Season{models.SeasonRabi, models.SeasonZaid},
			SoilTypes:        []models.SoilType{models.SoilAlluvial, models.SoilRed},
			Temperature:      models.Range{Min: 15, Max: 25},
			Rainfall:         models.Range{Min: 300, Max: 500},
			Humidity:         models.Range{Min: 60, Max: 80},
			YieldPerHectare:  25.0,
			WaterRequirement: models.LevelMedium,
			FertilizerNeed:   models.LevelHigh,
			PestRisk:         models.LevelHigh,
			MarketDemand:     models.LevelHigh,
			ProfitMargin:     0.40,
			States:           []string{"Uttar Pradesh", "West Bengal", "Punjab", "Bihar", "Gujarat"},
		},
		"Onion": {
			Name:             "Onion",
			Seasons:          []models.Season{models.SeasonRabi, models.SeasonKharif},
			SoilTypes:        []models.SoilType{models.SoilAlluvial, models.SoilRed},
			Temperature:      models.Range{Min: 15, Max: 30},
			Rainfall:         models.Range{Min: 300, Max: 600},
			Humidity:         models.Range{Min: 50, Max: 70},
			YieldPerHectare:  20.0,
			WaterRequirement: models.LevelMedium,
			FertilizerNeed:   models.LevelMedium,
			PestRisk:         models.LevelMedium,
			MarketDemand:     models.LevelHigh,
			ProfitMargin:     0.45,
			States:           []string{"Maharashtra", "Karnataka", "Gujarat", "Madhya Pradesh", "Rajasthan"},
		},
		"Tomato": {
			Name:             "Tomato",
			Seasons:          []models.Season{models.SeasonKharif, models.SeasonRabi, models.SeasonZaid},
			SoilTypes:        []models.SoilType{models.SoilAlluvial, models.SoilRed},
			Temperature:      models.Range{Min: 18, Max: 28},
			Rainfall:         models.Range{Min: 400, Max: 800},
			Humidity:         models.Range{Min: 60, Max: 80},
			YieldPerHectare:  30.0,
			WaterRequirement: models.LevelMedium,
			FertilizerNeed:   models.LevelHigh,
			PestRisk:         models.LevelHigh,
			MarketDemand:     models.LevelHigh,
			ProfitMargin:     0.50,
			States:           []string{"Karnataka", "Andhra Pradesh", "Maharashtra", "Gujarat", "Tamil Nadu"},
		},
	}
}

func regionTable() map[string]models.RegionProfile {
	return map[string]models.RegionProfile{
		"Punjab": {
			State:              "Punjab",
			SoilType:           models.SoilAlluvial,
			Climate:            "Semi-arid",
			MajorCrops:         []string{"Wheat", "Rice", "Cotton", "Sugarcane"},
			IrrigationCoverage: 95,
			AverageRainfall:    500,
		},
		"Haryana": {
			State:              "Haryana",
			SoilType:           models.SoilAlluvial,
			Climate:            "Semi-arid",
			MajorCrops:         []string{"Wheat", "Rice", "Cotton", "Sugarcane"},
			IrrigationCoverage: 90,
			AverageRainfall:    600,
		},
		"Uttar Pradesh": {
			State:              "Uttar Pradesh",
			SoilType:           models.SoilAlluvial,
			Climate:            "Tropical",
			MajorCrops:         []string{"Wheat", "Rice", "Sugarcane", "Potato"},
			IrrigationCoverage: 70,
			AverageRainfall:    1000,
		},
		"Maharashtra": {
			State:              "Maharashtra",
			SoilType:           models.SoilBlack,
			Climate:            "Tropical",
			MajorCrops:         []string{"Sugarcane", "Cotton", "Soybean", "Onion"},
			IrrigationCoverage: 60,
			AverageRainfall:    800,
		},
		"Gujarat": {
			State:              "Gujarat",
			SoilType:           models.SoilBlack,
			Climate:            "Arid",
			MajorCrops:         []string{"Cotton", "Groundnut", "Wheat", "Onion"},
			IrrigationCoverage: 50,
			AverageRainfall:    400,
		},
		"Karnataka": {
			State:              "Karnataka",
			SoilType:           models.SoilRed,
			Climate:            "Tropical",
			MajorCrops:         []string{"Maize", "Sugarcane", "Tomato", "Onion"},
			IrrigationCoverage: 40,
			AverageRainfall:    1200,
		},
		"Tamil Nadu": {
			State:              "Tamil Nadu",
			SoilType:           models.SoilRed,
			Climate:            "Tropical",
			MajorCrops:         []string{"Rice", "Sugarcane", "Groundnut", "Cotton"},
			IrrigationCoverage: 80,
			AverageRainfall:    1000,
		},
		"West Bengal": {
			State:              "West Bengal",
			SoilType:           models.SoilAlluvial,
			Climate:            "Tropical",
			MajorCrops:         []string{"Rice", "Potato", "Jute", "Tea"},
			IrrigationCoverage: 85,
			AverageRainfall:    1500,
		},
	}
}
