package models

import (
	"time"
)

// Season is one of the three Indian cropping seasons.
type Season string

const (
	SeasonKharif Season = "Kharif"
	SeasonRabi   Season = "Rabi"
	SeasonZaid   Season = "Zaid"
)

// SoilType classifies the dominant soil of a region or a crop requirement.
type SoilType string

const (
	SoilAlluvial SoilType = "Alluvial"
	SoilBlack    SoilType = "Black"
	SoilRed      SoilType = "Red"
	SoilLaterite SoilType = "Laterite"
	SoilMountain SoilType = "Mountain"
	SoilDesert   SoilType = "Desert"
)

// PriceTrend is the categorical trend label attached to a price observation.
type PriceTrend string

const (
	TrendIncreasing PriceTrend = "increasing"
	TrendDecreasing PriceTrend = "decreasing"
	TrendStable     PriceTrend = "stable"
)

// Level is a qualitative Low/Medium/High rating used for requirements,
// demand and risk throughout the crop tables.
type Level string

const (
	LevelLow    Level = "Low"
	LevelMedium Level = "Medium"
	LevelHigh   Level = "High"
)

// PriceObservation is a single mandi price quote, per quintal.
// Produced by the price providers and consumed read-only.
type PriceObservation struct {
	CommodityName  string     `json:"commodity_name"`
	CurrentPrice   float64    `json:"current_price"`
	PriceTrend     PriceTrend `json:"price_trend"`
	MarketLocation string     `json:"market_location"`
	ObservedAt     time.Time  `json:"observed_at"`
}

// HistoricalPricePoint is one point of an optional sparse price series.
type HistoricalPricePoint struct {
	Commodity  string    `json:"commodity,omitempty"`
	Price      float64   `json:"price"`
	ObservedAt time.Time `json:"observed_at"`
}

// Range is an inclusive numeric interval (temperature in °C,
// rainfall in mm, humidity in %).
type Range struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Contains reports whether v lies inside the interval.
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// Distance returns the distance from v to the nearest bound,
// 0 when v is inside the interval.
func (r Range) Distance(v float64) float64 {
	if r.Contains(v) {
		return 0
	}
	dLow := v - r.Min
	if dLow < 0 {
		dLow = -dLow
	}
	dHigh := v - r.Max
	if dHigh < 0 {
		dHigh = -dHigh
	}
	if dLow < dHigh {
		return dLow
	}
	return dHigh
}

// CropProfile is the static agro-climatic profile of one crop.
type CropProfile struct {
	Name             string     `json:"name"`
	Seasons          []Season   `json:"seasons"`
	SoilTypes        []SoilType `json:"soil_types"`
	Temperature      Range      `json:"temperature_range"`
	Rainfall         Range      `json:"rainfall_range"`
	Humidity         Range      `json:"humidity_range"`
	YieldPerHectare  float64    `json:"yield_per_hectare"`
	WaterRequirement Level      `json:"water_requirement"`
	FertilizerNeed   Level      `json:"fertilizer_requirement"`
	PestRisk         Level      `json:"pest_risk"`
	MarketDemand     Level      `json:"market_demand"`
	ProfitMargin     float64    `json:"profit_margin"`
	States           []string   `json:"states"`
}

// RegionProfile is the static agricultural profile of one state.
type RegionProfile struct {
	State              string   `json:"state"`
	SoilType           SoilType `json:"soil_type"`
	Climate            string   `json:"climate"`
	MajorCrops         []string `json:"major_crops"`
	IrrigationCoverage float64  `json:"irrigation_coverage"`
	AverageRainfall    float64  `json:"average_rainfall"`
}

// WeatherSnapshot aggregates a forecast window into the figures the
// suitability scoring consumes.
type WeatherSnapshot struct {
	Temperature      float64 `json:"temperature"`       // average °C over the window
	Humidity         float64 `json:"humidity"`          // average %
	Rainfall         float64 `json:"rainfall"`          // total mm over the window
	TemperatureRange string  `json:"temperature_range"` // display string, e.g. "18.0°C - 31.5°C"
	HumidityLevel    Level   `json:"humidity_level"`
	Suitability      string  `json:"weather_suitability"` // Excellent, Good, Fair, Poor
	CurrentTemp      float64 `json:"current_temp"`
	CurrentHumidity  float64 `json:"current_humidity"`
}

// Location identifies where the farmer is.
type Location struct {
	State     string   `json:"state"`
	District  string   `json:"district"`
	Latitude  float64  `json:"latitude"`
	Longitude float64  `json:"longitude"`
	SoilType  SoilType `json:"soil_type,omitempty"`
}

// FarmerQuery is the recommendation request.
type FarmerQuery struct {
	Location       Location `json:"location"`
	Budget         float64  `json:"budget,omitempty"`    // ₹; 0 means not supplied
	LandSize       float64  `json:"land_size,omitempty"` // hectares; 0 means not supplied
	PreferredCrops []string `json:"preferred_crops,omitempty"`
	RiskTolerance  Level    `json:"risk_tolerance,omitempty"` // defaults to Medium
}

// CropRecommendation is one scored, ranked candidate crop.
type CropRecommendation struct {
	CropName        string   `json:"crop_name"`
	ConfidenceScore float64  `json:"confidence_score"` // always in [0,1]
	ExpectedYield   float64  `json:"expected_yield"`   // quintals; scaled by land size when supplied
	MarketPrice     float64  `json:"market_price"`     // ₹/quintal
	EstimatedProfit float64  `json:"estimated_profit"` // ₹
	PlantingSeason  Season   `json:"planting_season"`
	PlantingTime    string   `json:"planting_time"`
	HarvestingTime  string   `json:"harvesting_time"`
	WaterNeed       Level    `json:"water_requirement"`
	FertilizerNeed  Level    `json:"fertilizer_requirement"`
	PestRisk        Level    `json:"pest_risk"`
	MarketDemand    Level    `json:"market_demand"`
	Reasons         []string `json:"reasons"`
}

// AgriculturalAdvice is one advisory entry accompanying the recommendations.
type AgriculturalAdvice struct {
	AdviceType         string  `json:"advice_type"` // Weather, Irrigation, Pest Control, Market
	Title              string  `json:"title"`
	Description        string  `json:"description"`
	ConfidenceScore    float64 `json:"confidence_score"`
	Urgency            Level   `json:"urgency"`
	ImplementationTime string  `json:"implementation_time"`
	CostEstimate       float64 `json:"cost_estimate,omitempty"`
}

// RiskProfile is the categorical risk breakdown for a query.
type RiskProfile struct {
	WeatherRisk   Level `json:"weather_risk"`
	MarketRisk    Level `json:"market_risk"`
	PestRisk      Level `json:"pest_risk"`
	FinancialRisk Level `json:"financial_risk"`
	OverallRisk   Level `json:"overall_risk"`
}

// LocationSummary describes the queried region for the response payload.
type LocationSummary struct {
	State              string   `json:"state"`
	District           string   `json:"district"`
	SoilType           SoilType `json:"soil_type"`
	Climate            string   `json:"climate"`
	IrrigationCoverage float64  `json:"irrigation_coverage"`
	AverageRainfall    float64  `json:"average_rainfall"`
	MajorCrops         []string `json:"major_crops"`
}

// CropSuggestionResponse is the full recommendation payload.
type CropSuggestionResponse struct {
	Recommendations []CropRecommendation `json:"recommendations"`
	Advice          []AgriculturalAdvice `json:"advice"`
	MarketAnalysis  *MarketSnapshot      `json:"market_analysis,omitempty"`
	RiskAssessment  RiskProfile          `json:"risk_assessment"`
	GeneratedAt     time.Time            `json:"generated_at"`
	LocationSummary LocationSummary      `json:"location_summary"`
	AIAdvisory      string               `json:"ai_recommendations,omitempty"`
}

// MarketSnapshot is the quick sentiment view over one price batch,
// distinct from the full statistical report in internal/analyze.
type MarketSnapshot struct {
	Sentiment            string             `json:"market_sentiment"` // Bullish, Bearish, Neutral
	AveragePrice         float64            `json:"average_price"`
	TrendDistribution    map[PriceTrend]int `json:"trend_distribution"`
	BestPerforming       *CommodityQuote    `json:"best_performing,omitempty"`
	WorstPerforming      *CommodityQuote    `json:"worst_performing,omitempty"`
	MarketRecommendation string             `json:"market_recommendation"`
}

// CommodityQuote names a commodity with its price and trend.
type CommodityQuote struct {
	Commodity string     `json:"commodity"`
	Price     float64    `json:"price"`
	Trend     PriceTrend `json:"trend"`
}
