// Package openweather fetches current conditions and the 5-day
// forecast from the OpenWeather API and folds them into the weather
// snapshot the suitability scoring consumes. API failures degrade to
// static seasonal defaults rather than erroring.
package openweather

import (
	"context"
	"fmt"
	"net/url"

	"github.com/rs/zerolog"

	platformhttp "github.com/agrovista/mandi/internal/platform/http"
	"github.com/agrovista/mandi/models"
)

const defaultBaseURL = "http://api.openweathermap.org/data/2.5"

// Forecast entries arrive every 3 hours; 56 entries cover 7 days.
const maxForecastEntries = 56

// Static fallback used when the API is unreachable.
var fallbackWeather = models.WeatherSnapshot{
	Temperature:      25.0,
	Humidity:         60.0,
	Rainfall:         0,
	TemperatureRange: "25.0°C",
	HumidityLevel:    models.LevelMedium,
	Suitability:      "Fair",
	CurrentTemp:      25.0,
	CurrentHumidity:  60.0,
}

// Client talks to the OpenWeather API. Implements models.WeatherProvider.
type Client struct {
	http    *platformhttp.Client
	apiKey  string
	baseURL string
	log     zerolog.Logger
}

// New returns an OpenWeather client.
func New(httpClient *platformhttp.Client, apiKey string, logger zerolog.Logger) *Client {
	return &Client{
		http:    httpClient,
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		log:     logger.With().Str("component", "openweather").Logger(),
	}
}

type currentResponse struct {
	Main struct {
		Temp     float64 `json:"temp"`
		Humidity float64 `json:"humidity"`
	} `json:"main"`
}

type forecastResponse struct {
	List []struct {
		Main struct {
			Temp     float64 `json:"temp"`
			Humidity float64 `json:"humidity"`
		} `json:"main"`
		Rain struct {
			ThreeHour float64 `json:"3h"`
		} `json:"rain"`
	} `json:"list"`
}

// GetSnapshot aggregates the forecast window for a location: average
// temperature and humidity, total rainfall, plus current conditions.
// Any API failure falls back to static defaults.
func (c *Client) GetSnapshot(ctx context.Context, loc models.Location) models.WeatherSnapshot {
	var current currentResponse
	if err := c.http.GetJSON(ctx, c.endpoint("weather", loc), &current); err != nil {
		c.log.Warn().Err(err).Str("state", loc.State).Msg("current weather fetch failed, using defaults")
		return fallbackWeather
	}

	var forecast forecastResponse
	if err := c.http.GetJSON(ctx, c.endpoint("forecast", loc), &forecast); err != nil {
		c.log.Warn().Err(err).Str("state", loc.State).Msg("forecast fetch failed, using current conditions only")
		return summarizeCurrent(current)
	}

	entries := forecast.List
	if len(entries) > maxForecastEntries {
		entries = entries[:maxForecastEntries]
	}
	if len(entries) == 0 {
		return summarizeCurrent(current)
	}

	var tempSum, humiditySum, rainfall float64
	minTemp, maxTemp := entries[0].Main.Temp, entries[0].Main.Temp
	for _, entry := range entries {
		tempSum += entry.Main.Temp
		humiditySum += entry.Main.Humidity
		rainfall += entry.Rain.ThreeHour
		if entry.Main.Temp < minTemp {
			minTemp = entry.Main.Temp
		}
		if entry.Main.Temp > maxTemp {
			maxTemp = entry.Main.Temp
		}
	}
	avgTemp := tempSum / float64(len(entries))
	avgHumidity := humiditySum / float64(len(entries))

	return models.WeatherSnapshot{
		Temperature:      avgTemp,
		Humidity:         avgHumidity,
		Rainfall:         rainfall,
		TemperatureRange: fmt.Sprintf("%.1f°C - %.1f°C", minTemp, maxTemp),
		HumidityLevel:    humidityLevel(avgHumidity),
		Suitability:      AssessSuitability(avgTemp, rainfall, avgHumidity),
		CurrentTemp:      current.Main.Temp,
		CurrentHumidity:  current.Main.Humidity,
	}
}

func (c *Client) endpoint(path string, loc models.Location) string {
	params := url.Values{}
	params.Set("lat", fmt.Sprintf("%f", loc.Latitude))
	params.Set("lon", fmt.Sprintf("%f", loc.Longitude))
	params.Set("appid", c.apiKey)
	params.Set("units", "metric")
	return fmt.Sprintf("%s/%s?%s", c.baseURL, path, params.Encode())
}

func summarizeCurrent(current currentResponse) models.WeatherSnapshot {
	temp := current.Main.Temp
	humidity := current.Main.Humidity
	return models.WeatherSnapshot{
		Temperature:      temp,
		Humidity:         humidity,
		Rainfall:         0,
		TemperatureRange: fmt.Sprintf("%.1f°C", temp),
		HumidityLevel:    humidityLevel(humidity),
		Suitability:      AssessSuitability(temp, 0, humidity),
		CurrentTemp:      temp,
		CurrentHumidity:  humidity,
	}
}

func humidityLevel(humidity float64) models.Level {
	switch {
	case humidity > 70:
		return models.LevelHigh
	case humidity > 50:
		return models.LevelMedium
	default:
		return models.LevelLow
	}
}

// AssessSuitability rates the growing conditions on a 3-9 point scale:
// three points per factor inside its optimal band, two inside the
// acceptable band, one outside.
func AssessSuitability(temp, rainfall, humidity float64) string {
	score := 0

	switch {
	case temp >= 20 && temp <= 30:
		score += 3
	case temp >= 15 && temp <= 35:
		score += 2
	default:
		score++
	}

	switch {
	case rainfall >= 50 && rainfall <= 200:
		score += 3
	case rainfall >= 25 && rainfall <= 300:
		score += 2
	default:
		score++
	}

	switch {
	case humidity >= 60 && humidity <= 80:
		score += 3
	case humidity >= 40 && humidity <= 90:
		score += 2
	default:
		score++
	}

	switch {
	case score >= 8:
		return "Excellent"
	case score >= 6:
		return "Good"
	case score >= 4:
		return "Fair"
	default:
		return "Poor"
	}
}
