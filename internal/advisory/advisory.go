// Package advisory generates the free-text agricultural advisory from
// the query context using the Anthropic API. The text is opaque to the
// rest of the system; when the API is unavailable a deterministic
// rule-based fallback is returned instead, never an error.
package advisory

import (
	"context"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/rs/zerolog"

	"github.com/agrovista/mandi/internal/metrics"
	"github.com/agrovista/mandi/models"
)

const maxTokens = 1000

// Options configures the generator.
type Options struct {
	APIKey      string
	Model       string
	Temperature float64
}

// Generator produces advisory text via the Anthropic Messages API.
// Implements models.AdvisoryGenerator.
type Generator struct {
	client  anthropic.Client
	model   string
	temp    float64
	enabled bool
	log     zerolog.Logger
}

// New returns a generator. An empty API key disables the API path;
// Generate then always returns the fallback text.
func New(opts Options, logger zerolog.Logger) *Generator {
	g := &Generator{
		model:   opts.Model,
		temp:    opts.Temperature,
		enabled: opts.APIKey != "",
		log:     logger.With().Str("component", "advisory").Logger(),
	}
	if g.enabled {
		g.client = anthropic.NewClient(option.WithAPIKey(opts.APIKey))
	}
	return g
}

// Available reports whether the API path is configured.
func (g *Generator) Available(_ context.Context) bool {
	return g.enabled
}

// Generate returns advisory text for the query. Any API failure logs a
// warning and falls back to the rule-based text.
func (g *Generator) Generate(ctx context.Context, query models.FarmerQuery, weather models.WeatherSnapshot, prices []models.PriceObservation) string {
	if !g.enabled {
		metrics.AdvisoryFallbacks.Inc()
		return fallback(query, weather)
	}

	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(g.model),
		MaxTokens: maxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(buildPrompt(query, weather, prices))),
		},
	}
	if g.temp > 0 {
		params.Temperature = anthropic.Float(g.temp)
	}

	resp, err := g.client.Messages.New(ctx, params)
	if err != nil {
		g.log.Warn().Err(err).Msg("advisory generation failed, using fallback")
		metrics.AdvisoryFallbacks.Inc()
		return fallback(query, weather)
	}

	var text strings.Builder
	for _, block := range resp.Content {
		if block.Type == "text" {
			text.WriteString(block.Text)
		}
	}
	if text.Len() == 0 {
		return fallback(query, weather)
	}
	return text.String()
}

func buildPrompt(query models.FarmerQuery, weather models.WeatherSnapshot, prices []models.PriceObservation) string {
	var b strings.Builder

	fmt.Fprintf(&b, `You are an expert agricultural advisor for Indian farmers. Based on the following information, provide detailed crop recommendations and farming advice.

FARMER INFORMATION:
- Location: %s, %s
- Land Size: %s hectares
- Budget: ₹%s
- Risk Tolerance: %s
- Preferred Crops: %s
- Soil Type: %s

WEATHER CONDITIONS:
- Current Temperature: %.1f°C
- Humidity: %.0f%%
- Rainfall (7 days): %.1fmm
- Weather Suitability: %s

COMMODITY PRICES:
`,
		query.Location.State, query.Location.District,
		orNotSpecified(query.LandSize),
		orNotSpecified(query.Budget),
		riskTolerance(query.RiskTolerance),
		strings.Join(query.PreferredCrops, ", "),
		soilType(query.Location.SoilType),
		weather.CurrentTemp, weather.CurrentHumidity, weather.Rainfall, weather.Suitability,
	)

	for _, p := range prices {
		fmt.Fprintf(&b, "- %s: ₹%.0f/quintal (Trend: %s)\n", p.CommodityName, p.CurrentPrice, p.PriceTrend)
	}

	b.WriteString(`
Please provide:
1. Top 3 crop recommendations with reasons
2. Expected yield and profit estimates
3. Planting schedule and timing
4. Required inputs (seeds, fertilizers, irrigation)
5. Risk factors and mitigation strategies
6. Market outlook and selling advice

Format your response in a clear, actionable manner suitable for farmers.
`)

	return b.String()
}

func orNotSpecified(v float64) string {
	if v <= 0 {
		return "Not specified"
	}
	return fmt.Sprintf("%.0f", v)
}

func riskTolerance(level models.Level) models.Level {
	if level == "" {
		return models.LevelMedium
	}
	return level
}

func soilType(soil models.SoilType) string {
	if soil == "" {
		return "Not specified"
	}
	return string(soil)
}

// fallback is the deterministic advisory used when the API path is
// disabled or failing.
func fallback(query models.FarmerQuery, weather models.WeatherSnapshot) string {
	var b strings.Builder

	fmt.Fprintf(&b, `AGRICULTURAL RECOMMENDATIONS FOR %s

Based on your location and current conditions, here are my recommendations:

WEATHER-BASED ADVICE:
- Current weather conditions appear %s
- Rainfall: %.1fmm in the last 7 days
- Temperature: %.1f°C

TOP CROP RECOMMENDATIONS:
`, strings.ToUpper(query.Location.State), weather.Suitability, weather.Rainfall, weather.CurrentTemp)

	if weather.Suitability == "Excellent" {
		b.WriteString(`
1. RICE - High yield potential with current weather
2. WHEAT - Good market price and stable demand
3. MAIZE - Increasing prices, good profit margin
`)
	} else {
		b.WriteString(`
1. WHEAT - Drought resistant, stable market
2. SUGARCANE - High value crop, good for your region
3. COTTON - Good market demand, suitable for your area
`)
	}

	b.WriteString(`
MARKET ANALYSIS:
- Monitor commodity prices regularly
- Best time to sell: Post-harvest season
- Consider contract farming for better prices

RISK MANAGEMENT:
- Diversify crops to reduce risk
- Monitor weather forecasts regularly
- Maintain proper irrigation facilities
- Follow integrated pest management practices
`)

	return b.String()
}
