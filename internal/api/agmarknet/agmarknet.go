// Package agmarknet fetches mandi prices from the Government of India
// Agmarknet API. It is the first link in the price source chain; a
// miss or failure here falls through to the reference table.
package agmarknet

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	platformhttp "github.com/agrovista/mandi/internal/platform/http"
	"github.com/agrovista/mandi/models"
)

const defaultBaseURL = "https://agmarknet.gov.in/api/price/commodity"

// Agmarknet identifies commodities by numeric codes.
var commodityCodes = map[string]string{
	"Rice":      "1101",
	"Wheat":     "1102",
	"Maize":     "1103",
	"Sugarcane": "1104",
	"Cotton":    "1105",
	"Soybean":   "1106",
	"Groundnut": "1107",
	"Potato":    "1108",
	"Onion":     "1109",
	"Tomato":    "1110",
}

// Client talks to the Agmarknet price API.
type Client struct {
	http    *platformhttp.Client
	baseURL string
	log     zerolog.Logger
	now     func() time.Time
}

// New returns an Agmarknet client.
func New(httpClient *platformhttp.Client, logger zerolog.Logger) *Client {
	return &Client{
		http:    httpClient,
		baseURL: defaultBaseURL,
		log:     logger.With().Str("component", "agmarknet").Logger(),
		now:     time.Now,
	}
}

type priceResponse struct {
	Price []struct {
		Price  float64 `json:"price"`
		Market string  `json:"market"`
	} `json:"price"`
}

// FetchPrice returns the latest quote for one commodity. ok is false
// when the commodity has no Agmarknet code, the API call fails, or no
// quote with a positive price comes back.
func (c *Client) FetchPrice(ctx context.Context, commodity string, loc models.Location) (models.PriceObservation, bool) {
	code, known := commodityCodes[commodity]
	if !known {
		return models.PriceObservation{}, false
	}

	var data priceResponse
	if err := c.http.GetJSON(ctx, fmt.Sprintf("%s/%s", c.baseURL, code), &data); err != nil {
		c.log.Debug().Err(err).Str("commodity", commodity).Msg("agmarknet fetch failed")
		return models.PriceObservation{}, false
	}
	if len(data.Price) == 0 || data.Price[0].Price <= 0 {
		return models.PriceObservation{}, false
	}

	latest := data.Price[0]
	market := latest.Market
	if market == "" {
		market = loc.State
	}
	return models.PriceObservation{
		CommodityName:  commodity,
		CurrentPrice:   latest.Price,
		PriceTrend:     models.TrendStable, // single quote carries no trend
		MarketLocation: market,
		ObservedAt:     c.now(),
	}, true
}

// Covered reports whether Agmarknet has a code for the commodity.
func Covered(commodity string) bool {
	_, ok := commodityCodes[commodity]
	return ok
}
