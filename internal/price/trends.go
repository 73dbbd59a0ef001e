package price

import (
	"fmt"
	"time"

	"github.com/agrovista/mandi/internal/calculate"
	"github.com/agrovista/mandi/models"
)

// TrendSeries is a synthetic daily price history for one commodity,
// extrapolated backwards from the reference price along its trend.
type TrendSeries struct {
	Commodity    string                        `json:"commodity"`
	Trend        models.PriceTrend             `json:"trend"`
	History      []models.HistoricalPricePoint `json:"price_history"`
	CurrentPrice float64                       `json:"current_price"`
	PriceChange  float64                       `json:"price_change"`
	Source       string                        `json:"source"`
}

// Trends builds a synthetic daily series of the given length for one
// reference commodity. Unknown commodities return an error.
func Trends(commodity string, days int, now time.Time) (*TrendSeries, error) {
	entry, ok := referenceTable[commodity]
	if !ok {
		return nil, fmt.Errorf("commodity %q not found", commodity)
	}
	if days <= 0 {
		days = 30
	}

	history := make([]models.HistoricalPricePoint, 0, days)
	for i := 0; i < days; i++ {
		fi := float64(i)
		var p float64
		switch entry.trend {
		case models.TrendIncreasing:
			p = entry.price + fi*15 + fi*fi*0.5
		case models.TrendDecreasing:
			p = entry.price - fi*8 + fi*fi*0.2
		default:
			if i%2 == 0 {
				p = entry.price + fi*5
			} else {
				p = entry.price - fi*3
			}
		}
		// Price floor at half the reference level.
		if floor := entry.price * 0.5; p < floor {
			p = floor
		}
		history = append(history, models.HistoricalPricePoint{
			Commodity:  commodity,
			Price:      calculate.Round2(p),
			ObservedAt: now.AddDate(0, 0, -(days - i)),
		})
	}

	return &TrendSeries{
		Commodity:    commodity,
		Trend:        entry.trend,
		History:      history,
		CurrentPrice: entry.price,
		PriceChange:  calculate.Round2(history[len(history)-1].Price - history[0].Price),
		Source:       "Reference price model",
	}, nil
}
