package price

import (
	"sort"
	"time"

	"github.com/agrovista/mandi/models"
)

// referenceEntry is one row of the built-in price table, used when no
// live source can quote a commodity.
type referenceEntry struct {
	price   float64
	trend   models.PriceTrend
	markets []string
}

// Reference prices per quintal, calibrated to recent Indian mandi levels.
var referenceTable = map[string]referenceEntry{
	"Rice":       {2500, models.TrendIncreasing, []string{"Delhi", "Mumbai", "Kolkata", "Chennai"}},
	"Wheat":      {2200, models.TrendStable, []string{"Delhi", "Punjab", "Haryana", "UP"}},
	"Maize":      {1800, models.TrendIncreasing, []string{"Karnataka", "Andhra Pradesh", "Maharashtra"}},
	"Sugarcane":  {3200, models.TrendStable, []string{"UP", "Maharashtra", "Karnataka", "Tamil Nadu"}},
	"Cotton":     {6500, models.TrendDecreasing, []string{"Gujarat", "Maharashtra", "Punjab", "Haryana"}},
	"Soybean":    {4200, models.TrendIncreasing, []string{"Madhya Pradesh", "Maharashtra", "Rajasthan"}},
	"Groundnut":  {5500, models.TrendStable, []string{"Gujarat", "Rajasthan", "Tamil Nadu"}},
	"Potato":     {1200, models.TrendIncreasing, []string{"UP", "West Bengal", "Punjab", "Bihar"}},
	"Onion":      {1800, models.TrendDecreasing, []string{"Maharashtra", "Karnataka", "Gujarat"}},
	"Tomato":     {2500, models.TrendIncreasing, []string{"Karnataka", "Andhra Pradesh", "Maharashtra"}},
	"Turmeric":   {8500, models.TrendStable, []string{"Tamil Nadu", "Andhra Pradesh", "Maharashtra"}},
	"Red Chilli": {15000, models.TrendIncreasing, []string{"Andhra Pradesh", "Karnataka", "Telangana"}},
}

// stateMarkets maps a farmer's state onto the nearest major mandi.
var stateMarkets = map[string]string{
	"Delhi":          "Delhi",
	"Haryana":        "Delhi",
	"Punjab":         "Punjab",
	"UP":             "UP",
	"Uttar Pradesh":  "UP",
	"Maharashtra":    "Mumbai",
	"Gujarat":        "Gujarat",
	"Karnataka":      "Karnataka",
	"Tamil Nadu":     "Chennai",
	"West Bengal":    "Kolkata",
	"Bihar":          "Bihar",
	"Rajasthan":      "Rajasthan",
	"Madhya Pradesh": "Madhya Pradesh",
	"Andhra Pradesh": "Andhra Pradesh",
	"Telangana":      "Telangana",
	"Kerala":         "Kerala",
	"Odisha":         "Odisha",
	"Assam":          "Assam",
}

// ReferenceCommodities returns the commodities the built-in table
// covers, sorted.
func ReferenceCommodities() []string {
	out := make([]string, 0, len(referenceTable))
	for name := range referenceTable {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// referencePrice builds an observation from the built-in table.
// Unknown commodities get a flat default so a request never comes back
// empty-handed.
func referencePrice(commodity string, loc models.Location, now time.Time) models.PriceObservation {
	entry, ok := referenceTable[commodity]
	if !ok {
		entry = referenceEntry{price: 2000, trend: models.TrendStable, markets: []string{loc.State}}
	}
	return models.PriceObservation{
		CommodityName:  commodity,
		CurrentPrice:   entry.price,
		PriceTrend:     entry.trend,
		MarketLocation: closestMarket(loc, entry.markets),
		ObservedAt:     now,
	}
}

func closestMarket(loc models.Location, markets []string) string {
	if market, ok := stateMarkets[loc.State]; ok {
		return market
	}
	if len(markets) > 0 {
		return markets[0]
	}
	return loc.State
}
