// Package agdata holds the static agronomic reference data: crop
// profiles, regional profiles and the cropping-season calendar. The
// tables are process-wide immutable; access goes through the
// models.KnowledgeBase interface so the scoring core can be tested
// with fixture data.
package agdata

import (
	"sort"
	"time"

	"github.com/agrovista/mandi/models"
)

// Store is the in-memory knowledge base backed by the built-in tables.
type Store struct {
	crops   map[string]models.CropProfile
	regions map[string]models.RegionProfile
}

// New returns a knowledge base over the built-in crop and region tables.
func New() *Store {
	return &Store{crops: cropTable(), regions: regionTable()}
}

// NewWithData returns a knowledge base over caller-supplied tables,
// used by tests.
func NewWithData(crops map[string]models.CropProfile, regions map[string]models.RegionProfile) *Store {
	if crops == nil {
		crops = map[string]models.CropProfile{}
	}
	if regions == nil {
		regions = map[string]models.RegionProfile{}
	}
	return &Store{crops: crops, regions: regions}
}

// Crop looks up one crop profile by name.
func (s *Store) Crop(name string) (models.CropProfile, bool) {
	c, ok := s.crops[name]
	return c, ok
}

// Region looks up one regional profile by state name.
func (s *Store) Region(state string) (models.RegionProfile, bool) {
	r, ok := s.regions[state]
	return r, ok
}

// CropNames returns all known crop names in stable order.
func (s *Store) CropNames() []string {
	names := make([]string, 0, len(s.crops))
	for name := range s.crops {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SeasonalCrops returns the crops eligible for a season, in stable order.
func (s *Store) SeasonalCrops(season models.Season) []string {
	var names []string
	for name, crop := range s.crops {
		for _, cs := range crop.Seasons {
			if cs == season {
				names = append(names, name)
				break
			}
		}
	}
	sort.Strings(names)
	return names
}

// SeasonForMonth maps a calendar month onto exactly one cropping
// season: June-October Kharif, November-March Rabi, April-May Zaid.
// The partition is total and unambiguous; October belongs to Kharif.
func SeasonForMonth(month time.Month) models.Season {
	switch month {
	case time.June, time.July, time.August, time.September, time.October:
		return models.SeasonKharif
	case time.November, time.December, time.January, time.February, time.March:
		return models.SeasonRabi
	default:
		return models.SeasonZaid
	}
}

// PlantingWindow returns the planting and harvesting window strings
// for a season.
func PlantingWindow(season models.Season) (planting, harvesting string) {
	switch season {
	case models.SeasonKharif:
		return "June-July", "October-November"
	case models.SeasonRabi:
		return "October-November", "March-April"
	default:
		return "March-April", "May-June"
	}
}

// SeasonInfo describes one cropping season for presentation.
type SeasonInfo struct {
	Months          []time.Month `json:"months"`
	Description     string       `json:"description"`
	TypicalRainfall float64      `json:"typical_rainfall"`
	Temperature     models.Range `json:"temperature_range"`
}

// Seasons returns the season calendar.
func Seasons() map[models.Season]SeasonInfo {
	return map[models.Season]SeasonInfo{
		models.SeasonKharif: {
			Months:          []time.Month{time.June, time.July, time.August, time.September, time.October},
			Description:     "Monsoon season - suitable for crops requiring high rainfall",
			TypicalRainfall: 800,
			Temperature:     models.Range{Min: 25, Max: 35},
		},
		models.SeasonRabi: {
			Months:          []time.Month{time.November, time.December, time.January, time.February, time.March},
			Description:     "Winter season - suitable for crops requiring moderate temperature",
			TypicalRainfall: 200,
			Temperature:     models.Range{Min: 10, Max: 25},
		},
		models.SeasonZaid: {
			Months:          []time.Month{time.April, time.May},
			Description:     "Summer season - suitable for short duration crops",
			TypicalRainfall: 100,
			Temperature:     models.Range{Min: 25, Max: 40},
		},
	}
}
