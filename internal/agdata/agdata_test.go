package agdata

import (
	"testing"
	"time"

	"github.com/agrovista/mandi/models"
)

func TestSeasonForMonth(t *testing.T) {
	tests := []struct {
		month time.Month
		want  models.Season
	}{
		{time.January, models.SeasonRabi},
		{time.February, models.SeasonRabi},
		{time.March, models.SeasonRabi},
		{time.April, models.SeasonZaid},
		{time.May, models.SeasonZaid},
		{time.June, models.SeasonKharif},
		{time.July, models.SeasonKharif},
		{time.August, models.SeasonKharif},
		{time.September, models.SeasonKharif},
		{time.October, models.SeasonKharif},
		{time.November, models.SeasonRabi},
		{time.December, models.SeasonRabi},
	}

	for _, tt := range tests {
		if got := SeasonForMonth(tt.month); got != tt.want {
			t.Errorf("SeasonForMonth(%v) = %v, want %v", tt.month, got, tt.want)
		}
	}
}

func TestPlantingWindow(t *testing.T) {
	tests := []struct {
		season         models.Season
		wantPlanting   string
		wantHarvesting string
	}{
		{models.SeasonKharif, "June-July", "October-November"},
		{models.SeasonRabi, "October-November", "March-April"},
		{models.SeasonZaid, "March-April", "May-June"},
	}

	for _, tt := range tests {
		planting, harvesting := PlantingWindow(tt.season)
		if planting != tt.wantPlanting || harvesting != tt.wantHarvesting {
			t.Errorf("PlantingWindow(%v) = %q/%q, want %q/%q",
				tt.season, planting, harvesting, tt.wantPlanting, tt.wantHarvesting)
		}
	}
}

func TestBuiltInTables(t *testing.T) {
	kb := New()

	rice, ok := kb.Crop("Rice")
	if !ok {
		t.Fatal("Rice missing from crop table")
	}
	if rice.Name != "Rice" {
		t.Errorf("rice.Name = %q", rice.Name)
	}

	if _, ok := kb.Crop("Quinoa"); ok {
		t.Error("unexpected crop Quinoa")
	}

	punjab, ok := kb.Region("Punjab")
	if !ok {
		t.Fatal("Punjab missing from region table")
	}
	if len(punjab.MajorCrops) == 0 {
		t.Error("Punjab has no major crops")
	}

	if _, ok := kb.Region("Atlantis"); ok {
		t.Error("unexpected region Atlantis")
	}
}

func TestCropNamesSorted(t *testing.T) {
	kb := New()
	names := kb.CropNames()
	if len(names) != 10 {
		t.Fatalf("got %d crops, want 10", len(names))
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Fatalf("names not in sorted order: %v", names)
		}
	}
}

func TestSeasonalCrops(t *testing.T) {
	kb := New()

	// Every season in the calendar has at least one eligible crop.
	for season := range Seasons() {
		if crops := kb.SeasonalCrops(season); len(crops) == 0 {
			t.Errorf("no crops for season %v", season)
		}
	}

	zaid := kb.SeasonalCrops(models.SeasonZaid)
	want := []string{"Potato", "Tomato"}
	if len(zaid) != len(want) {
		t.Fatalf("zaid crops = %v, want %v", zaid, want)
	}
	for i := range want {
		if zaid[i] != want[i] {
			t.Errorf("zaid[%d] = %q, want %q", i, zaid[i], want[i])
		}
	}
}

func TestSeasonsCalendar(t *testing.T) {
	calendar := Seasons()
	if len(calendar) != 3 {
		t.Fatalf("got %d seasons, want 3", len(calendar))
	}

	var months int
	for _, info := range calendar {
		months += len(info.Months)
		if info.Description == "" {
			t.Error("season has no description")
		}
	}
	if months != 12 {
		t.Errorf("calendar covers %d months, want 12", months)
	}
}

func TestNewWithData(t *testing.T) {
	kb := NewWithData(nil, nil)
	if names := kb.CropNames(); len(names) != 0 {
		t.Errorf("empty knowledge base has crops: %v", names)
	}
	if _, ok := kb.Region("Punjab"); ok {
		t.Error("empty knowledge base has regions")
	}
}
