package weather

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSnapshot_IsValid(t *testing.T) {
	tests := []struct {
		name     string
		snapshot Snapshot
		errMsg   string
	}{
		{"Valid", Snapshot{Condition: "Sunny", Temperature: 22, Humidity: 40, WindSpeed: 5}, ""},
		{"EmptyCondition", Snapshot{Condition: " ", Temperature: 22}, "condition cannot be empty"},
		{"TooHot", Snapshot{Condition: "Sunny", Temperature: 75}, "temperature out of range"},
		{"HumidityAbove100", Snapshot{Condition: "Fog", Humidity: 101}, "humidity must be between 0 and 100"},
		{"NegativeWind", Snapshot{Condition: "Fog", WindSpeed: -1}, "wind speed cannot be negative"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.snapshot.IsValid()
			if tt.errMsg == "" {
				assert.NoError(t, err)
				return
			}
			assert.EqualError(t, err, tt.errMsg)
		})
	}
}

func TestRequest_IsValid(t *testing.T) {
	assert.NoError(t, (&Request{Latitude: 48.8566, Longitude: 2.3522}).IsValid())
	assert.Error(t, (&Request{Latitude: 91}).IsValid())
	assert.Error(t, (&Request{Longitude: -181}).IsValid())
}

func TestCategoryOf(t *testing.T) {
	tests := map[string]Category{
		"Sunny":                   CategorySunny,
		"Clear":                   CategorySunny,
		"Unknown":                 CategorySunny,
		"Partly cloudy":           CategoryCloudy,
		"OVERCAST":                CategoryCloudy,
		"Light rain":              CategoryRainy,
		"Heavy drizzle":           CategoryRainy,
		"Thunderstorm":            CategoryRainy,
		"Light snow showers":      CategorySnowy,
		"Sleet":                   CategorySnowy,
		"Fog":                     CategoryFoggy,
		"Mist":                    CategoryFoggy,
		"Torrential rain showers": CategoryRainy,
	}

	for condition, want := range tests {
		assert.Equal(t, want, CategoryOf(condition), condition)
	}
}

func TestConditionLabel(t *testing.T) {
	label, icon := ConditionLabel(0, true)
	assert.Equal(t, "Sunny", label)
	assert.Equal(t, "clear-day", icon)

	label, icon = ConditionLabel(0, false)
	assert.Equal(t, "Clear", label)
	assert.Equal(t, "clear-night", icon)

	label, icon = ConditionLabel(73, false)
	assert.Equal(t, "Snow", label)
	assert.Equal(t, "snow", icon)

	label, _ = ConditionLabel(42, true)
	assert.Equal(t, "Unknown", label)
}

func TestSnapshot_String(t *testing.T) {
	s := Snapshot{City: "Paris", Country: "France", Temperature: 22, Condition: "Sunny", Humidity: 40, WindSpeed: 12}
	assert.Equal(t, "Paris, France: 22°C, Sunny, 40% humidity, 12 km/h wind", s.String())
}
