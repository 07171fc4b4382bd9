package ports

import (
	"context"
	"time"
)

// CityData represents a geocoding match
type CityData struct {
	Name        string
	Country     string
	CountryCode string
	Latitude    float64
	Longitude   float64
}

// GeocodingProvider defines the contract for free-text city search
type GeocodingProvider interface {
	SearchCities(ctx context.Context, query string, limit int) ([]CityData, error)
	GetProviderName() string
}

// WeatherData represents the current conditions at a coordinate
type WeatherData struct {
	Temperature   float64
	Humidity      float64
	WindSpeed     float64
	ConditionCode int
	Condition     string
	Icon          string
	IsDay         bool
	LocalTime     time.Time
}

// WeatherProvider defines the contract for weather data providers
type WeatherProvider interface {
	GetCurrentWeather(ctx context.Context, latitude, longitude float64) (*WeatherData, error)
	GetProviderName() string
}

// ImageBackend defines the contract for one image generation model
type ImageBackend interface {
	GenerateImage(ctx context.Context, prompt string) (string, error)
	GetProviderName() string
}

// LandmarkSuggester defines the contract for naming a city's signature landmark
type LandmarkSuggester interface {
	SuggestLandmark(ctx context.Context, city, country string) (string, error)
}
