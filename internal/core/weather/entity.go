package weather

import (
	"fmt"
	"strings"
)

// LocalTimeLayout formats the wall-clock time at the looked-up location
const LocalTimeLayout = "Mon Jan 2, 15:04"

// Snapshot represents current weather at a selected city
type Snapshot struct {
	City        string  `json:"city"`
	Country     string  `json:"country"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	Temperature int     `json:"temperature"`
	Condition   string  `json:"condition"`
	Icon        string  `json:"icon"`
	Humidity    int     `json:"humidity"`
	WindSpeed   int     `json:"windSpeed"`
	LocalTime   string  `json:"localTime"`
	IsDay       bool    `json:"isDay"`
	Synthetic   bool    `json:"synthetic"`
}

// Request represents a request for a weather snapshot
type Request struct {
	Latitude  float64
	Longitude float64
	City      string
	Country   string
}

// IsValid validates the request coordinates
func (r *Request) IsValid() error {
	if r.Latitude < -90 || r.Latitude > 90 {
		return fmt.Errorf("latitude must be between -90 and 90")
	}
	if r.Longitude < -180 || r.Longitude > 180 {
		return fmt.Errorf("longitude must be between -180 and 180")
	}
	return nil
}

// Normalize trims the request strings
func (r *Request) Normalize() {
	r.City = strings.TrimSpace(r.City)
	r.Country = strings.TrimSpace(r.Country)
}

// IsValid validates snapshot data
func (s *Snapshot) IsValid() error {
	if strings.TrimSpace(s.Condition) == "" {
		return fmt.Errorf("condition cannot be empty")
	}
	if s.Temperature < -90 || s.Temperature > 60 {
		return fmt.Errorf("temperature out of range")
	}
	if s.Humidity < 0 || s.Humidity > 100 {
		return fmt.Errorf("humidity must be between 0 and 100")
	}
	if s.WindSpeed < 0 {
		return fmt.Errorf("wind speed cannot be negative")
	}
	return nil
}

// String returns a string representation of the snapshot
func (s *Snapshot) String() string {
	return fmt.Sprintf("%s, %s: %d°C, %s, %d%% humidity, %d km/h wind",
		s.City, s.Country, s.Temperature, s.Condition, s.Humidity, s.WindSpeed)
}

// Category groups conditions for image lookup
type Category string

const (
	CategorySunny  Category = "sunny"
	CategoryCloudy Category = "cloudy"
	CategoryRainy  Category = "rainy"
	CategorySnowy  Category = "snowy"
	CategoryFoggy  Category = "foggy"
)

// CategoryOf derives the category of a condition label by keyword
func CategoryOf(condition string) Category {
	c := strings.ToLower(condition)
	switch {
	case containsAny(c, "snow", "sleet"):
		return CategorySnowy
	case containsAny(c, "rain", "drizzle", "thunder", "storm", "shower"):
		return CategoryRainy
	case containsAny(c, "cloud", "overcast"):
		return CategoryCloudy
	case containsAny(c, "fog", "mist", "haze"):
		return CategoryFoggy
	default:
		return CategorySunny
	}
}

func containsAny(s string, keywords ...string) bool {
	for _, keyword := range keywords {
		if strings.Contains(s, keyword) {
			return true
		}
	}
	return false
}
