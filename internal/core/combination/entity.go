package combination

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"sunsip.app/internal/core/cocktail"
	"sunsip.app/internal/core/weather"
	"sunsip.app/pkg/validation"
)

// ListLimit caps how many combinations List returns
const ListLimit = 10

// Combination is a saved pairing of a city's weather with a cocktail
type Combination struct {
	ID                  uint       `json:"id"`
	UserID              string     `json:"userId"`
	CityName            string     `json:"cityName"`
	CountryName         string     `json:"countryName"`
	CityImageURL        string     `json:"cityImageUrl"`
	WeatherSummary      string     `json:"weatherSummary"`
	CocktailName        string     `json:"cocktailName"`
	CocktailImageURL    string     `json:"cocktailImageUrl"`
	CocktailIngredients []string   `json:"cocktailIngredients"`
	CocktailRecipe      []string   `json:"cocktailRecipe"`
	Rating              *int       `json:"rating,omitempty"`
	Notes               *string    `json:"notes,omitempty"`
	AccessCount         int        `json:"accessCount"`
	LastAccessed        *time.Time `json:"lastAccessed,omitempty"`
	CreatedAt           time.Time  `json:"createdAt"`
}

// SaveRequest carries what the user chose to keep
type SaveRequest struct {
	CityImageURL string
	Weather      weather.Snapshot
	Cocktail     cocktail.Cocktail
}

// IsValid validates a save request
func (r *SaveRequest) IsValid() error {
	if strings.TrimSpace(r.Weather.City) == "" {
		return fmt.Errorf("city cannot be empty")
	}
	if strings.TrimSpace(r.Cocktail.Name) == "" {
		return fmt.Errorf("cocktail cannot be empty")
	}
	return nil
}

// RateRequest updates the rating and/or notes of a combination
type RateRequest struct {
	Rating *int
	Notes  *string
}

// IsValid validates a rate request
func (r *RateRequest) IsValid() error {
	if r.Rating == nil && r.Notes == nil {
		return fmt.Errorf("rating or notes must be provided")
	}
	if r.Rating != nil && !validation.IsValidRating(*r.Rating) {
		return fmt.Errorf("rating must be between 1 and 5")
	}
	return nil
}

// Normalize trims notes
func (r *RateRequest) Normalize() {
	if r.Notes != nil {
		notes := strings.TrimSpace(*r.Notes)
		r.Notes = &notes
	}
}

// WeatherSummaryOf serializes a snapshot for storage
func WeatherSummaryOf(snapshot weather.Snapshot) (string, error) {
	data, err := json.Marshal(snapshot)
	if err != nil {
		return "", fmt.Errorf("encode weather summary: %w", err)
	}
	return string(data), nil
}

// Clone copies the combination without sharing slices or pointers
func (c Combination) Clone() Combination {
	c.CocktailIngredients = append([]string(nil), c.CocktailIngredients...)
	c.CocktailRecipe = append([]string(nil), c.CocktailRecipe...)
	if c.Rating != nil {
		rating := *c.Rating
		c.Rating = &rating
	}
	if c.Notes != nil {
		notes := *c.Notes
		c.Notes = &notes
	}
	if c.LastAccessed != nil {
		accessed := *c.LastAccessed
		c.LastAccessed = &accessed
	}
	return c
}
