package external

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
	"sunsip.app/internal/ports"
	"sunsip.app/pkg/errors"
)

// CityLookupProviderAdapter implements GeocodingProvider port for the API Ninjas city endpoint
type CityLookupProviderAdapter struct {
	apiKey  string
	baseURL string
	client  HTTPClient
	logger  ports.Logger
}

// CityLookupProviderParams holds parameters for creating the city lookup provider
type CityLookupProviderParams struct {
	APIKey  string
	BaseURL string
	Logger  ports.Logger
	Client  HTTPClient
}

type cityLookupResult struct {
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Country   string  `json:"country"`
}

// NewCityLookupProviderAdapter creates a new city lookup provider adapter
func NewCityLookupProviderAdapter(params CityLookupProviderParams) ports.GeocodingProvider {
	baseURL := params.BaseURL
	if baseURL == "" {
		baseURL = "https://api.api-ninjas.com/v1"
	}
	client := params.Client
	if client == nil {
		client = newHTTPClient(defaultHTTPTimeout)
	}

	return &CityLookupProviderAdapter{
		apiKey:  params.APIKey,
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
		logger:  params.Logger,
	}
}

// SearchCities retrieves cities whose name matches query
func (p *CityLookupProviderAdapter) SearchCities(ctx context.Context, query string, limit int) ([]ports.CityData, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, errors.NewValidationError("query cannot be empty")
	}

	params := url.Values{}
	params.Set("name", query)
	if limit > 0 {
		params.Set("limit", strconv.Itoa(limit))
	}

	req, err := newJSONRequest(ctx, http.MethodGet, fmt.Sprintf("%s/city?%s", p.baseURL, params.Encode()), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("X-Api-Key", p.apiKey)

	var results []cityLookupResult
	if err := doJSON(p.client, req, &results, p.GetProviderName(), p.logger); err != nil {
		return nil, err
	}

	cities := make([]ports.CityData, 0, len(results))
	for _, r := range results {
		code := strings.ToLower(strings.TrimSpace(r.Country))
		cities = append(cities, ports.CityData{
			Name:        r.Name,
			Country:     countryName(code),
			CountryCode: code,
			Latitude:    r.Latitude,
			Longitude:   r.Longitude,
		})
	}
	return cities, nil
}

// GetProviderName returns the name of this geocoding provider
func (p *CityLookupProviderAdapter) GetProviderName() string {
	return "api-ninjas"
}

// countryName resolves an ISO 3166 alpha-2 code to its English name, "" when unknown
func countryName(code string) string {
	if code == "" {
		return ""
	}
	region, err := language.ParseRegion(code)
	if err != nil {
		return ""
	}
	return display.English.Regions().Name(region)
}
