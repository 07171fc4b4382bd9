package external

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"sunsip.app/internal/ports"
	"sunsip.app/pkg/errors"
)

const (
	openMeteoHourlyFields = "temperature_2m,relative_humidity_2m,wind_speed_10m,weather_code,is_day"
	openMeteoHourLayout   = "2006-01-02T15:00"
)

// OpenMeteoProviderAdapter implements WeatherProvider port for Open-Meteo
type OpenMeteoProviderAdapter struct {
	apiKey  string
	baseURL string
	client  HTTPClient
	logger  ports.Logger
	now     func() time.Time
}

// OpenMeteoProviderParams holds parameters for creating the Open-Meteo provider
type OpenMeteoProviderParams struct {
	// APIKey is only sent when set (commercial endpoint)
	APIKey  string
	BaseURL string
	Logger  ports.Logger
	Client  HTTPClient
	Now     func() time.Time
}

// OpenMeteoResponse represents the hourly forecast response from Open-Meteo
type OpenMeteoResponse struct {
	UTCOffsetSeconds int `json:"utc_offset_seconds"`
	Hourly           struct {
		Time             []string  `json:"time"`
		Temperature      []float64 `json:"temperature_2m"`
		RelativeHumidity []float64 `json:"relative_humidity_2m"`
		WindSpeed        []float64 `json:"wind_speed_10m"`
		WeatherCode      []int     `json:"weather_code"`
		IsDay            []int     `json:"is_day"`
	} `json:"hourly"`
}

// NewOpenMeteoProviderAdapter creates a new Open-Meteo provider adapter
func NewOpenMeteoProviderAdapter(params OpenMeteoProviderParams) ports.WeatherProvider {
	baseURL := params.BaseURL
	if baseURL == "" {
		baseURL = "https://api.open-meteo.com/v1"
	}
	client := params.Client
	if client == nil {
		client = newHTTPClient(defaultHTTPTimeout)
	}
	now := params.Now
	if now == nil {
		now = time.Now
	}

	return &OpenMeteoProviderAdapter{
		apiKey:  params.APIKey,
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
		logger:  params.Logger,
		now:     now,
	}
}

// GetCurrentWeather retrieves the forecast hour matching the location's current local hour
func (p *OpenMeteoProviderAdapter) GetCurrentWeather(ctx context.Context, latitude, longitude float64) (*ports.WeatherData, error) {
	params := url.Values{}
	params.Set("latitude", strconv.FormatFloat(latitude, 'f', 4, 64))
	params.Set("longitude", strconv.FormatFloat(longitude, 'f', 4, 64))
	params.Set("hourly", openMeteoHourlyFields)
	params.Set("timezone", "auto")
	params.Set("forecast_days", "1")
	if p.apiKey != "" {
		params.Set("apikey", p.apiKey)
	}

	req, err := newJSONRequest(ctx, http.MethodGet, fmt.Sprintf("%s/forecast?%s", p.baseURL, params.Encode()), nil)
	if err != nil {
		return nil, err
	}

	var apiResp OpenMeteoResponse
	if err := doJSON(p.client, req, &apiResp, p.GetProviderName(), p.logger); err != nil {
		return nil, err
	}

	return apiResp.current(p.now())
}

// GetProviderName returns the name of this weather provider
func (p *OpenMeteoProviderAdapter) GetProviderName() string {
	return "open-meteo"
}

func (r *OpenMeteoResponse) current(now time.Time) (*ports.WeatherData, error) {
	h := r.Hourly
	n := len(h.Time)
	if n == 0 {
		return nil, errors.NewExternalAPIError("open-meteo returned no hourly data", nil)
	}
	if len(h.Temperature) != n || len(h.RelativeHumidity) != n || len(h.WindSpeed) != n ||
		len(h.WeatherCode) != n || len(h.IsDay) != n {
		return nil, errors.NewExternalAPIError("open-meteo returned inconsistent hourly arrays", nil)
	}

	zone := time.FixedZone("local", r.UTCOffsetSeconds)
	local := now.In(zone)
	hour := local.Format(openMeteoHourLayout)

	idx := -1
	for i, t := range h.Time {
		if t == hour {
			idx = i
			break
		}
	}
	if idx < 0 {
		idx = local.Hour()
		if idx >= n {
			idx = n - 1
		}
	}

	return &ports.WeatherData{
		Temperature:   h.Temperature[idx],
		Humidity:      h.RelativeHumidity[idx],
		WindSpeed:     h.WindSpeed[idx],
		ConditionCode: h.WeatherCode[idx],
		IsDay:         h.IsDay[idx] == 1,
		LocalTime:     local,
	}, nil
}
