package external

import (
	"context"
	"net/http"
	"time"

	"sunsip.app/internal/ports"
	"sunsip.app/pkg/errors"
)

// callObserver logs and measures calls to one external provider
type callObserver struct {
	logger  ports.Logger
	metrics ports.MetricsCollector
}

func (o callObserver) started(provider, api string, fields ...ports.Field) {
	o.logger.Info(api+" request started", append([]ports.Field{
		ports.F("provider", provider),
		ports.F("event", "request"),
	}, fields...)...)
}

func (o callObserver) finished(ctx context.Context, provider, api string, start time.Time, err error, fields ...ports.Field) {
	duration := time.Since(start)
	base := []ports.Field{
		ports.F("provider", provider),
		ports.F("duration_ms", duration.Milliseconds()),
	}

	if err != nil {
		o.metrics.RecordExternalCall(ctx, provider, ports.OutcomeFailure, duration)
		failure := append(base, ports.F("event", "error"), ports.F("error", err.Error()))
		if isCredentialRejection(err) {
			o.logger.Debug(api+" request rejected credentials", failure...)
			return
		}
		o.logger.Warn(api+" request failed", failure...)
		return
	}

	o.metrics.RecordExternalCall(ctx, provider, ports.OutcomeSuccess, duration)
	o.logger.Info(api+" request completed", append(append(base, ports.F("event", "response")), fields...)...)
}

func isCredentialRejection(err error) bool {
	status := errors.StatusCodeOf(err)
	return status == http.StatusUnauthorized || status == http.StatusForbidden
}

// GeocodingProviderLoggingDecorator decorates geocoding providers with structured logging
type GeocodingProviderLoggingDecorator struct {
	provider ports.GeocodingProvider
	observer callObserver
}

// NewGeocodingProviderLoggingDecorator creates a new logging decorator for geocoding providers
func NewGeocodingProviderLoggingDecorator(provider ports.GeocodingProvider, logger ports.Logger, metrics ports.MetricsCollector) ports.GeocodingProvider {
	return &GeocodingProviderLoggingDecorator{
		provider: provider,
		observer: callObserver{logger: logger, metrics: metrics},
	}
}

// SearchCities wraps the provider call with structured logging
func (d *GeocodingProviderLoggingDecorator) SearchCities(ctx context.Context, query string, limit int) ([]ports.CityData, error) {
	name := d.provider.GetProviderName()
	d.observer.started(name, "Geocoding", ports.F("query", query))

	start := time.Now()
	cities, err := d.provider.SearchCities(ctx, query, limit)
	d.observer.finished(ctx, name, "Geocoding", start, err,
		ports.F("query", query),
		ports.F("results", len(cities)))
	return cities, err
}

// GetProviderName returns the name of the wrapped provider
func (d *GeocodingProviderLoggingDecorator) GetProviderName() string {
	return d.provider.GetProviderName()
}

// WeatherProviderLoggingDecorator decorates weather providers with structured logging
type WeatherProviderLoggingDecorator struct {
	provider ports.WeatherProvider
	observer callObserver
}

// NewWeatherProviderLoggingDecorator creates a new logging decorator for weather providers
func NewWeatherProviderLoggingDecorator(provider ports.WeatherProvider, logger ports.Logger, metrics ports.MetricsCollector) ports.WeatherProvider {
	return &WeatherProviderLoggingDecorator{
		provider: provider,
		observer: callObserver{logger: logger, metrics: metrics},
	}
}

// GetCurrentWeather wraps the provider call with structured logging
func (d *WeatherProviderLoggingDecorator) GetCurrentWeather(ctx context.Context, latitude, longitude float64) (*ports.WeatherData, error) {
	name := d.provider.GetProviderName()
	d.observer.started(name, "Weather API",
		ports.F("latitude", latitude),
		ports.F("longitude", longitude))

	start := time.Now()
	data, err := d.provider.GetCurrentWeather(ctx, latitude, longitude)
	if err != nil {
		d.observer.finished(ctx, name, "Weather API", start, err)
		return nil, err
	}

	d.observer.finished(ctx, name, "Weather API", start, nil,
		ports.F("temperature", data.Temperature),
		ports.F("humidity", data.Humidity),
		ports.F("condition_code", data.ConditionCode))
	return data, nil
}

// GetProviderName returns the name of the wrapped provider
func (d *WeatherProviderLoggingDecorator) GetProviderName() string {
	return d.provider.GetProviderName()
}

// ImageBackendLoggingDecorator decorates image backends with structured logging
type ImageBackendLoggingDecorator struct {
	backend  ports.ImageBackend
	observer callObserver
}

// NewImageBackendLoggingDecorator creates a new logging decorator for image backends
func NewImageBackendLoggingDecorator(backend ports.ImageBackend, logger ports.Logger, metrics ports.MetricsCollector) ports.ImageBackend {
	return &ImageBackendLoggingDecorator{
		backend:  backend,
		observer: callObserver{logger: logger, metrics: metrics},
	}
}

// GenerateImage wraps the backend call with structured logging
func (d *ImageBackendLoggingDecorator) GenerateImage(ctx context.Context, prompt string) (string, error) {
	name := d.backend.GetProviderName()
	d.observer.started(name, "Image generation", ports.F("prompt_length", len(prompt)))

	start := time.Now()
	url, err := d.backend.GenerateImage(ctx, prompt)
	d.observer.finished(ctx, name, "Image generation", start, err, ports.F("url", url))
	return url, err
}

// GetProviderName returns the name of the wrapped backend
func (d *ImageBackendLoggingDecorator) GetProviderName() string {
	return d.backend.GetProviderName()
}

// LandmarkSuggesterLoggingDecorator decorates landmark suggesters with structured logging
type LandmarkSuggesterLoggingDecorator struct {
	suggester ports.LandmarkSuggester
	name      string
	observer  callObserver
}

// NewLandmarkSuggesterLoggingDecorator creates a new logging decorator for landmark suggesters
func NewLandmarkSuggesterLoggingDecorator(suggester ports.LandmarkSuggester, name string, logger ports.Logger, metrics ports.MetricsCollector) ports.LandmarkSuggester {
	return &LandmarkSuggesterLoggingDecorator{
		suggester: suggester,
		name:      name,
		observer:  callObserver{logger: logger, metrics: metrics},
	}
}

// SuggestLandmark wraps the suggester call with structured logging
func (d *LandmarkSuggesterLoggingDecorator) SuggestLandmark(ctx context.Context, city, country string) (string, error) {
	d.observer.started(d.name, "Landmark", ports.F("city", city))

	start := time.Now()
	landmark, err := d.suggester.SuggestLandmark(ctx, city, country)
	d.observer.finished(ctx, d.name, "Landmark", start, err,
		ports.F("city", city),
		ports.F("landmark", landmark))
	return landmark, err
}
