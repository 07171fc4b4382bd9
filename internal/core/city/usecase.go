package city

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"sunsip.app/internal/ports"
	"sunsip.app/pkg/errors"
)

const cacheName = "cities"

type UseCase struct {
	provider ports.GeocodingProvider
	cache    ports.CacheProvider
	config   ports.ConfigProvider
	logger   ports.Logger
	metrics  ports.MetricsCollector
}

type UseCaseDependencies struct {
	// Provider may be nil when no geocoding credential is configured
	Provider ports.GeocodingProvider
	Cache    ports.CacheProvider
	Config   ports.ConfigProvider
	Logger   ports.Logger
	Metrics  ports.MetricsCollector
}

func NewUseCase(deps UseCaseDependencies) (*UseCase, error) {
	if deps.Cache == nil {
		return nil, errors.NewValidationError("cache is required")
	}
	if deps.Config == nil {
		return nil, errors.NewValidationError("config is required")
	}
	if deps.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}
	if deps.Metrics == nil {
		return nil, errors.NewValidationError("metrics is required")
	}

	return &UseCase{
		provider: deps.Provider,
		cache:    deps.Cache,
		config:   deps.Config,
		logger:   deps.Logger,
		metrics:  deps.Metrics,
	}, nil
}

// SearchCities never fails and always returns at least one option
func (uc *UseCase) SearchCities(ctx context.Context, query string) []CityOption {
	query = strings.TrimSpace(query)
	if query == "" {
		return EmptyQueryResult()
	}

	cfg := uc.config.GetGeocodingConfig()
	if !cfg.Enabled || uc.provider == nil {
		return LookupKnownCities(query, cfg.ResultLimit)
	}

	cacheKey := fmt.Sprintf("%s:%s", cacheName, strings.ToLower(query))
	if cfg.EnableCache {
		if cached, ok := uc.fromCache(ctx, cacheKey); ok {
			return cached
		}
	}

	start := time.Now()
	results, err := uc.provider.SearchCities(ctx, query, cfg.ResultLimit)
	if err != nil {
		uc.logFailure(query, err)
		uc.metrics.RecordExternalCall(ctx, uc.provider.GetProviderName(), ports.OutcomeFallback, time.Since(start))
		return LookupKnownCities(query, cfg.ResultLimit)
	}

	options := toOptions(results, cfg.ResultLimit)
	if len(options) == 0 {
		uc.logger.Debug("Geocoding returned no cities, using built-in table", ports.F("query", query))
		return LookupKnownCities(query, cfg.ResultLimit)
	}

	if cfg.EnableCache {
		uc.toCache(ctx, cacheKey, options, cfg.CacheTTL)
	}
	return options
}

func (uc *UseCase) logFailure(query string, err error) {
	status := errors.StatusCodeOf(err)
	if status == http.StatusUnauthorized || status == http.StatusForbidden {
		uc.logger.Debug("Geocoding credential rejected, using built-in table",
			ports.F("query", query),
			ports.F("status", status))
		return
	}
	uc.logger.Error("Geocoding failed, using built-in table",
		ports.F("query", query),
		ports.F("error", err))
}

func (uc *UseCase) fromCache(ctx context.Context, key string) ([]CityOption, bool) {
	data, err := uc.cache.Get(ctx, key)
	if err != nil || data == nil {
		uc.metrics.RecordCacheMiss(ctx, cacheName)
		return nil, false
	}

	var options []CityOption
	if err := json.Unmarshal(data, &options); err != nil || len(options) == 0 {
		uc.logger.Warn("Discarding unreadable cached cities", ports.F("key", key))
		uc.metrics.RecordCacheMiss(ctx, cacheName)
		return nil, false
	}

	uc.metrics.RecordCacheHit(ctx, cacheName)
	return options, true
}

func (uc *UseCase) toCache(ctx context.Context, key string, options []CityOption, ttl time.Duration) {
	data, err := json.Marshal(options)
	if err != nil {
		return
	}
	if err := uc.cache.Set(ctx, key, data, ttl); err != nil {
		uc.logger.Warn("Failed to cache cities",
			ports.F("key", key),
			ports.F("error", err))
	}
}

func toOptions(results []ports.CityData, limit int) []CityOption {
	options := make([]CityOption, 0, len(results))
	for _, r := range results {
		option := CityOption{
			City:        r.Name,
			Country:     r.Country,
			CountryCode: r.CountryCode,
			Latitude:    r.Latitude,
			Longitude:   r.Longitude,
		}
		option.Normalize()
		if option.City == "" {
			continue
		}
		if option.Country == "" {
			option.Country = UnknownCountry
		}
		if option.CountryCode == "" {
			option.CountryCode = UnknownCountryCode
		}
		options = append(options, option)
		if limit > 0 && len(options) == limit {
			break
		}
	}
	return options
}
