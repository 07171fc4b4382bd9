package imagery

import (
	"context"
	"fmt"
	"strings"
	"time"

	"sunsip.app/internal/ports"
	"sunsip.app/pkg/errors"
)

const landmarkCacheName = "landmarks"

type UseCase struct {
	backends  []ports.ImageBackend
	landmarks ports.LandmarkSuggester
	cache     ports.CacheProvider
	config    ports.ConfigProvider
	logger    ports.Logger
	metrics   ports.MetricsCollector
}

type UseCaseDependencies struct {
	// Backends are tried in order; empty means stock photos only
	Backends []ports.ImageBackend
	// Landmarks may be nil when no suggestion service is configured
	Landmarks ports.LandmarkSuggester
	Cache     ports.CacheProvider
	Config    ports.ConfigProvider
	Logger    ports.Logger
	Metrics   ports.MetricsCollector
	Sleep     SleepFunc
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

	uc := &UseCase{
		backends: deps.Backends,
		cache:    deps.Cache,
		config:   deps.Config,
		logger:   deps.Logger,
		metrics:  deps.Metrics,
	}
	if deps.Landmarks != nil {
		cfg := deps.Config.GetLandmarkConfig()
		uc.landmarks = NewRetryingSuggester(deps.Landmarks, cfg.MaxRetries, cfg.BaseDelay, deps.Sleep, deps.Logger)
	}
	return uc, nil
}

// ResolveCityImage never fails: when generation is unavailable a stock photo is returned
func (uc *UseCase) ResolveCityImage(ctx context.Context, request Request) string {
	request.Normalize()

	if !uc.config.GetImageryConfig().Enabled || len(uc.backends) == 0 {
		return FallbackImage(request.Condition, request.IsDay)
	}

	prompt := BuildPrompt(request, uc.landmark(ctx, request.City, request.Country))

	for _, backend := range uc.backends {
		start := time.Now()
		url, err := backend.GenerateImage(ctx, prompt)
		if err == nil && strings.TrimSpace(url) != "" {
			uc.logger.Debug("City image generated",
				ports.F("city", request.City),
				ports.F("backend", backend.GetProviderName()))
			return url
		}
		if err == nil {
			err = fmt.Errorf("empty image url")
		}
		uc.logger.Warn("Image backend failed, trying next",
			ports.F("city", request.City),
			ports.F("backend", backend.GetProviderName()),
			ports.F("error", err))
		uc.metrics.RecordExternalCall(ctx, backend.GetProviderName(), ports.OutcomeFallback, time.Since(start))
	}

	uc.logger.Error("All image backends failed, using stock photo",
		ports.F("city", request.City),
		ports.F("backends", len(uc.backends)))
	return FallbackImage(request.Condition, request.IsDay)
}

// landmark returns "" whenever no suggestion could be obtained
func (uc *UseCase) landmark(ctx context.Context, city, country string) string {
	cfg := uc.config.GetLandmarkConfig()
	if uc.landmarks == nil || !cfg.Enabled || city == "" {
		return ""
	}

	key := fmt.Sprintf("%s:%s:%s", landmarkCacheName, strings.ToLower(city), strings.ToLower(country))
	if cached, err := uc.cache.Get(ctx, key); err == nil && len(cached) > 0 {
		uc.metrics.RecordCacheHit(ctx, landmarkCacheName)
		return string(cached)
	}
	uc.metrics.RecordCacheMiss(ctx, landmarkCacheName)

	landmark, err := uc.landmarks.SuggestLandmark(ctx, city, country)
	if err != nil {
		uc.logger.Warn("Landmark suggestion failed, continuing without it",
			ports.F("city", city),
			ports.F("error", err))
		return ""
	}
	if landmark == "" {
		return ""
	}

	if err := uc.cache.Set(ctx, key, []byte(landmark), cfg.CacheTTL); err != nil {
		uc.logger.Warn("Failed to cache landmark",
			ports.F("key", key),
			ports.F("error", err))
	}
	return landmark
}
