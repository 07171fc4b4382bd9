package weather

import (
	"context"
	"math"
	"time"

	"sunsip.app/internal/ports"
	"sunsip.app/pkg/errors"
)

type UseCase struct {
	provider ports.WeatherProvider
	config   ports.ConfigProvider
	logger   ports.Logger
	metrics  ports.MetricsCollector
	random   RandomSource
	now      func() time.Time
}

type UseCaseDependencies struct {
	// Provider may be nil when no weather source is configured
	Provider ports.WeatherProvider
	Config   ports.ConfigProvider
	Logger   ports.Logger
	Metrics  ports.MetricsCollector
	Random   RandomSource
	Now      func() time.Time
}

func NewUseCase(deps UseCaseDependencies) (*UseCase, error) {
	if deps.Config == nil {
		return nil, errors.NewValidationError("config is required")
	}
	if deps.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}
	if deps.Metrics == nil {
		return nil, errors.NewValidationError("metrics is required")
	}
	if deps.Random == nil {
		deps.Random = globalRandom{}
	}
	if deps.Now == nil {
		deps.Now = time.Now
	}

	return &UseCase{
		provider: deps.Provider,
		config:   deps.Config,
		logger:   deps.Logger,
		metrics:  deps.Metrics,
		random:   deps.Random,
		now:      deps.Now,
	}, nil
}

// GetWeather never fails: missing or failing sources produce a synthetic snapshot
func (uc *UseCase) GetWeather(ctx context.Context, request Request) Snapshot {
	request.Normalize()

	if err := request.IsValid(); err != nil {
		uc.logger.Warn("Invalid coordinates, using synthetic weather",
			ports.F("city", request.City),
			ports.F("error", err))
		return uc.synthesize(request)
	}

	if !uc.config.GetWeatherConfig().Enabled || uc.provider == nil {
		return uc.synthesize(request)
	}

	start := time.Now()
	data, err := uc.provider.GetCurrentWeather(ctx, request.Latitude, request.Longitude)
	if err != nil {
		uc.logger.Error("Weather lookup failed, using synthetic weather",
			ports.F("city", request.City),
			ports.F("error", err))
		uc.metrics.RecordExternalCall(ctx, uc.provider.GetProviderName(), ports.OutcomeFallback, time.Since(start))
		return uc.synthesize(request)
	}

	snapshot := uc.fromProvider(request, data)
	if err := snapshot.IsValid(); err != nil {
		uc.logger.Error("Weather provider returned invalid data, using synthetic weather",
			ports.F("city", request.City),
			ports.F("error", err))
		uc.metrics.RecordExternalCall(ctx, uc.provider.GetProviderName(), ports.OutcomeFallback, time.Since(start))
		return uc.synthesize(request)
	}

	uc.logger.Debug("Weather retrieved",
		ports.F("city", request.City),
		ports.F("condition", snapshot.Condition),
		ports.F("temperature", snapshot.Temperature))
	return snapshot
}

func (uc *UseCase) synthesize(request Request) Snapshot {
	return Synthesize(request, uc.random, uc.now())
}

func (uc *UseCase) fromProvider(request Request, data *ports.WeatherData) Snapshot {
	condition, icon := data.Condition, data.Icon
	if condition == "" {
		condition, icon = ConditionLabel(data.ConditionCode, data.IsDay)
	}

	localTime := data.LocalTime
	if localTime.IsZero() {
		localTime = uc.now()
	}

	return Snapshot{
		City:        request.City,
		Country:     request.Country,
		Latitude:    request.Latitude,
		Longitude:   request.Longitude,
		Temperature: int(math.Round(data.Temperature)),
		Condition:   condition,
		Icon:        icon,
		Humidity:    int(math.Round(data.Humidity)),
		WindSpeed:   int(math.Round(data.WindSpeed)),
		LocalTime:   localTime.Format(LocalTimeLayout),
		IsDay:       data.IsDay,
	}
}
