package recommendation

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
	"sunsip.app/internal/core/city"
	"sunsip.app/internal/core/cocktail"
	"sunsip.app/internal/core/imagery"
	"sunsip.app/internal/core/session"
	"sunsip.app/internal/core/weather"
	"sunsip.app/internal/ports"
	"sunsip.app/pkg/errors"
)

type WeatherLookup interface {
	GetWeather(ctx context.Context, request weather.Request) weather.Snapshot
}

type ImageResolver interface {
	ResolveCityImage(ctx context.Context, request imagery.Request) string
}

type CocktailSelector interface {
	SelectCocktail(ctx context.Context, request cocktail.Request) cocktail.Cocktail
}

type SessionStore interface {
	Get(key string) *session.Container
}

// Outcome is the full result of selecting a city
type Outcome struct {
	City      city.CityOption   `json:"city"`
	Weather   weather.Snapshot  `json:"weather"`
	Cocktail  cocktail.Cocktail `json:"cocktail"`
	CityImage string            `json:"cityImage"`
	// Current is false when a newer selection in the same session superseded this one
	Current bool `json:"current"`
}

type UseCase struct {
	weather   WeatherLookup
	images    ImageResolver
	cocktails CocktailSelector
	sessions  SessionStore
	logger    ports.Logger
}

type UseCaseDependencies struct {
	Weather   WeatherLookup
	Images    ImageResolver
	Cocktails CocktailSelector
	Sessions  SessionStore
	Logger    ports.Logger
}

func NewUseCase(deps UseCaseDependencies) (*UseCase, error) {
	if deps.Weather == nil {
		return nil, errors.NewValidationError("weather lookup is required")
	}
	if deps.Images == nil {
		return nil, errors.NewValidationError("image resolver is required")
	}
	if deps.Cocktails == nil {
		return nil, errors.NewValidationError("cocktail selector is required")
	}
	if deps.Sessions == nil {
		return nil, errors.NewValidationError("session store is required")
	}
	if deps.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}

	return &UseCase{
		weather:   deps.Weather,
		images:    deps.Images,
		cocktails: deps.Cocktails,
		sessions:  deps.Sessions,
		logger:    deps.Logger,
	}, nil
}

// SelectCity looks up the weather for option, then resolves the city image and picks a
// cocktail concurrently. Weather stays visible in the session even when the second stage fails.
func (uc *UseCase) SelectCity(ctx context.Context, sessionKey string, option city.CityOption) (*Outcome, error) {
	option.Normalize()
	if option.City == "" {
		return nil, errors.NewValidationError("city is required")
	}

	state := uc.sessions.Get(sessionKey)
	token := state.BeginSelection(option)

	snapshot := uc.weather.GetWeather(ctx, weather.Request{
		Latitude:  option.Latitude,
		Longitude: option.Longitude,
		City:      option.City,
		Country:   option.Country,
	})
	state.SetWeather(token, snapshot)

	var result session.Result
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		result.CityImage = uc.images.ResolveCityImage(gctx, imagery.Request{
			City:      option.City,
			Country:   option.Country,
			Condition: snapshot.Condition,
			IsDay:     snapshot.IsDay,
		})
		return gctx.Err()
	})
	g.Go(func() error {
		result.Cocktail = uc.cocktails.SelectCocktail(gctx, cocktail.Request{
			CountryCode: option.CountryCode,
			Condition:   snapshot.Condition,
			Temperature: float64(snapshot.Temperature),
		})
		return gctx.Err()
	})

	if err := g.Wait(); err != nil {
		uc.logger.Error("City selection failed after weather lookup",
			ports.F("city", option.City),
			ports.F("error", err))
		state.FailSelection(token, err)
		return nil, fmt.Errorf("select city %s: %w", option.City, err)
	}

	current := state.CompleteSelection(token, result)
	if !current {
		uc.logger.Debug("Selection superseded by a newer one",
			ports.F("city", option.City),
			ports.F("token", uint64(token)))
	}

	return &Outcome{
		City:      option,
		Weather:   snapshot,
		Cocktail:  result.Cocktail,
		CityImage: result.CityImage,
		Current:   current,
	}, nil
}
