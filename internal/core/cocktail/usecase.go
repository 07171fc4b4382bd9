package cocktail

import (
	"context"

	"sunsip.app/internal/ports"
	"sunsip.app/pkg/errors"
)

type UseCase struct {
	selector *Selector
	logger   ports.Logger
	metrics  ports.MetricsCollector
}

type UseCaseDependencies struct {
	Random  RandomSource
	Logger  ports.Logger
	Metrics ports.MetricsCollector
}

func NewUseCase(deps UseCaseDependencies) (*UseCase, error) {
	if deps.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}
	if deps.Metrics == nil {
		return nil, errors.NewValidationError("metrics is required")
	}

	return &UseCase{
		selector: NewSelector(deps.Random),
		logger:   deps.Logger,
		metrics:  deps.Metrics,
	}, nil
}

// SelectCocktail recommends a cocktail for the weather in a country
func (uc *UseCase) SelectCocktail(ctx context.Context, request Request) Cocktail {
	request.Normalize()

	selection := uc.selector.Select(request.CountryCode, request.Condition, request.Temperature)
	uc.metrics.RecordRecommendation(ctx, selection.Mood.Tag)
	uc.logger.Debug("Cocktail selected",
		ports.F("country_code", request.CountryCode),
		ports.F("condition", request.Condition),
		ports.F("mood", selection.Mood.Tag),
		ports.F("tier", string(selection.Tier)),
		ports.F("cocktail", selection.Cocktail.Name))

	return selection.Cocktail
}

// Catalog lists every cocktail the selector can return
func (uc *UseCase) Catalog() []Cocktail {
	return Catalog()
}
