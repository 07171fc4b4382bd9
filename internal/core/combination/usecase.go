package combination

import (
	"context"
	"fmt"
	"strings"
	"time"

	"sunsip.app/internal/ports"
	"sunsip.app/pkg/errors"
)

type UseCase struct {
	repo   ports.CombinationRepository
	logger ports.Logger
	now    func() time.Time
}

type UseCaseDependencies struct {
	Repository ports.CombinationRepository
	Logger     ports.Logger
	Now        func() time.Time
}

func NewUseCase(deps UseCaseDependencies) (*UseCase, error) {
	if deps.Repository == nil {
		return nil, errors.NewValidationError("combination repository is required")
	}
	if deps.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}
	if deps.Now == nil {
		deps.Now = time.Now
	}

	return &UseCase{
		repo:   deps.Repository,
		logger: deps.Logger,
		now:    deps.Now,
	}, nil
}

// Save stores a new combination; the repository assigns its id
func (uc *UseCase) Save(ctx context.Context, userID string, request SaveRequest) (*Combination, error) {
	if err := requireUser(userID); err != nil {
		return nil, err
	}
	if err := request.IsValid(); err != nil {
		return nil, errors.NewValidationError("invalid combination: " + err.Error())
	}

	summary, err := WeatherSummaryOf(request.Weather)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	data := &ports.CombinationData{
		UserID:              userID,
		CityName:            request.Weather.City,
		CountryName:         request.Weather.Country,
		CityImageURL:        request.CityImageURL,
		WeatherSummary:      summary,
		CocktailName:        request.Cocktail.Name,
		CocktailImageURL:    request.Cocktail.ImageURL,
		CocktailIngredients: request.Cocktail.Ingredients,
		CocktailRecipe:      request.Cocktail.Recipe,
		CreatedAt:           uc.now(),
	}
	if err := uc.repo.Save(ctx, data); err != nil {
		uc.logger.Error("Failed to save combination",
			ports.F("user_id", userID),
			ports.F("error", err))
		return nil, fmt.Errorf("save combination: %w", err)
	}

	uc.logger.Info("Combination saved",
		ports.F("user_id", userID),
		ports.F("id", data.ID))
	return fromData(data), nil
}

// List returns the most recent combinations of a user, newest first
func (uc *UseCase) List(ctx context.Context, userID string) ([]*Combination, error) {
	if err := requireUser(userID); err != nil {
		return nil, err
	}

	items, err := uc.repo.ListRecent(ctx, userID, ListLimit)
	if err != nil {
		uc.logger.Error("Failed to list combinations",
			ports.F("user_id", userID),
			ports.F("error", err))
		return nil, fmt.Errorf("list combinations: %w", err)
	}

	out := make([]*Combination, 0, len(items))
	for _, item := range items {
		out = append(out, fromData(item))
	}
	return out, nil
}

// Get returns one combination owned by the user
func (uc *UseCase) Get(ctx context.Context, userID string, id uint) (*Combination, error) {
	if err := requireUser(userID); err != nil {
		return nil, err
	}
	if err := requireID(id); err != nil {
		return nil, err
	}

	data, err := uc.repo.FindByID(ctx, userID, id)
	if err != nil {
		return nil, fmt.Errorf("get combination: %w", err)
	}
	return fromData(data), nil
}

// Delete removes a combination owned by the user
func (uc *UseCase) Delete(ctx context.Context, userID string, id uint) error {
	if err := requireUser(userID); err != nil {
		return err
	}
	if err := requireID(id); err != nil {
		return err
	}

	if err := uc.repo.Delete(ctx, userID, id); err != nil {
		uc.logger.Error("Failed to delete combination",
			ports.F("user_id", userID),
			ports.F("id", id),
			ports.F("error", err))
		return fmt.Errorf("delete combination: %w", err)
	}

	uc.logger.Info("Combination deleted",
		ports.F("user_id", userID),
		ports.F("id", id))
	return nil
}

// Rate sets the rating and/or notes of a combination
func (uc *UseCase) Rate(ctx context.Context, userID string, id uint, request RateRequest) (*Combination, error) {
	if err := requireUser(userID); err != nil {
		return nil, err
	}
	if err := requireID(id); err != nil {
		return nil, err
	}
	request.Normalize()
	if err := request.IsValid(); err != nil {
		return nil, errors.NewValidationError("invalid rating: " + err.Error())
	}

	data, err := uc.repo.Update(ctx, userID, id, ports.CombinationUpdate{Rating: request.Rating, Notes: request.Notes})
	if err != nil {
		uc.logger.Error("Failed to rate combination",
			ports.F("user_id", userID),
			ports.F("id", id),
			ports.F("error", err))
		return nil, fmt.Errorf("rate combination: %w", err)
	}
	return fromData(data), nil
}

// RecordAccess bumps the access counter and last-accessed time
func (uc *UseCase) RecordAccess(ctx context.Context, userID string, id uint) (*Combination, error) {
	if err := requireUser(userID); err != nil {
		return nil, err
	}
	if err := requireID(id); err != nil {
		return nil, err
	}

	data, err := uc.repo.IncrementAccess(ctx, userID, id, uc.now())
	if err != nil {
		uc.logger.Error("Failed to record combination access",
			ports.F("user_id", userID),
			ports.F("id", id),
			ports.F("error", err))
		return nil, fmt.Errorf("record combination access: %w", err)
	}
	return fromData(data), nil
}

func requireUser(userID string) error {
	if strings.TrimSpace(userID) == "" {
		return errors.NewUnauthorizedError("sign in to manage saved combinations")
	}
	return nil
}

func requireID(id uint) error {
	if id == 0 {
		return errors.NewValidationError("combination id is required")
	}
	return nil
}

func fromData(data *ports.CombinationData) *Combination {
	return &Combination{
		ID:                  data.ID,
		UserID:              data.UserID,
		CityName:            data.CityName,
		CountryName:         data.CountryName,
		CityImageURL:        data.CityImageURL,
		WeatherSummary:      data.WeatherSummary,
		CocktailName:        data.CocktailName,
		CocktailImageURL:    data.CocktailImageURL,
		CocktailIngredients: data.CocktailIngredients,
		CocktailRecipe:      data.CocktailRecipe,
		Rating:              data.Rating,
		Notes:               data.Notes,
		AccessCount:         data.AccessCount,
		LastAccessed:        data.LastAccessed,
		CreatedAt:           data.CreatedAt,
	}
}
