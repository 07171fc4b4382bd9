package database

import (
	"context"
	stderrors "errors"
	"time"

	"gorm.io/gorm"
	"sunsip.app/internal/ports"
	"sunsip.app/pkg/errors"
)

// CombinationModel represents the database model for saved combinations
type CombinationModel struct {
	ID                  uint     `gorm:"primaryKey"`
	UserID              string   `gorm:"index:idx_combinations_user_created,priority:1;not null"`
	CityName            string   `gorm:"not null"`
	CountryName         string   `gorm:"not null"`
	CityImageURL        string   `gorm:"not null"`
	WeatherSummary      string   `gorm:"not null"`
	CocktailName        string   `gorm:"not null"`
	CocktailImageURL    string   `gorm:"not null"`
	CocktailIngredients []string `gorm:"serializer:json;not null"`
	CocktailRecipe      []string `gorm:"serializer:json;not null"`
	Rating              *int
	Notes               *string
	AccessCount         int `gorm:"not null;default:0"`
	LastAccessed        *time.Time
	CreatedAt           time.Time `gorm:"index:idx_combinations_user_created,priority:2"`
	UpdatedAt           time.Time
}

func (CombinationModel) TableName() string {
	return "combinations"
}

// CombinationRepositoryAdapter implements the CombinationRepository port using GORM
type CombinationRepositoryAdapter struct {
	db *gorm.DB
}

// NewCombinationRepositoryAdapter creates a new combination repository adapter
func NewCombinationRepositoryAdapter(db *gorm.DB) ports.CombinationRepository {
	return &CombinationRepositoryAdapter{db: db}
}

// Save inserts a new combination and writes the assigned id back
func (r *CombinationRepositoryAdapter) Save(ctx context.Context, combination *ports.CombinationData) error {
	if combination == nil {
		return errors.NewValidationError("combination cannot be nil")
	}
	if combination.UserID == "" {
		return errors.NewValidationError("combination user cannot be empty")
	}
	if combination.ID != 0 {
		return errors.NewValidationError("combination is already saved")
	}

	model := r.dataToModel(combination)
	if result := r.db.WithContext(ctx).Create(model); result.Error != nil {
		return errors.NewDatabaseError("failed to save combination", result.Error)
	}

	combination.ID = model.ID
	combination.CreatedAt = model.CreatedAt
	return nil
}

// FindByID retrieves a combination owned by userID
func (r *CombinationRepositoryAdapter) FindByID(ctx context.Context, userID string, id uint) (*ports.CombinationData, error) {
	model, err := r.find(r.db.WithContext(ctx), userID, id)
	if err != nil {
		return nil, err
	}
	return r.modelToData(model), nil
}

// ListRecent returns up to limit combinations of userID, newest first
func (r *CombinationRepositoryAdapter) ListRecent(ctx context.Context, userID string, limit int) ([]*ports.CombinationData, error) {
	if userID == "" {
		return nil, errors.NewValidationError("user cannot be empty")
	}
	if limit <= 0 {
		return nil, errors.NewValidationError("limit must be positive")
	}

	var models []CombinationModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Order("id DESC").
		Limit(limit).
		Find(&models)
	if result.Error != nil {
		return nil, errors.NewDatabaseError("failed to list combinations", result.Error)
	}

	combinations := make([]*ports.CombinationData, len(models))
	for i := range models {
		combinations[i] = r.modelToData(&models[i])
	}
	return combinations, nil
}

// Update applies the non-nil fields of update
func (r *CombinationRepositoryAdapter) Update(ctx context.Context, userID string, id uint, update ports.CombinationUpdate) (*ports.CombinationData, error) {
	changes := map[string]interface{}{}
	if update.Rating != nil {
		changes["rating"] = *update.Rating
	}
	if update.Notes != nil {
		changes["notes"] = *update.Notes
	}

	return r.modify(ctx, userID, id, changes, "failed to update combination")
}

// IncrementAccess bumps the access counter and records accessedAt
func (r *CombinationRepositoryAdapter) IncrementAccess(ctx context.Context, userID string, id uint, accessedAt time.Time) (*ports.CombinationData, error) {
	changes := map[string]interface{}{
		"access_count":  gorm.Expr("access_count + ?", 1),
		"last_accessed": accessedAt,
	}

	return r.modify(ctx, userID, id, changes, "failed to record combination access")
}

// Delete removes a combination owned by userID
func (r *CombinationRepositoryAdapter) Delete(ctx context.Context, userID string, id uint) error {
	if userID == "" {
		return errors.NewValidationError("user cannot be empty")
	}
	if id == 0 {
		return errors.NewValidationError("combination ID cannot be zero for delete")
	}

	result := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).Delete(&CombinationModel{})
	if result.Error != nil {
		return errors.NewDatabaseError("failed to delete combination", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("combination not found")
	}

	return nil
}

func (r *CombinationRepositoryAdapter) modify(ctx context.Context, userID string, id uint, changes map[string]interface{}, failure string) (*ports.CombinationData, error) {
	var updated *CombinationModel
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		model, err := r.find(tx, userID, id)
		if err != nil {
			return err
		}
		if len(changes) > 0 {
			if err := tx.Model(model).Updates(changes).Error; err != nil {
				return errors.NewDatabaseError(failure, err)
			}
			if model, err = r.find(tx, userID, id); err != nil {
				return err
			}
		}
		updated = model
		return nil
	})
	if err != nil {
		return nil, err
	}
	return r.modelToData(updated), nil
}

func (r *CombinationRepositoryAdapter) find(db *gorm.DB, userID string, id uint) (*CombinationModel, error) {
	if userID == "" {
		return nil, errors.NewValidationError("user cannot be empty")
	}
	if id == 0 {
		return nil, errors.NewValidationError("combination ID cannot be zero")
	}

	var model CombinationModel
	result := db.Where("id = ? AND user_id = ?", id, userID).First(&model)
	if result.Error != nil {
		if stderrors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errors.NewNotFoundError("combination not found")
		}
		return nil, errors.NewDatabaseError("failed to find combination", result.Error)
	}
	return &model, nil
}

// dataToModel converts port data to database model
func (r *CombinationRepositoryAdapter) dataToModel(data *ports.CombinationData) *CombinationModel {
	return &CombinationModel{
		ID:                  data.ID,
		UserID:              data.UserID,
		CityName:            data.CityName,
		CountryName:         data.CountryName,
		CityImageURL:        data.CityImageURL,
		WeatherSummary:      data.WeatherSummary,
		CocktailName:        data.CocktailName,
		CocktailImageURL:    data.CocktailImageURL,
		CocktailIngredients: nonNil(data.CocktailIngredients),
		CocktailRecipe:      nonNil(data.CocktailRecipe),
		Rating:              data.Rating,
		Notes:               data.Notes,
		AccessCount:         data.AccessCount,
		LastAccessed:        data.LastAccessed,
		CreatedAt:           data.CreatedAt,
	}
}

// modelToData converts database model to port data
func (r *CombinationRepositoryAdapter) modelToData(model *CombinationModel) *ports.CombinationData {
	return &ports.CombinationData{
		ID:                  model.ID,
		UserID:              model.UserID,
		CityName:            model.CityName,
		CountryName:         model.CountryName,
		CityImageURL:        model.CityImageURL,
		WeatherSummary:      model.WeatherSummary,
		CocktailName:        model.CocktailName,
		CocktailImageURL:    model.CocktailImageURL,
		CocktailIngredients: model.CocktailIngredients,
		CocktailRecipe:      model.CocktailRecipe,
		Rating:              model.Rating,
		Notes:               model.Notes,
		AccessCount:         model.AccessCount,
		LastAccessed:        model.LastAccessed,
		CreatedAt:           model.CreatedAt,
	}
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
