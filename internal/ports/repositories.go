package ports

import (
	"context"
	"time"
)

// CombinationData represents a saved city/cocktail combination for persistence
type CombinationData struct {
	ID                  uint
	UserID              string
	CityName            string
	CountryName         string
	CityImageURL        string
	WeatherSummary      string
	CocktailName        string
	CocktailImageURL    string
	CocktailIngredients []string
	CocktailRecipe      []string
	Rating              *int
	Notes               *string
	AccessCount         int
	LastAccessed        *time.Time
	CreatedAt           time.Time
}

// CombinationUpdate carries the mutable fields of a combination
type CombinationUpdate struct {
	Rating *int
	Notes  *string
}

// CombinationRepository defines the contract for combination persistence scoped by user
type CombinationRepository interface {
	Save(ctx context.Context, combination *CombinationData) error
	FindByID(ctx context.Context, userID string, id uint) (*CombinationData, error)
	ListRecent(ctx context.Context, userID string, limit int) ([]*CombinationData, error)
	Update(ctx context.Context, userID string, id uint, update CombinationUpdate) (*CombinationData, error)
	IncrementAccess(ctx context.Context, userID string, id uint, accessedAt time.Time) (*CombinationData, error)
	Delete(ctx context.Context, userID string, id uint) error
}

// UserData represents an account for persistence
type UserData struct {
	ID           string
	Email        string
	PasswordHash string
	IsAdmin      bool
	CreatedAt    time.Time
}

// SessionData represents an authenticated session for persistence
type SessionData struct {
	Token     string
	UserID    string
	ExpiresAt time.Time
	CreatedAt time.Time
}

// UserRepository defines the contract for account persistence
type UserRepository interface {
	Save(ctx context.Context, user *UserData) error
	FindByEmail(ctx context.Context, email string) (*UserData, error)
	FindByID(ctx context.Context, id string) (*UserData, error)
}

// SessionRepository defines the contract for session persistence
type SessionRepository interface {
	Save(ctx context.Context, session *SessionData) error
	FindByToken(ctx context.Context, token string) (*SessionData, error)
	Delete(ctx context.Context, token string) error
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

// PasswordHasher defines the contract for password hashing
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}
