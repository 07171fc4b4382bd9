package database

import (
	"context"
	stderrors "errors"
	"strings"
	"time"

	"gorm.io/gorm"
	"sunsip.app/internal/ports"
	"sunsip.app/pkg/errors"
)

// UserModel represents the database model for accounts
type UserModel struct {
	ID           string `gorm:"primaryKey;size:36"`
	Email        string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
	IsAdmin      bool   `gorm:"default:false"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (UserModel) TableName() string {
	return "users"
}

// SessionModel represents the database model for authenticated sessions
type SessionModel struct {
	Token     string    `gorm:"primaryKey;size:64"`
	UserID    string    `gorm:"index;not null"`
	ExpiresAt time.Time `gorm:"index;not null"`
	CreatedAt time.Time
}

func (SessionModel) TableName() string {
	return "sessions"
}

// UserRepositoryAdapter implements the UserRepository port using GORM
type UserRepositoryAdapter struct {
	db *gorm.DB
}

// NewUserRepositoryAdapter creates a new user repository adapter
func NewUserRepositoryAdapter(db *gorm.DB) ports.UserRepository {
	return &UserRepositoryAdapter{db: db}
}

// Save inserts a new account; a taken email is reported as AlreadyExists
func (r *UserRepositoryAdapter) Save(ctx context.Context, user *ports.UserData) error {
	if user == nil {
		return errors.NewValidationError("user cannot be nil")
	}
	if user.ID == "" {
		return errors.NewValidationError("user ID cannot be empty")
	}
	if user.Email == "" {
		return errors.NewValidationError("email cannot be empty")
	}

	model := &UserModel{
		ID:           user.ID,
		Email:        strings.ToLower(user.Email),
		PasswordHash: user.PasswordHash,
		IsAdmin:      user.IsAdmin,
		CreatedAt:    user.CreatedAt,
	}
	if result := r.db.WithContext(ctx).Create(model); result.Error != nil {
		if stderrors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return errors.NewAlreadyExistsError("account already exists")
		}
		return errors.NewDatabaseError("failed to save user", result.Error)
	}

	user.CreatedAt = model.CreatedAt
	return nil
}

// FindByEmail retrieves an account by its email, case-insensitively
func (r *UserRepositoryAdapter) FindByEmail(ctx context.Context, email string) (*ports.UserData, error) {
	if email == "" {
		return nil, errors.NewValidationError("email cannot be empty")
	}

	return r.first(r.db.WithContext(ctx).Where("email = ?", strings.ToLower(email)))
}

// FindByID retrieves an account by its ID
func (r *UserRepositoryAdapter) FindByID(ctx context.Context, id string) (*ports.UserData, error) {
	if id == "" {
		return nil, errors.NewValidationError("user ID cannot be empty")
	}

	return r.first(r.db.WithContext(ctx).Where("id = ?", id))
}

func (r *UserRepositoryAdapter) first(query *gorm.DB) (*ports.UserData, error) {
	var model UserModel
	if result := query.First(&model); result.Error != nil {
		if stderrors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errors.NewNotFoundError("user not found")
		}
		return nil, errors.NewDatabaseError("failed to find user", result.Error)
	}

	return &ports.UserData{
		ID:           model.ID,
		Email:        model.Email,
		PasswordHash: model.PasswordHash,
		IsAdmin:      model.IsAdmin,
		CreatedAt:    model.CreatedAt,
	}, nil
}

// SessionRepositoryAdapter implements the SessionRepository port using GORM
type SessionRepositoryAdapter struct {
	db *gorm.DB
}

// NewSessionRepositoryAdapter creates a new session repository adapter
func NewSessionRepositoryAdapter(db *gorm.DB) ports.SessionRepository {
	return &SessionRepositoryAdapter{db: db}
}

// Save persists a session
func (r *SessionRepositoryAdapter) Save(ctx context.Context, session *ports.SessionData) error {
	if session == nil {
		return errors.NewValidationError("session cannot be nil")
	}
	if session.Token == "" {
		return errors.NewValidationError("session token cannot be empty")
	}
	if session.UserID == "" {
		return errors.NewValidationError("session user cannot be empty")
	}

	model := &SessionModel{
		Token:     session.Token,
		UserID:    session.UserID,
		ExpiresAt: session.ExpiresAt,
		CreatedAt: session.CreatedAt,
	}
	if result := r.db.WithContext(ctx).Create(model); result.Error != nil {
		return errors.NewDatabaseError("failed to save session", result.Error)
	}

	session.CreatedAt = model.CreatedAt
	return nil
}

// FindByToken retrieves a session by its token, expired or not
func (r *SessionRepositoryAdapter) FindByToken(ctx context.Context, token string) (*ports.SessionData, error) {
	if token == "" {
		return nil, errors.NewValidationError("session token cannot be empty")
	}

	var model SessionModel
	result := r.db.WithContext(ctx).Where("token = ?", token).First(&model)
	if result.Error != nil {
		if stderrors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errors.NewNotFoundError("session not found")
		}
		return nil, errors.NewDatabaseError("failed to find session", result.Error)
	}

	return &ports.SessionData{
		Token:     model.Token,
		UserID:    model.UserID,
		ExpiresAt: model.ExpiresAt,
		CreatedAt: model.CreatedAt,
	}, nil
}

// Delete removes a session by its token
func (r *SessionRepositoryAdapter) Delete(ctx context.Context, token string) error {
	if token == "" {
		return errors.NewValidationError("session token cannot be empty")
	}

	result := r.db.WithContext(ctx).Where("token = ?", token).Delete(&SessionModel{})
	if result.Error != nil {
		return errors.NewDatabaseError("failed to delete session", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("session not found")
	}

	return nil
}

// DeleteExpired removes every session that expired at or before now
func (r *SessionRepositoryAdapter) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	result := r.db.WithContext(ctx).Where("expires_at <= ?", now).Delete(&SessionModel{})
	if result.Error != nil {
		return 0, errors.NewDatabaseError("failed to delete expired sessions", result.Error)
	}

	return result.RowsAffected, nil
}

// Models lists every persisted model for migrations
func Models() []interface{} {
	return []interface{}{
		&UserModel{},
		&SessionModel{},
		&CombinationModel{},
	}
}

// Migrate creates or updates the schema for every persisted model
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(Models()...); err != nil {
		return errors.NewDatabaseError("failed to run migrations", err)
	}
	return nil
}
