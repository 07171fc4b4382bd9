package account

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"sunsip.app/internal/ports"
	"sunsip.app/pkg/errors"
)

const invalidCredentials = "invalid email or password"

type UseCase struct {
	users    ports.UserRepository
	sessions ports.SessionRepository
	hasher   ports.PasswordHasher
	config   ports.ConfigProvider
	logger   ports.Logger
	now      func() time.Time
	newID    func() string
}

type UseCaseDependencies struct {
	Users    ports.UserRepository
	Sessions ports.SessionRepository
	Hasher   ports.PasswordHasher
	Config   ports.ConfigProvider
	Logger   ports.Logger
	Now      func() time.Time
	NewID    func() string
}

func NewUseCase(deps UseCaseDependencies) (*UseCase, error) {
	if deps.Users == nil {
		return nil, errors.NewValidationError("user repository is required")
	}
	if deps.Sessions == nil {
		return nil, errors.NewValidationError("session repository is required")
	}
	if deps.Hasher == nil {
		return nil, errors.NewValidationError("password hasher is required")
	}
	if deps.Config == nil {
		return nil, errors.NewValidationError("config is required")
	}
	if deps.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}
	if deps.Now == nil {
		deps.Now = time.Now
	}
	if deps.NewID == nil {
		deps.NewID = uuid.NewString
	}

	return &UseCase{
		users:    deps.Users,
		sessions: deps.Sessions,
		hasher:   deps.Hasher,
		config:   deps.Config,
		logger:   deps.Logger,
		now:      deps.Now,
		newID:    deps.NewID,
	}, nil
}

// SignUp registers a new account and opens a session for it
func (uc *UseCase) SignUp(ctx context.Context, credentials Credentials) (*AuthResult, error) {
	cfg := uc.config.GetAuthConfig()
	credentials.Normalize()
	if fields := credentials.FieldErrors(cfg.MinPasswordLength); len(fields) > 0 {
		return nil, errors.NewFieldValidationError("invalid sign up details", fields)
	}

	_, err := uc.users.FindByEmail(ctx, credentials.Email)
	switch {
	case err == nil:
		appErr := errors.NewAlreadyExistsError("account already exists")
		appErr.Fields = map[string]string{"email": "is already registered"}
		return nil, appErr
	case !errors.IsNotFoundError(err):
		return nil, fmt.Errorf("check existing account: %w", err)
	}

	hash, err := uc.hasher.Hash(credentials.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &ports.UserData{
		ID:           uc.newID(),
		Email:        credentials.Email,
		PasswordHash: hash,
		IsAdmin:      isAdminEmail(cfg.AdminEmails, credentials.Email),
		CreatedAt:    uc.now(),
	}
	if err := uc.users.Save(ctx, user); err != nil {
		return nil, fmt.Errorf("save account: %w", err)
	}

	uc.logger.Info("Account created", ports.F("user_id", user.ID))
	return uc.openSession(ctx, user)
}

// SignIn checks credentials and opens a session
func (uc *UseCase) SignIn(ctx context.Context, credentials Credentials) (*AuthResult, error) {
	credentials.Normalize()
	fields := make(map[string]string)
	if credentials.Email == "" {
		fields["email"] = "is required"
	}
	if credentials.Password == "" {
		fields["password"] = "is required"
	}
	if len(fields) > 0 {
		return nil, errors.NewFieldValidationError("invalid sign in details", fields)
	}

	user, err := uc.users.FindByEmail(ctx, credentials.Email)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, errors.NewUnauthorizedError(invalidCredentials)
		}
		return nil, fmt.Errorf("find account: %w", err)
	}
	if err := uc.hasher.Compare(user.PasswordHash, credentials.Password); err != nil {
		uc.logger.Debug("Password mismatch", ports.F("user_id", user.ID))
		return nil, errors.NewUnauthorizedError(invalidCredentials)
	}

	return uc.openSession(ctx, user)
}

// Authenticate resolves a session token to its user
func (uc *UseCase) Authenticate(ctx context.Context, token string) (*User, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, errors.NewUnauthorizedError("session token is required")
	}

	session, err := uc.sessions.FindByToken(ctx, token)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, errors.NewUnauthorizedError("session not found")
		}
		return nil, fmt.Errorf("find session: %w", err)
	}

	if (&Session{ExpiresAt: session.ExpiresAt}).IsExpired(uc.now()) {
		if err := uc.sessions.Delete(ctx, token); err != nil && !errors.IsNotFoundError(err) {
			uc.logger.Warn("Failed to delete expired session", ports.F("error", err))
		}
		return nil, errors.NewUnauthorizedError("session expired")
	}

	user, err := uc.users.FindByID(ctx, session.UserID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, errors.NewUnauthorizedError("account no longer exists")
		}
		return nil, fmt.Errorf("find account: %w", err)
	}

	result := toUser(user)
	return &result, nil
}

// SignOut ends a session; unknown tokens are ignored
func (uc *UseCase) SignOut(ctx context.Context, token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil
	}
	if err := uc.sessions.Delete(ctx, token); err != nil && !errors.IsNotFoundError(err) {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

// CleanupExpiredSessions removes every session past its expiry
func (uc *UseCase) CleanupExpiredSessions(ctx context.Context) (int64, error) {
	removed, err := uc.sessions.DeleteExpired(ctx, uc.now())
	if err != nil {
		return 0, fmt.Errorf("delete expired sessions: %w", err)
	}
	if removed > 0 {
		uc.logger.Info("Expired sessions removed", ports.F("count", removed))
	}
	return removed, nil
}

func (uc *UseCase) openSession(ctx context.Context, user *ports.UserData) (*AuthResult, error) {
	now := uc.now()
	session := &ports.SessionData{
		Token:     uc.newID(),
		UserID:    user.ID,
		ExpiresAt: now.Add(uc.config.GetAuthConfig().SessionTTL),
		CreatedAt: now,
	}
	if err := uc.sessions.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}

	return &AuthResult{
		User: toUser(user),
		Session: Session{
			Token:     session.Token,
			UserID:    session.UserID,
			ExpiresAt: session.ExpiresAt,
		},
	}, nil
}

func toUser(data *ports.UserData) User {
	return User{
		ID:        data.ID,
		Email:     data.Email,
		IsAdmin:   data.IsAdmin,
		CreatedAt: data.CreatedAt,
	}
}

func isAdminEmail(admins []string, email string) bool {
	for _, admin := range admins {
		if strings.EqualFold(strings.TrimSpace(admin), email) {
			return true
		}
	}
	return false
}
