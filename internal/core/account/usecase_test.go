package account

import (
	"context"
	stderrors "errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	mocks "sunsip.app/internal/mocks"
	"sunsip.app/internal/ports"
	"sunsip.app/pkg/errors"
)

var now = time.Date(2024, time.March, 10, 12, 0, 0, 0, time.UTC)

func allowLogging(l *mocks.Logger) {
	var fields []interface{}
	for i := 0; i <= 5; i++ {
		l.EXPECT().Debug(mock.Anything, fields...).Maybe()
		l.EXPECT().Info(mock.Anything, fields...).Maybe()
		l.EXPECT().Warn(mock.Anything, fields...).Maybe()
		l.EXPECT().Error(mock.Anything, fields...).Maybe()
		fields = append(fields, mock.Anything)
	}
}

type accountMocks struct {
	users    *mocks.UserRepository
	sessions *mocks.SessionRepository
	hasher   *mocks.PasswordHasher
	config   *mocks.ConfigProvider
}

func newUseCase(t *testing.T) (*UseCase, accountMocks) {
	m := accountMocks{
		users:    mocks.NewUserRepository(t),
		sessions: mocks.NewSessionRepository(t),
		hasher:   mocks.NewPasswordHasher(t),
		config:   mocks.NewConfigProvider(t),
	}
	logger := mocks.NewLogger(t)
	allowLogging(logger)

	m.config.EXPECT().GetAuthConfig().Return(ports.AuthConfig{
		SessionTTL:        24 * time.Hour,
		MinPasswordLength: 6,
		AdminEmails:       []string{"Owner@SunSip.app"},
	}).Maybe()

	ids := []string{"id-1", "id-2", "id-3"}
	next := 0
	uc, err := NewUseCase(UseCaseDependencies{
		Users:    m.users,
		Sessions: m.sessions,
		Hasher:   m.hasher,
		Config:   m.config,
		Logger:   logger,
		Now:      func() time.Time { return now },
		NewID: func() string {
			id := ids[next]
			next++
			return id
		},
	})
	require.NoError(t, err)
	return uc, m
}

func TestNewUseCase_MissingDependencies(t *testing.T) {
	_, err := NewUseCase(UseCaseDependencies{})
	assert.True(t, errors.IsValidationError(err))
}

func TestUseCase_SignUp(t *testing.T) {
	uc, m := newUseCase(t)

	m.users.EXPECT().FindByEmail(mock.Anything, "owner@sunsip.app").Return(nil, errors.NewNotFoundError("user not found"))
	m.hasher.EXPECT().Hash("secret1").Return("hashed", nil)
	m.users.EXPECT().Save(mock.Anything, mock.MatchedBy(func(u *ports.UserData) bool {
		return u.ID == "id-1" && u.Email == "owner@sunsip.app" && u.PasswordHash == "hashed" && u.IsAdmin
	})).Return(nil)
	m.sessions.EXPECT().Save(mock.Anything, &ports.SessionData{
		Token:     "id-2",
		UserID:    "id-1",
		ExpiresAt: now.Add(24 * time.Hour),
		CreatedAt: now,
	}).Return(nil)

	result, err := uc.SignUp(context.Background(), Credentials{Email: " Owner@sunsip.app", Password: "secret1"})

	require.NoError(t, err)
	assert.Equal(t, "id-1", result.User.ID)
	assert.True(t, result.User.IsAdmin)
	assert.Equal(t, "id-2", result.Session.Token)
}

func TestUseCase_SignUp_FieldErrors(t *testing.T) {
	uc, _ := newUseCase(t)

	_, err := uc.SignUp(context.Background(), Credentials{Email: "nope", Password: "123"})

	var appErr *errors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, errors.ValidationError, appErr.Type)
	assert.Equal(t, map[string]string{
		"email":    "must be a valid email address",
		"password": "is too short",
	}, appErr.Fields)
}

func TestUseCase_SignUp_AlreadyRegistered(t *testing.T) {
	uc, m := newUseCase(t)
	m.users.EXPECT().FindByEmail(mock.Anything, "ana@sunsip.app").Return(&ports.UserData{ID: "u"}, nil)

	_, err := uc.SignUp(context.Background(), Credentials{Email: "ana@sunsip.app", Password: "secret1"})

	var appErr *errors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, errors.AlreadyExistsError, appErr.Type)
	assert.Equal(t, "is already registered", appErr.Fields["email"])
}

func TestUseCase_SignIn(t *testing.T) {
	uc, m := newUseCase(t)
	user := &ports.UserData{ID: "user-9", Email: "ana@sunsip.app", PasswordHash: "hashed"}

	m.users.EXPECT().FindByEmail(mock.Anything, "ana@sunsip.app").Return(user, nil)
	m.hasher.EXPECT().Compare("hashed", "secret1").Return(nil)
	m.sessions.EXPECT().Save(mock.Anything, mock.Anything).Return(nil)

	result, err := uc.SignIn(context.Background(), Credentials{Email: "ANA@sunsip.app", Password: "secret1"})

	require.NoError(t, err)
	assert.Equal(t, "user-9", result.Session.UserID)
	assert.Equal(t, "id-1", result.Session.Token)
	assert.False(t, result.User.IsAdmin)
}

func TestUseCase_SignIn_WrongPassword(t *testing.T) {
	uc, m := newUseCase(t)
	m.users.EXPECT().FindByEmail(mock.Anything, mock.Anything).Return(&ports.UserData{ID: "u", PasswordHash: "hashed"}, nil)
	m.hasher.EXPECT().Compare("hashed", "wrong").Return(stderrors.New("mismatch"))

	_, err := uc.SignIn(context.Background(), Credentials{Email: "ana@sunsip.app", Password: "wrong"})
	assert.True(t, errors.IsUnauthorizedError(err))
}

func TestUseCase_SignIn_UnknownEmail(t *testing.T) {
	uc, m := newUseCase(t)
	m.users.EXPECT().FindByEmail(mock.Anything, mock.Anything).Return(nil, errors.NewNotFoundError("user not found"))

	_, err := uc.SignIn(context.Background(), Credentials{Email: "who@sunsip.app", Password: "secret1"})
	assert.True(t, errors.IsUnauthorizedError(err))
}

func TestUseCase_SignIn_MissingFields(t *testing.T) {
	uc, _ := newUseCase(t)

	_, err := uc.SignIn(context.Background(), Credentials{})

	var appErr *errors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Len(t, appErr.Fields, 2)
}

func TestUseCase_Authenticate(t *testing.T) {
	uc, m := newUseCase(t)
	m.sessions.EXPECT().FindByToken(mock.Anything, "tok").
		Return(&ports.SessionData{Token: "tok", UserID: "user-1", ExpiresAt: now.Add(time.Hour)}, nil)
	m.users.EXPECT().FindByID(mock.Anything, "user-1").Return(&ports.UserData{ID: "user-1", Email: "ana@sunsip.app"}, nil)

	user, err := uc.Authenticate(context.Background(), " tok ")

	require.NoError(t, err)
	assert.Equal(t, "ana@sunsip.app", user.Email)
}

func TestUseCase_Authenticate_Expired(t *testing.T) {
	uc, m := newUseCase(t)
	m.sessions.EXPECT().FindByToken(mock.Anything, "old").
		Return(&ports.SessionData{Token: "old", UserID: "user-1", ExpiresAt: now.Add(-time.Minute)}, nil)
	m.sessions.EXPECT().Delete(mock.Anything, "old").Return(nil)

	_, err := uc.Authenticate(context.Background(), "old")
	assert.True(t, errors.IsUnauthorizedError(err))
}

func TestUseCase_Authenticate_Unknown(t *testing.T) {
	uc, m := newUseCase(t)
	m.sessions.EXPECT().FindByToken(mock.Anything, "nope").Return(nil, errors.NewNotFoundError("session not found"))

	_, err := uc.Authenticate(context.Background(), "nope")
	assert.True(t, errors.IsUnauthorizedError(err))

	_, err = uc.Authenticate(context.Background(), "")
	assert.True(t, errors.IsUnauthorizedError(err))
}

func TestUseCase_SignOut(t *testing.T) {
	uc, m := newUseCase(t)
	m.sessions.EXPECT().Delete(mock.Anything, "tok").Return(errors.NewNotFoundError("session not found"))

	assert.NoError(t, uc.SignOut(context.Background(), "tok"))
	assert.NoError(t, uc.SignOut(context.Background(), ""))
}

func TestUseCase_CleanupExpiredSessions(t *testing.T) {
	uc, m := newUseCase(t)
	m.sessions.EXPECT().DeleteExpired(mock.Anything, now).Return(int64(3), nil)

	removed, err := uc.CleanupExpiredSessions(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(3), removed)
}
