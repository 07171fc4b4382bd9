package infrastructure

import (
	stderrors "errors"

	"golang.org/x/crypto/bcrypt"
	"sunsip.app/pkg/errors"
)

// bcrypt ignores everything past this many bytes
const maxPasswordBytes = 72

// BcryptPasswordHasher implements the PasswordHasher port with bcrypt
type BcryptPasswordHasher struct {
	cost int
}

// NewBcryptPasswordHasher creates a hasher; an out of range cost falls back to bcrypt.DefaultCost
func NewBcryptPasswordHasher(cost int) *BcryptPasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptPasswordHasher{cost: cost}
}

func (h *BcryptPasswordHasher) Hash(password string) (string, error) {
	if password == "" {
		return "", errors.NewValidationError("password cannot be empty")
	}
	if len(password) > maxPasswordBytes {
		return "", errors.NewValidationError("password must be at most 72 bytes")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", errors.Wrap(errors.ErrorTypeUnknown, "failed to hash password", err)
	}
	return string(hash), nil
}

// Compare returns an Unauthorized error when password does not match hash
func (h *BcryptPasswordHasher) Compare(hash, password string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	switch {
	case err == nil:
		return nil
	case stderrors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return errors.NewUnauthorizedError("password does not match")
	default:
		return errors.Wrap(errors.ErrorTypeUnauthorized, "invalid password hash", err)
	}
}
