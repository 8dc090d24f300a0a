package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// MinPasswordLength mirrors the register DTO rule so the hash layer rejects
// short secrets even when called outside the HTTP path.
const MinPasswordLength = 8

// hashCost is bcrypt's default; raise it here if login latency allows.
const hashCost = bcrypt.DefaultCost

var ErrPasswordTooShort = errors.New("password must be at least 8 characters")

type HashServiceInterface interface {
	HashPassword(password string) (string, error)
	ComparePassword(hashedPassword, password string) bool
}

// HashService hashes participant passwords with bcrypt. Hashes are salted per
// call, so two hashes of the same password never compare equal as strings.
type HashService struct{}

func (h *HashService) HashPassword(password string) (string, error) {
	if len(password) < MinPasswordLength {
		return "", ErrPasswordTooShort
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), hashCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (h *HashService) ComparePassword(hashedPassword, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password)) == nil
}
