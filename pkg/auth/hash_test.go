package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashService_HashPassword(t *testing.T) {
	hashService := &HashService{}

	tests := []struct {
		name          string
		password      string
		expectedError error
	}{
		{
			name:          "Password at the minimum length",
			password:      "hive1234",
			expectedError: nil,
		},
		{
			name:          "Long passphrase",
			password:      "sticker-on-the-cafe-window-2025",
			expectedError: nil,
		},
		{
			name:          "Empty password",
			password:      "",
			expectedError: ErrPasswordTooShort,
		},
		{
			name:          "Below the minimum length",
			password:      "hive123",
			expectedError: ErrPasswordTooShort,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := hashService.HashPassword(tt.password)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Empty(t, hash)
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, hash)
				assert.NotEqual(t, tt.password, hash)
			}
		})
	}

	t.Run("Hashes are salted per call", func(t *testing.T) {
		first, err := hashService.HashPassword("hive1234")
		assert.NoError(t, err)
		second, err := hashService.HashPassword("hive1234")
		assert.NoError(t, err)
		assert.NotEqual(t, first, second)
	})
}

func TestHashService_ComparePassword(t *testing.T) {
	hashService := &HashService{}

	hash, err := hashService.HashPassword("sticker-on-the-cafe-window-2025")
	assert.NoError(t, err)

	tests := []struct {
		name           string
		hashedPassword string
		password       string
		expectMatch    bool
	}{
		{
			name:           "Correct password",
			hashedPassword: hash,
			password:       "sticker-on-the-cafe-window-2025",
			expectMatch:    true,
		},
		{
			name:           "Wrong password",
			hashedPassword: hash,
			password:       "sticker-on-the-shop-door-2025",
			expectMatch:    false,
		},
		{
			name:           "Stored value is not a bcrypt hash",
			hashedPassword: "plaintext-from-a-bad-import",
			password:       "sticker-on-the-cafe-window-2025",
			expectMatch:    false,
		},
		{
			name:           "Empty stored hash",
			hashedPassword: "",
			password:       "sticker-on-the-cafe-window-2025",
			expectMatch:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expectMatch, hashService.ComparePassword(tt.hashedPassword, tt.password))
		})
	}
}
