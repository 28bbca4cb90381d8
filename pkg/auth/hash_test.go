package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword(t *testing.T) {
	hashService := NewHashService(bcrypt.MinCost)

	tests := []struct {
		name        string
		password    string
		expectError bool
	}{
		{
			name:     "Valid Password",
			password: "securepassword",
		},
		{
			name:        "Empty Password",
			password:    "",
			expectError: true,
		},
		{
			name:        "Password longer than bcrypt accepts",
			password:    strings.Repeat("a", 73),
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hashedPassword, err := hashService.HashPassword(tt.password)

			if tt.expectError {
				assert.Error(t, err)
				assert.Empty(t, hashedPassword)
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, hashedPassword)
				assert.NotEqual(t, tt.password, hashedPassword)
			}
		})
	}
}

func TestComparePassword(t *testing.T) {
	hashService := NewHashService(bcrypt.MinCost)
	hashedPassword, err := hashService.HashPassword("securepassword")
	assert.NoError(t, err)

	tests := []struct {
		name           string
		password       string
		hashedPassword string
		expectMatch    bool
	}{
		{
			name:           "Matching Password",
			password:       "securepassword",
			hashedPassword: hashedPassword,
			expectMatch:    true,
		},
		{
			name:           "Non-Matching Password",
			password:       "wrongpassword",
			hashedPassword: hashedPassword,
			expectMatch:    false,
		},
		{
			name:           "Malformed Hash",
			password:       "securepassword",
			hashedPassword: "not-a-hash",
			expectMatch:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expectMatch, hashService.ComparePassword(tt.hashedPassword, tt.password))
		})
	}
}

func TestNewHashServiceCostFallback(t *testing.T) {
	assert.Equal(t, bcrypt.DefaultCost, NewHashService(0).cost)
	assert.Equal(t, bcrypt.DefaultCost, NewHashService(bcrypt.MaxCost+1).cost)
	assert.Equal(t, bcrypt.MinCost, NewHashService(bcrypt.MinCost).cost)
}
