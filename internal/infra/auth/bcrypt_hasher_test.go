package auth

import (
	"strings"
	"testing"

	domainerrors "equiptrack/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_Hash(t *testing.T) {
	hasher := NewBcryptHasher(bcrypt.MinCost)

	password := "StrongPass123!"
	hash, err := hasher.Hash(password)
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, password, hash)

	// Verify the hash matches the password
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)))
	assert.Error(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("WrongPassword123!")))
}

func TestBcryptHasher_WithCustomCost(t *testing.T) {
	customCost := 6 // Lower cost for faster testing
	hasher := NewBcryptHasher(customCost)

	hash, err := hasher.Hash("StrongPass123!")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, customCost, cost)
}

func TestBcryptHasher_InvalidCostFallsBackToDefault(t *testing.T) {
	hasher := NewBcryptHasher(0)

	hash, err := hasher.Hash("StrongPass123!")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.DefaultCost, cost)
}

func TestBcryptHasher_EdgeCases(t *testing.T) {
	hasher := NewBcryptHasher(bcrypt.MinCost)

	// Empty password
	_, err := hasher.Hash("")
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidInput))

	// bcrypt rejects inputs longer than 72 bytes
	_, err = hasher.Hash(strings.Repeat("a", 73))
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidInput))

	// Unicode passwords are hashed as bytes
	hash, err := hasher.Hash("Pässphräse123!")
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("Pässphräse123!")))
}
