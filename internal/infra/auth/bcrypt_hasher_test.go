package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := NewBcryptHasher(newTestConfig(0))

	hash, err := hasher.Hash("correct horse battery staple")
	require.NoError(t, err)
	require.NotEmpty(t, hash)

	assert.True(t, hasher.Check("correct horse battery staple", hash))
	assert.False(t, hasher.Check("wrong password", hash))
}

func TestBcryptHasher_HashesAreSalted(t *testing.T) {
	hasher := NewBcryptHasher(newTestConfig(0))

	first, err := hasher.Hash("secret123")
	require.NoError(t, err)
	second, err := hasher.Hash("secret123")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, hasher.Check("secret123", first))
	assert.True(t, hasher.Check("secret123", second))
}

func TestBcryptHasher_ValidatePolicy(t *testing.T) {
	hasher := NewBcryptHasher(newTestConfig(0))

	assert.Error(t, hasher.ValidatePolicy("short"))
	assert.NoError(t, hasher.ValidatePolicy("longenough"))
	assert.NoError(t, hasher.ValidatePolicy("sixchr"))
}

func TestBcryptHasher_CostOutOfRangeFallsBack(t *testing.T) {
	cfg := newTestConfig(0)
	cfg.Auth.BcryptCost = bcrypt.MaxCost + 1

	hasher := NewBcryptHasher(cfg)
	hash, err := hasher.Hash("secret123")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.DefaultCost, cost)
}
