//go:build unit

package password_test

import (
	"strings"
	"testing"

	"staybook/internal/pkg/password"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashAndCompare(t *testing.T) {
	hash, err := password.HashPassword("password123")
	require.NoError(t, err)
	assert.NotEqual(t, "password123", hash)

	assert.NoError(t, password.ComparePassword(hash, "password123"))
	assert.ErrorIs(t, password.ComparePassword(hash, "password124"), password.ErrComparisonFailed)
}

func TestInputChecks(t *testing.T) {
	_, err := password.HashPassword("")
	assert.ErrorIs(t, err, password.ErrInvalidPassword)

	_, err = password.HashPassword(strings.Repeat("a", 73))
	assert.ErrorIs(t, err, password.ErrPasswordTooLong)

	assert.ErrorIs(t, password.ComparePassword("", "x"), password.ErrInvalidPassword)
	assert.ErrorIs(t, password.ComparePassword("x", ""), password.ErrInvalidPassword)
}

func TestCorruptHashIsNotAMismatch(t *testing.T) {
	err := password.ComparePassword("not-a-bcrypt-hash", "password123")
	require.Error(t, err)
	assert.NotErrorIs(t, err, password.ErrComparisonFailed)
}

func TestNeedsRehash(t *testing.T) {
	low, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)

	assert.NotEqual(t, bcrypt.MinCost, password.Cost)
	assert.True(t, password.NeedsRehash(string(low)))
	assert.True(t, password.NeedsRehash("garbage"))

	current, err := password.HashPassword("password123")
	require.NoError(t, err)
	assert.False(t, password.NeedsRehash(current))
}
