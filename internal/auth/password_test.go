package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestPasswordRoundTrip(t *testing.T) {
	hash, err := HashPassword("123456", bcrypt.MinCost)
	require.NoError(t, err)

	assert.True(t, VerifyPassword("123456", hash))
	assert.False(t, VerifyPassword("1234567", hash))
}

func TestHashIsSalted(t *testing.T) {
	first, err := HashPassword("same-plaintext", bcrypt.MinCost)
	require.NoError(t, err)
	second, err := HashPassword("same-plaintext", bcrypt.MinCost)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, VerifyPassword("same-plaintext", first))
	assert.True(t, VerifyPassword("same-plaintext", second))
}

func TestVerifyMalformedHash(t *testing.T) {
	assert.False(t, VerifyPassword("anything", "not-a-bcrypt-hash"))
	assert.False(t, VerifyPassword("anything", ""))
}

func TestHashClampsInvalidCost(t *testing.T) {
	hash, err := HashPassword("pw", 99)
	require.NoError(t, err)
	assert.True(t, VerifyPassword("pw", hash))
}
