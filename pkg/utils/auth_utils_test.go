package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	hash, err := HashPassword("secret1")
	require.NoError(t, err)

	assert.True(t, CheckPasswordHash("secret1", hash))
	assert.False(t, CheckPasswordHash("secret2", hash))
}

func TestHashPassword_SaltFreshness(t *testing.T) {
	h1, err := HashPassword("secret1")
	require.NoError(t, err)
	h2, err := HashPassword("secret1")
	require.NoError(t, err)

	// Independent salts: different digests, both verify.
	assert.NotEqual(t, h1, h2)
	assert.True(t, CheckPasswordHash("secret1", h1))
	assert.True(t, CheckPasswordHash("secret1", h2))
}

func TestCheckPasswordHash_MalformedDigest(t *testing.T) {
	assert.False(t, CheckPasswordHash("secret1", ""))
	assert.False(t, CheckPasswordHash("secret1", "not-a-bcrypt-digest"))
}
