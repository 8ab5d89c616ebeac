package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("Secret@123")
	assert.NoError(t, err)
	assert.NotEqual(t, "Secret@123", hash)

	t.Run("Correct password verifies", func(t *testing.T) {
		assert.True(t, CheckPasswordHash("Secret@123", hash))
	})

	t.Run("Wrong password fails", func(t *testing.T) {
		assert.False(t, CheckPasswordHash("Secret@124", hash))
	})

	t.Run("Hashes are salted", func(t *testing.T) {
		other, err := HashPassword("Secret@123")
		assert.NoError(t, err)
		assert.NotEqual(t, hash, other)
	})
}

func TestSessionJWTRoundTrip(t *testing.T) {
	secret := "test-secret"

	token, err := GenerateSessionJWT("session-abc", secret, 1)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	t.Run("Valid token yields session ID", func(t *testing.T) {
		sessionID, err := ParseSessionJWT(token, secret)
		assert.NoError(t, err)
		assert.Equal(t, "session-abc", sessionID)
	})

	t.Run("Wrong secret rejected", func(t *testing.T) {
		_, err := ParseSessionJWT(token, "other-secret")
		assert.Error(t, err)
	})

	t.Run("Garbage token rejected", func(t *testing.T) {
		_, err := ParseSessionJWT("not.a.jwt", secret)
		assert.Error(t, err)
	})
}
