package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAPIKeyHash(t *testing.T) {
	hash, err := HashAPIKey("mortuary-superadmin-key")
	assert.NoError(t, err)

	t.Run("Correct Key", func(t *testing.T) {
		assert.True(t, CheckAPIKeyHash("mortuary-superadmin-key", hash))
	})

	t.Run("Wrong Key", func(t *testing.T) {
		assert.False(t, CheckAPIKeyHash("wrong-key", hash))
	})

	t.Run("Empty Hash", func(t *testing.T) {
		assert.False(t, CheckAPIKeyHash("mortuary-superadmin-key", ""))
	})
}

func TestSessionJWTRoundTrip(t *testing.T) {
	secret := "test-secret"

	t.Run("Valid Token", func(t *testing.T) {
		token, err := GenerateSessionJWT("session-123", "ward-uuid-1", secret, 1)
		assert.NoError(t, err)

		sessionID, locationUUID, err := ParseSessionJWT(token, secret)
		assert.NoError(t, err)
		assert.Equal(t, "session-123", sessionID)
		assert.Equal(t, "ward-uuid-1", locationUUID)
	})

	t.Run("Wrong Secret", func(t *testing.T) {
		token, err := GenerateSessionJWT("session-123", "ward-uuid-1", secret, 1)
		assert.NoError(t, err)

		_, _, err = ParseSessionJWT(token, "other-secret")
		assert.Error(t, err, "token signed with another secret should be rejected")
	})

	t.Run("Garbage Token", func(t *testing.T) {
		_, _, err := ParseSessionJWT("not.a.token", secret)
		assert.Error(t, err)
	})
}
