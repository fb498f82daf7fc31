package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	secret := []byte("test-secret")
	now := time.Now()

	token, err := GenerateToken("user-1", secret, now, time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := GetUserIDFromToken(token, secret)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)
}

func TestTokenWrongSecret(t *testing.T) {
	token, err := GenerateToken("user-1", []byte("right"), time.Now(), time.Hour)
	require.NoError(t, err)

	_, err = GetUserIDFromToken(token, []byte("wrong"))
	assert.Error(t, err)
}

func TestTokenExpired(t *testing.T) {
	// Issued two hours ago with one hour validity.
	issued := time.Now().Add(-2 * time.Hour)
	token, err := GenerateToken("user-1", []byte("secret"), issued, time.Hour)
	require.NoError(t, err)

	_, err = GetUserIDFromToken(token, []byte("secret"))
	assert.Error(t, err)
}

func TestTokenGarbage(t *testing.T) {
	_, err := GetUserIDFromToken("not-a-token", []byte("secret"))
	assert.Error(t, err)
}
