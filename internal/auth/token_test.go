package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var secret = []byte("test-secret")

func TestSignParseRoundTrip(t *testing.T) {
	token, err := Sign(secret, 42, "admin", time.Hour)
	require.NoError(t, err)

	identity, err := Parse(secret, token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), identity.UserID)
	assert.Equal(t, "admin", identity.Role)
	assert.True(t, identity.Resolved())
}

func TestParseExpiredToken(t *testing.T) {
	token, err := Sign(secret, 42, "admin", -time.Minute)
	require.NoError(t, err)

	_, err = Parse(secret, token)
	assert.True(t, errors.Is(err, ErrTokenExpired))
}

func TestParseGarbage(t *testing.T) {
	for _, raw := range []string{"", "   ", "not.a.token"} {
		_, err := Parse(secret, raw)
		assert.True(t, errors.Is(err, ErrInvalidToken), "input %q", raw)
	}
}

func TestParseWrongSecret(t *testing.T) {
	token, err := Sign([]byte("other-secret"), 42, "admin", time.Hour)
	require.NoError(t, err)

	_, err = Parse(secret, token)
	assert.True(t, errors.Is(err, ErrInvalidToken))
}

func TestFromHeader(t *testing.T) {
	assert.Equal(t, "abc", FromHeader("Bearer abc"))
	assert.Equal(t, "abc", FromHeader("abc"))
	assert.Equal(t, "", FromHeader(""))
}
