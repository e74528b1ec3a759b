package jwt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() Service {
	return NewJWTService("test-secret", "15m", "168h")
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	svc := newTestService()

	token, expiresAt, err := svc.GenerateRefreshToken("user-1")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Positive(t, expiresAt)

	userID, err := svc.ParseRefreshToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)
}

func TestParseRefreshTokenRejectsAccessToken(t *testing.T) {
	svc := newTestService()

	token, _, err := svc.GenerateAccessToken("user-1", "user@example.com")
	require.NoError(t, err)

	_, err = svc.ParseRefreshToken(token)
	assert.Error(t, err, "an access token must not pass as a refresh token")
}

func TestSSETokenRoundTrip(t *testing.T) {
	svc := newTestService()

	token, expiresIn, err := svc.GenerateSSEToken("user-1")
	require.NoError(t, err)
	assert.Equal(t, 300, expiresIn)

	userID, err := svc.ValidateSSEToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)

	refresh, _, err := svc.GenerateRefreshToken("user-1")
	require.NoError(t, err)
	_, err = svc.ValidateSSEToken(refresh)
	assert.Error(t, err, "only sse-typed tokens open an event stream")
}

func TestRevokeToken(t *testing.T) {
	svc := newTestService()

	token, _, err := svc.GenerateRefreshToken("user-1")
	require.NoError(t, err)

	assert.False(t, svc.IsTokenRevoked(token))
	svc.RevokeToken(token)
	assert.True(t, svc.IsTokenRevoked(token))
}

func TestRefreshTokenCookie(t *testing.T) {
	svc := newTestService()

	cookie := svc.RefreshTokenCookie("tok", 1735689600)

	assert.Equal(t, "refresh_token", cookie.Name)
	assert.Equal(t, "tok", cookie.Value)
	assert.Equal(t, "/api/v1/auth", cookie.Path)
	assert.True(t, cookie.HttpOnly)
}
