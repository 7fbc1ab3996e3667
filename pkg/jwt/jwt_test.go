package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() *Service {
	return NewService("access-secret", "refresh-secret", 15*time.Minute, 7*24*time.Hour)
}

func TestGenerateAndValidateAccessToken(t *testing.T) {
	svc := newTestService()

	token, err := svc.GenerateAccessToken("user-1", "owner@luminasalon.example", "admin")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateAccessToken(token)
	require.NoError(t, err)

	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "owner@luminasalon.example", claims.Email)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, AccessToken, claims.TokenType)
}

func TestGenerateAndValidateRefreshToken(t *testing.T) {
	svc := newTestService()

	token, err := svc.GenerateRefreshToken("user-1", "owner@luminasalon.example")
	require.NoError(t, err)

	claims, err := svc.ValidateRefreshToken(token)
	require.NoError(t, err)
	assert.Equal(t, RefreshToken, claims.TokenType)
}

func TestValidateAccessToken_RejectsRefreshToken(t *testing.T) {
	svc := newTestService()

	refresh, err := svc.GenerateRefreshToken("user-1", "owner@luminasalon.example")
	require.NoError(t, err)

	_, err = svc.ValidateAccessToken(refresh)
	assert.Error(t, err)
}

func TestValidateAccessToken_RejectsWrongSecret(t *testing.T) {
	svc := newTestService()
	other := NewService("different-secret", "refresh-secret", 15*time.Minute, time.Hour)

	token, err := svc.GenerateAccessToken("user-1", "a@b.c", "admin")
	require.NoError(t, err)

	_, err = other.ValidateAccessToken(token)
	assert.Error(t, err)
}

func TestIsTokenExpired(t *testing.T) {
	expired := NewService("access-secret", "refresh-secret", -time.Minute, time.Hour)
	token, err := expired.GenerateAccessToken("user-1", "a@b.c", "admin")
	require.NoError(t, err)

	svc := newTestService()
	_, err = svc.ValidateAccessToken(token)
	require.Error(t, err)
	assert.True(t, svc.IsTokenExpired(token))

	fresh, err := svc.GenerateAccessToken("user-1", "a@b.c", "admin")
	require.NoError(t, err)
	assert.False(t, svc.IsTokenExpired(fresh))
}

func TestExpiryGetters(t *testing.T) {
	svc := newTestService()
	assert.Equal(t, 15*time.Minute, svc.AccessTokenExpiry())
	assert.Equal(t, 7*24*time.Hour, svc.RefreshTokenExpiry())
}
