package jwt

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ponto-digital/ponto-backend-go/internal/domain/user"
)

const testSecret = "test-secret-key-for-jwt"

func TestGenerateAccessToken_Claims(t *testing.T) {
	svc := NewJWTService(testSecret, "1h", "24h")

	tokenString, expiresAt, err := svc.GenerateAccessToken("user-1", "ana@acme.com.br", "company-1", user.RoleManager)
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)
	assert.Greater(t, expiresAt, time.Now().Unix())

	decoded, err := svc.JWTAuth().Decode(tokenString)
	require.NoError(t, err)

	claims, err := decoded.AsMap(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "user-1", claims["user_id"])
	assert.Equal(t, "ana@acme.com.br", claims["email"])
	assert.Equal(t, "company-1", claims["company_id"])
	assert.Equal(t, "manager", claims["role"])
	assert.Equal(t, "access", claims["type"])
}

func TestGenerateRefreshToken(t *testing.T) {
	svc := NewJWTService(testSecret, "1h", "24h")

	tokenString, _, err := svc.GenerateRefreshToken("user-1")
	require.NoError(t, err)

	decoded, err := svc.JWTAuth().Decode(tokenString)
	require.NoError(t, err)

	claims, err := decoded.AsMap(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "user-1", claims["user_id"])
	assert.Equal(t, "refresh", claims["type"])
}

func TestGenerateAccessToken_BadExpiration(t *testing.T) {
	svc := NewJWTService(testSecret, "not-a-duration", "24h")

	_, _, err := svc.GenerateAccessToken("user-1", "ana@acme.com.br", "company-1", user.RoleEmployee)
	assert.Error(t, err)
}

func TestRevokeToken(t *testing.T) {
	svc := NewJWTService(testSecret, "1h", "24h")

	tokenString, _, err := svc.GenerateAccessToken("user-1", "ana@acme.com.br", "company-1", user.RoleEmployee)
	require.NoError(t, err)

	assert.False(t, svc.IsTokenRevoked(tokenString))

	svc.RevokeToken(tokenString)

	assert.True(t, svc.IsTokenRevoked(tokenString))
	assert.False(t, svc.IsTokenRevoked("some-other-token"))
}
