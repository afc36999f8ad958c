package utils

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ray-remotestate/qrcafe/config"
	"github.com/ray-remotestate/qrcafe/middlewares"
)

func TestHashAndCheckPassword(t *testing.T) {
	hashed, err := HashPassword("s3cret-pw")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-pw", hashed)

	assert.True(t, CheckPassword(hashed, "s3cret-pw"))
	assert.False(t, CheckPassword(hashed, "wrong-pw"))
}

func TestGenerateAccessTokenRoundTrip(t *testing.T) {
	config.SecretKey = []byte("test-secret")
	userID := uuid.New()

	token, err := GenerateAccessToken(userID, "ADMIN")
	require.NoError(t, err)

	claims := &middlewares.Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(config.SecretKey), nil
	})
	require.NoError(t, err)
	require.True(t, parsed.Valid)

	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "ADMIN", claims.Role)
}

func TestGenerateTokensReturnsBoth(t *testing.T) {
	config.SecretKey = []byte("test-secret")

	access, refresh, err := GenerateTokens(uuid.New(), "CUSTOMER")
	require.NoError(t, err)
	assert.NotEmpty(t, access)
	assert.NotEmpty(t, refresh)
	assert.NotEqual(t, access, refresh)
}
