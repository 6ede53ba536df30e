package jwtutil

import (
	"testing"

	"calorie-service/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	Initialize(&config.JWTConfig{SigningKey: "test-secret", ExpirationHours: 1})

	token, err := GenerateToken("user@example.com", "user-1")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user@example.com", claims.Email)
	assert.Equal(t, "user-1", claims.UserID)
}

func TestValidateTokenRejectsTampered(t *testing.T) {
	Initialize(&config.JWTConfig{SigningKey: "test-secret", ExpirationHours: 1})

	token, err := GenerateToken("user@example.com", "user-1")
	require.NoError(t, err)

	_, err = ValidateToken(token + "x")
	assert.Error(t, err)

	Initialize(&config.JWTConfig{SigningKey: "other-secret", ExpirationHours: 1})
	_, err = ValidateToken(token)
	assert.Error(t, err)
}
