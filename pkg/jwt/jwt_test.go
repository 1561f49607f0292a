package jwt

import (
	"testing"
	"time"

	"healthcare-backend/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateToken(t *testing.T) {
	service := NewJWTService(config.JWTConfig{
		Secret:       "test-secret",
		AccessExpiry: time.Hour,
	})

	token, err := service.GenerateAccessToken(42, "a@x.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := service.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, 42, claims.UserID)
	assert.Equal(t, "a@x.com", claims.Email)
	assert.NotEmpty(t, claims.ID)
}

func TestValidateExpiredToken(t *testing.T) {
	service := NewJWTService(config.JWTConfig{
		Secret:       "test-secret",
		AccessExpiry: -time.Minute,
	})

	token, err := service.GenerateAccessToken(1, "a@x.com")
	require.NoError(t, err)

	_, err = service.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	issuer := NewJWTService(config.JWTConfig{Secret: "secret-one", AccessExpiry: time.Hour})
	verifier := NewJWTService(config.JWTConfig{Secret: "secret-two", AccessExpiry: time.Hour})

	token, err := issuer.GenerateAccessToken(1, "a@x.com")
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateMalformedToken(t *testing.T) {
	service := NewJWTService(config.JWTConfig{Secret: "test-secret", AccessExpiry: time.Hour})

	_, err := service.ValidateToken("not-a-token")
	assert.Error(t, err)
}
