package auth

import (
	"testing"

	"blogmarket_backend/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setTestConfig(secret string) {
	cfg := &config.Config{}
	cfg.JWT.Secret = secret
	cfg.JWT.TTL = 60
	config.AppConfig = cfg
}

func TestGenerateAndParseToken(t *testing.T) {
	setTestConfig("test-secret")

	token, err := GenerateToken("user-1", "+79001234567")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "+79001234567", claims.Phone)
}

func TestParseToken_WrongSecret(t *testing.T) {
	setTestConfig("secret-one")
	token, err := GenerateToken("user-1", "+79001234567")
	require.NoError(t, err)

	setTestConfig("secret-two")
	_, err = ParseToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseToken_Garbage(t *testing.T) {
	setTestConfig("test-secret")
	_, err := ParseToken("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("super_password")
	require.NoError(t, err)
	assert.NotEqual(t, "super_password", hash)

	assert.True(t, CheckPasswordHash("super_password", hash))
	assert.False(t, CheckPasswordHash("wrong_password", hash))
}

func TestValidatePassword(t *testing.T) {
	assert.Error(t, ValidatePassword("short"))
	assert.NoError(t, ValidatePassword("long_enough_password"))
}
