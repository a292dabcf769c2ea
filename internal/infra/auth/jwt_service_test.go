package auth

import (
	"testing"
	"time"

	"revcart/config"
	"revcart/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testJWTConfig() *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey = config.SecretKeyConfig{
		Access:    "test_access_secret_key_very_long_for_testing",
		AccessTTL: time.Hour,
	}

	return cfg
}

func TestJWTService_GenerateAndValidateToken(t *testing.T) {
	jwtService, err := NewJWTService(testJWTConfig())
	require.NoError(t, err)
	require.NotNil(t, jwtService)

	userID := uuid.New()

	token, err := jwtService.GenerateToken(userID, entity.RoleCustomer.String())
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := jwtService.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID.String(), claims["sub"])
	assert.Equal(t, entity.RoleCustomer.String(), claims["role"])
}

func TestJWTService_InvalidToken(t *testing.T) {
	jwtService, err := NewJWTService(testJWTConfig())
	require.NoError(t, err)

	// Garbage token
	_, err = jwtService.ValidateToken("not.a.token")
	assert.Error(t, err)

	// Token signed with a different secret
	otherCfg := testJWTConfig()
	otherCfg.SecretKey.Access = "another_secret_entirely_for_testing"
	otherService, err := NewJWTService(otherCfg)
	require.NoError(t, err)

	foreign, err := otherService.GenerateToken(uuid.New(), entity.RoleAdmin.String())
	require.NoError(t, err)

	_, err = jwtService.ValidateToken(foreign)
	assert.Error(t, err)
}

func TestJWTService_MissingSecret(t *testing.T) {
	cfg := &config.Config{}

	_, err := NewJWTService(cfg)
	assert.Error(t, err)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	cfg := testJWTConfig()
	cfg.SecretKey.AccessTTL = -time.Minute

	jwtService, err := NewJWTService(cfg)
	require.NoError(t, err)

	token, err := jwtService.GenerateToken(uuid.New(), entity.RoleCustomer.String())
	require.NoError(t, err)

	_, err = jwtService.ValidateToken(token)
	assert.Error(t, err)
}
