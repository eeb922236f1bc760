package jwt_test

import (
	"testing"
	"time"

	"loyalty-coupon-api/internal/domain/user"
	"loyalty-coupon-api/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateToken(t *testing.T) {
	service := jwt.NewService("test-secret", 30*time.Minute)
	userID := uuid.New()

	token, err := service.GenerateToken(userID, "admin@example.com", user.RoleAdmin)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := service.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, "admin@example.com", claims.Subject)
}

func TestValidateToken_Expired(t *testing.T) {
	service := jwt.NewService("test-secret", -time.Minute)

	token, err := service.GenerateToken(uuid.New(), "admin@example.com", user.RoleAdmin)
	require.NoError(t, err)

	_, err = service.ValidateToken(token)
	assert.ErrorIs(t, err, jwt.ErrExpiredToken)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	service := jwt.NewService("test-secret", 30*time.Minute)
	other := jwt.NewService("other-secret", 30*time.Minute)

	token, err := service.GenerateToken(uuid.New(), "admin@example.com", user.RoleAdmin)
	require.NoError(t, err)

	_, err = other.ValidateToken(token)
	assert.ErrorIs(t, err, jwt.ErrInvalidToken)
}

func TestValidateToken_Garbage(t *testing.T) {
	service := jwt.NewService("test-secret", 30*time.Minute)

	_, err := service.ValidateToken("not-a-token")
	assert.ErrorIs(t, err, jwt.ErrInvalidToken)
}
