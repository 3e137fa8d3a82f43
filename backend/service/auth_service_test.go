package service

import (
	"testing"

	"article-hub/backend/common"
	"article-hub/backend/model"

	"github.com/stretchr/testify/assert"
)

func init() {
	common.JWTSecret = "test-jwt-secret-key-for-unit-tests"
	common.JWTRefreshSecret = "test-jwt-refresh-secret-key-for-unit-tests"
}

func TestGenerateToken(t *testing.T) {
	user := &model.User{
		PK:    1,
		UUID:  "user-uuid",
		Email: "test@example.com",
		Role:  1,
	}

	token, err := GenerateToken(user)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)
}

func TestValidateToken_ValidToken(t *testing.T) {
	user := &model.User{
		PK:    42,
		UUID:  "alice-uuid",
		Email: "alice@example.com",
		Role:  2,
	}

	token, err := GenerateToken(user)
	assert.NoError(t, err)

	claims, err := ValidateToken(token)
	assert.NoError(t, err)
	assert.NotNil(t, claims)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "alice@example.com", claims.Email)
	assert.Equal(t, 2, claims.Role)
	assert.Equal(t, "article-hub", claims.Issuer)
	assert.Equal(t, "alice-uuid", claims.Subject)
}

func TestValidateToken_InvalidToken(t *testing.T) {
	claims, err := ValidateToken("invalid-token-string")
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestValidateToken_TamperedToken(t *testing.T) {
	user := &model.User{
		PK:    1,
		Email: "test@example.com",
		Role:  1,
	}

	token, err := GenerateToken(user)
	assert.NoError(t, err)

	tamperedToken := token + "tampered"
	claims, err := ValidateToken(tamperedToken)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestGenerateRefreshToken(t *testing.T) {
	user := &model.User{
		PK:    1,
		Email: "test@example.com",
		Role:  1,
	}

	refreshToken, err := GenerateRefreshToken(user)
	assert.NoError(t, err)
	assert.NotEmpty(t, refreshToken)
}

func TestValidateRefreshToken_ValidToken(t *testing.T) {
	user := &model.User{
		PK:    99,
		Email: "bob@example.com",
		Role:  3,
	}

	refreshToken, err := GenerateRefreshToken(user)
	assert.NoError(t, err)

	claims, err := ValidateRefreshToken(refreshToken)
	assert.NoError(t, err)
	assert.NotNil(t, claims)
	assert.Equal(t, int64(99), claims.UserID)
	assert.Equal(t, "bob@example.com", claims.Email)
	assert.Equal(t, 3, claims.Role)
}

func TestValidateRefreshToken_WrongSecret(t *testing.T) {
	user := &model.User{
		PK:    1,
		Email: "test@example.com",
		Role:  1,
	}

	// An access token must not validate as a refresh token.
	accessToken, err := GenerateToken(user)
	assert.NoError(t, err)

	claims, err := ValidateRefreshToken(accessToken)
	assert.Error(t, err)
	assert.Nil(t, claims)
}
