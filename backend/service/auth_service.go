package service

import (
	"context"
	"errors"
	"time"

	"article-hub/backend/common"
	"article-hub/backend/model"

	"github.com/golang-jwt/jwt/v5"
)

const tokenIssuer = "article-hub"

// Claims carried by both access and refresh tokens. UserID is the surrogate
// pk; it stays server-side and is never rendered in API responses.
type Claims struct {
	UserID int64  `json:"user_id"`
	Email  string `json:"email"`
	Role   int    `json:"role"`
	jwt.RegisteredClaims
}

func newClaims(user *model.User, ttl time.Duration) *Claims {
	now := time.Now()
	return &Claims{
		UserID: user.PK,
		Email:  user.Email,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			Subject:   user.UUID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
}

func GenerateToken(user *model.User) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, newClaims(user, common.AccessTokenTTL))
	return token.SignedString([]byte(common.JWTSecret))
}

func GenerateRefreshToken(user *model.User) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, newClaims(user, common.RefreshTokenTTL))
	return token.SignedString([]byte(common.JWTRefreshSecret))
}

func parseToken(tokenString string, secret string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}

func ValidateToken(tokenString string) (*Claims, error) {
	return parseToken(tokenString, common.JWTSecret)
}

func ValidateRefreshToken(tokenString string) (*Claims, error) {
	return parseToken(tokenString, common.JWTRefreshSecret)
}

// BlacklistToken marks an access token as invalidated until it would have
// expired anyway. A no-op without redis; the token then stays valid until
// its natural expiry.
func BlacklistToken(ctx context.Context, tokenString string) error {
	if !common.RedisEnabled {
		return nil
	}
	return common.RDB.Set(ctx, "jwt:blacklist:"+tokenString, "1", common.AccessTokenTTL).Err()
}
