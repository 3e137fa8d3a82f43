package middleware

import (
	"net/http"
	"strings"

	"article-hub/backend/common"
	"article-hub/backend/service"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// sessionIdentity loads the caller's identity from the session cookie. It
// returns false when there is no usable session so the caller can fall back
// to token auth. A stale cookie missing any of the fields counts as no
// session; a session for a disabled account aborts the request.
func sessionIdentity(c *gin.Context) bool {
	session := sessions.Default(c)
	id, ok := session.Get("id").(int64)
	if !ok {
		return false
	}
	role, ok := session.Get("role").(int)
	if !ok {
		return false
	}
	status, ok := session.Get("status").(int)
	if !ok {
		return false
	}
	if status == common.UserStatusDisabled {
		c.JSON(http.StatusForbidden, gin.H{
			"success": false,
			"message": "The account has been disabled",
		})
		c.Abort()
		return true
	}
	c.Set("user_id", id)
	c.Set("role", role)
	return true
}

// tokenIdentity validates a Bearer token and stores the caller's identity in
// the context, aborting with 401 on any failure.
func tokenIdentity(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"message": "Authorization header is required",
		})
		c.Abort()
		return
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"message": "Authorization header format must be Bearer {token}",
		})
		c.Abort()
		return
	}

	tokenString := parts[1]
	claims, err := service.ValidateToken(tokenString)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"message": err.Error(),
		})
		c.Abort()
		return
	}

	if common.RedisEnabled {
		blacklisted, _ := common.RDB.Exists(c, "jwt:blacklist:"+tokenString).Result()
		if blacklisted > 0 {
			c.JSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "Token has been invalidated",
			})
			c.Abort()
			return
		}
	}

	c.Set("user_id", claims.UserID)
	c.Set("email", claims.Email)
	c.Set("role", claims.Role)
	c.Set("token", tokenString)
}

// JWTAuth validates a Bearer token and stores the caller's identity in the
// context.
func JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenIdentity(c)
	}
}

// UserAuth authenticates browser clients through the session cookie first
// and falls back to a Bearer token, so both kinds of client can reach the
// same routes.
func UserAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if sessionIdentity(c) {
			return
		}
		tokenIdentity(c)
	}
}

// AdminAuth verifies the caller has the admin role. It assumes UserAuth or
// JWTAuth already ran.
func AdminAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get("role")
		if !exists {
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"message": "Role information not found",
			})
			c.Abort()
			return
		}

		roleInt, ok := role.(int)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"message": "Invalid role format",
			})
			c.Abort()
			return
		}

		if roleInt < common.RoleAdminUser {
			c.JSON(http.StatusForbidden, gin.H{
				"success": false,
				"message": "Admin privileges required",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
