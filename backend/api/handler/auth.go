package handler

import (
	"net/http"

	"article-hub/backend/common"
	apperrors "article-hub/backend/common/errors"
	"article-hub/backend/common/httperr"
	"article-hub/backend/model"
	"article-hub/backend/service"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

type RegisterRequest struct {
	FullName string `json:"full_name" binding:"required,notblank,max=100"`
	Email    string `json:"email" binding:"required,email,max=50"`
	Password string `json:"password" binding:"required,min=8,max=20"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

func Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request: " + err.Error()})
		return
	}

	if model.IsEmailAlreadyTaken(req.Email) {
		_ = c.Error(httperr.BadRequest(apperrors.ErrEmailTaken, "Email address is already taken"))
		c.Abort()
		return
	}

	user := model.User{
		FullName: req.FullName,
		Email:    req.Email,
		Password: req.Password,
		Role:     common.RoleCommonUser,
		Status:   common.UserStatusEnabled,
	}
	if err := user.Insert(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to create user: " + err.Error()})
		return
	}
	common.RespSuccessWithMsg(c, "User registered", user)
}

func Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request: " + err.Error()})
		return
	}

	user := model.User{
		Email:    req.Email,
		Password: req.Password,
	}
	if err := user.ValidateAndFill(); err != nil {
		_ = c.Error(httperr.Unauthorized(err.Error()))
		c.Abort()
		return
	}

	setupLogin(&user, c)
}

// setupLogin issues the JWT pair and a browser session, then returns the
// user info.
func setupLogin(user *model.User, c *gin.Context) {
	accessToken, err := service.GenerateToken(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to generate token"})
		return
	}
	refreshToken, err := service.GenerateRefreshToken(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to generate refresh token"})
		return
	}

	session := sessions.Default(c)
	session.Set("id", user.PK)
	session.Set("role", user.Role)
	session.Set("status", user.Status)
	if err := session.Save(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to save session: " + err.Error()})
		return
	}

	common.RespSuccess(c, gin.H{
		"user":          user,
		"access_token":  accessToken,
		"refresh_token": refreshToken,
	})
}

func RefreshToken(c *gin.Context) {
	var req RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request: " + err.Error()})
		return
	}

	claims, err := service.ValidateRefreshToken(req.RefreshToken)
	if err != nil {
		_ = c.Error(httperr.Unauthorized("Invalid refresh token"))
		c.Abort()
		return
	}

	user, err := model.GetUserByPK(claims.UserID)
	if err != nil {
		_ = c.Error(httperr.Unauthorized("User is not found"))
		c.Abort()
		return
	}
	if user.Status != common.UserStatusEnabled {
		_ = c.Error(httperr.New(http.StatusForbidden, apperrors.ErrUserDisabled, "The account has been disabled"))
		c.Abort()
		return
	}

	setupLogin(user, c)
}

func Logout(c *gin.Context) {
	if token := c.GetString("token"); token != "" {
		if err := service.BlacklistToken(c.Request.Context(), token); err != nil {
			common.SysError("failed to blacklist token: " + err.Error())
		}
	}

	session := sessions.Default(c)
	session.Clear()
	if err := session.Save(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
		return
	}
	common.RespSuccessStr(c, "Logged out")
}
