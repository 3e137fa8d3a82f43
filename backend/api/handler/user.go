package handler

import (
	"net/http"
	"strconv"

	"article-hub/backend/common"
	apperrors "article-hub/backend/common/errors"
	"article-hub/backend/common/httperr"
	"article-hub/backend/model"

	"github.com/gin-gonic/gin"
)

type UpdateSelfRequest struct {
	FullName       string `json:"full_name" binding:"omitempty,notblank,max=100"`
	Password       string `json:"password" binding:"omitempty,min=8,max=20"`
	DisplayPicture string `json:"display_picture" binding:"omitempty,uuid4"`
}

func GetSelf(c *gin.Context) {
	user, err := model.GetUserByPK(c.GetInt64("user_id"))
	if err != nil {
		_ = c.Error(httperr.NotFound(apperrors.ErrUserNotFound, "User is not found"))
		c.Abort()
		return
	}
	common.RespSuccess(c, user)
}

func UpdateSelf(c *gin.Context) {
	var req UpdateSelfRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request: " + err.Error()})
		return
	}

	user, err := model.GetUserByPK(c.GetInt64("user_id"))
	if err != nil {
		_ = c.Error(httperr.NotFound(apperrors.ErrUserNotFound, "User is not found"))
		c.Abort()
		return
	}

	if req.FullName != "" {
		user.FullName = req.FullName
	}
	updatePassword := req.Password != ""
	if updatePassword {
		user.Password = req.Password
	}
	if req.DisplayPicture != "" {
		// The avatar must be a file the user owns.
		var file model.File
		err := model.DB.Where("uuid = ? AND user_id = ?", req.DisplayPicture, user.PK).First(&file).Error
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "File is not found"})
			return
		}
		user.DisplayPicture = &file.PK
	}

	if err := user.Update(updatePassword); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to update user: " + err.Error()})
		return
	}
	common.RespSuccess(c, user)
}

func GetAllUsers(c *gin.Context) {
	p, _ := strconv.Atoi(c.Query("p"))
	if p < 0 {
		p = 0
	}
	const pageSize = 20
	users, err := model.GetAllUsers(p*pageSize, pageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
		return
	}
	common.RespSuccess(c, users)
}

func GetUser(c *gin.Context) {
	user, err := model.GetUserByUUID(c.Param("id"))
	if err != nil {
		_ = c.Error(httperr.NotFound(apperrors.ErrUserNotFound, "User is not found"))
		c.Abort()
		return
	}
	common.RespSuccess(c, user)
}

func DeleteUser(c *gin.Context) {
	user, err := model.GetUserByUUID(c.Param("id"))
	if err != nil {
		_ = c.Error(httperr.NotFound(apperrors.ErrUserNotFound, "User is not found"))
		c.Abort()
		return
	}
	if user.Role >= common.RoleRootUser {
		c.JSON(http.StatusForbidden, gin.H{"success": false, "message": "Cannot delete the root user"})
		return
	}
	if err := user.Delete(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
		return
	}
	common.RespSuccessStr(c, "User deleted")
}
