package handler

import (
	"net/http"

	"article-hub/backend/common"
	"article-hub/backend/service"

	"github.com/gin-gonic/gin"
)

func UploadFile(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "A file is required: " + err.Error()})
		return
	}

	fileRecord, err := service.UploadAndRecordFile(c.GetInt64("user_id"), file)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
		return
	}
	common.RespSuccess(c, fileRecord)
}

func GetMyFiles(c *gin.Context) {
	files, err := service.FindFilesForUser(c.GetInt64("user_id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
		return
	}
	common.RespSuccess(c, files)
}

func DeleteFile(c *gin.Context) {
	if err := service.DeleteFileRecord(c.Param("id"), c.GetInt64("user_id")); err != nil {
		_ = c.Error(err)
		c.Abort()
		return
	}
	common.RespSuccessStr(c, "File deleted")
}
