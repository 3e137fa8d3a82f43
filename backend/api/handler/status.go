package handler

import (
	"article-hub/backend/common"

	"github.com/gin-gonic/gin"
)

func GetStatus(c *gin.Context) {
	common.RespSuccess(c, gin.H{
		"version":    common.Version,
		"start_time": common.StartTime,
	})
}
