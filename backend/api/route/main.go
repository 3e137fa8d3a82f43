package route

import (
	"article-hub/backend/api/middleware"
	"article-hub/backend/common"

	"github.com/gin-contrib/static"
	"github.com/gin-gonic/gin"
)

func SetRouter(router *gin.Engine) {
	router.Use(middleware.GzipDecodeMiddleware())
	router.Use(middleware.GzipEncodeMiddleware())

	// Uploaded assets are served directly from disk.
	router.Use(static.Serve("/upload", static.LocalFile(common.UploadPath, false)))

	SetApiRouter(router)
}
