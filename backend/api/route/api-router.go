package route

import (
	"article-hub/backend/api/handler"
	"article-hub/backend/api/middleware"

	"github.com/gin-gonic/gin"
)

func SetApiRouter(router *gin.Engine) {
	apiRouter := router.Group("/api")
	apiRouter.Use(middleware.ErrorHandler())
	apiRouter.Use(middleware.GlobalAPIRateLimit())
	{
		apiRouter.GET("/status", handler.GetStatus)

		authRoutes := apiRouter.Group("/auth")
		{
			authRoutes.POST("/register", middleware.CriticalRateLimit(), handler.Register)
			authRoutes.POST("/login", middleware.CriticalRateLimit(), handler.Login)
			authRoutes.POST("/refresh", middleware.CriticalRateLimit(), handler.RefreshToken)
			authRoutes.POST("/logout", middleware.JWTAuth(), handler.Logout)
		}

		userRoute := apiRouter.Group("/user")
		{
			selfRoute := userRoute.Group("/")
			selfRoute.Use(middleware.UserAuth())
			{
				selfRoute.GET("/self", handler.GetSelf)
				selfRoute.PUT("/self", handler.UpdateSelf)
			}

			adminRoute := userRoute.Group("/")
			adminRoute.Use(middleware.JWTAuth(), middleware.AdminAuth())
			{
				adminRoute.GET("/", handler.GetAllUsers)
				adminRoute.GET("/:id", handler.GetUser)
				adminRoute.DELETE("/:id", handler.DeleteUser)
			}
		}

		fileRoute := apiRouter.Group("/file")
		fileRoute.Use(middleware.UserAuth())
		{
			fileRoute.POST("/", handler.UploadFile)
			fileRoute.GET("/", handler.GetMyFiles)
			fileRoute.DELETE("/:id", handler.DeleteFile)
		}

		categoryRoute := apiRouter.Group("/category")
		{
			categoryRoute.GET("/", handler.GetAllCategories)

			adminCategoryRoute := categoryRoute.Group("/")
			adminCategoryRoute.Use(middleware.JWTAuth(), middleware.AdminAuth())
			{
				adminCategoryRoute.POST("/", handler.CreateCategory)
				adminCategoryRoute.PUT("/:id", handler.UpdateCategory)
				adminCategoryRoute.DELETE("/:id", handler.DeleteCategory)
			}
		}

		articleRoute := apiRouter.Group("/article")
		{
			articleRoute.GET("/", handler.GetArticles)
			articleRoute.GET("/:id", handler.GetArticle)

			authedArticleRoute := articleRoute.Group("/")
			authedArticleRoute.Use(middleware.JWTAuth())
			{
				authedArticleRoute.POST("/", handler.CreateArticle)
				authedArticleRoute.PUT("/:id", handler.UpdateArticle)
				authedArticleRoute.DELETE("/:id", handler.DeleteArticle)
			}
		}
	}
}
