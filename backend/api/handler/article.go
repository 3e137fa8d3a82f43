package handler

import (
	"net/http"

	"article-hub/backend/common"
	"article-hub/backend/service"

	"github.com/gin-gonic/gin"
)

var articleService *service.ArticleService

// InitArticleService wires the article service in; called once from main.
func InitArticleService(s *service.ArticleService) {
	articleService = s
}

type CreateArticleRequest struct {
	Title       string   `json:"title" binding:"required,notblank,max=255"`
	Description string   `json:"description" binding:"required,max=255"`
	Content     string   `json:"content" binding:"required"`
	Thumbnail   string   `json:"thumbnail" binding:"required,uuid4"`
	Categories  []string `json:"categories" binding:"required,min=1,dive,uuid4"`
}

type UpdateArticleRequest struct {
	Title       string   `json:"title" binding:"omitempty,max=255"`
	Description string   `json:"description" binding:"omitempty,max=255"`
	Content     string   `json:"content"`
	Thumbnail   string   `json:"thumbnail" binding:"omitempty,uuid4"`
	Categories  []string `json:"categories" binding:"omitempty,dive,uuid4"`
}

func GetArticles(c *gin.Context) {
	views, err := articleService.GetArticles(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		c.Abort()
		return
	}
	common.RespSuccess(c, views)
}

func GetArticle(c *gin.Context) {
	view, err := articleService.FindArticleByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		c.Abort()
		return
	}
	common.RespSuccess(c, view)
}

func CreateArticle(c *gin.Context) {
	var req CreateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request: " + err.Error()})
		return
	}

	view, err := articleService.CreateArticle(c.Request.Context(), c.GetInt64("user_id"), service.CreateArticleInput{
		Title:       req.Title,
		Description: req.Description,
		Content:     req.Content,
		Thumbnail:   req.Thumbnail,
		Categories:  req.Categories,
	})
	if err != nil {
		_ = c.Error(err)
		c.Abort()
		return
	}
	common.RespSuccess(c, view)
}

func UpdateArticle(c *gin.Context) {
	var req UpdateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request: " + err.Error()})
		return
	}

	view, err := articleService.UpdateArticle(c.Request.Context(), c.Param("id"), c.GetInt64("user_id"), service.UpdateArticleInput{
		Title:       req.Title,
		Description: req.Description,
		Content:     req.Content,
		Thumbnail:   req.Thumbnail,
		Categories:  req.Categories,
	})
	if err != nil {
		_ = c.Error(err)
		c.Abort()
		return
	}
	common.RespSuccess(c, view)
}

func DeleteArticle(c *gin.Context) {
	err := articleService.DeleteArticle(c.Request.Context(), c.Param("id"), c.GetInt64("user_id"))
	if err != nil {
		_ = c.Error(err)
		c.Abort()
		return
	}
	common.RespSuccessStr(c, "Article deleted")
}
