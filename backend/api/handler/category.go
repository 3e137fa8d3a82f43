package handler

import (
	"net/http"

	"article-hub/backend/common"
	"article-hub/backend/model"

	"github.com/gin-gonic/gin"
)

type CategoryRequest struct {
	Name string `json:"name" binding:"required,notblank,max=50"`
}

func GetAllCategories(c *gin.Context) {
	categories, err := model.GetAllCategories()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
		return
	}
	common.RespSuccess(c, categories)
}

func CreateCategory(c *gin.Context) {
	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request: " + err.Error()})
		return
	}
	if model.IsCategoryNameTaken(req.Name) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Category name is already taken"})
		return
	}
	category := model.Category{Name: req.Name}
	if err := category.Insert(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
		return
	}
	common.RespSuccess(c, category)
}

func UpdateCategory(c *gin.Context) {
	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request: " + err.Error()})
		return
	}
	category, err := model.GetCategoryByUUID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Category is not found"})
		return
	}
	category.Name = req.Name
	if err := category.Update(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
		return
	}
	common.RespSuccess(c, category)
}

func DeleteCategory(c *gin.Context) {
	category, err := model.GetCategoryByUUID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Category is not found"})
		return
	}
	if err := category.Delete(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
		return
	}
	common.RespSuccessStr(c, "Category deleted")
}
