package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/mataajer/souq-api/config"
	"github.com/mataajer/souq-api/models"
	"github.com/mataajer/souq-api/utils"
)

// GetCategories returns all categories for the storefront
func GetCategories(c *gin.Context) {
	utils.LogInfo("GetCategories called")

	var categories []models.Category
	if err := config.DB.Order("name").Find(&categories).Error; err != nil {
		utils.LogError("Failed to fetch categories: %v", err)
		utils.InternalServerError(c, "Failed to fetch categories", err.Error())
		return
	}

	utils.Success(c, "Categories retrieved successfully", gin.H{"categories": categories})
}

// GetCategory returns one category with its offer-adjusted products
func GetCategory(c *gin.Context) {
	utils.LogInfo("GetCategory called")

	var category models.Category
	if err := config.DB.First(&category, c.Param("id")).Error; err != nil {
		utils.LogError("Category not found: %v", err)
		utils.NotFound(c, "Category not found")
		return
	}

	products, err := fetchDecoratedProducts(config.DB.Where("category_id = ?", category.ID))
	if err != nil {
		utils.LogError("Failed to fetch category products: %v", err)
		utils.InternalServerError(c, "Failed to fetch category products", err.Error())
		return
	}

	utils.Success(c, "Category retrieved successfully", gin.H{
		"category": category,
		"products": products,
	})
}
