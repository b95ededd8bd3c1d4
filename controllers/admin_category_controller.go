package controllers

import (
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mataajer/souq-api/config"
	"github.com/mataajer/souq-api/models"
	"github.com/mataajer/souq-api/utils"
)

// CategoryRequest represents the category creation/update request
type CategoryRequest struct {
	Name        string `json:"name" binding:"required,min=2,max=100"`
	Description string `json:"description" binding:"max=500"`
	ImageURL    string `json:"image_url"`
}

// CreateCategory handles category creation
func CreateCategory(c *gin.Context) {
	utils.LogInfo("CreateCategory called")

	if _, ok := adminFromContext(c); !ok {
		return
	}

	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid input: %v", err)
		utils.BadRequest(c, "Invalid input", err.Error())
		return
	}

	var existing models.Category
	if err := config.DB.Where("name ILIKE ?", strings.TrimSpace(req.Name)).First(&existing).Error; err == nil {
		utils.LogError("Category with name %s already exists", req.Name)
		utils.Conflict(c, "A category with this name already exists", nil)
		return
	}

	category := models.Category{
		Name:        req.Name,
		Description: utils.SanitizeString(req.Description),
		ImageURL:    req.ImageURL,
	}

	if err := config.DB.Create(&category).Error; err != nil {
		utils.LogError("Failed to create category: %v", err)
		utils.InternalServerError(c, "Failed to create category", err.Error())
		return
	}

	utils.LogInfo("Category created successfully: %s", category.Name)
	utils.Created(c, "Category created successfully", gin.H{"category": category})
}

// UpdateCategory handles category updates
func UpdateCategory(c *gin.Context) {
	utils.LogInfo("UpdateCategory called")

	if _, ok := adminFromContext(c); !ok {
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.LogError("Invalid category ID format: %v", err)
		utils.BadRequest(c, "Invalid category ID format", "Category ID must be a valid number")
		return
	}

	var category models.Category
	if err := config.DB.First(&category, id).Error; err != nil {
		utils.LogError("Category not found: %v", err)
		utils.NotFound(c, "Category not found")
		return
	}

	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid input: %v", err)
		utils.BadRequest(c, "Invalid input", err.Error())
		return
	}

	tx := config.DB.Begin()
	if tx.Error != nil {
		utils.LogError("Failed to start transaction: %v", tx.Error)
		utils.InternalServerError(c, "Failed to process update", nil)
		return
	}

	var existing models.Category
	if err := tx.Where("name ILIKE ? AND id != ?", strings.TrimSpace(req.Name), id).First(&existing).Error; err == nil {
		tx.Rollback()
		utils.LogError("Duplicate category name found: %s", req.Name)
		utils.Conflict(c, "Category name already exists", "Please choose a different name")
		return
	}

	updates := map[string]interface{}{
		"name":        strings.TrimSpace(req.Name),
		"description": utils.SanitizeString(req.Description),
		"updated_at":  time.Now(),
	}
	if req.ImageURL != "" {
		updates["image_url"] = req.ImageURL
	}

	if err := tx.Model(&category).Updates(updates).Error; err != nil {
		tx.Rollback()
		utils.LogError("Failed to update category: %v", err)
		utils.InternalServerError(c, "Failed to update category", err.Error())
		return
	}

	if err := tx.Commit().Error; err != nil {
		utils.LogError("Failed to commit transaction: %v", err)
		utils.InternalServerError(c, "Failed to save changes", err.Error())
		return
	}

	utils.LogInfo("Category updated successfully: %s", category.Name)
	utils.Success(c, "Category updated successfully", gin.H{"category": category})
}

// DeleteCategory handles category deletion
func DeleteCategory(c *gin.Context) {
	utils.LogInfo("DeleteCategory called")

	if _, ok := adminFromContext(c); !ok {
		return
	}

	var category models.Category
	if err := config.DB.First(&category, c.Param("id")).Error; err != nil {
		utils.LogError("Category not found: %v", err)
		utils.NotFound(c, "Category not found")
		return
	}

	var productCount int64
	if err := config.DB.Model(&models.Product{}).Where("category_id = ?", category.ID).Count(&productCount).Error; err != nil {
		utils.LogError("Failed to count products: %v", err)
		utils.InternalServerError(c, "Failed to check category usage", err.Error())
		return
	}

	if productCount > 0 {
		utils.LogError("Cannot delete category with %d products", productCount)
		utils.BadRequest(c, "Cannot delete category that has products associated with it", gin.H{
			"product_count": productCount,
		})
		return
	}

	if err := config.DB.Delete(&category).Error; err != nil {
		utils.LogError("Failed to delete category: %v", err)
		utils.InternalServerError(c, "Failed to delete category", err.Error())
		return
	}

	utils.LogInfo("Category deleted successfully: %s", category.Name)
	utils.Success(c, "Category deleted successfully", nil)
}
