package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mataajer/souq-api/config"
	"github.com/mataajer/souq-api/models"
	"github.com/mataajer/souq-api/utils"
)

// ProductRequest represents the product creation/update request
type ProductRequest struct {
	Name        string   `json:"name" binding:"required,min=3,max=200"`
	Description string   `json:"description"`
	Price       float64  `json:"price" binding:"required,gte=0"`
	OldPrice    *float64 `json:"old_price" binding:"omitempty,gte=0"`
	InStock     *bool    `json:"in_stock"`
	Featured    *bool    `json:"featured"`
	CategoryID  uint     `json:"category_id" binding:"required"`
	Images      []string `json:"images"`
}

// CreateProduct handles product creation
func CreateProduct(c *gin.Context) {
	utils.LogInfo("CreateProduct called")

	if _, ok := adminFromContext(c); !ok {
		return
	}

	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid input: %v", err)
		utils.BadRequest(c, "Invalid input", err.Error())
		return
	}

	var category models.Category
	if err := config.DB.First(&category, req.CategoryID).Error; err != nil {
		utils.LogError("Category %d not found: %v", req.CategoryID, err)
		utils.BadRequest(c, "Category not found", nil)
		return
	}

	product := models.Product{
		Name:        req.Name,
		Description: utils.SanitizeString(req.Description),
		Price:       req.Price,
		OldPrice:    req.OldPrice,
		InStock:     true,
		CategoryID:  req.CategoryID,
	}
	if req.InStock != nil {
		product.InStock = *req.InStock
	}
	if req.Featured != nil {
		product.Featured = *req.Featured
	}
	for i, url := range req.Images {
		product.Images = append(product.Images, models.ProductImage{URL: url, Position: i})
	}

	if err := config.DB.Create(&product).Error; err != nil {
		utils.LogError("Failed to create product: %v", err)
		utils.InternalServerError(c, "Failed to create product", err.Error())
		return
	}

	utils.LogInfo("Product created successfully: %s", product.Name)
	utils.Created(c, "Product created successfully", gin.H{"product": product})
}

// UpdateProduct handles product updates
func UpdateProduct(c *gin.Context) {
	utils.LogInfo("UpdateProduct called")

	if _, ok := adminFromContext(c); !ok {
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.LogError("Invalid product ID format: %v", err)
		utils.BadRequest(c, "Invalid product ID format", "Product ID must be a valid number")
		return
	}

	var product models.Product
	if err := config.DB.Preload("Images").First(&product, id).Error; err != nil {
		utils.LogError("Product not found: %v", err)
		utils.NotFound(c, "Product not found")
		return
	}

	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid input: %v", err)
		utils.BadRequest(c, "Invalid input", err.Error())
		return
	}

	if req.CategoryID != product.CategoryID {
		var category models.Category
		if err := config.DB.First(&category, req.CategoryID).Error; err != nil {
			utils.LogError("Category %d not found: %v", req.CategoryID, err)
			utils.BadRequest(c, "Category not found", nil)
			return
		}
	}

	tx := config.DB.Begin()
	if tx.Error != nil {
		utils.LogError("Failed to start transaction: %v", tx.Error)
		utils.InternalServerError(c, "Failed to process update", nil)
		return
	}

	product.Name = req.Name
	product.Description = utils.SanitizeString(req.Description)
	product.Price = req.Price
	product.OldPrice = req.OldPrice
	product.CategoryID = req.CategoryID
	if req.InStock != nil {
		product.InStock = *req.InStock
	}
	if req.Featured != nil {
		product.Featured = *req.Featured
	}

	if err := tx.Save(&product).Error; err != nil {
		tx.Rollback()
		utils.LogError("Failed to update product: %v", err)
		utils.InternalServerError(c, "Failed to update product", err.Error())
		return
	}

	// The image list is replaced wholesale when provided
	if req.Images != nil {
		if err := tx.Where("product_id = ?", product.ID).Delete(&models.ProductImage{}).Error; err != nil {
			tx.Rollback()
			utils.LogError("Failed to clear product images: %v", err)
			utils.InternalServerError(c, "Failed to update product images", err.Error())
			return
		}
		product.Images = nil
		for i, url := range req.Images {
			image := models.ProductImage{ProductID: product.ID, URL: url, Position: i}
			if err := tx.Create(&image).Error; err != nil {
				tx.Rollback()
				utils.LogError("Failed to save product image: %v", err)
				utils.InternalServerError(c, "Failed to update product images", err.Error())
				return
			}
			product.Images = append(product.Images, image)
		}
	}

	if err := tx.Commit().Error; err != nil {
		utils.LogError("Failed to commit transaction: %v", err)
		utils.InternalServerError(c, "Failed to save changes", err.Error())
		return
	}

	utils.LogInfo("Product updated successfully: %s", product.Name)
	utils.Success(c, "Product updated successfully", gin.H{"product": product})
}

// DeleteProduct handles product deletion
func DeleteProduct(c *gin.Context) {
	utils.LogInfo("DeleteProduct called")

	if _, ok := adminFromContext(c); !ok {
		return
	}

	var product models.Product
	if err := config.DB.First(&product, c.Param("id")).Error; err != nil {
		utils.LogError("Product not found: %v", err)
		utils.NotFound(c, "Product not found")
		return
	}

	if err := config.DB.Where("product_id = ?", product.ID).Delete(&models.ProductImage{}).Error; err != nil {
		utils.LogError("Failed to delete product images: %v", err)
		utils.InternalServerError(c, "Failed to delete product", err.Error())
		return
	}

	if err := config.DB.Delete(&product).Error; err != nil {
		utils.LogError("Failed to delete product: %v", err)
		utils.InternalServerError(c, "Failed to delete product", err.Error())
		return
	}

	utils.LogInfo("Product deleted successfully: %s", product.Name)
	utils.Success(c, "Product deleted successfully", nil)
}

// UploadProductImage stores an uploaded image and returns its URL so
// the admin frontend can attach it to a product.
func UploadProductImage(c *gin.Context) {
	utils.LogInfo("UploadProductImage called")

	if _, ok := adminFromContext(c); !ok {
		return
	}

	file, err := c.FormFile("image")
	if err != nil {
		utils.LogError("No image in request: %v", err)
		utils.BadRequest(c, "Image file is required", err.Error())
		return
	}

	path, err := utils.SaveUploadedFile(file, "uploads/products")
	if err != nil {
		utils.LogError("Failed to save uploaded image: %v", err)
		utils.BadRequest(c, "Failed to save image", err.Error())
		return
	}

	utils.LogInfo("Product image uploaded: %s", path)
	utils.Created(c, "Image uploaded successfully", gin.H{"url": "/" + path})
}
