package controllers

import (
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/mataajer/souq-api/config"
	"github.com/mataajer/souq-api/models"
	"github.com/mataajer/souq-api/utils"
)

// fetchDecoratedProducts loads the products selected by query while the
// active offers are fetched on a second connection, then runs the offer
// engine over the result.
func fetchDecoratedProducts(query *gorm.DB) ([]utils.OfferedProduct, error) {
	offersCh := make(chan []models.Offer, 1)
	errCh := make(chan error, 1)
	go func() {
		offers, err := utils.FetchActiveOffers()
		if err != nil {
			errCh <- err
			return
		}
		offersCh <- offers
	}()

	var products []models.Product
	if err := query.Preload("Images").Preload("Category").Find(&products).Error; err != nil {
		return nil, err
	}

	select {
	case err := <-errCh:
		return nil, err
	case offers := <-offersCh:
		return utils.ApplyOffersToProducts(products, offers, time.Now()), nil
	}
}

// GetProducts returns a paginated product listing with offers applied.
// Supports category, featured and search filters.
func GetProducts(c *gin.Context) {
	utils.LogInfo("GetProducts called")

	pagination := utils.NewPagination(c)
	query := config.DB.Model(&models.Product{})

	if categoryID := c.Query("category"); categoryID != "" {
		query = query.Where("category_id = ?", categoryID)
	}
	if c.Query("featured") == "true" {
		query = query.Where("featured = ?", true)
	}
	if search := c.Query("search"); search != "" {
		query = query.Where("name ILIKE ? OR description ILIKE ?", "%"+search+"%", "%"+search+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		utils.LogError("Failed to count products: %v", err)
		utils.InternalServerError(c, "Failed to fetch products", err.Error())
		return
	}
	pagination.SetTotal(total)

	products, err := fetchDecoratedProducts(
		query.Order("created_at DESC").Offset(pagination.Offset).Limit(pagination.Limit),
	)
	if err != nil {
		utils.LogError("Failed to fetch products: %v", err)
		utils.InternalServerError(c, "Failed to fetch products", err.Error())
		return
	}

	utils.SuccessWithPagination(c, "Products retrieved successfully", gin.H{"products": products},
		total, pagination.Page, pagination.Limit)
}

// GetProduct returns one product with offers applied
func GetProduct(c *gin.Context) {
	utils.LogInfo("GetProduct called")

	offersCh := make(chan []models.Offer, 1)
	errCh := make(chan error, 1)
	go func() {
		offers, err := utils.FetchActiveOffers()
		if err != nil {
			errCh <- err
			return
		}
		offersCh <- offers
	}()

	var product models.Product
	if err := config.DB.Preload("Images").Preload("Category").First(&product, c.Param("id")).Error; err != nil {
		utils.LogError("Product not found: %v", err)
		utils.NotFound(c, "Product not found")
		return
	}

	select {
	case err := <-errCh:
		utils.LogError("Failed to fetch offers: %v", err)
		utils.InternalServerError(c, "Failed to fetch product", err.Error())
	case offers := <-offersCh:
		decorated := utils.ApplyOffersToProduct(product, offers, time.Now())
		utils.Success(c, "Product retrieved successfully", gin.H{"product": decorated})
	}
}
