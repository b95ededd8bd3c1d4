package controllers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mataajer/souq-api/config"
	"github.com/mataajer/souq-api/models"
	"github.com/mataajer/souq-api/utils"
)

func cartResponse(items []utils.CartItem) gin.H {
	if items == nil {
		items = []utils.CartItem{}
	}
	return gin.H{
		"items": items,
		"total": utils.CartTotal(items),
		"count": utils.CartCount(items),
	}
}

// GetCart returns the visitor's cart
func GetCart(c *gin.Context) {
	utils.LogInfo("GetCart called")
	utils.Success(c, "Cart retrieved successfully", cartResponse(utils.GetSessionCart(c)))
}

// AddToCartRequest represents the add-to-cart request
type AddToCartRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required,min=1"`
}

// AddToCart puts a product into the session cart at its current
// offer-adjusted price.
func AddToCart(c *gin.Context) {
	utils.LogInfo("AddToCart called")

	var req AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid input: %v", err)
		utils.BadRequest(c, "Invalid input", err.Error())
		return
	}

	var product models.Product
	if err := config.DB.Preload("Images").First(&product, req.ProductID).Error; err != nil {
		utils.LogError("Product not found: %v", err)
		utils.NotFound(c, "Product not found")
		return
	}

	if !product.InStock {
		utils.LogError("Product %d is out of stock", product.ID)
		utils.BadRequest(c, "Product is out of stock", nil)
		return
	}

	offers, err := utils.FetchActiveOffers()
	if err != nil {
		utils.LogError("Failed to fetch offers: %v", err)
		utils.InternalServerError(c, "Failed to add to cart", err.Error())
		return
	}
	decorated := utils.ApplyOffersToProduct(product, offers, time.Now())

	image := ""
	if len(product.Images) > 0 {
		image = product.Images[0].URL
	}

	items := utils.AddCartItem(utils.GetSessionCart(c), utils.CartItem{
		ProductID: product.ID,
		Name:      product.Name,
		Price:     decorated.Price,
		Quantity:  req.Quantity,
		Image:     image,
	})
	if err := utils.SaveSessionCart(c, items); err != nil {
		utils.LogError("Failed to save cart: %v", err)
		utils.InternalServerError(c, "Failed to save cart", err.Error())
		return
	}

	utils.LogInfo("Product %d added to cart", product.ID)
	utils.Success(c, "Product added to cart", cartResponse(items))
}

// UpdateCartItemRequest represents the quantity update request
type UpdateCartItemRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"min=0"`
}

// UpdateCartItem sets the quantity of a cart line; zero removes it
func UpdateCartItem(c *gin.Context) {
	utils.LogInfo("UpdateCartItem called")

	var req UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid input: %v", err)
		utils.BadRequest(c, "Invalid input", err.Error())
		return
	}

	items := utils.SetCartItemQuantity(utils.GetSessionCart(c), req.ProductID, req.Quantity)
	if err := utils.SaveSessionCart(c, items); err != nil {
		utils.LogError("Failed to save cart: %v", err)
		utils.InternalServerError(c, "Failed to save cart", err.Error())
		return
	}

	utils.Success(c, "Cart updated successfully", cartResponse(items))
}

// RemoveFromCart removes a product from the cart
func RemoveFromCart(c *gin.Context) {
	utils.LogInfo("RemoveFromCart called")

	var req struct {
		ProductID uint `json:"product_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid input: %v", err)
		utils.BadRequest(c, "Invalid input", err.Error())
		return
	}

	items := utils.RemoveCartItem(utils.GetSessionCart(c), req.ProductID)
	if err := utils.SaveSessionCart(c, items); err != nil {
		utils.LogError("Failed to save cart: %v", err)
		utils.InternalServerError(c, "Failed to save cart", err.Error())
		return
	}

	utils.Success(c, "Product removed from cart", cartResponse(items))
}

// ClearCart empties the cart
func ClearCart(c *gin.Context) {
	utils.LogInfo("ClearCart called")

	if err := utils.ClearSessionCart(c); err != nil {
		utils.LogError("Failed to clear cart: %v", err)
		utils.InternalServerError(c, "Failed to clear cart", err.Error())
		return
	}

	utils.Success(c, "Cart cleared successfully", cartResponse(nil))
}
