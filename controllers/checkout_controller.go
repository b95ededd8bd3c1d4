package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/mataajer/souq-api/config"
	"github.com/mataajer/souq-api/models"
	"github.com/mataajer/souq-api/utils"
)

// CheckoutRequest represents the checkout form
type CheckoutRequest struct {
	FullName      string `json:"full_name" binding:"required,min=3"`
	Email         string `json:"email" binding:"omitempty,email"`
	Phone         string `json:"phone" binding:"required"`
	Address       string `json:"address" binding:"required,min=10"`
	City          string `json:"city" binding:"required,min=2"`
	PaymentMethod string `json:"payment_method" binding:"required,oneof=cash bank_transfer"`
}

// Checkout turns the session cart into an order, clears the cart and
// sends a confirmation email when SMTP is configured.
func Checkout(c *gin.Context) {
	utils.LogInfo("Checkout called")

	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid input: %v", err)
		utils.BadRequest(c, "Invalid input", err.Error())
		return
	}

	if ok, msg := utils.ValidatePhone(req.Phone); !ok {
		utils.ValidationError(c, "Invalid phone number", gin.H{"phone": msg})
		return
	}

	items := utils.GetSessionCart(c)
	if len(items) == 0 {
		utils.LogError("Checkout attempted with empty cart")
		utils.BadRequest(c, "Cart is empty", nil)
		return
	}

	order := models.Order{
		CustomerName:  utils.SanitizeString(req.FullName),
		CustomerEmail: req.Email,
		CustomerPhone: req.Phone,
		Address:       utils.SanitizeString(req.Address),
		City:          utils.SanitizeString(req.City),
		PaymentMethod: req.PaymentMethod,
		Status:        models.OrderStatusProcessing,
		TotalAmount:   utils.CartTotal(items),
	}
	for _, item := range items {
		order.Items = append(order.Items, models.OrderItem{
			ProductID:   item.ProductID,
			ProductName: item.Name,
			Price:       item.Price,
			Quantity:    item.Quantity,
		})
	}

	// Retry a few times in case the random order number collides
	var err error
	for attempt := 0; attempt < 3; attempt++ {
		order.OrderNumber = utils.GenerateOrderNumber()
		err = config.DB.Create(&order).Error
		if err == nil || !errors.Is(err, gorm.ErrDuplicatedKey) {
			break
		}
		utils.LogDebug("Order number collision, retrying: %s", order.OrderNumber)
	}
	if err != nil {
		utils.LogError("Failed to create order: %v", err)
		utils.InternalServerError(c, "Failed to create order", err.Error())
		return
	}

	if err := utils.ClearSessionCart(c); err != nil {
		utils.LogError("Failed to clear cart after checkout: %v", err)
	}

	if utils.EmailConfigured() && order.CustomerEmail != "" {
		go func(order models.Order) {
			storeName := "Souq"
			var settings models.StoreSettings
			if err := config.DB.First(&settings).Error; err == nil && settings.StoreName != "" {
				storeName = settings.StoreName
			}
			if err := utils.SendOrderConfirmation(storeName, order); err != nil {
				utils.LogError("Failed to send order confirmation for %s: %v", order.OrderNumber, err)
			}
		}(order)
	}

	utils.LogInfo("Order %s created", order.OrderNumber)
	utils.Created(c, "Order placed successfully", gin.H{"order": order})
}
