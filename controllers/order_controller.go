package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/mataajer/souq-api/config"
	"github.com/mataajer/souq-api/models"
	"github.com/mataajer/souq-api/utils"
)

// TrackOrder looks an order up by its order number for the public
// tracking page. Contact details stay private; only progress fields
// are returned.
func TrackOrder(c *gin.Context) {
	utils.LogInfo("TrackOrder called")

	number := c.Param("number")
	if number == "" {
		utils.BadRequest(c, "Order number is required", nil)
		return
	}

	var order models.Order
	if err := config.DB.Preload("Items").Where("order_number = ?", number).First(&order).Error; err != nil {
		utils.LogError("Order not found for number %s: %v", number, err)
		utils.NotFound(c, "Order not found")
		return
	}

	items := make([]gin.H, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, gin.H{
			"product_name": item.ProductName,
			"quantity":     item.Quantity,
			"price":        item.Price,
			"total":        item.Total(),
		})
	}

	utils.Success(c, "Order retrieved successfully", gin.H{
		"order": gin.H{
			"order_number": order.OrderNumber,
			"status":       order.Status,
			"total_amount": order.TotalAmount,
			"created_at":   order.CreatedAt,
			"items":        items,
		},
	})
}
