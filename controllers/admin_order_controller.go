package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mataajer/souq-api/config"
	"github.com/mataajer/souq-api/models"
	"github.com/mataajer/souq-api/utils"
)

// ListOrders returns a paginated order list for the back office,
// newest first, optionally filtered by status or order number.
func ListOrders(c *gin.Context) {
	utils.LogInfo("ListOrders called")

	if _, ok := adminFromContext(c); !ok {
		return
	}

	pagination := utils.NewPagination(c)
	query := config.DB.Model(&models.Order{})

	if status := c.Query("status"); status != "" {
		if !models.ValidOrderStatus(status) {
			utils.BadRequest(c, "Invalid status filter", gin.H{"status": status})
			return
		}
		query = query.Where("status = ?", status)
	}
	if number := c.Query("number"); number != "" {
		query = query.Where("order_number = ?", number)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		utils.LogError("Failed to count orders: %v", err)
		utils.InternalServerError(c, "Failed to fetch orders", err.Error())
		return
	}
	pagination.SetTotal(total)

	var orders []models.Order
	if err := query.Preload("Items").Order("created_at DESC").
		Offset(pagination.Offset).Limit(pagination.Limit).Find(&orders).Error; err != nil {
		utils.LogError("Failed to fetch orders: %v", err)
		utils.InternalServerError(c, "Failed to fetch orders", err.Error())
		return
	}

	utils.SuccessWithPagination(c, "Orders retrieved successfully", gin.H{"orders": orders},
		total, pagination.Page, pagination.Limit)
}

// GetOrder returns one order with its items
func GetOrder(c *gin.Context) {
	utils.LogInfo("GetOrder called")

	if _, ok := adminFromContext(c); !ok {
		return
	}

	var order models.Order
	if err := config.DB.Preload("Items").First(&order, c.Param("id")).Error; err != nil {
		utils.LogError("Order not found: %v", err)
		utils.NotFound(c, "Order not found")
		return
	}

	utils.Success(c, "Order retrieved successfully", gin.H{"order": order})
}

// UpdateOrderStatusRequest represents the status change request
type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// UpdateOrderStatus moves an order to another status
func UpdateOrderStatus(c *gin.Context) {
	utils.LogInfo("UpdateOrderStatus called")

	if _, ok := adminFromContext(c); !ok {
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.LogError("Invalid order ID format: %v", err)
		utils.BadRequest(c, "Invalid order ID format", "Order ID must be a valid number")
		return
	}

	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid input: %v", err)
		utils.BadRequest(c, "Invalid input", err.Error())
		return
	}

	if !models.ValidOrderStatus(req.Status) {
		utils.LogError("Invalid order status: %s", req.Status)
		utils.BadRequest(c, "Invalid order status", gin.H{
			"allowed": []string{
				models.OrderStatusProcessing,
				models.OrderStatusShipped,
				models.OrderStatusDelivered,
				models.OrderStatusCancelled,
			},
		})
		return
	}

	var order models.Order
	if err := config.DB.First(&order, id).Error; err != nil {
		utils.LogError("Order not found: %v", err)
		utils.NotFound(c, "Order not found")
		return
	}

	if err := config.DB.Model(&order).Update("status", req.Status).Error; err != nil {
		utils.LogError("Failed to update order status: %v", err)
		utils.InternalServerError(c, "Failed to update order status", err.Error())
		return
	}

	utils.LogInfo("Order %s moved to status %s", order.OrderNumber, req.Status)
	utils.Success(c, "Order status updated successfully", gin.H{
		"order_number": order.OrderNumber,
		"status":       req.Status,
	})
}
