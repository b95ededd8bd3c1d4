package models

import (
	"time"

	"gorm.io/gorm"
)

// Order statuses shown on the storefront tracking page
const (
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
)

// Payment methods offered at checkout
const (
	PaymentMethodCash         = "cash"
	PaymentMethodBankTransfer = "bank_transfer"
)

// ValidOrderStatus reports whether s is one of the order statuses.
func ValidOrderStatus(s string) bool {
	switch s {
	case OrderStatusProcessing, OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// Order represents a customer order placed at checkout. Customers are
// not registered users, so contact details are captured on the order.
type Order struct {
	gorm.Model
	OrderNumber   string      `json:"order_number" gorm:"uniqueIndex;not null"`
	CustomerName  string      `json:"customer_name" gorm:"not null"`
	CustomerEmail string      `json:"customer_email"`
	CustomerPhone string      `json:"customer_phone" gorm:"not null"`
	Address       string      `json:"address" gorm:"not null"`
	City          string      `json:"city" gorm:"not null"`
	PaymentMethod string      `json:"payment_method" gorm:"default:'cash'"`
	Status        string      `json:"status" gorm:"default:'processing'"`
	TotalAmount   float64     `json:"total_amount"`
	Items         []OrderItem `json:"items" gorm:"foreignKey:OrderID"`
}

// OrderItem snapshots a product line at the time of checkout, so later
// catalog edits do not rewrite order history.
type OrderItem struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	OrderID     uint      `json:"order_id" gorm:"not null;index"`
	ProductID   uint      `json:"product_id"`
	ProductName string    `json:"product_name"`
	Price       float64   `json:"price"`
	Quantity    int       `json:"quantity"`
	CreatedAt   time.Time `json:"created_at"`
}

// Total returns the line total for the item.
func (i OrderItem) Total() float64 {
	return i.Price * float64(i.Quantity)
}
