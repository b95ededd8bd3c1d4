package models

import (
	"time"

	"gorm.io/gorm"
)

// Discount types. The discount is discriminated by type rather than a
// pair of nullable value columns, so an offer can never carry both a
// percentage and an amount at once.
const (
	DiscountTypePercentage = "percentage"
	DiscountTypeAmount     = "amount"
)

// Offer target scopes
const (
	OfferTargetAll      = "all"
	OfferTargetCategory = "category"
	OfferTargetProduct  = "product"
)

// Offer is a time-bounded promotional discount rule scoped to the whole
// catalog, one category, or one product.
type Offer struct {
	gorm.Model
	Title            string    `json:"title" gorm:"not null"`
	Description      string    `json:"description"`
	DiscountType     string    `json:"discount_type" gorm:"not null"` // "percentage" or "amount"
	DiscountValue    float64   `json:"discount_value" gorm:"not null"`
	TargetType       string    `json:"target_type" gorm:"default:'all'"` // "all", "category" or "product"
	TargetCategoryID *uint     `json:"target_category_id,omitempty"`
	TargetProductID  *uint     `json:"target_product_id,omitempty"`
	StartDate        time.Time `json:"start_date" gorm:"not null"`
	EndDate          time.Time `json:"end_date" gorm:"not null"`
	IsActive         bool      `json:"is_active" gorm:"default:true"`
}

// HasTarget reports whether the offer carries the target reference its
// scope requires.
func (o Offer) HasTarget() bool {
	switch o.TargetType {
	case OfferTargetCategory:
		return o.TargetCategoryID != nil
	case OfferTargetProduct:
		return o.TargetProductID != nil
	default:
		return true
	}
}
