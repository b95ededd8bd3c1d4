package models

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

// Admin represents a back-office administrator
type Admin struct {
	gorm.Model
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	Password  string    `json:"-"`
	LastLogin time.Time `json:"last_login"`
	IsActive  bool      `json:"is_active" gorm:"default:true"`
}

// Category represents a product category
type Category struct {
	gorm.Model
	Name        string    `json:"name" gorm:"not null"`
	Description string    `json:"description"`
	ImageURL    string    `json:"image_url"`
	Products    []Product `json:"products,omitempty"`
}

// BeforeSave hook to keep category names trimmed
func (c *Category) BeforeSave(tx *gorm.DB) error {
	c.Name = strings.TrimSpace(c.Name)
	return nil
}

// Product represents a catalog entry
type Product struct {
	gorm.Model
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Price       float64        `json:"price"`
	OldPrice    *float64       `json:"old_price,omitempty"`
	InStock     bool           `json:"in_stock" gorm:"default:true"`
	Featured    bool           `json:"featured" gorm:"default:false"`
	CategoryID  uint           `json:"category_id"`
	Category    Category       `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	Images      []ProductImage `json:"images" gorm:"foreignKey:ProductID"`
}

// ProductImage represents one image of a product
type ProductImage struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	ProductID uint      `json:"product_id" gorm:"not null;index"`
	URL       string    `json:"url" gorm:"not null"`
	Position  int       `json:"position" gorm:"default:0"`
	CreatedAt time.Time `json:"created_at"`
}

// StoreSettings holds the store branding and contact details. A single
// row is kept; the settings controller upserts it.
type StoreSettings struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	StoreName      string    `json:"store_name"`
	LogoURL        string    `json:"logo_url"`
	ContactEmail   string    `json:"contact_email"`
	ContactPhone   string    `json:"contact_phone"`
	WhatsAppNumber string    `json:"whatsapp_number"`
	Address        string    `json:"address"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// Statistic tracks storefront visits per day
type Statistic struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	Date          time.Time `json:"date" gorm:"uniqueIndex;not null"`
	VisitorsCount int       `json:"visitors_count" gorm:"default:0"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
