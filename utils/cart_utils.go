package utils

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const cartSessionKey = "cart"

// CartItem is one line of a visitor's cart, kept in the cookie session.
// Price is the effective (offer-adjusted) price at the time the item
// was added; checkout re-reads it from the snapshot.
type CartItem struct {
	ProductID uint    `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	Image     string  `json:"image"`
}

// AddCartItem merges an item into the cart, bumping the quantity when
// the product is already present.
func AddCartItem(items []CartItem, item CartItem) []CartItem {
	for i := range items {
		if items[i].ProductID == item.ProductID {
			items[i].Quantity += item.Quantity
			return items
		}
	}
	return append(items, item)
}

// SetCartItemQuantity updates the quantity of a product already in the
// cart. Quantities below one remove the line.
func SetCartItemQuantity(items []CartItem, productID uint, quantity int) []CartItem {
	if quantity < 1 {
		return RemoveCartItem(items, productID)
	}
	for i := range items {
		if items[i].ProductID == productID {
			items[i].Quantity = quantity
			break
		}
	}
	return items
}

// RemoveCartItem drops a product from the cart.
func RemoveCartItem(items []CartItem, productID uint) []CartItem {
	result := items[:0]
	for _, item := range items {
		if item.ProductID != productID {
			result = append(result, item)
		}
	}
	return result
}

// CartTotal returns the cart's total price.
func CartTotal(items []CartItem) float64 {
	var total float64
	for _, item := range items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}

// CartCount returns the number of units in the cart.
func CartCount(items []CartItem) int {
	var count int
	for _, item := range items {
		count += item.Quantity
	}
	return count
}

// GetSessionCart loads the cart from the visitor's session.
func GetSessionCart(c *gin.Context) []CartItem {
	session := sessions.Default(c)
	if items, ok := session.Get(cartSessionKey).([]CartItem); ok {
		return items
	}
	return nil
}

// SaveSessionCart stores the cart back into the session.
func SaveSessionCart(c *gin.Context, items []CartItem) error {
	session := sessions.Default(c)
	session.Set(cartSessionKey, items)
	return session.Save()
}

// ClearSessionCart empties the visitor's cart.
func ClearSessionCart(c *gin.Context) error {
	session := sessions.Default(c)
	session.Delete(cartSessionKey)
	return session.Save()
}
