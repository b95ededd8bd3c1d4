package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOfferHasTarget(t *testing.T) {
	id := uint(5)

	assert.True(t, Offer{TargetType: OfferTargetAll}.HasTarget())
	assert.True(t, Offer{TargetType: ""}.HasTarget())

	assert.False(t, Offer{TargetType: OfferTargetCategory}.HasTarget())
	assert.True(t, Offer{TargetType: OfferTargetCategory, TargetCategoryID: &id}.HasTarget())

	assert.False(t, Offer{TargetType: OfferTargetProduct}.HasTarget())
	assert.True(t, Offer{TargetType: OfferTargetProduct, TargetProductID: &id}.HasTarget())
}

func TestValidOrderStatus(t *testing.T) {
	for _, status := range []string{OrderStatusProcessing, OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled} {
		assert.True(t, ValidOrderStatus(status))
	}
	assert.False(t, ValidOrderStatus("pending"))
	assert.False(t, ValidOrderStatus(""))
}

func TestOrderItemTotal(t *testing.T) {
	item := OrderItem{Price: 12.5, Quantity: 3}
	assert.Equal(t, 37.5, item.Total())
}
