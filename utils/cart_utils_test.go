package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddCartItem(t *testing.T) {
	items := AddCartItem(nil, CartItem{ProductID: 1, Name: "a", Price: 10, Quantity: 2})
	require.Len(t, items, 1)

	t.Run("existing product bumps quantity", func(t *testing.T) {
		items = AddCartItem(items, CartItem{ProductID: 1, Price: 10, Quantity: 3})
		require.Len(t, items, 1)
		assert.Equal(t, 5, items[0].Quantity)
	})

	t.Run("new product appends a line", func(t *testing.T) {
		items = AddCartItem(items, CartItem{ProductID: 2, Price: 4.5, Quantity: 1})
		require.Len(t, items, 2)
	})
}

func TestSetCartItemQuantity(t *testing.T) {
	items := []CartItem{{ProductID: 1, Quantity: 2}, {ProductID: 2, Quantity: 1}}

	items = SetCartItemQuantity(items, 1, 7)
	assert.Equal(t, 7, items[0].Quantity)

	t.Run("zero quantity removes the line", func(t *testing.T) {
		items = SetCartItemQuantity(items, 2, 0)
		require.Len(t, items, 1)
		assert.Equal(t, uint(1), items[0].ProductID)
	})

	t.Run("unknown product is a no-op", func(t *testing.T) {
		before := len(items)
		items = SetCartItemQuantity(items, 99, 3)
		assert.Len(t, items, before)
	})
}

func TestRemoveCartItem(t *testing.T) {
	items := []CartItem{{ProductID: 1}, {ProductID: 2}, {ProductID: 3}}
	items = RemoveCartItem(items, 2)
	require.Len(t, items, 2)
	assert.Equal(t, uint(1), items[0].ProductID)
	assert.Equal(t, uint(3), items[1].ProductID)
}

func TestCartTotals(t *testing.T) {
	items := []CartItem{
		{ProductID: 1, Price: 10.5, Quantity: 2},
		{ProductID: 2, Price: 3, Quantity: 4},
	}
	assert.Equal(t, 33.0, CartTotal(items))
	assert.Equal(t, 6, CartCount(items))

	assert.Equal(t, 0.0, CartTotal(nil))
	assert.Equal(t, 0, CartCount(nil))
}
