package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/mataajer/souq-api/models"
)

var testNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func uintPtr(v uint) *uint { return &v }

func testProduct(id uint, price float64, categoryID uint) models.Product {
	return models.Product{
		Model:      gorm.Model{ID: id},
		Name:       "product",
		Price:      price,
		CategoryID: categoryID,
		InStock:    true,
	}
}

func percentOffer(id uint, percent float64) models.Offer {
	return models.Offer{
		Model:         gorm.Model{ID: id},
		Title:         "percent offer",
		DiscountType:  models.DiscountTypePercentage,
		DiscountValue: percent,
		TargetType:    models.OfferTargetAll,
		StartDate:     testNow.AddDate(0, 0, -7),
		EndDate:       testNow.AddDate(0, 0, 7),
		IsActive:      true,
	}
}

func amountOffer(id uint, amount float64) models.Offer {
	offer := percentOffer(id, 0)
	offer.Title = "amount offer"
	offer.DiscountType = models.DiscountTypeAmount
	offer.DiscountValue = amount
	return offer
}

func TestIsOfferActive(t *testing.T) {
	t.Run("active inside window", func(t *testing.T) {
		assert.True(t, IsOfferActive(percentOffer(1, 10), testNow))
	})

	t.Run("window bounds are inclusive", func(t *testing.T) {
		offer := percentOffer(1, 10)
		assert.True(t, IsOfferActive(offer, offer.StartDate))
		assert.True(t, IsOfferActive(offer, offer.EndDate))
	})

	t.Run("not yet started", func(t *testing.T) {
		offer := percentOffer(1, 10)
		offer.StartDate = testNow.AddDate(0, 0, 1)
		assert.False(t, IsOfferActive(offer, testNow))
	})

	t.Run("already ended", func(t *testing.T) {
		offer := percentOffer(1, 10)
		offer.EndDate = testNow.AddDate(0, 0, -1)
		assert.False(t, IsOfferActive(offer, testNow))
	})

	t.Run("switched off wins over window", func(t *testing.T) {
		offer := percentOffer(1, 10)
		offer.IsActive = false
		assert.False(t, IsOfferActive(offer, testNow))
	})

	t.Run("missing dates never active", func(t *testing.T) {
		offer := percentOffer(1, 10)
		offer.StartDate = time.Time{}
		assert.False(t, IsOfferActive(offer, testNow))

		offer = percentOffer(1, 10)
		offer.EndDate = time.Time{}
		assert.False(t, IsOfferActive(offer, testNow))
	})
}

func TestOfferAppliesTo(t *testing.T) {
	product := testProduct(7, 100, 3)

	t.Run("all scope applies to everything", func(t *testing.T) {
		offer := percentOffer(1, 10)
		assert.True(t, OfferAppliesTo(offer, product))
	})

	t.Run("empty scope treated as all", func(t *testing.T) {
		offer := percentOffer(1, 10)
		offer.TargetType = ""
		assert.True(t, OfferAppliesTo(offer, product))
	})

	t.Run("category scope matches category only", func(t *testing.T) {
		offer := percentOffer(1, 10)
		offer.TargetType = models.OfferTargetCategory
		offer.TargetCategoryID = uintPtr(3)
		assert.True(t, OfferAppliesTo(offer, product))

		offer.TargetCategoryID = uintPtr(4)
		assert.False(t, OfferAppliesTo(offer, product))
	})

	t.Run("product scope matches product only", func(t *testing.T) {
		offer := percentOffer(1, 10)
		offer.TargetType = models.OfferTargetProduct
		offer.TargetProductID = uintPtr(7)
		assert.True(t, OfferAppliesTo(offer, product))

		offer.TargetProductID = uintPtr(8)
		assert.False(t, OfferAppliesTo(offer, product))
	})

	t.Run("scoped offer without target applies to nothing", func(t *testing.T) {
		offer := percentOffer(1, 10)
		offer.TargetType = models.OfferTargetCategory
		offer.TargetCategoryID = nil
		assert.False(t, OfferAppliesTo(offer, product))

		offer.TargetType = models.OfferTargetProduct
		assert.False(t, OfferAppliesTo(offer, product))
	})

	t.Run("unknown scope fails closed", func(t *testing.T) {
		offer := percentOffer(1, 10)
		offer.TargetType = "segment"
		assert.False(t, OfferAppliesTo(offer, product))
	})
}

func TestDiscountedPrice(t *testing.T) {
	t.Run("percentage discount", func(t *testing.T) {
		assert.Equal(t, 80.0, DiscountedPrice(100, percentOffer(1, 20), testNow))
	})

	t.Run("amount discount", func(t *testing.T) {
		assert.Equal(t, 150.0, DiscountedPrice(200, amountOffer(1, 50), testNow))
	})

	t.Run("amount discount floors at zero", func(t *testing.T) {
		assert.Equal(t, 0.0, DiscountedPrice(50, amountOffer(1, 80), testNow))
	})

	t.Run("rounds half away from zero to two decimals", func(t *testing.T) {
		// 10.01 - 15% = 8.5085 -> 8.51
		assert.Equal(t, 8.51, DiscountedPrice(10.01, percentOffer(1, 15), testNow))
		// 100 - 33.333% = 66.667 -> 66.67
		assert.Equal(t, 66.67, DiscountedPrice(100, percentOffer(1, 33.333), testNow))
	})

	t.Run("inactive offer leaves price unchanged", func(t *testing.T) {
		offer := percentOffer(1, 20)
		offer.IsActive = false
		assert.Equal(t, 100.0, DiscountedPrice(100, offer, testNow))

		offer = percentOffer(1, 20)
		offer.EndDate = testNow.AddDate(0, 0, -1)
		assert.Equal(t, 100.0, DiscountedPrice(100, offer, testNow))
	})

	t.Run("unknown discount type leaves price unchanged", func(t *testing.T) {
		offer := percentOffer(1, 20)
		offer.DiscountType = "bogo"
		assert.Equal(t, 100.0, DiscountedPrice(100, offer, testNow))
	})

	t.Run("non-positive value leaves price unchanged", func(t *testing.T) {
		assert.Equal(t, 100.0, DiscountedPrice(100, percentOffer(1, 0), testNow))
		assert.Equal(t, 100.0, DiscountedPrice(100, amountOffer(1, -5), testNow))
	})
}

func TestSelectBestOffer(t *testing.T) {
	product := testProduct(7, 100, 3)

	t.Run("no offers", func(t *testing.T) {
		assert.Nil(t, SelectBestOffer(product, nil, testNow))
	})

	t.Run("picks the lowest resulting price", func(t *testing.T) {
		offers := []models.Offer{percentOffer(1, 10), amountOffer(2, 20)}
		best := SelectBestOffer(product, offers, testNow)
		require.NotNil(t, best)
		assert.Equal(t, uint(2), best.Offer.ID)
		assert.Equal(t, 80.0, best.Price)

		// Every other applicable offer yields a price >= the winner's.
		for _, offer := range offers {
			assert.GreaterOrEqual(t, DiscountedPrice(product.Price, offer, testNow), best.Price)
		}
	})

	t.Run("first offer wins ties", func(t *testing.T) {
		offers := []models.Offer{percentOffer(1, 20), amountOffer(2, 20)}
		best := SelectBestOffer(product, offers, testNow)
		require.NotNil(t, best)
		assert.Equal(t, uint(1), best.Offer.ID)
		assert.Equal(t, 80.0, best.Price)
	})

	t.Run("inactive and non-applicable offers are skipped", func(t *testing.T) {
		expired := percentOffer(1, 50)
		expired.EndDate = testNow.AddDate(0, 0, -2)
		otherCategory := percentOffer(2, 40)
		otherCategory.TargetType = models.OfferTargetCategory
		otherCategory.TargetCategoryID = uintPtr(99)

		best := SelectBestOffer(product, []models.Offer{expired, otherCategory, percentOffer(3, 10)}, testNow)
		require.NotNil(t, best)
		assert.Equal(t, uint(3), best.Offer.ID)
		assert.Equal(t, 90.0, best.Price)
	})

	t.Run("offer with no price effect is never selected", func(t *testing.T) {
		offer := percentOffer(1, 20)
		offer.DiscountType = ""
		assert.Nil(t, SelectBestOffer(product, []models.Offer{offer}, testNow))
	})
}

func TestApplyOffersToProduct(t *testing.T) {
	t.Run("decorates with winning offer", func(t *testing.T) {
		product := testProduct(7, 100, 3)
		decorated := ApplyOffersToProduct(product, []models.Offer{percentOffer(1, 20)}, testNow)

		assert.Equal(t, 80.0, decorated.Price)
		require.NotNil(t, decorated.OldPrice)
		assert.Equal(t, 100.0, *decorated.OldPrice)
		require.NotNil(t, decorated.OriginalPrice)
		assert.Equal(t, 100.0, *decorated.OriginalPrice)
		require.NotNil(t, decorated.AppliedOffer)
		assert.Equal(t, uint(1), decorated.AppliedOffer.ID)
	})

	t.Run("returns product unchanged when nothing applies", func(t *testing.T) {
		product := testProduct(7, 100, 3)
		expired := percentOffer(1, 20)
		expired.EndDate = testNow.AddDate(0, 0, -1)

		decorated := ApplyOffersToProduct(product, []models.Offer{expired}, testNow)
		assert.Equal(t, 100.0, decorated.Price)
		assert.Nil(t, decorated.OldPrice)
		assert.Nil(t, decorated.AppliedOffer)
	})

	t.Run("never mutates its inputs", func(t *testing.T) {
		product := testProduct(7, 100, 3)
		offers := []models.Offer{percentOffer(1, 20)}
		_ = ApplyOffersToProduct(product, offers, testNow)

		assert.Equal(t, 100.0, product.Price)
		assert.Nil(t, product.OldPrice)
		assert.Equal(t, 20.0, offers[0].DiscountValue)
	})

	t.Run("deterministic for identical inputs", func(t *testing.T) {
		product := testProduct(7, 99.99, 3)
		offers := []models.Offer{percentOffer(1, 12.5), amountOffer(2, 30)}

		first := ApplyOffersToProduct(product, offers, testNow)
		second := ApplyOffersToProduct(product, offers, testNow)
		assert.Equal(t, first, second)
	})

	t.Run("decorated price stays within bounds", func(t *testing.T) {
		product := testProduct(7, 25, 3)
		offers := []models.Offer{amountOffer(1, 500), percentOffer(2, 99)}
		decorated := ApplyOffersToProduct(product, offers, testNow)

		assert.GreaterOrEqual(t, decorated.Price, 0.0)
		assert.LessOrEqual(t, decorated.Price, product.Price)
	})
}

func TestApplyOffersToProducts(t *testing.T) {
	t.Run("empty offer list is an identity map", func(t *testing.T) {
		products := []models.Product{testProduct(1, 10, 1), testProduct(2, 20, 2)}
		decorated := ApplyOffersToProducts(products, nil, testNow)

		require.Len(t, decorated, 2)
		for i, d := range decorated {
			assert.Equal(t, products[i], d.Product)
			assert.Nil(t, d.AppliedOffer)
		}
	})

	t.Run("preserves order and cardinality, decorates only matches", func(t *testing.T) {
		products := []models.Product{
			testProduct(1, 100, 1),
			testProduct(2, 200, 2),
			testProduct(3, 300, 3),
		}
		offer := percentOffer(10, 25)
		offer.TargetType = models.OfferTargetProduct
		offer.TargetProductID = uintPtr(2)

		decorated := ApplyOffersToProducts(products, []models.Offer{offer}, testNow)
		require.Len(t, decorated, 3)
		assert.Equal(t, uint(1), decorated[0].ID)
		assert.Equal(t, uint(2), decorated[1].ID)
		assert.Equal(t, uint(3), decorated[2].ID)

		assert.Nil(t, decorated[0].AppliedOffer)
		require.NotNil(t, decorated[1].AppliedOffer)
		assert.Equal(t, 150.0, decorated[1].Price)
		assert.Nil(t, decorated[2].AppliedOffer)
	})

	t.Run("expired offers are filtered once up front", func(t *testing.T) {
		products := []models.Product{testProduct(1, 100, 1)}
		expired := percentOffer(10, 50)
		expired.StartDate = testNow.AddDate(0, 0, 1)
		expired.EndDate = testNow.AddDate(0, 0, 2)

		decorated := ApplyOffersToProducts(products, []models.Offer{expired}, testNow)
		require.Len(t, decorated, 1)
		assert.Equal(t, 100.0, decorated[0].Price)
		assert.Nil(t, decorated[0].AppliedOffer)
	})

	t.Run("category offer only touches its category", func(t *testing.T) {
		products := []models.Product{testProduct(1, 100, 1), testProduct(2, 100, 2)}
		offer := percentOffer(10, 10)
		offer.TargetType = models.OfferTargetCategory
		offer.TargetCategoryID = uintPtr(1)

		decorated := ApplyOffersToProducts(products, []models.Offer{offer}, testNow)
		assert.Equal(t, 90.0, decorated[0].Price)
		assert.Equal(t, 100.0, decorated[1].Price)
	})
}
