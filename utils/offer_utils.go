package utils

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/mataajer/souq-api/config"
	"github.com/mataajer/souq-api/models"
)

// OfferedProduct is a product together with the promotional pricing the
// storefront should render. When an offer applies, Price holds the
// discounted value, OldPrice/OriginalPrice hold the pre-discount price
// and AppliedOffer carries the winning offer for badge and expiry text.
// The underlying product record is copied, never modified.
type OfferedProduct struct {
	models.Product
	OriginalPrice *float64      `json:"original_price,omitempty"`
	AppliedOffer  *models.Offer `json:"applied_offer,omitempty"`
}

// BestOffer pairs the winning offer with the price it produces.
type BestOffer struct {
	Offer models.Offer
	Price float64
}

// IsOfferActive reports whether the offer is switched on and its date
// window contains now. Both window ends are inclusive. Offers with a
// missing start or end date are treated as never active.
func IsOfferActive(offer models.Offer, now time.Time) bool {
	if !offer.IsActive {
		return false
	}
	if offer.StartDate.IsZero() || offer.EndDate.IsZero() {
		return false
	}
	return !offer.StartDate.After(now) && !offer.EndDate.Before(now)
}

// OfferAppliesTo reports whether the offer's target scope matches the
// product. An empty scope counts as "all". Category and product scopes
// require the matching target reference; without one the offer applies
// to nothing, and so does an unrecognized scope.
func OfferAppliesTo(offer models.Offer, product models.Product) bool {
	switch offer.TargetType {
	case "", models.OfferTargetAll:
		return true
	case models.OfferTargetCategory:
		return offer.TargetCategoryID != nil && *offer.TargetCategoryID == product.CategoryID
	case models.OfferTargetProduct:
		return offer.TargetProductID != nil && *offer.TargetProductID == product.ID
	}
	return false
}

// DiscountedPrice returns the price after applying the offer to
// basePrice, rounded to two decimal places (half away from zero).
// Amount discounts floor at zero. An offer that is not active at now,
// or that carries no usable discount, leaves the price unchanged.
func DiscountedPrice(basePrice float64, offer models.Offer, now time.Time) float64 {
	if !IsOfferActive(offer, now) {
		return basePrice
	}
	if offer.DiscountValue <= 0 {
		return basePrice
	}

	base := decimal.NewFromFloat(basePrice)
	switch offer.DiscountType {
	case models.DiscountTypePercentage:
		discount := base.Mul(decimal.NewFromFloat(offer.DiscountValue)).Div(decimal.NewFromInt(100))
		result, _ := base.Sub(discount).Round(2).Float64()
		return result
	case models.DiscountTypeAmount:
		result := base.Sub(decimal.NewFromFloat(offer.DiscountValue)).Round(2)
		if result.IsNegative() {
			return 0
		}
		f, _ := result.Float64()
		return f
	}
	return basePrice
}

// SelectBestOffer picks the offer producing the lowest discounted price
// among the offers active at now and applicable to the product. Returns
// nil when nothing applies. Comparison is strict, so the first offer in
// input order wins ties, and an offer that does not actually lower the
// price is never selected.
func SelectBestOffer(product models.Product, offers []models.Offer, now time.Time) *BestOffer {
	var best *BestOffer
	lowest := product.Price
	for _, offer := range offers {
		if !IsOfferActive(offer, now) {
			continue
		}
		if !OfferAppliesTo(offer, product) {
			continue
		}
		price := DiscountedPrice(product.Price, offer, now)
		if price < lowest {
			lowest = price
			best = &BestOffer{Offer: offer, Price: price}
		}
	}
	return best
}

// ApplyOffersToProduct decorates a single product with the best
// applicable offer, if any. The input product is left untouched.
func ApplyOffersToProduct(product models.Product, offers []models.Offer, now time.Time) OfferedProduct {
	best := SelectBestOffer(product, offers, now)
	if best == nil {
		return OfferedProduct{Product: product}
	}

	base := product.Price
	winner := best.Offer
	decorated := OfferedProduct{Product: product}
	decorated.Price = best.Price
	decorated.OldPrice = &base
	decorated.OriginalPrice = &base
	decorated.AppliedOffer = &winner
	return decorated
}

// ApplyOffersToProducts decorates every product in the list, preserving
// order and cardinality. Inactive offers are filtered out once up front
// instead of once per product.
func ApplyOffersToProducts(products []models.Product, offers []models.Offer, now time.Time) []OfferedProduct {
	active := make([]models.Offer, 0, len(offers))
	for _, offer := range offers {
		if IsOfferActive(offer, now) {
			active = append(active, offer)
		}
	}

	result := make([]OfferedProduct, len(products))
	for i, product := range products {
		if len(active) == 0 {
			result[i] = OfferedProduct{Product: product}
			continue
		}
		result[i] = ApplyOffersToProduct(product, active, now)
	}
	return result
}

// FetchActiveOffers loads the offers active right now. The date window
// is re-checked in Go so the predicate stays the single source of truth
// for what "active" means.
func FetchActiveOffers() ([]models.Offer, error) {
	now := time.Now()
	var offers []models.Offer
	if err := config.DB.Where("is_active = ?", true).Find(&offers).Error; err != nil {
		return nil, err
	}
	active := make([]models.Offer, 0, len(offers))
	for _, offer := range offers {
		if IsOfferActive(offer, now) {
			active = append(active, offer)
		}
	}
	return active, nil
}
