package controllers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mataajer/souq-api/config"
	"github.com/mataajer/souq-api/models"
	"github.com/mataajer/souq-api/utils"
)

// GetActiveOffers returns the offers currently running, together with
// the offer-adjusted products they touch, for the special-offers page.
func GetActiveOffers(c *gin.Context) {
	utils.LogInfo("GetActiveOffers called")

	offers, err := utils.FetchActiveOffers()
	if err != nil {
		utils.LogError("Failed to fetch offers: %v", err)
		utils.InternalServerError(c, "Failed to fetch offers", err.Error())
		return
	}

	if len(offers) == 0 {
		utils.Success(c, "Active offers retrieved successfully", gin.H{
			"offers":   []models.Offer{},
			"products": []utils.OfferedProduct{},
		})
		return
	}

	var products []models.Product
	if err := config.DB.Preload("Images").Preload("Category").Find(&products).Error; err != nil {
		utils.LogError("Failed to fetch products: %v", err)
		utils.InternalServerError(c, "Failed to fetch products", err.Error())
		return
	}

	// Only products an offer actually lowered belong on the page
	decorated := utils.ApplyOffersToProducts(products, offers, time.Now())
	discounted := make([]utils.OfferedProduct, 0, len(decorated))
	for _, product := range decorated {
		if product.AppliedOffer != nil {
			discounted = append(discounted, product)
		}
	}

	utils.Success(c, "Active offers retrieved successfully", gin.H{
		"offers":   offers,
		"products": discounted,
	})
}
