package controllers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mataajer/souq-api/config"
	"github.com/mataajer/souq-api/models"
	"github.com/mataajer/souq-api/utils"
)

// OfferRequest represents the offer creation/update request
type OfferRequest struct {
	Title         string  `json:"title" binding:"required,min=2,max=200"`
	Description   string  `json:"description"`
	DiscountType  string  `json:"discount_type" binding:"required,oneof=percentage amount"`
	DiscountValue float64 `json:"discount_value" binding:"required,gt=0"`
	TargetType    string  `json:"target_type" binding:"required,oneof=all category product"`
	TargetID      *uint   `json:"target_id"`
	StartDate     string  `json:"start_date" binding:"required"` // RFC3339
	EndDate       string  `json:"end_date" binding:"required"`
	IsActive      *bool   `json:"is_active"`
}

// validateOfferRequest enforces the rules the offer engine relies on:
// percentage discounts stay within (0,100], scoped offers carry an
// existing target, unscoped offers carry none, and the window is
// ordered. Returns field errors suitable for the 422 envelope.
func validateOfferRequest(req OfferRequest) (start, end time.Time, errs utils.FieldValidationErrors) {
	if req.DiscountType == models.DiscountTypePercentage && req.DiscountValue > 100 {
		errs = append(errs, utils.FieldValidationError{
			Field:   "discount_value",
			Message: "Percentage discount must be between 0 and 100",
		})
	}

	switch req.TargetType {
	case models.OfferTargetAll:
		if req.TargetID != nil {
			errs = append(errs, utils.FieldValidationError{
				Field:   "target_id",
				Message: "Offers targeting all products must not carry a target",
			})
		}
	case models.OfferTargetCategory:
		if req.TargetID == nil {
			errs = append(errs, utils.FieldValidationError{
				Field:   "target_id",
				Message: "Category offers require a target category",
			})
		} else if err := config.DB.First(&models.Category{}, *req.TargetID).Error; err != nil {
			errs = append(errs, utils.FieldValidationError{
				Field:   "target_id",
				Message: "Target category not found",
			})
		}
	case models.OfferTargetProduct:
		if req.TargetID == nil {
			errs = append(errs, utils.FieldValidationError{
				Field:   "target_id",
				Message: "Product offers require a target product",
			})
		} else if err := config.DB.First(&models.Product{}, *req.TargetID).Error; err != nil {
			errs = append(errs, utils.FieldValidationError{
				Field:   "target_id",
				Message: "Target product not found",
			})
		}
	}

	var err1, err2 error
	start, err1 = time.Parse(time.RFC3339, req.StartDate)
	end, err2 = time.Parse(time.RFC3339, req.EndDate)
	if err1 != nil {
		errs = append(errs, utils.FieldValidationError{Field: "start_date", Message: "Invalid date format. Use RFC3339"})
	}
	if err2 != nil {
		errs = append(errs, utils.FieldValidationError{Field: "end_date", Message: "Invalid date format. Use RFC3339"})
	}
	if err1 == nil && err2 == nil && end.Before(start) {
		errs = append(errs, utils.FieldValidationError{Field: "end_date", Message: "End date must not be before start date"})
	}

	return start, end, errs
}

func offerFromRequest(req OfferRequest, start, end time.Time) models.Offer {
	offer := models.Offer{
		Title:         req.Title,
		Description:   utils.SanitizeString(req.Description),
		DiscountType:  req.DiscountType,
		DiscountValue: req.DiscountValue,
		TargetType:    req.TargetType,
		StartDate:     start,
		EndDate:       end,
		IsActive:      true,
	}
	switch req.TargetType {
	case models.OfferTargetCategory:
		offer.TargetCategoryID = req.TargetID
	case models.OfferTargetProduct:
		offer.TargetProductID = req.TargetID
	}
	if req.IsActive != nil {
		offer.IsActive = *req.IsActive
	}
	return offer
}

// ListOffers returns all offers for the back office, newest first
func ListOffers(c *gin.Context) {
	utils.LogInfo("ListOffers called")

	if _, ok := adminFromContext(c); !ok {
		return
	}

	var offers []models.Offer
	if err := config.DB.Order("created_at DESC").Find(&offers).Error; err != nil {
		utils.LogError("Failed to fetch offers: %v", err)
		utils.InternalServerError(c, "Failed to fetch offers", err.Error())
		return
	}

	utils.Success(c, "Offers retrieved successfully", gin.H{"offers": offers})
}

// CreateOffer handles offer creation
func CreateOffer(c *gin.Context) {
	utils.LogInfo("CreateOffer called")

	if _, ok := adminFromContext(c); !ok {
		return
	}

	var req OfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid input: %v", err)
		utils.BadRequest(c, "Invalid input", err.Error())
		return
	}

	start, end, errs := validateOfferRequest(req)
	if len(errs) > 0 {
		utils.LogError("Offer validation failed: %v", errs)
		utils.ValidationError(c, "Invalid offer", errs)
		return
	}

	offer := offerFromRequest(req, start, end)
	if err := config.DB.Create(&offer).Error; err != nil {
		utils.LogError("Failed to create offer: %v", err)
		utils.InternalServerError(c, "Failed to create offer", err.Error())
		return
	}

	utils.LogInfo("Offer created successfully: %s", offer.Title)
	utils.Created(c, "Offer created successfully", gin.H{"offer": offer})
}

// UpdateOffer handles offer updates
func UpdateOffer(c *gin.Context) {
	utils.LogInfo("UpdateOffer called")

	if _, ok := adminFromContext(c); !ok {
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.LogError("Invalid offer ID format: %v", err)
		utils.BadRequest(c, "Invalid offer ID format", "Offer ID must be a valid number")
		return
	}

	var offer models.Offer
	if err := config.DB.First(&offer, id).Error; err != nil {
		utils.LogError("Offer not found: %v", err)
		utils.NotFound(c, "Offer not found")
		return
	}

	var req OfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid input: %v", err)
		utils.BadRequest(c, "Invalid input", err.Error())
		return
	}

	start, end, errs := validateOfferRequest(req)
	if len(errs) > 0 {
		utils.LogError("Offer validation failed: %v", errs)
		utils.ValidationError(c, "Invalid offer", errs)
		return
	}

	updated := offerFromRequest(req, start, end)
	updated.Model = offer.Model
	if req.IsActive == nil {
		updated.IsActive = offer.IsActive
	}

	// Save with Select so a cleared target reference is written as NULL
	if err := config.DB.Model(&offer).Select("*").Omit("created_at").Updates(&updated).Error; err != nil {
		utils.LogError("Failed to update offer: %v", err)
		utils.InternalServerError(c, "Failed to update offer", err.Error())
		return
	}

	utils.LogInfo("Offer updated successfully: %s", updated.Title)
	utils.Success(c, "Offer updated successfully", gin.H{"offer": updated})
}

// DeleteOffer handles offer deletion
func DeleteOffer(c *gin.Context) {
	utils.LogInfo("DeleteOffer called")

	if _, ok := adminFromContext(c); !ok {
		return
	}

	result := config.DB.Delete(&models.Offer{}, c.Param("id"))
	if result.Error != nil {
		utils.LogError("Failed to delete offer: %v", result.Error)
		utils.InternalServerError(c, "Failed to delete offer", result.Error.Error())
		return
	}
	if result.RowsAffected == 0 {
		utils.NotFound(c, "Offer not found")
		return
	}

	utils.LogInfo("Offer deleted")
	utils.Success(c, "Offer deleted successfully", nil)
}
