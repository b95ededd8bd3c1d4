package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/mataajer/souq-api/config"
	"github.com/mataajer/souq-api/models"
	"github.com/mataajer/souq-api/utils"
)

// GetSettings returns the store branding and contact details for the
// storefront header, footer and WhatsApp button.
func GetSettings(c *gin.Context) {
	utils.LogInfo("GetSettings called")

	var settings models.StoreSettings
	if err := config.DB.First(&settings).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.Success(c, "Settings retrieved successfully", gin.H{"settings": models.StoreSettings{}})
			return
		}
		utils.LogError("Failed to fetch settings: %v", err)
		utils.InternalServerError(c, "Failed to fetch settings", err.Error())
		return
	}

	utils.Success(c, "Settings retrieved successfully", gin.H{"settings": settings})
}

// SettingsRequest represents the branding/contact update request
type SettingsRequest struct {
	StoreName      string `json:"store_name" binding:"required,min=2,max=100"`
	LogoURL        string `json:"logo_url"`
	ContactEmail   string `json:"contact_email" binding:"omitempty,email"`
	ContactPhone   string `json:"contact_phone"`
	WhatsAppNumber string `json:"whatsapp_number"`
	Address        string `json:"address"`
}

// UpdateSettings upserts the single settings row
func UpdateSettings(c *gin.Context) {
	utils.LogInfo("UpdateSettings called")

	if _, ok := adminFromContext(c); !ok {
		return
	}

	var req SettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid input: %v", err)
		utils.BadRequest(c, "Invalid input", err.Error())
		return
	}

	if req.ContactPhone != "" {
		if ok, msg := utils.ValidatePhone(req.ContactPhone); !ok {
			utils.ValidationError(c, "Invalid phone number", gin.H{"contact_phone": msg})
			return
		}
	}

	var settings models.StoreSettings
	err := config.DB.First(&settings).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.LogError("Failed to fetch settings: %v", err)
		utils.InternalServerError(c, "Failed to update settings", err.Error())
		return
	}

	settings.StoreName = utils.SanitizeString(req.StoreName)
	settings.ContactEmail = req.ContactEmail
	settings.ContactPhone = req.ContactPhone
	settings.WhatsAppNumber = req.WhatsAppNumber
	settings.Address = utils.SanitizeString(req.Address)
	if req.LogoURL != "" {
		settings.LogoURL = req.LogoURL
	}

	if err := config.DB.Save(&settings).Error; err != nil {
		utils.LogError("Failed to save settings: %v", err)
		utils.InternalServerError(c, "Failed to update settings", err.Error())
		return
	}

	utils.LogInfo("Store settings updated")
	utils.Success(c, "Settings updated successfully", gin.H{"settings": settings})
}

// UploadLogo stores an uploaded logo and records its URL
func UploadLogo(c *gin.Context) {
	utils.LogInfo("UploadLogo called")

	if _, ok := adminFromContext(c); !ok {
		return
	}

	file, err := c.FormFile("logo")
	if err != nil {
		utils.LogError("No logo in request: %v", err)
		utils.BadRequest(c, "Logo file is required", err.Error())
		return
	}

	path, err := utils.SaveUploadedFile(file, "uploads/store")
	if err != nil {
		utils.LogError("Failed to save logo: %v", err)
		utils.BadRequest(c, "Failed to save logo", err.Error())
		return
	}

	var settings models.StoreSettings
	dbErr := config.DB.First(&settings).Error
	if dbErr != nil && !errors.Is(dbErr, gorm.ErrRecordNotFound) {
		utils.LogError("Failed to fetch settings: %v", dbErr)
		utils.InternalServerError(c, "Failed to update logo", dbErr.Error())
		return
	}
	settings.LogoURL = "/" + path
	if err := config.DB.Save(&settings).Error; err != nil {
		utils.LogError("Failed to save logo URL: %v", err)
		utils.InternalServerError(c, "Failed to update logo", err.Error())
		return
	}

	utils.LogInfo("Store logo updated: %s", settings.LogoURL)
	utils.Created(c, "Logo uploaded successfully", gin.H{"url": settings.LogoURL})
}
