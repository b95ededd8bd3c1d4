package controllers

import (
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
	"golang.org/x/crypto/bcrypt"

	"github.com/mataajer/souq-api/config"
	"github.com/mataajer/souq-api/models"
	"github.com/mataajer/souq-api/utils"
)

// AdminLoginRequest represents the admin login request
type AdminLoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AdminLogin handles admin authentication
func AdminLogin(c *gin.Context) {
	utils.LogInfo("AdminLogin called")
	var req AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid login request: %v", err)
		utils.BadRequest(c, "Invalid input", err.Error())
		return
	}

	var admin models.Admin
	if err := config.DB.Where("email = ?", req.Email).First(&admin).Error; err != nil {
		utils.LogError("Admin not found for email: %s", req.Email)
		utils.Unauthorized(c, "Invalid credentials")
		return
	}

	if !admin.IsActive {
		utils.LogError("Inactive admin account attempted login: %s", admin.Email)
		utils.Forbidden(c, "Admin account is inactive")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(req.Password)); err != nil {
		utils.LogError("Invalid password for admin: %s", admin.Email)
		utils.Unauthorized(c, "Invalid credentials")
		return
	}

	admin.LastLogin = time.Now()
	if err := config.DB.Save(&admin).Error; err != nil {
		utils.LogError("Failed to update last login for admin %s: %v", admin.Email, err)
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"admin_id": admin.ID,
		"exp":      time.Now().Add(time.Hour * 24).Unix(),
	})

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		utils.LogError("JWT secret not configured")
		utils.InternalServerError(c, "JWT secret not configured", nil)
		return
	}

	tokenString, err := token.SignedString([]byte(jwtSecret))
	if err != nil {
		utils.LogError("Failed to sign JWT token for admin %s: %v", admin.Email, err)
		utils.InternalServerError(c, "Failed to generate token", err.Error())
		return
	}

	utils.LogInfo("Admin login successful: %s", admin.Email)
	utils.Success(c, "Login successful", gin.H{
		"token": tokenString,
		"admin": gin.H{
			"id":    admin.ID,
			"email": admin.Email,
		},
	})
}

// UpdateAdminCredentialsRequest carries an email and/or password change
type UpdateAdminCredentialsRequest struct {
	Email           string `json:"email" binding:"omitempty,email"`
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"omitempty,min=8"`
}

// UpdateAdminCredentials lets the logged-in admin change email or password
func UpdateAdminCredentials(c *gin.Context) {
	utils.LogInfo("UpdateAdminCredentials called")

	admin, ok := adminFromContext(c)
	if !ok {
		return
	}

	var req UpdateAdminCredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid input: %v", err)
		utils.BadRequest(c, "Invalid input", err.Error())
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(req.CurrentPassword)); err != nil {
		utils.LogError("Wrong current password for admin: %s", admin.Email)
		utils.Unauthorized(c, "Current password is incorrect")
		return
	}

	if req.Email != "" {
		admin.Email = req.Email
	}
	if req.NewPassword != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
		if err != nil {
			utils.LogError("Failed to hash new password: %v", err)
			utils.InternalServerError(c, "Failed to update credentials", nil)
			return
		}
		admin.Password = string(hashed)
	}

	if err := config.DB.Save(&admin).Error; err != nil {
		utils.LogError("Failed to update admin credentials: %v", err)
		utils.InternalServerError(c, "Failed to update credentials", err.Error())
		return
	}

	utils.LogInfo("Admin credentials updated: %s", admin.Email)
	utils.Success(c, "Credentials updated successfully", gin.H{"email": admin.Email})
}

// CreateSampleAdmin seeds the back-office admin from the environment
// when no admin exists yet.
func CreateSampleAdmin() error {
	utils.LogInfo("CreateSampleAdmin called")

	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		utils.LogDebug("ADMIN_EMAIL/ADMIN_PASSWORD not set, skipping admin seed")
		return nil
	}

	var count int64
	if err := config.DB.Model(&models.Admin{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return utils.WrapError(err, "failed to check for existing admin")
	}
	if count > 0 {
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return utils.WrapError(err, "failed to hash admin password")
	}

	admin := models.Admin{
		Email:    email,
		Password: string(hashed),
		IsActive: true,
	}
	if err := config.DB.Create(&admin).Error; err != nil {
		return utils.WrapError(err, "failed to create admin")
	}

	utils.LogInfo("Seeded admin account: %s", email)
	return nil
}

// adminFromContext pulls the authenticated admin out of the gin context
// and writes the error response itself when it is missing.
func adminFromContext(c *gin.Context) (models.Admin, bool) {
	value, exists := c.Get("admin")
	if !exists {
		utils.LogError("Admin not found in context")
		utils.Unauthorized(c, "Admin not found in context")
		return models.Admin{}, false
	}
	admin, ok := value.(models.Admin)
	if !ok {
		utils.LogError("Invalid admin type in context")
		utils.InternalServerError(c, "Invalid admin type", nil)
		return models.Admin{}, false
	}
	return admin, true
}
