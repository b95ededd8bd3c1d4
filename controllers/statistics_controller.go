package controllers

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/mataajer/souq-api/config"
	"github.com/mataajer/souq-api/models"
	"github.com/mataajer/souq-api/utils"
)

// RecordVisit increments today's visitor counter
func RecordVisit(c *gin.Context) {
	utils.LogDebug("RecordVisit called")

	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		var stat models.Statistic
		err := tx.Where("date = ?", today).First(&stat).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return tx.Create(&models.Statistic{Date: today, VisitorsCount: 1}).Error
		}
		if err != nil {
			return err
		}
		return tx.Model(&stat).Update("visitors_count", gorm.Expr("visitors_count + 1")).Error
	})
	if err != nil {
		utils.LogError("Failed to record visit: %v", err)
		utils.InternalServerError(c, "Failed to record visit", err.Error())
		return
	}

	utils.Success(c, "Visit recorded", nil)
}

// Dashboard returns the headline numbers for the admin dashboard
func Dashboard(c *gin.Context) {
	utils.LogInfo("Dashboard called")

	if _, ok := adminFromContext(c); !ok {
		return
	}

	var productCount, categoryCount, orderCount, offerCount int64
	counts := []struct {
		model interface{}
		dest  *int64
	}{
		{&models.Product{}, &productCount},
		{&models.Category{}, &categoryCount},
		{&models.Order{}, &orderCount},
		{&models.Offer{}, &offerCount},
	}
	for _, count := range counts {
		if err := config.DB.Model(count.model).Count(count.dest).Error; err != nil {
			utils.LogError("Failed to count records: %v", err)
			utils.InternalServerError(c, "Failed to load dashboard", err.Error())
			return
		}
	}

	var revenue float64
	if err := config.DB.Model(&models.Order{}).
		Where("status != ?", models.OrderStatusCancelled).
		Select("COALESCE(SUM(total_amount), 0)").Scan(&revenue).Error; err != nil {
		utils.LogError("Failed to sum revenue: %v", err)
		utils.InternalServerError(c, "Failed to load dashboard", err.Error())
		return
	}

	var latest models.Statistic
	visitorsToday := 0
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if err := config.DB.Where("date = ?", today).First(&latest).Error; err == nil {
		visitorsToday = latest.VisitorsCount
	}

	utils.Success(c, "Dashboard retrieved successfully", gin.H{
		"products":       productCount,
		"categories":     categoryCount,
		"orders":         orderCount,
		"offers":         offerCount,
		"revenue":        revenue,
		"visitors_today": visitorsToday,
	})
}
