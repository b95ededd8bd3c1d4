package controllers

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"

	"github.com/mataajer/souq-api/config"
	"github.com/mataajer/souq-api/models"
	"github.com/mataajer/souq-api/utils"
)

// reportWindow resolves the day/week/month query period into a closed
// date range ending today.
func reportWindow(period string, now time.Time) (start, end time.Time, ok bool) {
	end = time.Date(now.Year(), now.Month(), now.Day(), 23, 59, 59, 999999999, now.Location())
	switch period {
	case "day":
		start = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	case "week":
		start = end.AddDate(0, 0, -6)
		start = time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location())
	case "month":
		start = end.AddDate(0, 0, -29)
		start = time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location())
	default:
		return start, end, false
	}
	return start, end, true
}

// ExportOrdersExcel downloads the orders of the requested period as an
// Excel report with a summary block.
func ExportOrdersExcel(c *gin.Context) {
	utils.LogInfo("ExportOrdersExcel called")

	if _, ok := adminFromContext(c); !ok {
		return
	}

	period := c.DefaultQuery("period", "day")
	startDate, endDate, ok := reportWindow(period, time.Now())
	if !ok {
		utils.LogError("Invalid period specified: %s", period)
		utils.BadRequest(c, "Invalid period", "Period must be day, week, or month")
		return
	}

	var orders []models.Order
	if err := config.DB.Where("created_at >= ? AND created_at <= ?", startDate, endDate).
		Preload("Items").Order("created_at DESC").Find(&orders).Error; err != nil {
		utils.LogError("Failed to fetch orders: %v", err)
		utils.InternalServerError(c, "Failed to fetch orders", err.Error())
		return
	}

	var totalRevenue float64
	var totalItems int
	cancelled := 0
	for _, order := range orders {
		if order.Status == models.OrderStatusCancelled {
			cancelled++
			continue
		}
		totalRevenue += order.TotalAmount
		for _, item := range order.Items {
			totalItems += item.Quantity
		}
	}

	var settings models.StoreSettings
	_ = config.DB.First(&settings).Error
	storeName := settings.StoreName
	if storeName == "" {
		storeName = "Souq"
	}

	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Orders Report")
	if err != nil {
		utils.LogError("Failed to create Excel sheet: %v", err)
		utils.InternalServerError(c, "Failed to create Excel sheet", err.Error())
		return
	}

	row := sheet.AddRow()
	row.AddCell().SetString(storeName + " - Orders Report")
	row = sheet.AddRow()
	row.AddCell().SetString("Period: " + strings.ToUpper(period) + " | " +
		startDate.Format("2006-01-02") + " to " + endDate.Format("2006-01-02"))
	sheet.AddRow()

	headers := []string{"Order Number", "Customer", "Phone", "City", "Date", "Items", "Total", "Payment", "Status"}
	headerRow := sheet.AddRow()
	for _, h := range headers {
		headerRow.AddCell().SetString(h)
	}

	for _, order := range orders {
		itemCount := 0
		for _, item := range order.Items {
			itemCount += item.Quantity
		}
		row := sheet.AddRow()
		row.AddCell().SetString(order.OrderNumber)
		row.AddCell().SetString(order.CustomerName)
		row.AddCell().SetString(order.CustomerPhone)
		row.AddCell().SetString(order.City)
		row.AddCell().SetString(order.CreatedAt.Format("2006-01-02 15:04"))
		row.AddCell().SetInt(itemCount)
		row.AddCell().SetFloat(order.TotalAmount)
		row.AddCell().SetString(order.PaymentMethod)
		row.AddCell().SetString(order.Status)
	}

	sheet.AddRow()
	summaryRow := sheet.AddRow()
	summaryRow.AddCell().SetString("Total Orders")
	summaryRow.AddCell().SetInt(len(orders))
	summaryRow = sheet.AddRow()
	summaryRow.AddCell().SetString("Cancelled Orders")
	summaryRow.AddCell().SetInt(cancelled)
	summaryRow = sheet.AddRow()
	summaryRow.AddCell().SetString("Items Sold")
	summaryRow.AddCell().SetInt(totalItems)
	summaryRow = sheet.AddRow()
	summaryRow.AddCell().SetString("Revenue")
	summaryRow.AddCell().SetFloat(totalRevenue)

	var buf bytes.Buffer
	if err := file.Write(&buf); err != nil {
		utils.LogError("Failed to write Excel file: %v", err)
		utils.InternalServerError(c, "Failed to generate report", err.Error())
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=orders-%s-%s.xlsx", period, time.Now().Format("2006-01-02")))
	c.Data(200, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}
