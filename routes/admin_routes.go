package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/mataajer/souq-api/controllers"
	"github.com/mataajer/souq-api/middleware"
)

// initAdminRoutes initializes all back-office routes
func initAdminRoutes(router *gin.RouterGroup) {
	admin := router.Group("/admin")
	{
		// Public admin routes
		admin.POST("/login", controllers.AdminLogin)

		// Protected admin routes
		admin.Use(middleware.AdminAuthMiddleware())
		{
			admin.PUT("/credentials", controllers.UpdateAdminCredentials)
			admin.GET("/dashboard", controllers.Dashboard)

			// Category management
			admin.POST("/categories", controllers.CreateCategory)
			admin.PUT("/categories/:id", controllers.UpdateCategory)
			admin.DELETE("/categories/:id", controllers.DeleteCategory)

			// Product management
			admin.POST("/products", controllers.CreateProduct)
			admin.PUT("/products/:id", controllers.UpdateProduct)
			admin.DELETE("/products/:id", controllers.DeleteProduct)
			admin.POST("/products/images", controllers.UploadProductImage)

			// Offer management
			admin.GET("/offers", controllers.ListOffers)
			admin.POST("/offers", controllers.CreateOffer)
			admin.PUT("/offers/:id", controllers.UpdateOffer)
			admin.DELETE("/offers/:id", controllers.DeleteOffer)

			// Order management
			admin.GET("/orders", controllers.ListOrders)
			admin.GET("/orders/export", controllers.ExportOrdersExcel)
			admin.GET("/orders/:id", controllers.GetOrder)
			admin.PATCH("/orders/:id/status", controllers.UpdateOrderStatus)
			admin.GET("/orders/:id/invoice", controllers.DownloadInvoice)

			// Store settings
			admin.PUT("/settings", controllers.UpdateSettings)
			admin.POST("/settings/logo", controllers.UploadLogo)
		}
	}
}
