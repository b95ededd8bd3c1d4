package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/mataajer/souq-api/controllers"
)

// initStoreRoutes initializes the public storefront routes
func initStoreRoutes(router *gin.RouterGroup) {
	router.GET("/categories", controllers.GetCategories)
	router.GET("/categories/:id", controllers.GetCategory)

	router.GET("/products", controllers.GetProducts)
	router.GET("/products/:id", controllers.GetProduct)

	router.GET("/offers", controllers.GetActiveOffers)

	cart := router.Group("/cart")
	{
		cart.GET("", controllers.GetCart)
		cart.POST("/items", controllers.AddToCart)
		cart.PUT("/items", controllers.UpdateCartItem)
		cart.DELETE("/items", controllers.RemoveFromCart)
		cart.DELETE("", controllers.ClearCart)
	}

	router.POST("/checkout", controllers.Checkout)
	router.GET("/orders/track/:number", controllers.TrackOrder)

	router.POST("/visits", controllers.RecordVisit)
	router.GET("/settings", controllers.GetSettings)
}
