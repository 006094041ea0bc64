package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	orderControllers "github.com/shopworks/storefront-api/controllers/order"
	"github.com/shopworks/storefront-api/middleware"
)

func SetupOrderRoutes(r *gin.Engine, db *gorm.DB) {
	// websocket endpoint for real-time order events
	r.GET("/orders/ws", orderControllers.OrderFeedHandler)

	orders := r.Group("/orders")
	orders.Use(middleware.ValidateToken)
	{
		orders.GET("", orderControllers.GetUserOrders(db))
		orders.GET("/:orderID", orderControllers.GetOrderByID(db))
	}
}
