package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	cartControllers "github.com/shopworks/storefront-api/controllers/cart"
	reviewControllers "github.com/shopworks/storefront-api/controllers/review"
	userControllers "github.com/shopworks/storefront-api/controllers/user"
	"github.com/shopworks/storefront-api/logger"
	"github.com/shopworks/storefront-api/middleware"
)

// SetupUserRoutes registers all "/user/*" endpoints plus review creation.
// Requires JWT middleware.
func SetupUserRoutes(r *gin.Engine, db *gorm.DB, log *logger.Logger) {
	userGroup := r.Group("/user")
	userGroup.Use(middleware.ValidateToken)
	{
		userGroup.GET("", userControllers.GetUser(db))

		addressGroup := userGroup.Group("/addresses")
		{
			addressGroup.GET("", userControllers.GetAddresses(db))
			addressGroup.POST("", userControllers.CreateAddress(db))
			addressGroup.PUT("/:id", userControllers.UpdateAddress(db))
			addressGroup.DELETE("/:id", userControllers.DeleteAddress(db))
		}

		cartGroup := userGroup.Group("/cart")
		{
			cartGroup.GET("", cartControllers.GetCartItems(db))
			cartGroup.POST("", cartControllers.AddCartItem(db))
			cartGroup.PUT("/:id", cartControllers.UpdateCartItem(db))
			cartGroup.DELETE("/:id", cartControllers.DeleteCartItem(db))
			cartGroup.GET("/total_price", cartControllers.CartTotalPrice(db))
			cartGroup.POST("/checkout", cartControllers.CheckoutHandler(db, log))
		}
	}

	reviewGroup := r.Group("/reviews")
	reviewGroup.Use(middleware.ValidateToken)
	{
		reviewGroup.POST("", reviewControllers.CreateReview(db))
	}
}
