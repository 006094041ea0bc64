package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	orderControllers "github.com/shopworks/storefront-api/controllers/order"
	productcontroller "github.com/shopworks/storefront-api/controllers/product"
	userControllers "github.com/shopworks/storefront-api/controllers/user"
	"github.com/shopworks/storefront-api/logger"
	"github.com/shopworks/storefront-api/middleware"
)

// SetupAdminRoutes registers all "/admin/*" endpoints. Requires API-key middleware.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB, log *logger.Logger) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateAPIKey)
	{
		adminGroup.GET("/users", userControllers.GetAllUsers(db))

		productAdmin := adminGroup.Group("/products")
		{
			productAdmin.POST("", productcontroller.CreateProduct(db))
			productAdmin.PUT("/:id", productcontroller.UpdateProduct(db))
			productAdmin.DELETE("/:id", productcontroller.DeleteProduct(db))
			productAdmin.GET("/export-excel", productcontroller.ExportProductsToExcel(db))

			productAdmin.POST("/:id/attributes", productcontroller.AddProductAttribute(db))
			productAdmin.DELETE("/:id/attributes/:attrID", productcontroller.DeleteProductAttribute(db))
			productAdmin.POST("/:id/images", productcontroller.AddProductImage(db))
			productAdmin.DELETE("/:id/images/:imageID", productcontroller.DeleteProductImage(db))
		}

		categoryAdmin := adminGroup.Group("/categories")
		{
			categoryAdmin.POST("", productcontroller.CreateCategory(db))
			categoryAdmin.PUT("/:id", productcontroller.UpdateCategory(db))
			categoryAdmin.DELETE("/:id", productcontroller.DeleteCategory(db))
		}

		adminGroup.POST("/attribute-types", productcontroller.CreateAttributeType(db))

		orderAdmin := adminGroup.Group("/orders")
		{
			orderAdmin.GET("", orderControllers.GetAllOrders(db))
			orderAdmin.PUT("/:orderID/status", orderControllers.UpdateOrderStatus(db, log))
			orderAdmin.DELETE("/:orderID", orderControllers.DeleteOrder(db))
		}
	}
}
