package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	productcontroller "github.com/shopworks/storefront-api/controllers/product"
	reviewControllers "github.com/shopworks/storefront-api/controllers/review"
)

// SetupPublicRoutes registers unauthenticated catalog browsing.
func SetupPublicRoutes(r *gin.Engine, db *gorm.DB) {
	products := r.Group("/products")
	{
		products.GET("", productcontroller.GetProducts(db))
		products.GET("/:id", productcontroller.GetProductByID(db))
		products.GET("/:id/reviews", reviewControllers.GetProductReviews(db))
	}

	categories := r.Group("/categories")
	{
		categories.GET("", productcontroller.GetAllCategories(db))
		categories.GET("/:id", productcontroller.GetCategoryByID(db))
		categories.GET("/:id/tree", productcontroller.GetCategoryTree(db))
		categories.GET("/:id/ancestors", productcontroller.GetCategoryAncestors(db))
	}

	r.GET("/attribute-types", productcontroller.GetAttributeTypes(db))
}
