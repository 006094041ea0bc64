package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/shopworks/storefront-api/auth"
	"github.com/shopworks/storefront-api/logger"
)

// SetupAuthRoutes registers all "/auth/*" endpoints.
func SetupAuthRoutes(r *gin.Engine, db *gorm.DB, log *logger.Logger) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", auth.Register(db, log))
		authGroup.POST("/login", auth.Login(db))
		authGroup.POST("/refresh", auth.Refresh())
	}
}
