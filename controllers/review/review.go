package reviewControllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/shopworks/storefront-api/models"
)

var (
	ErrInvalidRating = errors.New("Rating must be between 1 and 5.")
	ErrNotPurchased  = errors.New("You need to have purchased this product to review it.")
)

type ReviewInput struct {
	ProductID   uint   `json:"product_id" binding:"required"`
	Rating      int    `json:"rating"`
	Description string `json:"description"`
}

// findPurchaseOrder returns the earliest of the user's orders containing
// the product, or ErrNotPurchased.
func findPurchaseOrder(db *gorm.DB, userID string, productID uint) (*models.Order, error) {
	var order models.Order
	err := db.
		Joins("JOIN order_items ON order_items.order_id = orders.id").
		Where("orders.user_id = ? AND order_items.product_id = ?", userID, productID).
		Order("orders.id").
		First(&order).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotPurchased
		}
		return nil, err
	}
	return &order, nil
}

// POST /reviews
//
// The rating bound is checked before the purchase check: an out-of-range
// rating is rejected regardless of purchase status.
func CreateReview(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		var input ReviewInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if input.Rating < 1 || input.Rating > 5 {
			c.JSON(http.StatusBadRequest, gin.H{"error": ErrInvalidRating.Error()})
			return
		}

		var product models.Product
		if err := db.First(&product, input.ProductID).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Product does not exist"})
			return
		}

		order, err := findPurchaseOrder(db, userID, input.ProductID)
		if err != nil {
			if errors.Is(err, ErrNotPurchased) {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to verify purchase"})
			return
		}

		review := models.Review{
			UserID:      userID,
			ProductID:   input.ProductID,
			OrderID:     order.ID,
			Rating:      input.Rating,
			Description: input.Description,
			CreatedAt:   time.Now(),
		}
		if err := db.Create(&review).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create review"})
			return
		}

		c.JSON(http.StatusCreated, review)
	}
}

// GET /products/:id/reviews
func GetProductReviews(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var reviews []models.Review
		if err := db.
			Where("product_id = ?", c.Param("id")).
			Order("created_at DESC").
			Find(&reviews).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch reviews"})
			return
		}
		c.JSON(http.StatusOK, reviews)
	}
}
