package cartControllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/shopworks/storefront-api/models"
)

var ErrDuplicateItem = errors.New("Product is already in the cart.")

type CartItemInput struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required,min=1"`
}

type UpdateCartItemInput struct {
	Quantity int `json:"quantity" binding:"required,min=1"`
}

type cartItemResponse struct {
	ID           uint   `json:"id"`
	ProductID    uint   `json:"product_id"`
	ProductTitle string `json:"product_title"`
	ProductPrice string `json:"product_price"`
	Quantity     int    `json:"quantity"`
	TotalPrice   string `json:"total_price"`
}

func newCartItemResponse(item *models.CartItem) cartItemResponse {
	return cartItemResponse{
		ID:           item.ID,
		ProductID:    item.ProductID,
		ProductTitle: item.Product.Title,
		ProductPrice: item.Product.Price.StringFixed(2),
		Quantity:     item.Quantity,
		TotalPrice:   item.LineTotal().StringFixed(2),
	}
}

// GET /user/cart
func GetCartItems(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		var items []models.CartItem
		if err := db.Preload("Product").Where("user_id = ?", userID).Order("id").Find(&items).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}

		out := make([]cartItemResponse, 0, len(items))
		for i := range items {
			out = append(out, newCartItemResponse(&items[i]))
		}
		c.JSON(http.StatusOK, out)
	}
}

// POST /user/cart
//
// Re-adding a product that is already in the cart is an error, not an
// increment; quantity changes go through UpdateCartItem.
func AddCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		var input CartItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var product models.Product
		if err := db.First(&product, input.ProductID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Product does not exist"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to validate product"})
			return
		}

		var count int64
		if err := db.Model(&models.CartItem{}).
			Where("user_id = ? AND product_id = ?", userID, input.ProductID).
			Count(&count).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check cart"})
			return
		}
		if count > 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": ErrDuplicateItem.Error()})
			return
		}

		item := models.CartItem{
			UserID:    userID,
			ProductID: product.ID,
			Product:   product,
			Quantity:  input.Quantity,
			AddedAt:   time.Now(),
		}
		if err := db.Create(&item).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add item to cart"})
			return
		}

		c.JSON(http.StatusCreated, newCartItemResponse(&item))
	}
}

// PUT /user/cart/:id
func UpdateCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		var input UpdateCartItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var item models.CartItem
		if err := db.Preload("Product").First(&item, c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
			return
		}
		if item.UserID != userID {
			c.JSON(http.StatusForbidden, gin.H{"error": "You do not have permission to modify this cart item."})
			return
		}

		item.Quantity = input.Quantity
		item.AddedAt = time.Now()
		if err := db.Save(&item).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart item"})
			return
		}

		c.JSON(http.StatusOK, newCartItemResponse(&item))
	}
}

// DELETE /user/cart/:id
func DeleteCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		var item models.CartItem
		if err := db.First(&item, c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
			return
		}
		if item.UserID != userID {
			c.JSON(http.StatusForbidden, gin.H{"error": "You do not have permission to delete this cart item."})
			return
		}

		if err := db.Delete(&item).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete cart item"})
			return
		}

		c.Status(http.StatusNoContent)
	}
}

// GET /user/cart/total_price
func CartTotalPrice(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		var items []models.CartItem
		if err := db.Preload("Product").Where("user_id = ?", userID).Find(&items).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}

		total := decimal.Zero
		for i := range items {
			total = total.Add(items[i].LineTotal())
		}

		c.JSON(http.StatusOK, gin.H{"total_price": total.StringFixed(2)})
	}
}
