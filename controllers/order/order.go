package orderControllers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/shopworks/storefront-api/logger"
	"github.com/shopworks/storefront-api/models"
)

type UpdateOrderStatusInput struct {
	Status string `json:"status" binding:"required"`
}

type OrderItemResponse struct {
	ID           uint   `json:"id"`
	ProductID    uint   `json:"product_id"`
	ProductTitle string `json:"product_title"`
	Quantity     int    `json:"quantity"`
	Price        string `json:"price"`
}

type OrderResponse struct {
	ID         uint                `json:"id"`
	OrderRef   string              `json:"order_ref"`
	Status     models.OrderStatus  `json:"status"`
	Address    *models.Address     `json:"address"`
	Items      []OrderItemResponse `json:"items"`
	TotalPrice string              `json:"total_price"`
	CreatedAt  time.Time           `json:"created_at"`
}

// NewOrderResponse builds the wire form of an order. The total is always
// recomputed from the items, it is never persisted.
func NewOrderResponse(o *models.Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(o.Items))
	for i := range o.Items {
		items = append(items, OrderItemResponse{
			ID:           o.Items[i].ID,
			ProductID:    o.Items[i].ProductID,
			ProductTitle: o.Items[i].Product.Title,
			Quantity:     o.Items[i].Quantity,
			Price:        o.Items[i].Price.StringFixed(2),
		})
	}
	return OrderResponse{
		ID:         o.ID,
		OrderRef:   o.OrderRef,
		Status:     o.Status,
		Address:    o.Address,
		Items:      items,
		TotalPrice: o.TotalPrice().StringFixed(2),
		CreatedAt:  o.CreatedAt,
	}
}

func mapOrderStatus(status string) (models.OrderStatus, error) {
	switch strings.ToLower(status) {
	case string(models.OrderStatusPending):
		return models.OrderStatusPending, nil
	case string(models.OrderStatusConfirmed):
		return models.OrderStatusConfirmed, nil
	case string(models.OrderStatusShipped):
		return models.OrderStatusShipped, nil
	case string(models.OrderStatusDelivered):
		return models.OrderStatusDelivered, nil
	case string(models.OrderStatusCancelled):
		return models.OrderStatusCancelled, nil
	default:
		return "", errors.New("invalid order status")
	}
}

// GET /orders
func GetUserOrders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		var orders []models.Order
		if err := db.
			Preload("Items.Product").
			Preload("Address").
			Where("user_id = ?", userID).
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}

		out := make([]OrderResponse, 0, len(orders))
		for i := range orders {
			out = append(out, NewOrderResponse(&orders[i]))
		}
		c.JSON(http.StatusOK, out)
	}
}

// GET /orders/:orderID
//
// The lookup is scoped to the caller, so another user's order is a plain
// not-found rather than a forbidden.
func GetOrderByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		var order models.Order
		if err := db.
			Preload("Items.Product").
			Preload("Address").
			Where("id = ? AND user_id = ?", c.Param("orderID"), userID).
			First(&order).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}

		c.JSON(http.StatusOK, NewOrderResponse(&order))
	}
}

// GET /admin/orders
func GetAllOrders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.Order
		if err := db.
			Preload("Items.Product").
			Preload("Address").
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}

		out := make([]OrderResponse, 0, len(orders))
		for i := range orders {
			out = append(out, NewOrderResponse(&orders[i]))
		}
		c.JSON(http.StatusOK, out)
	}
}

// PUT /admin/orders/:orderID/status
func UpdateOrderStatus(db *gorm.DB, log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input UpdateOrderStatusInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		status, err := mapOrderStatus(input.Status)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var order models.Order
		if err := db.First(&order, c.Param("orderID")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}

		order.Status = status
		if err := db.Save(&order).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order status"})
			return
		}

		log.Info("order status updated", "order_id", order.ID, "status", order.Status)
		BroadcastOrderStatus(&order)

		c.JSON(http.StatusOK, gin.H{"id": order.ID, "status": order.Status})
	}
}

// DELETE /admin/orders/:orderID
func DeleteOrder(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		result := db.Delete(&models.Order{}, c.Param("orderID"))
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete order"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Order deleted"})
	}
}
