package cartControllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	orderControllers "github.com/shopworks/storefront-api/controllers/order"
	"github.com/shopworks/storefront-api/logger"
	"github.com/shopworks/storefront-api/models"
)

var (
	ErrEmptyCart       = errors.New("Your cart is empty.")
	ErrAddressRequired = errors.New("Address is required.")
	ErrInvalidAddress  = errors.New("Invalid address.")
	ErrCartChanged     = errors.New("Cart changed during checkout.")
)

type CheckoutInput struct {
	AddressID uint `json:"address_id"`
}

// Checkout converts the user's cart into a pending order. Order creation,
// line-item snapshots and the cart clear happen in one transaction: a
// partial failure rolls everything back. The delete is conditional on
// clearing exactly the rows that were read, so two concurrent checkouts of
// the same cart cannot both produce an order.
func Checkout(db *gorm.DB, userID string, addressID uint) (*models.Order, error) {
	var items []models.CartItem
	if err := db.Preload("Product").Where("user_id = ?", userID).Order("id").Find(&items).Error; err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}
	if addressID == 0 {
		return nil, ErrAddressRequired
	}

	var address models.Address
	if err := db.Where("id = ? AND user_id = ?", addressID, userID).First(&address).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidAddress
		}
		return nil, err
	}

	order := models.Order{
		UserID:    userID,
		AddressID: &address.ID,
		Status:    models.OrderStatusPending,
		OrderRef:  newOrderRef(),
		CreatedAt: time.Now(),
	}
	for i := range items {
		order.Items = append(order.Items, models.OrderItem{
			ProductID: items[i].ProductID,
			Quantity:  items[i].Quantity,
			Price:     items[i].Product.Price, // price snapshot
		})
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&order).Error; err != nil {
			return err
		}
		res := tx.Where("user_id = ?", userID).Delete(&models.CartItem{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected != int64(len(items)) {
			return ErrCartChanged
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	order.Address = &address
	return &order, nil
}

func newOrderRef() string {
	return time.Now().Format("20060102150405") + "-" + uuid.NewString()
}

// POST /user/cart/checkout
func CheckoutHandler(db *gorm.DB, log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		// A missing or unreadable body just means no address was supplied;
		// the cart is checked before the address either way.
		var input CheckoutInput
		_ = c.ShouldBindJSON(&input)

		order, err := Checkout(db, userID, input.AddressID)
		if err != nil {
			switch {
			case errors.Is(err, ErrEmptyCart), errors.Is(err, ErrAddressRequired), errors.Is(err, ErrInvalidAddress):
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			case errors.Is(err, ErrCartChanged):
				c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			default:
				log.Error("checkout failed", "user_id", userID, "err", err)
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Checkout failed"})
			}
			return
		}

		// reload with product titles for the response payload
		if err := db.Preload("Items.Product").Preload("Address").First(order, order.ID).Error; err != nil {
			log.Warn("order reload failed", "order_id", order.ID, "err", err)
		}

		log.Info("order placed",
			"user_id", userID,
			"order_id", order.ID,
			"order_ref", order.OrderRef,
			"items", len(order.Items),
			"total", order.TotalPrice().StringFixed(2),
		)
		orderControllers.BroadcastNewOrder(order)

		c.JSON(http.StatusCreated, orderControllers.NewOrderResponse(order))
	}
}
