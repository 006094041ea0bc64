package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CartItem is one (user, product) line in a cart. The pair is unique:
// re-adding a product that is already in the cart is rejected, quantity
// changes go through an update.
type CartItem struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    string    `gorm:"not null;uniqueIndex:idx_cart_user_product" json:"-"`
	ProductID uint      `gorm:"not null;uniqueIndex:idx_cart_user_product" json:"product_id"`
	Product   Product   `json:"-"`
	Quantity  int       `gorm:"not null" json:"quantity"`
	AddedAt   time.Time `json:"added_at"`
}

// LineTotal is quantity times the product's current price. Requires Product
// to be preloaded.
func (ci *CartItem) LineTotal() decimal.Decimal {
	return ci.Product.Price.Mul(decimal.NewFromInt(int64(ci.Quantity)))
}
