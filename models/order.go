package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"   // created by checkout, awaiting confirmation
	OrderStatusConfirmed OrderStatus = "confirmed" // confirmed by the shop
	OrderStatusShipped   OrderStatus = "shipped"   // out for delivery
	OrderStatusDelivered OrderStatus = "delivered" // customer received the items
	OrderStatusCancelled OrderStatus = "cancelled" // cancelled before shipping
)

type Order struct {
	ID        uint        `gorm:"primaryKey" json:"id"`
	UserID    string      `gorm:"index;not null" json:"user_id"`
	AddressID *uint       `json:"address_id"`
	Address   *Address    `json:"address,omitempty"`
	Items     []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	Status    OrderStatus `gorm:"type:varchar(20);default:'pending'" json:"status"`
	OrderRef  string      `gorm:"uniqueIndex;not null" json:"order_ref"`
	CreatedAt time.Time   `json:"created_at"`
}

// OrderItem snapshots the product price at checkout time. Later catalog
// price edits never touch it.
type OrderItem struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	OrderID   uint            `gorm:"index;not null" json:"-"`
	ProductID uint            `gorm:"not null" json:"product_id"`
	Product   Product         `json:"-"`
	Quantity  int             `gorm:"not null" json:"quantity"`
	Price     decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
}

// TotalPrice is derived on every read, never stored: sum of price times
// quantity over the order's items, rounded half-up to 2 decimal places.
func (o *Order) TotalPrice() decimal.Decimal {
	total := decimal.Zero
	for i := range o.Items {
		total = total.Add(o.Items[i].Price.Mul(decimal.NewFromInt(int64(o.Items[i].Quantity))))
	}
	return total.Round(2)
}
