package models

import "time"

// Review references the order that proves the purchase.
type Review struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      string    `gorm:"index;not null" json:"user_id"`
	ProductID   uint      `gorm:"index;not null" json:"product_id"`
	OrderID     uint      `gorm:"not null" json:"order_id"`
	Rating      int       `gorm:"not null" json:"rating"`
	Description string    `gorm:"type:text" json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}
