package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID          uint               `gorm:"primaryKey;autoIncrement" json:"id"`
	Title       string             `gorm:"not null" json:"title"`
	Brand       string             `json:"brand"`
	Description string             `gorm:"type:text" json:"description"`
	Price       decimal.Decimal    `gorm:"type:decimal(10,2);not null" json:"price"`
	CategoryID  *uint              `gorm:"index" json:"category_id"`
	Category    *Category          `json:"category,omitempty"`
	Attributes  []ProductAttribute `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"attributes,omitempty"`
	Images      []ProductImage     `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"images,omitempty"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
}

// AttributeType is a named vocabulary entry, e.g. "Color".
type AttributeType struct {
	ID   uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name string `gorm:"not null" json:"name"`
}

type ProductAttribute struct {
	ID              uint          `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductID       uint          `gorm:"index;not null" json:"product_id"`
	AttributeTypeID uint          `gorm:"not null" json:"attribute_type_id"`
	AttributeType   AttributeType `json:"attribute_type,omitempty"`
	Value           string        `gorm:"not null" json:"value"`
}

type ProductImage struct {
	ID        uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductID uint   `gorm:"index;not null" json:"product_id"`
	ImageURL  string `gorm:"not null" json:"image_url"`
}
