package entity

import "time"

// Product is a sellable item. Price is stored in integer minor units.
type Product struct {
	ID           int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name         string    `gorm:"size:255;not null" json:"name"`
	Price        int64     `gorm:"not null" json:"price"`
	Barcode      *string   `gorm:"size:100" json:"barcode"`
	Visible      bool      `gorm:"not null;default:true" json:"visible"`
	QuickDisplay bool      `gorm:"not null;default:false" json:"quick_display"`
	DisplayOrder int64     `gorm:"not null;default:1" json:"display_order"`
	CreatedAt    time.Time `json:"created_at"`
}

// TableName returns the table name for the Product model
func (Product) TableName() string {
	return "products"
}
