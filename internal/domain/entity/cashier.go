package entity

import "time"

// Cashier is a reference row for receipt attribution and the cashier
// picker. Cashiers are not authentication principals.
type Cashier struct {
	ID           int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Code         string    `gorm:"size:100;not null;unique" json:"code"`
	Name         string    `gorm:"size:255;not null" json:"name"`
	Role         string    `gorm:"size:100;not null" json:"role"`
	LastActive   *string   `gorm:"size:100" json:"last_active"`
	RequirePin   bool      `gorm:"not null;default:false" json:"require_pin"`
	Pin          *string   `gorm:"size:20" json:"pin"`
	DisplayOrder int64     `gorm:"not null;default:1" json:"display_order"`
	IsActive     bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
}

// TableName returns the table name for the Cashier model
func (Cashier) TableName() string {
	return "cashiers"
}
