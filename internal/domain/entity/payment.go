package entity

import (
	"encoding/json"
	"time"
)

// Payment is an immutable sales receipt header. Payments are append-only:
// once committed together with their items there is no update or delete path.
type Payment struct {
	ID            int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	InvoiceNumber string    `gorm:"size:100;not null" json:"invoice_number"`
	CashierName   string    `gorm:"size:255;not null" json:"cashier_name"`
	Subtotal      int64     `gorm:"not null" json:"subtotal"`
	Tax           int64     `gorm:"not null" json:"tax"`
	Total         int64     `gorm:"not null" json:"total"`
	Discount      int64     `gorm:"not null;default:0" json:"discount"`
	PaidCash      int64     `gorm:"not null" json:"paid_cash"`
	ChangeDue     int64     `gorm:"not null" json:"change_due"`
	Note          *string   `gorm:"type:text" json:"note"`
	CreatedAt     time.Time `json:"created_at"`

	// Relationships
	Items []PaymentItem `gorm:"foreignKey:PaymentID" json:"items"`
}

// TableName returns the table name for the Payment model
func (Payment) TableName() string {
	return "payments"
}

// PaymentItem is a line item owned by exactly one payment. Quantity is the
// legacy integer column kept for consumers predating decimal quantities;
// QuantityDecimal is the canonical amount. Price is the effective unit
// price actually charged. The optional columns are nullable because rows
// written under older schema versions never had them; hydration backfills
// them at read time.
type PaymentItem struct {
	ID              int64    `gorm:"primaryKey;autoIncrement" json:"id"`
	PaymentID       int64    `gorm:"not null;index" json:"payment_id"`
	ProductID       *int64   `gorm:"index" json:"product_id"`
	Name            string   `gorm:"size:255;not null" json:"name"`
	Quantity        int64    `gorm:"not null" json:"quantity"`
	Price           int64    `gorm:"not null" json:"price"`
	QuantityDecimal *float64 `json:"quantity_decimal"`
	BaseUnitPrice   *int64   `json:"base_unit_price"`
	EditedUnitPrice *int64   `json:"edited_unit_price"`
	LineSubtotal    *int64   `json:"line_subtotal"`
	LineDiscount    int64    `gorm:"not null;default:0" json:"line_discount"`
}

// MarshalJSON exposes the stored price under its resolved name as well,
// so consumers see the effective unit price explicitly.
func (i PaymentItem) MarshalJSON() ([]byte, error) {
	type Alias PaymentItem
	return json.Marshal(&struct {
		Alias
		EffectiveUnitPrice int64 `json:"effective_unit_price"`
	}{
		Alias:              Alias(i),
		EffectiveUnitPrice: i.Price,
	})
}

// TableName returns the table name for the PaymentItem model
func (PaymentItem) TableName() string {
	return "payment_items"
}
