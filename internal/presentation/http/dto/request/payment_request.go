package request

// PaymentItemRequest is one raw line item in a payment creation request.
// Validation happens in the service layer so that every violation maps to
// a specific error kind rather than a generic binding failure.
type PaymentItemRequest struct {
	ProductID          *int64  `json:"product_id"`
	Name               string  `json:"name"`
	Quantity           float64 `json:"quantity"`
	BaseUnitPrice      int64   `json:"base_unit_price"`
	EditedUnitPrice    *int64  `json:"edited_unit_price"`
	EffectiveUnitPrice *int64  `json:"effective_unit_price"`
	Price              *int64  `json:"price"`
	LineSubtotal       *int64  `json:"line_subtotal"`
	LineDiscount       *int64  `json:"line_discount"`
}

// CreatePaymentRequest represents a payment creation request
type CreatePaymentRequest struct {
	InvoiceNumber string               `json:"invoice_number"`
	CashierName   string               `json:"cashier_name"`
	Subtotal      int64                `json:"subtotal"`
	Tax           int64                `json:"tax"`
	Total         int64                `json:"total"`
	Discount      int64                `json:"discount"`
	PaidCash      int64                `json:"paid_cash"`
	ChangeDue     int64                `json:"change_due"`
	Note          *string              `json:"note"`
	Items         []PaymentItemRequest `json:"items"`
}
