package request

// ProductRequest represents a product create or update request
type ProductRequest struct {
	Name         string  `json:"name" binding:"required,max=255"`
	Price        int64   `json:"price" binding:"min=0"`
	Barcode      *string `json:"barcode"`
	Visible      bool    `json:"visible"`
	QuickDisplay bool    `json:"quick_display"`
	DisplayOrder int64   `json:"display_order"`
}
