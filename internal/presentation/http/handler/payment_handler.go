package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/minhtran-dev/pos-ledger-api/internal/application/service"
	"github.com/minhtran-dev/pos-ledger-api/internal/presentation/http/dto/request"
	"github.com/minhtran-dev/pos-ledger-api/internal/presentation/http/dto/response"
)

// PaymentHandler handles payment-related HTTP requests
type PaymentHandler struct {
	paymentService *service.PaymentService
}

// NewPaymentHandler creates a new payment handler
func NewPaymentHandler(paymentService *service.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService}
}

// List handles listing the most recent payments
func (h *PaymentHandler) List(c *gin.Context) {
	payments, err := h.paymentService.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Payments retrieved successfully", payments)
}

// Get handles fetching a single payment aggregate
func (h *PaymentHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid payment id")
		return
	}

	payment, err := h.paymentService.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Payment retrieved successfully", payment)
}

// Create handles creating a payment with its items
func (h *PaymentHandler) Create(c *gin.Context) {
	var req request.CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	items := make([]service.PaymentItemInput, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, service.PaymentItemInput{
			ProductID:          item.ProductID,
			Name:               item.Name,
			Quantity:           item.Quantity,
			BaseUnitPrice:      item.BaseUnitPrice,
			EditedUnitPrice:    item.EditedUnitPrice,
			EffectiveUnitPrice: item.EffectiveUnitPrice,
			Price:              item.Price,
			LineSubtotal:       item.LineSubtotal,
			LineDiscount:       item.LineDiscount,
		})
	}

	payment, err := h.paymentService.Create(c.Request.Context(), &service.CreatePaymentInput{
		InvoiceNumber: req.InvoiceNumber,
		CashierName:   req.CashierName,
		Subtotal:      req.Subtotal,
		Tax:           req.Tax,
		Total:         req.Total,
		Discount:      req.Discount,
		PaidCash:      req.PaidCash,
		ChangeDue:     req.ChangeDue,
		Note:          req.Note,
		Items:         items,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Payment created successfully", payment)
}
