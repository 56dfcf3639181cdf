package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/minhtran-dev/pos-ledger-api/internal/application/service"
	"github.com/minhtran-dev/pos-ledger-api/internal/presentation/http/dto/response"
)

// CashierHandler handles cashier-related HTTP requests
type CashierHandler struct {
	cashierService *service.CashierService
}

// NewCashierHandler creates a new cashier handler
func NewCashierHandler(cashierService *service.CashierService) *CashierHandler {
	return &CashierHandler{cashierService: cashierService}
}

// List handles listing active cashiers
func (h *CashierHandler) List(c *gin.Context) {
	cashiers, err := h.cashierService.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Cashiers retrieved successfully", cashiers)
}
