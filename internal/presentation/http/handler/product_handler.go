package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/minhtran-dev/pos-ledger-api/internal/application/service"
	"github.com/minhtran-dev/pos-ledger-api/internal/presentation/http/dto/request"
	"github.com/minhtran-dev/pos-ledger-api/internal/presentation/http/dto/response"
)

// ProductHandler handles product-related HTTP requests
type ProductHandler struct {
	productService *service.ProductService
}

// NewProductHandler creates a new product handler
func NewProductHandler(productService *service.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// List handles listing products
func (h *ProductHandler) List(c *gin.Context) {
	products, err := h.productService.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Products retrieved successfully", products)
}

// Create handles creating a product
func (h *ProductHandler) Create(c *gin.Context) {
	var req request.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	product, err := h.productService.Create(c.Request.Context(), toProductInput(&req))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Product created successfully", product)
}

// Update handles updating a product
func (h *ProductHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid product id")
		return
	}

	var req request.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	product, err := h.productService.Update(c.Request.Context(), id, toProductInput(&req))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Product updated successfully", product)
}

func toProductInput(req *request.ProductRequest) *service.ProductInput {
	return &service.ProductInput{
		Name:         req.Name,
		Price:        req.Price,
		Barcode:      req.Barcode,
		Visible:      req.Visible,
		QuickDisplay: req.QuickDisplay,
		DisplayOrder: req.DisplayOrder,
	}
}
