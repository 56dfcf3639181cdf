package service

import (
	"context"
	"strings"

	"github.com/minhtran-dev/pos-ledger-api/internal/domain/entity"
	"github.com/minhtran-dev/pos-ledger-api/internal/domain/repository"
	"github.com/minhtran-dev/pos-ledger-api/pkg/apperror"
)

// ProductService handles product catalog operations. Plain CRUD; the
// ledger references products only through a nullable weak key.
type ProductService struct {
	productRepo repository.ProductRepository
}

// NewProductService creates a new product service
func NewProductService(productRepo repository.ProductRepository) *ProductService {
	return &ProductService{productRepo: productRepo}
}

// ProductInput carries the mutable product fields
type ProductInput struct {
	Name         string
	Price        int64
	Barcode      *string
	Visible      bool
	QuickDisplay bool
	DisplayOrder int64
}

// List returns all products in display order
func (s *ProductService) List(ctx context.Context) ([]entity.Product, error) {
	return s.productRepo.List(ctx)
}

// Create inserts a product and returns the stored row
func (s *ProductService) Create(ctx context.Context, input *ProductInput) (*entity.Product, error) {
	product := &entity.Product{
		Name:         strings.TrimSpace(input.Name),
		Price:        input.Price,
		Barcode:      normalizeBarcode(input.Barcode),
		Visible:      input.Visible,
		QuickDisplay: input.QuickDisplay,
		DisplayOrder: input.DisplayOrder,
	}
	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}
	return s.productRepo.GetByID(ctx, product.ID)
}

// Update overwrites a product's mutable fields and returns the stored row
func (s *ProductService) Update(ctx context.Context, id int64, input *ProductInput) (*entity.Product, error) {
	product := &entity.Product{
		ID:           id,
		Name:         strings.TrimSpace(input.Name),
		Price:        input.Price,
		Barcode:      normalizeBarcode(input.Barcode),
		Visible:      input.Visible,
		QuickDisplay: input.QuickDisplay,
		DisplayOrder: input.DisplayOrder,
	}
	affected, err := s.productRepo.Update(ctx, product)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, apperror.NewNotFoundError("Product")
	}
	return s.productRepo.GetByID(ctx, id)
}

func normalizeBarcode(barcode *string) *string {
	if barcode == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*barcode)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
