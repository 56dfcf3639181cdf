package repository

import (
	"context"

	"github.com/minhtran-dev/pos-ledger-api/internal/domain/entity"
)

// ProductRepository defines the interface for product data operations
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id int64) (*entity.Product, error)
	// Update writes every mutable column and reports how many rows matched.
	Update(ctx context.Context, product *entity.Product) (int64, error)
	// List returns all products ordered by display order.
	List(ctx context.Context) ([]entity.Product, error)
}
