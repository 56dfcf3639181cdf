package repository

import (
	"context"

	"github.com/minhtran-dev/pos-ledger-api/internal/domain/entity"
)

// CashierRepository defines the interface for cashier reference data
type CashierRepository interface {
	// ListActive returns active cashiers ordered by display order, then name.
	ListActive(ctx context.Context) ([]entity.Cashier, error)
}
