package repository

import (
	"context"

	"github.com/minhtran-dev/pos-ledger-api/internal/domain/entity"
	domainRepo "github.com/minhtran-dev/pos-ledger-api/internal/domain/repository"
	"gorm.io/gorm"
)

type cashierRepository struct {
	db *gorm.DB
}

// NewCashierRepository creates a new cashier repository
func NewCashierRepository(db *gorm.DB) domainRepo.CashierRepository {
	return &cashierRepository{db: db}
}

func (r *cashierRepository) ListActive(ctx context.Context) ([]entity.Cashier, error) {
	var cashiers []entity.Cashier
	err := r.db.WithContext(ctx).
		Where("is_active != 0").
		Order("display_order ASC, name ASC").
		Find(&cashiers).Error
	return cashiers, err
}
