package service

import (
	"context"

	"github.com/minhtran-dev/pos-ledger-api/internal/domain/entity"
	"github.com/minhtran-dev/pos-ledger-api/internal/domain/repository"
)

// CashierService exposes the cashier roster for the picker UI.
type CashierService struct {
	cashierRepo repository.CashierRepository
}

// NewCashierService creates a new cashier service
func NewCashierService(cashierRepo repository.CashierRepository) *CashierService {
	return &CashierService{cashierRepo: cashierRepo}
}

// List returns the active cashiers; deactivated ones never appear.
func (s *CashierService) List(ctx context.Context) ([]entity.Cashier, error) {
	return s.cashierRepo.ListActive(ctx)
}
