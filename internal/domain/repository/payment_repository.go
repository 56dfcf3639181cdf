package repository

import (
	"context"

	"github.com/minhtran-dev/pos-ledger-api/internal/domain/entity"
)

// PaymentRepository defines the interface for payment data operations.
// Payments are append-only; there is no update or delete.
type PaymentRepository interface {
	// CreateWithItems inserts the payment header and every item inside a
	// single transaction. Either everything commits or nothing does.
	CreateWithItems(ctx context.Context, payment *entity.Payment) error
	// GetWithItems loads a payment and its items ordered by insertion
	// sequence. Returns nil when the payment does not exist.
	GetWithItems(ctx context.Context, id int64) (*entity.Payment, error)
	// List returns up to limit payments ordered by creation time,
	// newest first, each with its items.
	List(ctx context.Context, limit int) ([]entity.Payment, error)
}
