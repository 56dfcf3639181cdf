package repository

import (
	"context"
	"errors"

	"github.com/minhtran-dev/pos-ledger-api/internal/domain/entity"
	domainRepo "github.com/minhtran-dev/pos-ledger-api/internal/domain/repository"
	"gorm.io/gorm"
)

type paymentRepository struct {
	db *gorm.DB
}

// NewPaymentRepository creates a new payment repository
func NewPaymentRepository(db *gorm.DB) domainRepo.PaymentRepository {
	return &paymentRepository{db: db}
}

// CreateWithItems inserts the header, captures its generated id, then
// inserts every item referencing it, all inside one transaction. Any
// failure rolls the whole payment back.
func (r *paymentRepository) CreateWithItems(ctx context.Context, payment *entity.Payment) error {
	items := payment.Items
	payment.Items = nil

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(payment).Error; err != nil {
			return err
		}
		for i := range items {
			items[i].PaymentID = payment.ID
		}
		if len(items) > 0 {
			if err := tx.Create(&items).Error; err != nil {
				return err
			}
		}
		return nil
	})

	payment.Items = items
	return err
}

func (r *paymentRepository) GetWithItems(ctx context.Context, id int64) (*entity.Payment, error) {
	var payment entity.Payment
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("payment_items.id ASC")
		}).
		First(&payment, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &payment, nil
}

func (r *paymentRepository) List(ctx context.Context, limit int) ([]entity.Payment, error) {
	var payments []entity.Payment
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("payment_items.id ASC")
		}).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&payments).Error
	return payments, err
}
