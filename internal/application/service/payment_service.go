package service

import (
	"context"
	"math"
	"strings"

	"github.com/minhtran-dev/pos-ledger-api/internal/domain/entity"
	"github.com/minhtran-dev/pos-ledger-api/internal/domain/repository"
	"github.com/minhtran-dev/pos-ledger-api/pkg/apperror"
	"github.com/minhtran-dev/pos-ledger-api/pkg/money"
)

// listLimit caps how many payments a listing returns.
const listLimit = 200

// PaymentService is the transactional ledger for payments: it validates
// and canonicalizes line items, persists the header and items atomically,
// and reconstructs full aggregates on read with legacy-row backfill.
type PaymentService struct {
	paymentRepo repository.PaymentRepository
	normalizer  money.Normalizer
}

// NewPaymentService creates a new payment service
func NewPaymentService(paymentRepo repository.PaymentRepository, normalizer money.Normalizer) *PaymentService {
	return &PaymentService{
		paymentRepo: paymentRepo,
		normalizer:  normalizer,
	}
}

// PaymentItemInput is one raw line item as supplied by the caller.
// EffectiveUnitPrice, Price and BaseUnitPrice form a resolution chain:
// the first one present wins as the price actually charged.
type PaymentItemInput struct {
	ProductID          *int64
	Name               string
	Quantity           float64
	BaseUnitPrice      int64
	EditedUnitPrice    *int64
	EffectiveUnitPrice *int64
	Price              *int64
	LineSubtotal       *int64
	LineDiscount       *int64
}

// CreatePaymentInput is the raw payment creation payload. Header amounts
// are caller-supplied minor units and are stored as given; no arithmetic
// relation between them is enforced.
type CreatePaymentInput struct {
	InvoiceNumber string
	CashierName   string
	Subtotal      int64
	Tax           int64
	Total         int64
	Discount      int64
	PaidCash      int64
	ChangeDue     int64
	Note          *string
	Items         []PaymentItemInput
}

// Create validates the payload, then persists the header and every item
// in one transaction. On success it re-reads the aggregate from storage
// so the response reflects exactly what was persisted, never the echo of
// the caller's payload. Any failure leaves no rows behind.
func (s *PaymentService) Create(ctx context.Context, input *CreatePaymentInput) (*entity.Payment, error) {
	invoice := strings.TrimSpace(input.InvoiceNumber)
	if invoice == "" {
		return nil, apperror.NewValidationError(apperror.KindMissingField, "Invoice number is required")
	}
	cashier := strings.TrimSpace(input.CashierName)
	if cashier == "" {
		return nil, apperror.NewValidationError(apperror.KindMissingField, "Cashier name is required")
	}

	items, err := s.normalizeItems(input.Items)
	if err != nil {
		return nil, err
	}

	payment := &entity.Payment{
		InvoiceNumber: invoice,
		CashierName:   cashier,
		Subtotal:      input.Subtotal,
		Tax:           input.Tax,
		Total:         input.Total,
		Discount:      input.Discount,
		PaidCash:      input.PaidCash,
		ChangeDue:     input.ChangeDue,
		Note:          normalizeNote(input.Note),
		Items:         items,
	}

	if err := s.paymentRepo.CreateWithItems(ctx, payment); err != nil {
		return nil, err
	}

	return s.Get(ctx, payment.ID)
}

// Get loads one fully hydrated payment aggregate.
func (s *PaymentService) Get(ctx context.Context, id int64) (*entity.Payment, error) {
	payment, err := s.paymentRepo.GetWithItems(ctx, id)
	if err != nil {
		return nil, err
	}
	if payment == nil {
		return nil, apperror.NewNotFoundError("Payment")
	}
	s.hydrate(payment)
	return payment, nil
}

// List returns the most recent payments, newest first, fully hydrated.
func (s *PaymentService) List(ctx context.Context) ([]entity.Payment, error) {
	payments, err := s.paymentRepo.List(ctx, listLimit)
	if err != nil {
		return nil, err
	}
	for i := range payments {
		s.hydrate(&payments[i])
	}
	return payments, nil
}

// normalizeItems validates every raw item in order and converts each into
// its canonical form. The first violation aborts the whole payment; no
// write is attempted until every item has passed.
func (s *PaymentService) normalizeItems(inputs []PaymentItemInput) ([]entity.PaymentItem, error) {
	if len(inputs) == 0 {
		return nil, apperror.NewValidationError(apperror.KindEmptyItemList, "Payment must contain at least one item")
	}

	items := make([]entity.PaymentItem, 0, len(inputs))
	for _, input := range inputs {
		if math.IsNaN(input.Quantity) || math.IsInf(input.Quantity, 0) || input.Quantity <= 0 {
			return nil, apperror.NewValidationError(apperror.KindInvalidQuantity, "Item quantity must be greater than 0")
		}
		name := strings.TrimSpace(input.Name)
		if name == "" {
			return nil, apperror.NewValidationError(apperror.KindInvalidName, "Item name cannot be empty")
		}
		if input.BaseUnitPrice < 0 {
			return nil, apperror.NewValidationError(apperror.KindNegativeBasePrice, "Base unit price cannot be negative")
		}

		effectivePrice := input.BaseUnitPrice
		if input.EffectiveUnitPrice != nil {
			effectivePrice = *input.EffectiveUnitPrice
		} else if input.Price != nil {
			effectivePrice = *input.Price
		}
		if effectivePrice < 0 {
			return nil, apperror.NewValidationError(apperror.KindNegativeEffectivePrice, "Effective unit price cannot be negative")
		}

		// A negative override is discarded, not rejected.
		editedPrice := input.EditedUnitPrice
		if editedPrice != nil && *editedPrice < 0 {
			editedPrice = nil
		}

		lineSubtotal := s.normalizer.Normalize(float64(effectivePrice) * input.Quantity)
		if input.LineSubtotal != nil {
			lineSubtotal = *input.LineSubtotal
		}
		if lineSubtotal < 0 {
			return nil, apperror.NewValidationError(apperror.KindNegativeSubtotal, "Line subtotal cannot be negative")
		}

		var lineDiscount int64
		if input.LineDiscount != nil {
			lineDiscount = *input.LineDiscount
		}
		if lineDiscount < 0 {
			return nil, apperror.NewValidationError(apperror.KindNegativeDiscount, "Line discount cannot be negative")
		}

		// Legacy consumers read an integer quantity; small decimals must
		// not round down to zero.
		legacyQuantity := int64(math.Round(input.Quantity))
		if legacyQuantity <= 0 {
			legacyQuantity = 1
		}

		quantityDecimal := input.Quantity
		baseUnitPrice := input.BaseUnitPrice
		items = append(items, entity.PaymentItem{
			ProductID:       input.ProductID,
			Name:            name,
			Quantity:        legacyQuantity,
			Price:           effectivePrice,
			QuantityDecimal: &quantityDecimal,
			BaseUnitPrice:   &baseUnitPrice,
			EditedUnitPrice: editedPrice,
			LineSubtotal:    &lineSubtotal,
			LineDiscount:    lineDiscount,
		})
	}

	return items, nil
}

// hydrate backfills item fields that are NULL in storage, so rows written
// before the optional columns existed read identically to rows that always
// had them: decimal quantity falls back to the legacy integer, base price
// to the stored effective price, and the subtotal is recomputed under the
// canonical rounding policy.
func (s *PaymentService) hydrate(payment *entity.Payment) {
	for i := range payment.Items {
		item := &payment.Items[i]

		if item.QuantityDecimal == nil {
			quantity := float64(item.Quantity)
			item.QuantityDecimal = &quantity
		}
		if item.BaseUnitPrice == nil {
			basePrice := item.Price
			item.BaseUnitPrice = &basePrice
		}
		if item.LineSubtotal == nil {
			subtotal := s.normalizer.Normalize(float64(item.Price) * *item.QuantityDecimal)
			item.LineSubtotal = &subtotal
		}
	}
}

func normalizeNote(note *string) *string {
	if note == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*note)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
