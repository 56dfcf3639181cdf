package service

import (
	"context"
	"testing"

	infraRepo "github.com/minhtran-dev/pos-ledger-api/internal/infrastructure/repository"
	"github.com/minhtran-dev/pos-ledger-api/pkg/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newProductService(t *testing.T) (*ProductService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	return NewProductService(infraRepo.NewProductRepository(db)), db
}

func TestCreateProductNormalizesInput(t *testing.T) {
	svc, _ := newProductService(t)

	product, err := svc.Create(context.Background(), &ProductInput{
		Name:         "  Cà phê đen  ",
		Price:        25,
		Barcode:      str("   "),
		Visible:      true,
		DisplayOrder: 1,
	})
	require.NoError(t, err)
	assert.Equal(t, "Cà phê đen", product.Name)
	assert.Equal(t, int64(25), product.Price)
	assert.Nil(t, product.Barcode)
	assert.True(t, product.Visible)

	product, err = svc.Create(context.Background(), &ProductInput{
		Name:    "Trà sữa",
		Price:   30,
		Barcode: str(" 8931234 "),
	})
	require.NoError(t, err)
	require.NotNil(t, product.Barcode)
	assert.Equal(t, "8931234", *product.Barcode)
}

func TestUpdateProduct(t *testing.T) {
	svc, _ := newProductService(t)

	created, err := svc.Create(context.Background(), &ProductInput{Name: "Sinh tố", Price: 40, Visible: true, DisplayOrder: 2})
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), created.ID, &ProductInput{
		Name:         "Sinh tố bơ",
		Price:        45,
		Visible:      false,
		QuickDisplay: true,
		DisplayOrder: 5,
	})
	require.NoError(t, err)
	assert.Equal(t, "Sinh tố bơ", updated.Name)
	assert.Equal(t, int64(45), updated.Price)
	assert.False(t, updated.Visible)
	assert.True(t, updated.QuickDisplay)
	assert.Equal(t, int64(5), updated.DisplayOrder)
}

func TestUpdateProductNotFound(t *testing.T) {
	svc, _ := newProductService(t)

	_, err := svc.Update(context.Background(), 9999, &ProductInput{Name: "Ghost", Price: 1})
	require.Error(t, err)
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))
}

func TestListProductsByDisplayOrder(t *testing.T) {
	svc, _ := newProductService(t)

	for _, p := range []ProductInput{
		{Name: "Thứ ba", Price: 10, DisplayOrder: 3},
		{Name: "Thứ nhất", Price: 10, DisplayOrder: 1},
		{Name: "Thứ hai", Price: 10, DisplayOrder: 2},
	} {
		input := p
		_, err := svc.Create(context.Background(), &input)
		require.NoError(t, err)
	}

	products, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 3)
	assert.Equal(t, "Thứ nhất", products[0].Name)
	assert.Equal(t, "Thứ hai", products[1].Name)
	assert.Equal(t, "Thứ ba", products[2].Name)
}
