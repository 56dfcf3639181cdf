package database

import (
	"path/filepath"
	"testing"

	"github.com/minhtran-dev/pos-ledger-api/internal/config"
	"github.com/minhtran-dev/pos-ledger-api/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := NewSQLiteDB(&config.DatabaseConfig{
		Path: filepath.Join(t.TempDir(), "test.sqlite"),
	})
	require.NoError(t, err)
	return db
}

var optionalItemColumns = []string{
	"quantity_decimal",
	"base_unit_price",
	"edited_unit_price",
	"line_subtotal",
	"line_discount",
}

func TestMigrateCreatesSchema(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, Migrate(db))

	for _, table := range []string{"products", "payments", "payment_items", "cashiers"} {
		assert.True(t, db.Migrator().HasTable(table), "table %s should exist", table)
	}
	for _, column := range optionalItemColumns {
		assert.True(t, db.Migrator().HasColumn(&entity.PaymentItem{}, column), "column %s should exist", column)
	}
}

func TestMigrateTwiceIsNoOp(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, Migrate(db))
	require.NoError(t, Migrate(db))

	// No duplicate version rows, no duplicate columns.
	var versions int64
	require.NoError(t, db.Raw("SELECT COUNT(*) FROM schema_migrations").Scan(&versions).Error)
	assert.Equal(t, int64(len(migrations)), versions)

	columnTypes, err := db.Migrator().ColumnTypes(&entity.PaymentItem{})
	require.NoError(t, err)
	seen := make(map[string]int)
	for _, ct := range columnTypes {
		seen[ct.Name()]++
	}
	for name, count := range seen {
		assert.Equal(t, 1, count, "column %s duplicated", name)
	}
}

func TestMigrateUpgradesLegacyDatabase(t *testing.T) {
	db := openTestDB(t)

	// A database written before the optional columns (and before version
	// tracking) existed: baseline tables only.
	require.NoError(t, createBaselineTables(db))
	for _, column := range optionalItemColumns {
		require.False(t, db.Migrator().HasColumn(&entity.PaymentItem{}, column))
	}

	require.NoError(t, Migrate(db))

	for _, column := range optionalItemColumns {
		assert.True(t, db.Migrator().HasColumn(&entity.PaymentItem{}, column), "column %s should be added", column)
	}
}

func TestSeedOnlyRunsOnEmptyTable(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, Migrate(db))

	require.NoError(t, Seed(db, DefaultSeed()))

	var count int64
	require.NoError(t, db.Model(&entity.Cashier{}).Count(&count).Error)
	assert.Equal(t, int64(4), count)

	// A second run must not duplicate the fixture.
	require.NoError(t, Seed(db, DefaultSeed()))
	require.NoError(t, db.Model(&entity.Cashier{}).Count(&count).Error)
	assert.Equal(t, int64(4), count)
}

func TestSeedSkipsNonEmptyTable(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, Migrate(db))

	existing := entity.Cashier{Code: "mai", Name: "Mai", Role: "Thu ngân", DisplayOrder: 1, IsActive: true}
	require.NoError(t, db.Create(&existing).Error)

	require.NoError(t, Seed(db, DefaultSeed()))

	var count int64
	require.NoError(t, db.Model(&entity.Cashier{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestSeedInjectableFixture(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, Migrate(db))

	fixture := SeedData{Cashiers: []entity.Cashier{
		{Code: "t1", Name: "Tester", Role: "QA", DisplayOrder: 1, IsActive: true},
	}}
	require.NoError(t, Seed(db, fixture))

	var cashiers []entity.Cashier
	require.NoError(t, db.Find(&cashiers).Error)
	require.Len(t, cashiers, 1)
	assert.Equal(t, "t1", cashiers[0].Code)
}
