package database

import (
	"fmt"
	"log"

	"github.com/minhtran-dev/pos-ledger-api/internal/domain/entity"
	"gorm.io/gorm"
)

// migration is one numbered, additive schema step. Steps only ever create
// tables or add columns; nothing is dropped or retyped.
type migration struct {
	Version int
	Name    string
	Run     func(db *gorm.DB) error
}

// migrations is the full, ordered evolution of the schema. Versions 2-6
// exist because the line-item table originally carried only the legacy
// integer quantity and a single price column; later versions added the
// decimal quantity and price-breakdown columns. Rows written before those
// versions are backfilled at read time, never rewritten.
var migrations = []migration{
	{1, "create baseline tables", createBaselineTables},
	{2, "add payment_items.quantity_decimal", addItemColumn("quantity_decimal", "REAL")},
	{3, "add payment_items.base_unit_price", addItemColumn("base_unit_price", "INTEGER")},
	{4, "add payment_items.edited_unit_price", addItemColumn("edited_unit_price", "INTEGER")},
	{5, "add payment_items.line_subtotal", addItemColumn("line_subtotal", "INTEGER")},
	{6, "add payment_items.line_discount", addItemColumn("line_discount", "INTEGER NOT NULL DEFAULT 0")},
}

// Migrate brings the schema up to the current version. It is safe to call
// on every open: applied versions are recorded in schema_migrations and
// skipped, and each step is individually idempotent, so a failed run can
// simply be retried.
func Migrate(db *gorm.DB) error {
	if err := db.Exec(
		`CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			name TEXT NOT NULL,
			applied_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`).Error; err != nil {
		return fmt.Errorf("schema migration: failed to create version table: %w", err)
	}

	for _, m := range migrations {
		var count int64
		if err := db.Raw(
			"SELECT COUNT(*) FROM schema_migrations WHERE version = ?", m.Version,
		).Scan(&count).Error; err != nil {
			return fmt.Errorf("schema migration %d: failed to read version table: %w", m.Version, err)
		}
		if count > 0 {
			continue
		}

		if err := m.Run(db); err != nil {
			return fmt.Errorf("schema migration %d (%s): %w", m.Version, m.Name, err)
		}
		if err := db.Exec(
			"INSERT INTO schema_migrations (version, name) VALUES (?, ?)", m.Version, m.Name,
		).Error; err != nil {
			return fmt.Errorf("schema migration %d: failed to record version: %w", m.Version, err)
		}
		log.Printf("Applied schema migration %d: %s", m.Version, m.Name)
	}

	return nil
}

func createBaselineTables(db *gorm.DB) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS products (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			price INTEGER NOT NULL,
			barcode TEXT,
			visible INTEGER NOT NULL DEFAULT 1,
			quick_display INTEGER NOT NULL DEFAULT 0,
			display_order INTEGER NOT NULL DEFAULT 1,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS payments (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			invoice_number TEXT NOT NULL,
			cashier_name TEXT NOT NULL,
			subtotal INTEGER NOT NULL,
			tax INTEGER NOT NULL,
			total INTEGER NOT NULL,
			discount INTEGER NOT NULL DEFAULT 0,
			paid_cash INTEGER NOT NULL,
			change_due INTEGER NOT NULL,
			note TEXT,
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS payment_items (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			payment_id INTEGER NOT NULL REFERENCES payments(id) ON DELETE CASCADE,
			product_id INTEGER,
			name TEXT NOT NULL,
			quantity INTEGER NOT NULL,
			price INTEGER NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS cashiers (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			code TEXT NOT NULL UNIQUE,
			name TEXT NOT NULL,
			role TEXT NOT NULL,
			last_active TEXT,
			require_pin INTEGER NOT NULL DEFAULT 0,
			pin TEXT,
			display_order INTEGER NOT NULL DEFAULT 1,
			is_active INTEGER NOT NULL DEFAULT 1,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,
	}
	for _, stmt := range statements {
		if err := db.Exec(stmt).Error; err != nil {
			return err
		}
	}
	return nil
}

// addItemColumn returns a step that adds one optional column to the
// line-item table. The HasColumn guard keeps the step idempotent even
// against databases written before version tracking existed, where the
// column may already be present without a schema_migrations row.
func addItemColumn(column, definition string) func(db *gorm.DB) error {
	return func(db *gorm.DB) error {
		if db.Migrator().HasColumn(&entity.PaymentItem{}, column) {
			return nil
		}
		return db.Exec(fmt.Sprintf(
			"ALTER TABLE payment_items ADD COLUMN %s %s", column, definition,
		)).Error
	}
}
