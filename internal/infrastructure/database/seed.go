package database

import (
	"fmt"
	"log"

	"github.com/minhtran-dev/pos-ledger-api/internal/domain/entity"
	"gorm.io/gorm"
)

// SeedData is the initial reference data applied to a fresh database.
// It is injectable so tests and deployments can supply their own fixture.
type SeedData struct {
	Cashiers []entity.Cashier
}

func strPtr(s string) *string { return &s }

// DefaultSeed returns the stock cashier roster.
func DefaultSeed() SeedData {
	return SeedData{
		Cashiers: []entity.Cashier{
			{Code: "linh", Name: "Linh", Role: "Trưởng ca", LastActive: strPtr("08:05"), RequirePin: true, Pin: strPtr("1234"), DisplayOrder: 1, IsActive: true},
			{Code: "hoang", Name: "Hoàng", Role: "Thu ngân", LastActive: strPtr("08:10"), RequirePin: false, DisplayOrder: 2, IsActive: true},
			{Code: "an", Name: "An", Role: "Thu ngân", LastActive: strPtr("Đang nghỉ"), RequirePin: true, Pin: strPtr("5678"), DisplayOrder: 3, IsActive: true},
			{Code: "vi", Name: "Vi", Role: "Thu ngân", LastActive: strPtr("Hôm qua"), RequirePin: false, DisplayOrder: 4, IsActive: true},
		},
	}
}

// Seed inserts the reference rows only when the cashiers table is
// completely empty. Once any row exists the fixture never runs again.
func Seed(db *gorm.DB, data SeedData) error {
	var count int64
	if err := db.Model(&entity.Cashier{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count cashiers: %w", err)
	}
	if count > 0 {
		return nil
	}
	if len(data.Cashiers) == 0 {
		return nil
	}
	if err := db.Create(&data.Cashiers).Error; err != nil {
		return fmt.Errorf("failed to seed cashiers: %w", err)
	}
	log.Printf("Seeded %d default cashiers", len(data.Cashiers))
	return nil
}
