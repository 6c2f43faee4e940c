package seeds

import (
	"fmt"

	"gorm.io/gorm"

	"quickdesk/internal/infrastructure/persistence/models"
)

// SeedPredefinedCategories inserts the default ticket categories. Seeding
// is idempotent: categories are matched by name and never duplicated or
// overwritten.
func SeedPredefinedCategories(db *gorm.DB) error {
	categories := []models.CategoryModel{
		{Name: "Technical", Description: "Hardware, software and infrastructure issues", Color: "#3B82F6", IsActive: true, IsPredefined: true},
		{Name: "Billing", Description: "Invoices, payments and subscription questions", Color: "#10B981", IsActive: true, IsPredefined: true},
		{Name: "Account", Description: "Login, profile and access problems", Color: "#F59E0B", IsActive: true, IsPredefined: true},
		{Name: "General", Description: "Anything that does not fit another category", Color: "#6B7280", IsActive: true, IsPredefined: true},
	}

	for _, c := range categories {
		var existing models.CategoryModel
		err := db.Where("LOWER(name) = LOWER(?)", c.Name).First(&existing).Error
		if err == nil {
			continue
		}
		if err != gorm.ErrRecordNotFound {
			return fmt.Errorf("failed to check category %q: %w", c.Name, err)
		}

		if err := db.Create(&c).Error; err != nil {
			return fmt.Errorf("failed to seed category %q: %w", c.Name, err)
		}
	}

	return nil
}
