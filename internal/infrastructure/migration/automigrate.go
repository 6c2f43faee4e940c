package migration

import (
	"fmt"

	"gorm.io/gorm"

	"quickdesk/internal/infrastructure/persistence/models"
	"quickdesk/internal/shared/logger"
)

// AutoMigrateModels lists every persistence model in migration order.
func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.UserModel{},
		&models.CategoryModel{},
		&models.TicketModel{},
		&models.CommentModel{},
		&models.TicketVoteModel{},
		&models.CommentVoteModel{},
		&models.RoleRequestModel{},
	}
}

// Run migrates the schema for all registered models.
func Run(db *gorm.DB) error {
	logger.Info("starting database migration", "models", len(AutoMigrateModels()))

	if err := db.AutoMigrate(AutoMigrateModels()...); err != nil {
		return fmt.Errorf("failed to migrate database schema: %w", err)
	}

	logger.Info("database migration completed")
	return nil
}
