package database

import (
	"fmt"

	"github.com/franciscosanchezn/gin-meals-api/internal/models"
	"gorm.io/gorm"
)

// Migrate creates the sequences table plus the tables of the given models
func Migrate(db *gorm.DB, tables ...interface{}) error {
	all := append([]interface{}{&models.Sequence{}}, tables...)
	if err := db.AutoMigrate(all...); err != nil {
		return fmt.Errorf("auto-migrating schema: %w", err)
	}
	log.WithField("tables", len(all)).Info("Database schema migrated")
	return nil
}
