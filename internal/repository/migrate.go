package repository

import "gorm.io/gorm"

// AutoMigrate creates or updates the schema for all row models.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&userModel{},
		&postModel{},
		&fileModel{},
	)
}
