package model

import "gorm.io/gorm"

// AutoMigrate runs GORM auto-migration for the key/value table.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&KVEntry{})
}
