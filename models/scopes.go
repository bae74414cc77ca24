package models

import "gorm.io/gorm"

// Visible filters out tombstoned rows. Every ordinary read applies this
// scope; only the trash package touches deleted_at directly.
func Visible(db *gorm.DB) *gorm.DB {
	return db.Where("deleted_at IS NULL")
}
