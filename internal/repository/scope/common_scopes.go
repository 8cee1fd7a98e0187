package scope

import "gorm.io/gorm"

func OrderByCreatedDesc(db *gorm.DB) *gorm.DB {
	return db.Order("created_at DESC")
}

// OrderByDeletedDesc lists the trash with the most recently deleted first.
func OrderByDeletedDesc(db *gorm.DB) *gorm.DB {
	return db.Order("deleted_at DESC")
}
