package scope

import "gorm.io/gorm"

// OrderByIdAsc returns rows in extraction order.
func OrderByIdAsc(db *gorm.DB) *gorm.DB {
	return db.Order("id ASC")
}
