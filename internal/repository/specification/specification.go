package specification

import "gorm.io/gorm"

// Specification is a composable query filter applied by repositories.
type Specification interface {
	Apply(db *gorm.DB) *gorm.DB
}
