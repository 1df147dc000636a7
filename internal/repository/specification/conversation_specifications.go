package specification

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ByPublicId filters conversations by their externally visible UUID.
type ByPublicId struct {
	PublicId uuid.UUID
}

func (s ByPublicId) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("public_id = ?", s.PublicId)
}

// OwnedBy filters by the owning user UUID.
type OwnedBy struct {
	UserUuid uuid.UUID
}

func (s OwnedBy) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("user_uuid = ?", s.UserUuid)
}

// OrderBy applies ordering
type OrderBy struct {
	Field string
	Desc  bool
}

func (s OrderBy) Apply(db *gorm.DB) *gorm.DB {
	direction := "ASC"
	if s.Desc {
		direction = "DESC"
	}
	return db.Order(fmt.Sprintf("%s %s", s.Field, direction))
}
