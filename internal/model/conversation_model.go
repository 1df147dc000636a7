package model

import (
	"time"

	"github.com/google/uuid"
)

type Conversation struct {
	Id        int64      `gorm:"primaryKey;autoIncrement"`
	PublicId  uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:ux_conversations_public_id"`
	UserUuid  uuid.UUID  `gorm:"type:uuid;not null;index:idx_conversations_user_updated,priority:1"`
	Title     *string    `gorm:"type:varchar(255)"`
	CreatedAt time.Time  `gorm:"not null"`
	UpdatedAt time.Time  `gorm:"not null;index:idx_conversations_user_updated,priority:2,sort:desc"`
	Messages  []Message  `gorm:"foreignKey:ConversationId;references:Id;constraint:OnDelete:CASCADE"`
}

func (Conversation) TableName() string {
	return "conversations"
}
