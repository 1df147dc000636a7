package model

import "time"

type Message struct {
	Id             int64     `gorm:"primaryKey;autoIncrement"`
	ConversationId int64     `gorm:"not null;index:idx_messages_conversation_created,priority:1"`
	Role           string    `gorm:"type:varchar(20);not null"`
	Content        string    `gorm:"type:text;not null"`
	CreatedAt      time.Time `gorm:"not null;index:idx_messages_conversation_created,priority:2"`
}

func (Message) TableName() string {
	return "messages"
}
