package dto

import (
	"time"

	"github.com/google/uuid"
)

type ConversationSummaryResponse struct {
	Id        uuid.UUID `json:"id"`
	Title     *string   `json:"title"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type ConversationDetailResponse struct {
	Id        uuid.UUID         `json:"id"`
	UserId    uuid.UUID         `json:"userId"`
	Title     *string           `json:"title"`
	CreatedAt time.Time         `json:"createdAt"`
	UpdatedAt time.Time         `json:"updatedAt"`
	Messages  []MessageResponse `json:"messages"`
}

type MessageResponse struct {
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}
