package dto

import "github.com/google/uuid"

type ChatRequest struct {
	Message        string     `json:"message" validate:"required,notblank,max=4000"`
	ConversationId *uuid.UUID `json:"conversationId"`
}

type ChatResponse struct {
	Response       string    `json:"response"`
	Model          string    `json:"model"`
	ConversationId uuid.UUID `json:"conversationId"`
}
