package service

import (
	"context"

	"openai-chatbot-be/internal/constant"
	"openai-chatbot-be/internal/dto"
	"openai-chatbot-be/internal/pkg/apperrors"
	"openai-chatbot-be/internal/pkg/logger"
	"openai-chatbot-be/pkg/llm"

	"github.com/google/uuid"
)

// IChatService runs one chat turn: resolve the conversation, call the
// upstream provider, persist the pair.
type IChatService interface {
	Chat(ctx context.Context, message string, conversationId *uuid.UUID) (*dto.ChatResponse, error)
}

type chatService struct {
	conversations IConversationService
	provider      llm.Provider
	model         string
	log           logger.ILogger
}

func NewChatService(conversations IConversationService, provider llm.Provider, model string, log logger.ILogger) IChatService {
	return &chatService{
		conversations: conversations,
		provider:      provider,
		model:         model,
		log:           log,
	}
}

// Chat creates a conversation when no id was given, forwards only the current
// message upstream, and appends the turn. When the upstream call fails after
// a conversation was created, the empty conversation is kept; its id was
// never returned, so nothing references it.
func (s *chatService) Chat(ctx context.Context, message string, conversationId *uuid.UUID) (*dto.ChatResponse, error) {
	var convId uuid.UUID
	if conversationId != nil {
		convId = *conversationId
	} else {
		conversation, err := s.conversations.CreateConversation(ctx, constant.DefaultUserId)
		if err != nil {
			return nil, err
		}
		convId = conversation.PublicId
	}

	completion, err := s.provider.CreateChatCompletion(ctx, s.model, []llm.Message{
		{Role: constant.MessageRoleUser, Content: message},
	})
	if err != nil {
		return nil, apperrors.NewUpstreamError(err)
	}

	assistantText, err := extractReply(completion)
	if err != nil {
		return nil, err
	}

	if err := s.conversations.AppendMessagePair(ctx, convId, message, assistantText); err != nil {
		// The upstream call is already billed at this point; acknowledged
		// and surfaced as a persistence failure.
		return nil, err
	}

	s.log.Info("chat", "turn completed", map[string]interface{}{
		"conversation_id": convId.String(),
		"model":           s.model,
	})

	return &dto.ChatResponse{
		Response:       assistantText,
		Model:          s.model,
		ConversationId: convId,
	}, nil
}

func extractReply(completion *llm.Completion) (string, error) {
	if completion == nil || len(completion.Choices) == 0 {
		return "", apperrors.NewMalformedReplyError("no choices in reply")
	}
	choice := completion.Choices[0]
	if choice.Message == nil {
		return "", apperrors.NewMalformedReplyError("choice carries no message")
	}
	if choice.Message.Content == "" {
		return "", apperrors.NewMalformedReplyError("message has no content")
	}
	return choice.Message.Content, nil
}
