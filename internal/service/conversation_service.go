package service

import (
	"context"
	"time"

	"openai-chatbot-be/internal/constant"
	"openai-chatbot-be/internal/dto"
	"openai-chatbot-be/internal/entity"
	"openai-chatbot-be/internal/pkg/apperrors"
	"openai-chatbot-be/internal/pkg/logger"
	"openai-chatbot-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

// IConversationService owns conversation lifecycle and the read projections.
type IConversationService interface {
	CreateConversation(ctx context.Context, userUuid uuid.UUID) (*entity.Conversation, error)
	AppendMessagePair(ctx context.Context, publicId uuid.UUID, userText, assistantText string) error
	GetById(ctx context.Context, publicId uuid.UUID) (*dto.ConversationDetailResponse, error)
	ListForUser(ctx context.Context, userUuid uuid.UUID) ([]*dto.ConversationSummaryResponse, error)
}

type conversationService struct {
	uowFactory unitofwork.RepositoryFactory
	log        logger.ILogger
}

func NewConversationService(uowFactory unitofwork.RepositoryFactory, log logger.ILogger) IConversationService {
	return &conversationService{
		uowFactory: uowFactory,
		log:        log,
	}
}

// CreateConversation persists an empty conversation owned by the given user.
// The repository allocates the public id and timestamps.
func (s *conversationService) CreateConversation(ctx context.Context, userUuid uuid.UUID) (*entity.Conversation, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if err := uow.Begin(ctx); err != nil {
		return nil, apperrors.NewServiceError("create conversation", err)
	}
	defer uow.Rollback()

	conversation := &entity.Conversation{UserUuid: userUuid}
	if err := uow.ConversationRepository().Insert(ctx, conversation); err != nil {
		s.log.Error("conversation", "insert failed", map[string]interface{}{
			"user_uuid": userUuid.String(),
			"error":     err.Error(),
		})
		return nil, apperrors.NewServiceError("create conversation", err)
	}

	if err := uow.Commit(); err != nil {
		return nil, apperrors.NewServiceError("create conversation", err)
	}

	s.log.Info("conversation", "conversation created", map[string]interface{}{
		"public_id": conversation.PublicId.String(),
	})
	return conversation, nil
}

// AppendMessagePair stores one chat turn atomically: the user message, the
// assistant message, and the derived title when the conversation has none.
func (s *conversationService) AppendMessagePair(ctx context.Context, publicId uuid.UUID, userText, assistantText string) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if err := uow.Begin(ctx); err != nil {
		return apperrors.NewServiceError("append message pair", err)
	}
	defer uow.Rollback()

	repo := uow.ConversationRepository()
	conversation, err := repo.FindByPublicIdWithMessages(ctx, publicId)
	if err != nil {
		return apperrors.NewServiceError("append message pair", err)
	}
	if conversation == nil {
		return apperrors.ErrConversationNotFound
	}

	// Two separate readings keep user.created_at <= assistant.created_at;
	// on clock collision the read path falls back to insertion order.
	conversation.AddMessage(constant.MessageRoleUser, userText, time.Now())
	conversation.AddMessage(constant.MessageRoleAssistant, assistantText, time.Now())

	// Runs after the append so a previously empty conversation derives its
	// title from the message just added.
	if conversation.Title == "" {
		conversation.GenerateTitleFromFirstMessage()
	}

	if err := repo.Save(ctx, conversation); err != nil {
		s.log.Error("conversation", "save failed", map[string]interface{}{
			"public_id": publicId.String(),
			"error":     err.Error(),
		})
		return apperrors.NewServiceError("append message pair", err)
	}

	if err := uow.Commit(); err != nil {
		return apperrors.NewServiceError("append message pair", err)
	}

	s.log.Debug("conversation", "message pair saved", map[string]interface{}{
		"public_id": publicId.String(),
	})
	return nil
}

// GetById returns the full conversation, messages in created_at order. The
// eager repository variant is used unconditionally so the projection never
// depends on deferred loading.
func (s *conversationService) GetById(ctx context.Context, publicId uuid.UUID) (*dto.ConversationDetailResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	conversation, err := uow.ConversationRepository().FindByPublicIdWithMessages(ctx, publicId)
	if err != nil {
		return nil, apperrors.NewServiceError("get conversation", err)
	}
	if conversation == nil {
		return nil, apperrors.ErrConversationNotFound
	}

	messages := make([]dto.MessageResponse, 0, len(conversation.Messages))
	for _, m := range conversation.Messages {
		messages = append(messages, dto.MessageResponse{
			Role:      m.Role,
			Content:   m.Content,
			Timestamp: m.CreatedAt,
		})
	}

	return &dto.ConversationDetailResponse{
		Id:        conversation.PublicId,
		UserId:    conversation.UserUuid,
		Title:     titleOrNil(conversation.Title),
		CreatedAt: conversation.CreatedAt,
		UpdatedAt: conversation.UpdatedAt,
		Messages:  messages,
	}, nil
}

// ListForUser returns summaries ordered by updated_at descending, as the
// repository yields them.
func (s *conversationService) ListForUser(ctx context.Context, userUuid uuid.UUID) ([]*dto.ConversationSummaryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	conversations, err := uow.ConversationRepository().ListByUser(ctx, userUuid)
	if err != nil {
		return nil, apperrors.NewServiceError("list conversations", err)
	}

	summaries := make([]*dto.ConversationSummaryResponse, 0, len(conversations))
	for _, c := range conversations {
		summaries = append(summaries, &dto.ConversationSummaryResponse{
			Id:        c.PublicId,
			Title:     titleOrNil(c.Title),
			CreatedAt: c.CreatedAt,
			UpdatedAt: c.UpdatedAt,
		})
	}
	return summaries, nil
}

func titleOrNil(title string) *string {
	if title == "" {
		return nil
	}
	return &title
}
