package implementation

import (
	"context"
	"errors"
	"time"

	"openai-chatbot-be/internal/entity"
	"openai-chatbot-be/internal/mapper"
	"openai-chatbot-be/internal/model"
	"openai-chatbot-be/internal/repository/contract"
	"openai-chatbot-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ConversationRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ConversationMapper
}

func NewConversationRepository(db *gorm.DB) contract.ConversationRepository {
	return &ConversationRepositoryImpl{
		db:     db,
		mapper: mapper.NewConversationMapper(),
	}
}

func (r *ConversationRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ConversationRepositoryImpl) Insert(ctx context.Context, conversation *entity.Conversation) error {
	now := time.Now()
	conversation.PublicId = uuid.New()
	conversation.CreatedAt = now
	conversation.UpdatedAt = now

	m := r.mapper.ConversationToModel(conversation)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*conversation = *r.mapper.ConversationToEntity(m)
	return nil
}

func (r *ConversationRepositoryImpl) FindByPublicId(ctx context.Context, publicId uuid.UUID) (*entity.Conversation, error) {
	var m model.Conversation
	query := r.applySpecifications(r.db.WithContext(ctx), specification.ByPublicId{PublicId: publicId})
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ConversationToEntity(&m), nil
}

func (r *ConversationRepositoryImpl) FindByPublicIdWithMessages(ctx context.Context, publicId uuid.UUID) (*entity.Conversation, error) {
	var m model.Conversation
	query := r.applySpecifications(r.db.WithContext(ctx), specification.ByPublicId{PublicId: publicId}).
		Preload("Messages", func(db *gorm.DB) *gorm.DB {
			// created_at can collide inside one turn; the monotonic id
			// recovers insertion order.
			return db.Order("created_at ASC, id ASC")
		})
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ConversationToEntity(&m), nil
}

func (r *ConversationRepositoryImpl) ListByUser(ctx context.Context, userUuid uuid.UUID) ([]*entity.Conversation, error) {
	var models []*model.Conversation
	query := r.applySpecifications(r.db.WithContext(ctx),
		specification.OwnedBy{UserUuid: userUuid},
		specification.OrderBy{Field: "updated_at", Desc: true},
	)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}

	entities := make([]*entity.Conversation, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ConversationToEntity(m)
	}
	return entities, nil
}

func (r *ConversationRepositoryImpl) Save(ctx context.Context, conversation *entity.Conversation) error {
	now := time.Now()
	conversation.UpdatedAt = now

	m := r.mapper.ConversationToModel(conversation)

	// Messages are append-only, so only rows without an id are inserted.
	// The conversation row itself gets its title and updated_at refreshed.
	updates := map[string]interface{}{
		"title":      m.Title,
		"updated_at": m.UpdatedAt,
	}
	if err := r.db.WithContext(ctx).Model(&model.Conversation{}).
		Where("id = ?", m.Id).Updates(updates).Error; err != nil {
		return err
	}

	for i := range conversation.Messages {
		if conversation.Messages[i].Id != 0 {
			continue
		}
		conversation.Messages[i].ConversationId = conversation.Id
		row := r.mapper.MessageToModel(&conversation.Messages[i])
		if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
			return err
		}
		conversation.Messages[i].Id = row.Id
	}

	return nil
}
