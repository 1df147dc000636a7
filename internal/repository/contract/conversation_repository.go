package contract

import (
	"context"

	"openai-chatbot-be/internal/entity"

	"github.com/google/uuid"
)

// ConversationRepository is the data-access layer for conversations and their
// messages. Write operations run on whatever DB handle the unit of work
// provides, so they join the caller's transaction.
type ConversationRepository interface {
	// Insert allocates a fresh public id, stamps both timestamps and
	// persists the row. The passed entity is populated in place.
	Insert(ctx context.Context, conversation *entity.Conversation) error

	// FindByPublicId returns the conversation without its messages, or nil
	// when no row matches.
	FindByPublicId(ctx context.Context, publicId uuid.UUID) (*entity.Conversation, error)

	// FindByPublicIdWithMessages eagerly loads the message sequence ordered
	// by created_at ascending (internal id as tie-break). Returns nil when
	// no row matches.
	FindByPublicIdWithMessages(ctx context.Context, publicId uuid.UUID) (*entity.Conversation, error)

	// ListByUser returns the user's conversations ordered by updated_at
	// descending. Messages are not loaded.
	ListByUser(ctx context.Context, userUuid uuid.UUID) ([]*entity.Conversation, error)

	// Save persists title changes and any newly appended messages, and
	// bumps updated_at. Existing message rows are never touched.
	Save(ctx context.Context, conversation *entity.Conversation) error
}
