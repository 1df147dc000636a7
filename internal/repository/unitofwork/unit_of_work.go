package unitofwork

import (
	"context"

	"openai-chatbot-be/internal/repository/contract"
)

// UnitOfWork scopes repository access to a single database transaction.
// Callers follow Begin -> defer Rollback -> work -> Commit; Rollback after a
// successful Commit is a no-op.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	ConversationRepository() contract.ConversationRepository
}
