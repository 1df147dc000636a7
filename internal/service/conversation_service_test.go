package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"openai-chatbot-be/internal/constant"
	"openai-chatbot-be/internal/entity"
	"openai-chatbot-be/internal/pkg/apperrors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newConversationFixture() (*fakeConversationRepo, *fakeUnitOfWork, IConversationService) {
	repo := newFakeConversationRepo()
	uow := &fakeUnitOfWork{repo: repo}
	svc := NewConversationService(&fakeFactory{uow: uow}, nopLogger{})
	return repo, uow, svc
}

func TestCreateConversation(t *testing.T) {
	_, uow, svc := newConversationFixture()

	conversation, err := svc.CreateConversation(context.Background(), constant.DefaultUserId)
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, conversation.PublicId)
	assert.Equal(t, constant.DefaultUserId, conversation.UserUuid)
	assert.Empty(t, conversation.Title)
	assert.Empty(t, conversation.Messages)
	assert.Equal(t, 1, uow.commits)
}

func TestCreateConversationInsertFailureRollsBack(t *testing.T) {
	repo, uow, svc := newConversationFixture()
	repo.insertErr = errors.New("connection reset")

	_, err := svc.CreateConversation(context.Background(), constant.DefaultUserId)

	var svcErr *apperrors.ServiceError
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, 0, uow.commits)
	assert.Equal(t, 1, uow.rollbacks)
}

func TestAppendMessagePairStoresTurnInOrder(t *testing.T) {
	repo, uow, svc := newConversationFixture()

	conversation, err := svc.CreateConversation(context.Background(), constant.DefaultUserId)
	require.NoError(t, err)

	err = svc.AppendMessagePair(context.Background(), conversation.PublicId, "How do goroutines work?", "They are lightweight threads.")
	require.NoError(t, err)

	stored, err := repo.FindByPublicIdWithMessages(context.Background(), conversation.PublicId)
	require.NoError(t, err)
	require.Len(t, stored.Messages, 2)
	assert.Equal(t, constant.MessageRoleUser, stored.Messages[0].Role)
	assert.Equal(t, "How do goroutines work?", stored.Messages[0].Content)
	assert.Equal(t, constant.MessageRoleAssistant, stored.Messages[1].Role)
	assert.Equal(t, "They are lightweight threads.", stored.Messages[1].Content)
	assert.False(t, stored.Messages[1].CreatedAt.Before(stored.Messages[0].CreatedAt))

	assert.Equal(t, "How do goroutines work?", stored.Title)
	assert.Equal(t, 2, uow.commits)
}

func TestAppendMessagePairDerivesTitleOnlyOnce(t *testing.T) {
	repo, _, svc := newConversationFixture()

	conversation, err := svc.CreateConversation(context.Background(), constant.DefaultUserId)
	require.NoError(t, err)

	require.NoError(t, svc.AppendMessagePair(context.Background(), conversation.PublicId, "first question", "first answer"))
	require.NoError(t, svc.AppendMessagePair(context.Background(), conversation.PublicId, "second question", "second answer"))

	stored, err := repo.FindByPublicIdWithMessages(context.Background(), conversation.PublicId)
	require.NoError(t, err)
	require.Len(t, stored.Messages, 4)
	assert.Equal(t, "first question", stored.Title)
}

func TestAppendMessagePairTruncatesLongTitle(t *testing.T) {
	repo, _, svc := newConversationFixture()

	conversation, err := svc.CreateConversation(context.Background(), constant.DefaultUserId)
	require.NoError(t, err)

	long := strings.Repeat("a", 120)
	require.NoError(t, svc.AppendMessagePair(context.Background(), conversation.PublicId, long, "ok"))

	stored, err := repo.FindByPublicIdWithMessages(context.Background(), conversation.PublicId)
	require.NoError(t, err)
	assert.Equal(t, strings.Repeat("a", 50)+"...", stored.Title)
}

func TestAppendMessagePairUnknownConversation(t *testing.T) {
	_, uow, svc := newConversationFixture()

	err := svc.AppendMessagePair(context.Background(), uuid.New(), "hello", "hi")

	assert.ErrorIs(t, err, apperrors.ErrConversationNotFound)
	assert.Equal(t, 0, uow.commits)
}

func TestGetByIdReturnsMessagesChronologically(t *testing.T) {
	repo, _, svc := newConversationFixture()

	conversation, err := svc.CreateConversation(context.Background(), constant.DefaultUserId)
	require.NoError(t, err)

	// Equal timestamps on every row; insertion order must win.
	at := time.Now().Truncate(time.Second)
	stored := repo.byPublicId[conversation.PublicId]
	for i, content := range []string{"q1", "a1", "q2", "a2"} {
		role := constant.MessageRoleUser
		if i%2 == 1 {
			role = constant.MessageRoleAssistant
		}
		stored.Messages = append(stored.Messages, entity.Message{
			Id:             int64(i + 1),
			ConversationId: stored.Id,
			Role:           role,
			Content:        content,
			CreatedAt:      at,
		})
	}

	detail, err := svc.GetById(context.Background(), conversation.PublicId)
	require.NoError(t, err)

	require.Len(t, detail.Messages, 4)
	assert.Equal(t, "q1", detail.Messages[0].Content)
	assert.Equal(t, "a1", detail.Messages[1].Content)
	assert.Equal(t, "q2", detail.Messages[2].Content)
	assert.Equal(t, "a2", detail.Messages[3].Content)
	assert.Equal(t, conversation.PublicId, detail.Id)
	assert.Nil(t, detail.Title)
}

func TestGetByIdUnknownConversation(t *testing.T) {
	_, _, svc := newConversationFixture()

	_, err := svc.GetById(context.Background(), uuid.New())

	assert.ErrorIs(t, err, apperrors.ErrConversationNotFound)
}

func TestListForUserNewestFirst(t *testing.T) {
	repo, _, svc := newConversationFixture()

	first, err := svc.CreateConversation(context.Background(), constant.DefaultUserId)
	require.NoError(t, err)
	second, err := svc.CreateConversation(context.Background(), constant.DefaultUserId)
	require.NoError(t, err)

	// Touching the older conversation moves it to the top of the list.
	base := time.Now()
	repo.byPublicId[first.PublicId].UpdatedAt = base.Add(time.Minute)
	repo.byPublicId[second.PublicId].UpdatedAt = base

	summaries, err := svc.ListForUser(context.Background(), constant.DefaultUserId)
	require.NoError(t, err)

	require.Len(t, summaries, 2)
	assert.Equal(t, first.PublicId, summaries[0].Id)
	assert.Equal(t, second.PublicId, summaries[1].Id)
}

func TestListForUserEmpty(t *testing.T) {
	_, _, svc := newConversationFixture()

	summaries, err := svc.ListForUser(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Empty(t, summaries)
}
