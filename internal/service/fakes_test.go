package service

import (
	"context"
	"sort"
	"time"

	"openai-chatbot-be/internal/entity"
	"openai-chatbot-be/internal/repository/contract"
	"openai-chatbot-be/internal/repository/unitofwork"
	"openai-chatbot-be/pkg/llm"

	"github.com/google/uuid"
)

// nopLogger satisfies logger.ILogger without producing output.
type nopLogger struct{}

func (nopLogger) Debug(string, string, map[string]interface{}) {}
func (nopLogger) Info(string, string, map[string]interface{})  {}
func (nopLogger) Warn(string, string, map[string]interface{})  {}
func (nopLogger) Error(string, string, map[string]interface{}) {}
func (nopLogger) Sync() error                                  { return nil }

// fakeConversationRepo is an in-memory stand-in for the GORM repository.
// Commit/rollback semantics are approximated by the fake unit of work below.
type fakeConversationRepo struct {
	byPublicId map[uuid.UUID]*entity.Conversation
	nextConvId int64
	nextMsgId  int64

	insertErr error
	findErr   error
	saveErr   error
}

func newFakeConversationRepo() *fakeConversationRepo {
	return &fakeConversationRepo{
		byPublicId: make(map[uuid.UUID]*entity.Conversation),
	}
}

func (r *fakeConversationRepo) Insert(_ context.Context, c *entity.Conversation) error {
	if r.insertErr != nil {
		return r.insertErr
	}
	r.nextConvId++
	now := time.Now()
	c.Id = r.nextConvId
	c.PublicId = uuid.New()
	c.CreatedAt = now
	c.UpdatedAt = now

	stored := cloneConversation(c)
	r.byPublicId[c.PublicId] = stored
	return nil
}

func (r *fakeConversationRepo) FindByPublicId(_ context.Context, publicId uuid.UUID) (*entity.Conversation, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	stored, ok := r.byPublicId[publicId]
	if !ok {
		return nil, nil
	}
	c := cloneConversation(stored)
	c.Messages = nil
	return c, nil
}

func (r *fakeConversationRepo) FindByPublicIdWithMessages(_ context.Context, publicId uuid.UUID) (*entity.Conversation, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	stored, ok := r.byPublicId[publicId]
	if !ok {
		return nil, nil
	}
	c := cloneConversation(stored)
	sort.SliceStable(c.Messages, func(i, j int) bool {
		if c.Messages[i].CreatedAt.Equal(c.Messages[j].CreatedAt) {
			return c.Messages[i].Id < c.Messages[j].Id
		}
		return c.Messages[i].CreatedAt.Before(c.Messages[j].CreatedAt)
	})
	return c, nil
}

func (r *fakeConversationRepo) ListByUser(_ context.Context, userUuid uuid.UUID) ([]*entity.Conversation, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	var result []*entity.Conversation
	for _, stored := range r.byPublicId {
		if stored.UserUuid != userUuid {
			continue
		}
		c := cloneConversation(stored)
		c.Messages = nil
		result = append(result, c)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].UpdatedAt.After(result[j].UpdatedAt)
	})
	return result, nil
}

func (r *fakeConversationRepo) Save(_ context.Context, c *entity.Conversation) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	c.UpdatedAt = time.Now()
	for i := range c.Messages {
		if c.Messages[i].Id == 0 {
			r.nextMsgId++
			c.Messages[i].Id = r.nextMsgId
			c.Messages[i].ConversationId = c.Id
		}
	}
	r.byPublicId[c.PublicId] = cloneConversation(c)
	return nil
}

func cloneConversation(c *entity.Conversation) *entity.Conversation {
	out := *c
	out.Messages = make([]entity.Message, len(c.Messages))
	copy(out.Messages, c.Messages)
	return &out
}

// fakeUnitOfWork hands out the shared fake repository and records
// transaction bookkeeping.
type fakeUnitOfWork struct {
	repo      *fakeConversationRepo
	beginErr  error
	commitErr error

	begins    int
	commits   int
	rollbacks int
}

func (u *fakeUnitOfWork) Begin(context.Context) error {
	if u.beginErr != nil {
		return u.beginErr
	}
	u.begins++
	return nil
}

func (u *fakeUnitOfWork) Commit() error {
	if u.commitErr != nil {
		return u.commitErr
	}
	u.commits++
	return nil
}

func (u *fakeUnitOfWork) Rollback() error {
	u.rollbacks++
	return nil
}

func (u *fakeUnitOfWork) ConversationRepository() contract.ConversationRepository {
	return u.repo
}

type fakeFactory struct {
	uow *fakeUnitOfWork
}

func (f *fakeFactory) NewUnitOfWork(context.Context) unitofwork.UnitOfWork {
	return f.uow
}

// fakeProvider returns a canned completion or error.
type fakeProvider struct {
	completion *llm.Completion
	err        error

	calls    int
	gotModel string
	gotMsgs  []llm.Message
}

func (p *fakeProvider) CreateChatCompletion(_ context.Context, model string, messages []llm.Message) (*llm.Completion, error) {
	p.calls++
	p.gotModel = model
	p.gotMsgs = messages
	if p.err != nil {
		return nil, p.err
	}
	return p.completion, nil
}

func replyWith(content string) *llm.Completion {
	return &llm.Completion{
		Model: "gpt-test",
		Choices: []llm.Choice{
			{Message: &llm.Message{Role: "assistant", Content: content}},
		},
	}
}
