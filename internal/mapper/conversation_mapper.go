package mapper

import (
	"openai-chatbot-be/internal/entity"
	"openai-chatbot-be/internal/model"
)

type ConversationMapper struct{}

func NewConversationMapper() *ConversationMapper {
	return &ConversationMapper{}
}

func (m *ConversationMapper) ConversationToEntity(c *model.Conversation) *entity.Conversation {
	if c == nil {
		return nil
	}

	var title string
	if c.Title != nil {
		title = *c.Title
	}

	messages := make([]entity.Message, len(c.Messages))
	for i := range c.Messages {
		messages[i] = *m.MessageToEntity(&c.Messages[i])
	}

	return &entity.Conversation{
		Id:        c.Id,
		PublicId:  c.PublicId,
		UserUuid:  c.UserUuid,
		Title:     title,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
		Messages:  messages,
	}
}

func (m *ConversationMapper) ConversationToModel(c *entity.Conversation) *model.Conversation {
	if c == nil {
		return nil
	}

	// Blank titles are stored as NULL so the derived-title check stays a
	// simple IS NULL / blank test on read.
	var title *string
	if c.Title != "" {
		t := c.Title
		title = &t
	}

	messages := make([]model.Message, len(c.Messages))
	for i := range c.Messages {
		messages[i] = *m.MessageToModel(&c.Messages[i])
	}

	return &model.Conversation{
		Id:        c.Id,
		PublicId:  c.PublicId,
		UserUuid:  c.UserUuid,
		Title:     title,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
		Messages:  messages,
	}
}

func (m *ConversationMapper) MessageToEntity(msg *model.Message) *entity.Message {
	if msg == nil {
		return nil
	}

	return &entity.Message{
		Id:             msg.Id,
		ConversationId: msg.ConversationId,
		Role:           msg.Role,
		Content:        msg.Content,
		CreatedAt:      msg.CreatedAt,
	}
}

func (m *ConversationMapper) MessageToModel(msg *entity.Message) *model.Message {
	if msg == nil {
		return nil
	}

	return &model.Message{
		Id:             msg.Id,
		ConversationId: msg.ConversationId,
		Role:           msg.Role,
		Content:        msg.Content,
		CreatedAt:      msg.CreatedAt,
	}
}
