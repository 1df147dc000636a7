package entity

import (
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
)

// FallbackTitle is used when the first message carries no usable text.
const FallbackTitle = "New Conversation"

// titleMaxCodePoints caps derived titles, counted in Unicode code points so
// emoji and astral-plane characters are never split.
const titleMaxCodePoints = 50

// Conversation is the aggregate root of the chat domain. The numeric Id is
// the surrogate key and never leaves the service; PublicId is the stable
// identifier clients see.
type Conversation struct {
	Id        int64
	PublicId  uuid.UUID
	UserUuid  uuid.UUID
	Title     string // empty means not derived yet
	CreatedAt time.Time
	UpdatedAt time.Time
	Messages  []Message
}

// AddMessage appends a message to the in-memory aggregate. Persistence of
// the new row happens on the next repository Save.
func (c *Conversation) AddMessage(role, content string, at time.Time) {
	c.Messages = append(c.Messages, Message{
		ConversationId: c.Id,
		Role:           role,
		Content:        content,
		CreatedAt:      at,
	})
}

// GenerateTitleFromFirstMessage derives the title from the earliest message.
// Messages must already be in created_at order when this is called.
func (c *Conversation) GenerateTitleFromFirstMessage() {
	if len(c.Messages) == 0 {
		c.Title = FallbackTitle
		return
	}
	c.Title = DeriveTitle(c.Messages[0].Content)
}

// DeriveTitle sanitizes message content into a display title: control
// characters (except tab) become spaces, whitespace runs collapse to one
// space, and anything longer than 50 code points is truncated with "...".
func DeriveTitle(content string) string {
	if strings.TrimSpace(content) == "" {
		return FallbackTitle
	}

	var b strings.Builder
	b.Grow(len(content))
	for _, r := range content {
		if unicode.Is(unicode.Cc, r) && r != '\t' {
			b.WriteRune(' ')
		} else {
			b.WriteRune(r)
		}
	}

	sanitized := strings.Join(strings.Fields(b.String()), " ")
	if sanitized == "" {
		return FallbackTitle
	}

	runes := []rune(sanitized)
	if len(runes) > titleMaxCodePoints {
		return strings.TrimRight(string(runes[:titleMaxCodePoints]), " ") + "..."
	}
	return sanitized
}
