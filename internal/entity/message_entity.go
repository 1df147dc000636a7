package entity

import "time"

// Message is one utterance inside a conversation. Messages are append-only;
// there are no update or delete paths.
type Message struct {
	Id             int64
	ConversationId int64
	Role           string
	Content        string
	CreatedAt      time.Time
}
