package constant

import "github.com/google/uuid"

const (
	MessageRoleUser      = "user"
	MessageRoleAssistant = "assistant"

	// MaxMessageLength caps user-submitted content at the HTTP edge,
	// counted in characters.
	MaxMessageLength = 4000
)

// DefaultUserId is the sentinel owner used until authentication lands.
// Every layer that needs it must source it from here.
var DefaultUserId = uuid.MustParse("00000000-0000-0000-0000-000000000000")
