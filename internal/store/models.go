package store

import "encoding/json"

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

type User struct {
	Name   string `json:"name"`
	Avatar string `json:"avatar,omitempty"`
}

type Message struct {
	ID        string `json:"id"`
	Role      string `json:"role"` // "user" or "assistant"
	Content   string `json:"content"`
	Timestamp int64  `json:"timestamp"` // epoch milliseconds
}

type Conversation struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Messages  []Message `json:"messages"`
	CreatedAt int64     `json:"createdAt"`
	UpdatedAt int64     `json:"updatedAt"`
}

// SavedPlan is a snapshot of a finalized itinerary. Itinerary is stored
// as opaque JSON so later catalog changes never reach saved plans.
type SavedPlan struct {
	ID             string          `json:"id"`
	ConversationID string          `json:"conversationId"`
	Destination    string          `json:"destination"`
	Days           int             `json:"days"`
	Itinerary      json.RawMessage `json:"itinerary"`
	CreatedAt      int64           `json:"createdAt"`
}
