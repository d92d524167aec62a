package model

// Book is a candidate record as supplied by the library backend.
type Book struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Author      string `json:"author"`
	Publisher   string `json:"publisher"`
	Description string `json:"description,omitempty"`
}

// RecommendationItem is one entry of a recommendation result.
// Score is passed through exactly as the model produced it; range
// checking is a consumer concern.
type RecommendationItem struct {
	BookID string  `json:"book_id"`
	Reason string  `json:"reason"`
	Score  float64 `json:"score"`
}

// ChatMessage is a single turn of a caller-supplied conversation.
// Conversation state lives entirely in the request; nothing is kept
// between calls.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)
