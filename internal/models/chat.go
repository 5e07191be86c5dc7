package models

import "time"

// Conversation is one row of ai_conversations.
type Conversation struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Context   *string   `json:"context"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ChatTurn is one stored turn: the user's message together with the
// model's reply.
type ChatTurn struct {
	UserMessage string    `json:"user_message"`
	AIResponse  string    `json:"ai_response"`
	CreatedAt   time.Time `json:"created_at"`
}

// PromptMessage is one role-tagged entry of an assembled prompt.
type PromptMessage struct {
	Role string // "user" or "model"
	Text string
}

// ChatRequest is the payload sent to the chat endpoint.
type ChatRequest struct {
	UserID         int64   `json:"user_id"`
	Message        string  `json:"message"`
	ConversationID *int64  `json:"conversation_id,omitempty"`
	Context        *string `json:"context,omitempty"`
}

// ChatResponse is the reply from the chat endpoint. Timestamp is
// captured server-side after generation, not copied from the stored row.
type ChatResponse struct {
	ConversationID int64     `json:"conversation_id"`
	Response       string    `json:"response"`
	Timestamp      time.Time `json:"timestamp"`
}

// ErrorResponse is the failure body for every endpoint.
type ErrorResponse struct {
	Detail string `json:"detail"`
}
