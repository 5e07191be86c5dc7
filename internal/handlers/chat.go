package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"loopai-backend/internal/models"
	"loopai-backend/internal/services"
)

type conversationStore interface {
	Create(ctx context.Context, userID int64, convContext *string) (int64, error)
	ListByUser(ctx context.Context, userID int64) ([]models.Conversation, error)
}

type messageStore interface {
	History(ctx context.Context, conversationID int64) ([]models.ChatTurn, error)
	Save(ctx context.Context, conversationID, userID int64, userMessage, aiResponse string) error
}

type ChatHandler struct {
	conversations conversationStore
	messages      messageStore
	generator     services.Generator
}

func NewChatHandler(conversations conversationStore, messages messageStore, generator services.Generator) *ChatHandler {
	return &ChatHandler{
		conversations: conversations,
		messages:      messages,
		generator:     generator,
	}
}

// Chat handles POST /api/ai/chat. A supplied conversation_id is used
// verbatim without an existence check; an unknown id simply produces an
// empty history. The turn is persisted only after generation succeeds,
// and any failure along the way aborts the request.
func (h *ChatHandler) Chat(w http.ResponseWriter, r *http.Request) {
	var req models.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Detail: "Invalid request body"})
		return
	}
	if req.UserID == 0 || strings.TrimSpace(req.Message) == "" {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Detail: "user_id and message are required"})
		return
	}

	ctx := r.Context()

	var conversationID int64
	if req.ConversationID != nil {
		conversationID = *req.ConversationID
	} else {
		id, err := h.conversations.Create(ctx, req.UserID, req.Context)
		if err != nil {
			writeCoreError(w, err)
			return
		}
		conversationID = id
	}

	history, err := h.messages.History(ctx, conversationID)
	if err != nil {
		writeCoreError(w, err)
		return
	}

	prompt := services.BuildPrompt(history, req.Message)

	reply, err := h.generator.Generate(ctx, prompt)
	if err != nil {
		writeCoreError(w, err)
		return
	}

	// The original incoming text is persisted, not a trimmed or
	// otherwise normalized copy.
	if err := h.messages.Save(ctx, conversationID, req.UserID, req.Message, reply); err != nil {
		writeCoreError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, models.ChatResponse{
		ConversationID: conversationID,
		Response:       reply,
		Timestamp:      time.Now().UTC(),
	})
}

// ListConversations handles GET /api/ai/conversations/{userID}.
func (h *ChatHandler) ListConversations(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.ParseInt(chi.URLParam(r, "userID"), 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Detail: "Invalid user ID"})
		return
	}

	conversations, err := h.conversations.ListByUser(r.Context(), userID)
	if err != nil {
		writeCoreError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, conversations)
}

// GetConversation handles GET /api/ai/conversation/{conversationID}.
// An unknown conversation yields an empty array, not a 404.
func (h *ChatHandler) GetConversation(w http.ResponseWriter, r *http.Request) {
	conversationID, err := strconv.ParseInt(chi.URLParam(r, "conversationID"), 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Detail: "Invalid conversation ID"})
		return
	}

	turns, err := h.messages.History(r.Context(), conversationID)
	if err != nil {
		writeCoreError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, turns)
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeCoreError maps storage and gateway failures onto the wire
// contract: HTTP 500 with the cause embedded in detail.
func writeCoreError(w http.ResponseWriter, err error) {
	writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Detail: err.Error()})
}
