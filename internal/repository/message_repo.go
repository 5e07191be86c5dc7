package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"loopai-backend/internal/models"
)

type MessageRepo struct {
	pool *pgxpool.Pool
}

func NewMessageRepo(pool *pgxpool.Pool) *MessageRepo {
	return &MessageRepo{pool: pool}
}

// History returns every turn of a conversation ascending by creation
// time, with the insert id breaking timestamp ties. A conversation id
// with no rows yields an empty slice, never an error.
func (r *MessageRepo) History(ctx context.Context, conversationID int64) ([]models.ChatTurn, error) {
	query := `SELECT user_message, ai_response, created_at
		FROM ai_messages WHERE conversation_id = $1
		ORDER BY created_at ASC, id ASC`

	rows, err := r.pool.Query(ctx, query, conversationID)
	if err != nil {
		return nil, &StorageError{Op: "load history", Err: err}
	}
	defer rows.Close()

	turns := []models.ChatTurn{}
	for rows.Next() {
		var t models.ChatTurn
		if err := rows.Scan(&t.UserMessage, &t.AIResponse, &t.CreatedAt); err != nil {
			return nil, &StorageError{Op: "load history", Err: err}
		}
		turns = append(turns, t)
	}
	if err := rows.Err(); err != nil {
		return nil, &StorageError{Op: "load history", Err: err}
	}

	return turns, nil
}

// Save inserts one complete turn, then bumps the owning conversation's
// updated_at so ListByUser ordering tracks the newest activity. The two
// statements commit independently.
func (r *MessageRepo) Save(ctx context.Context, conversationID, userID int64, userMessage, aiResponse string) error {
	query := `INSERT INTO ai_messages (conversation_id, user_id, user_message, ai_response, created_at)
		VALUES ($1, $2, $3, $4, NOW())`

	if _, err := r.pool.Exec(ctx, query, conversationID, userID, userMessage, aiResponse); err != nil {
		return &StorageError{Op: "save message", Err: err}
	}

	if _, err := r.pool.Exec(ctx,
		`UPDATE ai_conversations SET updated_at = NOW() WHERE id = $1`, conversationID); err != nil {
		return &StorageError{Op: "touch conversation", Err: err}
	}

	return nil
}
