package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"loopai-backend/internal/models"
)

type ConversationRepo struct {
	pool *pgxpool.Pool
}

func NewConversationRepo(pool *pgxpool.Pool) *ConversationRepo {
	return &ConversationRepo{pool: pool}
}

// Create inserts a new conversation and returns its generated id.
func (r *ConversationRepo) Create(ctx context.Context, userID int64, convContext *string) (int64, error) {
	query := `INSERT INTO ai_conversations (user_id, context, created_at, updated_at)
		VALUES ($1, $2, NOW(), NOW()) RETURNING id`

	var id int64
	if err := r.pool.QueryRow(ctx, query, userID, convContext).Scan(&id); err != nil {
		return 0, &StorageError{Op: "create conversation", Err: err}
	}
	return id, nil
}

// ListByUser returns the user's conversations, most recently updated
// first. A user with no conversations gets an empty slice.
func (r *ConversationRepo) ListByUser(ctx context.Context, userID int64) ([]models.Conversation, error) {
	query := `SELECT id, user_id, context, created_at, updated_at
		FROM ai_conversations WHERE user_id = $1 ORDER BY updated_at DESC`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, &StorageError{Op: "list conversations", Err: err}
	}
	defer rows.Close()

	conversations := []models.Conversation{}
	for rows.Next() {
		var c models.Conversation
		if err := rows.Scan(&c.ID, &c.UserID, &c.Context, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, &StorageError{Op: "list conversations", Err: err}
		}
		conversations = append(conversations, c)
	}
	if err := rows.Err(); err != nil {
		return nil, &StorageError{Op: "list conversations", Err: err}
	}

	return conversations, nil
}
