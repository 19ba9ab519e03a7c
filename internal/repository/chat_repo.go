package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"counsellor/internal/model"
)

type ChatRepository struct {
	db *pgxpool.Pool
}

func NewChatRepository(db *pgxpool.Pool) *ChatRepository {
	return &ChatRepository{db: db}
}

// Insert persists a chat message.
func (r *ChatRepository) Insert(ctx context.Context, m *model.ChatMessage) error {
	query := `
        INSERT INTO chat_messages (user_id, role, text, is_action)
        VALUES ($1, $2, $3, $4)
        RETURNING id, created_at
    `
	return r.db.QueryRow(ctx, query,
		m.UserID, m.Role, m.Text, m.IsAction,
	).Scan(&m.ID, &m.CreatedAt)
}

// ListByUser returns the full history, oldest first.
func (r *ChatRepository) ListByUser(ctx context.Context, userID int) ([]model.ChatMessage, error) {
	query := `
        SELECT id, user_id, role, text, is_action, created_at
        FROM chat_messages
        WHERE user_id = $1
        ORDER BY created_at ASC
    `
	return r.list(ctx, query, userID)
}

// ListRecent returns the newest `limit` messages, newest first.
func (r *ChatRepository) ListRecent(ctx context.Context, userID, limit int) ([]model.ChatMessage, error) {
	query := `
        SELECT id, user_id, role, text, is_action, created_at
        FROM chat_messages
        WHERE user_id = $1
        ORDER BY created_at DESC
        LIMIT $2
    `
	return r.list(ctx, query, userID, limit)
}

func (r *ChatRepository) list(ctx context.Context, query string, args ...any) ([]model.ChatMessage, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	messages := []model.ChatMessage{}
	for rows.Next() {
		var m model.ChatMessage
		if err := rows.Scan(
			&m.ID, &m.UserID, &m.Role, &m.Text, &m.IsAction, &m.CreatedAt,
		); err != nil {
			return nil, err
		}
		messages = append(messages, m)
	}
	return messages, rows.Err()
}
