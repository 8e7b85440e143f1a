package postgres

import (
	"context"
	"errors"

	"github.com/campusconnect/backend/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type MessageRepo struct {
	pool *pgxpool.Pool
}

func NewMessageRepo(pool *pgxpool.Pool) *MessageRepo {
	return &MessageRepo{pool: pool}
}

func (r *MessageRepo) Create(ctx context.Context, msg *domain.DirectMessage) error {
	query := `
		INSERT INTO messages (id, sender_id, receiver_id, content, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.pool.Exec(ctx, query,
		msg.ID, msg.SenderID, msg.ReceiverID, msg.Content, msg.CreatedAt,
	)
	return err
}

func (r *MessageRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.DirectMessage, error) {
	query := `
		SELECT m.id, m.sender_id, m.receiver_id, m.content, m.created_at,
			s.name, s.usn, t.name, t.usn
		FROM messages m
		JOIN profiles s ON m.sender_id = s.id
		JOIN profiles t ON m.receiver_id = t.id
		WHERE m.id = $1`
	var msg domain.DirectMessage
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&msg.ID, &msg.SenderID, &msg.ReceiverID, &msg.Content, &msg.CreatedAt,
		&msg.SenderName, &msg.SenderUSN, &msg.ReceiverName, &msg.ReceiverUSN,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return &msg, err
}

// ListForUser returns every message sent or received by the user, oldest
// first.
func (r *MessageRepo) ListForUser(ctx context.Context, userID uuid.UUID) ([]domain.DirectMessage, error) {
	query := `
		SELECT m.id, m.sender_id, m.receiver_id, m.content, m.created_at,
			s.name, s.usn, t.name, t.usn
		FROM messages m
		JOIN profiles s ON m.sender_id = s.id
		JOIN profiles t ON m.receiver_id = t.id
		WHERE m.sender_id = $1 OR m.receiver_id = $1
		ORDER BY m.created_at, m.id`

	return r.list(ctx, query, userID)
}

// ListConversation returns the messages exchanged between the two users, in
// either direction, oldest first.
func (r *MessageRepo) ListConversation(ctx context.Context, userID, contactID uuid.UUID) ([]domain.DirectMessage, error) {
	query := `
		SELECT m.id, m.sender_id, m.receiver_id, m.content, m.created_at,
			s.name, s.usn, t.name, t.usn
		FROM messages m
		JOIN profiles s ON m.sender_id = s.id
		JOIN profiles t ON m.receiver_id = t.id
		WHERE (m.sender_id = $1 AND m.receiver_id = $2)
			OR (m.sender_id = $2 AND m.receiver_id = $1)
		ORDER BY m.created_at, m.id`

	return r.list(ctx, query, userID, contactID)
}

func (r *MessageRepo) list(ctx context.Context, query string, args ...any) ([]domain.DirectMessage, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []domain.DirectMessage
	for rows.Next() {
		var msg domain.DirectMessage
		if err := rows.Scan(
			&msg.ID, &msg.SenderID, &msg.ReceiverID, &msg.Content, &msg.CreatedAt,
			&msg.SenderName, &msg.SenderUSN, &msg.ReceiverName, &msg.ReceiverUSN,
		); err != nil {
			return nil, err
		}
		messages = append(messages, msg)
	}
	return messages, rows.Err()
}
