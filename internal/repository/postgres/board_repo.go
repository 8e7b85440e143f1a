package postgres

import (
	"context"
	"errors"

	"github.com/campusconnect/backend/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BoardRepo struct {
	pool *pgxpool.Pool
}

func NewBoardRepo(pool *pgxpool.Pool) *BoardRepo {
	return &BoardRepo{pool: pool}
}

func (r *BoardRepo) Create(ctx context.Context, msg *domain.BoardMessage) error {
	query := `
		INSERT INTO public_messages (id, sender_id, content, created_at)
		VALUES ($1, $2, $3, $4)`
	_, err := r.pool.Exec(ctx, query, msg.ID, msg.SenderID, msg.Content, msg.CreatedAt)
	return err
}

func (r *BoardRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.BoardMessage, error) {
	query := `
		SELECT m.id, m.sender_id, m.content, m.created_at,
			p.name, p.usn, p.avatar_url
		FROM public_messages m
		JOIN profiles p ON m.sender_id = p.id
		WHERE m.id = $1`
	var msg domain.BoardMessage
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&msg.ID, &msg.SenderID, &msg.Content, &msg.CreatedAt,
		&msg.SenderName, &msg.SenderUSN, &msg.SenderAvatarURL,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return &msg, err
}

// ListRecent returns the newest messages first, joined with sender info.
func (r *BoardRepo) ListRecent(ctx context.Context, limit int) ([]domain.BoardMessage, error) {
	query := `
		SELECT m.id, m.sender_id, m.content, m.created_at,
			p.name, p.usn, p.avatar_url
		FROM public_messages m
		JOIN profiles p ON m.sender_id = p.id
		ORDER BY m.created_at DESC, m.id DESC
		LIMIT $1`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []domain.BoardMessage
	for rows.Next() {
		var msg domain.BoardMessage
		if err := rows.Scan(
			&msg.ID, &msg.SenderID, &msg.Content, &msg.CreatedAt,
			&msg.SenderName, &msg.SenderUSN, &msg.SenderAvatarURL,
		); err != nil {
			return nil, err
		}
		messages = append(messages, msg)
	}
	return messages, rows.Err()
}
