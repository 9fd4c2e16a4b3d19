package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/constituent-office/internal/domain"
)

// TeamMessageRepository persists internal office messages. Channels are
// strictly append-only; there is no update or delete surface.
type TeamMessageRepository interface {
	Append(ctx context.Context, msg *domain.TeamMessage) error
	ListByChannel(ctx context.Context, channel domain.ChannelAddress) ([]domain.TeamMessage, error)
}

type teamMessageRepository struct {
	pool *pgxpool.Pool
}

// NewTeamMessageRepository instantiates the repository.
func NewTeamMessageRepository(pool *pgxpool.Pool) TeamMessageRepository {
	return &teamMessageRepository{pool: pool}
}

func (r *teamMessageRepository) Append(ctx context.Context, msg *domain.TeamMessage) error {
	const query = `
        INSERT INTO team_messages (sender_id, sender_name, channel_address, message_text)
        VALUES ($1,$2,$3,$4)
        RETURNING id, created_at`
	return r.pool.QueryRow(ctx, query,
		msg.SenderID,
		msg.SenderName,
		msg.Channel,
		msg.Text,
	).Scan(&msg.ID, &msg.CreatedAt)
}

func (r *teamMessageRepository) ListByChannel(ctx context.Context, channel domain.ChannelAddress) ([]domain.TeamMessage, error) {
	const query = `
        SELECT id, sender_id, sender_name, channel_address, message_text, created_at
        FROM team_messages WHERE channel_address=$1 ORDER BY created_at`
	rows, err := r.pool.Query(ctx, query, channel)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.TeamMessage
	for rows.Next() {
		var msg domain.TeamMessage
		if err := rows.Scan(
			&msg.ID,
			&msg.SenderID,
			&msg.SenderName,
			&msg.Channel,
			&msg.Text,
			&msg.CreatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, msg)
	}
	return result, rows.Err()
}
